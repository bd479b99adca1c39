package app

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// NewLogger builds the diagnostic logger. An unknown level falls back to info.
func NewLogger(cfg Config) *log.Logger {
	logger := log.New()
	logger.SetOutput(os.Stderr)

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return logger
}
