package app

import (
	"fmt"
	"time"

	"github.com/wybrenmulder/CS2-demoparser/util"
)

const (
	FileSource     = "file"
	HTTPSource     = "http"
	PostgresSource = "postgres"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable&timezone=UTC", d.User, d.Password, d.Host, d.Port, d.Database)
}

type Config struct {
	ListenAddr     string
	DatasetSource  string
	AssetsDir      string
	DatasetBaseURL string
	FetchTimeout   time.Duration
	Database       DatabaseConfig
	LogLevel       string
	LogFormat      string
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() Config {
	return Config{
		ListenAddr:     util.GetEnvVariable("LISTEN_ADDR", ":8080"),
		DatasetSource:  util.GetEnvVariable("DATASET_SOURCE", FileSource),
		AssetsDir:      util.GetEnvVariable("ASSETS_DIR", "assets"),
		DatasetBaseURL: util.GetEnvVariable("DATASET_BASE_URL", "http://localhost:8000/assets/"),
		FetchTimeout:   util.GetEnvDuration("FETCH_TIMEOUT", 10*time.Second),
		Database: DatabaseConfig{
			Host:     util.GetEnvVariable("DB_HOST", "localhost"),
			Port:     util.GetEnvVariable("DB_PORT", "5432"),
			Database: util.GetEnvVariable("DATABASE", "cs2stats"),
			User:     util.GetEnvVariable("DB_USER", "postgres"),
			Password: util.GetEnvVariable("DB_PASSWORD", "postgres"),
		},
		LogLevel:  util.GetEnvVariable("LOG_LEVEL", "info"),
		LogFormat: util.GetEnvVariable("LOG_FORMAT", "text"),
	}
}
