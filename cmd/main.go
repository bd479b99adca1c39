package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/wybrenmulder/CS2-demoparser/app"
)

func main() {
	exportDir := flag.String("export", "", "render the stats page into this directory and exit")
	flag.Parse()

	config := app.LoadConfig()
	logger := app.NewLogger(config)

	if *exportDir != "" {
		exportPage(config, logger, *exportDir)
		return
	}
	serve(config, logger)
}

func exportPage(config app.Config, logger *log.Logger, dir string) {
	ctx := context.Background()
	exporter := app.NewPageExporter(config, logger)
	if err := exporter.Start(ctx); err != nil {
		logger.WithError(err).Fatal("error initializating the exporter")
	}
	defer exporter.Close()

	if err := exporter.Export(ctx, dir); err != nil {
		logger.WithError(err).Error("unable to export stats page")
		exporter.Close()
		os.Exit(1)
	}
}

func serve(config app.Config, logger *log.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	statsClient := app.NewStatsClient(config, logger)
	if err := statsClient.Start(ctx); err != nil {
		logger.WithError(err).Fatal("error initializating the application")
	}
	defer statsClient.Close()

	server := &http.Server{
		Addr:    config.ListenAddr,
		Handler: app.NewRouter(statsClient.Service(), logger),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("received shutdown signal")
		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("unable to shut down server")
		}
	}()

	logger.WithField("addr", config.ListenAddr).Info("serving stats page")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Fatal("server stopped")
	}
	logger.Info("stats page stopped")
}
