package app

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/wybrenmulder/CS2-demoparser/pkg/matchstats/client"
	"github.com/wybrenmulder/CS2-demoparser/pkg/matchstats/services"
)

type StatsClient interface {
	Start(ctx context.Context) error
	Service() services.Service
	Close()
}

type statsClient struct {
	config       Config
	source       client.Source
	statsService services.Service
	*log.Logger
}

func NewStatsClient(config Config, logger *log.Logger) StatsClient {
	return &statsClient{
		config: config,
		Logger: logger,
	}
}

// Start opens the configured dataset source.
func (a *statsClient) Start(ctx context.Context) error {
	switch a.config.DatasetSource {
	case FileSource:
		a.source = client.NewFileClient(a.config.AssetsDir)
	case HTTPSource:
		a.source = client.NewDatasetAPIClient(a.config.DatasetBaseURL, a.config.FetchTimeout)
	case PostgresSource:
		storage, err := services.ConnectStorage(ctx, a.config.Database.DSN())
		if err != nil {
			return err
		}
		a.source = storage
	default:
		return errors.Errorf("unknown dataset source %q", a.config.DatasetSource)
	}

	a.statsService = services.NewStatsService(a.source, a.Logger)
	a.WithField("source", a.source.Name()).Info("dataset source ready")
	return nil
}

func (a *statsClient) Service() services.Service {
	return a.statsService
}

func (a *statsClient) Close() {
	if a.source != nil {
		a.source.Close()
	}
}
