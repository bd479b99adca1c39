package app

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type PageExporter interface {
	Start(ctx context.Context) error
	Export(ctx context.Context, dir string) error
	Close()
}

type pageExporter struct {
	statsClient StatsClient
	logger      *log.Logger
}

func NewPageExporter(config Config, logger *log.Logger) PageExporter {
	return &pageExporter{
		statsClient: NewStatsClient(config, logger),
		logger:      logger,
	}
}

func (p *pageExporter) Start(ctx context.Context) error {
	return p.statsClient.Start(ctx)
}

// Export writes index.html and assets/style.css into dir. Datasets that fail
// to load leave their table empty, as on the live page.
func (p *pageExporter) Export(ctx context.Context, dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, "assets"), 0o755); err != nil {
		return errors.Wrapf(err, "unable to create export directory %s", dir)
	}

	page := p.statsClient.Service().RenderPage(ctx)

	indexPath := filepath.Join(dir, "index.html")
	file, err := os.Create(indexPath)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", indexPath)
	}
	if err := WritePage(file, page); err != nil {
		_ = file.Close()
		return errors.Wrapf(err, "unable to render %s", indexPath)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "unable to write %s", indexPath)
	}

	stylePath := filepath.Join(dir, "assets", "style.css")
	if err := ioutil.WriteFile(stylePath, styleSheet, 0o644); err != nil {
		return errors.Wrapf(err, "unable to write %s", stylePath)
	}

	p.logger.WithFields(log.Fields{
		"render_id":           page.RenderID,
		"dir":                 dir,
		"scoreboard_rows":     len(page.Scoreboard.Rows),
		"utility_damage_rows": len(page.UtilityDamage.Rows),
	}).Info("exported stats page")
	return nil
}

func (p *pageExporter) Close() {
	p.statsClient.Close()
}
