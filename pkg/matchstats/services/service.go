package services

import (
	"context"
	"io"
	"sync"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
	"github.com/wybrenmulder/CS2-demoparser/pkg/matchstats"
	"github.com/wybrenmulder/CS2-demoparser/pkg/matchstats/client"
)

// FetchErrorMessage is logged, together with the cause, whenever a dataset
// could not be loaded.
const FetchErrorMessage = "Error fetching the JSON data"

// Page is everything needed to draw one view of the stats page.
type Page struct {
	RenderID      string
	Scoreboard    matchstats.Table
	UtilityDamage matchstats.Table
}

type Service interface {
	GetScoreboard(ctx context.Context) (matchstats.Scoreboard, error)
	GetUtilityDamage(ctx context.Context) (matchstats.UtilityDamage, error)
	OpenDataset(ctx context.Context, dataset matchstats.Dataset) (io.ReadCloser, error)
	RenderPage(ctx context.Context) Page
}

type statsService struct {
	source client.Source
	logger log.FieldLogger
}

func NewStatsService(source client.Source, logger log.FieldLogger) Service {
	return &statsService{
		source: source,
		logger: logger,
	}
}

func (s *statsService) OpenDataset(ctx context.Context, dataset matchstats.Dataset) (io.ReadCloser, error) {
	body, err := s.source.Open(ctx, dataset)
	if err != nil {
		return nil, errors.Wrapf(err, "[service error] unable to open %s", dataset)
	}
	return body, nil
}

func (s *statsService) GetScoreboard(ctx context.Context) (matchstats.Scoreboard, error) {
	body, err := s.OpenDataset(ctx, matchstats.KillfeedDataset)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	scoreboard, err := matchstats.DecodeScoreboard(body)
	if err != nil {
		return nil, errors.Wrap(err, "[service error] unable to get scoreboard")
	}
	return scoreboard, nil
}

func (s *statsService) GetUtilityDamage(ctx context.Context) (matchstats.UtilityDamage, error) {
	body, err := s.OpenDataset(ctx, matchstats.UtilityDamageDataset)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	damage, err := matchstats.DecodeUtilityDamage(body)
	if err != nil {
		return nil, errors.Wrap(err, "[service error] unable to get utility damage")
	}
	return damage, nil
}

// RenderPage loads both datasets concurrently. A dataset that fails to load
// is logged and its table is left without rows; the other table is not
// affected.
func (s *statsService) RenderPage(ctx context.Context) Page {
	renderID := uuid.NewV4().String()
	logger := s.logger.WithFields(log.Fields{
		"render_id": renderID,
		"source":    s.source.Name(),
	})

	page := Page{
		RenderID:      renderID,
		Scoreboard:    matchstats.NewScoreboardTable(nil),
		UtilityDamage: matchstats.NewUtilityDamageTable(nil),
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		err := renderTable(func() error {
			scoreboard, err := s.GetScoreboard(ctx)
			if err != nil {
				return err
			}
			page.Scoreboard = matchstats.NewScoreboardTable(scoreboard)
			return nil
		})
		if err != nil {
			logger.WithField("dataset", matchstats.KillfeedDataset).WithError(err).Error(FetchErrorMessage)
		}
	}()
	go func() {
		defer wg.Done()
		err := renderTable(func() error {
			damage, err := s.GetUtilityDamage(ctx)
			if err != nil {
				return err
			}
			page.UtilityDamage = matchstats.NewUtilityDamageTable(damage)
			return nil
		})
		if err != nil {
			logger.WithField("dataset", matchstats.UtilityDamageDataset).WithError(err).Error(FetchErrorMessage)
		}
	}()
	wg.Wait()

	logger.WithFields(log.Fields{
		"scoreboard_rows":     len(page.Scoreboard.Rows),
		"utility_damage_rows": len(page.UtilityDamage.Rows),
	}).Debug("rendered stats page")
	return page
}

// renderTable runs fn, turning a panic into an error.
func renderTable(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("[service error] render panicked: %v", r)
		}
	}()
	return fn()
}
