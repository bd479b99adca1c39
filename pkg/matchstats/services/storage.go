package services

import (
	"context"
	"io"
	"io/ioutil"
	"strings"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
	"github.com/wybrenmulder/CS2-demoparser/pkg/matchstats"
	"github.com/wybrenmulder/CS2-demoparser/pkg/matchstats/client"
)

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Storage reads the documents the demo parser publishes into Postgres. The
// document column is json, not jsonb, so the key order of the export is kept.
type Storage struct {
	pool  rowQuerier
	close func()
}

func ConnectStorage(ctx context.Context, dsn string) (*Storage, error) {
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "[storage error] unable to connect to database")
	}
	return &Storage{pool: pool, close: pool.Close}, nil
}

func (s *Storage) Open(ctx context.Context, dataset matchstats.Dataset) (io.ReadCloser, error) {
	query := `SELECT document::text FROM demo.datasets WHERE name = $1;`

	var document string
	row := s.pool.QueryRow(ctx, query, dataset.FileName())
	if err := row.Scan(&document); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Wrapf(client.ErrFetch, "[storage error] dataset %s was not exported", dataset)
		}
		return nil, errors.Wrapf(client.ErrFetch, "[storage error] unable to read dataset %s: %v", dataset, err)
	}
	return ioutil.NopCloser(strings.NewReader(document)), nil
}

func (s *Storage) Name() string {
	return "postgres"
}

func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}
