package services

import (
	"context"
	"io/ioutil"
	"testing"

	"github.com/jackc/pgx/v4"
	"github.com/pkg/errors"
	"github.com/wybrenmulder/CS2-demoparser/pkg/matchstats"
	"github.com/wybrenmulder/CS2-demoparser/pkg/matchstats/client"
)

type fakeRow struct {
	document string
	err      error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.document
	return nil
}

type fakeQuerier struct {
	rows map[string]fakeRow
	sql  string
}

func (q *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	q.sql = sql
	row, ok := q.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return row
}

func TestStorage_Open(t *testing.T) {
	querier := &fakeQuerier{rows: map[string]fakeRow{
		"killfeed_data.json": {document: killfeedDoc},
	}}
	storage := &Storage{pool: querier}

	body, err := storage.Open(context.Background(), matchstats.KillfeedDataset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer body.Close()

	got, _ := ioutil.ReadAll(body)
	if string(got) != killfeedDoc {
		t.Errorf("expected stored document, got %s", got)
	}
	if querier.sql == "" {
		t.Error("expected a query to be issued")
	}
}

func TestStorage_OpenMissingDataset(t *testing.T) {
	storage := &Storage{pool: &fakeQuerier{}}

	_, err := storage.Open(context.Background(), matchstats.UtilityDamageDataset)
	if !errors.Is(err, client.ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
}

func TestStorage_OpenQueryError(t *testing.T) {
	storage := &Storage{pool: &fakeQuerier{rows: map[string]fakeRow{
		"killfeed_data.json": {err: errors.New("relation \"demo.datasets\" does not exist")},
	}}}

	_, err := storage.Open(context.Background(), matchstats.KillfeedDataset)
	if !errors.Is(err, client.ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
}

func TestStorage_FeedsStatsService(t *testing.T) {
	storage := &Storage{pool: &fakeQuerier{rows: map[string]fakeRow{
		"killfeed_data.json":       {document: killfeedDoc},
		"utility_damage_data.json": {document: utilityDoc},
	}}}

	scoreboard, err := NewStatsService(storage, nil).GetScoreboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scoreboard) != 2 || scoreboard[0].Player != "alice" {
		t.Errorf("unexpected scoreboard %+v", scoreboard)
	}
}
