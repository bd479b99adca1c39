package client

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/wybrenmulder/CS2-demoparser/pkg/matchstats"
)

// ErrFetch marks a dataset document that could not be retrieved: the
// upstream is unreachable, answered with a non-2xx status, or the document
// does not exist.
var ErrFetch = errors.New("unable to fetch dataset")

// Source hands out the raw JSON documents exported by the demo parser.
// Callers close the returned reader.
type Source interface {
	Open(ctx context.Context, dataset matchstats.Dataset) (io.ReadCloser, error)
	Name() string
	Close()
}
