package client

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/wybrenmulder/CS2-demoparser/pkg/matchstats"
)

// FileClient reads documents from the directory the demo parser exports to.
type FileClient struct {
	dir string
}

func (f *FileClient) Open(ctx context.Context, dataset matchstats.Dataset) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(ErrFetch, "[client error] %v", err)
	}

	path := filepath.Join(f.dir, dataset.FileName())
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrFetch, "[client error] unable to open %s: %v", path, err)
	}
	return file, nil
}

func (f *FileClient) Name() string {
	return "file"
}

func (f *FileClient) Close() {}

func NewFileClient(dir string) Source {
	return &FileClient{dir: dir}
}
