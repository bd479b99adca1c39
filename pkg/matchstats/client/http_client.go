package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/wybrenmulder/CS2-demoparser/pkg/matchstats"
)

type DatasetAPIClient struct {
	baseURI    string
	httpClient *http.Client
}

func (d *DatasetAPIClient) Open(ctx context.Context, dataset matchstats.Dataset) (io.ReadCloser, error) {
	url := fmt.Sprint(d.baseURI, dataset.FileName())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.WithField("dataset", dataset).Errorf("error creating HTTP request for %s: %v", url, err)
		return nil, errors.Wrapf(ErrFetch, "[client error] unable to create request for %s: %v", url, err)
	}

	req.Header.Add("Accept", "application/json")

	res, err := d.httpClient.Do(req)
	if err != nil {
		log.WithField("dataset", dataset).Errorf("error sending HTTP request for %s: %v", url, err)
		return nil, errors.Wrapf(ErrFetch, "[client error] unable to get %s: %v", url, err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		_ = res.Body.Close()
		return nil, errors.Wrapf(ErrFetch, "[client error] unexpected status %d for %s", res.StatusCode, url)
	}
	return res.Body, nil
}

func (d *DatasetAPIClient) Name() string {
	return "http"
}

func (d *DatasetAPIClient) Close() {
	d.httpClient.CloseIdleConnections()
}

// NewDatasetAPIClient fetches documents from baseURI, which usually points
// at the assets directory of the page that published them.
func NewDatasetAPIClient(baseURI string, timeout time.Duration) Source {
	if !strings.HasSuffix(baseURI, "/") {
		baseURI += "/"
	}

	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxConnsPerHost = 100
	t.MaxIdleConnsPerHost = 100

	return &DatasetAPIClient{
		baseURI: baseURI,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: t,
		},
	}
}
