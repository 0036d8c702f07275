package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// fetcher opens the station dataset for the CLI. Datasets are streamed
// straight into the CSV parser rather than buffered in memory.
type fetcher struct {
	httpClient *http.Client
}

func newFetcher() *fetcher {
	return &fetcher{
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

// open returns a reader over the dataset at urlOrPath. HTTP(S) URLs are
// streamed from the response body; anything else is treated as a local
// file path. The caller must close the returned reader.
func (f *fetcher) open(urlOrPath string) (io.ReadCloser, error) {
	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return os.Open(urlOrPath)
	}

	resp, err := f.httpClient.Get(urlOrPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}

	return resp.Body, nil
}
