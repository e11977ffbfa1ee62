// Package fetch implements the Fetcher interface.
// It performs HTTP GET requests for the member listing page.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/gaurav-prasanna/rosterpipe/core"
	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "rosterpipe/1.0 (https://github.com/gaurav-prasanna/rosterpipe)"
)

// HTTPFetcher fetches web pages via HTTP.
type HTTPFetcher struct {
	client *resty.Client
}

// New creates an HTTPFetcher with a sensible timeout.
func New() *HTTPFetcher {
	client := resty.New().
		SetTimeout(defaultTimeout).
		SetHeader("User-Agent", defaultUserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml")
	return &HTTPFetcher{client: client}
}

// Fetch retrieves the HTML content of the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	res, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", res.StatusCode(), url)
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: res.StatusCode(),
		HTML:       string(res.Body()),
	}, nil
}
