// Package fetcher retrieves source pages and media over HTTP.
package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"

	"github.com/jakefish18/wanikani-parser/internal/config"
)

//go:generate mockgen -source=fetcher.go -destination=../mocks/fetcher/mock_fetcher.go -package=mock_fetcher

// Fetcher retrieves pages as parsed documents and media as raw bytes.
// Failures are reported as *FetchError and are never retried here.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*html.Node, error)
	Download(ctx context.Context, url string) ([]byte, error)
}

// FetchError is returned on network failures, timeouts and non-2xx responses.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// HTTPFetcher is a Fetcher backed by a resty client.
type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPFetcher creates a fetcher sending the configured browser-like headers on every request.
func NewHTTPFetcher(cfg config.SourceConfig) *HTTPFetcher {
	client := resty.New()
	client.SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)
	client.SetHeader("User-Agent", cfg.UserAgent)
	client.SetHeaders(cfg.Headers)

	return &HTTPFetcher{client: client}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*html.Node, error) {
	body, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("html.Parse > %w", err)}
	}
	return doc, nil
}

func (f *HTTPFetcher) Download(ctx context.Context, url string) ([]byte, error) {
	return f.get(ctx, url)
}

func (f *HTTPFetcher) get(ctx context.Context, url string) ([]byte, error) {
	res, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	if res.IsError() || res.StatusCode() < 200 || res.StatusCode() > 299 {
		return nil, &FetchError{URL: url, StatusCode: res.StatusCode()}
	}
	return res.Body(), nil
}
