// Package images probes page image URIs so the feed knows when a
// post's placeholder can come down. Terminals cannot show the bitmaps,
// so "loaded" means the URI answered; there is no error or retry
// callback, matching the single onLoad boundary the feed expects.
package images

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"
)

// Loader reports whether an image URI is ready.
type Loader interface {
	Probe(ctx context.Context, uri string) error
}

// HTTPLoader fetches image headers over HTTP.
type HTTPLoader struct {
	client *resty.Client
}

func NewHTTPLoader(timeout time.Duration) *HTTPLoader {
	return &HTTPLoader{client: resty.New().SetTimeout(timeout)}
}

func (l *HTTPLoader) Close() error {
	return l.client.Close()
}

func (l *HTTPLoader) Probe(ctx context.Context, uri string) error {
	res, err := l.client.R().WithContext(ctx).Head(uri)
	if err != nil {
		return err
	}
	if res.IsError() {
		return fmt.Errorf("image probe %s: %s", uri, res.Status())
	}
	return nil
}
