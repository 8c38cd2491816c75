// Package share is the outgoing share boundary: a message/url payload
// handed off to a relay. Failures are logged and swallowed, never
// surfaced to the user.
package share

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"resty.dev/v3"

	"allstars/internal/feed"
)

// Payload is the outgoing share shape.
type Payload struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// BuildPayload assembles the share payload from a post: headline plus
// the first page's description, with the first page's image as the url.
func BuildPayload(post feed.Post) Payload {
	first := post.FirstPage()
	return Payload{
		Message: fmt.Sprintf("%s\n\n%s", post.Headline, first.Description),
		URL:     first.Image,
	}
}

// Sharer hands a payload to the host share capability.
type Sharer interface {
	Share(ctx context.Context, p Payload) error
}

// RelaySharer POSTs payloads to a configured relay endpoint.
type RelaySharer struct {
	client   *resty.Client
	endpoint string
}

func NewRelaySharer(endpoint string) *RelaySharer {
	return &RelaySharer{
		client:   resty.New().SetTimeout(5 * time.Second),
		endpoint: endpoint,
	}
}

func (s *RelaySharer) Close() error {
	return s.client.Close()
}

func (s *RelaySharer) Share(ctx context.Context, p Payload) error {
	res, err := s.client.R().
		WithContext(ctx).
		SetBody(p).
		Post(s.endpoint)
	if err != nil {
		return err
	}
	if res.IsError() {
		return fmt.Errorf("share relay returned %s", res.Status())
	}
	return nil
}

// Dispatch runs a share attempt and swallows the outcome, logging
// failures. The UI never sees a share error.
func Dispatch(ctx context.Context, s Sharer, p Payload) {
	if err := s.Share(ctx, p); err != nil {
		slog.Warn("share failed", "url", p.URL, "error", err)
	}
}
