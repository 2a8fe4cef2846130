// Package http provides a ports.SeedSource that downloads the seed
// document over HTTP.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"webdir/internal/application"
	"webdir/internal/domain"
	"webdir/internal/ports"
)

// DefaultFetchTimeout is the default timeout for the seed request.
const DefaultFetchTimeout = 10 * time.Second

// Ensure SeedSource implements ports.SeedSource at compile time.
var _ ports.SeedSource = (*SeedSource)(nil)

// SeedSource fetches {"websites": [...]} from a URL
type SeedSource struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// Option configures a SeedSource.
type Option func(*SeedSource)

// WithTimeout sets the timeout for the request.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *SeedSource) {
		s.timeout = d
	}
}

// WithClient replaces the HTTP client. Its Timeout is overwritten.
func WithClient(c *http.Client) Option {
	return func(s *SeedSource) {
		s.client = c
	}
}

// NewSeedSource creates a SeedSource for url.
func NewSeedSource(url string, opts ...Option) *SeedSource {
	s := &SeedSource{
		url:     url,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = &http.Client{}
	}
	s.client.Timeout = s.timeout

	return s
}

// Fetch downloads and decodes the seed document.
func (s *SeedSource) Fetch(ctx context.Context) ([]domain.Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, s.url)
	}

	return application.DecodeSeed(resp.Body)
}
