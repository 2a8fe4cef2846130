package mock

import (
	"context"

	"webdir/internal/domain"
	"webdir/internal/ports"
)

var _ ports.SeedSource = (*SeedSource)(nil)

// SeedSource is a mock implementation of ports.SeedSource.
type SeedSource struct {
	FetchFn func(ctx context.Context) ([]domain.Entry, error)
	Calls   int
}

func (s *SeedSource) Fetch(ctx context.Context) ([]domain.Entry, error) {
	s.Calls++
	return s.FetchFn(ctx)
}

// StaticSeed returns a SeedSource that always yields entries
func StaticSeed(entries ...domain.Entry) *SeedSource {
	return &SeedSource{
		FetchFn: func(context.Context) ([]domain.Entry, error) {
			return entries, nil
		},
	}
}
