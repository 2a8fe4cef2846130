package ports

import (
	"context"

	"webdir/internal/domain"
)

// SeedSource provides the initial entries used when no cache exists
type SeedSource interface {
	Fetch(ctx context.Context) ([]domain.Entry, error)
}
