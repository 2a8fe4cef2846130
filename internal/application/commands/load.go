package commands

import (
	"context"
	"fmt"

	"webdir/internal/application"
	"webdir/internal/domain"
)

// LoadResult contains the result of loading the store
type LoadResult struct {
	Entries domain.Collection
	Message string
}

// LoadCommand populates the store from cache or seed
type LoadCommand struct {
	store *application.EntryStore
}

// NewLoadCommand creates a new LoadCommand
func NewLoadCommand(store *application.EntryStore) *LoadCommand {
	return &LoadCommand{store: store}
}

// Execute runs the load command. On failure the returned error is a
// *application.LoadError and the store is empty.
func (c *LoadCommand) Execute(ctx context.Context) (*LoadResult, error) {
	entries, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &LoadResult{
		Entries: entries,
		Message: fmt.Sprintf("Loaded %d websites", len(entries)),
	}, nil
}

// ResetCommand drops the cached collection
type ResetCommand struct {
	store *application.EntryStore
}

// NewResetCommand creates a new ResetCommand
func NewResetCommand(store *application.EntryStore) *ResetCommand {
	return &ResetCommand{store: store}
}

// Execute runs the reset command
func (c *ResetCommand) Execute(ctx context.Context) (string, error) {
	if err := c.store.Reset(); err != nil {
		return "", fmt.Errorf("failed to reset: %w", err)
	}
	return "Cached websites cleared; the seed will be loaded next time", nil
}
