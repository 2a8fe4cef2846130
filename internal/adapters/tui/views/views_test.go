package views

import (
	"context"
	"testing"

	"webdir/internal/application"
	"webdir/internal/domain"
	"webdir/internal/mock"
)

var sampleEntries = []domain.Entry{
	{Name: "GitHub", Description: "Code hosting", URL: "https://github.com", Category: "Dev"},
	{Name: "Figma", Description: "Design tool", URL: "https://figma.com", Category: "Design"},
	{Name: "GitLab", Description: "DevOps platform", URL: "https://gitlab.com", Category: "dev"},
}

// loadedStore returns a store loaded from a seed holding entries
func loadedStore(t *testing.T, entries ...domain.Entry) *application.EntryStore {
	t.Helper()
	store := application.NewEntryStore(mock.NewCache(nil), mock.StaticSeed(entries...), nil)
	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return store
}
