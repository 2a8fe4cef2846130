package commands

import (
	"context"

	"webdir/internal/application"
	"webdir/internal/domain"
)

// ListCommand returns the store's entries narrowed by keyword and category
type ListCommand struct {
	store    *application.EntryStore
	Keyword  string
	Category string
}

// NewListCommand creates a new ListCommand. An empty category lists all.
func NewListCommand(store *application.EntryStore, keyword, category string) *ListCommand {
	return &ListCommand{
		store:    store,
		Keyword:  keyword,
		Category: category,
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) (domain.Collection, error) {
	return domain.Filter(c.store.Entries(), c.Keyword, c.Category), nil
}

// CategoriesCommand lists the known categories
type CategoriesCommand struct {
	store *application.EntryStore
}

// NewCategoriesCommand creates a new CategoriesCommand
func NewCategoriesCommand(store *application.EntryStore) *CategoriesCommand {
	return &CategoriesCommand{store: store}
}

// Execute returns CategoryAll followed by each known category
func (c *CategoriesCommand) Execute(ctx context.Context) ([]string, error) {
	return append([]string{domain.CategoryAll}, c.store.Categories()...), nil
}

