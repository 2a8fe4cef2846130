package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"webdir/internal/application"
	"webdir/internal/domain"
)

// Messages shown to the user after an add attempt
const (
	MsgAdded         = "Website added!"
	MsgMissingFields = "Please fill in all fields!"
	MsgInvalidURL    = "Invalid URL!"
)

// AddEntryResult contains the result of adding an entry
type AddEntryResult struct {
	Entry   domain.Entry
	Message string
}

// AddEntryCommand validates raw form input and appends it to the store
type AddEntryCommand struct {
	store       *application.EntryStore
	Name        string
	Description string
	URL         string
	Category    string
}

// NewAddEntryCommand creates a new AddEntryCommand. Fields are trimmed.
func NewAddEntryCommand(store *application.EntryStore, name, description, url, category string) *AddEntryCommand {
	return &AddEntryCommand{
		store:       store,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		URL:         strings.TrimSpace(url),
		Category:    strings.TrimSpace(category),
	}
}

// Validate checks that all four fields are present and the URL is well-formed
func (c *AddEntryCommand) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", c.Name},
		{"description", c.Description},
		{"url", c.URL},
		{"category", c.Category},
	}
	for _, f := range fields {
		if err := application.ValidateRequired(f.name, f.value); err != nil {
			return err
		}
	}

	return application.ValidateURL("url", c.URL)
}

// Execute runs the add command
func (c *AddEntryCommand) Execute(ctx context.Context) (*AddEntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entry := domain.Entry{
		Name:        c.Name,
		Description: c.Description,
		URL:         c.URL,
		Category:    c.Category,
	}
	if err := c.store.Add(entry); err != nil {
		return nil, fmt.Errorf("failed to add entry: %w", err)
	}

	return &AddEntryResult{
		Entry:   entry,
		Message: MsgAdded,
	}, nil
}

// UserMessage maps an add failure to the text shown in a notification
func UserMessage(err error) string {
	switch {
	case err == nil:
		return MsgAdded
	case errors.Is(err, application.ErrMissingField):
		return MsgMissingFields
	case errors.Is(err, application.ErrInvalidURL):
		return MsgInvalidURL
	default:
		return err.Error()
	}
}
