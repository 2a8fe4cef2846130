package commands

import (
	"context"
	"fmt"

	"webdir/internal/application"
	"webdir/internal/domain"
)

// ToggleThemeResult contains the result of a theme toggle
type ToggleThemeResult struct {
	Theme   domain.Theme
	Message string
}

// ToggleThemeCommand flips and persists the theme
type ToggleThemeCommand struct {
	themes *application.ThemeController
}

// NewToggleThemeCommand creates a new ToggleThemeCommand
func NewToggleThemeCommand(themes *application.ThemeController) *ToggleThemeCommand {
	return &ToggleThemeCommand{themes: themes}
}

// Execute runs the toggle command
func (c *ToggleThemeCommand) Execute(ctx context.Context) (*ToggleThemeResult, error) {
	theme, err := c.themes.Toggle()
	if err != nil {
		return nil, fmt.Errorf("failed to save theme: %w", err)
	}
	return &ToggleThemeResult{
		Theme:   theme,
		Message: fmt.Sprintf("Switched to %s mode", theme),
	}, nil
}
