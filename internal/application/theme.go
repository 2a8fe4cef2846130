package application

import (
	"fmt"

	"webdir/internal/domain"
	"webdir/internal/ports"
)

// ThemeController holds the current theme and persists every change
// under ports.KeyTheme
type ThemeController struct {
	cache   ports.Cache
	current domain.Theme
}

// NewThemeController creates a controller starting at the default theme
func NewThemeController(cache ports.Cache) *ThemeController {
	return &ThemeController{
		cache:   cache,
		current: domain.DefaultTheme,
	}
}

// ApplyOnLoad reads the persisted theme. A missing or unrecognised value
// yields the dark theme.
func (c *ThemeController) ApplyOnLoad() (domain.Theme, error) {
	value, _, err := c.cache.Get(ports.KeyTheme)
	if err != nil {
		c.current = domain.DefaultTheme
		return c.current, fmt.Errorf("read theme: %w", err)
	}
	c.current = domain.ParseTheme(value)
	return c.current, nil
}

// Toggle flips the theme and persists the new value
func (c *ThemeController) Toggle() (domain.Theme, error) {
	c.current = c.current.Toggle()
	if err := c.cache.Set(ports.KeyTheme, c.current.String()); err != nil {
		return c.current, fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	return c.current, nil
}

// Current returns the active theme
func (c *ThemeController) Current() domain.Theme {
	return c.current
}
