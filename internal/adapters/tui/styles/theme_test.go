package styles

import (
	"testing"

	"webdir/internal/domain"
)

func TestUse(t *testing.T) {
	t.Cleanup(func() { Use(domain.DefaultTheme) })

	Use(domain.ThemeLight)
	if Active != LightPalette {
		t.Errorf("expected light palette, got %+v", Active)
	}
	if App.GetBackground() != LightPalette.Background {
		t.Errorf("App background = %v, want %v", App.GetBackground(), LightPalette.Background)
	}

	Use(domain.ThemeDark)
	if Active != DarkPalette {
		t.Errorf("expected dark palette, got %+v", Active)
	}
	if App.GetForeground() != DarkPalette.Foreground {
		t.Errorf("App foreground = %v, want %v", App.GetForeground(), DarkPalette.Foreground)
	}
}

func TestDefaultIsDark(t *testing.T) {
	Use(domain.DefaultTheme)
	if Active != DarkPalette {
		t.Error("default theme should build the dark palette")
	}
}

func TestUse_ToastLevels(t *testing.T) {
	t.Cleanup(func() { Use(domain.DefaultTheme) })

	for _, theme := range []domain.Theme{domain.ThemeDark, domain.ThemeLight} {
		Use(theme)
		if ToastWarning.GetBackground() != Active.Warning {
			t.Errorf("%s: warning toast background = %v, want %v", theme, ToastWarning.GetBackground(), Active.Warning)
		}
		if ToastError.GetBackground() != Active.Error {
			t.Errorf("%s: error toast background = %v, want %v", theme, ToastError.GetBackground(), Active.Error)
		}
	}
}
