package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"webdir/internal/adapters/tui/styles"
	"webdir/internal/adapters/tui/views"
	"webdir/internal/application"
	"webdir/internal/application/commands"
	"webdir/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewAdd
	ViewHelp
)

// App is the main TUI application model
type App struct {
	store  *application.EntryStore
	themes *application.ThemeController
	logger *slog.Logger

	state   ViewState
	browser *views.BrowserModel
	add     *views.AddModel
	help    *views.HelpModel
	toast   *views.Toast

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(store *application.EntryStore, themes *application.ThemeController, clipboard ports.Clipboard, opener ports.URLOpener, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &App{
		store:   store,
		themes:  themes,
		logger:  logger,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(store, clipboard, opener),
		add:     views.NewAddModel(store),
		help:    views.NewHelpModel(),
		toast:   views.NewToast(),
	}
}

// Init applies the persisted theme and starts loading entries
func (a *App) Init() tea.Cmd {
	theme, err := a.themes.ApplyOnLoad()
	styles.Use(theme)
	if err != nil {
		a.logger.Warn("theme load failed", "err", err)
	}
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.toast.Update(msg) {
		return a, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// App padding is 1 row/2 cols on each side
		w, h := msg.Width-4, msg.Height-2
		a.browser.SetSize(w, h)
		a.add.SetSize(w, h)
		a.help.SetSize(w, h)
		return a, nil

	case views.NotifyMsg:
		if msg.IsErr {
			a.logger.Info("notify", "message", msg.Text, "error", true)
			return a, a.toast.ShowError(msg.Text)
		}
		return a, a.toast.Show(msg.Text)

	case views.EntriesLoadedMsg:
		if msg.Err != nil {
			a.logger.Error("load failed", "err", msg.Err)
		} else {
			a.logger.Info("loaded", "count", len(msg.Entries))
		}
		_, cmd := a.browser.Update(msg)
		return a, cmd

	// View switching messages
	case views.SwitchToAddMsg:
		a.state = ViewAdd
		return a, a.add.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, nil

	case views.EntryAddedMsg:
		a.state = ViewBrowser
		a.browser.Refresh()
		if msg.SaveErr != nil {
			a.logger.Error("entry added but not saved", "name", msg.Entry.Name, "err", msg.SaveErr)
			return a, a.toast.ShowWarning(fmt.Sprintf("Website added but not saved: %v", msg.SaveErr))
		}
		a.logger.Info("entry added", "name", msg.Entry.Name, "url", msg.Entry.URL)
		return a, a.toast.Show(msg.Message)

	case views.ToggleThemeMsg:
		return a, a.toggleTheme()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewAdd:
		_, cmd = a.add.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) toggleTheme() tea.Cmd {
	_, err := commands.NewToggleThemeCommand(a.themes).Execute(context.Background())

	// the in-memory theme flips even when persisting fails
	styles.Use(a.themes.Current())
	// blocks are pre-rendered with the old palette
	a.browser.Refresh()

	if err != nil {
		a.logger.Warn("theme save failed", "err", err)
		return a.toast.ShowError(err.Error())
	}
	return nil
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Toast returns the notification channel
func (a *App) Toast() *views.Toast {
	return a.toast
}

// View renders the current view
func (a *App) View() string {
	var content string
	switch a.state {
	case ViewAdd:
		content = a.add.View()
	case ViewHelp:
		content = a.help.View()
	default:
		content = a.browser.View()
	}

	if toast := a.toast.View(); toast != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", toast)
	}

	style := styles.App
	if a.width > 0 && a.height > 0 {
		style = style.Width(a.width).Height(a.height)
	}
	return style.Render(content)
}
