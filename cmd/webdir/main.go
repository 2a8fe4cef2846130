package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"webdir/internal/adapters/browser"
	"webdir/internal/adapters/clipboard"
	"webdir/internal/adapters/tui"
	"webdir/internal/application"
	"webdir/internal/config"
)

func main() {
	cfg := config.Load()

	// stdout belongs to the UI
	logFile, err := cfg.OpenLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := cfg.NewLogger(logFile)

	// Initialize adapters
	cache, err := cfg.OpenCache(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cache.Close()

	store := application.NewEntryStore(cache, cfg.SeedSource(logger), logger)
	themes := application.NewThemeController(cache)

	clip := clipboard.System{}
	if !clip.Available() {
		logger.Warn("no clipboard utility found, copy will fail")
	}

	// Create and run TUI app
	app := tui.NewApp(store, themes, clip, browser.NewOpener(), logger)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Error("tui exited", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
