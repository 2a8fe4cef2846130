package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"webdir/internal/application"
	"webdir/internal/application/commands"
	"webdir/internal/config"
	"webdir/internal/ports"
)

var (
	cfg       config.Config
	dataDir   string
	seedFlag  string
	cacheFlag string

	cache  ports.Cache
	store  *application.EntryStore
	themes *application.ThemeController
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "webdir-cli",
	Short: "CLI for a personal directory of websites",
	Long: `webdir-cli lists, filters, and adds websites in your local directory.

The directory is seeded from a JSON document the first time it is used and
cached locally afterwards.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg.DataDir = dataDir
		cfg.Seed = seedFlag
		cfg.Cache = cacheFlag
		if os.Getenv(config.EnvLogLevel) == "" {
			// stderr is shared with command errors
			cfg.LogLevel = slog.LevelWarn
		}
		logger = cfg.NewLogger(os.Stderr)

		var err error
		cache, err = cfg.OpenCache(logger)
		if err != nil {
			return err
		}
		store = application.NewEntryStore(cache, cfg.SeedSource(logger), logger)
		themes = application.NewThemeController(cache)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if cache == nil {
			return nil
		}
		return cache.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cfg = config.Load()
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", cfg.DataDir, "directory holding the cache")
	rootCmd.PersistentFlags().StringVar(&seedFlag, "seed", cfg.Seed, "seed document: http(s) URL or file path (default: bundled list)")
	rootCmd.PersistentFlags().StringVar(&cacheFlag, "cache", cfg.Cache, "cache backend: sqlite or diskv")
}

// GetStore returns the entry store after loading it
func GetStore(ctx context.Context) (*application.EntryStore, error) {
	if _, err := commands.NewLoadCommand(store).Execute(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// GetThemes returns the theme controller with the persisted theme applied
func GetThemes() (*application.ThemeController, error) {
	if _, err := themes.ApplyOnLoad(); err != nil {
		return nil, err
	}
	return themes, nil
}
