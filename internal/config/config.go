package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"webdir/internal/adapters/diskv"
	"webdir/internal/adapters/filesystem"
	webhttp "webdir/internal/adapters/http"
	webslog "webdir/internal/adapters/slog"
	"webdir/internal/adapters/sqlite"
	"webdir/internal/ports"
)

// Environment variables
const (
	EnvDataDir  = "WEBDIR_DATA_DIR"
	EnvSeed     = "WEBDIR_SEED"
	EnvCache    = "WEBDIR_CACHE"
	EnvLogLevel = "WEBDIR_LOG_LEVEL"
)

// Cache backends
const (
	CacheSQLite = "sqlite"
	CacheDiskv  = "diskv"
)

// LogFileName is the TUI log file inside the data directory
const LogFileName = "webdir.log"

// Config holds runtime settings resolved from the environment
type Config struct {
	DataDir  string
	Seed     string // http(s) URL, file path, or "" for the bundled list
	Cache    string
	LogLevel slog.Level
}

// Load reads an optional .env file, then the environment
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DataDir:  DataDir(),
		Seed:     os.Getenv(EnvSeed),
		Cache:    envOrDefault(EnvCache, CacheSQLite),
		LogLevel: ParseLevel(os.Getenv(EnvLogLevel)),
	}
}

// DataDir returns the data directory from WEBDIR_DATA_DIR,
// falling back to $XDG_DATA_HOME/webdir.
func DataDir() string {
	if env := os.Getenv(EnvDataDir); env != "" {
		return expandHome(env)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "webdir")
}

// ParseLevel maps debug/info/warn/error to a slog level; anything else is info
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// OpenCache opens the configured cache backend wrapped with logging
func (c Config) OpenCache(logger *slog.Logger) (ports.Cache, error) {
	var (
		cache ports.Cache
		err   error
	)
	switch strings.ToLower(c.Cache) {
	case "", CacheSQLite:
		var db *sqlite.Cache
		if db, err = sqlite.Open(c.DataDir); err == nil {
			logger.Debug("cache opened", "backend", CacheSQLite, "path", db.Path())
			cache = db
		}
	case CacheDiskv:
		cache, err = diskv.Open(filepath.Join(expandHome(c.DataDir), "cache"))
	default:
		return nil, fmt.Errorf("unknown cache backend %q (want %s or %s)", c.Cache, CacheSQLite, CacheDiskv)
	}
	if err != nil {
		return nil, err
	}
	return webslog.NewLoggingCache(cache, logger), nil
}

// SeedSource returns the seed source for c.Seed wrapped with logging
func (c Config) SeedSource(logger *slog.Logger) ports.SeedSource {
	var (
		src  ports.SeedSource
		name string
	)
	switch {
	case c.Seed == "":
		src, name = filesystem.NewDefaultSeedSource(), "embedded:"+filesystem.DefaultSeedName
	case strings.HasPrefix(c.Seed, "http://"), strings.HasPrefix(c.Seed, "https://"):
		src, name = webhttp.NewSeedSource(c.Seed), c.Seed
	default:
		path := expandHome(c.Seed)
		src, name = filesystem.NewFileSeedSource(path), path
	}
	return webslog.NewLoggingSeedSource(src, name, logger)
}

// NewLogger returns a text logger writing to w at the configured level
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}

// OpenLogFile opens (appending) the log file inside the data directory
func (c Config) OpenLogFile() (*os.File, error) {
	dir := expandHome(c.DataDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return os.OpenFile(filepath.Join(dir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
