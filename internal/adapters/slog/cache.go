package slog

import (
	"log/slog"

	"webdir/internal/ports"
)

// Ensure LoggingCache implements ports.Cache.
var _ ports.Cache = (*LoggingCache)(nil)

// LoggingCache wraps a Cache with debug logging.
type LoggingCache struct {
	next   ports.Cache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next ports.Cache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

func (c *LoggingCache) Get(key string) (value string, ok bool, err error) {
	value, ok, err = c.next.Get(key)
	c.logger.Debug("cache get", "key", key, "hit", ok, "bytes", len(value), "err", err)
	return value, ok, err
}

func (c *LoggingCache) Set(key, value string) error {
	err := c.next.Set(key, value)
	if err != nil {
		c.logger.Error("cache set", "key", key, "err", err)
		return err
	}
	c.logger.Debug("cache set", "key", key, "bytes", len(value))
	return nil
}

func (c *LoggingCache) Delete(key string) error {
	err := c.next.Delete(key)
	c.logger.Debug("cache delete", "key", key, "err", err)
	return err
}

func (c *LoggingCache) Close() error {
	return c.next.Close()
}
