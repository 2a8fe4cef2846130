// Package diskv provides a ports.Cache backed by one file per key.
package diskv

import (
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"webdir/internal/ports"
)

var _ ports.Cache = (*Cache)(nil)

// Cache stores each key as a file under its base path
type Cache struct {
	d *diskv.Diskv
}

// Open returns a Cache rooted at basePath
func Open(basePath string) (*Cache, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Cache{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func (c *Cache) Get(key string) (string, bool, error) {
	if !c.d.Has(key) {
		return "", false, nil
	}
	val, err := c.d.Read(key)
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return string(val), true, nil
}

func (c *Cache) Set(key, value string) error {
	if err := c.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (c *Cache) Delete(key string) error {
	if !c.d.Has(key) {
		return nil
	}
	if err := c.d.Erase(key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; diskv holds no open handles
func (c *Cache) Close() error {
	return nil
}
