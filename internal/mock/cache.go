package mock

import (
	"sync"
	"time"

	"webdir/internal/ports"
)

var _ ports.Cache = (*Cache)(nil)

// Cache is an in-memory ports.Cache. SetErr and GetErr, when non-nil, are
// returned instead of touching Data. SetDelay stretches each Set between
// reading and writing Data.
type Cache struct {
	Data     map[string]string
	GetErr   error
	SetErr   error
	SetDelay time.Duration
	Sets     int

	mu sync.Mutex
}

// NewCache returns a Cache seeded with the given key/value pairs
func NewCache(kv map[string]string) *Cache {
	data := make(map[string]string, len(kv))
	for k, v := range kv {
		data[k] = v
	}
	return &Cache{Data: data}
}

func (c *Cache) Get(key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.GetErr != nil {
		return "", false, c.GetErr
	}
	v, ok := c.Data[key]
	return v, ok, nil
}

func (c *Cache) Set(key, value string) error {
	if c.SetErr != nil {
		return c.SetErr
	}
	time.Sleep(c.SetDelay)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Data == nil {
		c.Data = make(map[string]string)
	}
	c.Data[key] = value
	c.Sets++
	return nil
}

func (c *Cache) Delete(key string) error {
	if c.SetErr != nil {
		return c.SetErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.Data, key)
	return nil
}

func (c *Cache) Close() error {
	return nil
}
