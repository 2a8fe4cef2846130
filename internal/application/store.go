package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"webdir/internal/domain"
	"webdir/internal/ports"
)

// EntryStore owns the entry collection and keeps the durable cache in sync
// with it. Every mutation rewrites the whole collection under ports.KeyEntries.
type EntryStore struct {
	cache  ports.Cache
	seed   ports.SeedSource
	logger *slog.Logger

	// mu is held across cache writes so saves land in mutation order
	mu      sync.RWMutex
	entries domain.Collection
	loading bool
	pending domain.Collection // added while Load is in flight
}

// NewEntryStore creates an empty store. Call Load to populate it.
func NewEntryStore(cache ports.Cache, seed ports.SeedSource, logger *slog.Logger) *EntryStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &EntryStore{
		cache:   cache,
		seed:    seed,
		logger:  logger,
		entries: domain.Collection{},
	}
}

// Load populates the store from the cache, or from the seed source when the
// cache is empty or unreadable. A successful seed fetch is written back to
// the cache. Entries added while Load is in flight are kept after the loaded
// ones. On failure only those entries remain and a *LoadError is returned.
func (s *EntryStore) Load(ctx context.Context) (domain.Collection, error) {
	s.mu.Lock()
	s.loading = true
	s.pending = nil
	s.mu.Unlock()

	entries, fromSeed, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	pending := s.pending
	s.loading = false
	s.pending = nil
	s.entries = append(domain.Collection(entries).Clone(), pending...)

	if err != nil {
		if len(pending) > 0 {
			if perr := s.persistLocked(); perr != nil {
				s.logger.Warn("failed to cache entries added during load", "err", perr)
			}
		}
		return s.entries.Clone(), err
	}

	if fromSeed || len(pending) > 0 {
		if err := s.persistLocked(); err != nil {
			s.logger.Warn("failed to cache loaded entries", "err", err)
		}
	}
	return s.entries.Clone(), nil
}

// fetch reads the cached collection, falling back to the seed source
func (s *EntryStore) fetch(ctx context.Context) (entries []domain.Entry, fromSeed bool, err error) {
	raw, ok, err := s.cache.Get(ports.KeyEntries)
	if err != nil {
		return nil, false, &LoadError{Op: "read cache", Err: err}
	}

	var cacheErr error
	if ok {
		entries, err := DecodeEntries(raw)
		if err == nil {
			return entries, false, nil
		}
		cacheErr = err
		s.logger.Warn("cached entries unreadable, falling back to seed", "err", err)
	}

	entries, err = s.seed.Fetch(ctx)
	if err != nil {
		loadErr := &LoadError{Op: "fetch seed", Err: fmt.Errorf("%w: %w", ErrRemoteFetchFailed, err)}
		if cacheErr != nil {
			loadErr.Err = errors.Join(cacheErr, loadErr.Err)
		}
		return nil, false, loadErr
	}
	return entries, true, nil
}

// Add appends e and rewrites the cache. The entry stays in memory even if
// the cache write fails. While a Load is in flight the write is left to Load.
func (s *EntryStore) Add(e domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, e)
	if s.loading {
		s.pending = append(s.pending, e)
		return nil
	}
	return s.persistLocked()
}

// Entries returns a copy of the current collection
func (s *EntryStore) Entries() domain.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.Clone()
}

// Categories returns the distinct categories in first-seen order
func (s *EntryStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.Categories()
}

// Len returns the number of entries
func (s *EntryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Reset drops the cached collection so the next Load reads the seed again
func (s *EntryStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cache.Delete(ports.KeyEntries); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	s.entries = domain.Collection{}
	return nil
}

// persistLocked writes the collection to the cache. s.mu must be held for writing.
func (s *EntryStore) persistLocked() error {
	raw, err := EncodeEntries(s.entries)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}

	if err := s.cache.Set(ports.KeyEntries, raw); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheWrite, err)
	}
	return nil
}

// EncodeEntries serializes a collection as a JSON array
func EncodeEntries(entries domain.Collection) (string, error) {
	data, err := json.Marshal(entries.Clone())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeEntries parses and validates a cached JSON array of entries
func DecodeEntries(raw string) (domain.Collection, error) {
	var entries domain.Collection
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCacheDeserialize, err)
	}
	for i, e := range entries {
		if err := ValidateEntry(e); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrCacheDeserialize, i, err)
		}
	}
	return entries.Clone(), nil
}
