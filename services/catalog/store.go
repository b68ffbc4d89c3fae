package catalog

import (
	"context"
	"errors"
	"sync"

	"utflykt/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrNotFound is returned by lookups when no catalog entry has the given ID.
var ErrNotFound = errors.New("catalog entry not found")

// Store is a load-once in-memory catalog. The backing list is populated at
// most once per process: once non-empty, Load returns the cached list without
// touching the network. A failed load leaves the list empty so a later Load
// retries. Concurrent Load calls share a single in-flight fetch.
type Store[T any] struct {
	name    string
	url     string
	fetcher DocumentFetcher
	decode  func(data []byte) ([]T, error)
	idOf    func(item T) string

	mu      sync.RWMutex
	items   []T
	loading bool
	loadErr string

	flight singleflight.Group
}

// NewStore creates an empty catalog store. decode parses a fetched document
// into the item list; idOf extracts an item's identifier for lookups.
func NewStore[T any](name, url string, fetcher DocumentFetcher, decode func([]byte) ([]T, error), idOf func(T) string) *Store[T] {
	return &Store[T]{
		name:    name,
		url:     url,
		fetcher: fetcher,
		decode:  decode,
		idOf:    idOf,
	}
}

// Load returns the cached item list, fetching it first if the cache is empty.
// Failures are recorded in the store's error state and logged, never returned:
// callers get an empty list and the UI degrades to "show nothing".
func (s *Store[T]) Load(ctx context.Context) []T {
	s.mu.RLock()
	if len(s.items) > 0 {
		items := s.items
		s.mu.RUnlock()
		return items
	}
	s.mu.RUnlock()

	// Concurrent callers join the same flight instead of fetching twice.
	result, _, _ := s.flight.Do("load", func() (interface{}, error) {
		return s.fetchAndStore(ctx), nil
	})
	return result.([]T)
}

func (s *Store[T]) fetchAndStore(ctx context.Context) []T {
	s.mu.Lock()
	// A flight that finished while we waited on the key may have filled the cache.
	if len(s.items) > 0 {
		items := s.items
		s.mu.Unlock()
		return items
	}
	s.loading = true
	s.loadErr = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	logger := utils.GetLogger()

	data, err := s.fetcher.FetchDocument(ctx, s.url)
	if err != nil {
		s.recordError(err.Error())
		logger.Error("Failed to load catalog", zap.String("catalog", s.name), zap.Error(err))
		return []T{}
	}

	items, err := s.decode(data)
	if err != nil {
		s.recordError("failed to parse " + s.name + " document: " + err.Error())
		logger.Error("Failed to parse catalog document", zap.String("catalog", s.name), zap.Error(err))
		return []T{}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	logger.Sugar().Infof("Loaded %d %s entries", len(items), s.name)
	return items
}

func (s *Store[T]) recordError(msg string) {
	s.mu.Lock()
	s.loadErr = msg
	s.mu.Unlock()
}

// Warm triggers a Load and discards the result. Used by the startup loader.
func (s *Store[T]) Warm(ctx context.Context) {
	s.Load(ctx)
}

// Items returns the cached list without triggering a fetch.
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// GetByID scans the cached list for an entry with the given ID.
func (s *Store[T]) GetByID(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if s.idOf(item) == id {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Filter returns all cached entries matching the predicate, order preserved.
// The predicate must not mutate the item.
func (s *Store[T]) Filter(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []T
	for _, item := range s.items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Loading reports whether a fetch is currently in flight.
func (s *Store[T]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the message of the most recent failed load, or "" after a
// successful or not-yet-attempted load.
func (s *Store[T]) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Name returns the catalog name used in logs and error messages.
func (s *Store[T]) Name() string {
	return s.name
}
