package asset

import (
	"errors"
	"fmt"
	"log"
)

// ErrUnknownHandle is returned for handles the catalog never issued.
var ErrUnknownHandle = errors.New("asset: unknown handle")

// LoadState is the resolution state of a handle inside a Cache.
type LoadState int

const (
	NotLoaded LoadState = iota
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "not loaded"
	}
}

// Loader reads the asset at an absolute or root-joined path.
type Loader[T any] interface {
	Load(path string) (T, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc[T any] func(path string) (T, error)

func (f LoaderFunc[T]) Load(path string) (T, error) {
	return f(path)
}

type cacheEntry[T any] struct {
	state LoadState
	value T
	err   error
}

// Cache resolves catalog handles into loaded values on first use. A failed
// load is remembered and logged once; it is not retried.
type Cache[T any] struct {
	loader  Loader[T]
	logger  *log.Logger
	entries map[Handle]*cacheEntry[T]
}

// NewCache creates a cache backed by loader. A nil logger uses log.Default().
func NewCache[T any](loader Loader[T], logger *log.Logger) *Cache[T] {
	if logger == nil {
		logger = log.Default()
	}
	return &Cache[T]{
		loader:  loader,
		logger:  logger,
		entries: make(map[Handle]*cacheEntry[T]),
	}
}

// Get returns the value for h, loading it through catalog if needed.
func (c *Cache[T]) Get(catalog *Catalog, h Handle) (T, error) {
	if entry, ok := c.entries[h]; ok {
		return entry.value, entry.err
	}

	entry := &cacheEntry[T]{}
	c.entries[h] = entry

	path, ok := catalog.Resolve(h)
	if !ok {
		entry.state = Failed
		entry.err = ErrUnknownHandle
		return entry.value, entry.err
	}

	value, err := c.loader.Load(path)
	if err != nil {
		entry.state = Failed
		entry.err = fmt.Errorf("asset: load %s: %w", path, err)
		c.logger.Printf("%v", entry.err)
		return entry.value, entry.err
	}

	entry.state = Loaded
	entry.value = value
	return value, nil
}

// State reports how far h has been resolved.
func (c *Cache[T]) State(h Handle) LoadState {
	if entry, ok := c.entries[h]; ok {
		return entry.state
	}
	return NotLoaded
}
