package mocks

import (
	"context"
	"sync"
)

// ViewCache is an in-memory stand-in for the redis view cache. It records
// invalidated paths so tests can assert which views a mutation staled.
type ViewCache struct {
	mu          sync.Mutex
	store       map[string][]byte
	Invalidated []string
}

func NewViewCache() *ViewCache {
	return &ViewCache{store: make(map[string][]byte)}
}

func (c *ViewCache) Get(ctx context.Context, path string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.store[path]

	return data, ok, nil
}

func (c *ViewCache) Set(ctx context.Context, path string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[path] = data

	return nil
}

func (c *ViewCache) Invalidate(ctx context.Context, paths ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, path := range paths {
		delete(c.store, path)
		c.Invalidated = append(c.Invalidated, path)
	}

	return nil
}
