// Package inmemory keeps reduction results in a process-local map.
package inmemory

import (
	"context"
	"sync"

	"github.com/tymbaca/parreduce-go/pkg/caller"
	"github.com/tymbaca/parreduce-go/pkg/tracer"
)

type Cache struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func New() *Cache {
	return &Cache{
		data: make(map[string][]byte, 64),
	}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	_, span := tracer.Start(ctx, caller.Name())
	defer span.End()

	c.mu.RLock()
	defer c.mu.RUnlock()

	val, ok := c.data[key]
	return val, ok
}

func (c *Cache) Put(ctx context.Context, key string, val []byte) {
	_, span := tracer.Start(ctx, caller.Name())
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = val
}
