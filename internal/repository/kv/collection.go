// Package kv implements the record stores: each collection is one JSON array
// persisted under a fixed key of a kvstore.Store and round-tripped whole on
// every mutation.
package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"jobify-backend/pkg/kvstore"
	"jobify-backend/pkg/logger"
)

const (
	JobsKey = "jobify_jobs"
	CVsKey  = "jobify_cvs"
)

type Identifiable interface {
	GetID() string
}

// Collection serializes its own writes: every load/modify/save round trip
// runs under mu, so concurrent requests in one process never overwrite each
// other. Writers in other processes sharing the store are not coordinated.
type Collection[T Identifiable] struct {
	store kvstore.Store
	key   string
	mu    sync.Mutex
}

func NewCollection[T Identifiable](store kvstore.Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// Load returns the persisted collection. A missing key, a read failure and a
// corrupt payload all yield an empty collection.
func (c *Collection[T]) Load(ctx context.Context) []T {
	raw, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		logger.Log.Error("Error loading collection from store", "key", c.key, "error", err)
		return []T{}
	}
	if !found || strings.TrimSpace(raw) == "" {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Log.Error("Corrupt collection payload, treating as empty", "key", c.key, "error", err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// Save replaces the whole persisted collection.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, items)
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, string(b)); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

// SaveOrLog is Save for call sites that only want the failure logged.
func (c *Collection[T]) SaveOrLog(ctx context.Context, items []T) {
	if err := c.Save(ctx, items); err != nil {
		logger.Log.Error("Error saving collection to store", "key", c.key, "error", err)
	}
}

// Mutate runs fn over the loaded collection and saves its result in a single
// locked load/save round trip. fn returning nil leaves the store untouched and
// Mutate returns the collection as loaded.
func (c *Collection[T]) Mutate(ctx context.Context, fn func([]T) []T) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.Load(ctx)
	updated := fn(current)
	if updated == nil {
		return current, nil
	}
	if err := c.save(ctx, updated); err != nil {
		logger.Log.Error("Error saving collection to store", "key", c.key, "error", err)
		return updated, err
	}
	return updated, nil
}

// Add prepends item so the newest record comes first.
func (c *Collection[T]) Add(ctx context.Context, item T) ([]T, error) {
	return c.Mutate(ctx, func(items []T) []T {
		return append([]T{item}, items...)
	})
}

// Update replaces the record with the same id. Unknown ids leave the collection unchanged.
func (c *Collection[T]) Update(ctx context.Context, item T) ([]T, error) {
	return c.Mutate(ctx, func(items []T) []T {
		for i := range items {
			if items[i].GetID() == item.GetID() {
				items[i] = item
			}
		}
		return items
	})
}

func (c *Collection[T]) Delete(ctx context.Context, id string) ([]T, error) {
	return c.Mutate(ctx, func(items []T) []T {
		kept := make([]T, 0, len(items))
		for _, it := range items {
			if it.GetID() != id {
				kept = append(kept, it)
			}
		}
		return kept
	})
}

func (c *Collection[T]) GetByID(ctx context.Context, id string) (T, bool) {
	for _, it := range c.Load(ctx) {
		if it.GetID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Seed stores items only when the collection is empty and returns whatever
// the collection holds afterwards.
func (c *Collection[T]) Seed(ctx context.Context, items []T) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing := c.Load(ctx)
	if len(existing) > 0 {
		return existing, nil
	}
	if err := c.save(ctx, items); err != nil {
		logger.Log.Error("Error seeding collection", "key", c.key, "error", err)
		return items, err
	}
	return items, nil
}

// Clear removes the persisted collection entirely.
func (c *Collection[T]) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Delete(ctx, c.key); err != nil {
		logger.Log.Error("Error clearing collection", "key", c.key, "error", err)
		return err
	}
	return nil
}
