package state

import (
	"context"
	"slices"
	"sync"
)

// Keyed is a record with a server-assigned id.
type Keyed interface {
	Key() string
}

// Collection tracks a list of records plus the status of the last request
// made against it.
type Collection[T Keyed] struct {
	mu    sync.RWMutex
	t     tracker
	items []T
}

// Fetch replaces the list with the result of op.
func (c *Collection[T]) Fetch(ctx context.Context, op func(ctx context.Context) ([]T, error)) error {
	c.mu.Lock()
	ticket := c.t.begin()
	c.mu.Unlock()

	items, err := op(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.t.latest(ticket) {
		return err
	}
	if err == nil {
		c.items = slices.Clone(items)
	}
	c.t.settle(ticket, err)
	return err
}

// Create appends the record returned by op.
func (c *Collection[T]) Create(ctx context.Context, op func(ctx context.Context) (T, error)) (T, error) {
	return c.mutate(ctx, op, func(v T) {
		c.items = append(c.items, v)
	})
}

// Update replaces the record with the same key as the one returned by op.
// Records not in the list are left alone.
func (c *Collection[T]) Update(ctx context.Context, op func(ctx context.Context) (T, error)) (T, error) {
	return c.mutate(ctx, op, func(v T) {
		if i := c.index(v.Key()); i >= 0 {
			c.items[i] = v
		}
	})
}

// Remove runs op and drops the record with key id once it succeeds.
func (c *Collection[T]) Remove(ctx context.Context, id string, op func(ctx context.Context) error) error {
	_, err := c.mutate(ctx, func(ctx context.Context) (T, error) {
		var zero T
		return zero, op(ctx)
	}, func(T) {
		c.items = slices.DeleteFunc(c.items, func(v T) bool { return v.Key() == id })
	})
	return err
}

func (c *Collection[T]) mutate(ctx context.Context, op func(ctx context.Context) (T, error), apply func(T)) (T, error) {
	c.mu.Lock()
	ticket := c.t.begin()
	c.mu.Unlock()

	v, err := op(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil && !c.t.stale(ticket) {
		apply(v)
	}
	c.t.settle(ticket, err)
	return v, err
}

func (c *Collection[T]) index(id string) int {
	return slices.IndexFunc(c.items, func(v T) bool { return v.Key() == id })
}

// Find returns the record with key id, if it is in the list.
func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Snapshot() Snapshot[[]T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot[[]T]{Status: c.t.status, Data: slices.Clone(c.items), Err: c.t.err}
}

// Clear empties the list and returns to Idle.
func (c *Collection[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t.reset()
	c.items = nil
}

func (c *Collection[T]) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t.clearError()
}
