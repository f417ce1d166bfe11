package state

import (
	"context"
	"sync"
)

// Container tracks a single value loaded over the network.
type Container[T any] struct {
	mu   sync.RWMutex
	t    tracker
	data T
}

// Load runs op and stores its result. A result that arrives after a newer
// dispatch is dropped. The error of op is always returned to the caller.
func (c *Container[T]) Load(ctx context.Context, op func(ctx context.Context) (T, error)) error {
	c.mu.Lock()
	ticket := c.t.begin()
	c.mu.Unlock()

	v, err := op(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.t.latest(ticket) {
		return err
	}
	if err == nil {
		c.data = v
	}
	c.t.settle(ticket, err)
	return err
}

// Set replaces the value without a request, leaving the status Succeeded.
func (c *Container[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t.seq++
	c.t.status = StatusSucceeded
	c.t.err = nil
	c.data = v
}

func (c *Container[T]) Snapshot() Snapshot[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot[T]{Status: c.t.status, Data: c.data, Err: c.t.err}
}

// Reset returns the container to Idle with a zero value. In-flight requests
// become stale.
func (c *Container[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t.reset()
	var zero T
	c.data = zero
}

func (c *Container[T]) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t.clearError()
}
