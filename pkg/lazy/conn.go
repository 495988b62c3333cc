package lazy

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

const dialKey = "dial"

// DialFunc establishes the underlying connection. It receives a context that
// is detached from the caller's cancellation, so it must apply its own timeout.
type DialFunc[T any] func(ctx context.Context) (T, error)

// Conn is a lazily established, process-wide connection.
//
// The first Get dials; concurrent callers that arrive while the dial is in
// flight wait for the same attempt instead of opening their own. A successful
// result is kept for the lifetime of Conn. A failed dial is not remembered, the
// next Get tries again.
type Conn[T any] struct {
	dial DialFunc[T]

	mu    sync.RWMutex
	value T
	ready bool

	group singleflight.Group
}

func New[T any](dial DialFunc[T]) *Conn[T] {
	return &Conn[T]{dial: dial}
}

func (c *Conn[T]) Get(ctx context.Context) (T, error) {
	if value, ok := c.loaded(); ok {
		return value, nil
	}

	resultCh := c.group.DoChan(dialKey, func() (any, error) {
		if value, ok := c.loaded(); ok {
			return value, nil
		}

		value, err := c.dial(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.value = value
		c.ready = true
		c.mu.Unlock()

		return value, nil
	})

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case res := <-resultCh:
		if res.Err != nil {
			var zero T
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// Loaded returns the established value without dialing.
func (c *Conn[T]) Loaded() (T, bool) {
	return c.loaded()
}

func (c *Conn[T]) loaded() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value, c.ready
}
