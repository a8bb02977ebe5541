package memory

import (
	"context"
	"sync"
)

// Collection keeps records in process memory for the lifetime of the process
type Collection[T any] struct {
	records []T
	mu      sync.RWMutex
}

// New creates an empty in-memory collection
func New[T any]() *Collection[T] {
	return &Collection[T]{records: make([]T, 0)}
}

func (c *Collection[T]) Append(ctx context.Context, record T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = append(c.records, record)
	return nil
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.records))
	copy(out, c.records)
	return out, nil
}

func (c *Collection[T]) Len(ctx context.Context) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.records), nil
}

func (c *Collection[T]) Close() error {
	return nil
}
