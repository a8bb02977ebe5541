package storage

import (
	"context"
)

// Collection is an append-only, insertion-ordered sequence of records
type Collection[T any] interface {
	// Append adds a record at the end of the collection
	Append(ctx context.Context, record T) error
	// List returns a snapshot of every record in insertion order
	List(ctx context.Context) ([]T, error)
	// Len returns the number of records
	Len(ctx context.Context) (int, error)
	Close() error
}
