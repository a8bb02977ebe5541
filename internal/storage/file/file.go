// Package file stores each collection as a JSON array in a flat file. The
// whole array is rewritten on every append through a temp file and rename,
// so a reader never sees a half-written file.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Collection is a flat-file backed collection
type Collection[T any] struct {
	path    string
	records []T
	log     zerolog.Logger
	mu      sync.RWMutex
}

// Open loads the collection stored at <dir>/<name>.json, creating the
// directory when needed. A missing file opens as an empty collection.
func Open[T any](dir, name string, log zerolog.Logger) (*Collection[T], error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	c := &Collection[T]{
		path:    filepath.Join(dir, name+".json"),
		records: make([]T, 0),
		log:     log.With().Str("component", "file-store").Str("collection", name).Logger(),
	}

	data, err := os.ReadFile(c.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", c.path, err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &c.records); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", c.path, err)
		}
		if c.records == nil {
			c.records = make([]T, 0)
		}
	}

	c.log.Info().
		Str("path", c.path).
		Int("records", len(c.records)).
		Msg("Collection loaded")

	return c, nil
}

// Path returns the backing file path
func (c *Collection[T]) Path() string {
	return c.path
}

func (c *Collection[T]) Append(ctx context.Context, record T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := append(c.records[:len(c.records):len(c.records)], record)
	if err := c.write(next); err != nil {
		return err
	}
	c.records = next
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

// write replaces the backing file with records
func (c *Collection[T]) write(records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, c.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", c.path, err)
	}

	c.log.Debug().Int("records", len(records)).Msg("Collection written")
	return nil
}
