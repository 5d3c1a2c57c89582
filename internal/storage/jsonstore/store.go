// Package jsonstore persists one entity collection per flat JSON file, each
// file holding a single top-level array. Every write replaces the whole file;
// there are no partial updates, no append log and no transactions. A mutex
// serializes writers per collection so one request's read-modify-write cannot
// silently overwrite another's (the only concurrency control in the system).
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// ErrUnavailable marks a collection whose backing file is missing or holds
// malformed JSON. Callers surface it as a service-unavailable condition
// rather than treating the collection as empty.
var ErrUnavailable = errors.New("collection unavailable")

// Collection is a whole-file JSON array store for records of type T.
type Collection[T any] struct {
	fs   afero.Fs
	path string
	mu   sync.RWMutex
}

func New[T any](fs afero.Fs, path string) *Collection[T] {
	return &Collection[T]{fs: fs, path: path}
}

// Path returns the collection's file location.
func (c *Collection[T]) Path() string {
	return c.path
}

// ReadAll loads the full collection in insertion order.
func (c *Collection[T]) ReadAll() ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.readLocked()
}

// WriteAll replaces the collection file with the given records.
func (c *Collection[T]) WriteAll(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocked(records)
}

// Update performs a read-modify-write of the whole collection under the
// write lock. mutate receives the current records and returns the records to
// persist; returning an error aborts without writing.
func (c *Collection[T]) Update(mutate func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.readLocked()
	if err != nil {
		return err
	}

	updated, err := mutate(records)
	if err != nil {
		return err
	}

	return c.writeLocked(updated)
}

func (c *Collection[T]) readLocked() ([]T, error) {
	data, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, c.path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrUnavailable, c.path, err)
	}

	return records, nil
}

func (c *Collection[T]) writeLocked(records []T) error {
	// Persist an empty array rather than JSON null so a later read succeeds.
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.path, err)
	}

	if err := c.fs.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("mkdir for %s: %w", c.path, err)
	}

	if err := afero.WriteFile(c.fs, c.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}

	return nil
}

// CheckDir reports whether the data directory backing the collections exists
// and is readable; used by the health endpoint.
func CheckDir(fs afero.Fs, dir string) error {
	info, err := fs.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: stat %s: %v", ErrUnavailable, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrUnavailable, dir)
	}
	return nil
}
