// Package storage keeps opaque values under string keys in a local backend.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// Backend kinds accepted by Open.
const (
	FileBackend   = "file"
	SQLiteBackend = "sqlite"
	MemoryBackend = "memory"
)

// ErrNotFound is returned when a key holds no value.
var ErrNotFound = errors.New("key not found")

// Backend is a local key/value slot store.
type Backend interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put replaces the value stored under key.
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Error describes a failed backend operation.
type Error struct {
	Op  string
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Open creates the backend named by kind rooted at dataDir.
func Open(kind, dataDir string) (Backend, error) {
	switch kind {
	case FileBackend, "":
		return NewFile(dataDir), nil
	case SQLiteBackend:
		return NewSQLite(filepath.Join(dataDir, "myspend.db"))
	case MemoryBackend:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (must be one of file, sqlite, memory)", kind)
	}
}
