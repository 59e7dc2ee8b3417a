package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// File stores each key as <dir>/<key>.json.
type File struct {
	dir string
}

// NewFile returns a file backend rooted at dir. The directory is created on first write.
func NewFile(dir string) *File {
	return &File{dir: dir}
}

func (f *File) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key")
	}
	return filepath.Join(f.dir, key+".json"), nil
}

func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, &Error{Op: "get", Key: key, Err: err}
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &Error{Op: "get", Key: key, Err: ErrNotFound}
	}
	if err != nil {
		return nil, &Error{Op: "get", Key: key, Err: err}
	}

	return data, nil
}

// Put replaces the slot atomically, so a crash never leaves a half written file.
func (f *File) Put(_ context.Context, key string, value []byte) error {
	p, err := f.path(key)
	if err != nil {
		return &Error{Op: "put", Key: key, Err: err}
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return &Error{Op: "put", Key: key, Err: fmt.Errorf("create data directory: %w", err)}
	}

	if err := atomic.WriteFile(p, bytes.NewReader(value)); err != nil {
		return &Error{Op: "put", Key: key, Err: err}
	}

	return nil
}

func (f *File) Close() error {
	return nil
}
