package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/carlmjohnson/be"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()

	sq, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	be.NilErr(t, err)
	t.Cleanup(func() { sq.Close() })

	return map[string]Backend{
		"file":   NewFile(t.TempDir()),
		"sqlite": sq,
		"memory": NewMemory(),
	}
}

func TestBackendRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := b.Get(ctx, "slot")
			be.True(t, errors.Is(err, ErrNotFound))

			be.NilErr(t, b.Put(ctx, "slot", []byte(`[{"id":"1"}]`)))
			got, err := b.Get(ctx, "slot")
			be.NilErr(t, err)
			be.Equal(t, `[{"id":"1"}]`, string(got))

			be.NilErr(t, b.Put(ctx, "slot", []byte(`[]`)))
			got, err = b.Get(ctx, "slot")
			be.NilErr(t, err)
			be.Equal(t, `[]`, string(got))
		})
	}
}

func TestGetMissingKeyIsStorageError(t *testing.T) {
	_, err := NewMemory().Get(context.Background(), "nope")

	var serr *Error
	be.True(t, errors.As(err, &serr))
	be.Equal(t, "get", serr.Op)
	be.Equal(t, "nope", serr.Key)
}

func TestFileRejectsPathKeys(t *testing.T) {
	f := NewFile(t.TempDir())

	for _, key := range []string{"", "../escape", "a/b", ".."} {
		err := f.Put(context.Background(), key, []byte("x"))
		be.Nonzero(t, err)
	}
}

func TestFileCreatesDataDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	f := NewFile(dir)

	be.NilErr(t, f.Put(context.Background(), "slot", []byte("[]")))

	data, err := os.ReadFile(filepath.Join(dir, "slot.json"))
	be.NilErr(t, err)
	be.Equal(t, "[]", string(data))

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	be.NilErr(t, err)
	be.Equal(t, 1, len(entries))
}

func TestFilePutReplacesSlot(t *testing.T) {
	dir := t.TempDir()
	f := NewFile(dir)
	ctx := context.Background()

	be.NilErr(t, f.Put(ctx, "slot", []byte(`[{"id":"a"}]`)))
	be.NilErr(t, f.Put(ctx, "slot", []byte("[]")))

	got, err := f.Get(ctx, "slot")
	be.NilErr(t, err)
	be.Equal(t, "[]", string(got))

	entries, err := os.ReadDir(dir)
	be.NilErr(t, err)
	be.Equal(t, 1, len(entries))
	be.Equal(t, "slot.json", entries[0].Name())
}

func TestSQLiteReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "myspend.db")
	ctx := context.Background()

	first, err := NewSQLite(path)
	be.NilErr(t, err)
	be.NilErr(t, first.Put(ctx, "slot", []byte("[1]")))
	be.NilErr(t, first.Close())

	second, err := NewSQLite(path)
	be.NilErr(t, err)
	defer second.Close()

	got, err := second.Get(ctx, "slot")
	be.NilErr(t, err)
	be.Equal(t, "[1]", string(got))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		kind    string
		wantErr bool
	}{
		{kind: FileBackend},
		{kind: ""},
		{kind: MemoryBackend},
		{kind: SQLiteBackend},
		{kind: "redis", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			b, err := Open(tt.kind, dir)
			if tt.wantErr {
				be.Nonzero(t, err)
				return
			}
			be.NilErr(t, err)
			be.NilErr(t, b.Close())
		})
	}
}
