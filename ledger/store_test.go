package ledger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/Rshep3087/myspend/storage"
	"github.com/carlmjohnson/be"
	"github.com/charmbracelet/log"
)

type failingBackend struct {
	*storage.Memory
}

func (f *failingBackend) Put(_ context.Context, key string, _ []byte) error {
	return &storage.Error{Op: "put", Key: key, Err: errors.New("disk full")}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(t *testing.T, backend storage.Backend, opts ...Option) *Store {
	t.Helper()

	base := []Option{
		WithIDGenerator(sequentialIDs()),
		WithClock(func() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) }),
		WithLogger(log.New(io.Discard)),
	}
	return Open(context.Background(), backend, append(base, opts...)...)
}

func mustAdd(t *testing.T, s *Store, d Draft) Transaction {
	t.Helper()
	tx, err := s.Add(d)
	be.NilErr(t, err)
	return tx
}

var (
	coffee = Draft{Text: "Coffee", Amount: "50", Type: Expense, Category: "Food", Date: "2024-01-05"}
	salary = Draft{Text: "Salary", Amount: "1000", Type: Income, Date: "2024-01-01"}
)

func TestAddPrependsAndPersists(t *testing.T) {
	backend := storage.NewMemory()
	s := newTestStore(t, backend)

	first := mustAdd(t, s, coffee)
	be.Equal(t, 1, s.Len())

	second := mustAdd(t, s, Draft{Text: "  Tea  ", Amount: "2.5", Type: Expense, Category: "Food"})
	be.Equal(t, 2, s.Len())

	all := s.All()
	be.Equal(t, second.ID, all[0].ID)
	be.Equal(t, first.ID, all[1].ID)

	be.Equal(t, "Tea", second.Text)
	be.Equal(t, Amount("2.50"), second.Amount)
	be.Equal(t, "2024-03-09", second.Date)

	reopened := newTestStore(t, backend)
	be.Equal(t, 2, reopened.Len())
	be.Equal(t, second.ID, reopened.All()[0].ID)
}

func TestAddRejectsInvalidDraft(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())

	_, err := s.Add(Draft{Text: "", Amount: "5", Type: Expense})
	be.True(t, errors.Is(err, ErrEmptyText))

	_, err = s.Add(Draft{Text: "x", Amount: "0", Type: Expense})
	be.True(t, errors.Is(err, ErrInvalidAmount))

	be.Equal(t, 0, s.Len())
	be.Equal(t, uint64(0), s.Revision())
}

func TestAddGeneratesUniqueIDs(t *testing.T) {
	s := Open(context.Background(), nil, WithLogger(log.New(io.Discard)))

	seen := make(map[string]bool)
	for range 200 {
		tx := mustAdd(t, s, coffee)
		be.False(t, seen[tx.ID])
		seen[tx.ID] = true
	}
}

func TestUpdate(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())
	tx := mustAdd(t, s, coffee)

	text := "Espresso"
	ok, err := s.Update(tx.ID, Patch{Text: &text})
	be.NilErr(t, err)
	be.True(t, ok)

	got, found := s.Get(tx.ID)
	be.True(t, found)
	be.Equal(t, "Espresso", got.Text)
	be.Equal(t, tx.Amount, got.Amount)
	be.Equal(t, tx.Category, got.Category)
	be.Equal(t, tx.ID, got.ID)
}

func TestUpdateUnknownIDLeavesListUnchanged(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())
	mustAdd(t, s, coffee)
	before := s.All()
	rev := s.Revision()

	text := "ghost"
	ok, err := s.Update("missing", Patch{Text: &text})
	be.NilErr(t, err)
	be.False(t, ok)

	be.AllEqual(t, before, s.All())
	be.Equal(t, rev, s.Revision())
}

func TestUpdateRejectsInvalidPatch(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())
	tx := mustAdd(t, s, coffee)

	amount := "-1"
	_, err := s.Update(tx.ID, Patch{Amount: &amount})
	be.True(t, errors.Is(err, ErrInvalidAmount))

	got, _ := s.Get(tx.ID)
	be.Equal(t, Amount("50.00"), got.Amount)
}

func TestUpdateFromDraftReplacesAllFields(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())
	tx := mustAdd(t, s, coffee)

	ok, err := s.Update(tx.ID, PatchFromDraft(Draft{Text: "Bonus", Amount: "75.456", Type: Income, Category: "Other", Date: ""}))
	be.NilErr(t, err)
	be.True(t, ok)

	got, _ := s.Get(tx.ID)
	be.Equal(t, Transaction{ID: tx.ID, Text: "Bonus", Amount: "75.46", Type: Income, Category: "Other", Date: "2024-03-09"}, got)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())
	a := mustAdd(t, s, coffee)
	b := mustAdd(t, s, salary)

	be.True(t, s.Delete(a.ID))
	be.Equal(t, 1, s.Len())
	be.Equal(t, b.ID, s.All()[0].ID)

	rev := s.Revision()
	be.False(t, s.Delete("missing"))
	be.Equal(t, 1, s.Len())
	be.Equal(t, rev, s.Revision())
}

func TestClear(t *testing.T) {
	t.Run("empty list asks nothing", func(t *testing.T) {
		s := newTestStore(t, storage.NewMemory())
		asked := false

		be.False(t, s.Clear(func() bool { asked = true; return true }))
		be.False(t, asked)
	})

	t.Run("declined keeps records", func(t *testing.T) {
		s := newTestStore(t, storage.NewMemory())
		mustAdd(t, s, coffee)

		be.False(t, s.Clear(func() bool { return false }))
		be.Equal(t, 1, s.Len())
	})

	t.Run("confirmed empties and persists", func(t *testing.T) {
		backend := storage.NewMemory()
		s := newTestStore(t, backend)
		mustAdd(t, s, coffee)
		mustAdd(t, s, salary)

		be.True(t, s.Clear(func() bool { return true }))
		be.Equal(t, 0, s.Len())
		be.Equal(t, 0, newTestStore(t, backend).Len())
	})
}

func TestImportRejectsMalformedInput(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())
	mustAdd(t, s, coffee)
	before := s.All()

	_, err := s.Import([]byte(`[{"id":"1"}]`))

	var ferr *ImportFormatError
	be.True(t, errors.As(err, &ferr))
	be.AllEqual(t, before, s.All())

	_, err = s.Import([]byte(`{"not":"an array"}`))
	be.True(t, errors.Is(err, ErrNotAnArray))
	be.AllEqual(t, before, s.All())
}

func TestImportPrependsBatchInOrder(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())
	existing := mustAdd(t, s, coffee)

	n, err := s.Import([]byte(`[{"id":"x1","text":"A","amount":"1.00"},{"id":"x2","text":"B","amount":"2.00"}]`))
	be.NilErr(t, err)
	be.Equal(t, 2, n)

	all := s.All()
	be.Equal(t, 3, len(all))
	be.Equal(t, "x1", all[0].ID)
	be.Equal(t, "x2", all[1].ID)
	be.Equal(t, existing.ID, all[2].ID)
}

func TestImportReassignsCollidingIDs(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())
	existing := mustAdd(t, s, coffee)

	doc := fmt.Sprintf(`[{"id":%q,"text":"Again","amount":"5"},{"id":"dup","text":"A","amount":"1"},{"id":"dup","text":"B","amount":"1"}]`, existing.ID)
	_, err := s.Import([]byte(doc))
	be.NilErr(t, err)

	seen := make(map[string]bool)
	for _, tx := range s.All() {
		be.False(t, seen[tx.ID])
		seen[tx.ID] = true
	}
	be.Equal(t, 4, len(seen))
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestStore(t, storage.NewMemory())
	mustAdd(t, src, coffee)
	mustAdd(t, src, salary)

	data, err := src.Export()
	be.NilErr(t, err)

	dst := newTestStore(t, storage.NewMemory())
	_, err = dst.Import(data)
	be.NilErr(t, err)

	be.AllEqual(t, src.All(), dst.All())
}

func TestOpenRecoversFromBadStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("corrupt json", func(t *testing.T) {
		backend := storage.NewMemory()
		be.NilErr(t, backend.Put(ctx, DefaultKey, []byte("{broken")))

		s := newTestStore(t, backend)
		be.Equal(t, 0, s.Len())
	})

	t.Run("null", func(t *testing.T) {
		backend := storage.NewMemory()
		be.NilErr(t, backend.Put(ctx, DefaultKey, []byte("null")))

		s := newTestStore(t, backend)
		be.Equal(t, 0, s.Len())
	})

	t.Run("custom key", func(t *testing.T) {
		backend := storage.NewMemory()
		be.NilErr(t, backend.Put(ctx, "other", []byte(`[{"id":"1","text":"x","amount":"2.00","type":"expense","category":"Food","date":"2024-01-01"}]`)))

		be.Equal(t, 0, newTestStore(t, backend).Len())
		be.Equal(t, 1, newTestStore(t, backend, WithKey("other")).Len())
	})
}

func TestWriteFailureKeepsInMemoryState(t *testing.T) {
	s := newTestStore(t, &failingBackend{Memory: storage.NewMemory()})

	tx, err := s.Add(coffee)
	be.NilErr(t, err)
	be.Equal(t, 1, s.Len())
	be.Equal(t, tx.ID, s.All()[0].ID)
	be.Equal(t, uint64(1), s.Revision())
}

func TestOnChange(t *testing.T) {
	var changes []Change
	s := newTestStore(t, storage.NewMemory(), WithOnChange(func(c Change) { changes = append(changes, c) }))

	tx := mustAdd(t, s, coffee)
	s.Delete(tx.ID)
	s.Delete(tx.ID)

	be.AllEqual(t, []Change{
		{Op: OpAdd, ID: tx.ID, Count: 1},
		{Op: OpDelete, ID: tx.ID, Count: 1},
	}, changes)
	be.Equal(t, uint64(2), s.Revision())
}

func TestFilteredAndCategories(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())
	mustAdd(t, s, coffee)
	mustAdd(t, s, salary)
	mustAdd(t, s, Draft{Text: "Bus", Amount: "3", Type: Expense, Category: "Transport"})
	mustAdd(t, s, Draft{Text: "Lunch", Amount: "12", Type: Expense, Category: "Food"})

	be.Equal(t, 0, len(s.Filtered(Filter{Type: "income", Search: "lunch"})))
	be.Equal(t, 2, len(s.Filtered(Filter{Category: "Food"})))
	be.Equal(t, 4, len(s.Filtered(Filter{Type: All, Category: All})))

	be.AllEqual(t, []string{"Food", "Transport"}, s.Categories())
}
