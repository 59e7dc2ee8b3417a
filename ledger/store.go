package ledger

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Rshep3087/myspend/storage"
	"github.com/charmbracelet/log"
)

// DefaultKey is the storage slot holding the serialized list.
const DefaultKey = "colorful_exp_tracker_v1"

const persistTimeout = 10 * time.Second

// Op names a store mutation.
type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpClear  Op = "clear"
	OpImport Op = "import"
)

// Change is sent to listeners after every applied mutation.
type Change struct {
	Op Op
	// ID is set for single record operations.
	ID string
	// Count is the number of records affected.
	Count int
}

// Store owns the transaction list, newest first. Every mutation persists the
// whole list and then notifies listeners.
//
// A Store is not safe for concurrent use; it expects a single event loop
// to drive it.
type Store struct {
	backend  storage.Backend
	key      string
	txs      []Transaction
	revision uint64

	listeners []func(Change)
	newID     func() string
	now       func() time.Time
	logger    *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithOnChange registers a listener for applied mutations.
func WithOnChange(fn func(Change)) Option {
	return func(s *Store) {
		s.listeners = append(s.listeners, fn)
	}
}

// WithIDGenerator replaces the UUIDv7 generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// WithClock sets the source of "today" for defaulted dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// Open loads the list from backend. Missing or unreadable data starts an
// empty list; the failure is logged, never returned. A nil backend keeps the
// list in memory only.
func Open(ctx context.Context, backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		key:     DefaultKey,
		newID:   newID,
		now:     time.Now,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.txs = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) []Transaction {
	if s.backend == nil {
		return nil
	}

	data, err := s.backend.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Debug("no stored transactions", "key", s.key)
		return nil
	}
	if err != nil {
		s.logger.Error("Error loading data", "key", s.key, "error", err)
		return nil
	}

	txs, err := decodeList(data)
	if err != nil {
		s.logger.Error("Error loading data", "key", s.key, "error", err)
		return nil
	}

	s.logger.Debug("loaded transactions", "key", s.key, "count", len(txs))
	return txs
}

func (s *Store) persist() {
	if s.backend == nil {
		return
	}

	data, err := encodeList(s.txs)
	if err != nil {
		s.logger.Error("Error saving data", "key", s.key, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.backend.Put(ctx, s.key, data); err != nil {
		s.logger.Error("Error saving data", "key", s.key, "error", err)
	}
}

// commit persists, bumps the revision and notifies listeners.
func (s *Store) commit(c Change) {
	s.persist()
	s.revision++
	for _, fn := range s.listeners {
		fn(c)
	}
}

func (s *Store) today() string {
	return s.now().Format(DateLayout)
}

// Add validates d, prepends a new transaction and returns it.
func (s *Store) Add(d Draft) (Transaction, error) {
	if err := d.Validate(); err != nil {
		return Transaction{}, err
	}

	amount, _ := ParseAmount(d.Amount)
	typ, _ := ParseType(string(d.Type))

	t := Transaction{
		ID:       s.newID(),
		Text:     strings.TrimSpace(d.Text),
		Amount:   amount,
		Type:     typ,
		Category: d.Category,
		Date:     d.Date,
	}
	if t.Date == "" {
		t.Date = s.today()
	}

	s.txs = slices.Insert(s.txs, 0, t)
	s.commit(Change{Op: OpAdd, ID: t.ID, Count: 1})
	return t, nil
}

// Update applies p to the transaction with the given id. An unknown id is a
// silent no-op and reports false.
func (s *Store) Update(id string, p Patch) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}

	i := s.index(id)
	if i < 0 {
		return false, nil
	}

	s.txs[i] = p.apply(s.txs[i], s.today())
	s.commit(Change{Op: OpUpdate, ID: id, Count: 1})
	return true, nil
}

// Delete removes the transaction with the given id, if any.
func (s *Store) Delete(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}

	s.txs = slices.Delete(s.txs, i, i+1)
	s.commit(Change{Op: OpDelete, ID: id, Count: 1})
	return true
}

// Clear empties the list once confirm agrees. On an empty list nothing
// happens and confirm is not asked.
func (s *Store) Clear(confirm func() bool) bool {
	if len(s.txs) == 0 {
		return false
	}
	if confirm == nil || !confirm() {
		return false
	}

	n := len(s.txs)
	s.txs = nil
	s.commit(Change{Op: OpClear, Count: n})
	return true
}

// Import parses an import document and prepends its records as one block.
// On any format error nothing changes.
func (s *Store) Import(data []byte) (int, error) {
	txs, err := ParseImport(data)
	if err != nil {
		return 0, err
	}

	if err := s.ImportRecords(txs); err != nil {
		return 0, err
	}
	return len(txs), nil
}

// ImportRecords prepends already decoded records. Each must carry an id,
// text and amount. Ids already in use get a fresh one so ids stay unique.
func (s *Store) ImportRecords(txs []Transaction) error {
	for i, t := range txs {
		switch {
		case strings.TrimSpace(t.ID) == "":
			return &ImportFormatError{Index: i, Field: "id", Err: ErrInvalidRecord}
		case strings.TrimSpace(t.Text) == "":
			return &ImportFormatError{Index: i, Field: "text", Err: ErrInvalidRecord}
		case strings.TrimSpace(string(t.Amount)) == "":
			return &ImportFormatError{Index: i, Field: "amount", Err: ErrInvalidRecord}
		}
	}

	seen := make(map[string]struct{}, len(s.txs)+len(txs))
	for _, t := range s.txs {
		seen[t.ID] = struct{}{}
	}

	batch := make([]Transaction, len(txs))
	for i, t := range txs {
		if _, dup := seen[t.ID]; dup {
			fresh := s.newID()
			s.logger.Warn("imported transaction id already in use, assigning a new one",
				"id", t.ID, "new_id", fresh)
			t.ID = fresh
		}
		seen[t.ID] = struct{}{}
		batch[i] = t
	}

	s.txs = append(batch, s.txs...)
	s.commit(Change{Op: OpImport, Count: len(batch)})
	return nil
}

// Export returns the pretty printed backup document of the full list.
func (s *Store) Export() ([]byte, error) {
	data, err := EncodeBackup(s.txs)
	if err != nil {
		return nil, fmt.Errorf("export failed: %w", err)
	}
	return data, nil
}

// All returns a copy of the full list, newest first.
func (s *Store) All() []Transaction {
	return slices.Clone(s.txs)
}

// Filtered returns the transactions matching f, in list order.
func (s *Store) Filtered(f Filter) []Transaction {
	out := make([]Transaction, 0, len(s.txs))
	for _, t := range s.txs {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Get looks a transaction up by id.
func (s *Store) Get(id string) (Transaction, bool) {
	i := s.index(id)
	if i < 0 {
		return Transaction{}, false
	}
	return s.txs[i], true
}

func (s *Store) Len() int {
	return len(s.txs)
}

// Revision increases with every applied mutation.
func (s *Store) Revision() uint64 {
	return s.revision
}

// Categories returns the distinct expense categories in first-seen order.
func (s *Store) Categories() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, t := range s.txs {
		if t.Type != Expense || t.Category == "" {
			continue
		}
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	return out
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.txs, func(t Transaction) bool { return t.ID == id })
}
