package main

import (
	"github.com/Rshep3087/myspend/ledger"
)

// editSession decides whether submitting the transaction form adds a new
// transaction or rewrites an existing one. The zero value is idle.
type editSession struct {
	editingID string
}

func (e editSession) editing() bool {
	return e.editingID != ""
}

// begin targets t and returns form values holding its fields. Beginning
// while already editing retargets without asking.
func (e *editSession) begin(t ledger.Transaction) *formValues {
	e.editingID = t.ID
	return formValuesFrom(t)
}

func (e *editSession) cancel() {
	e.editingID = ""
}

// submitResult reports what a submit did.
type submitResult struct {
	op ledger.Op
	// applied is false when the edited transaction no longer exists.
	applied bool
	t       ledger.Transaction
}

// submit adds d when idle, or replaces every field of the edited transaction
// with d. The session is idle afterwards unless d is invalid.
func (e *editSession) submit(store *ledger.Store, d ledger.Draft) (submitResult, error) {
	if !e.editing() {
		t, err := store.Add(d)
		if err != nil {
			return submitResult{op: ledger.OpAdd}, err
		}
		return submitResult{op: ledger.OpAdd, applied: true, t: t}, nil
	}

	id := e.editingID
	updated, err := store.Update(id, ledger.PatchFromDraft(d))
	if err != nil {
		return submitResult{op: ledger.OpUpdate}, err
	}

	e.cancel()

	t, _ := store.Get(id)
	return submitResult{op: ledger.OpUpdate, applied: updated, t: t}, nil
}
