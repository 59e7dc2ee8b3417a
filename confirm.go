package main

import (
	"fmt"

	"github.com/Rshep3087/myspend/ledger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type confirmKind int

const (
	confirmDelete confirmKind = iota
	confirmClear
)

// pendingAction is the destructive action waiting on the confirm form.
type pendingAction struct {
	kind confirmKind
	// t is the transaction to delete.
	t ledger.Transaction
}

func newConfirmForm(title, description string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title(title).
			Description(description).
			Affirmative("Yes").
			Negative("No"),
	))
}

func (m *model) openConfirm(p pendingAction) tea.Cmd {
	var title, description string
	switch p.kind {
	case confirmDelete:
		title = "Delete this transaction?"
		description = fmt.Sprintf("%s  %s  %s", p.t.Date, p.t.Text, formatAmount(p.t, m.cfg.Currency))
	case confirmClear:
		title = "Are you sure you want to clear all transactions?"
		description = fmt.Sprintf("%d transactions will be deleted", m.store.Len())
	}

	m.pending = &p
	m.confirmForm = newConfirmForm(title, description)
	if m.width > 0 {
		m.confirmForm = m.confirmForm.WithWidth(m.width)
	}
	m.previousSessionState = m.sessionState
	m.sessionState = confirmAction

	return m.confirmForm.Init()
}

func (m *model) updateConfirm(msg tea.Msg) tea.Cmd {
	if m.confirmForm == nil {
		m.sessionState = m.previousSessionState
		return nil
	}

	form, cmd := m.confirmForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirmForm = f
	}

	switch m.confirmForm.State {
	case huh.StateCompleted:
		return m.resolveConfirm(m.confirmForm.GetBool("confirm"))
	case huh.StateAborted:
		return m.resolveConfirm(false)
	}

	return cmd
}

// resolveConfirm runs or drops the pending action and leaves the confirm form.
func (m *model) resolveConfirm(confirmed bool) tea.Cmd {
	p := m.pending
	m.pending = nil
	m.confirmForm = nil
	m.sessionState = m.previousSessionState

	if p == nil {
		return nil
	}

	switch p.kind {
	case confirmDelete:
		if !confirmed {
			return nil
		}
		if !m.store.Delete(p.t.ID) {
			log.Debug("transaction already gone", "id", p.t.ID)
			return nil
		}
		if m.edit.editingID == p.t.ID {
			m.edit.cancel()
		}
		m.notify(fmt.Sprintf("Deleted %s", p.t.Text), false)

	case confirmClear:
		if m.store.Clear(func() bool { return confirmed }) {
			m.notify("All transactions cleared", false)
		}
	}

	return nil
}
