package main

import (
	"fmt"

	"github.com/Rshep3087/myspend/ledger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

// notice is a one line message shown under the title until the next key.
type notice struct {
	text    string
	isError bool
}

func (m *model) notify(text string, isError bool) {
	log.Debug("notice", "text", text, "error", isError)
	m.notice = notice{text: text, isError: isError}
}

// refresh recomputes everything derived from the store: the summary, the
// charts and the filtered list.
func (m *model) refresh() tea.Cmd {
	m.renderedRevision = m.store.Revision()
	m.overview.SetTransactions(m.store.All())
	return m.applyFilter()
}

func (m *model) switchTo(state sessionState) {
	if m.sessionState == state {
		return
	}

	m.configView.SetFocus(state == configView)
	m.previousSessionState = m.sessionState
	m.sessionState = state
}

// Message handlers.
func (m *model) handleWindowSize(msg tea.WindowSizeMsg) tea.Cmd {
	h, v := m.styles.docStyle.GetFrameSize()

	takenHeight := 5
	m.width = msg.Width - h
	m.height = msg.Height - v - takenHeight

	m.overview.SetSize(m.width, m.height)
	m.transactions.SetSize(m.width, m.height-filterBarHeight)
	m.configView.SetSize(m.width, m.height)

	m.help.Width = msg.Width

	if m.form != nil {
		m.form = m.form.WithHeight(m.height).WithWidth(m.width)
	}

	return nil
}

func (m *model) openAddForm() tea.Cmd {
	m.edit.cancel()

	categories := m.formCategories("")
	category := ""
	if len(categories) > 0 {
		category = categories[0]
	}

	m.formValues = newFormValues(m.today(), category)
	return m.openTransactionForm(categories, false)
}

func (m *model) handleEditRequest(msg editRequestMsg) tea.Cmd {
	if m.sessionState != transactions {
		return nil
	}

	log.Debug("editing transaction", "id", msg.t.ID)
	m.formValues = m.edit.begin(msg.t)
	return m.openTransactionForm(m.formCategories(msg.t.Category), true)
}

func (m *model) handleDeleteRequest(msg deleteRequestMsg) tea.Cmd {
	if m.sessionState != transactions {
		return nil
	}

	return m.openConfirm(pendingAction{kind: confirmDelete, t: msg.t})
}

func (m *model) formCategories(current string) []string {
	return formCategories(m.cfg.Categories, m.store.Categories(), current)
}

func (m *model) openTransactionForm(categories []string, editing bool) tea.Cmd {
	m.form = newTransactionForm(m.formValues, categories, editing)
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width).WithHeight(m.height)
	}

	if m.sessionState != transactionForm {
		m.previousSessionState = m.sessionState
	}
	m.sessionState = transactionForm

	return m.form.Init()
}

func (m *model) closeTransactionForm() {
	m.edit.cancel()
	m.form = nil
	m.formValues = nil
	m.sessionState = m.previousSessionState
}

func (m *model) updateTransactionForm(msg tea.Msg) tea.Cmd {
	if m.form == nil {
		m.sessionState = m.previousSessionState
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	} else {
		log.Debug("transaction form did not return a form")
		return nil
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitTransactionForm()
		return nil
	case huh.StateAborted:
		m.closeTransactionForm()
		return nil
	}

	return cmd
}

func (m *model) submitTransactionForm() {
	res, err := m.edit.submit(m.store, m.formValues.draft())
	m.closeTransactionForm()

	if err != nil {
		m.notify(fmt.Sprintf("Please enter a valid description and a non-zero amount: %v", err), true)
		return
	}

	switch {
	case res.op == ledger.OpAdd:
		m.notify(fmt.Sprintf("Added %s", res.t.Text), false)
	case !res.applied:
		m.notify("That transaction no longer exists", true)
	default:
		m.notify(fmt.Sprintf("Updated %s", res.t.Text), false)
	}
}
