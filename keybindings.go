package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type keyMap struct {
	transactions   key.Binding
	overview       key.Binding
	config         key.Binding
	add            key.Binding
	clear          key.Binding
	export         key.Binding
	importFile     key.Binding
	typeFilter     key.Binding
	categoryFilter key.Binding
	search         key.Binding
	escape         key.Binding
	fullHelp       key.Binding
	quit           key.Binding
	forceQuit      key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.overview,
		km.transactions,
		km.add,
		km.export,
		km.importFile,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.overview,
			km.transactions,
			km.config,
			km.quit,
			km.fullHelp,
		},
		{
			km.add,
			km.clear,
			km.export,
			km.importFile,
		},
		{
			km.typeFilter,
			km.categoryFilter,
			km.search,
			km.escape,
		},
	}
}

func initializeKeyMap() keyMap {
	keys := keyMap{
		transactions: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "transactions"),
		),
		overview: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overview"),
		),
		config: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "configuration"),
		),
		add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		clear: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("<shift-c>", "clear all"),
		),
		export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export"),
		),
		importFile: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "import"),
		),
		typeFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter type"),
		),
		categoryFilter: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "filter category"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
	return keys
}

// handleKeyPress runs app level keys. When it reports false the key belongs
// to the active view.
func handleKeyPress(msg tea.KeyMsg, m *model) (bool, tea.Cmd) {
	k := msg.String()
	log.Debug("key pressed", "key", k)

	// a notice lasts until the next key
	m.notice = notice{}

	// Handle special keys first
	if handled, cmd := handleSpecialKeys(msg, m); handled {
		return true, cmd
	}

	// Check if input is blocked by active forms
	if isInputBlocked(m) {
		return false, nil
	}

	if key.Matches(msg, m.keys.quit) {
		return true, tea.Quit
	}

	// Handle session state changes
	if handled, cmd := handleSessionStateKeys(msg, m); handled {
		return true, cmd
	}

	return handleActionKeys(msg, m)
}

func handleSpecialKeys(msg tea.KeyMsg, m *model) (bool, tea.Cmd) {
	if key.Matches(msg, m.keys.forceQuit) {
		return true, tea.Quit
	}

	if key.Matches(msg, m.keys.escape) {
		return handleEscape(m)
	}

	return false, nil
}

func isInputBlocked(m *model) bool {
	switch m.sessionState {
	case transactionForm, confirmAction, importFile:
		return true
	}

	return m.searchInput.Focused()
}

func handleSessionStateKeys(msg tea.KeyMsg, m *model) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.transactions):
		m.switchTo(transactions)
		return true, nil

	case key.Matches(msg, m.keys.overview):
		m.switchTo(overviewState)
		return true, nil

	case key.Matches(msg, m.keys.config):
		m.switchTo(configView)
		return true, nil

	case key.Matches(msg, m.keys.fullHelp):
		// the transactions list shows its own help
		if m.sessionState != transactions {
			m.help.ShowAll = !m.help.ShowAll
			return true, nil
		}
	}

	return false, nil
}

func handleActionKeys(msg tea.KeyMsg, m *model) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.add):
		return true, m.openAddForm()

	case key.Matches(msg, m.keys.clear):
		if m.store.Len() == 0 {
			m.notify("No transactions to clear", false)
			return true, nil
		}
		return true, m.openConfirm(pendingAction{kind: confirmClear})

	case key.Matches(msg, m.keys.export):
		return true, m.exportTransactions()

	case key.Matches(msg, m.keys.importFile):
		return true, m.openImportForm()
	}

	if m.sessionState != transactions {
		return false, nil
	}

	switch {
	case key.Matches(msg, m.keys.typeFilter):
		return true, m.cycleTypeFilter()

	case key.Matches(msg, m.keys.categoryFilter):
		return true, m.cycleCategoryFilter()

	case key.Matches(msg, m.keys.search):
		return true, m.startSearch()
	}

	return false, nil
}

// handleEscape backs out of the current form, search or view.
func handleEscape(m *model) (bool, tea.Cmd) {
	switch m.sessionState {
	case transactionForm:
		log.Debug("handling escape in transaction form")
		if m.form != nil {
			m.form.State = huh.StateAborted
		}
		m.closeTransactionForm()
		return true, nil

	case confirmAction:
		log.Debug("handling escape in confirm")
		if m.confirmForm != nil {
			m.confirmForm.State = huh.StateAborted
		}
		return true, m.resolveConfirm(false)

	case importFile:
		log.Debug("handling escape in import")
		if m.importForm != nil {
			m.importForm.State = huh.StateAborted
		}
		m.importForm = nil
		m.sessionState = m.previousSessionState
		return true, nil
	}

	// handle if user is searching transactions and presses escape
	if m.sessionState == transactions && m.searchInput.Focused() {
		log.Debug("handling escape in transactions search")
		return true, m.stopSearch(true)
	}

	m.switchTo(overviewState)
	return true, nil
}
