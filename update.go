package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)

	// any applied store mutation re-renders the summary, list and charts
	if m.store.Revision() != m.renderedRevision {
		cmd = tea.Batch(cmd, m.refresh())
	}

	return m, cmd
}

func (m *model) update(msg tea.Msg) tea.Cmd {
	// always check app level keys first
	if msg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := handleKeyPress(msg, m); handled {
			return cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case editRequestMsg:
		return m.handleEditRequest(msg)

	case deleteRequestMsg:
		return m.handleDeleteRequest(msg)

	case exportDoneMsg:
		return m.handleExportDone(msg)

	case importLoadedMsg:
		return m.handleImportLoaded(msg)
	}

	var cmd tea.Cmd
	switch m.sessionState {
	case overviewState:
		m.overview, cmd = m.overview.Update(msg)
		return cmd

	case transactions:
		return m.updateTransactions(msg)

	case transactionForm:
		return m.updateTransactionForm(msg)

	case confirmAction:
		return m.updateConfirm(msg)

	case importFile:
		return m.updateImportForm(msg)

	case configView:
		m.configView, cmd = m.configView.Update(msg)
		return cmd
	}

	return nil
}
