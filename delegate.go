package main

import (
	"github.com/Rshep3087/myspend/ledger"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type (
	// editRequestMsg asks to open the form on a transaction.
	editRequestMsg struct {
		t ledger.Transaction
	}

	// deleteRequestMsg asks to confirm deleting a transaction.
	deleteRequestMsg struct {
		t ledger.Transaction
	}
)

func newItemDelegate(theme Theme, keys *delegateKeyMap) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.AdaptiveColor{Light: string(theme.Primary), Dark: string(theme.Primary)}).
		Foreground(lipgloss.AdaptiveColor{Light: string(theme.Primary), Dark: string(theme.Primary)}).
		Padding(0, 0, 0, 1)

	d.Styles.SelectedDesc = d.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: string(theme.SecondaryText), Dark: string(theme.SecondaryText)})

	d.UpdateFunc = func(msg tea.Msg, listModel *list.Model) tea.Cmd {
		if msg, ok := msg.(tea.KeyMsg); ok {
			if key.Matches(msg, keys.edit) || key.Matches(msg, keys.delete) {
				return requestForSelected(msg, keys, listModel)
			}
		}

		return nil
	}

	help := []key.Binding{keys.edit, keys.delete}

	d.ShortHelpFunc = func() []key.Binding {
		return help
	}

	d.FullHelpFunc = func() [][]key.Binding {
		return [][]key.Binding{help}
	}

	return d
}

func requestForSelected(msg tea.KeyMsg, keys *delegateKeyMap, listModel *list.Model) tea.Cmd {
	ti, isValidTransactionItem := listModel.SelectedItem().(transactionItem)
	if !isValidTransactionItem {
		return nil
	}

	if key.Matches(msg, keys.delete) {
		return func() tea.Msg { return deleteRequestMsg{t: ti.t} }
	}

	return func() tea.Msg { return editRequestMsg{t: ti.t} }
}

type delegateKeyMap struct {
	edit   key.Binding
	delete key.Binding
}

func (d delegateKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		d.edit,
		d.delete,
	}
}

func (d delegateKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			d.edit,
			d.delete,
		},
	}
}

func newDelegateKeyMap() *delegateKeyMap {
	return &delegateKeyMap{
		edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
	}
}
