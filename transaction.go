package main

import (
	"fmt"
	"time"

	"github.com/Rshep3087/myspend/ledger"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type transactionItem struct {
	t        ledger.Transaction
	currency string
	// amountStyle colors the amount by type.
	amountStyle lipgloss.Style
}

func (m *model) newTransactionItem(t ledger.Transaction) transactionItem {
	style := m.styles.expenseStyle
	if t.Type == ledger.Income {
		style = m.styles.incomeStyle
	}
	return transactionItem{t: t, currency: m.cfg.Currency, amountStyle: style}
}

func (t transactionItem) Title() string {
	return t.t.Text
}

func (t transactionItem) Description() string {
	amount := t.amountStyle.Render(formatAmount(t.t, t.currency))
	return fmt.Sprintf("%s  %s  %s", t.t.Date, t.t.Label(), amount)
}

func (t transactionItem) FilterValue() string {
	return t.t.Text
}

// newTransactionList builds the list widget. Filtering is done by the filter
// bar, so the list's own fuzzy filter is off and keys the app uses are freed.
func newTransactionList(delegate list.ItemDelegate, keys keyMap) list.Model {
	transactionList := list.New([]list.Item{}, delegate, 0, 0)
	transactionList.SetShowTitle(false)
	transactionList.SetFilteringEnabled(false)
	transactionList.SetStatusBarItemName("transaction", "transactions")
	transactionList.StatusMessageLifetime = 3 * time.Second

	transactionList.KeyMap.Quit.SetEnabled(false)
	transactionList.KeyMap.NextPage.SetKeys("right", "l", "pgdown")
	transactionList.KeyMap.PrevPage.SetKeys("left", "h", "pgup")
	transactionList.KeyMap.GoToStart.SetKeys("home")

	transactionList.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.add, keys.search}
	}
	transactionList.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			keys.add,
			keys.typeFilter,
			keys.categoryFilter,
			keys.search,
			keys.clear,
			keys.overview,
		}
	}

	return transactionList
}

// applyFilter refills the list from the store through the current filter.
func (m *model) applyFilter() tea.Cmd {
	txs := m.store.Filtered(m.filter)

	items := make([]list.Item, len(txs))
	for i, t := range txs {
		items[i] = m.newTransactionItem(t)
	}

	return m.transactions.SetItems(items)
}

func (m *model) updateTransactions(msg tea.Msg) tea.Cmd {
	if m.searchInput.Focused() {
		return m.updateSearch(msg)
	}

	var cmd tea.Cmd
	m.transactions, cmd = m.transactions.Update(msg)
	return cmd
}

func transactionsView(m model) string {
	return m.filterBarView() + "\n" + m.transactions.View()
}
