package main

import (
	"fmt"
	"slices"

	"github.com/Rshep3087/myspend/ledger"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func newSearchInput(theme Theme) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search descriptions"
	ti.CharLimit = 100
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	return ti
}

// nextType cycles all, income, expense.
func nextType(current string) string {
	switch current {
	case "", ledger.All:
		return string(ledger.Income)
	case string(ledger.Income):
		return string(ledger.Expense)
	default:
		return ledger.All
	}
}

// nextCategory cycles all and then each of categories in order.
func nextCategory(current string, categories []string) string {
	if len(categories) == 0 {
		return ledger.All
	}

	if current == "" || current == ledger.All {
		return categories[0]
	}

	i := slices.Index(categories, current)
	if i < 0 || i == len(categories)-1 {
		return ledger.All
	}
	return categories[i+1]
}

// filterCategories are the categories offered by the category filter.
func (m *model) filterCategories() []string {
	return formCategories(m.cfg.Categories, m.store.Categories(), "")
}

func (m *model) cycleTypeFilter() tea.Cmd {
	m.filter.Type = nextType(m.filter.Type)
	return m.applyFilter()
}

func (m *model) cycleCategoryFilter() tea.Cmd {
	m.filter.Category = nextCategory(m.filter.Category, m.filterCategories())
	return m.applyFilter()
}

func (m *model) startSearch() tea.Cmd {
	m.searchInput.SetValue(m.filter.Search)
	return m.searchInput.Focus()
}

// stopSearch leaves the search box, dropping the term when discard is set.
func (m *model) stopSearch(discard bool) tea.Cmd {
	m.searchInput.Blur()
	if !discard {
		return nil
	}

	m.searchInput.Reset()
	m.filter.Search = ""
	return m.applyFilter()
}

func (m *model) updateSearch(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEnter {
		return m.stopSearch(false)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	if m.searchInput.Value() != m.filter.Search {
		m.filter.Search = m.searchInput.Value()
		return tea.Batch(cmd, m.applyFilter())
	}

	return cmd
}

func filterValue(v string) string {
	if v == "" {
		return ledger.All
	}
	return v
}

func (m model) filterBarView() string {
	search := m.styles.mutedStyle.Render("/ to search")
	if m.searchInput.Focused() {
		search = m.searchInput.View()
	} else if m.filter.Search != "" {
		search = fmt.Sprintf("search: %q", m.filter.Search)
	}

	return m.styles.filterStyle.Render(fmt.Sprintf("type: %s (f)   category: %s (c)   %s",
		filterValue(m.filter.Type),
		filterValue(m.filter.Category),
		search,
	))
}
