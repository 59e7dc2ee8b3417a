package overview

import (
	"fmt"
	"strings"

	"github.com/Rshep3087/myspend/ledger"
	"github.com/Rshep3087/myspend/report"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/charmbracelet/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Palette colors chart bars, cycling when there are more labels than colors.
var Palette = []string{"#ff7a7a", "#ffd36b", "#7be0c7", "#9a8cff", "#60a5fa", "#f472b6", "#a3e635"}

const (
	defaultBarWidth = 30
	barGlyph        = "█"
)

// Model defines the state for the overview widget: the balance summary and
// the two spending charts. All of it is derived from the full transaction
// list every time the list is set.
type Model struct {
	Styles     Styles
	Viewport   viewport.Model
	currency   string
	barWidth   int
	summary    report.Summary
	byCategory report.Breakdown
	byMonth    report.Breakdown
	count      int
}

type Styles struct {
	IncomeStyle   lipgloss.Style
	SpentStyle    lipgloss.Style
	TreeRootStyle lipgloss.Style
	LabelStyle    lipgloss.Style
	MutedStyle    lipgloss.Style
	SummaryStyle  lipgloss.Style
	ChartStyle    lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		IncomeStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		SpentStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		TreeRootStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		LabelStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#bbbbbb")),
		MutedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),

		SummaryStyle: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		ChartStyle:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	}
}

type Option func(*Model)

func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.Styles = s
	}
}

func WithCurrency(currency string) Option {
	return func(m *Model) {
		m.currency = currency
	}
}

func New(opts ...Option) Model {
	m := Model{
		Styles:   defaultStyles(),
		Viewport: viewport.New(0, 20),
		currency: report.DefaultCurrency,
		barWidth: defaultBarWidth,
	}

	for _, opt := range opts {
		opt(&m)
	}

	// totals start at zero in the right currency instead of nil
	m.recompute(nil)
	m.UpdateViewport()

	return m
}

// SetTransactions recomputes the summary and both charts from txs, which must
// be the full unfiltered list.
func (m *Model) SetTransactions(txs []ledger.Transaction) {
	log.Debug("setting overview transactions", "count", len(txs))
	m.recompute(txs)
	m.UpdateViewport()
}

func (m *Model) recompute(txs []ledger.Transaction) {
	m.count = len(txs)
	m.summary = report.Summarize(txs, m.currency)
	m.byCategory = report.ByCategory(txs, m.currency)
	m.byMonth = report.ByMonth(txs, m.currency)
}

// Summary returns the totals last computed by SetTransactions.
func (m Model) Summary() report.Summary {
	return m.summary
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.Viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.Viewport.Width = width
	m.Viewport.Height = height

	// leave room for the label column, the amount and the borders
	m.barWidth = max(10, min(defaultBarWidth, width/3-30))
	m.UpdateViewport()
}

func (m *Model) UpdateViewport() {
	charts := lipgloss.JoinHorizontal(lipgloss.Top,
		m.categoryChartView(),
		m.monthChartView(),
	)

	m.Viewport.SetContent(
		lipgloss.JoinVertical(lipgloss.Top,
			m.headerView(),
			lipgloss.JoinHorizontal(lipgloss.Top, m.summaryView(), charts),
		),
	)
}

func (m Model) headerView() string {
	switch m.count {
	case 0:
		return "Overview - no transactions yet"
	case 1:
		return "Overview - 1 transaction"
	default:
		return fmt.Sprintf("Overview - %d transactions", m.count)
	}
}

func (m Model) summaryView() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Income: %s\n", m.Styles.IncomeStyle.Render(m.summary.Income.Display())))
	b.WriteString(fmt.Sprintf("Expense: %s\n", m.Styles.SpentStyle.Render(m.summary.Expense.Display())))
	if m.summary.Balance.IsNegative() {
		b.WriteString(fmt.Sprintf("Balance: %s", m.Styles.SpentStyle.Render(m.summary.Balance.Display())))
	} else {
		b.WriteString(fmt.Sprintf("Balance: %s", m.Styles.IncomeStyle.Render(m.summary.Balance.Display())))
	}

	return m.Styles.SummaryStyle.Render(b.String())
}

func (m Model) categoryChartView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Spending by Category")

	if m.byCategory.Len() == 0 {
		return m.Styles.ChartStyle.Render(
			lipgloss.JoinVertical(lipgloss.Top, title, m.Styles.MutedStyle.Render("No expenses")),
		)
	}

	labelWidth := 0
	for _, label := range m.byCategory.Labels {
		labelWidth = max(labelWidth, lipgloss.Width(categoryTitle(label)))
	}

	rows := make([]string, 0, m.byCategory.Len())
	for i, label := range m.byCategory.Labels {
		name := m.Styles.LabelStyle.Width(labelWidth).Render(categoryTitle(label))
		rows = append(rows, fmt.Sprintf("%s %s %s %s",
			name,
			m.bar(i, m.byCategory),
			m.byCategory.Values[i].Display(),
			m.Styles.MutedStyle.Render(fmt.Sprintf("%.1f%%", m.byCategory.Share(i)*100)),
		))
	}

	return m.Styles.ChartStyle.Render(
		lipgloss.JoinVertical(lipgloss.Top, title, strings.Join(rows, "\n")),
	)
}

func (m Model) monthChartView() string {
	t := tree.New().Root(m.Styles.TreeRootStyle.Render("Spending by Month"))

	if m.byMonth.Len() == 0 {
		t.Child(m.Styles.MutedStyle.Render("No expenses"))
		return m.Styles.ChartStyle.Render(t.String())
	}

	for i, label := range m.byMonth.Labels {
		t.Child(fmt.Sprintf("%s %s %s",
			m.Styles.LabelStyle.Render(label),
			m.bar(i, m.byMonth),
			m.byMonth.Values[i].Display(),
		))
	}

	return m.Styles.ChartStyle.Render(t.String())
}

// bar renders value i of b scaled against the largest value.
func (m Model) bar(i int, b report.Breakdown) string {
	var largest int64
	for _, v := range b.Values {
		largest = max(largest, v.Amount())
	}

	width := barLength(b.Values[i].Amount(), largest, m.barWidth)
	color := Palette[i%len(Palette)]
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat(barGlyph, width))
}

// barLength scales value to at most width cells; any non-zero value gets at
// least one cell.
func barLength(value, largest int64, width int) int {
	if value <= 0 || largest <= 0 || width <= 0 {
		return 0
	}
	n := int(float64(value) / float64(largest) * float64(width))
	return min(max(n, 1), width)
}

func categoryTitle(label string) string {
	if label == "" {
		return "Uncategorized"
	}
	return titleCaser.String(label)
}
