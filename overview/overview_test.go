package overview

import (
	"math"
	"strings"
	"testing"

	"github.com/Rshep3087/myspend/ledger"
	"github.com/carlmjohnson/be"
)

func sample() []ledger.Transaction {
	return []ledger.Transaction{
		{ID: "3", Text: "Coffee", Amount: "50.00", Type: ledger.Expense, Category: "food", Date: "2024-03-09"},
		{ID: "2", Text: "Salary", Amount: "1000.00", Type: ledger.Income, Date: "2024-03-01"},
		{ID: "1", Text: "Bus", Amount: "20.00", Type: ledger.Expense, Category: "transport", Date: "2024-02-27"},
	}
}

func TestSetTransactionsRecomputesSummary(t *testing.T) {
	m := New(WithCurrency("USD"))
	m.SetTransactions(sample())

	s := m.Summary()
	be.Equal(t, "$1,000.00", s.Income.Display())
	be.Equal(t, "$70.00", s.Expense.Display())
	be.Equal(t, "$930.00", s.Balance.Display())

	m.SetTransactions(nil)
	be.Equal(t, "$0.00", m.Summary().Balance.Display())
}

func TestNewStartsWithZeroTotals(t *testing.T) {
	m := New()
	be.Equal(t, int64(0), m.Summary().Income.Amount())
	be.Equal(t, "INR", m.Summary().Balance.Currency().Code)
	be.True(t, strings.Contains(m.headerView(), "no transactions yet"))
}

func TestChartsListEveryLabel(t *testing.T) {
	m := New(WithCurrency("USD"))
	m.SetTransactions(sample())

	categories := m.categoryChartView()
	be.True(t, strings.Contains(categories, "Food"))
	be.True(t, strings.Contains(categories, "Transport"))

	months := m.monthChartView()
	be.True(t, strings.Contains(months, "2024-02"))
	be.True(t, strings.Contains(months, "2024-03"))
	be.True(t, strings.Index(months, "2024-02") < strings.Index(months, "2024-03"))
}

func TestEmptyChartsSayNoExpenses(t *testing.T) {
	m := New()
	m.SetTransactions([]ledger.Transaction{
		{ID: "1", Text: "Salary", Amount: "10.00", Type: ledger.Income, Date: "2024-03-01"},
	})

	be.True(t, strings.Contains(m.categoryChartView(), "No expenses"))
	be.True(t, strings.Contains(m.monthChartView(), "No expenses"))
}

func TestBarLength(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		largest  int64
		width    int
		expected int
	}{
		{name: "largest fills the bar", value: 500, largest: 500, width: 30, expected: 30},
		{name: "half", value: 250, largest: 500, width: 30, expected: 15},
		{name: "tiny value still shows", value: 1, largest: 100000, width: 30, expected: 1},
		{name: "zero value", value: 0, largest: 500, width: 30, expected: 0},
		{name: "no data", value: 0, largest: 0, width: 30, expected: 0},
		{name: "huge largest", value: math.MaxInt64 / 2, largest: math.MaxInt64 / 2, width: 40, expected: 40},
		{name: "huge half", value: math.MaxInt64 / 4, largest: math.MaxInt64 / 2, width: 40, expected: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.expected, barLength(tt.value, tt.largest, tt.width))
		})
	}
}

func TestCategoryTitle(t *testing.T) {
	be.Equal(t, "Food", categoryTitle("food"))
	be.Equal(t, "Eating Out", categoryTitle("eating out"))
	be.Equal(t, "Uncategorized", categoryTitle(""))
}
