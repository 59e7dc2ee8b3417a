// Package report derives totals and chart datasets from a transaction list.
// Everything is recomputed from the full list on each call.
package report

import (
	"math"
	"sort"

	"github.com/Rhymond/go-money"
	"github.com/Rshep3087/myspend/ledger"
	"github.com/charmbracelet/log"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = money.INR

// maxTotal bounds the sum of absolute amounts in one call, so every total,
// group and the balance fit in an int64.
const maxTotal = math.MaxInt64 / 2

var logger = log.Default()

// SetLogger sets where skipped transactions are reported.
func SetLogger(l *log.Logger) {
	logger = l
}

// Summary holds the totals over the unfiltered list.
type Summary struct {
	Income  *money.Money
	Expense *money.Money
	// Balance is Income minus Expense.
	Balance *money.Money
}

// Summarize totals income and expense amounts. Balance is computed in minor
// units so it always equals Income - Expense exactly.
func Summarize(txs []ledger.Transaction, currency string) Summary {
	var income, expense, used int64

	for _, t := range txs {
		cents, ok := cents(t, &used)
		if !ok {
			continue
		}

		switch t.Type {
		case ledger.Income:
			income += cents
		case ledger.Expense:
			expense += cents
		}
	}

	return Summary{
		Income:  money.New(income, currency),
		Expense: money.New(expense, currency),
		Balance: money.New(income-expense, currency),
	}
}

// Breakdown is a grouped sum of expense amounts. Labels and Values are
// parallel and ordered for charting.
type Breakdown struct {
	Totals map[string]*money.Money
	Labels []string
	Values []*money.Money
}

func (b Breakdown) Len() int {
	return len(b.Labels)
}

// Total sums all groups.
func (b Breakdown) Total() *money.Money {
	var sum int64
	currency := DefaultCurrency
	for _, v := range b.Values {
		sum += v.Amount()
		currency = v.Currency().Code
	}
	return money.New(sum, currency)
}

// Share returns group i as a fraction of the total, 0 when the total is 0.
func (b Breakdown) Share(i int) float64 {
	total := b.Total().Amount()
	if total == 0 || i < 0 || i >= len(b.Values) {
		return 0
	}
	return float64(b.Values[i].Amount()) / float64(total)
}

// ByCategory groups expenses by category, labels in first-seen order.
func ByCategory(txs []ledger.Transaction, currency string) Breakdown {
	return group(txs, currency, func(t ledger.Transaction) string { return t.Category }, false)
}

// ByMonth groups expenses by the YYYY-MM prefix of their date, labels sorted ascending.
func ByMonth(txs []ledger.Transaction, currency string) Breakdown {
	return group(txs, currency, ledger.Transaction.Month, true)
}

func group(txs []ledger.Transaction, currency string, keyOf func(ledger.Transaction) string, sorted bool) Breakdown {
	sums := make(map[string]int64)
	var labels []string
	var used int64

	for _, t := range txs {
		if t.Type != ledger.Expense {
			continue
		}

		cents, ok := cents(t, &used)
		if !ok {
			continue
		}

		k := keyOf(t)
		if _, seen := sums[k]; !seen {
			labels = append(labels, k)
		}
		sums[k] += cents
	}

	if sorted {
		sort.Strings(labels)
	}

	b := Breakdown{
		Totals: make(map[string]*money.Money, len(labels)),
		Labels: labels,
		Values: make([]*money.Money, len(labels)),
	}
	for i, k := range labels {
		m := money.New(sums[k], currency)
		b.Totals[k] = m
		b.Values[i] = m
	}

	return b
}

// cents reads t's amount and charges its size to used. Transactions whose
// amount is unreadable or would push used past maxTotal are skipped.
func cents(t ledger.Transaction, used *int64) (int64, bool) {
	c, err := t.Amount.Cents()
	if err != nil {
		logger.Warn("skipping transaction with unreadable amount", "id", t.ID, "amount", t.Amount.String())
		return 0, false
	}

	size := c
	if size < 0 {
		size = -size
	}
	if *used > maxTotal-size {
		logger.Warn("skipping transaction, totals out of range", "id", t.ID, "amount", t.Amount.String())
		return 0, false
	}
	*used += size

	return c, true
}
