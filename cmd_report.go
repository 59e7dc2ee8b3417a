package main

import (
	"errors"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/Rshep3087/myspend/report"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// summaryCmd represents the summary command.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show totals and spending breakdowns",
	Long:  `Show income, expense and balance over all transactions, plus expenses by category and by month.`,
	RunE:  summaryRun,
}

func init() {
	summaryCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

// SummaryData is the json shape of the summary command.
type SummaryData struct {
	Currency   string        `json:"currency"`
	Income     string        `json:"income"`
	Expense    string        `json:"expense"`
	Balance    string        `json:"balance"`
	ByCategory []GroupAmount `json:"by_category"`
	ByMonth    []GroupAmount `json:"by_month"`
}

// GroupAmount is one bar of a breakdown.
type GroupAmount struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

func summaryRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	txs := store.All()
	currency := appConfig.Currency

	summary := report.Summarize(txs, currency)
	byCategory := report.ByCategory(txs, currency)
	byMonth := report.ByMonth(txs, currency)

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, newSummaryData(currency, summary, byCategory, byMonth))
	case tableOutputFormat:
		return outputSummaryTables(cmd, summary, byCategory, byMonth)
	default:
		return errors.New("unsupported output format")
	}
}

func newSummaryData(currency string, s report.Summary, byCategory, byMonth report.Breakdown) SummaryData {
	return SummaryData{
		Currency:   currency,
		Income:     majorUnits(s.Income),
		Expense:    majorUnits(s.Expense),
		Balance:    majorUnits(s.Balance),
		ByCategory: groupAmounts(byCategory),
		ByMonth:    groupAmounts(byMonth),
	}
}

func groupAmounts(b report.Breakdown) []GroupAmount {
	out := make([]GroupAmount, b.Len())
	for i, label := range b.Labels {
		out[i] = GroupAmount{Label: label, Amount: majorUnits(b.Values[i])}
	}
	return out
}

// majorUnits formats m as a plain decimal string, e.g. "950.00".
func majorUnits(m *money.Money) string {
	return decimal.New(m.Amount(), -2).StringFixed(2)
}

func outputSummaryTables(cmd *cobra.Command, s report.Summary, byCategory, byMonth report.Breakdown) error {
	out := cmd.OutOrStdout()

	totals := createStyledTable("INCOME", "EXPENSE", "BALANCE")
	totals.Row(s.Income.Display(), s.Expense.Display(), s.Balance.Display())
	fmt.Fprintln(out, totals)

	if byCategory.Len() == 0 {
		fmt.Fprintln(out, "No expenses")
		return nil
	}

	categories := createStyledTable("CATEGORY", "SPENT", "SHARE")
	for i, label := range byCategory.Labels {
		if label == "" {
			label = "uncategorized"
		}
		categories.Row(titleCaser.String(label), byCategory.Values[i].Display(),
			fmt.Sprintf("%.1f%%", byCategory.Share(i)*100))
	}
	fmt.Fprintln(out, categories)

	months := createStyledTable("MONTH", "SPENT")
	for i, label := range byMonth.Labels {
		months.Row(label, byMonth.Values[i].Display())
	}
	fmt.Fprintln(out, months)

	return nil
}
