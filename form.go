package main

import (
	"slices"
	"strings"
	"time"

	"github.com/Rshep3087/myspend/ledger"
	"github.com/charmbracelet/huh"
)

// formValues backs the transaction form fields.
type formValues struct {
	text     string
	amount   string
	typ      ledger.Type
	category string
	date     string
}

func newFormValues(today, category string) *formValues {
	return &formValues{
		typ:      ledger.Expense,
		category: category,
		date:     today,
	}
}

func formValuesFrom(t ledger.Transaction) *formValues {
	return &formValues{
		text:     t.Text,
		amount:   t.Amount.String(),
		typ:      t.Type,
		category: t.Category,
		date:     t.Date,
	}
}

// draft turns the values into store input. Income carries no category.
func (v *formValues) draft() ledger.Draft {
	d := ledger.Draft{
		Text:     v.text,
		Amount:   v.amount,
		Type:     v.typ,
		Category: v.category,
		Date:     strings.TrimSpace(v.date),
	}
	if d.Type == ledger.Income {
		d.Category = ""
	}
	return d
}

func validateText(s string) error {
	if strings.TrimSpace(s) == "" {
		return ledger.ErrEmptyText
	}
	return nil
}

func validateAmount(s string) error {
	if _, err := ledger.ParseAmount(s); err != nil {
		return ledger.ErrInvalidAmount
	}
	return nil
}

func validateDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(ledger.DateLayout, s); err != nil {
		return ledger.ErrInvalidDate
	}
	return nil
}

// formCategories lists the configured categories, then any others already in
// use, then current if it is still missing.
func formCategories(configured, inUse []string, current string) []string {
	categories := slices.Clone(configured)
	for _, c := range inUse {
		if !slices.Contains(categories, c) {
			categories = append(categories, c)
		}
	}
	if current != "" && !slices.Contains(categories, current) {
		categories = append(categories, current)
	}
	return categories
}

func newTransactionForm(v *formValues, categories []string, editing bool) *huh.Form {
	title := "Add transaction"
	if editing {
		title = "Edit transaction"
	}

	typeOpts := []huh.Option[ledger.Type]{
		huh.NewOption("Expense", ledger.Expense),
		huh.NewOption("Income", ledger.Income),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[ledger.Type]().
				Title(title).
				Description("Is this money coming in or going out?").
				Options(typeOpts...).
				Value(&v.typ),

			huh.NewInput().
				Title("Description").
				Placeholder("e.g. Coffee").
				Value(&v.text).
				Validate(validateText),

			huh.NewInput().
				Title("Amount").
				Description("A positive amount, e.g. 50 or 12.30").
				Placeholder("0.00").
				Value(&v.amount).
				Validate(validateAmount),

			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, empty means today").
				Placeholder(ledger.DateLayout).
				Value(&v.date).
				Validate(validateDate),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Description("Where did the money go?").
				Options(huh.NewOptions(categories...)...).
				Value(&v.category),
		).WithHideFunc(func() bool {
			return v.typ == ledger.Income
		}),
	)
}
