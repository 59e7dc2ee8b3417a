// Package ledger owns the transaction list: records, validation, the store
// and its import/export format.
package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for Transaction.Date.
const DateLayout = "2006-01-02"

// Type tells income and expense apart.
type Type string

const (
	Income  Type = "income"
	Expense Type = "expense"
)

// ParseType accepts "income" or "expense", case-insensitively.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	}
	return "", &ValidationError{Field: "type", Err: ErrInvalidType}
}

// Amount is a decimal kept in its stored textual form, normally fixed to two decimals.
type Amount string

// MaxCents is the largest amount, in minor units, a transaction may carry.
// It leaves room to sum a thousand maximal amounts in an int64.
const MaxCents = math.MaxInt64 / 1000

var maxCents = decimal.NewFromInt(MaxCents)

// ParseAmount parses s and fixes it to two decimals. Zero and negative values are rejected.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return "", &ValidationError{Field: "amount", Err: ErrInvalidAmount}
	}

	d = d.Round(2)
	if !d.IsPositive() || d.Shift(2).GreaterThan(maxCents) {
		return "", &ValidationError{Field: "amount", Err: ErrInvalidAmount}
	}

	return Amount(d.StringFixed(2)), nil
}

// Decimal parses the stored text.
func (a Amount) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(string(a)))
}

// Cents returns the amount in minor units, rounded to two decimals. Amounts
// beyond MaxCents in either direction are an error.
func (a Amount) Cents() (int64, error) {
	d, err := a.Decimal()
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", string(a), err)
	}

	c := d.Round(2).Shift(2)
	if c.Abs().GreaterThan(maxCents) {
		return 0, fmt.Errorf("amount %q out of range: %w", string(a), ErrInvalidAmount)
	}
	return c.IntPart(), nil
}

func (a Amount) String() string {
	return string(a)
}

// UnmarshalJSON accepts a JSON string or number; older exports wrote both.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a string or number: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

// Transaction is one income or expense record.
type Transaction struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Amount   Amount `json:"amount"`
	Type     Type   `json:"type"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

// Month returns the YYYY-MM prefix of the date.
func (t Transaction) Month() string {
	if len(t.Date) < len("2006-01") {
		return t.Date
	}
	return t.Date[:len("2006-01")]
}

// Label is what the list shows as the badge: "Income" for income, otherwise the category.
func (t Transaction) Label() string {
	if t.Type == Income {
		return "Income"
	}
	return t.Category
}

// Draft carries user input for a new transaction.
type Draft struct {
	Text     string
	Amount   string
	Type     Type
	Category string
	// Date defaults to today when empty.
	Date string
}

// Validate reports the first invalid field.
func (d Draft) Validate() error {
	if err := validateText(d.Text); err != nil {
		return err
	}
	if _, err := ParseAmount(d.Amount); err != nil {
		return err
	}
	if _, err := ParseType(string(d.Type)); err != nil {
		return err
	}
	if d.Date != "" {
		return validateDate(d.Date)
	}
	return nil
}

// Patch replaces the non-nil fields of a transaction. The id never changes.
type Patch struct {
	Text     *string
	Amount   *string
	Type     *Type
	Category *string
	Date     *string
}

// PatchFromDraft builds a patch replacing every field with the draft's values.
func PatchFromDraft(d Draft) Patch {
	return Patch{
		Text:     &d.Text,
		Amount:   &d.Amount,
		Type:     &d.Type,
		Category: &d.Category,
		Date:     &d.Date,
	}
}

// Validate checks the fields the patch sets.
func (p Patch) Validate() error {
	if p.Text != nil {
		if err := validateText(*p.Text); err != nil {
			return err
		}
	}
	if p.Amount != nil {
		if _, err := ParseAmount(*p.Amount); err != nil {
			return err
		}
	}
	if p.Type != nil {
		if _, err := ParseType(string(*p.Type)); err != nil {
			return err
		}
	}
	if p.Date != nil && *p.Date != "" {
		return validateDate(*p.Date)
	}
	return nil
}

func (p Patch) apply(t Transaction, today string) Transaction {
	if p.Text != nil {
		t.Text = strings.TrimSpace(*p.Text)
	}
	if p.Amount != nil {
		if a, err := ParseAmount(*p.Amount); err == nil {
			t.Amount = a
		}
	}
	if p.Type != nil {
		if typ, err := ParseType(string(*p.Type)); err == nil {
			t.Type = typ
		}
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Date != nil {
		t.Date = *p.Date
		if t.Date == "" {
			t.Date = today
		}
	}
	return t
}

func validateText(s string) error {
	if strings.TrimSpace(s) == "" {
		return &ValidationError{Field: "text", Err: ErrEmptyText}
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return &ValidationError{Field: "date", Err: ErrInvalidDate}
	}
	return nil
}
