package ledger

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/carlmjohnson/be"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want Amount
		ok   bool
	}{
		{"50", "50.00", true},
		{"1.5", "1.50", true},
		{" 12.345 ", "12.35", true},
		{"0.01", "0.01", true},
		{"1000", "1000.00", true},
		{"92233720368547.75", "92233720368547.75", true},
		{"92233720368547.76", "", false},
		{"100000000000000000", "", false},
		{"0", "", false},
		{"0.001", "", false},
		{"-5", "", false},
		{"abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if !tt.ok {
				be.True(t, errors.Is(err, ErrInvalidAmount))
				return
			}
			be.NilErr(t, err)
			be.Equal(t, tt.want, got)
		})
	}
}

func TestAmountCents(t *testing.T) {
	cents, err := Amount("950.05").Cents()
	be.NilErr(t, err)
	be.Equal(t, int64(95005), cents)

	_, err = Amount("lots").Cents()
	be.Nonzero(t, err)

	cents, err = Amount("92233720368547.75").Cents()
	be.NilErr(t, err)
	be.Equal(t, int64(MaxCents), cents)

	for _, a := range []Amount{"100000000000000000.00", "-100000000000000000", "1e30"} {
		_, err = a.Cents()
		be.True(t, errors.Is(err, ErrInvalidAmount))
	}
}

func TestAmountUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Amount
	}{
		{name: "string", in: `"50.00"`, want: "50.00"},
		{name: "number", in: `50`, want: "50"},
		{name: "decimal number", in: `12.5`, want: "12.5"},
		{name: "null", in: `null`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			be.NilErr(t, json.Unmarshal([]byte(tt.in), &a))
			be.Equal(t, tt.want, a)
		})
	}

	var a Amount
	be.Nonzero(t, json.Unmarshal([]byte(`{}`), &a))
}

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		want  error
	}{
		{
			name:  "valid expense",
			draft: Draft{Text: "Coffee", Amount: "50", Type: Expense, Category: "Food", Date: "2024-01-05"},
		},
		{
			name:  "valid without date",
			draft: Draft{Text: "Salary", Amount: "1000", Type: Income},
		},
		{
			name:  "blank description",
			draft: Draft{Text: "   ", Amount: "50", Type: Expense},
			want:  ErrEmptyText,
		},
		{
			name:  "zero amount",
			draft: Draft{Text: "Coffee", Amount: "0", Type: Expense},
			want:  ErrInvalidAmount,
		},
		{
			name:  "negative amount",
			draft: Draft{Text: "Coffee", Amount: "-3", Type: Expense},
			want:  ErrInvalidAmount,
		},
		{
			name:  "unknown type",
			draft: Draft{Text: "Coffee", Amount: "3", Type: "transfer"},
			want:  ErrInvalidType,
		},
		{
			name:  "bad date",
			draft: Draft{Text: "Coffee", Amount: "3", Type: Expense, Date: "05/01/2024"},
			want:  ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.want == nil {
				be.NilErr(t, err)
				return
			}
			be.True(t, errors.Is(err, tt.want))

			var verr *ValidationError
			be.True(t, errors.As(err, &verr))
		})
	}
}

func TestTransactionMonthAndLabel(t *testing.T) {
	expense := Transaction{Type: Expense, Category: "Food", Date: "2024-01-05"}
	be.Equal(t, "2024-01", expense.Month())
	be.Equal(t, "Food", expense.Label())

	income := Transaction{Type: Income, Category: "Food", Date: "2024"}
	be.Equal(t, "2024", income.Month())
	be.Equal(t, "Income", income.Label())
}

func TestParseType(t *testing.T) {
	typ, err := ParseType(" Income ")
	be.NilErr(t, err)
	be.Equal(t, Income, typ)

	_, err = ParseType("refund")
	be.True(t, errors.Is(err, ErrInvalidType))
}
