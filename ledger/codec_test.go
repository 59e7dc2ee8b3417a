package ledger

import (
	"errors"
	"strings"
	"testing"

	"github.com/carlmjohnson/be"
)

func TestParseImport(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantCount int
		wantErr   error
		wantField string
	}{
		{
			name:      "valid records",
			in:        `[{"id":"a","text":"Coffee","amount":"50.00","type":"expense","category":"Food","date":"2024-01-05"},{"id":"b","text":"Salary","amount":1000,"type":"income"}]`,
			wantCount: 2,
		},
		{name: "empty array", in: `[]`, wantCount: 0},
		{name: "object", in: `{"id":"a"}`, wantErr: ErrNotAnArray},
		{name: "not json", in: `hello`, wantErr: ErrNotAnArray},
		{name: "trailing garbage", in: `[{"id":"a","text":"x","amount":"1"}] garbage`, wantErr: ErrNotAnArray},
		{name: "second document", in: `[] []`, wantErr: ErrNotAnArray},
		{name: "trailing whitespace", in: "[]\n\t ", wantCount: 0},
		{name: "missing text and amount", in: `[{"id":"1"}]`, wantErr: ErrInvalidRecord, wantField: "text"},
		{name: "empty id", in: `[{"id":"","text":"x","amount":"1"}]`, wantErr: ErrInvalidRecord, wantField: "id"},
		{name: "zero amount", in: `[{"id":"1","text":"x","amount":0}]`, wantErr: ErrInvalidRecord, wantField: "amount"},
		{name: "element not an object", in: `[1]`, wantErr: ErrInvalidRecord},
		{
			name:    "one bad record rejects all",
			in:      `[{"id":"a","text":"ok","amount":"1"},{"id":"b","text":"","amount":"1"}]`,
			wantErr: ErrInvalidRecord, wantField: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txs, err := ParseImport([]byte(tt.in))
			if tt.wantErr != nil {
				be.True(t, errors.Is(err, tt.wantErr))

				var ferr *ImportFormatError
				be.True(t, errors.As(err, &ferr))
				be.Equal(t, tt.wantField, ferr.Field)
				be.Zero(t, len(txs))
				return
			}
			be.NilErr(t, err)
			be.Equal(t, tt.wantCount, len(txs))
		})
	}
}

func TestParseImportIsPermissive(t *testing.T) {
	txs, err := ParseImport([]byte(`[{"id":7,"text":"Odd","amount":"a lot","type":"gift","date":20240105}]`))
	be.NilErr(t, err)
	be.Equal(t, 1, len(txs))

	got := txs[0]
	be.Equal(t, "7", got.ID)
	be.Equal(t, Amount("a lot"), got.Amount)
	be.Equal(t, Type("gift"), got.Type)
	be.Equal(t, "", got.Date)
}

func TestParseImportNormalizesNumericAmounts(t *testing.T) {
	txs, err := ParseImport([]byte(`[{"id":"1","text":"x","amount":12.5}]`))
	be.NilErr(t, err)
	be.Equal(t, Amount("12.50"), txs[0].Amount)
}

func TestEncodeBackupIsPrettyPrinted(t *testing.T) {
	data, err := EncodeBackup([]Transaction{{ID: "1", Text: "Coffee", Amount: "50.00", Type: Expense, Category: "Food", Date: "2024-01-05"}})
	be.NilErr(t, err)
	be.True(t, strings.HasPrefix(string(data), "[\n  {\n    \"id\": \"1\""))
	be.True(t, strings.Contains(string(data), `"amount": "50.00"`))

	empty, err := EncodeBackup(nil)
	be.NilErr(t, err)
	be.Equal(t, "[]", string(empty))
}
