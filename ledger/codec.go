package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// BackupFileName is the default name of an exported backup.
const BackupFileName = "myspend-backup.json"

// encodeList is the compact form kept in storage.
func encodeList(txs []Transaction) ([]byte, error) {
	if txs == nil {
		txs = []Transaction{}
	}
	return json.Marshal(txs)
}

// decodeList reads the stored form. A null payload is an empty list.
func decodeList(data []byte) ([]Transaction, error) {
	var txs []Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// EncodeBackup renders the list as the pretty printed export document.
func EncodeBackup(txs []Transaction) ([]byte, error) {
	if txs == nil {
		txs = []Transaction{}
	}
	return json.MarshalIndent(txs, "", "  ")
}

// ParseImport turns an import document into records. The document must be a
// JSON array whose elements all carry a non-empty id, text and amount; the
// remaining fields are taken as they are. Any violation rejects the whole
// document with an *ImportFormatError.
func ParseImport(data []byte) ([]Transaction, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &ImportFormatError{Index: -1, Err: fmt.Errorf("%w: %v", ErrNotAnArray, err)}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ImportFormatError{Index: -1, Err: fmt.Errorf("%w: trailing data after document", ErrNotAnArray)}
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, &ImportFormatError{Index: -1, Err: ErrNotAnArray}
	}

	txs := make([]Transaction, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &ImportFormatError{Index: i, Err: ErrInvalidRecord}
		}

		for _, field := range []string{"id", "text", "amount"} {
			if !present(obj[field]) {
				return nil, &ImportFormatError{Index: i, Field: field, Err: ErrInvalidRecord}
			}
		}

		t := Transaction{
			ID:       scalar(obj["id"]),
			Text:     scalar(obj["text"]),
			Amount:   Amount(scalar(obj["amount"])),
			Type:     Type(text(obj["type"])),
			Category: text(obj["category"]),
			Date:     text(obj["date"]),
		}
		if a, err := ParseAmount(string(t.Amount)); err == nil {
			t.Amount = a
		}

		txs = append(txs, t)
	}

	return txs, nil
}

// present reports whether v counts as a filled in value: a non-blank string
// or a non-zero number.
func present(v any) bool {
	switch v := v.(type) {
	case string:
		return strings.TrimSpace(v) != ""
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0
	}
	return false
}

func scalar(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	}
	return ""
}

func text(v any) string {
	s, _ := v.(string)
	return s
}
