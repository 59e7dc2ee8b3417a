package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyText     = errors.New("description is required")
	ErrInvalidAmount = errors.New("amount must be a number greater than zero")
	ErrInvalidType   = errors.New("type must be income or expense")
	ErrInvalidDate   = errors.New("date must be in YYYY-MM-DD format")

	ErrNotAnArray    = errors.New("invalid file structure")
	ErrInvalidRecord = errors.New("invalid transaction data")
)

// ValidationError rejects user input before any state change.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ImportFormatError rejects a whole import. Index is -1 when the payload
// itself is wrong rather than one of its records.
type ImportFormatError struct {
	Index int
	Field string
	Err   error
}

func (e *ImportFormatError) Error() string {
	if e.Index < 0 {
		return e.Err.Error()
	}
	if e.Field == "" {
		return fmt.Sprintf("%v: record %d is not an object", e.Err, e.Index)
	}
	return fmt.Sprintf("%v: record %d has no %s", e.Err, e.Index, e.Field)
}

func (e *ImportFormatError) Unwrap() error {
	return e.Err
}
