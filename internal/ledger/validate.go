package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

var (
	// ErrMissingField is wrapped by MalformedRecordError when a required field is empty.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidAmount is wrapped by MalformedRecordError when the amount is not a decimal number.
	ErrInvalidAmount = errors.New("amount is not a decimal number")
	// ErrUnreadable is wrapped by MalformedRecordError when the row could not be decoded.
	ErrUnreadable = errors.New("row could not be read")
)

// MalformedRecordError describes a single record that could not be aggregated.
type MalformedRecordError struct {
	Line  int // 0 when the record did not come from a file
	Field string // empty when the whole row is unreadable
	Value string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	loc := "record"
	if e.Line > 0 {
		loc = fmt.Sprintf("line %d", e.Line)
	}
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", loc, e.Err)
	}
	if e.Value == "" {
		return fmt.Sprintf("%s: %s: %v", loc, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %s %q: %v", loc, e.Field, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// ParseRecord validates a raw row and converts it to a Record.
// Category is trimmed of surrounding whitespace; the amount must parse as a decimal.
func ParseRecord(row model.Row) (model.Record, error) {
	rec, merr := parseRow(row)
	if merr != nil {
		return model.Record{}, merr
	}
	return rec, nil
}

func parseRow(row model.Row) (model.Record, *MalformedRecordError) {
	if row.Err != nil {
		return model.Record{}, &MalformedRecordError{Line: row.Line, Err: fmt.Errorf("%w: %w", ErrUnreadable, row.Err)}
	}

	category := strings.TrimSpace(row.Category)
	if category == "" {
		return model.Record{}, &MalformedRecordError{Line: row.Line, Field: model.FieldCategory, Err: ErrMissingField}
	}

	raw := strings.TrimSpace(row.Amount)
	if raw == "" {
		return model.Record{}, &MalformedRecordError{Line: row.Line, Field: model.FieldAmount, Err: ErrMissingField}
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return model.Record{}, &MalformedRecordError{Line: row.Line, Field: model.FieldAmount, Value: raw, Err: ErrInvalidAmount}
	}

	return model.Record{
		Category:    model.Category(category),
		Amount:      amount,
		Description: row.Description,
	}, nil
}
