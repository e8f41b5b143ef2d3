package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
)

func TestParseRecord(t *testing.T) {
	rec, err := ParseRecord(model.Row{Category: " Fixed ", Amount: " 127.50 ", Description: "Rent share"})
	require.NoError(t, err)
	assert.Equal(t, model.CategoryFixed, rec.Category)
	assertDec(t, "127.50", rec.Amount)
	assert.Equal(t, "Rent share", rec.Description)
}

func TestParseRecord_Errors(t *testing.T) {
	tests := []struct {
		name  string
		row   model.Row
		field string
		want  error
	}{
		{"missing category", model.Row{Amount: "1"}, model.FieldCategory, ErrMissingField},
		{"blank category", model.Row{Category: "   ", Amount: "1"}, model.FieldCategory, ErrMissingField},
		{"missing amount", model.Row{Category: "Income"}, model.FieldAmount, ErrMissingField},
		{"non-numeric amount", model.Row{Category: "Income", Amount: "twelve"}, model.FieldAmount, ErrInvalidAmount},
		{"two separators", model.Row{Category: "Income", Amount: "1.2.3"}, model.FieldAmount, ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecord(tt.row)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var merr *MalformedRecordError
			require.ErrorAs(t, err, &merr)
			assert.Equal(t, tt.field, merr.Field)
		})
	}
}

func TestMalformedRecordError_Message(t *testing.T) {
	err := &MalformedRecordError{Line: 7, Field: model.FieldAmount, Value: "abc", Err: ErrInvalidAmount}
	assert.Equal(t, `line 7: Amount "abc": amount is not a decimal number`, err.Error())

	err = &MalformedRecordError{Field: model.FieldCategory, Err: ErrMissingField}
	assert.Equal(t, "record: Category: missing required field", err.Error())
}

func TestParseRecord_UnreadableRow(t *testing.T) {
	cause := errors.New(`bare " in non-quoted-field`)
	_, err := ParseRecord(model.Row{Line: 4, Err: cause})

	var merr *MalformedRecordError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, 4, merr.Line)
	assert.Empty(t, merr.Field)
	assert.ErrorIs(t, err, ErrUnreadable)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `line 4: row could not be read: bare " in non-quoted-field`, err.Error())
}
