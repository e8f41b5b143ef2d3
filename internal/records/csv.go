package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tally-dev/tally/internal/model"
)

// Header is the CSV header written to new record files.
const Header = model.FieldCategory + "," + model.FieldAmount + "," + model.FieldDescription

const (
	numFields = 3
	colCat    = 0
	colAmount = 1
	colDesc   = 2
	utf8BOM   = "\ufeff"
)

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing column")

type columns struct {
	category, amount, description int
}

// ReadRows reads all rows from a record file. Columns are located by header
// name, so their order is free and extra columns are ignored. Rows may be
// shorter than the header; absent cells read as empty. A line that is not
// valid CSV comes back as a Row with Err set, and reading continues after it.
func ReadRows(r io.Reader) ([]model.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []model.Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			rows = append(rows, model.Row{Line: perr.StartLine, Err: perr})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading records CSV: %w", err)
		}

		line, _ := cr.FieldPos(0)
		rows = append(rows, model.Row{
			Line:        line,
			Category:    field(rec, cols.category),
			Amount:      field(rec, cols.amount),
			Description: field(rec, cols.description),
		})
	}
	return rows, nil
}

// ReadHeader returns the first record of r, or nil if r holds no records.
func ReadHeader(r io.Reader) ([]string, error) {
	header, err := csv.NewReader(r).Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	return header, nil
}

// WriteRecords writes records to w, header first.
func WriteRecords(w io.Writer, recs []model.Record) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range recs {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendRecords writes records to w without a header, laid out to match the
// given header. Columns the header does not name are left empty, and a
// Description is dropped if the header has no such column.
func AppendRecords(w io.Writer, header []string, recs []model.Record) error {
	cols, err := locateColumns(header)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, rec := range recs {
		if err := cw.Write(cols.marshal(rec, len(header))); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalRecord converts a Record to a CSV row in Header order.
func MarshalRecord(rec model.Record) []string {
	return defaultColumns.marshal(rec, numFields)
}

var defaultColumns = columns{category: colCat, amount: colAmount, description: colDesc}

func (c columns) marshal(rec model.Record, width int) []string {
	row := make([]string, width)
	row[c.category] = string(rec.Category)
	row[c.amount] = rec.Amount.String()
	if c.description >= 0 {
		row[c.description] = rec.Description
	}
	return row
}

func locateColumns(header []string) (columns, error) {
	cols := columns{category: -1, amount: -1, description: -1}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		switch name {
		case model.FieldCategory:
			cols.category = i
		case model.FieldAmount:
			cols.amount = i
		case model.FieldDescription:
			cols.description = i
		}
	}
	if cols.category < 0 {
		return cols, fmt.Errorf("%w %q", ErrMissingColumn, model.FieldCategory)
	}
	if cols.amount < 0 {
		return cols, fmt.Errorf("%w %q", ErrMissingColumn, model.FieldAmount)
	}
	return cols, nil
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}
