package report

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/xuri/excelize/v2"

	"github.com/tally-dev/tally/internal/model"
)

// SummarySheet is the name of the worksheet written by XLSX.
const SummarySheet = "Summary"

// numFmtAmount is the built-in "#,##0.00" number format.
const numFmtAmount = 4

type summaryLine struct {
	label string
	value float64
	total bool
}

// XLSX renders the snapshot and the remaining category totals as a workbook.
func XLSX(snap model.Snapshot, totals []model.CategoryTotal) ([]byte, error) {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "tally",
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if err := xlsx.SetSheetName(sheet, SummarySheet); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}
	sheet = SummarySheet

	_ = xlsx.SetColWidth(sheet, "A", "A", 24)
	_ = xlsx.SetColWidth(sheet, "B", "B", 16)

	headerStyle, err := newStyle(xlsx, bold(), underline())
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}
	amountStyle, err := newStyle(xlsx, amount())
	if err != nil {
		return nil, fmt.Errorf("creating amount style: %w", err)
	}
	totalLabelStyle, err := newStyle(xlsx, bold())
	if err != nil {
		return nil, fmt.Errorf("creating total style: %w", err)
	}
	totalAmountStyle, err := newStyle(xlsx, amount(), bold())
	if err != nil {
		return nil, fmt.Errorf("creating total style: %w", err)
	}

	lines := []summaryLine{
		{string(model.CategoryIncome), snap.Income.InexactFloat64(), false},
		{string(model.CategoryFixed), snap.Fixed.InexactFloat64(), false},
		{string(model.CategoryVariable), snap.Variable.InexactFloat64(), false},
		{"Total expenses", snap.TotalExpenses.InexactFloat64(), true},
		{"Savings", snap.Savings.InexactFloat64(), true},
	}
	for _, t := range Others(totals) {
		lines = append(lines, summaryLine{string(t.Category), t.Amount.InexactFloat64(), false})
	}

	_ = xlsx.SetCellValue(sheet, "A1", "Category")
	_ = xlsx.SetCellValue(sheet, "B1", "Amount")
	_ = xlsx.SetCellStyle(sheet, "A1", "B1", headerStyle)

	for i, l := range lines {
		r := i + 2
		_ = xlsx.SetCellValue(sheet, cell('A', r), l.label)
		_ = xlsx.SetCellValue(sheet, cell('B', r), l.value)
		if l.total {
			_ = xlsx.SetCellStyle(sheet, cell('A', r), cell('A', r), totalLabelStyle)
			_ = xlsx.SetCellStyle(sheet, cell('B', r), cell('B', r), totalAmountStyle)
		} else {
			_ = xlsx.SetCellStyle(sheet, cell('B', r), cell('B', r), amountStyle)
		}
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func cell(col rune, row int) string {
	return fmt.Sprintf("%c%d", col, row)
}

func bold() *excelize.Style {
	return &excelize.Style{Font: &excelize.Font{Bold: true}}
}

func underline() *excelize.Style {
	return &excelize.Style{
		Border: []excelize.Border{{Type: "bottom", Color: "#000000", Style: 1}},
	}
}

func amount() *excelize.Style {
	return &excelize.Style{NumFmt: numFmtAmount}
}

// mergeStyles layers overlays onto a shallow copy of base, later values winning.
func mergeStyles(base *excelize.Style, overlays ...*excelize.Style) (*excelize.Style, error) {
	merged := *base
	for _, o := range overlays {
		if err := mergo.Merge(&merged, o, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging cell styles: %w", err)
		}
	}
	return &merged, nil
}

func newStyle(xlsx *excelize.File, base *excelize.Style, overlays ...*excelize.Style) (int, error) {
	style, err := mergeStyles(base, overlays...)
	if err != nil {
		return 0, err
	}
	return xlsx.NewStyle(style)
}
