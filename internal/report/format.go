// Package report renders ledger snapshots and savings goals for people:
// a fixed-width text table for the terminal and an XLSX workbook for export.
package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts with locale-specific separators and two decimals.
type Formatter struct {
	group   string
	decimal string
}

// NewFormatter returns a Formatter for a BCP 47 locale tag such as "en" or "de-CH".
func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	group, dec := separators(message.NewPrinter(tag))
	return &Formatter{group: group, decimal: dec}, nil
}

// separators reads the grouping and decimal separators off a formatted sample.
// Locales that do not print Latin digits fall back to "," and ".".
func separators(p *message.Printer) (group, dec string) {
	sample := p.Sprint(number.Decimal(12345.5, number.Scale(1)))
	rest, ok := strings.CutPrefix(sample, "12")
	if !ok {
		return ",", "."
	}
	i := strings.Index(rest, "345")
	if i < 0 {
		return ",", "."
	}
	group = rest[:i]
	dec, ok = strings.CutSuffix(rest[i+len("345"):], "5")
	if !ok || dec == "" {
		return ",", "."
	}
	return group, dec
}

// Amount formats d with two decimals, grouping the integer digits in threes.
// Values are rounded for display only; no precision is lost on large amounts.
func (f *Formatter) Amount(d decimal.Decimal) string {
	s := d.Round(2).StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(f.group)
		}
		b.WriteByte(whole[i])
	}
	b.WriteString(f.decimal)
	b.WriteString(frac)
	return b.String()
}
