package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tally-dev/tally/internal/model"
)

const cellWidth = 10

var tableColumns = []string{"INCOME", "FIXED", "VARIABLE", "SAVINGS"}

// WriteTable writes the income, fixed, variable and savings summary, followed
// by any categories outside those three.
func WriteTable(w io.Writer, snap model.Snapshot, totals []model.CategoryTotal, f *Formatter) error {
	header := row(tableColumns...)
	rule := strings.Repeat("-", utf8.RuneCountInString(header))
	values := row(
		f.Amount(snap.Income),
		f.Amount(snap.Fixed),
		f.Amount(snap.Variable),
		f.Amount(snap.Savings),
	)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n%s\n%s\n%s\n", header, rule, values, rule)

	others := Others(totals)
	if len(others) > 0 {
		b.WriteString("Other categories (not counted in savings):\n")
		for _, t := range others {
			fmt.Fprintf(&b, "  %s: %s\n", t.Category, f.Amount(t.Amount))
		}
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// SavingsAssumption is printed with every plan; monthly savings come from the
// loaded records, not from a forecast.
const SavingsAssumption = "Assuming you keep the same monthly savings as in the loaded records."

// WriteGoal writes the result of a savings plan.
func WriteGoal(w io.Writer, goal model.Goal, f *Formatter) error {
	var b strings.Builder
	b.WriteString("\nResults:\n")
	b.WriteString(SavingsAssumption + "\n")
	fmt.Fprintf(&b, "- Your monthly savings: %s\n", f.Amount(goal.MonthlySavings))
	fmt.Fprintf(&b, "- Needed each month: %s\n\n", f.Amount(goal.RequiredPerMonth))
	if goal.Achievable() {
		b.WriteString("With your current savings, you can buy this item in that time.\n")
	} else {
		fmt.Fprintf(&b, "You need an extra saving of %s each month.\n", f.Amount(goal.ExtraNeeded))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Others returns the totals for categories other than Income, Fixed and Variable.
func Others(totals []model.CategoryTotal) []model.CategoryTotal {
	var out []model.CategoryTotal
	for _, t := range totals {
		switch t.Category {
		case model.CategoryIncome, model.CategoryFixed, model.CategoryVariable:
			continue
		}
		out = append(out, t)
	}
	return out
}

func row(cells ...string) string {
	centered := make([]string, len(cells))
	for i, c := range cells {
		centered[i] = center(c, cellWidth)
	}
	return strings.Join(centered, " | ")
}

// center pads s to width, putting the odd extra space on the right.
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
