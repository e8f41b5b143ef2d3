// Package planner computes how much extra a user must save each month to
// afford a purchase within a given number of months.
package planner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// divPrecision is the number of fractional digits kept by divisions.
const divPrecision = 10

// ErrInvalidInput is wrapped by every InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a planner input that fails its constraints.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// Plan returns the monthly amount needed to buy an item priced itemPrice in
// months months, and how much more than currentSavings that is.
// currentSavings is taken as a steady monthly rate.
func Plan(itemPrice decimal.Decimal, months int, currentSavings decimal.Decimal) (model.Goal, error) {
	if !itemPrice.IsPositive() {
		return model.Goal{}, &InvalidInputError{Field: "item price", Value: itemPrice.String(), Reason: "must be greater than zero"}
	}
	if months <= 0 {
		return model.Goal{}, &InvalidInputError{Field: "months", Value: strconv.Itoa(months), Reason: "must be greater than zero"}
	}

	required := itemPrice.DivRound(decimal.NewFromInt(int64(months)), divPrecision)
	extra := decimal.Max(decimal.Zero, required.Sub(currentSavings))

	return model.Goal{
		ItemPrice:        itemPrice,
		Months:           months,
		MonthlySavings:   currentSavings,
		RequiredPerMonth: required,
		ExtraNeeded:      extra,
	}, nil
}

// Planner applies a configured averaging period to the savings figure of a
// loaded ledger before planning.
type Planner struct {
	// PeriodMonths is how many months the loaded records cover.
	PeriodMonths int
}

// New returns a Planner for records covering periodMonths months.
func New(periodMonths int) (*Planner, error) {
	if periodMonths <= 0 {
		return nil, &InvalidInputError{Field: "period months", Value: strconv.Itoa(periodMonths), Reason: "must be greater than zero"}
	}
	return &Planner{PeriodMonths: periodMonths}, nil
}

// MonthlyRate converts savings over the whole period into a per-month rate.
func (p *Planner) MonthlyRate(periodSavings decimal.Decimal) decimal.Decimal {
	if p.PeriodMonths <= 1 {
		return periodSavings
	}
	return periodSavings.DivRound(decimal.NewFromInt(int64(p.PeriodMonths)), divPrecision)
}

// Plan is like the package-level Plan, with periodSavings averaged over the
// planner's period first.
func (p *Planner) Plan(itemPrice decimal.Decimal, months int, periodSavings decimal.Decimal) (model.Goal, error) {
	return Plan(itemPrice, months, p.MonthlyRate(periodSavings))
}

// ParseInputs parses user-entered price and months.
func ParseInputs(price, months string) (decimal.Decimal, int, error) {
	price = strings.TrimSpace(price)
	p, err := decimal.NewFromString(price)
	if err != nil {
		return decimal.Zero, 0, &InvalidInputError{Field: "item price", Value: price, Reason: "not a number"}
	}

	months = strings.TrimSpace(months)
	m, err := strconv.Atoi(months)
	if err != nil {
		return decimal.Zero, 0, &InvalidInputError{Field: "months", Value: months, Reason: "not a whole number"}
	}
	return p, m, nil
}
