package model

import "github.com/shopspring/decimal"

// Snapshot is a point-in-time view of the ledger totals.
type Snapshot struct {
	Income        decimal.Decimal
	Fixed         decimal.Decimal
	Variable      decimal.Decimal
	TotalExpenses decimal.Decimal
	Savings       decimal.Decimal
}

// Goal is the result of a savings plan for a target purchase.
type Goal struct {
	ItemPrice        decimal.Decimal
	Months           int
	MonthlySavings   decimal.Decimal // savings rate the plan assumes per month
	RequiredPerMonth decimal.Decimal
	ExtraNeeded      decimal.Decimal // never negative
}

// Achievable reports whether the current savings rate already covers the goal.
func (g Goal) Achievable() bool {
	return !g.ExtraNeeded.IsPositive()
}
