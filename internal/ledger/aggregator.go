// Package ledger aggregates categorized records into per-category totals
// and the expense and savings figures derived from them.
//
// An Aggregator is not safe for concurrent use. Callers sharing one across
// goroutines must guard it themselves.
package ledger

import (
	"errors"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// Aggregator keeps running totals per category.
// Derived metrics are recomputed after every mutation so a Snapshot is always
// consistent with the totals it was taken from.
type Aggregator struct {
	totals        map[model.Category]decimal.Decimal
	totalExpenses decimal.Decimal
	savings       decimal.Decimal
}

// LoadResult reports the outcome of a bulk load.
type LoadResult struct {
	Applied int
	Errors  []*MalformedRecordError
}

// Err joins the row errors into one error, or returns nil if every row applied.
func (r LoadResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// New returns an empty Aggregator. The zero value is also ready to use.
func New() *Aggregator {
	return &Aggregator{totals: make(map[model.Category]decimal.Decimal)}
}

// Load aggregates rows best-effort: malformed rows are skipped and reported in
// the result, valid rows are applied. Derived metrics are recomputed once at the end.
func (a *Aggregator) Load(rows []model.Row) LoadResult {
	var res LoadResult
	for _, row := range rows {
		rec, merr := parseRow(row)
		if merr != nil {
			res.Errors = append(res.Errors, merr)
			continue
		}
		a.add(rec.Category, rec.Amount)
		res.Applied++
	}
	a.recompute()
	return res
}

// Update adds amount to category and recomputes derived metrics.
func (a *Aggregator) Update(category model.Category, amount decimal.Decimal) {
	a.add(category, amount)
	a.recompute()
}

// Total returns the running total for category, zero if never seen.
func (a *Aggregator) Total(category model.Category) decimal.Decimal {
	return a.totals[category]
}

// Totals returns every category total, sorted by category name.
func (a *Aggregator) Totals() []model.CategoryTotal {
	cats := a.Categories()
	out := make([]model.CategoryTotal, len(cats))
	for i, c := range cats {
		out[i] = model.CategoryTotal{Category: c, Amount: a.totals[c]}
	}
	return out
}

// Categories returns the categories seen so far, sorted.
func (a *Aggregator) Categories() []model.Category {
	cats := make([]model.Category, 0, len(a.totals))
	for c := range a.totals {
		cats = append(cats, c)
	}
	slices.Sort(cats)
	return cats
}

// Snapshot returns the current totals and derived metrics.
func (a *Aggregator) Snapshot() model.Snapshot {
	return model.Snapshot{
		Income:        a.totals[model.CategoryIncome],
		Fixed:         a.totals[model.CategoryFixed],
		Variable:      a.totals[model.CategoryVariable],
		TotalExpenses: a.totalExpenses,
		Savings:       a.savings,
	}
}

func (a *Aggregator) add(category model.Category, amount decimal.Decimal) {
	if a.totals == nil {
		a.totals = make(map[model.Category]decimal.Decimal)
	}
	a.totals[category] = a.totals[category].Add(amount)
}

func (a *Aggregator) recompute() {
	a.totalExpenses = a.totals[model.CategoryFixed].Add(a.totals[model.CategoryVariable])
	a.savings = a.totals[model.CategoryIncome].Sub(a.totalExpenses)
}
