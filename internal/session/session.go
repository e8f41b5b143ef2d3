// Package session ties the ledger, the records file and the planner together
// for one user session.
package session

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tally-dev/tally/internal/categories"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/planner"
)

// Store is the records file as the session sees it.
type Store interface {
	Load() ([]model.Row, error)
	Append(rec model.Record) error
}

// Status describes what happened when the session loaded its records.
type Status struct {
	Applied    int
	StorageErr error
	RowErrors  []*ledger.MalformedRecordError
}

// HasIssues reports whether the load hit a storage failure or skipped any rows.
func (s Status) HasIssues() bool {
	return s.StorageErr != nil || len(s.RowErrors) > 0
}

// Session holds the in-memory ledger for the records behind a Store.
type Session struct {
	store   Store
	agg     *ledger.Aggregator
	planner *planner.Planner
	cats    *categories.Service
	log     *zap.Logger
}

// Open loads the store once. A storage failure leaves the session with an
// empty ledger; it is reported in the Status rather than returned as an error.
func Open(store Store, p *planner.Planner, cats *categories.Service, log *zap.Logger) (*Session, Status) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		store:   store,
		agg:     ledger.New(),
		planner: p,
		cats:    cats,
		log:     log,
	}

	var st Status
	rows, err := store.Load()
	if err != nil {
		log.Warn("records unavailable, starting with an empty ledger", zap.Error(err))
		st.StorageErr = err
		return s, st
	}

	res := s.agg.Load(rows)
	st.Applied = res.Applied
	st.RowErrors = res.Errors
	for _, e := range res.Errors {
		log.Warn("skipped malformed record", zap.Int("line", e.Line), zap.String("field", e.Field), zap.Error(e.Err))
	}
	log.Debug("records loaded", zap.Int("applied", res.Applied), zap.Int("skipped", len(res.Errors)))

	return s, st
}

// Report returns the current totals.
func (s *Session) Report() model.Snapshot {
	return s.agg.Snapshot()
}

// Total returns the total for one category, zero if none was recorded.
func (s *Session) Total(category model.Category) decimal.Decimal {
	return s.agg.Total(category)
}

// Totals returns the total of every category seen so far.
func (s *Session) Totals() []model.CategoryTotal {
	return s.agg.Totals()
}

// Add validates a record entered by the user, appends it to the store and
// then applies it. A failed write leaves the totals unchanged.
func (s *Session) Add(category, amount, description string) (model.Record, error) {
	rec, err := ledger.ParseRecord(model.Row{Category: category, Amount: amount, Description: description})
	if err != nil {
		return model.Record{}, err
	}

	if err := s.store.Append(rec); err != nil {
		return model.Record{}, fmt.Errorf("saving record: %w", err)
	}
	s.agg.Update(rec.Category, rec.Amount)

	if s.cats != nil && !s.cats.Known(rec.Category) {
		s.log.Info("record added to an unlisted category", zap.String("category", string(rec.Category)))
	}
	s.log.Debug("record added", zap.String("category", string(rec.Category)), zap.String("amount", rec.Amount.String()))

	return rec, nil
}

// Plan computes how much must be set aside each month to afford an item,
// using the session's savings as the current monthly savings.
func (s *Session) Plan(price, months string) (model.Goal, error) {
	p, m, err := planner.ParseInputs(price, months)
	if err != nil {
		return model.Goal{}, err
	}
	savings := s.agg.Snapshot().Savings
	if s.planner != nil {
		return s.planner.Plan(p, m, savings)
	}
	return planner.Plan(p, m, savings)
}
