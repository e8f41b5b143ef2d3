// Package categories holds the set of categories the user is prompted with.
// Records may still use any other name; those are aggregated but do not
// count toward expenses or savings.
package categories

import (
	"strings"

	"github.com/tally-dev/tally/internal/model"
)

// Kind classifies how a category contributes to the derived metrics.
type Kind string

const (
	KindIncome   Kind = "income"
	KindFixed    Kind = "fixed_expense"
	KindVariable Kind = "variable_expense"
	KindOther    Kind = "other"
)

// Category is one entry in the category set.
type Category struct {
	Name        model.Category
	Kind        Kind
	Description string
}

// Defaults returns the built-in categories.
func Defaults() []Category {
	return []Category{
		{Name: model.CategoryIncome, Kind: KindIncome, Description: "Salary and other money received"},
		{Name: model.CategoryFixed, Kind: KindFixed, Description: "Recurring expenses of a set amount"},
		{Name: model.CategoryVariable, Kind: KindVariable, Description: "Expenses that change month to month"},
	}
}

// Service provides lookup over a category set.
type Service struct {
	all    []Category
	byName map[model.Category]Category
}

// NewService creates a Service from the built-in categories plus extra user-defined names.
// Blank and duplicate extras are ignored.
func NewService(extra ...string) *Service {
	s := &Service{byName: make(map[model.Category]Category)}
	for _, c := range Defaults() {
		s.add(c)
	}
	for _, name := range extra {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s.add(Category{Name: model.Category(name), Kind: KindOther})
	}
	return s
}

func (s *Service) add(c Category) {
	if _, ok := s.byName[c.Name]; ok {
		return
	}
	s.all = append(s.all, c)
	s.byName[c.Name] = c
}

// All returns every category in declaration order.
func (s *Service) All() []Category {
	return s.all
}

// Get returns a category by name.
func (s *Service) Get(name model.Category) (Category, bool) {
	c, ok := s.byName[name]
	return c, ok
}

// Known reports whether name is in the set.
func (s *Service) Known(name model.Category) bool {
	_, ok := s.byName[name]
	return ok
}

// CountsTowardSavings reports whether records in name feed the income, expense
// and savings figures. Unlisted names and user-defined extras do not.
func (s *Service) CountsTowardSavings(name model.Category) bool {
	c, ok := s.Get(name)
	return ok && c.Kind != KindOther
}

// Names returns the category names joined for a prompt, e.g. "Income, Fixed, Variable".
func (s *Service) Names() string {
	names := make([]string, len(s.all))
	for i, c := range s.all {
		names[i] = string(c.Name)
	}
	return strings.Join(names, ", ")
}
