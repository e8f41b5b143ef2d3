package menu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/categories"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/report"
)

func init() {
	color.NoColor = true
}

type addCall struct{ category, amount, description string }

type fakeSession struct {
	snap    model.Snapshot
	adds    []addCall
	addErr  error
	goal    model.Goal
	planErr error
	plans   [][2]string
}

func (f *fakeSession) Report() model.Snapshot        { return f.snap }
func (f *fakeSession) Totals() []model.CategoryTotal { return nil }

func (f *fakeSession) Add(category, amount, description string) (model.Record, error) {
	f.adds = append(f.adds, addCall{category, amount, description})
	return model.Record{Category: model.Category(strings.TrimSpace(category))}, f.addErr
}

func (f *fakeSession) Plan(price, months string) (model.Goal, error) {
	f.plans = append(f.plans, [2]string{price, months})
	return f.goal, f.planErr
}

func run(t *testing.T, sess Session, input string) string {
	t.Helper()
	f, err := report.NewFormatter("en")
	require.NoError(t, err)

	var out bytes.Buffer
	m := New(sess, categories.NewService("Hobbies"), f, strings.NewReader(input), &out)
	require.NoError(t, m.Run())
	return out.String()
}

func TestRun_Exit(t *testing.T) {
	out := run(t, &fakeSession{}, "4\n")
	assert.Contains(t, out, "===== FINANCE MANAGER MENU =====")
	assert.Contains(t, out, "Choose an option (1-4): ")
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
	assert.Equal(t, 1, strings.Count(out, "FINANCE MANAGER MENU"))
}

func TestRun_EOFEndsLoop(t *testing.T) {
	out := run(t, &fakeSession{}, "")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_InvalidOption(t *testing.T) {
	out := run(t, &fakeSession{}, "9\nabc\n4\n")
	assert.Equal(t, 2, strings.Count(out, "Invalid option. Please try again."))
	assert.Equal(t, 3, strings.Count(out, "FINANCE MANAGER MENU"))
}

func TestRun_Report(t *testing.T) {
	sess := &fakeSession{snap: model.Snapshot{
		Income:  decimal.NewFromInt(900),
		Fixed:   decimal.NewFromInt(500),
		Savings: decimal.NewFromInt(400),
	}}
	out := run(t, sess, "1\n4\n")
	assert.Contains(t, out, "INCOME")
	assert.Contains(t, out, "900.00")
	assert.Contains(t, out, "400.00")
}

func TestRun_AddRow(t *testing.T) {
	sess := &fakeSession{}
	out := run(t, sess, "2\nVariable\n19.99\nLunch\n4\n")

	assert.Contains(t, out, "Category (Income, Fixed, Variable, Hobbies): ")
	assert.Contains(t, out, "Record added successfully!")
	assert.NotContains(t, out, "Note:")
	require.Len(t, sess.adds, 1)
	assert.Equal(t, addCall{"Variable", "19.99", "Lunch"}, sess.adds[0])
}

func TestRun_AddListsCategories(t *testing.T) {
	out := run(t, &fakeSession{}, "2\nFixed\n800\n\n4\n")

	assert.Contains(t, out, "  Income     Salary and other money received\n")
	assert.Contains(t, out, "  Fixed      Recurring expenses of a set amount\n")
	assert.Contains(t, out, "  Hobbies    \n")
	assert.Less(t, strings.Index(out, "Recurring expenses"), strings.Index(out, "Category ("))
}

func TestRun_AddOtherCategoryNote(t *testing.T) {
	out := run(t, &fakeSession{}, "2\nHobbies\n15\nBook club\n2\nTravel\n200\n\n4\n")

	assert.Contains(t, out, "Note: Hobbies is not counted in expenses or savings.")
	assert.Contains(t, out, "Note: Travel is not counted in expenses or savings.")
}

func TestRun_AddRowErrorContinues(t *testing.T) {
	sess := &fakeSession{addErr: errors.New("amount is not a decimal number")}
	out := run(t, sess, "2\nFixed\nten\n\n4\n")

	assert.Contains(t, out, "Error: amount is not a decimal number")
	assert.NotContains(t, out, "Record added successfully!")
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
}

func TestRun_AddRowInputEnds(t *testing.T) {
	sess := &fakeSession{}
	out := run(t, sess, "2\nFixed\n")

	assert.Empty(t, sess.adds)
	assert.Contains(t, out, "Error: unexpected EOF")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_Goal(t *testing.T) {
	sess := &fakeSession{goal: model.Goal{
		MonthlySavings:   decimal.NewFromInt(100),
		RequiredPerMonth: decimal.NewFromInt(300),
		ExtraNeeded:      decimal.NewFromInt(200),
	}}
	out := run(t, sess, "3\n900\n3\n4\n")

	require.Len(t, sess.plans, 1)
	assert.Equal(t, [2]string{"900", "3"}, sess.plans[0])
	assert.Contains(t, out, "How much does the item cost? ")
	assert.Contains(t, out, "You need an extra saving of 200.00 each month.")
}

func TestRun_GoalErrorContinues(t *testing.T) {
	sess := &fakeSession{planErr: errors.New("months 0: must be greater than zero")}
	out := run(t, sess, "3\n900\n0\n4\n")

	assert.Contains(t, out, "Error: months 0: must be greater than zero")
	assert.NotContains(t, out, "Results:")
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
}
