// Package menu runs the interactive numbered menu over a reader and a writer.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/tally-dev/tally/internal/categories"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/report"
)

const (
	optReport = "1"
	optAdd    = "2"
	optGoal   = "3"
	optExit   = "4"
)

// Session is the subset of session.Session the menu drives.
type Session interface {
	Report() model.Snapshot
	Totals() []model.CategoryTotal
	Add(category, amount, description string) (model.Record, error)
	Plan(price, months string) (model.Goal, error)
}

// Menu reads choices from in and writes prompts and results to out.
type Menu struct {
	sess Session
	cats *categories.Service
	num  *report.Formatter
	in   *bufio.Scanner
	out  io.Writer

	title *color.Color
	fail  *color.Color
}

// New returns a Menu. cats supplies the category names shown when adding a row.
func New(sess Session, cats *categories.Service, f *report.Formatter, in io.Reader, out io.Writer) *Menu {
	if cats == nil {
		cats = categories.NewService()
	}
	return &Menu{
		sess:  sess,
		cats:  cats,
		num:   f,
		in:    bufio.NewScanner(in),
		out:   out,
		title: color.New(color.Bold),
		fail:  color.New(color.FgRed),
	}
}

// Run loops until the user picks exit or input ends. Errors from a single
// option are printed and the loop continues; only write failures are returned.
func (m *Menu) Run() error {
	for {
		m.title.Fprintln(m.out, "\n===== FINANCE MANAGER MENU =====")
		fmt.Fprintln(m.out, "1. Print CSV Report")
		fmt.Fprintln(m.out, "2. Add New row to CSV")
		fmt.Fprintln(m.out, "3. Savings Goal Calculator")
		fmt.Fprintln(m.out, "4. Exit")

		choice, ok := m.prompt("\nChoose an option (1-4): ")
		if !ok {
			fmt.Fprintln(m.out, "\nGoodbye!")
			return m.in.Err()
		}

		var err error
		switch choice {
		case optReport:
			err = report.WriteTable(m.out, m.sess.Report(), m.sess.Totals(), m.num)
		case optAdd:
			err = m.add()
		case optGoal:
			err = m.goal()
		case optExit:
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option. Please try again.")
		}
		if err != nil {
			m.fail.Fprintf(m.out, "Error: %v\n", err)
		}
	}
}

func (m *Menu) add() error {
	fmt.Fprintln(m.out, "\n--- Write the new values you want to add ---")
	for _, c := range m.cats.All() {
		fmt.Fprintf(m.out, "  %-10s %s\n", c.Name, c.Description)
	}
	category, ok := m.prompt(fmt.Sprintf("Category (%s): ", m.cats.Names()))
	if !ok {
		return io.ErrUnexpectedEOF
	}
	amount, ok := m.prompt("Amount: ")
	if !ok {
		return io.ErrUnexpectedEOF
	}
	description, _ := m.prompt("Description: ")

	rec, err := m.sess.Add(category, amount, description)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Record added successfully!")
	if !m.cats.CountsTowardSavings(rec.Category) {
		fmt.Fprintf(m.out, "Note: %s is not counted in expenses or savings.\n", rec.Category)
	}
	return nil
}

func (m *Menu) goal() error {
	fmt.Fprintln(m.out, "\n--- Savings Goal Calculator ---")
	price, ok := m.prompt("How much does the item cost? ")
	if !ok {
		return io.ErrUnexpectedEOF
	}
	months, ok := m.prompt("In how many months do you want to buy it? ")
	if !ok {
		return io.ErrUnexpectedEOF
	}

	goal, err := m.sess.Plan(price, months)
	if err != nil {
		return err
	}
	return report.WriteGoal(m.out, goal, m.num)
}

// prompt writes p and reads one line. It returns false when input has ended.
func (m *Menu) prompt(p string) (string, bool) {
	fmt.Fprint(m.out, p)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}
