package model

import "github.com/shopspring/decimal"

// Category names a bucket of transactions.
type Category string

const (
	CategoryIncome   Category = "Income"
	CategoryFixed    Category = "Fixed"
	CategoryVariable Category = "Variable"
)

// Column names in the record file header. Matching is case-sensitive.
const (
	FieldCategory    = "Category"
	FieldAmount      = "Amount"
	FieldDescription = "Description"
)

// Record is one categorized transaction.
type Record struct {
	Category    Category
	Amount      decimal.Decimal // signed; income positive, expenses as entered
	Description string
}

// Row is a record as read from storage, before validation.
type Row struct {
	Line        int // 1-based line in the source file, 0 if not from a file
	Category    string
	Amount      string
	Description string
	Err         error // set when the line could not be decoded at all
}

// CategoryTotal is the running sum for one category.
type CategoryTotal struct {
	Category Category
	Amount   decimal.Decimal
}
