package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord represents one row of a daily sales CSV.
type SalesRecord struct {
	Date  time.Time
	Store string
	Sales decimal.Decimal
}

// Month returns the calendar month key, e.g. "2024-01".
func (r SalesRecord) Month() string {
	return r.Date.Format("2006-01")
}
