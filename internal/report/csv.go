package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// SummaryHeader is the CSV header of the per-store summary.
const SummaryHeader = "store,total_sales"

const (
	summaryNumFields = 2
	colStore         = 0
	colTotal         = 1
)

// WriteStoreSummary writes the per-store summary CSV (including header).
func WriteStoreSummary(w io.Writer, totals []StoreTotal) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(SummaryHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, st := range totals {
		if err := cw.Write(MarshalStoreTotal(st)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadStoreSummary reads a per-store summary CSV.
func ReadStoreSummary(r io.Reader) ([]StoreTotal, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = summaryNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading summary CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var totals []StoreTotal
	for i, rec := range records[1:] {
		st, err := UnmarshalStoreTotal(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		totals = append(totals, st)
	}
	return totals, nil
}

// MarshalStoreTotal converts a StoreTotal to a CSV row.
func MarshalStoreTotal(st StoreTotal) []string {
	row := make([]string, summaryNumFields)
	row[colStore] = st.Store
	row[colTotal] = st.Total.String()
	return row
}

// UnmarshalStoreTotal converts a CSV row to a StoreTotal.
func UnmarshalStoreTotal(record []string) (StoreTotal, error) {
	if len(record) != summaryNumFields {
		return StoreTotal{}, fmt.Errorf("expected %d fields, got %d", summaryNumFields, len(record))
	}

	total, err := decimal.NewFromString(record[colTotal])
	if err != nil {
		return StoreTotal{}, fmt.Errorf("parsing total_sales %q: %w", record[colTotal], err)
	}

	return StoreTotal{
		Store: record[colStore],
		Total: total,
	}, nil
}
