package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nightshift-tools/nightshift/internal/model"
)

// Required input columns.
const (
	ColDate  = "date"
	ColStore = "store"
	ColSales = "sales"
)

// dateLayouts are tried in order when parsing the date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
}

// MissingColumnError is returned when the header lacks a required column.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}

// ErrEmptyFile is returned for input without a header row.
var ErrEmptyFile = errors.New("sales CSV is empty")

type columns struct {
	date, store, sales int
}

// ReadSales reads a sales CSV. Columns are matched by header name, in any
// order. Extra columns are ignored.
func ReadSales(r io.Reader) ([]model.SalesRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("reading sales CSV header: %w", err)
	}

	cols, err := locateColumns(header)
	if err != nil {
		return nil, err
	}
	cr.FieldsPerRecord = len(header)

	var records []model.SalesRecord
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading sales CSV: %w", err)
		}
		sr, err := parseSalesRow(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		records = append(records, sr)
	}
	return records, nil
}

func locateColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}

	var cols columns
	for _, c := range []struct {
		name string
		dst  *int
	}{
		{ColDate, &cols.date},
		{ColStore, &cols.store},
		{ColSales, &cols.sales},
	} {
		i, ok := idx[c.name]
		if !ok {
			return columns{}, &MissingColumnError{Column: c.name}
		}
		*c.dst = i
	}
	return cols, nil
}

func parseSalesRow(rec []string, cols columns) (model.SalesRecord, error) {
	date, err := parseDate(strings.TrimSpace(rec[cols.date]))
	if err != nil {
		return model.SalesRecord{}, err
	}

	raw := strings.TrimSpace(rec[cols.sales])
	sales, err := decimal.NewFromString(raw)
	if err != nil {
		return model.SalesRecord{}, fmt.Errorf("parsing sales %q: %w", raw, err)
	}

	return model.SalesRecord{
		Date:  date,
		Store: strings.TrimSpace(rec[cols.store]),
		Sales: sales,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q: unrecognized format", s)
}
