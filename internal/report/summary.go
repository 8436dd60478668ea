package report

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nightshift-tools/nightshift/internal/model"
)

// ErrNoRecords is returned when there is nothing to summarize.
var ErrNoRecords = errors.New("no sales records")

// StoreTotal is one row of the per-store summary.
type StoreTotal struct {
	Store string
	Total decimal.Decimal
}

// MonthTotal is the sum of sales for one calendar month.
type MonthTotal struct {
	Month string // "YYYY-MM"
	Total decimal.Decimal
}

// Summary holds the aggregate statistics of a sales dataset.
type Summary struct {
	Records       int
	Total         decimal.Decimal
	Average       decimal.Decimal // mean sales per row
	ByStore       []StoreTotal    // descending by total, ties by store name
	ByMonth       []MonthTotal    // ascending by month
	TopStore      string
	TopStoreSales decimal.Decimal
}

// Summarize aggregates records.
func Summarize(records []model.SalesRecord) (*Summary, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	total := decimal.Zero
	stores := make(map[string]decimal.Decimal)
	months := make(map[string]decimal.Decimal)
	for _, r := range records {
		total = total.Add(r.Sales)
		stores[r.Store] = stores[r.Store].Add(r.Sales)
		months[r.Month()] = months[r.Month()].Add(r.Sales)
	}

	byStore := make([]StoreTotal, 0, len(stores))
	for store, sum := range stores {
		byStore = append(byStore, StoreTotal{Store: store, Total: sum})
	}
	sort.Slice(byStore, func(i, j int) bool {
		if c := byStore[i].Total.Cmp(byStore[j].Total); c != 0 {
			return c > 0
		}
		return byStore[i].Store < byStore[j].Store
	})

	byMonth := make([]MonthTotal, 0, len(months))
	for month, sum := range months {
		byMonth = append(byMonth, MonthTotal{Month: month, Total: sum})
	}
	sort.Slice(byMonth, func(i, j int) bool { return byMonth[i].Month < byMonth[j].Month })

	return &Summary{
		Records:       len(records),
		Total:         total,
		Average:       total.Div(decimal.NewFromInt(int64(len(records)))),
		ByStore:       byStore,
		ByMonth:       byMonth,
		TopStore:      byStore[0].Store,
		TopStoreSales: byStore[0].Total,
	}, nil
}
