package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSalesRecordMonth(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "2024-01"},
		{time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC), "2024-12"},
		{time.Date(999, 3, 15, 0, 0, 0, 0, time.UTC), "0999-03"},
	}
	for _, tt := range tests {
		rec := SalesRecord{Date: tt.date}
		assert.Equal(t, tt.want, rec.Month(), "Month(%s)", tt.date)
	}
}
