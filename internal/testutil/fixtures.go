package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
	"spendwise/internal/store"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Amount parses a decimal literal and returns a pointer suitable for a Draft.
func Amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// NewDraft builds a draft with the given amount, category and date.
func NewDraft(amount, category string, date time.Time) models.Draft {
	return models.Draft{
		Amount:      Amount(amount),
		Category:    category,
		Description: fmt.Sprintf("test %s %d", category, nextID()),
		Date:        &date,
	}
}

// NewRecord builds a stored record with a unique id.
func NewRecord(amount, category string, date time.Time) models.Record {
	return models.Record{
		ID:          fmt.Sprintf("rec-%d", nextID()),
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Description: "fixture",
		Date:        date,
	}
}

// NewTransaction builds a tagged transaction with a unique id.
func NewTransaction(txType models.TransactionType, amount, category string, date time.Time) models.Transaction {
	return NewRecord(amount, category, date).Tag(txType)
}

// SeedRecords writes records into collection c, replacing its contents.
func SeedRecords(t *testing.T, st store.RecordStore, c store.Collection, records ...models.Record) {
	t.Helper()

	if err := st.Write(context.Background(), c, records); err != nil {
		t.Fatalf("failed to seed %s: %v", c, err)
	}
}

// FixedClock returns a clock that always reports at.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// ReferenceNow is a fixed reference instant used across tests:
// Wednesday 2025-10-15 14:30 UTC.
var ReferenceNow = time.Date(2025, time.October, 15, 14, 30, 0, 0, time.UTC)
