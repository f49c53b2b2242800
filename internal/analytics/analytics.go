// Package analytics turns a flat transaction log into period totals,
// time-bucketed expense series and category rankings.
//
// Every function is pure: it reads the transactions it is given and a
// reference instant, and never touches storage or the wall clock. Calendar
// components (day, month, year) are taken in the location of the reference
// instant.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// Amounts in every derived structure are rounded to this many places.
const amountPlaces = 2

// Snapshot is the full transaction log at one point in time.
type Snapshot struct {
	Expenses []models.Transaction
	Income   []models.Transaction
}

// All returns expenses followed by income.
func (s Snapshot) All() []models.Transaction {
	all := make([]models.Transaction, 0, len(s.Expenses)+len(s.Income))
	all = append(all, s.Expenses...)
	return append(all, s.Income...)
}

// Bucket is one labeled slot of a time series.
type Bucket struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Period selects the granularity of an expense series.
type Period string

const (
	// PeriodWeekly buckets the last seven calendar days, one per day.
	PeriodWeekly Period = "weekly"
	// PeriodMonthly buckets the current month into seven-day windows.
	PeriodMonthly Period = "monthly"
	// PeriodYearly buckets the current year by calendar month.
	PeriodYearly Period = "yearly"
)

// ParsePeriod validates a period name.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return p, nil
	}
	return "", apperrors.WithMessage(apperrors.ErrInvalidPeriod, "period must be one of weekly, monthly, yearly")
}

// Series dispatches to the series function for p.
func Series(p Period, expenses []models.Transaction, now time.Time) ([]Bucket, error) {
	switch p {
	case PeriodWeekly:
		return WeeklySeries(expenses, now), nil
	case PeriodMonthly:
		return MonthlySeries(expenses, now), nil
	case PeriodYearly:
		return YearlySeries(expenses, now), nil
	}
	return nil, apperrors.ErrInvalidPeriod
}

// SeriesTotal sums the bucket amounts of a series.
func SeriesTotal(buckets []Bucket) decimal.Decimal {
	total := decimal.Zero
	for _, b := range buckets {
		total = total.Add(b.Amount)
	}
	return total.Round(amountPlaces)
}

type civilDay struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time) civilDay {
	y, m, d := t.Date()
	return civilDay{y, m, d}
}

func sameMonth(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}

func roundBuckets(buckets []Bucket) []Bucket {
	for i := range buckets {
		buckets[i].Amount = buckets[i].Amount.Round(amountPlaces)
	}
	return buckets
}
