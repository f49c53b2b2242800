package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
)

const weeklyDays = 7

// WeeklySeries returns seven daily buckets ending on the calendar day of
// now, oldest first, labeled like "Oct 9". An expense lands in the bucket
// of its local calendar day; expenses outside the window are ignored.
func WeeklySeries(expenses []models.Transaction, now time.Time) []Bucket {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	buckets := make([]Bucket, weeklyDays)
	index := make(map[civilDay]int, weeklyDays)
	for i := 0; i < weeklyDays; i++ {
		day := today.AddDate(0, 0, i-(weeklyDays-1))
		buckets[i] = Bucket{Label: day.Format("Jan 2"), Amount: decimal.Zero}
		index[dayOf(day)] = i
	}

	for _, tx := range expenses {
		if i, ok := index[dayOf(tx.Date.In(loc))]; ok {
			buckets[i].Amount = buckets[i].Amount.Add(tx.Amount)
		}
	}
	return roundBuckets(buckets)
}

// MonthlySeries partitions the month of now into seven-day windows labeled
// "Week 1", "Week 2", ... Windows start on the 1st and every seventh day
// after it. The number of windows is ceil((daysInMonth + weekday of the
// 1st) / 7) with Sunday as 0, so a trailing window may be empty or extend
// past the end of the month. Only expenses dated in the month are counted.
func MonthlySeries(expenses []models.Transaction, now time.Time) []Bucket {
	loc := now.Location()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := int(first.Weekday())
	n := (daysInMonth + offset + weeklyDays - 1) / weeklyDays

	buckets := make([]Bucket, n)
	for i := range buckets {
		buckets[i] = Bucket{Label: fmt.Sprintf("Week %d", i+1), Amount: decimal.Zero}
	}

	for _, tx := range expenses {
		d := tx.Date.In(loc)
		if !sameMonth(d, now) {
			continue
		}
		if i := (d.Day() - 1) / weeklyDays; i < n {
			buckets[i].Amount = buckets[i].Amount.Add(tx.Amount)
		}
	}
	return roundBuckets(buckets)
}

// YearlySeries returns twelve buckets, Jan through Dec of the year of now.
func YearlySeries(expenses []models.Transaction, now time.Time) []Bucket {
	loc := now.Location()

	buckets := make([]Bucket, 12)
	for i := range buckets {
		buckets[i] = Bucket{Label: time.Month(i + 1).String()[:3], Amount: decimal.Zero}
	}

	for _, tx := range expenses {
		d := tx.Date.In(loc)
		if d.Year() != now.Year() {
			continue
		}
		i := int(d.Month()) - 1
		buckets[i].Amount = buckets[i].Amount.Add(tx.Amount)
	}
	return roundBuckets(buckets)
}
