package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
)

// CashInHand is the income/expense position of the current calendar month.
type CashInHand struct {
	Year       int             `json:"year"`
	Month      time.Month      `json:"month"`
	Income     decimal.Decimal `json:"income"`
	Expenses   decimal.Decimal `json:"expenses"`
	CashInHand decimal.Decimal `json:"cash_in_hand"`
}

// MonthlyCashInHand sums income and expenses dated in the calendar month of
// now. CashInHand is always exactly Income minus Expenses.
func MonthlyCashInHand(s Snapshot, now time.Time) CashInHand {
	loc := now.Location()
	income := sumInMonth(s.Income, now, loc)
	expenses := sumInMonth(s.Expenses, now, loc)
	return CashInHand{
		Year:       now.Year(),
		Month:      now.Month(),
		Income:     income,
		Expenses:   expenses,
		CashInHand: income.Sub(expenses),
	}
}

func sumInMonth(txs []models.Transaction, now time.Time, loc *time.Location) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if sameMonth(tx.Date.In(loc), now) {
			total = total.Add(tx.Amount)
		}
	}
	return total.Round(amountPlaces)
}

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// CategoryBreakdown groups the transactions of type t by category and sums
// each group. The result is ordered by amount descending; equal amounts keep
// the order in which their category first appears. Categories without any
// transaction are omitted.
func CategoryBreakdown(txs []models.Transaction, t models.TransactionType) []CategoryTotal {
	index := make(map[string]int)
	totals := []CategoryTotal{}
	for _, tx := range txs {
		if tx.Type != t {
			continue
		}
		i, ok := index[tx.Category]
		if !ok {
			i = len(totals)
			index[tx.Category] = i
			totals = append(totals, CategoryTotal{Category: tx.Category, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(tx.Amount)
	}

	for i := range totals {
		totals[i].Amount = totals[i].Amount.Round(amountPlaces)
	}
	sort.SliceStable(totals, func(a, b int) bool {
		return totals[a].Amount.GreaterThan(totals[b].Amount)
	})
	return totals
}

// CategoryShare decorates a category total with display metadata and its
// share of the overall total.
type CategoryShare struct {
	CategoryTotal
	Label      string  `json:"label"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
	Known      bool    `json:"known"`
	Percentage float64 `json:"percentage"`
}

// CategoryShares returns the first top entries of a breakdown (all of them
// when top <= 0) with their percentage of the whole breakdown, rounded to
// one decimal place.
func CategoryShares(breakdown []CategoryTotal, t models.TransactionType, top int) []CategoryShare {
	total := decimal.Zero
	for _, c := range breakdown {
		total = total.Add(c.Amount)
	}

	n := len(breakdown)
	if top > 0 && top < n {
		n = top
	}

	shares := make([]CategoryShare, 0, n)
	for _, c := range breakdown[:n] {
		info := models.LookupCategory(t, c.Category)
		var pct float64
		if total.IsPositive() {
			pct = c.Amount.Div(total).Mul(decimal.NewFromInt(100)).Round(1).InexactFloat64()
		}
		shares = append(shares, CategoryShare{
			CategoryTotal: c,
			Label:         info.Label,
			Icon:          info.Icon,
			Color:         info.Color,
			Known:         info.Known,
			Percentage:    pct,
		})
	}
	return shares
}
