package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
	"spendwise/internal/testutil"
)

var now = testutil.ReferenceNow

func expense(amount, category string, date time.Time) models.Transaction {
	return testutil.NewTransaction(models.TransactionTypeExpense, amount, category, date)
}

func income(amount, category string, date time.Time) models.Transaction {
	return testutil.NewTransaction(models.TransactionTypeIncome, amount, category, date)
}

func daysAgo(n int) time.Time {
	return now.AddDate(0, 0, -n)
}

func assertLabels(t *testing.T, buckets []Bucket, want ...string) {
	t.Helper()
	if len(buckets) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(buckets))
	}
	for i, w := range want {
		if buckets[i].Label != w {
			t.Errorf("bucket %d: expected label %q, got %q", i, w, buckets[i].Label)
		}
	}
}

func assertAmounts(t *testing.T, buckets []Bucket, want ...string) {
	t.Helper()
	if len(buckets) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(buckets))
	}
	for i, w := range want {
		if !buckets[i].Amount.Equal(decimal.RequireFromString(w)) {
			t.Errorf("bucket %d (%s): expected %s, got %s", i, buckets[i].Label, w, buckets[i].Amount)
		}
	}
}

func TestScenarioSingleExpenseAndIncome(t *testing.T) {
	snap := Snapshot{
		Expenses: []models.Transaction{expense("50", "food", daysAgo(3))},
		Income:   []models.Transaction{income("1000", "salary", now.AddDate(0, 0, -10))},
	}

	cash := MonthlyCashInHand(snap, now)
	testutil.AssertAmount(t, cash.Income, "1000")
	testutil.AssertAmount(t, cash.Expenses, "50")
	testutil.AssertAmount(t, cash.CashInHand, "950")

	weekly := WeeklySeries(snap.Expenses, now)
	assertLabels(t, weekly, "Oct 9", "Oct 10", "Oct 11", "Oct 12", "Oct 13", "Oct 14", "Oct 15")
	assertAmounts(t, weekly, "0", "0", "0", "50", "0", "0", "0")

	breakdown := CategoryBreakdown(snap.All(), models.TransactionTypeExpense)
	if len(breakdown) != 1 || breakdown[0].Category != "food" {
		t.Fatalf("expected [food], got %+v", breakdown)
	}
	testutil.AssertAmount(t, breakdown[0].Amount, "50")
}

func TestScenarioEmptySnapshot(t *testing.T) {
	var snap Snapshot

	cash := MonthlyCashInHand(snap, now)
	testutil.AssertAmount(t, cash.Income, "0")
	testutil.AssertAmount(t, cash.Expenses, "0")
	testutil.AssertAmount(t, cash.CashInHand, "0")

	breakdown := CategoryBreakdown(snap.All(), models.TransactionTypeExpense)
	if breakdown == nil || len(breakdown) != 0 {
		t.Errorf("expected empty non-nil breakdown, got %#v", breakdown)
	}

	assertAmounts(t, WeeklySeries(nil, now), "0", "0", "0", "0", "0", "0", "0")
	assertAmounts(t, MonthlySeries(nil, now), "0", "0", "0", "0", "0")
	if got := YearlySeries(nil, now); len(got) != 12 || !SeriesTotal(got).IsZero() {
		t.Errorf("expected 12 zero buckets, got %+v", got)
	}
}

func TestMonthlyCashInHand(t *testing.T) {
	t.Run("only_current_month_counts", func(t *testing.T) {
		snap := Snapshot{
			Expenses: []models.Transaction{
				expense("20", "food", now),
				expense("30", "food", time.Date(2025, 9, 30, 23, 0, 0, 0, time.UTC)),
				expense("40", "food", time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC)),
			},
			Income: []models.Transaction{
				income("100", "salary", time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)),
				income("500", "salary", time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)),
			},
		}

		cash := MonthlyCashInHand(snap, now)
		testutil.AssertAmount(t, cash.Income, "100")
		testutil.AssertAmount(t, cash.Expenses, "20")
		testutil.AssertAmount(t, cash.CashInHand, "80")
		if cash.Year != 2025 || cash.Month != time.October {
			t.Errorf("expected October 2025, got %s %d", cash.Month, cash.Year)
		}
	})

	t.Run("month_taken_in_reference_location", func(t *testing.T) {
		ist := time.FixedZone("IST", 5*3600+1800)
		lateSeptemberUTC := time.Date(2025, 9, 30, 23, 0, 0, 0, time.UTC)
		snap := Snapshot{Expenses: []models.Transaction{expense("30", "food", lateSeptemberUTC)}}

		testutil.AssertAmount(t, MonthlyCashInHand(snap, now).Expenses, "0")
		testutil.AssertAmount(t, MonthlyCashInHand(snap, now.In(ist)).Expenses, "30")
	})

	t.Run("negative_cash_in_hand", func(t *testing.T) {
		snap := Snapshot{
			Expenses: []models.Transaction{expense("120.75", "bills", now)},
			Income:   []models.Transaction{income("100.25", "freelance", now)},
		}
		testutil.AssertAmount(t, MonthlyCashInHand(snap, now).CashInHand, "-20.5")
	})

	t.Run("cash_in_hand_is_income_minus_expenses", func(t *testing.T) {
		snap := Snapshot{
			Expenses: []models.Transaction{
				expense("0.333", "food", now),
				expense("0.333", "food", now),
				expense("19.999", "bills", daysAgo(1)),
			},
			Income: []models.Transaction{
				income("10.005", "salary", now),
				income("0.001", "business", daysAgo(2)),
			},
		}
		cash := MonthlyCashInHand(snap, now)
		if !cash.CashInHand.Equal(cash.Income.Sub(cash.Expenses)) {
			t.Errorf("expected %s - %s, got %s", cash.Income, cash.Expenses, cash.CashInHand)
		}
	})
}

func TestWeeklySeries(t *testing.T) {
	t.Run("zero_fill_outside_window", func(t *testing.T) {
		expenses := []models.Transaction{
			expense("10", "food", daysAgo(7)),
			expense("10", "food", daysAgo(30)),
			expense("10", "food", now.AddDate(0, 0, 1)),
		}
		assertAmounts(t, WeeklySeries(expenses, now), "0", "0", "0", "0", "0", "0", "0")
	})

	t.Run("sums_and_rounds_per_day", func(t *testing.T) {
		expenses := []models.Transaction{
			expense("10.004", "food", daysAgo(6)),
			expense("5.003", "food", daysAgo(6).Add(time.Hour)),
			expense("1.5", "food", time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)),
			expense("2.5", "food", time.Date(2025, 10, 15, 23, 59, 0, 0, time.UTC)),
		}
		assertAmounts(t, WeeklySeries(expenses, now), "15.01", "0", "0", "0", "0", "0", "4")
	})

	t.Run("day_taken_in_reference_location", func(t *testing.T) {
		ist := time.FixedZone("IST", 5*3600+1800)
		// 2025-10-15 01:30 in IST.
		late := time.Date(2025, 10, 14, 20, 0, 0, 0, time.UTC)
		expenses := []models.Transaction{expense("7", "food", late)}

		assertAmounts(t, WeeklySeries(expenses, now), "0", "0", "0", "0", "0", "7", "0")
		assertAmounts(t, WeeklySeries(expenses, now.In(ist)), "0", "0", "0", "0", "0", "0", "7")
	})

	t.Run("labels_cross_month_boundary", func(t *testing.T) {
		ref := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
		assertLabels(t, WeeklySeries(nil, ref), "Feb 24", "Feb 25", "Feb 26", "Feb 27", "Feb 28", "Mar 1", "Mar 2")
	})
}

func TestMonthlySeries(t *testing.T) {
	t.Run("october_2025_starts_on_wednesday", func(t *testing.T) {
		expenses := []models.Transaction{
			expense("1", "food", time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)),
			expense("2", "food", time.Date(2025, 10, 7, 8, 0, 0, 0, time.UTC)),
			expense("3", "food", time.Date(2025, 10, 8, 8, 0, 0, 0, time.UTC)),
			expense("4", "food", time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC)),
			expense("5", "food", time.Date(2025, 10, 31, 8, 0, 0, 0, time.UTC)),
			expense("100", "food", time.Date(2025, 9, 30, 8, 0, 0, 0, time.UTC)),
			expense("100", "food", time.Date(2024, 10, 3, 8, 0, 0, 0, time.UTC)),
		}
		got := MonthlySeries(expenses, now)
		assertLabels(t, got, "Week 1", "Week 2", "Week 3", "Week 4", "Week 5")
		assertAmounts(t, got, "3", "3", "4", "0", "5")
	})

	t.Run("february_starting_on_sunday_has_four_windows", func(t *testing.T) {
		ref := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
		expenses := []models.Transaction{expense("9", "bills", time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC))}
		got := MonthlySeries(expenses, ref)
		assertLabels(t, got, "Week 1", "Week 2", "Week 3", "Week 4")
		assertAmounts(t, got, "0", "0", "0", "9")
	})

	t.Run("late_weekday_start_adds_trailing_window", func(t *testing.T) {
		// August 2025 starts on a Friday.
		ref := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
		expenses := []models.Transaction{expense("6", "food", time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC))}
		assertAmounts(t, MonthlySeries(expenses, ref), "0", "0", "0", "0", "6", "0")
	})
}

func TestYearlySeries(t *testing.T) {
	expenses := []models.Transaction{
		expense("10", "food", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		expense("20", "food", time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC)),
		expense("30.125", "bills", time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC)),
		expense("40", "food", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)),
		expense("99", "food", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)),
		expense("99", "food", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	got := YearlySeries(expenses, now)
	assertLabels(t, got, "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec")
	assertAmounts(t, got, "30", "0", "0", "0", "0", "0", "0", "0", "0", "30.13", "0", "40")
	testutil.AssertAmount(t, SeriesTotal(got), "100.13")
}

func TestCategoryBreakdown(t *testing.T) {
	t.Run("sorted_descending_with_stable_ties", func(t *testing.T) {
		txs := []models.Transaction{
			expense("10", "bills", now),
			expense("5", "food", now),
			expense("5", "food", daysAgo(40)),
			expense("25", "transport", now),
			expense("3", "health", now),
			income("1000", "salary", now),
		}
		got := CategoryBreakdown(txs, models.TransactionTypeExpense)

		want := []struct{ category, amount string }{
			{"transport", "25"},
			{"bills", "10"},
			{"food", "10"},
			{"health", "3"},
		}
		if len(got) != len(want) {
			t.Fatalf("expected %d categories, got %+v", len(want), got)
		}
		for i, w := range want {
			if got[i].Category != w.category {
				t.Errorf("position %d: expected %s, got %s", i, w.category, got[i].Category)
			}
			testutil.AssertAmount(t, got[i].Amount, w.amount)
		}
	})

	t.Run("filters_by_type", func(t *testing.T) {
		txs := []models.Transaction{
			expense("10", "food", now),
			income("1000", "salary", now),
			income("200", "freelance", now),
		}
		got := CategoryBreakdown(txs, models.TransactionTypeIncome)
		if len(got) != 2 || got[0].Category != "salary" || got[1].Category != "freelance" {
			t.Errorf("unexpected breakdown %+v", got)
		}
	})

	t.Run("sums_to_total", func(t *testing.T) {
		txs := []models.Transaction{
			expense("0.333", "food", now),
			expense("0.333", "food", now),
			expense("12.499", "bills", now),
			expense("7.005", "transport", now),
			expense("0", "other", now),
		}
		total := decimal.Zero
		for _, tx := range txs {
			total = total.Add(tx.Amount)
		}

		sum := decimal.Zero
		for _, c := range CategoryBreakdown(txs, models.TransactionTypeExpense) {
			sum = sum.Add(c.Amount)
		}
		if sum.Sub(total).Abs().GreaterThan(decimal.RequireFromString("0.01")) {
			t.Errorf("breakdown sums to %s, expected %s within 0.01", sum, total)
		}
	})
}

func TestCategoryShares(t *testing.T) {
	breakdown := []CategoryTotal{
		{Category: "food", Amount: decimal.RequireFromString("60")},
		{Category: "bills", Amount: decimal.RequireFromString("30")},
		{Category: "gifts", Amount: decimal.RequireFromString("10")},
	}

	t.Run("all_entries", func(t *testing.T) {
		got := CategoryShares(breakdown, models.TransactionTypeExpense, 0)
		if len(got) != 3 {
			t.Fatalf("expected 3 shares, got %d", len(got))
		}
		if got[0].Label != "Food" || got[0].Percentage != 60 || !got[0].Known {
			t.Errorf("unexpected food share %+v", got[0])
		}
		if got[2].Label != "gifts" || got[2].Known || got[2].Color != "#64748b" {
			t.Errorf("expected unknown category fallback, got %+v", got[2])
		}
	})

	t.Run("top_limits_entries_not_total", func(t *testing.T) {
		got := CategoryShares(breakdown, models.TransactionTypeExpense, 2)
		if len(got) != 2 {
			t.Fatalf("expected 2 shares, got %d", len(got))
		}
		if got[1].Category != "bills" || got[1].Percentage != 30 {
			t.Errorf("unexpected bills share %+v", got[1])
		}
	})

	t.Run("zero_total_has_zero_percentages", func(t *testing.T) {
		zero := []CategoryTotal{{Category: "food", Amount: decimal.Zero}}
		got := CategoryShares(zero, models.TransactionTypeExpense, 5)
		if len(got) != 1 || got[0].Percentage != 0 {
			t.Errorf("unexpected shares %+v", got)
		}
	})
}

func TestParsePeriod(t *testing.T) {
	for _, name := range []string{"weekly", "monthly", "yearly"} {
		p, err := ParsePeriod(name)
		testutil.AssertNoError(t, err)

		buckets, err := Series(p, nil, now)
		testutil.AssertNoError(t, err)
		if len(buckets) == 0 {
			t.Errorf("%s: expected buckets", name)
		}
	}

	_, err := ParsePeriod("daily")
	testutil.AssertAppError(t, err, "INVALID_PERIOD")

	_, err = Series("hourly", nil, now)
	testutil.AssertAppError(t, err, "INVALID_PERIOD")
}
