package services

import (
	"context"
	"time"

	"spendwise/internal/analytics"
	"spendwise/internal/models"
)

// analyticsService feeds the live repository snapshot into the analytics
// engine at the current instant of its clock.
type analyticsService struct {
	transactions TransactionServicer
	clock        func() time.Time
}

// NewAnalyticsService creates a new AnalyticsServicer. A nil clock means time.Now.
func NewAnalyticsService(transactions TransactionServicer, clock func() time.Time) AnalyticsServicer {
	if clock == nil {
		clock = time.Now
	}
	return &analyticsService{transactions: transactions, clock: clock}
}

func (s *analyticsService) Now() time.Time {
	return s.clock()
}

// MonthlyCashInHand returns the income, expenses and difference of the current month.
func (s *analyticsService) MonthlyCashInHand(ctx context.Context) (*analytics.CashInHand, error) {
	snap, err := s.transactions.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	cash := analytics.MonthlyCashInHand(snap, s.clock())
	return &cash, nil
}

func (s *analyticsService) WeeklySeries(ctx context.Context) ([]analytics.Bucket, error) {
	return s.series(ctx, analytics.PeriodWeekly)
}

func (s *analyticsService) MonthlySeries(ctx context.Context) ([]analytics.Bucket, error) {
	return s.series(ctx, analytics.PeriodMonthly)
}

func (s *analyticsService) YearlySeries(ctx context.Context) ([]analytics.Bucket, error) {
	return s.series(ctx, analytics.PeriodYearly)
}

// Series returns the expense series for period with its total.
func (s *analyticsService) Series(ctx context.Context, period analytics.Period) (*SeriesResult, error) {
	buckets, err := s.series(ctx, period)
	if err != nil {
		return nil, err
	}
	return &SeriesResult{
		Period:  period,
		Buckets: buckets,
		Total:   analytics.SeriesTotal(buckets),
	}, nil
}

func (s *analyticsService) series(ctx context.Context, period analytics.Period) ([]analytics.Bucket, error) {
	if _, err := analytics.ParsePeriod(string(period)); err != nil {
		return nil, err
	}
	expenses, err := s.transactions.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.Series(period, expenses, s.clock())
}

// CategoryBreakdown returns per-category totals of type t, largest first.
func (s *analyticsService) CategoryBreakdown(ctx context.Context, t models.TransactionType) ([]analytics.CategoryTotal, error) {
	txs, err := s.transactions.List(ctx, t)
	if err != nil {
		return nil, err
	}
	return analytics.CategoryBreakdown(txs, t), nil
}

// CategoryShares returns the top categories of type t with display metadata
// and their share of the total.
func (s *analyticsService) CategoryShares(ctx context.Context, t models.TransactionType, top int) ([]analytics.CategoryShare, error) {
	breakdown, err := s.CategoryBreakdown(ctx, t)
	if err != nil {
		return nil, err
	}
	return analytics.CategoryShares(breakdown, t, top), nil
}
