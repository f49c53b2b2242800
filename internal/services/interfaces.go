package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/analytics"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	Type     *models.TransactionType
	Category string
	// Query matches description, category code or category label, case-insensitively.
	Query    string
	FromDate *time.Time
	ToDate   *time.Time
}

// TransactionTotals summarizes a filtered set of transactions.
type TransactionTotals struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// TransactionList is one page of merged transactions plus totals over every
// transaction that matched the filter.
type TransactionList struct {
	pagination.PageResponse[models.Transaction]
	Totals TransactionTotals `json:"totals"`
}

// TransactionServicer defines the contract for the transaction repository.
type TransactionServicer interface {
	List(ctx context.Context, t models.TransactionType) ([]models.Transaction, error)
	Add(ctx context.Context, t models.TransactionType, draft models.Draft) (*models.Transaction, error)
	Delete(ctx context.Context, t models.TransactionType, id string) (bool, error)

	ListExpenses(ctx context.Context) ([]models.Transaction, error)
	ListIncome(ctx context.Context) ([]models.Transaction, error)
	AddExpense(ctx context.Context, draft models.Draft) (*models.Transaction, error)
	AddIncome(ctx context.Context, draft models.Draft) (*models.Transaction, error)
	DeleteExpense(ctx context.Context, id string) error
	DeleteIncome(ctx context.Context, id string) error

	ListTransactions(ctx context.Context, filter TransactionFilter, page pagination.PageRequest) (*TransactionList, error)
	Snapshot(ctx context.Context) (analytics.Snapshot, error)
}

// SeriesResult is an expense series together with its total.
type SeriesResult struct {
	Period  analytics.Period   `json:"period"`
	Buckets []analytics.Bucket `json:"buckets"`
	Total   decimal.Decimal    `json:"total"`
}

// AnalyticsServicer computes aggregates over the live repository state at
// the current instant of its clock.
type AnalyticsServicer interface {
	Now() time.Time
	MonthlyCashInHand(ctx context.Context) (*analytics.CashInHand, error)
	WeeklySeries(ctx context.Context) ([]analytics.Bucket, error)
	MonthlySeries(ctx context.Context) ([]analytics.Bucket, error)
	YearlySeries(ctx context.Context) ([]analytics.Bucket, error)
	Series(ctx context.Context, period analytics.Period) (*SeriesResult, error)
	CategoryBreakdown(ctx context.Context, t models.TransactionType) ([]analytics.CategoryTotal, error)
	CategoryShares(ctx context.Context, t models.TransactionType, top int) ([]analytics.CategoryShare, error)
}

// CategoryServicer serves the fixed category reference data.
type CategoryServicer interface {
	GetCategories(t *models.TransactionType) ([]models.CategoryInfo, error)
	GetCategory(t models.TransactionType, code string) (*models.CategoryInfo, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, collection, recordID, ipAddress string, changes map[string]any)
}
