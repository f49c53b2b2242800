package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"spendwise/internal/analytics"
	"spendwise/internal/logger"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/services"
	"spendwise/internal/validator"
)

// --- mock transaction service ---

type mockTransactionService struct {
	listFn             func(ctx context.Context, t models.TransactionType) ([]models.Transaction, error)
	addFn              func(ctx context.Context, t models.TransactionType, draft models.Draft) (*models.Transaction, error)
	deleteFn           func(ctx context.Context, t models.TransactionType, id string) (bool, error)
	listTransactionsFn func(ctx context.Context, filter services.TransactionFilter, page pagination.PageRequest) (*services.TransactionList, error)
	snapshotFn         func(ctx context.Context) (analytics.Snapshot, error)
}

func (m *mockTransactionService) List(ctx context.Context, t models.TransactionType) ([]models.Transaction, error) {
	if m.listFn != nil {
		return m.listFn(ctx, t)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) Add(ctx context.Context, t models.TransactionType, draft models.Draft) (*models.Transaction, error) {
	if m.addFn != nil {
		return m.addFn(ctx, t, draft)
	}
	return &models.Transaction{Type: t}, nil
}

func (m *mockTransactionService) Delete(ctx context.Context, t models.TransactionType, id string) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, t, id)
	}
	return false, nil
}

func (m *mockTransactionService) ListExpenses(ctx context.Context) ([]models.Transaction, error) {
	return m.List(ctx, models.TransactionTypeExpense)
}

func (m *mockTransactionService) ListIncome(ctx context.Context) ([]models.Transaction, error) {
	return m.List(ctx, models.TransactionTypeIncome)
}

func (m *mockTransactionService) AddExpense(ctx context.Context, draft models.Draft) (*models.Transaction, error) {
	return m.Add(ctx, models.TransactionTypeExpense, draft)
}

func (m *mockTransactionService) AddIncome(ctx context.Context, draft models.Draft) (*models.Transaction, error) {
	return m.Add(ctx, models.TransactionTypeIncome, draft)
}

func (m *mockTransactionService) DeleteExpense(ctx context.Context, id string) error {
	_, err := m.Delete(ctx, models.TransactionTypeExpense, id)
	return err
}

func (m *mockTransactionService) DeleteIncome(ctx context.Context, id string) error {
	_, err := m.Delete(ctx, models.TransactionTypeIncome, id)
	return err
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, filter services.TransactionFilter, page pagination.PageRequest) (*services.TransactionList, error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(ctx, filter, page)
	}
	return &services.TransactionList{PageResponse: pagination.Paginate([]models.Transaction{}, page)}, nil
}

func (m *mockTransactionService) Snapshot(ctx context.Context) (analytics.Snapshot, error) {
	if m.snapshotFn != nil {
		return m.snapshotFn(ctx)
	}
	return analytics.Snapshot{}, nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

// --- mock analytics service ---

type mockAnalyticsService struct {
	cashFn      func(ctx context.Context) (*analytics.CashInHand, error)
	seriesFn    func(ctx context.Context, period analytics.Period) (*services.SeriesResult, error)
	breakdownFn func(ctx context.Context, t models.TransactionType) ([]analytics.CategoryTotal, error)
	sharesFn    func(ctx context.Context, t models.TransactionType, top int) ([]analytics.CategoryShare, error)
}

func (m *mockAnalyticsService) Now() time.Time { return time.Time{} }

func (m *mockAnalyticsService) MonthlyCashInHand(ctx context.Context) (*analytics.CashInHand, error) {
	if m.cashFn != nil {
		return m.cashFn(ctx)
	}
	return &analytics.CashInHand{}, nil
}

func (m *mockAnalyticsService) WeeklySeries(ctx context.Context) ([]analytics.Bucket, error) {
	res, err := m.Series(ctx, analytics.PeriodWeekly)
	if err != nil {
		return nil, err
	}
	return res.Buckets, nil
}

func (m *mockAnalyticsService) MonthlySeries(ctx context.Context) ([]analytics.Bucket, error) {
	res, err := m.Series(ctx, analytics.PeriodMonthly)
	if err != nil {
		return nil, err
	}
	return res.Buckets, nil
}

func (m *mockAnalyticsService) YearlySeries(ctx context.Context) ([]analytics.Bucket, error) {
	res, err := m.Series(ctx, analytics.PeriodYearly)
	if err != nil {
		return nil, err
	}
	return res.Buckets, nil
}

func (m *mockAnalyticsService) Series(ctx context.Context, period analytics.Period) (*services.SeriesResult, error) {
	if m.seriesFn != nil {
		return m.seriesFn(ctx, period)
	}
	return &services.SeriesResult{Period: period, Buckets: []analytics.Bucket{}}, nil
}

func (m *mockAnalyticsService) CategoryBreakdown(ctx context.Context, t models.TransactionType) ([]analytics.CategoryTotal, error) {
	if m.breakdownFn != nil {
		return m.breakdownFn(ctx, t)
	}
	return []analytics.CategoryTotal{}, nil
}

func (m *mockAnalyticsService) CategoryShares(ctx context.Context, t models.TransactionType, top int) ([]analytics.CategoryShare, error) {
	if m.sharesFn != nil {
		return m.sharesFn(ctx, t, top)
	}
	return []analytics.CategoryShare{}, nil
}

var _ services.AnalyticsServicer = (*mockAnalyticsService)(nil)

// --- mock audit service ---

type auditEntry struct {
	action, collection, recordID string
}

type mockAuditService struct {
	entries []auditEntry
}

func (m *mockAuditService) Log(action, collection, recordID, _ string, _ map[string]any) {
	m.entries = append(m.entries, auditEntry{action, collection, recordID})
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
	decimal.MarshalJSONWithoutQuotes = true
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func assertErrorField(t *testing.T, result map[string]interface{}, field string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["field"] != field {
		t.Errorf("expected error field %q, got %v", field, errObj["field"])
	}
}
