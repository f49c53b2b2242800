package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/services"
	"spendwise/internal/store"
)

// TransactionHandler handles expense and income requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
	location           *time.Location
}

// NewTransactionHandler creates a new TransactionHandler. Bare dates in
// requests are interpreted in loc.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer, loc *time.Location) *TransactionHandler {
	if loc == nil {
		loc = time.Local
	}
	return &TransactionHandler{transactionService: transactionService, auditService: auditService, location: loc}
}

// CreateTransactionRequest represents the request payload for creating an expense or income record
type CreateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"50.25"`
	Category    string           `json:"category" binding:"required" example:"food"`
	Description string           `json:"description" binding:"max=500" example:"Lunch"`
	Date        *string          `json:"date" example:"2025-10-12T10:00:00Z"`
}

// UnmarshalJSON decodes the payload, rejecting an amount that is present but
// not a number or numeric string.
func (r *CreateTransactionRequest) UnmarshalJSON(data []byte) error {
	type plain CreateTransactionRequest
	var w struct {
		plain
		Amount json.RawMessage `json:"amount"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*r = CreateTransactionRequest(w.plain)
	r.Amount = nil

	raw := bytes.TrimSpace(w.Amount)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(raw); err != nil {
		return apperrors.Invalid("amount", "amount must be a number")
	}
	r.Amount = &amount
	return nil
}

// TransactionResponse wraps a single transaction
type TransactionResponse struct {
	Transaction models.Transaction `json:"transaction"`
}

// TransactionListResponse wraps the transactions of one collection
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

func (h *TransactionHandler) list(c *gin.Context, t models.TransactionType) {
	txs, err := h.transactionService.List(c.Request.Context(), t)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, TransactionListResponse{Transactions: txs})
}

func (h *TransactionHandler) create(c *gin.Context, t models.TransactionType) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	draft := models.Draft{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Date != nil && *req.Date != "" {
		date, err := parseRequestDate(*req.Date, h.location)
		if err != nil {
			respondWithError(c, apperrors.Invalid("date", "date must be RFC3339 or YYYY-MM-DD"))
			return
		}
		draft.Date = &date
	}

	tx, err := h.transactionService.Add(c.Request.Context(), t, draft)
	if err != nil {
		respondWithError(c, err)
		return
	}

	collection, _ := store.CollectionFor(t)
	h.auditService.Log("CREATE_"+strings.ToUpper(string(t)), string(collection), tx.ID, c.ClientIP(),
		map[string]any{"amount": tx.Amount.String(), "category": tx.Category})

	c.JSON(http.StatusCreated, TransactionResponse{Transaction: *tx})
}

func (h *TransactionHandler) delete(c *gin.Context, t models.TransactionType) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondWithError(c, apperrors.Invalid("id", "id is required"))
		return
	}

	removed, err := h.transactionService.Delete(c.Request.Context(), t, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if removed {
		collection, _ := store.CollectionFor(t)
		h.auditService.Log("DELETE_"+strings.ToUpper(string(t)), string(collection), id, c.ClientIP(), nil)
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Transaction deleted successfully"})
}

// ListExpenses returns every expense in insertion order
// @Summary     List expenses
// @Tags        expenses
// @Produce     json
// @Success     200 {object} TransactionListResponse
// @Failure     500 {object} ErrorResponse "Server error or corrupt store"
// @Router      /expenses [get]
func (h *TransactionHandler) ListExpenses(c *gin.Context) {
	h.list(c, models.TransactionTypeExpense)
}

// CreateExpense records a new expense
// @Summary     Create an expense
// @Description Amount must be >= 0 and category must be an expense category. Date defaults to now.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Expense details"
// @Success     201 {object} TransactionResponse "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *TransactionHandler) CreateExpense(c *gin.Context) {
	h.create(c, models.TransactionTypeExpense)
}

// DeleteExpense removes an expense; unknown ids succeed without change
// @Summary     Delete an expense
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} MessageResponse
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *TransactionHandler) DeleteExpense(c *gin.Context) {
	h.delete(c, models.TransactionTypeExpense)
}

// ListIncome returns every income record in insertion order
// @Summary     List income
// @Tags        income
// @Produce     json
// @Success     200 {object} TransactionListResponse
// @Failure     500 {object} ErrorResponse "Server error or corrupt store"
// @Router      /income [get]
func (h *TransactionHandler) ListIncome(c *gin.Context) {
	h.list(c, models.TransactionTypeIncome)
}

// CreateIncome records a new income entry
// @Summary     Create an income record
// @Description Amount must be >= 0 and category must be an income category. Date defaults to now.
// @Tags        income
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Income details"
// @Success     201 {object} TransactionResponse "Income created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income [post]
func (h *TransactionHandler) CreateIncome(c *gin.Context) {
	h.create(c, models.TransactionTypeIncome)
}

// DeleteIncome removes an income record; unknown ids succeed without change
// @Summary     Delete an income record
// @Tags        income
// @Produce     json
// @Param       id path string true "Income ID"
// @Success     200 {object} MessageResponse
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/{id} [delete]
func (h *TransactionHandler) DeleteIncome(c *gin.Context) {
	h.delete(c, models.TransactionTypeIncome)
}

// ListTransactions handles the retrieval of expenses and income as one list
// @Summary     List all transactions
// @Description Merged expenses and income, newest first, with totals over the filtered set
// @Tags        transactions
// @Produce     json
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       type      query string false "Filter by transaction type (expense, income)"
// @Param       category  query string false "Filter by category code"
// @Param       q         query string false "Search description and category"
// @Param       from_date query string false "Filter by start date (RFC3339 or YYYY-MM-DD)"
// @Param       to_date   query string false "Filter by end date, inclusive (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} services.TransactionList "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := h.parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.ListTransactions(c.Request.Context(), filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *TransactionHandler) parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	txType, err := parseTypeQuery(c)
	if err != nil {
		return filter, err
	}
	filter.Type = txType
	filter.Category = c.Query("category")
	filter.Query = c.Query("q")

	if v := c.Query("from_date"); v != "" {
		t, err := parseRequestDate(v, h.location)
		if err != nil {
			return filter, apperrors.Invalid("from_date", "invalid from_date format, use RFC3339 or YYYY-MM-DD")
		}
		filter.FromDate = &t
	}

	if v := c.Query("to_date"); v != "" {
		t, err := parseRequestDate(v, h.location)
		if err != nil {
			return filter, apperrors.Invalid("to_date", "invalid to_date format, use RFC3339 or YYYY-MM-DD")
		}
		if len(v) == len(time.DateOnly) {
			// a bare date includes the whole day
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		filter.ToDate = &t
	}

	return filter, nil
}
