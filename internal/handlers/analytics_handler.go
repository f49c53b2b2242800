package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"spendwise/internal/analytics"
	"spendwise/internal/charts"
	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/services"
)

// AnalyticsHandler serves aggregates and charts.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
	renderer         *charts.Renderer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer, renderer *charts.Renderer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, renderer: renderer}
}

// CategoryBreakdownResponse lists category totals of one transaction type
type CategoryBreakdownResponse struct {
	Type       models.TransactionType    `json:"type"`
	Total      decimal.Decimal           `json:"total" swaggertype:"number"`
	Categories []analytics.CategoryShare `json:"categories"`
}

// GetCashInHand returns the current month's income, expenses and their difference
// @Summary     Cash in hand for the current month
// @Tags        analytics
// @Produce     json
// @Success     200 {object} analytics.CashInHand
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/cash-in-hand [get]
func (h *AnalyticsHandler) GetCashInHand(c *gin.Context) {
	cash, err := h.analyticsService.MonthlyCashInHand(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, cash)
}

type seriesURI struct {
	Period string `uri:"period" binding:"required,series_period"`
}

type breakdownQuery struct {
	Type string `form:"type" binding:"omitempty,transaction_type"`
	Top  int    `form:"top" binding:"min=0,max=20"`
}

func periodParam(c *gin.Context) (analytics.Period, error) {
	var uri seriesURI
	if err := c.ShouldBindUri(&uri); err != nil {
		return "", bindingError(err)
	}
	return analytics.Period(uri.Period), nil
}

// GetSeries returns a zero-filled expense series
// @Summary     Expense series
// @Description weekly: last 7 days; monthly: 7-day windows of the current month; yearly: months of the current year
// @Tags        analytics
// @Produce     json
// @Param       period path string true "weekly, monthly or yearly"
// @Success     200 {object} services.SeriesResult
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/series/{period} [get]
func (h *AnalyticsHandler) GetSeries(c *gin.Context) {
	period, err := periodParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	result, err := h.analyticsService.Series(c.Request.Context(), period)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSeriesChart renders an expense series as PNG
// @Summary     Expense series chart
// @Tags        analytics
// @Produce     png
// @Param       period path string true "weekly, monthly or yearly"
// @Success     200 {file} binary
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/series/{period}/chart.png [get]
func (h *AnalyticsHandler) GetSeriesChart(c *gin.Context) {
	period, err := periodParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	result, err := h.analyticsService.Series(c.Request.Context(), period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	title := fmt.Sprintf("Expenses (%s) - total %s%s", period, h.renderer.CurrencySymbol, result.Total.StringFixed(2))
	png, err := h.renderer.RenderSeries(title, period, result.Buckets)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func parseBreakdownQuery(c *gin.Context) (models.TransactionType, int, error) {
	var q breakdownQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return "", 0, bindingError(err)
	}
	if q.Type == "" {
		return models.TransactionTypeExpense, q.Top, nil
	}
	return models.TransactionType(q.Type), q.Top, nil
}

// GetCategoryBreakdown returns category totals, largest first
// @Summary     Category breakdown
// @Tags        analytics
// @Produce     json
// @Param       type query string false "expense (default) or income"
// @Param       top  query int    false "Limit to the N largest categories (0 = all)"
// @Success     200 {object} CategoryBreakdownResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/categories [get]
func (h *AnalyticsHandler) GetCategoryBreakdown(c *gin.Context) {
	t, top, err := parseBreakdownQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown, err := h.analyticsService.CategoryBreakdown(c.Request.Context(), t)
	if err != nil {
		respondWithError(c, err)
		return
	}

	total := decimal.Zero
	for _, ct := range breakdown {
		total = total.Add(ct.Amount)
	}

	c.JSON(http.StatusOK, CategoryBreakdownResponse{
		Type:       t,
		Total:      total,
		Categories: analytics.CategoryShares(breakdown, t, top),
	})
}

// GetCategoryChart renders the category breakdown as a PNG pie
// @Summary     Category breakdown chart
// @Tags        analytics
// @Produce     png
// @Param       type query string false "expense (default) or income"
// @Param       top  query int    false "Limit to the N largest categories (0 = all)"
// @Success     200 {file} binary
// @Success     204 "Nothing to chart"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/categories/chart.png [get]
func (h *AnalyticsHandler) GetCategoryChart(c *gin.Context) {
	t, top, err := parseBreakdownQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	shares, err := h.analyticsService.CategoryShares(c.Request.Context(), t, top)
	if err != nil {
		respondWithError(c, err)
		return
	}

	title := "Expenses by category"
	if t == models.TransactionTypeIncome {
		title = "Income by category"
	}
	png, err := h.renderer.RenderBreakdown(title, shares)
	if errors.Is(err, charts.ErrNoData) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
