package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendwise/internal/models"
	"spendwise/internal/services"
)

// CategoryHandler handles category-related requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryListResponse lists category reference data
type CategoryListResponse struct {
	Categories []models.CategoryInfo `json:"categories"`
}

// GetCategories returns the category vocabulary
// @Summary     List categories
// @Description Fixed expense and income categories with label, icon and color
// @Tags        categories
// @Produce     json
// @Param       type query string false "expense or income (both when omitted)"
// @Success     200 {object} CategoryListResponse
// @Failure     400 {object} ErrorResponse "Invalid type"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	t, err := parseTypeQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.categoryService.GetCategories(t)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Categories: categories})
}

// GetCategory returns one category of a type
// @Summary     Get a category
// @Tags        categories
// @Produce     json
// @Param       type path string true "expense or income"
// @Param       code path string true "Category code"
// @Success     200 {object} models.CategoryInfo
// @Failure     400 {object} ErrorResponse "Invalid type"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{type}/{code} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	info, err := h.categoryService.GetCategory(models.TransactionType(c.Param("type")), c.Param("code"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
