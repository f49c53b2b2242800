package services

import (
	"fmt"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// categoryService handles category reference data lookups.
type categoryService struct{}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService() CategoryServicer {
	return &categoryService{}
}

// GetCategories returns the categories of type t, or both vocabularies
// (expense first) when t is nil.
func (s *categoryService) GetCategories(t *models.TransactionType) ([]models.CategoryInfo, error) {
	if t == nil {
		all := append([]models.CategoryInfo{}, models.ExpenseCategories...)
		return append(all, models.IncomeCategories...), nil
	}
	if !t.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	return models.CategoriesFor(*t), nil
}

// GetCategory looks up a single category code within type t.
func (s *categoryService) GetCategory(t models.TransactionType, code string) (*models.CategoryInfo, error) {
	if !t.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	info := models.LookupCategory(t, code)
	if !info.Known {
		return nil, apperrors.WithMessage(apperrors.ErrNotFound, fmt.Sprintf("%s category %q not found", t, code))
	}
	return &info, nil
}
