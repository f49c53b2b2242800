package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/logger"
	"spendwise/internal/middleware"
	"spendwise/internal/models"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, middleware.ErrorBody(appErr))
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, middleware.ErrorBody(apperrors.ErrInternalServer))
}

// bindingError turns a gin binding failure into an INVALID_INPUT error that
// names the first offending field.
func bindingError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "series_period":
			return apperrors.WithMessage(apperrors.ErrInvalidPeriod, "period must be one of weekly, monthly, yearly")
		case "transaction_type":
			return apperrors.WithMessage(apperrors.ErrInvalidTransactionType, "type must be expense or income")
		case "required":
			return apperrors.Invalid(field, field+" is required")
		case "max":
			return apperrors.Invalid(field, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		case "min":
			return apperrors.Invalid(field, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		default:
			return apperrors.Invalid(field, fmt.Sprintf("%s is invalid", field))
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperrors.Invalid(typeErr.Field, typeErr.Field+" has the wrong type")
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// parseRequestDate parses an RFC 3339 timestamp, or a YYYY-MM-DD date taken
// as midnight in loc.
func parseRequestDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(time.DateOnly, s, loc)
}

// parseTypeQuery reads the optional "type" query parameter.
func parseTypeQuery(c *gin.Context) (*models.TransactionType, error) {
	v := c.Query("type")
	if v == "" {
		return nil, nil
	}
	t := models.TransactionType(v)
	if !t.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidTransactionType, "type must be expense or income")
	}
	return &t, nil
}
