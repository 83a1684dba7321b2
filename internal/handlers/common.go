package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/deepaksolulab007/payment-system-stripe/internal/apperrors"
	"github.com/deepaksolulab007/payment-system-stripe/internal/helpers"
	"github.com/deepaksolulab007/payment-system-stripe/internal/middleware"
	"github.com/deepaksolulab007/payment-system-stripe/internal/services"
)

// ErrorResponse represents the standard error response format
type ErrorResponse struct {
	Error      string `json:"error"`
	ErrorClass string `json:"error_class,omitempty"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Limit   int32 `json:"limit"`
	Offset  int32 `json:"offset"`
	Page    int32 `json:"page"`
	Count   int   `json:"count"`
	HasMore bool  `json:"has_more"`
}

// sendError logs the failure with the request's correlation id and writes the error body.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	log := middleware.LogWithCorrelationID(c.Request.Context(), nil)
	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", statusCode),
	}
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, fields...)
	} else {
		log.Warn(message, fields...)
	}
	c.JSON(statusCode, ErrorResponse{Error: message, ErrorClass: apperrors.Classify(err)})
}

// handleServiceError maps the error taxonomy onto HTTP status codes.
func handleServiceError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}

	switch {
	case apperrors.IsNotFound(err):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	case apperrors.IsValidation(err):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, apperrors.ErrDuplicateRecord):
		sendError(c, http.StatusConflict, "Record already exists", err)
	case apperrors.IsTransient(err):
		sendError(c, http.StatusServiceUnavailable, "Dependency temporarily unavailable", err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList sends a paginated list response
func sendList[T any](c *gin.Context, items []T, page helpers.PaginationParams) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
		"pagination": Pagination{
			Limit:   page.Limit,
			Offset:  page.Offset,
			Page:    page.Page,
			Count:   len(items),
			HasMore: page.Limit > 0 && int32(len(items)) == page.Limit,
		},
	})
}

// listParams reads pagination and the shared filters from the query string.
func listParams(c *gin.Context) (services.ListParams, helpers.PaginationParams, bool) {
	page, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), apperrors.NewValidation("pagination", err.Error()))
		return services.ListParams{}, page, false
	}
	return services.ListParams{
		Limit:     page.Limit,
		Offset:    page.Offset,
		Status:    c.Query("status"),
		Email:     c.Query("email"),
		EventType: c.Query("event_type"),
	}, page, true
}
