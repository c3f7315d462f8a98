// Package api defines the HTTP response envelope and shared middleware.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError represents an error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Standard error codes
const (
	ErrCodeMissingInput     = "MISSING_INPUT"
	ErrCodeMissingWatchlist = "MISSING_WATCHLIST"
	ErrCodeInvalidSchema    = "INVALID_SCHEMA"
	ErrCodeNoComparisons    = "NO_COMPARISONS"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

// SendSuccess sends a successful response
func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
	})
}

// SendError sends an error response
func SendError(c *gin.Context, statusCode int, code, message, details string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Convenience methods for common responses

func SendValidationError(c *gin.Context, code, message string) {
	SendError(c, http.StatusBadRequest, code, message, "")
}

func SendNotFound(c *gin.Context, resource string) {
	SendError(c, http.StatusNotFound, ErrCodeNotFound, resource+" not found", "")
}

func SendBadRequest(c *gin.Context, message string) {
	SendError(c, http.StatusBadRequest, ErrCodeBadRequest, message, "")
}

// SendInternalError sends an opaque server error. Internal detail belongs in
// the logs, not the response body.
func SendInternalError(c *gin.Context) {
	SendError(c, http.StatusInternalServerError, ErrCodeInternal, "Processing failed due to internal server error.", "")
}
