// Package handlers implements the HTTP surface of the screening service.
package handlers

import (
	"errors"
	"net/http"
	"regexp"

	"watchlist-screening/internal/api"
	"watchlist-screening/internal/logger"
	"watchlist-screening/internal/screening"
	"watchlist-screening/internal/store"

	"github.com/gin-gonic/gin"
)

// identifierRegex constrains path identifiers to filesystem-safe values;
// user and request IDs become directory names in the result store.
var identifierRegex = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ScreeningHandler handles screening run requests
type ScreeningHandler struct {
	svc *screening.Service
	st  *store.Store
}

// NewScreeningHandler creates a new screening handler
func NewScreeningHandler(svc *screening.Service, st *store.Store) *ScreeningHandler {
	return &ScreeningHandler{svc: svc, st: st}
}

// ProcessResponse is returned when a run succeeds or was already committed.
type ProcessResponse struct {
	OutputPath string `json:"outputPath"`
}

// Process runs the screening pipeline for the user/request pair in the path.
// Re-posting an already processed request returns the committed result's
// location without recomputation.
func (h *ScreeningHandler) Process(c *gin.Context) {
	key, ok := keyFromPath(c)
	if !ok {
		return
	}

	outcome, err := h.svc.Screen(c.Request.Context(), key)
	if err != nil {
		h.sendScreeningError(c, key, err)
		return
	}

	api.SendSuccess(c, http.StatusOK, ProcessResponse{OutputPath: outcome.OutputPath})
}

// GetResult returns the committed detailed result for a processed request.
func (h *ScreeningHandler) GetResult(c *gin.Context) {
	key, ok := keyFromPath(c)
	if !ok {
		return
	}

	if !h.st.Exists(key) {
		api.SendNotFound(c, "result")
		return
	}

	result, err := h.st.Load(key)
	if err != nil {
		logger.Error().Err(err).
			Str("user_id", key.UserID).
			Str("request_id", key.RequestID).
			Msg("failed to read committed result")
		api.SendInternalError(c)
		return
	}

	api.SendSuccess(c, http.StatusOK, result)
}

func keyFromPath(c *gin.Context) (store.Key, bool) {
	userID := c.Param("userId")
	requestID := c.Param("requestId")

	if !identifierRegex.MatchString(userID) || !identifierRegex.MatchString(requestID) {
		api.SendBadRequest(c, "userId and requestId must be alphanumeric identifiers")
		return store.Key{}, false
	}

	return store.Key{UserID: userID, RequestID: requestID}, true
}

// sendScreeningError maps pipeline errors onto the response envelope.
// Validation failures carry a categorized code; everything else is opaque to
// the caller and recorded for operators.
func (h *ScreeningHandler) sendScreeningError(c *gin.Context, key store.Key, err error) {
	switch {
	case errors.Is(err, screening.ErrMissingInput):
		api.SendValidationError(c, api.ErrCodeMissingInput, "Input file missing")
	case errors.Is(err, screening.ErrMissingWatchlist):
		api.SendValidationError(c, api.ErrCodeMissingWatchlist, "Watchlist file missing")
	case errors.Is(err, screening.ErrInvalidSchema):
		api.SendValidationError(c, api.ErrCodeInvalidSchema, "fullName field is required. Please provide correctly formatted input.")
	case errors.Is(err, screening.ErrNoComparisons):
		api.SendValidationError(c, api.ErrCodeNoComparisons, "No valid names to compare")
	default:
		logger.Error().Err(err).
			Str("user_id", key.UserID).
			Str("request_id", key.RequestID).
			Bool("persistence", errors.Is(err, screening.ErrPersistence)).
			Msg("screening run failed")
		api.SendInternalError(c)
	}
}
