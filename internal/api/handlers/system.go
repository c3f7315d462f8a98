package handlers

import (
	"net/http"

	"watchlist-screening/internal/api"
	"watchlist-screening/internal/matching"
	"watchlist-screening/internal/watchlist"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves liveness and introspection endpoints.
type SystemHandler struct {
	loader      *watchlist.Loader
	matchingCfg matching.Config
}

func NewSystemHandler(loader *watchlist.Loader, matchingCfg matching.Config) *SystemHandler {
	return &SystemHandler{loader: loader, matchingCfg: matchingCfg}
}

type HealthResponse struct {
	Status             string `json:"status"`
	WatchlistAvailable bool   `json:"watchlist_available"`
	WatchlistEntries   int    `json:"watchlist_entries"`
}

// Health reports process liveness and whether the watchlist document is
// readable. A missing watchlist degrades the status but keeps the service up:
// screening requests fail with a categorized error, not a crash.
func (h *SystemHandler) Health(c *gin.Context) {
	available := h.loader.Available()

	status := "ok"
	code := http.StatusOK
	if !available {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Status:             status,
		WatchlistAvailable: available,
		WatchlistEntries:   h.loader.Size(),
	})
}

type MatchingConfigResponse struct {
	CharWeight          float64 `json:"char_weight"`
	TokenWeight         float64 `json:"token_weight"`
	TokenMatchThreshold float64 `json:"token_match_threshold"`
	ExactThreshold      float64 `json:"exact_threshold"`
	PossibleThreshold   float64 `json:"possible_threshold"`
}

// GetMatchingConfig exposes the active weights and thresholds so committed
// scores stay auditable against the configuration that produced them.
func (h *SystemHandler) GetMatchingConfig(c *gin.Context) {
	api.SendSuccess(c, http.StatusOK, MatchingConfigResponse{
		CharWeight:          h.matchingCfg.CharWeight,
		TokenWeight:         h.matchingCfg.TokenWeight,
		TokenMatchThreshold: h.matchingCfg.TokenMatchThreshold,
		ExactThreshold:      h.matchingCfg.ExactThreshold,
		PossibleThreshold:   h.matchingCfg.PossibleThreshold,
	})
}
