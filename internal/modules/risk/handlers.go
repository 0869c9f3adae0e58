package risk

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// Handler handles HTTP requests for the risk module.
type Handler struct {
	engine *Engine
	log    zerolog.Logger
}

// NewHandler creates a new risk handler.
func NewHandler(engine *Engine, log zerolog.Logger) *Handler {
	return &Handler{
		engine: engine,
		log:    log.With().Str("component", "risk_handler").Logger(),
	}
}

// assessmentRequest is the request body for a risk assessment.
type assessmentRequest struct {
	Portfolio *PortfolioData  `json:"portfolio"`
	Market    MarketData      `json:"market"`
	Scenarios []ScenarioInput `json:"scenarios,omitempty"`
}

// HandleAssess handles POST /api/risk/assessment - runs a full assessment.
func (h *Handler) HandleAssess(w http.ResponseWriter, r *http.Request) {
	var req assessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Portfolio == nil {
		h.writeError(w, http.StatusBadRequest, "portfolio is required")
		return
	}

	assessment, err := h.engine.Assess(*req.Portfolio, req.Market, req.Scenarios)
	if err != nil {
		h.log.Warn().Err(err).Msg("Rejected invalid portfolio")
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, assessment)
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
