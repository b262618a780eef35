package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/wonny/factorlens/internal/analysis"
	"github.com/wonny/factorlens/internal/contracts"
	"github.com/wonny/factorlens/internal/registry"
	"github.com/wonny/factorlens/internal/report"
	"github.com/wonny/factorlens/internal/series"
	"github.com/wonny/factorlens/pkg/config"
	"github.com/wonny/factorlens/pkg/logger"
)

// AnalysisHandler handles analysis API endpoints
type AnalysisHandler struct {
	repo     *series.Repository
	analyzer *analysis.Analyzer
	registry *registry.Registry
	config   *config.Config
	logger   *logger.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(
	repo *series.Repository,
	analyzer *analysis.Analyzer,
	reg *registry.Registry,
	cfg *config.Config,
	log *logger.Logger,
) *AnalysisHandler {
	return &AnalysisHandler{
		repo:     repo,
		analyzer: analyzer,
		registry: reg,
		config:   cfg,
		logger:   log,
	}
}

// Analyze runs the full analysis for one ticker and returns the report
// payload.
// GET /api/analysis/{symbol}?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	symbol := vars["symbol"]

	if symbol == "" {
		respondError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	from, to, err := h.parseRange(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	store, err := h.repo.LoadStore(ctx, h.registry, symbol, from, to, h.config.Analysis.MinObservations)
	if err != nil {
		h.respondAnalysisError(w, symbol, err)
		return
	}

	result, err := h.analyzer.Run(ctx, store, symbol, from, to)
	if err != nil {
		h.respondAnalysisError(w, symbol, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    report.Assemble(result),
	})
}

// parseRange reads from/to query params, falling back to the configured
// default window
func (h *AnalysisHandler) parseRange(r *http.Request) (time.Time, time.Time, error) {
	from := h.config.Analysis.DefaultFrom
	to := h.config.Analysis.DefaultTo

	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, errors.New("invalid from date (want YYYY-MM-DD)")
		}
		from = parsed
	}
	if v := r.URL.Query().Get("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return from, to, errors.New("invalid to date (want YYYY-MM-DD)")
		}
		to = parsed
	}
	if !to.After(from) {
		return from, to, errors.New("to must be after from")
	}
	return from, to, nil
}

// respondAnalysisError maps the analysis error taxonomy to HTTP statuses
func (h *AnalysisHandler) respondAnalysisError(w http.ResponseWriter, symbol string, err error) {
	log := h.logger.WithError(err).WithField("symbol", symbol)

	switch {
	case errors.Is(err, contracts.ErrUnknownTicker),
		errors.Is(err, contracts.ErrUnknownFactor):
		log.Warn("Analysis rejected")
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, contracts.ErrInsufficientData),
		errors.Is(err, contracts.ErrInsufficientDegreesOfFreedom),
		errors.Is(err, contracts.ErrSingularDesign),
		errors.Is(err, contracts.ErrDegenerateDistribution):
		log.Warn("Analysis rejected")
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Error("Analysis failed")
		respondError(w, http.StatusInternalServerError, "Failed to run analysis")
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
