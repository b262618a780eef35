package handlers

import (
	"net/http"

	"github.com/wonny/factorlens/internal/contracts"
	"github.com/wonny/factorlens/internal/registry"
	"github.com/wonny/factorlens/pkg/logger"
)

// TickerHandler serves the immutable ticker/factor registry
type TickerHandler struct {
	registry *registry.Registry
	logger   *logger.Logger
}

// NewTickerHandler creates a new ticker handler
func NewTickerHandler(reg *registry.Registry, log *logger.Logger) *TickerHandler {
	return &TickerHandler{registry: reg, logger: log}
}

// List returns the analyzable stock universe
// GET /api/tickers
func (h *TickerHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    h.registry.Tickers(),
	})
}

// Factors returns the supported factors and their data-source symbols
// GET /api/factors
func (h *TickerHandler) Factors(w http.ResponseWriter, r *http.Request) {
	type factorInfo struct {
		Name   contracts.FactorName `json:"name"`
		Symbol string               `json:"symbol"`
	}

	factors := make([]factorInfo, 0, len(contracts.AllFactors))
	for _, name := range h.registry.Factors() {
		symbol, _ := h.registry.FactorSymbol(name)
		factors = append(factors, factorInfo{Name: name, Symbol: symbol})
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    factors,
	})
}
