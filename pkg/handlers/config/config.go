package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/petty-cash-float/pkg/api"
	"github.com/chris/petty-cash-float/pkg/mapping"
	"github.com/chris/petty-cash-float/pkg/middleware"
	"github.com/chris/petty-cash-float/pkg/models"
	"github.com/chris/petty-cash-float/pkg/projection"
	"github.com/chris/petty-cash-float/pkg/storage"
)

// Service defines the configuration operations the handler depends on.
type Service interface {
	GetConfig(ctx context.Context, companyID string) (*models.Configuration, error)
	SaveConfig(ctx context.Context, companyID, actorID string, amount, warningAmount int64) (*models.Configuration, error)
}

// Refresher re-derives and pushes the company's displayed state after a mutation.
type Refresher interface {
	Refresh(ctx context.Context, companyID string) (*projection.Snapshot, error)
}

// ConfigHandler holds the dependencies for configuration-related handlers.
type ConfigHandler struct {
	Service   Service
	Refresher Refresher
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(service Service, refresher Refresher) *ConfigHandler {
	return &ConfigHandler{Service: service, Refresher: refresher}
}

// GetConfig handles the logic for retrieving the company's configuration.
func (h *ConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())

	cfg, err := h.Service.GetConfig(r.Context(), companyID)
	if err != nil {
		if errors.Is(err, storage.ErrConfigNotFound) {
			http.Error(w, "Configuration not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve configuration: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiConfig := mapping.ToApiConfiguration(cfg)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiConfig); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// SaveConfig handles the logic for upserting the company's configuration.
func (h *ConfigHandler) SaveConfig(w http.ResponseWriter, r *http.Request) {
	var newConfig api.NewConfiguration
	if err := json.NewDecoder(r.Body).Decode(&newConfig); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	companyID := middleware.CompanyID(r.Context())
	actorID := middleware.UserID(r.Context())

	cfg, err := h.Service.SaveConfig(r.Context(), companyID, actorID, newConfig.Amount, newConfig.WarningAmount)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to save configuration: %v", err), http.StatusInternalServerError)
		return
	}

	if h.Refresher != nil {
		if _, err := h.Refresher.Refresh(r.Context(), companyID); err != nil {
			slog.Error("failed to refresh projection after config save", "companyId", companyID, "error", err)
		}
	}

	apiConfig := mapping.ToApiConfiguration(cfg)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiConfig); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
