package cycles

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
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Service defines the cycle operations the handler depends on.
type Service interface {
	Replenish(ctx context.Context, companyID, actorID string) (*models.Cycle, error)
}

// Refresher re-derives and pushes the company's displayed state after a mutation.
type Refresher interface {
	Refresh(ctx context.Context, companyID string) (*projection.Snapshot, error)
}

// CyclesHandler holds the dependencies for cycle-related handlers.
type CyclesHandler struct {
	Service   Service
	Store     storage.ApiStore
	Refresher Refresher
}

// NewCyclesHandler creates a new CyclesHandler.
func NewCyclesHandler(service Service, store storage.ApiStore, refresher Refresher) *CyclesHandler {
	return &CyclesHandler{Service: service, Store: store, Refresher: refresher}
}

// Routes mounts the cycle endpoints on a fresh router.
func (h *CyclesHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/replenish", h.Replenish)
	r.Get("/", h.ListCycles)
	r.Get("/{cycleId}/expenses", func(w http.ResponseWriter, r *http.Request) {
		cycleID, err := uuid.Parse(chi.URLParam(r, "cycleId"))
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid cycle ID: %v", err), http.StatusBadRequest)
			return
		}
		h.ListCycleExpenses(w, r, openapi_types.UUID(cycleID))
	})
	return r
}

// Replenish closes the active cycle, if any, and opens the next one.
func (h *CyclesHandler) Replenish(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())
	actorID := middleware.UserID(r.Context())

	cycle, err := h.Service.Replenish(r.Context(), companyID, actorID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConfigNotFound):
			http.Error(w, "Configuration not found", http.StatusUnprocessableEntity)
		case errors.Is(err, storage.ErrMultipleActiveCycles):
			http.Error(w, "Multiple active cycles found for company", http.StatusConflict)
		default:
			http.Error(w, fmt.Sprintf("Failed to replenish: %v", err), http.StatusInternalServerError)
		}
		return
	}

	if h.Refresher != nil {
		if _, err := h.Refresher.Refresh(r.Context(), companyID); err != nil {
			slog.Error("failed to refresh projection after replenish", "companyId", companyID, "error", err)
		}
	}

	apiCycle := mapping.ToApiCycle(cycle)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiCycle); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListCycles handles the logic for retrieving all of the company's cycles, newest first.
func (h *CyclesHandler) ListCycles(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())

	domainCycles, err := h.Store.ListCycles(r.Context(), companyID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve cycles: %v", err), http.StatusInternalServerError)
		return
	}

	apiCycles := make([]*api.Cycle, len(domainCycles))
	for i, cycle := range domainCycles {
		apiCycles[i] = mapping.ToApiCycle(&cycle)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiCycles); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListCycleExpenses handles the logic for retrieving a cycle's expenses, oldest first.
func (h *CyclesHandler) ListCycleExpenses(w http.ResponseWriter, r *http.Request, cycleId openapi_types.UUID) {
	domainExpenses, err := h.Store.ListExpensesByCycle(r.Context(), cycleId.String())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve expenses: %v", err), http.StatusInternalServerError)
		return
	}

	apiExpenses := make([]*api.Expense, len(domainExpenses))
	for i, expense := range domainExpenses {
		apiExpenses[i] = mapping.ToApiExpense(&expense)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiExpenses); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// Overview recomputes and returns the company's current snapshot.
func (h *CyclesHandler) Overview(w http.ResponseWriter, r *http.Request) {
	companyID := middleware.CompanyID(r.Context())

	snapshot, err := h.Refresher.Refresh(r.Context(), companyID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to build overview: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
