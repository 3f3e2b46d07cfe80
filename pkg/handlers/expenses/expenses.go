package expenses

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/chris/petty-cash-float/pkg/files"
	"github.com/chris/petty-cash-float/pkg/mapping"
	"github.com/chris/petty-cash-float/pkg/middleware"
	"github.com/chris/petty-cash-float/pkg/models"
	"github.com/chris/petty-cash-float/pkg/pettycash"
	"github.com/chris/petty-cash-float/pkg/projection"
	"github.com/chris/petty-cash-float/pkg/storage"
)

// maxUploadBytes caps the in-memory portion of a multipart expense request.
const maxUploadBytes = 32 << 20

// Service defines the expense operations the handler depends on.
type Service interface {
	RecordExpense(ctx context.Context, companyID, actorID string, req pettycash.ExpenseRequest) (*models.Expense, error)
}

// Refresher re-derives and pushes the company's displayed state after a mutation.
type Refresher interface {
	Refresh(ctx context.Context, companyID string) (*projection.Snapshot, error)
}

// ExpensesHandler holds the dependencies for expense-related handlers.
type ExpensesHandler struct {
	Service   Service
	Refresher Refresher
}

// NewExpensesHandler creates a new ExpensesHandler.
func NewExpensesHandler(service Service, refresher Refresher) *ExpensesHandler {
	return &ExpensesHandler{Service: service, Refresher: refresher}
}

// RecordExpense handles a multipart expense submission: form fields for the
// expense itself plus zero or more file attachments.
func (h *ExpensesHandler) RecordExpense(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("Invalid multipart request: %v", err), http.StatusBadRequest)
		return
	}

	amount, err := strconv.ParseInt(r.FormValue("amount"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid amount: must be an integer number of minor units", http.StatusBadRequest)
		return
	}

	req := pettycash.ExpenseRequest{
		Item:        r.FormValue("item"),
		Amount:      amount,
		RequestedBy: r.FormValue("requested_by"),
	}

	for _, header := range r.MultipartForm.File["attachments"] {
		f, err := header.Open()
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to read attachment %q: %v", header.Filename, err), http.StatusBadRequest)
			return
		}
		defer f.Close()
		req.Attachments = append(req.Attachments, files.File{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        f,
		})
	}

	companyID := middleware.CompanyID(r.Context())
	actorID := middleware.UserID(r.Context())

	expense, err := h.Service.RecordExpense(r.Context(), companyID, actorID, req)
	if err != nil {
		switch {
		case errors.Is(err, pettycash.ErrInvalidAmount),
			errors.Is(err, pettycash.ErrMissingItem),
			errors.Is(err, pettycash.ErrMissingRequestedBy):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, storage.ErrNoCycle):
			http.Error(w, "No cycle to record the expense against; replenish first", http.StatusUnprocessableEntity)
		default:
			http.Error(w, fmt.Sprintf("Failed to record expense: %v", err), http.StatusInternalServerError)
		}
		return
	}

	if h.Refresher != nil {
		if _, err := h.Refresher.Refresh(r.Context(), companyID); err != nil {
			slog.Error("failed to refresh projection after expense", "companyId", companyID, "error", err)
		}
	}

	apiExpense := mapping.ToApiExpense(expense)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiExpense); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
