package storage

import (
	"context"

	"github.com/chris/petty-cash-float/pkg/models"
)

// ReconciliationStore defines the interface used by the reconciliation job to
// detect and repair cycles whose stored total has drifted from the sum of
// their expenses (legacy data written by clients that read-modify-wrote the
// total can carry such drift).
type ReconciliationStore interface {
	// ScanCycles retrieves every cycle across all companies.
	ScanCycles(ctx context.Context) ([]models.Cycle, error)

	// ListExpensesByCycle retrieves all expenses recorded against a cycle.
	ListExpensesByCycle(ctx context.Context, cycleID string) ([]models.Expense, error)

	// AddToCycleTotal atomically adds delta to a cycle's running total.
	// Applying the drift as a delta is safe against concurrent expense
	// recording because increments commute.
	AddToCycleTotal(ctx context.Context, cycleID string, delta int64) error
}
