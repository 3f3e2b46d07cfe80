package storage

import (
	"context"

	"github.com/chris/petty-cash-float/pkg/models"
)

// CycleReader defines the interface for reading cycle data.
type CycleReader interface {
	// GetActiveCycle retrieves the single active cycle for a company.
	// Returns ErrNoActiveCycle if none exists. More than one active cycle is
	// a data-integrity violation and is surfaced as ErrMultipleActiveCycles,
	// never silently resolved.
	GetActiveCycle(ctx context.Context, companyID string) (*models.Cycle, error)

	// GetLatestCycle retrieves the cycle with the highest cycle number for a
	// company, regardless of the active flag. Returns ErrNoCycle if the
	// company has no cycles at all.
	GetLatestCycle(ctx context.Context, companyID string) (*models.Cycle, error)

	// ListCycles retrieves all cycles for a company, newest first.
	ListCycles(ctx context.Context, companyID string) ([]models.Cycle, error)
}

// CycleManager defines the interface for creating and mutating cycles.
type CycleManager interface {
	// NextCycleNo atomically allocates the next cycle number for a company.
	// The first allocation for a company returns 1. A number, once handed
	// out, is never handed out again.
	NextCycleNo(ctx context.Context, companyID string) (int64, error)

	// CreateCycle inserts a new cycle with a zero total, a start date of now
	// and the active flag set. The stored cycle is returned.
	CreateCycle(ctx context.Context, cycle *models.Cycle) (*models.Cycle, error)

	// CompleteCycle closes a cycle: clears the active flag and stamps the end
	// date. The running total is left untouched. Returns ErrCycleNotActive if
	// the cycle is missing or already closed.
	CompleteCycle(ctx context.Context, cycleID string) error

	// AddToCycleTotal atomically adds delta to a cycle's running total.
	AddToCycleTotal(ctx context.Context, cycleID string, delta int64) error

	// UpdateCycleConfigId relinks a cycle to a (possibly just-updated)
	// configuration.
	UpdateCycleConfigId(ctx context.Context, cycleID, configID string) error
}

// CycleStore combines the reader and manager interfaces.
type CycleStore interface {
	CycleReader
	CycleManager
}
