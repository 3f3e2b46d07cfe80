package storage

import (
	"context"

	"github.com/chris/petty-cash-float/pkg/models"
)

// ExpenseStore defines the interface for recording and reading expenses.
type ExpenseStore interface {
	// CreateExpense persists an expense and increments the owning cycle's
	// running total in a single atomic write, so the total can never drop a
	// concurrent expense's contribution. Returns ErrCycleNotFound if the
	// owning cycle does not exist.
	CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error)

	// ListExpensesByCycle retrieves all expenses recorded against a cycle,
	// oldest first.
	ListExpensesByCycle(ctx context.Context, cycleID string) ([]models.Expense, error)
}
