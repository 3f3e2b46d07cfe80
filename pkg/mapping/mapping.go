package mapping

import (
	"fmt"

	"github.com/chris/petty-cash-float/pkg/api"
	"github.com/chris/petty-cash-float/pkg/models"
)

// CycleDisplayId formats a cycle number as its zero-padded display id.
func CycleDisplayId(cycleNo int64) string {
	return fmt.Sprintf("C-%03d", cycleNo)
}

// ToApiConfiguration converts a domain Configuration model to an API Configuration model.
func ToApiConfiguration(cfg *models.Configuration) *api.Configuration {
	return &api.Configuration{
		Id:            cfg.Id,
		CompanyId:     cfg.CompanyId,
		Amount:        cfg.Amount,
		WarningAmount: cfg.WarningAmount,
		UpdatedAt:     cfg.UpdatedAt,
	}
}

// ToApiCycle converts a domain Cycle model to an API Cycle model.
func ToApiCycle(cycle *models.Cycle) *api.Cycle {
	out := &api.Cycle{
		Id:        cycle.Id,
		DisplayId: CycleDisplayId(cycle.CycleNo),
		CycleNo:   cycle.CycleNo,
		ConfigId:  cycle.ConfigId,
		StartDate: cycle.StartDate,
		Total:     cycle.Total,
		Active:    cycle.Active,
	}
	if !cycle.EndDate.IsZero() {
		end := cycle.EndDate
		out.EndDate = &end
	}
	return out
}

// ToApiExpense converts a domain Expense model to an API Expense model.
func ToApiExpense(expense *models.Expense) *api.Expense {
	return &api.Expense{
		Id:          expense.Id,
		CycleId:     expense.CycleId,
		Item:        expense.Item,
		Amount:      expense.Amount,
		RequestedBy: expense.RequestedBy,
		Attachments: expense.Attachments,
		CreatedAt:   expense.CreatedAt,
	}
}

// ToCycleStatement combines a cycle and its expenses into the statement view.
func ToCycleStatement(cycle *models.Cycle, expenses []models.Expense) *api.CycleStatement {
	apiExpenses := make([]api.Expense, len(expenses))
	for i, expense := range expenses {
		apiExpenses[i] = *ToApiExpense(&expense)
	}

	statement := &api.CycleStatement{
		DisplayId: CycleDisplayId(cycle.CycleNo),
		From:      cycle.StartDate,
		Total:     cycle.Total,
		Expenses:  apiExpenses,
	}
	if !cycle.EndDate.IsZero() {
		end := cycle.EndDate
		statement.Until = &end
	}
	return statement
}
