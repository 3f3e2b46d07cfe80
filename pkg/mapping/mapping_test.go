package mapping_test

import (
	"testing"
	"time"

	"github.com/chris/petty-cash-float/pkg/mapping"
	"github.com/chris/petty-cash-float/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestCycleDisplayId(t *testing.T) {
	assert.Equal(t, "C-001", mapping.CycleDisplayId(1))
	assert.Equal(t, "C-042", mapping.CycleDisplayId(42))
	assert.Equal(t, "C-1000", mapping.CycleDisplayId(1000))
}

func TestToApiCycle(t *testing.T) {
	t.Run("Active Cycle Has No End Date", func(t *testing.T) {
		cycle := &models.Cycle{Id: "cycle-1", CycleNo: 3, Active: true}

		out := mapping.ToApiCycle(cycle)

		assert.Equal(t, "C-003", out.DisplayId)
		assert.Nil(t, out.EndDate)
		assert.True(t, out.Active)
	})

	t.Run("Completed Cycle Carries End Date", func(t *testing.T) {
		end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		cycle := &models.Cycle{Id: "cycle-1", CycleNo: 3, EndDate: end}

		out := mapping.ToApiCycle(cycle)

		assert.NotNil(t, out.EndDate)
		assert.Equal(t, end, *out.EndDate)
	})
}

func TestToCycleStatement(t *testing.T) {
	cycle := &models.Cycle{
		Id:        "cycle-1",
		CycleNo:   2,
		StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Total:     1950,
	}
	expenses := []models.Expense{
		{Id: "expense-1", CycleId: "cycle-1", Item: "stationery", Amount: 750},
		{Id: "expense-2", CycleId: "cycle-1", Item: "coffee", Amount: 1200},
	}

	statement := mapping.ToCycleStatement(cycle, expenses)

	assert.Equal(t, "C-002", statement.DisplayId)
	assert.Equal(t, cycle.StartDate, statement.From)
	assert.Nil(t, statement.Until)
	assert.Equal(t, int64(1950), statement.Total)
	assert.Len(t, statement.Expenses, 2)
}
