package projection_test

import (
	"context"
	"errors"
	"testing"

	"github.com/chris/petty-cash-float/pkg/models"
	"github.com/chris/petty-cash-float/pkg/projection"
	"github.com/chris/petty-cash-float/pkg/storage"
	"github.com/chris/petty-cash-float/pkg/storage/mocks"
	"github.com/chris/petty-cash-float/pkg/websockets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// capturingPublisher records every message pushed through it and the company
// each one was addressed to.
type capturingPublisher struct {
	companies []string
	messages  []websockets.Message
}

func (p *capturingPublisher) Publish(ctx context.Context, companyID string, message websockets.Message) error {
	p.companies = append(p.companies, companyID)
	p.messages = append(p.messages, message)
	return nil
}

func TestRefresh(t *testing.T) {
	cfg := &models.Configuration{Id: "config-1", CompanyId: "company-a", Amount: 10000, WarningAmount: 2000}

	t.Run("Computes On Hand From Active Cycle", func(t *testing.T) {
		cycles := []models.Cycle{
			{Id: "cycle-2", CompanyId: "company-a", CycleNo: 2, Total: 3000, Active: true},
			{Id: "cycle-1", CompanyId: "company-a", CycleNo: 1, Total: 9500},
		}

		mockStorage := new(mocks.Storage)
		mockStorage.On("GetConfig", mock.Anything, "company-a").Return(cfg, nil)
		mockStorage.On("ListCycles", mock.Anything, "company-a").Return(cycles, nil)
		mockStorage.On("ListExpensesByCycle", mock.Anything, "cycle-2").Return([]models.Expense{{Id: "expense-1", Amount: 3000}}, nil)
		mockStorage.On("ListExpensesByCycle", mock.Anything, "cycle-1").Return([]models.Expense{}, nil)

		p := projection.New(mockStorage, nil)
		snapshot, err := p.Refresh(context.Background(), "company-a")

		assert.NoError(t, err)
		assert.Equal(t, int64(7000), snapshot.OnHand)
		assert.False(t, snapshot.Low)
		assert.Len(t, snapshot.Cycles, 2)
		assert.Equal(t, "C-002", snapshot.Cycles[0].DisplayId)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Flags Low Balance", func(t *testing.T) {
		cycles := []models.Cycle{
			{Id: "cycle-1", CompanyId: "company-a", CycleNo: 1, Total: 8500, Active: true},
		}

		mockStorage := new(mocks.Storage)
		mockStorage.On("GetConfig", mock.Anything, "company-a").Return(cfg, nil)
		mockStorage.On("ListCycles", mock.Anything, "company-a").Return(cycles, nil)
		mockStorage.On("ListExpensesByCycle", mock.Anything, "cycle-1").Return([]models.Expense{}, nil)

		p := projection.New(mockStorage, nil)
		snapshot, err := p.Refresh(context.Background(), "company-a")

		assert.NoError(t, err)
		assert.Equal(t, int64(1500), snapshot.OnHand)
		assert.True(t, snapshot.Low)
		mockStorage.AssertExpectations(t)
	})

	t.Run("No Configuration Yields Empty Snapshot", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetConfig", mock.Anything, "company-a").Return(nil, storage.ErrConfigNotFound)

		p := projection.New(mockStorage, nil)
		snapshot, err := p.Refresh(context.Background(), "company-a")

		assert.NoError(t, err)
		assert.Equal(t, "company-a", snapshot.CompanyId)
		assert.Zero(t, snapshot.OnHand)
		assert.Empty(t, snapshot.Cycles)
		mockStorage.AssertNotCalled(t, "ListCycles", mock.Anything, mock.Anything)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Failure Publishes Empty Snapshot", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetConfig", mock.Anything, "company-a").Return(cfg, nil)
		mockStorage.On("ListCycles", mock.Anything, "company-a").Return(nil, errors.New("some storage error"))

		publisher := &capturingPublisher{}
		p := projection.New(mockStorage, publisher)
		snapshot, err := p.Refresh(context.Background(), "company-a")

		assert.Error(t, err)
		assert.Equal(t, &projection.Snapshot{CompanyId: "company-a"}, snapshot)
		assert.Len(t, publisher.messages, 1)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Publishes Snapshot Update", func(t *testing.T) {
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetConfig", mock.Anything, "company-a").Return(cfg, nil)
		mockStorage.On("ListCycles", mock.Anything, "company-a").Return([]models.Cycle{}, nil)

		publisher := &capturingPublisher{}
		p := projection.New(mockStorage, publisher)
		snapshot, err := p.Refresh(context.Background(), "company-a")

		assert.NoError(t, err)
		assert.Len(t, publisher.messages, 1)
		assert.Equal(t, websockets.MessageTypeSnapshotUpdate, publisher.messages[0].Type)
		assert.Equal(t, snapshot, publisher.messages[0].Payload)
		// The push is addressed to the snapshot's company, never broadcast.
		assert.Equal(t, []string{"company-a"}, publisher.companies)
		mockStorage.AssertExpectations(t)
	})
}

func TestSubscribe(t *testing.T) {
	cfg := &models.Configuration{Id: "config-1", CompanyId: "company-a", Amount: 10000, WarningAmount: 2000}

	newProjector := func(t *testing.T) *projection.Projector {
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetConfig", mock.Anything, mock.Anything).Return(cfg, nil)
		mockStorage.On("ListCycles", mock.Anything, mock.Anything).Return([]models.Cycle{}, nil)
		return projection.New(mockStorage, nil)
	}

	t.Run("Subscriber Receives Updates", func(t *testing.T) {
		p := newProjector(t)

		var received []*projection.Snapshot
		sub := p.Subscribe("company-a", func(s *projection.Snapshot) {
			received = append(received, s)
		})
		defer sub.Unsubscribe()

		_, err := p.Refresh(context.Background(), "company-a")

		assert.NoError(t, err)
		assert.Len(t, received, 1)
		assert.Equal(t, "company-a", received[0].CompanyId)
	})

	t.Run("Subscriber Only Sees Its Company", func(t *testing.T) {
		p := newProjector(t)

		var received []*projection.Snapshot
		sub := p.Subscribe("company-b", func(s *projection.Snapshot) {
			received = append(received, s)
		})
		defer sub.Unsubscribe()

		_, err := p.Refresh(context.Background(), "company-a")

		assert.NoError(t, err)
		assert.Empty(t, received)
	})

	t.Run("Unsubscribe Stops Updates", func(t *testing.T) {
		p := newProjector(t)

		var received []*projection.Snapshot
		sub := p.Subscribe("company-a", func(s *projection.Snapshot) {
			received = append(received, s)
		})
		sub.Unsubscribe()

		_, err := p.Refresh(context.Background(), "company-a")

		assert.NoError(t, err)
		assert.Empty(t, received)
	})

	t.Run("Unsubscribe Is Idempotent", func(t *testing.T) {
		p := newProjector(t)

		sub := p.Subscribe("company-a", func(*projection.Snapshot) {})
		sub.Unsubscribe()
		assert.NotPanics(t, func() { sub.Unsubscribe() })
	})

	t.Run("Independent Subscriptions", func(t *testing.T) {
		p := newProjector(t)

		var first, second int
		subA := p.Subscribe("company-a", func(*projection.Snapshot) { first++ })
		subB := p.Subscribe("company-a", func(*projection.Snapshot) { second++ })
		defer subB.Unsubscribe()

		subA.Unsubscribe()
		_, err := p.Refresh(context.Background(), "company-a")

		assert.NoError(t, err)
		assert.Zero(t, first)
		assert.Equal(t, 1, second)
	})
}
