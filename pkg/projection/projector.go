// Package projection derives the displayable petty-cash state for a company
// and pushes it to interested parties on every change. The model is
// push-based: mutations (or, in deployed mode, table stream events) drive
// refreshes and clients never poll.
package projection

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris/petty-cash-float/pkg/api"
	"github.com/chris/petty-cash-float/pkg/mapping"
	"github.com/chris/petty-cash-float/pkg/pettycash"
	"github.com/chris/petty-cash-float/pkg/storage"
	"github.com/chris/petty-cash-float/pkg/websockets"
)

// Snapshot is the fully derived petty-cash view for a company: the on-hand
// figure, the low-balance flag and a statement per cycle, newest first.
type Snapshot struct {
	CompanyId     string               `json:"company_id"`
	ConfigAmount  int64                `json:"config_amount"`
	WarningAmount int64                `json:"warning_amount"`
	OnHand        int64                `json:"on_hand"`
	Low           bool                 `json:"low"`
	Cycles        []api.CycleStatement `json:"cycles"`
}

// Projector rebuilds snapshots and fans them out to in-process subscribers
// and to WebSocket clients.
type Projector struct {
	store     storage.ApiStore
	publisher websockets.Publisher

	subscribers *registry
}

// New creates a new Projector.
func New(store storage.ApiStore, publisher websockets.Publisher) *Projector {
	return &Projector{
		store:       store,
		publisher:   publisher,
		subscribers: newRegistry(),
	}
}

// Refresh rebuilds the company's snapshot from storage and fans it out.
// This is a full re-projection: every cycle and its expenses are re-read,
// which is acceptable at petty-cash data volumes. On failure the published
// state is reset to an empty snapshot rather than leaving stale data
// displayed, and the error is returned.
func (p *Projector) Refresh(ctx context.Context, companyID string) (*Snapshot, error) {
	snapshot, err := p.build(ctx, companyID)
	if err != nil {
		empty := &Snapshot{CompanyId: companyID}
		p.fanOut(ctx, empty)
		return empty, err
	}

	p.fanOut(ctx, snapshot)
	return snapshot, nil
}

func (p *Projector) build(ctx context.Context, companyID string) (*Snapshot, error) {
	snapshot := &Snapshot{CompanyId: companyID}

	cfg, err := p.store.GetConfig(ctx, companyID)
	if err != nil {
		// A company with no configuration yet has nothing to display.
		if errors.Is(err, storage.ErrConfigNotFound) {
			return snapshot, nil
		}
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	snapshot.ConfigAmount = cfg.Amount
	snapshot.WarningAmount = cfg.WarningAmount

	cycles, err := p.store.ListCycles(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cycles: %w", err)
	}

	snapshot.Cycles = make([]api.CycleStatement, 0, len(cycles))
	for i := range cycles {
		cycle := &cycles[i]
		expenses, err := p.store.ListExpensesByCycle(ctx, cycle.Id)
		if err != nil {
			return nil, fmt.Errorf("failed to list expenses for cycle %s: %w", cycle.Id, err)
		}
		snapshot.Cycles = append(snapshot.Cycles, *mapping.ToCycleStatement(cycle, expenses))

		if cycle.Active {
			snapshot.OnHand = pettycash.OnHand(cfg.Amount, cycle.Total)
		}
	}

	snapshot.Low = pettycash.IsLow(snapshot.OnHand, cfg.WarningAmount)
	return snapshot, nil
}

func (p *Projector) fanOut(ctx context.Context, snapshot *Snapshot) {
	p.subscribers.notify(snapshot.CompanyId, snapshot)

	if p.publisher == nil {
		return
	}
	message := websockets.Message{
		Type:    websockets.MessageTypeSnapshotUpdate,
		Payload: snapshot,
	}
	if err := p.publisher.Publish(ctx, snapshot.CompanyId, message); err != nil {
		// Fan-out is best effort; the snapshot itself is already consistent.
		return
	}
}

// Subscribe registers a callback for the company's snapshot updates and
// returns the handle that owns the registration. Callers must call
// Unsubscribe on teardown; there is no process-wide listener state beyond
// this registry.
func (p *Projector) Subscribe(companyID string, fn func(*Snapshot)) *Subscription {
	return p.subscribers.add(companyID, fn)
}
