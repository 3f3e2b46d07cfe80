package pettycash

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/chris/petty-cash-float/pkg/cleanup"
	"github.com/chris/petty-cash-float/pkg/files"
	"github.com/chris/petty-cash-float/pkg/models"
	"github.com/chris/petty-cash-float/pkg/storage"
	"github.com/google/uuid"
)

// Service implements the petty-cash lifecycle: configuration upserts, the
// replenish protocol and expense recording. All state updates follow
// successful persistence; no operation retries automatically.
type Service struct {
	store   storage.ApiStore
	files   files.Store
	orphans cleanup.Queue
}

// New creates a new Service.
func New(store storage.ApiStore, fileStore files.Store, orphans cleanup.Queue) *Service {
	return &Service{
		store:   store,
		files:   fileStore,
		orphans: orphans,
	}
}

// ExpenseRequest carries the caller-supplied fields of a new expense.
type ExpenseRequest struct {
	Item        string
	Amount      int64
	RequestedBy string
	Attachments []files.File
}

// Validate checks the request's preconditions. It runs before any upload or
// write, so a rejected request has no side effects.
func (r *ExpenseRequest) Validate() error {
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(r.Item) == "" {
		return ErrMissingItem
	}
	if strings.TrimSpace(r.RequestedBy) == "" {
		return ErrMissingRequestedBy
	}
	return nil
}

// SaveConfig upserts the company's configuration and relinks the active
// cycle, if any, to the saved configuration's id.
func (s *Service) SaveConfig(ctx context.Context, companyID, actorID string, amount, warningAmount int64) (*models.Configuration, error) {
	if err := requireIdentity(companyID, actorID); err != nil {
		return nil, err
	}

	cfg, err := s.store.SaveConfig(ctx, &models.Configuration{
		CompanyId:     companyID,
		Amount:        amount,
		WarningAmount: warningAmount,
		UpdatedBy:     actorID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save configuration: %w", err)
	}

	// Keep the cycle/config linkage current without forcing a new cycle.
	active, err := s.store.GetActiveCycle(ctx, companyID)
	if err != nil {
		if errors.Is(err, storage.ErrNoActiveCycle) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to load active cycle: %w", err)
	}
	if active.ConfigId != cfg.Id {
		if err := s.store.UpdateCycleConfigId(ctx, active.Id, cfg.Id); err != nil {
			return nil, fmt.Errorf("failed to relink active cycle to configuration: %w", err)
		}
	}

	return cfg, nil
}

// GetConfig retrieves the company's configuration.
func (s *Service) GetConfig(ctx context.Context, companyID string) (*models.Configuration, error) {
	if companyID == "" {
		return nil, ErrMissingIdentity
	}
	return s.store.GetConfig(ctx, companyID)
}

// Replenish closes the company's active cycle, if any, and opens the next
// one with a zero total. Each step's failure is reported distinctly: a
// missing configuration, a failure closing the old cycle and a failure
// creating the new one are never merged into one generic message.
func (s *Service) Replenish(ctx context.Context, companyID, actorID string) (*models.Cycle, error) {
	if err := requireIdentity(companyID, actorID); err != nil {
		return nil, err
	}

	// 1. A configuration must exist before the first cycle can be funded.
	cfg, err := s.store.GetConfig(ctx, companyID)
	if err != nil {
		if errors.Is(err, storage.ErrConfigNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Close the current cycle, if one is open. ErrMultipleActiveCycles
	// deliberately passes through here.
	active, err := s.store.GetActiveCycle(ctx, companyID)
	if err != nil && !errors.Is(err, storage.ErrNoActiveCycle) {
		return nil, fmt.Errorf("failed to load active cycle: %w", err)
	}
	if active != nil {
		if err := s.store.CompleteCycle(ctx, active.Id); err != nil {
			return nil, fmt.Errorf("failed to complete cycle %s: %w", active.Id, err)
		}
	}

	// 3. Allocate the next cycle number.
	cycleNo, err := s.store.NextCycleNo(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate cycle number: %w", err)
	}

	// 4. Open the new cycle against the current configuration.
	cycle, err := s.store.CreateCycle(ctx, &models.Cycle{
		CompanyId: companyID,
		CycleNo:   cycleNo,
		ConfigId:  cfg.Id,
		CreatedBy: actorID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cycle: %w", err)
	}

	return cycle, nil
}

// RecordExpense validates and persists a new expense against the company's
// latest cycle. Attachments are uploaded before the expense is written; the
// first upload failure aborts the operation and names the failing file, and
// any objects already uploaded are handed to the cleanup queue instead of
// being left orphaned.
func (s *Service) RecordExpense(ctx context.Context, companyID, actorID string, req ExpenseRequest) (*models.Expense, error) {
	if err := requireIdentity(companyID, actorID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Expenses post against the latest cycle, not strictly the active one:
	// during a replenish there is a brief window where the new cycle exists
	// but the old one's bookkeeping hasn't caught up.
	cycle, err := s.store.GetLatestCycle(ctx, companyID)
	if err != nil {
		if errors.Is(err, storage.ErrNoCycle) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load latest cycle: %w", err)
	}

	var urls []string
	var keys []string
	for _, f := range req.Attachments {
		key := attachmentKey(companyID, cycle.Id, f.Name)
		url, err := s.files.Upload(ctx, key, f)
		if err != nil {
			s.discardOrphans(ctx, companyID, cycle.Id, keys)
			return nil, fmt.Errorf("failed to upload attachment %q: %w", f.Name, err)
		}
		keys = append(keys, key)
		urls = append(urls, url)
	}

	expense, err := s.store.CreateExpense(ctx, &models.Expense{
		CycleId:     cycle.Id,
		CompanyId:   companyID,
		Item:        req.Item,
		Amount:      req.Amount,
		RequestedBy: req.RequestedBy,
		Attachments: urls,
		CreatedBy:   actorID,
	})
	if err != nil {
		s.discardOrphans(ctx, companyID, cycle.Id, keys)
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	return expense, nil
}

// discardOrphans hands uploaded-but-unreferenced objects to the cleanup
// queue. Best effort: the expense operation has already failed and its error
// is the one the caller needs to see.
func (s *Service) discardOrphans(ctx context.Context, companyID, cycleID string, keys []string) {
	if s.orphans == nil || len(keys) == 0 {
		return
	}
	batch := cleanup.OrphanBatch{CompanyId: companyID, CycleId: cycleID, Keys: keys}
	if err := s.orphans.EnqueueOrphans(ctx, batch); err != nil {
		slog.Error("failed to enqueue orphaned attachments", "cycleId", cycleID, "count", len(keys), "error", err)
	}
}

func attachmentKey(companyID, cycleID, filename string) string {
	return fmt.Sprintf("attachments/%s/%s/%s-%s", companyID, cycleID, uuid.New().String(), path.Base(filename))
}

func requireIdentity(companyID, actorID string) error {
	if companyID == "" || actorID == "" {
		return ErrMissingIdentity
	}
	return nil
}
