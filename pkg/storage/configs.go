package storage

import (
	"context"

	"github.com/chris/petty-cash-float/pkg/models"
)

// ConfigStore defines the interface for managing per-company petty-cash
// configurations.
type ConfigStore interface {
	// GetConfig retrieves the configuration for a company.
	// Returns ErrConfigNotFound if the company has no configuration.
	GetConfig(ctx context.Context, companyID string) (*models.Configuration, error)

	// SaveConfig upserts the configuration for cfg.CompanyId. An existing
	// configuration is updated in place and keeps its id; a new one is
	// assigned a fresh id. The stored configuration is returned.
	SaveConfig(ctx context.Context, cfg *models.Configuration) (*models.Configuration, error)
}
