package storage

import "context"

// WebSocketManager defines the interface for tracking WebSocket connections
// and the company each one watches. Lookups are always company-scoped so a
// snapshot push can never reach another tenant's clients.
type WebSocketManager interface {
	AddConnection(ctx context.Context, companyID, connectionID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
	GetConnections(ctx context.Context, companyID string) ([]string, error)
}
