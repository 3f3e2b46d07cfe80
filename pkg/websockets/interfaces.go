package websockets

import (
	"context"
)

// ConnectionManager registers and releases client connections. Every
// connection is bound to a single company at registration time.
type ConnectionManager interface {
	AddConnection(ctx context.Context, companyID, connectionID string) error
	RemoveConnection(ctx context.Context, connectionID string) error
}

// ConnectionsGetter lists the connection IDs watching a company.
type ConnectionsGetter interface {
	GetConnections(ctx context.Context, companyID string) ([]string, error)
}

// Publisher pushes a message to the clients watching the given company, and
// no one else.
type Publisher interface {
	Publish(ctx context.Context, companyID string, message Message) error
}
