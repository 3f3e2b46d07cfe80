package websockets

import "context"

// NoOpPublisher is a publisher that drops every message. Used when no
// WebSocket API is configured.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, companyID string, message Message) error {
	return nil
}
