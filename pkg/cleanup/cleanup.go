package cleanup

import "context"

// OrphanBatch describes uploaded attachment objects that no expense document
// references, left behind when an expense-recording flow failed between the
// uploads and the expense write.
type OrphanBatch struct {
	CompanyId string   `json:"company_id"`
	CycleId   string   `json:"cycle_id"`
	Keys      []string `json:"keys"`
}

// Queue defines the interface for a component that enqueues orphaned
// attachments for asynchronous deletion.
type Queue interface {
	// EnqueueOrphans enqueues a batch of orphaned objects for cleanup.
	EnqueueOrphans(ctx context.Context, batch OrphanBatch) error
}

// NoOpQueue is a queue that does nothing.
type NoOpQueue struct{}

// EnqueueOrphans does nothing.
func (q *NoOpQueue) EnqueueOrphans(ctx context.Context, batch OrphanBatch) error {
	return nil
}
