package cleanup

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/chris/petty-cash-float/pkg/files"
)

// Processor consumes orphan batches off the queue and deletes the attachment
// objects they name. Orphans are objects uploaded for an expense whose write
// later failed; nothing references them, so deleting is always safe.
type Processor struct {
	Files files.Store
}

// NewProcessor creates a new Processor.
func NewProcessor(fileStore files.Store) *Processor {
	return &Processor{Files: fileStore}
}

// ProcessMessage handles a single queue message body. A body that does not
// parse will never parse on redelivery, so it is logged and dropped rather
// than returned as an error; only delete failures, which a retry can fix, are
// surfaced.
func (p *Processor) ProcessMessage(ctx context.Context, messageID, body string) error {
	var batch OrphanBatch
	if err := json.Unmarshal([]byte(body), &batch); err != nil {
		log.Printf("ERROR: dropping malformed orphan batch message %s: %v", messageID, err)
		return nil
	}

	for _, key := range batch.Keys {
		if err := p.Files.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to delete orphaned attachment %s: %w", key, err)
		}
		log.Printf("Deleted orphaned attachment %s (cycle %s)", key, batch.CycleId)
	}

	return nil
}
