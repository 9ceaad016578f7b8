package batch

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/dan13ram/teleport-relayer/app"
	"github.com/dan13ram/teleport-relayer/models"
)

var arrivalOrder = bson.D{{Key: "block_number", Value: 1}, {Key: "log_index", Value: 1}}

// PendingQueue indexes the pending events of one source chain in arrival
// order. The events collection stays the source of truth.
type PendingQueue struct {
	sourceChainID string
	events        []models.TeleportEvent
}

func (q *PendingQueue) Refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	filter := bson.M{
		"source_chain_id": q.sourceChainID,
		"status":          models.EventStatusPending,
	}
	events := []models.TeleportEvent{}
	if err := app.DB.FindManySorted(models.CollectionTeleportEvents, filter, arrivalOrder, 0, &events); err != nil {
		return fmt.Errorf("error loading pending events: %w", err)
	}
	q.events = events
	return nil
}

func (q *PendingQueue) Len() int {
	return len(q.events)
}

// Oldest returns the creation time of the oldest queued event.
func (q *PendingQueue) Oldest() (time.Time, bool) {
	if len(q.events) == 0 {
		return time.Time{}, false
	}
	oldest := q.events[0].CreatedAt
	for _, event := range q.events[1:] {
		if event.CreatedAt.Before(oldest) {
			oldest = event.CreatedAt
		}
	}
	return oldest, true
}

// Take removes and returns the first n events.
func (q *PendingQueue) Take(n int) []models.TeleportEvent {
	if n > len(q.events) {
		n = len(q.events)
	}
	taken := q.events[:n:n]
	q.events = q.events[n:]
	return taken
}

func NewPendingQueue(sourceChainID string) *PendingQueue {
	return &PendingQueue{sourceChainID: sourceChainID}
}
