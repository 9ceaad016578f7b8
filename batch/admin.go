package batch

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dan13ram/teleport-relayer/app"
	"github.com/dan13ram/teleport-relayer/models"
)

func findFailedBatch(batchID string) (*models.CommitmentBatch, error) {
	var batch models.CommitmentBatch
	if err := app.DB.FindOne(models.CollectionCommitmentBatches, bson.M{"batch_id": batchID}, &batch); err != nil {
		if app.IsNoDocuments(err) {
			return nil, fmt.Errorf("batch %s: %w", batchID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("error finding batch %s: %w", batchID, err)
	}
	if batch.Status != models.BatchStatusSubmissionFailed {
		return nil, fmt.Errorf("batch %s is %s, not %s", batchID, batch.Status, models.BatchStatusSubmissionFailed)
	}
	return &batch, nil
}

// RetryBatch puts a submission_failed batch back in front of the publisher
// with a fresh attempt budget.
func RetryBatch(ctx context.Context, batchID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	batch, err := findFailedBatch(batchID)
	if err != nil {
		return err
	}

	now := time.Now()
	filter := bson.M{"batch_id": batch.BatchID, "status": models.BatchStatusSubmissionFailed}
	update := bson.M{
		"$set": bson.M{
			"status":          models.BatchStatusPending,
			"submit_attempts": 0,
			"submit_tx_hash":  "",
			"next_attempt_at": now,
			"last_error":      "",
			"updated_at":      now,
		},
	}
	matched, err := app.DB.UpdateOne(models.CollectionCommitmentBatches, filter, update)
	if err != nil {
		return fmt.Errorf("error resetting batch %s: %w", batchID, err)
	}
	if matched == 0 {
		return fmt.Errorf("batch %s changed concurrently", batchID)
	}

	log.Info("[", BuilderName, "] Batch ", batchID, " queued for resubmission")
	return nil
}

// Rebatch retires a submission_failed batch and returns its events to the
// pending queue so the builder seals them again.
func Rebatch(ctx context.Context, batchID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	batch, err := findFailedBatch(batchID)
	if err != nil {
		return 0, err
	}

	lockID, err := app.DB.XLock(LockResource(batch.SourceChainID))
	if err != nil {
		return 0, fmt.Errorf("error locking %s: %w", batch.SourceChainID, err)
	}
	defer func() {
		if err := app.DB.Unlock(lockID); err != nil {
			log.Error("[", BuilderName, "] Error unlocking ", batch.SourceChainID, ": ", err)
		}
	}()

	now := time.Now()
	matched, err := app.DB.UpdateOne(
		models.CollectionCommitmentBatches,
		bson.M{"batch_id": batch.BatchID, "status": models.BatchStatusSubmissionFailed},
		bson.M{"$set": bson.M{"status": models.BatchStatusRebatched, "updated_at": now}},
	)
	if err != nil {
		return 0, fmt.Errorf("error retiring batch %s: %w", batchID, err)
	}
	if matched == 0 {
		return 0, fmt.Errorf("batch %s changed concurrently", batchID)
	}

	released, err := app.DB.UpdateMany(
		models.CollectionTeleportEvents,
		bson.M{"batch_id": batch.BatchID, "status": models.EventStatusBatched},
		bson.M{"$set": bson.M{"status": models.EventStatusPending, "batch_id": "", "updated_at": now}},
	)
	if err != nil {
		return 0, fmt.Errorf("error releasing events of %s: %w", batchID, err)
	}

	log.Info("[", BuilderName, "] Batch ", batchID, " rebatched, released ", released, " events")
	return released, nil
}
