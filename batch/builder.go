package batch

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dan13ram/teleport-relayer/app"
	"github.com/dan13ram/teleport-relayer/merkle"
	"github.com/dan13ram/teleport-relayer/metrics"
	"github.com/dan13ram/teleport-relayer/models"
)

const BuilderName = "COMMITMENT BUILDER"

func LockResource(sourceChainID string) string {
	return "batch:" + sourceChainID
}

// BuilderRunner seals the pending events of one source chain into batches.
type BuilderRunner struct {
	sourceChainID string
	threshold     int
	maxLatency    time.Duration
	queue         *PendingQueue
	now           func() time.Time

	lastBatchNumber uint64
}

func (x *BuilderRunner) Run() {
	x.Build(context.Background())
}

func (x *BuilderRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		BlockNumber: strconv.FormatUint(x.lastBatchNumber, 10),
	}
}

// Build applies the flush policy once under the chain seal lock.
func (x *BuilderRunner) Build(ctx context.Context) bool {
	lockID, err := app.DB.XLock(LockResource(x.sourceChainID))
	if err != nil {
		log.Error("[", BuilderName, "] Error locking ", x.sourceChainID, ": ", err)
		return false
	}
	defer func() {
		if err := app.DB.Unlock(lockID); err != nil {
			log.Error("[", BuilderName, "] Error unlocking ", x.sourceChainID, ": ", err)
		}
	}()

	if _, err := x.Reconcile(ctx); err != nil {
		log.Error("[", BuilderName, "] Error reconciling batches: ", err)
		return false
	}

	if err := x.queue.Refresh(ctx); err != nil {
		log.Error("[", BuilderName, "] ", err)
		return false
	}
	metrics.PendingLeaves.WithLabelValues(x.sourceChainID).Set(float64(x.queue.Len()))
	log.Debug("[", BuilderName, "] Pending leaves for ", x.sourceChainID, ": ", x.queue.Len())

	for x.queue.Len() >= x.threshold {
		if _, err := x.Seal(ctx, x.queue.Take(x.threshold)); err != nil {
			log.Error("[", BuilderName, "] Error sealing batch: ", err)
			return false
		}
	}

	oldest, ok := x.queue.Oldest()
	if ok && x.now().Sub(oldest) >= x.maxLatency {
		log.Debug("[", BuilderName, "] Oldest leaf waited ", x.now().Sub(oldest), ", flushing")
		if _, err := x.Seal(ctx, x.queue.Take(x.queue.Len())); err != nil {
			log.Error("[", BuilderName, "] Error sealing batch: ", err)
			return false
		}
	}

	metrics.PendingLeaves.WithLabelValues(x.sourceChainID).Set(float64(x.queue.Len()))
	return true
}

func (x *BuilderRunner) latestBatch() (*models.CommitmentBatch, error) {
	var batch models.CommitmentBatch
	err := app.DB.FindOneSorted(
		models.CollectionCommitmentBatches,
		bson.M{"source_chain_id": x.sourceChainID},
		bson.D{{Key: "batch_number", Value: -1}},
		&batch,
	)
	if err != nil {
		if app.IsNoDocuments(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding latest batch: %w", err)
	}
	return &batch, nil
}

func markBatched(batch *models.CommitmentBatch, now time.Time) (int64, error) {
	filter := bson.M{
		"source_chain_id": batch.SourceChainID,
		"burn_tx_hash":    bson.M{"$in": batch.BurnTxHashes},
		"status":          models.EventStatusPending,
	}
	update := bson.M{
		"$set": bson.M{
			"status":     models.EventStatusBatched,
			"batch_id":   batch.BatchID,
			"updated_at": now,
		},
	}
	return app.DB.UpdateMany(models.CollectionTeleportEvents, filter, update)
}

// Reconcile marks the events of the latest batch batched again. Seals are
// serialized, so only the latest batch can have events left pending by a crash.
func (x *BuilderRunner) Reconcile(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	batch, err := x.latestBatch()
	if err != nil || batch == nil {
		return 0, err
	}
	x.lastBatchNumber = batch.BatchNumber

	if batch.Status == models.BatchStatusRebatched {
		return 0, nil
	}

	marked, err := markBatched(batch, x.now())
	if err != nil {
		return 0, fmt.Errorf("error marking events of %s: %w", batch.BatchID, err)
	}
	if marked > 0 {
		log.Warn("[", BuilderName, "] Reconciled ", marked, " events of batch ", batch.BatchID)
	}
	return marked, nil
}

// Seal commits events into the next batch of the chain. The caller holds the
// chain seal lock.
func (x *BuilderRunner) Seal(ctx context.Context, events []models.TeleportEvent) (*models.CommitmentBatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, merkle.ErrEmptyTree
	}

	latest, err := x.latestBatch()
	if err != nil {
		return nil, err
	}
	batchNumber := uint64(1)
	if latest != nil {
		batchNumber = latest.BatchNumber + 1
	}

	leaves := make([]common.Hash, len(events))
	hexLeaves := make([]string, len(events))
	burnTxHashes := make([]string, len(events))
	for i, event := range events {
		if event.EncodingVersion != merkle.LeafEncodingVersion {
			return nil, fmt.Errorf("event %s uses unsupported encoding version %d", event.BurnTxHash, event.EncodingVersion)
		}
		leaves[i] = common.HexToHash(event.LeafHash)
		hexLeaves[i] = leaves[i].Hex()
		burnTxHashes[i] = event.BurnTxHash
	}

	tree, err := merkle.NewTree(leaves)
	if err != nil {
		return nil, err
	}

	now := x.now()
	batch := &models.CommitmentBatch{
		BatchID:         models.FormatBatchID(x.sourceChainID, batchNumber),
		SourceChainID:   x.sourceChainID,
		BatchNumber:     batchNumber,
		Leaves:          hexLeaves,
		BurnTxHashes:    burnTxHashes,
		Root:            tree.Root().Hex(),
		EncodingVersion: merkle.LeafEncodingVersion,
		TreeVersion:     merkle.TreeVersion,
		Status:          models.BatchStatusPending,
		NextAttemptAt:   now,
		SealedAt:        now,
		UpdatedAt:       now,
	}

	id, err := app.DB.InsertOne(models.CollectionCommitmentBatches, batch)
	if err != nil {
		return nil, fmt.Errorf("error inserting batch %s: %w", batch.BatchID, err)
	}
	batch.Id = &id
	x.lastBatchNumber = batchNumber

	marked, err := markBatched(batch, now)
	if err != nil {
		// healed by Reconcile on the next run
		return nil, fmt.Errorf("error marking events of %s: %w", batch.BatchID, err)
	}

	metrics.BatchesSealedTotal.WithLabelValues(x.sourceChainID).Inc()
	log.WithFields(log.Fields{
		"batch_id": batch.BatchID,
		"leaves":   len(leaves),
		"marked":   marked,
		"root":     batch.Root,
	}).Info("[", BuilderName, "] Sealed batch")
	return batch, nil
}

func newBuilderRunner(sourceChainID string, config models.CommitmentConfig) *BuilderRunner {
	threshold := config.BatchSizeThreshold
	if threshold < 1 {
		threshold = 1
	}
	return &BuilderRunner{
		sourceChainID: sourceChainID,
		threshold:     threshold,
		maxLatency:    time.Duration(config.MaxLatencyMillis) * time.Millisecond,
		queue:         NewPendingQueue(sourceChainID),
		now:           time.Now,
	}
}

func NewBuilder(chain models.SourceChainConfig, wg *sync.WaitGroup) app.Service {
	if !app.Config.CommitmentBuilder.Enabled {
		log.Debug("[", BuilderName, "] Commitment builder disabled")
		return app.NewEmptyService(wg)
	}

	log.Debug("[", BuilderName, "] Initializing commitment builder for ", chain.Name)

	x := newBuilderRunner(chain.ChainID, app.Config.Commitment)

	log.Info("[", BuilderName, "] Initialized commitment builder for ", chain.Name)

	return app.NewRunnerService(
		fmt.Sprintf("%s %s", BuilderName, chain.Name),
		x,
		wg,
		time.Duration(app.Config.CommitmentBuilder.IntervalMillis)*time.Millisecond,
	)
}
