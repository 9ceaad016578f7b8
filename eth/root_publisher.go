package eth

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dan13ram/teleport-relayer/app"
	"github.com/dan13ram/teleport-relayer/common"
	eth "github.com/dan13ram/teleport-relayer/eth/client"
	"github.com/dan13ram/teleport-relayer/eth/util"
	"github.com/dan13ram/teleport-relayer/metrics"
	"github.com/dan13ram/teleport-relayer/models"
	"github.com/dan13ram/teleport-relayer/notify"
	"github.com/dan13ram/teleport-relayer/teleport"
)

const RootPublisherName = "ROOT PUBLISHER"

// RootPublisherRunner registers sealed batch roots on the destination chain
// and releases the records of confirmed batches.
type RootPublisherRunner struct {
	client         eth.EthereumClient
	registry       eth.RootRegistryContract
	signer         common.Signer
	chainID        *big.Int
	store          teleport.RecordStore
	notifier       notify.Notifier
	confirmations  int64
	gasLimit       uint64
	maxAttempts    int64
	initialBackoff time.Duration
	maxBackoff     time.Duration
	submitTimeout  time.Duration
	now            func() time.Time

	currentBlockNumber int64
}

func (x *RootPublisherRunner) Run() {
	x.UpdateCurrentBlockNumber()
	x.SyncBatches()
}

func (x *RootPublisherRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		BlockNumber: strconv.FormatInt(x.currentBlockNumber, 10),
	}
}

func (x *RootPublisherRunner) UpdateCurrentBlockNumber() {
	res, err := x.client.GetBlockNumber()
	if err != nil {
		log.Error("[", RootPublisherName, "] Error getting block number: ", err)
		return
	}
	x.currentBlockNumber = int64(res)
	log.Info("[", RootPublisherName, "] Current block number: ", x.currentBlockNumber)
}

// FindBatches returns the batches the publisher still has work for, oldest
// first.
func (x *RootPublisherRunner) FindBatches() ([]models.CommitmentBatch, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"status": bson.M{"$in": []string{models.BatchStatusPending, models.BatchStatusSubmitted}}},
			{"status": models.BatchStatusConfirmed, "records_released": false},
		},
	}
	var batches []models.CommitmentBatch
	err := app.DB.FindManySorted(
		models.CollectionCommitmentBatches,
		filter,
		bson.D{{Key: "sealed_at", Value: 1}},
		0,
		&batches,
	)
	if err != nil {
		return nil, fmt.Errorf("error finding batches: %w", err)
	}
	return batches, nil
}

func (x *RootPublisherRunner) SyncBatches() bool {
	batches, err := x.FindBatches()
	if err != nil {
		log.Error("[", RootPublisherName, "] ", err)
		return false
	}
	log.Info("[", RootPublisherName, "] Found ", len(batches), " batches to process")

	success := true
	for i := range batches {
		batch := &batches[i]
		switch batch.Status {
		case models.BatchStatusPending:
			if batch.NextAttemptAt.After(x.now()) {
				log.Debug("[", RootPublisherName, "] Batch ", batch.BatchID, " not due until ", batch.NextAttemptAt)
				continue
			}
			success = x.SubmitBatch(batch) && success
		case models.BatchStatusSubmitted:
			success = x.ConfirmBatch(batch) && success
		case models.BatchStatusConfirmed:
			success = x.ReleaseRecords(batch) && success
		}
	}
	return success
}

// updateBatch applies set only while the batch is still in the status it was
// read in.
func (x *RootPublisherRunner) updateBatch(batch *models.CommitmentBatch, set bson.M) bool {
	set["updated_at"] = x.now()
	filter := bson.M{
		"batch_id": batch.BatchID,
		"status":   batch.Status,
	}
	matched, err := app.DB.UpdateOne(models.CollectionCommitmentBatches, filter, bson.M{"$set": set})
	if err != nil {
		log.Error("[", RootPublisherName, "] Error updating batch ", batch.BatchID, ": ", err)
		return false
	}
	if matched == 0 {
		log.Warn("[", RootPublisherName, "] Batch ", batch.BatchID, " changed concurrently")
		return false
	}
	if status, ok := set["status"].(string); ok && status != batch.Status {
		x.publish(batch.BatchID, status)
		batch.Status = status
	}
	return true
}

func (x *RootPublisherRunner) publish(batchID string, status string) {
	err := x.notifier.Publish(context.Background(), notify.Notification{
		Kind:        notify.KindBatchStatus,
		BatchID:     batchID,
		BatchStatus: status,
		At:          x.now(),
	})
	if err != nil {
		log.Warn("[", RootPublisherName, "] Error publishing status of batch ", batchID, ": ", err)
	}
}

// SubmitBatch sends updateRoot for a due pending batch. A root the registry
// already knows is not sent again.
func (x *RootPublisherRunner) SubmitBatch(batch *models.CommitmentBatch) bool {
	ctx := context.Background()
	root := ethcommon.HexToHash(batch.Root)

	known, err := x.registry.IsRootKnown(&bind.CallOpts{Context: ctx}, root)
	if err != nil {
		log.Error("[", RootPublisherName, "] Error checking root of batch ", batch.BatchID, ": ", err)
		return false
	}

	now := x.now()
	if known {
		log.Info("[", RootPublisherName, "] Batch ", batch.BatchID, ": ", models.ErrIdempotencyConflict, ", skipping submission")
		return x.updateBatch(batch, bson.M{
			"status":         models.BatchStatusSubmitted,
			"submit_tx_hash": "",
			"submitted_at":   now,
			"last_error":     "",
		})
	}

	opts, err := util.NewTransactOpts(ctx, x.signer, x.chainID, x.gasLimit)
	if err != nil {
		log.Error("[", RootPublisherName, "] Error creating transact opts: ", err)
		return false
	}

	attempts := batch.SubmitAttempts + 1
	tx, err := x.registry.UpdateRoot(opts, root)
	if err != nil {
		x.recordFailure(batch, attempts, fmt.Errorf("error sending updateRoot: %w", err))
		return false
	}

	metrics.RootsSubmittedTotal.Inc()
	log.WithFields(log.Fields{
		"batch_id": batch.BatchID,
		"root":     batch.Root,
		"tx_hash":  tx.Hash().Hex(),
		"attempt":  attempts,
	}).Info("[", RootPublisherName, "] Submitted root")

	return x.updateBatch(batch, bson.M{
		"status":          models.BatchStatusSubmitted,
		"submit_tx_hash":  tx.Hash().Hex(),
		"submit_attempts": attempts,
		"submitted_at":    now,
		"last_error":      "",
	})
}

func (x *RootPublisherRunner) timedOut(batch *models.CommitmentBatch) bool {
	return batch.SubmittedAt == nil || x.now().Sub(*batch.SubmittedAt) >= x.submitTimeout
}

// ConfirmBatch waits for a submitted root to be buried under the configured
// number of confirmations.
func (x *RootPublisherRunner) ConfirmBatch(batch *models.CommitmentBatch) bool {
	if batch.SubmitTxHash != "" {
		receipt, err := x.client.GetTransactionReceipt(batch.SubmitTxHash)
		switch {
		case err == nil:
			if receipt.Status != types.ReceiptStatusSuccessful {
				x.recordFailure(batch, batch.SubmitAttempts, fmt.Errorf("updateRoot tx %s reverted", batch.SubmitTxHash))
				return false
			}
			depth := x.currentBlockNumber - receipt.BlockNumber.Int64() + 1
			if depth >= x.confirmations {
				return x.markConfirmed(batch, receipt.BlockNumber.Uint64())
			}
			log.Debug("[", RootPublisherName, "] Batch ", batch.BatchID, " has ", depth, " confirmations")
			return true
		case errors.Is(err, ethereum.NotFound):
			if !x.timedOut(batch) {
				log.Debug("[", RootPublisherName, "] Waiting for receipt of ", batch.SubmitTxHash)
				return true
			}
		default:
			log.Error("[", RootPublisherName, "] Error getting receipt of ", batch.SubmitTxHash, ": ", err)
			return false
		}
	}

	block := x.currentBlockNumber - x.confirmations + 1
	if block < 0 {
		block = 0
	}
	known, err := x.registry.IsRootKnown(
		&bind.CallOpts{Context: context.Background(), BlockNumber: big.NewInt(block)},
		ethcommon.HexToHash(batch.Root),
	)
	if err != nil {
		log.Error("[", RootPublisherName, "] Error checking root of batch ", batch.BatchID, ": ", err)
		return false
	}
	if known {
		return x.markConfirmed(batch, uint64(block))
	}
	if x.timedOut(batch) {
		attempts := batch.SubmitAttempts
		if attempts < 1 {
			attempts = 1
		}
		x.recordFailure(batch, attempts, models.ErrConfirmationTimeout)
		return false
	}
	return true
}

func (x *RootPublisherRunner) markConfirmed(batch *models.CommitmentBatch, block uint64) bool {
	if !x.updateBatch(batch, bson.M{
		"status":          models.BatchStatusConfirmed,
		"confirmed_block": block,
		"confirmed_at":    x.now(),
		"last_error":      "",
	}) {
		return false
	}

	metrics.BatchesConfirmedTotal.Inc()
	log.WithFields(log.Fields{
		"batch_id": batch.BatchID,
		"root":     batch.Root,
		"block":    block,
	}).Info("[", RootPublisherName, "] Confirmed batch")

	return x.ReleaseRecords(batch)
}

// ReleaseRecords moves the records of a confirmed batch to ready_to_claim. It
// is repeated on every run until every record was released.
func (x *RootPublisherRunner) ReleaseRecords(batch *models.CommitmentBatch) bool {
	moved, err := x.store.MarkBatchReady(context.Background(), batch)
	if moved > 0 {
		log.Info("[", RootPublisherName, "] Released ", moved, " records of batch ", batch.BatchID)
	}
	if err != nil {
		log.Error("[", RootPublisherName, "] Error releasing records of batch ", batch.BatchID, ": ", err)
		return false
	}
	return x.updateBatch(batch, bson.M{"records_released": true})
}

func (x *RootPublisherRunner) retryDelay(attempts int64) time.Duration {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = x.initialBackoff
	b.MaxInterval = x.maxBackoff
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()

	delay := b.InitialInterval
	for i := int64(0); i < attempts; i++ {
		delay = b.NextBackOff()
	}
	return delay
}

// recordFailure schedules the next submission of the batch, or fails it for
// good once the attempt budget is spent.
func (x *RootPublisherRunner) recordFailure(batch *models.CommitmentBatch, attempts int64, cause error) {
	if attempts >= x.maxAttempts {
		failure := &models.FatalSubmissionFailure{
			BatchID:  batch.BatchID,
			Attempts: attempts,
			Err:      cause,
		}
		if x.updateBatch(batch, bson.M{
			"status":          models.BatchStatusSubmissionFailed,
			"submit_attempts": attempts,
			"last_error":      failure.Error(),
		}) {
			metrics.BatchesFailedTotal.Inc()
		}
		log.WithFields(log.Fields{
			"batch_id": batch.BatchID,
			"root":     batch.Root,
			"attempts": attempts,
		}).Error("[", RootPublisherName, "] ", failure)
		return
	}

	delay := x.retryDelay(attempts)
	x.updateBatch(batch, bson.M{
		"status":          models.BatchStatusPending,
		"submit_attempts": attempts,
		"submit_tx_hash":  "",
		"next_attempt_at": x.now().Add(delay),
		"last_error":      cause.Error(),
	})
	log.WithFields(log.Fields{
		"batch_id": batch.BatchID,
		"attempts": attempts,
		"retry_in": delay,
	}).Warn("[", RootPublisherName, "] Submission attempt failed: ", cause)
}

func NewRootPublisher(
	wg *sync.WaitGroup,
	signer common.Signer,
	store teleport.RecordStore,
	notifier notify.Notifier,
) app.Service {
	config := app.Config.RootPublisher
	if !config.Enabled {
		log.Debug("[", RootPublisherName, "] Root publisher disabled")
		return app.NewEmptyService(wg)
	}

	log.Debug("[", RootPublisherName, "] Initializing root publisher")

	destination := app.Config.Destination
	client, err := eth.NewClient(eth.DestinationChain(destination))
	if err != nil {
		log.Fatal("[", RootPublisherName, "] Error initializing ethereum client: ", err)
	}
	client.ValidateNetwork()

	chainID, ok := new(big.Int).SetString(destination.ChainID, 10)
	if !ok {
		log.Fatal("[", RootPublisherName, "] Invalid destination chain id: ", destination.ChainID)
	}

	log.Debug("[", RootPublisherName, "] Connecting to root registry at: ", destination.RootRegistryAddress)
	registry, err := eth.NewRootRegistryContract(
		ethcommon.HexToAddress(destination.RootRegistryAddress),
		client.GetClient(),
		client.Chain().RPCTimeout,
	)
	if err != nil {
		log.Fatal("[", RootPublisherName, "] Error initializing root registry contract: ", err)
	}
	log.Debug("[", RootPublisherName, "] Connected to root registry")

	x := newRootPublisherRunner(config, destination, client, registry, signer, chainID, store, notifier)
	x.UpdateCurrentBlockNumber()

	log.Info("[", RootPublisherName, "] Initialized root publisher")

	return app.NewRunnerService(
		RootPublisherName,
		x,
		wg,
		time.Duration(config.IntervalMillis)*time.Millisecond,
	)
}

func newRootPublisherRunner(
	config models.RootPublisherConfig,
	destination models.DestinationConfig,
	client eth.EthereumClient,
	registry eth.RootRegistryContract,
	signer common.Signer,
	chainID *big.Int,
	store teleport.RecordStore,
	notifier notify.Notifier,
) *RootPublisherRunner {
	confirmations := destination.Confirmations
	if confirmations < 1 {
		confirmations = 1
	}
	maxAttempts := config.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &RootPublisherRunner{
		client:         client,
		registry:       registry,
		signer:         signer,
		chainID:        chainID,
		store:          store,
		notifier:       notifier,
		confirmations:  confirmations,
		gasLimit:       destination.GasLimit,
		maxAttempts:    maxAttempts,
		initialBackoff: time.Duration(config.InitialBackoffMillis) * time.Millisecond,
		maxBackoff:     time.Duration(config.MaxBackoffMillis) * time.Millisecond,
		submitTimeout:  time.Duration(config.SubmitTimeoutMillis) * time.Millisecond,
		now:            time.Now,
	}
}
