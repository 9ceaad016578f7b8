package eth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/teleport-relayer/app"
	eth "github.com/dan13ram/teleport-relayer/eth/client"
	"github.com/dan13ram/teleport-relayer/models"
	"github.com/dan13ram/teleport-relayer/teleport"
)

const (
	TxWatcherName = "TX WATCHER"

	// records checked per status and run
	TxWatcherBatchSize int64 = 100
)

// TxWatcherRunner fails burns and claims whose transactions reverted or were
// not confirmed in time, and completes claims whose receipts carry the mint of
// the record's leaf at confirmation depth.
type TxWatcherRunner struct {
	sources       map[string]eth.EthereumClient
	destination   eth.EthereumClient
	claims        eth.DestinationTeleporterContract
	confirmations int64
	store         teleport.RecordStore
	burnTimeout   time.Duration
	claimTimeout  time.Duration
	now           func() time.Time
}

func (x *TxWatcherRunner) Run() {
	x.CheckBurning()
	x.CheckClaiming()
}

func (x *TxWatcherRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{}
}

// handled reports whether a transition error only means another component
// moved the record first.
func handled(err error) bool {
	return errors.Is(err, models.ErrInvalidTransition) || errors.Is(err, models.ErrStaleRecord)
}

func (x *TxWatcherRunner) fail(ctx context.Context, record models.TeleportRecord, reason models.FailureReason, message string) bool {
	_, err := x.store.Fail(ctx, record.BurnTxHash, reason, message)
	if err != nil {
		if handled(err) {
			log.Debug("[", TxWatcherName, "] Record ", record.BurnTxHash, " moved before failing: ", err)
			return true
		}
		log.Error("[", TxWatcherName, "] Error failing record ", record.BurnTxHash, ": ", err)
		return false
	}
	log.WithFields(log.Fields{
		"burn_tx_hash": record.BurnTxHash,
		"status":       record.Status,
		"reason":       reason,
	}).Warn("[", TxWatcherName, "] Failed teleport: ", message)
	return true
}

// receiptStatus returns the receipt of txHash, or nil while it is not mined.
func receiptStatus(client eth.EthereumClient, txHash string) (*types.Receipt, error) {
	receipt, err := client.GetTransactionReceipt(txHash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, nil
	}
	return receipt, err
}

func (x *TxWatcherRunner) CheckBurning() bool {
	ctx := context.Background()
	records, err := x.store.FindByStatus(ctx, models.TeleportStatusBurning, TxWatcherBatchSize)
	if err != nil {
		log.Error("[", TxWatcherName, "] Error finding burning records: ", err)
		return false
	}
	log.Debug("[", TxWatcherName, "] Found ", len(records), " burning records")

	success := true
	for _, record := range records {
		if client, ok := x.sources[record.SourceChainID]; ok {
			receipt, err := receiptStatus(client, record.BurnTxHash)
			if err != nil {
				log.Error("[", TxWatcherName, "] Error getting burn receipt ", record.BurnTxHash, ": ", err)
				success = false
				continue
			}
			if receipt != nil {
				if receipt.Status != types.ReceiptStatusSuccessful {
					success = x.fail(ctx, record, models.FailureReasonTxReverted, "burn transaction reverted") && success
					continue
				}
				log.Debug("[", TxWatcherName, "] Burn ", record.BurnTxHash, " mined, waiting for ingestion")
				continue
			}
		}

		if record.BurningAt != nil && x.now().Sub(*record.BurningAt) >= x.burnTimeout {
			message := fmt.Sprintf("burn not observed within %s", x.burnTimeout)
			success = x.fail(ctx, record, models.FailureReasonConfirmationTimeout, message) && success
		}
	}
	return success
}

// claimsLeaf reports whether the receipt carries a TeleportClaimed log of the
// destination teleporter for leaf.
func (x *TxWatcherRunner) claimsLeaf(receipt *types.Receipt, leaf string) bool {
	for _, l := range receipt.Logs {
		if l == nil {
			continue
		}
		claimed, err := x.claims.ParseTeleportClaimed(*l)
		if err != nil {
			continue
		}
		if strings.EqualFold(common.Hash(claimed.Leaf).Hex(), leaf) {
			return true
		}
	}
	return false
}

func (x *TxWatcherRunner) CheckClaiming() bool {
	ctx := context.Background()
	records, err := x.store.FindByStatus(ctx, models.TeleportStatusClaiming, TxWatcherBatchSize)
	if err != nil {
		log.Error("[", TxWatcherName, "] Error finding claiming records: ", err)
		return false
	}
	log.Debug("[", TxWatcherName, "] Found ", len(records), " claiming records")

	var head uint64
	success := true
	for _, record := range records {
		receipt, err := receiptStatus(x.destination, record.ClaimTxHash)
		if err != nil {
			log.Error("[", TxWatcherName, "] Error getting claim receipt ", record.ClaimTxHash, ": ", err)
			success = false
			continue
		}

		timedOut := record.ClaimingAt != nil && x.now().Sub(*record.ClaimingAt) >= x.claimTimeout

		switch {
		case receipt == nil:
			if timedOut {
				message := fmt.Sprintf("claim %s not confirmed within %s", record.ClaimTxHash, x.claimTimeout)
				success = x.fail(ctx, record, models.FailureReasonConfirmationTimeout, message) && success
			}
			continue
		case receipt.Status != types.ReceiptStatusSuccessful:
			message := fmt.Sprintf("claim %s reverted", record.ClaimTxHash)
			success = x.fail(ctx, record, models.FailureReasonTxReverted, message) && success
			continue
		}

		if head == 0 {
			if head, err = x.destination.GetBlockNumber(); err != nil {
				log.Error("[", TxWatcherName, "] Error getting destination block number: ", err)
				return false
			}
		}
		if receipt.BlockNumber == nil || int64(head)-receipt.BlockNumber.Int64()+1 < x.confirmations {
			log.Debug("[", TxWatcherName, "] Claim ", record.ClaimTxHash, " not confirmed yet")
			continue
		}

		if record.Event == nil || !x.claimsLeaf(receipt, record.Event.LeafHash) {
			// a real claim from another tx still reaches the claim monitor
			if timedOut {
				message := fmt.Sprintf("claim %s did not mint the teleported token", record.ClaimTxHash)
				success = x.fail(ctx, record, models.FailureReasonConfirmationTimeout, message) && success
				continue
			}
			log.Warn("[", TxWatcherName, "] Claim ", record.ClaimTxHash, " of ", record.BurnTxHash, " carries no matching claim log")
			continue
		}

		if _, err := x.store.MarkCompleted(ctx, record.BurnTxHash, record.ClaimTxHash); err != nil {
			if handled(err) {
				log.Debug("[", TxWatcherName, "] Record ", record.BurnTxHash, " moved before completing: ", err)
				continue
			}
			log.Error("[", TxWatcherName, "] Error completing record ", record.BurnTxHash, ": ", err)
			success = false
			continue
		}
		log.Info("[", TxWatcherName, "] Completed teleport ", record.BurnTxHash, " from claim receipt")
	}
	return success
}

func NewTxWatcher(wg *sync.WaitGroup, store teleport.RecordStore) app.Service {
	config := app.Config.TxWatcher
	if !config.Enabled {
		log.Debug("[", TxWatcherName, "] Tx watcher disabled")
		return app.NewEmptyService(wg)
	}

	log.Debug("[", TxWatcherName, "] Initializing tx watcher")

	sources := make(map[string]eth.EthereumClient, len(app.Config.SourceChains))
	for _, chain := range app.Config.SourceChains {
		client, err := eth.NewClient(eth.SourceChain(chain))
		if err != nil {
			log.Fatal("[", TxWatcherName, "] Error initializing client for ", chain.Name, ": ", err)
		}
		sources[chain.ChainID] = client
	}

	destination, err := eth.NewClient(eth.DestinationChain(app.Config.Destination))
	if err != nil {
		log.Fatal("[", TxWatcherName, "] Error initializing destination client: ", err)
	}
	destination.ValidateNetwork()

	claims, err := eth.NewDestinationTeleporterContract(
		common.HexToAddress(app.Config.Destination.TeleporterAddress),
		destination.GetClient(),
		destination.Chain().RPCTimeout,
	)
	if err != nil {
		log.Fatal("[", TxWatcherName, "] Error initializing destination teleporter contract: ", err)
	}

	confirmations := app.Config.Destination.Confirmations
	if confirmations < 1 {
		confirmations = 1
	}

	x := &TxWatcherRunner{
		sources:       sources,
		destination:   destination,
		claims:        claims,
		confirmations: confirmations,
		store:         store,
		burnTimeout:   time.Duration(config.BurnTimeoutMillis) * time.Millisecond,
		claimTimeout:  time.Duration(config.ClaimTimeoutMillis) * time.Millisecond,
		now:           time.Now,
	}

	log.Info("[", TxWatcherName, "] Initialized tx watcher")

	return app.NewRunnerService(
		TxWatcherName,
		x,
		wg,
		time.Duration(config.IntervalMillis)*time.Millisecond,
	)
}
