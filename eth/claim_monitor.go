package eth

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dan13ram/teleport-relayer/app"
	eth "github.com/dan13ram/teleport-relayer/eth/client"
	"github.com/dan13ram/teleport-relayer/models"
	"github.com/dan13ram/teleport-relayer/teleport"
)

const ClaimMonitorName = "CLAIM MONITOR"

// ClaimMonitorRunner closes teleport records from claim events of the
// destination teleporter.
type ClaimMonitorRunner struct {
	startBlockNumber   int64
	currentBlockNumber int64
	confirmations      int64
	contract           eth.DestinationTeleporterContract
	client             eth.EthereumClient
	store              teleport.RecordStore
}

func (x *ClaimMonitorRunner) Run() {
	x.UpdateCurrentBlockNumber()
	x.SyncTxs()
}

func (x *ClaimMonitorRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		BlockNumber: strconv.FormatInt(x.startBlockNumber, 10),
	}
}

func (x *ClaimMonitorRunner) UpdateCurrentBlockNumber() {
	res, err := x.client.GetBlockNumber()
	if err != nil {
		log.Error("[", ClaimMonitorName, "] Error getting block number: ", err)
		return
	}
	safe := int64(res) - x.confirmations
	if safe < 0 {
		safe = 0
	}
	x.currentBlockNumber = safe
	log.Info("[", ClaimMonitorName, "] Current safe block number: ", x.currentBlockNumber)
}

// claimCandidates returns the records whose burn produced leaf, newest first.
func (x *ClaimMonitorRunner) claimCandidates(ctx context.Context, leaf string) ([]*models.TeleportRecord, error) {
	var events []models.TeleportEvent
	err := app.DB.FindManySorted(
		models.CollectionTeleportEvents,
		bson.M{"leaf_hash": leaf},
		bson.D{{Key: "block_number", Value: -1}, {Key: "log_index", Value: -1}},
		0,
		&events,
	)
	if err != nil {
		return nil, err
	}

	records := make([]*models.TeleportRecord, 0, len(events))
	for _, event := range events {
		record, err := x.store.Get(ctx, event.BurnTxHash)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				continue
			}
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// pickClaimed chooses the record a claim belongs to when several burns share
// a leaf: the one that registered the claim tx, then one already claiming,
// then one ready to claim.
func pickClaimed(records []*models.TeleportRecord, claimTxHash string) *models.TeleportRecord {
	for _, record := range records {
		if record.Status == models.TeleportStatusClaiming && record.ClaimTxHash == claimTxHash {
			return record
		}
	}
	for _, status := range []models.TeleportStatus{models.TeleportStatusClaiming, models.TeleportStatusReadyToClaim} {
		for _, record := range records {
			if record.Status == status {
				return record
			}
		}
	}
	return nil
}

func (x *ClaimMonitorRunner) HandleClaimEvent(event *eth.TeleportClaimed) bool {
	if event == nil || event.TokenId == nil {
		log.Warn("[", ClaimMonitorName, "] Skipping undecodable claim log")
		return true
	}

	ctx := context.Background()
	leaf := common.Hash(event.Leaf).Hex()
	claimTxHash := event.Raw.TxHash.Hex()
	log.Debug("[", ClaimMonitorName, "] Handling claim of leaf ", leaf, " in tx ", claimTxHash)

	records, err := x.claimCandidates(ctx, leaf)
	if err != nil {
		log.Error("[", ClaimMonitorName, "] Error finding records of leaf ", leaf, ": ", err)
		return false
	}
	if len(records) == 0 {
		log.Warn("[", ClaimMonitorName, "] Claim of unknown leaf ", leaf, " in tx ", claimTxHash)
		return true
	}

	record := pickClaimed(records, claimTxHash)
	if record == nil {
		for _, r := range records {
			if !r.Status.IsTerminal() {
				// the batch of the claimed leaf is not released yet
				log.Info("[", ClaimMonitorName, "] Record ", r.BurnTxHash, " is ", r.Status, ", retrying claim later")
				return false
			}
		}
		log.Debug("[", ClaimMonitorName, "] Claim of leaf ", leaf, " already handled")
		return true
	}

	if record.Status == models.TeleportStatusReadyToClaim {
		if _, err := x.store.MarkClaiming(ctx, record.BurnTxHash, claimTxHash); err != nil {
			log.Error("[", ClaimMonitorName, "] Error marking ", record.BurnTxHash, " claiming: ", err)
			return false
		}
	}
	if _, err := x.store.MarkCompleted(ctx, record.BurnTxHash, claimTxHash); err != nil {
		log.Error("[", ClaimMonitorName, "] Error marking ", record.BurnTxHash, " completed: ", err)
		return false
	}

	log.Info("[", ClaimMonitorName, "] Completed teleport ", record.BurnTxHash, " with claim ", claimTxHash)
	return true
}

func (x *ClaimMonitorRunner) SyncBlocks(startBlockNumber uint64, endBlockNumber uint64) bool {
	events, err := x.contract.FilterTeleportClaimed(&bind.FilterOpts{
		Start:   startBlockNumber,
		End:     &endBlockNumber,
		Context: context.Background(),
	})
	if err != nil {
		log.Error("[", ClaimMonitorName, "] Error while syncing claim events: ", err)
		return false
	}

	success := true
	for _, event := range events {
		success = x.HandleClaimEvent(event) && success
	}
	return success
}

func (x *ClaimMonitorRunner) SyncTxs() bool {
	if x.currentBlockNumber <= x.startBlockNumber {
		log.Info("[", ClaimMonitorName, "] No new blocks to sync")
		return true
	}

	success := true
	for from := x.startBlockNumber + 1; from <= x.currentBlockNumber; from += eth.MAX_QUERY_BLOCKS {
		to := from + eth.MAX_QUERY_BLOCKS - 1
		if to > x.currentBlockNumber {
			to = x.currentBlockNumber
		}
		log.Info("[", ClaimMonitorName, "] Syncing claim txs from blockNumber: ", from, " to blockNumber: ", to)
		success = x.SyncBlocks(uint64(from), uint64(to)) && success
	}

	if !success {
		return false
	}

	x.startBlockNumber = x.currentBlockNumber
	if err := SaveCheckpoint(ClaimMonitorName, x.startBlockNumber); err != nil {
		log.Error("[", ClaimMonitorName, "] Error saving checkpoint: ", err)
	}
	return true
}

func (x *ClaimMonitorRunner) InitStartBlockNumber(lastHealth models.ServiceHealth, configured int64) {
	if startBlockNumber, ok := startBlockNumber(ClaimMonitorName, lastHealth, configured); ok {
		x.startBlockNumber = startBlockNumber
	} else {
		log.Warn("[", ClaimMonitorName, "] Found invalid start block number, updating to current block number")
		x.startBlockNumber = x.currentBlockNumber
	}
	log.Info("[", ClaimMonitorName, "] Start block number: ", x.startBlockNumber)
}

func NewClaimMonitor(wg *sync.WaitGroup, lastHealth models.ServiceHealth, store teleport.RecordStore) app.Service {
	if !app.Config.ClaimMonitor.Enabled {
		log.Debug("[", ClaimMonitorName, "] Claim monitor disabled")
		return app.NewEmptyService(wg)
	}

	log.Debug("[", ClaimMonitorName, "] Initializing claim monitor")

	destination := app.Config.Destination
	client, err := eth.NewClient(eth.DestinationChain(destination))
	if err != nil {
		log.Fatal("[", ClaimMonitorName, "] Error initializing ethereum client: ", err)
	}
	client.ValidateNetwork()

	log.Debug("[", ClaimMonitorName, "] Connecting to destination teleporter at: ", destination.TeleporterAddress)
	contract, err := eth.NewDestinationTeleporterContract(
		common.HexToAddress(destination.TeleporterAddress),
		client.GetClient(),
		client.Chain().RPCTimeout,
	)
	if err != nil {
		log.Fatal("[", ClaimMonitorName, "] Error initializing destination teleporter contract: ", err)
	}
	log.Debug("[", ClaimMonitorName, "] Connected to destination teleporter")

	x := &ClaimMonitorRunner{
		confirmations: destination.Confirmations,
		contract:      contract,
		client:        client,
		store:         store,
	}

	x.UpdateCurrentBlockNumber()
	x.InitStartBlockNumber(lastHealth, destination.StartBlockNumber)

	log.Info("[", ClaimMonitorName, "] Initialized claim monitor")

	return app.NewRunnerService(
		ClaimMonitorName,
		x,
		wg,
		time.Duration(app.Config.ClaimMonitor.IntervalMillis)*time.Millisecond,
	)
}
