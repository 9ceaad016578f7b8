package eth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dan13ram/teleport-relayer/app"
	eth "github.com/dan13ram/teleport-relayer/eth/client"
	"github.com/dan13ram/teleport-relayer/eth/util"
	"github.com/dan13ram/teleport-relayer/metrics"
	"github.com/dan13ram/teleport-relayer/models"
	"github.com/dan13ram/teleport-relayer/teleport"
)

const TeleportMonitorName = "TELEPORT MONITOR"

// TeleportMonitorRunner ingests burn events of one source chain.
type TeleportMonitorRunner struct {
	name               string
	sourceChainID      string
	confirmations      int64
	startBlockNumber   int64
	currentBlockNumber int64
	contract           eth.SourceTeleporterContract
	client             eth.EthereumClient
	store              teleport.RecordStore
	now                func() time.Time
}

func (x *TeleportMonitorRunner) Run() {
	x.UpdateCurrentBlockNumber()
	x.SyncTxs()
}

func (x *TeleportMonitorRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		BlockNumber: strconv.FormatInt(x.startBlockNumber, 10),
	}
}

// UpdateCurrentBlockNumber moves the sync target to the head minus the
// confirmation depth.
func (x *TeleportMonitorRunner) UpdateCurrentBlockNumber() {
	res, err := x.client.GetBlockNumber()
	if err != nil {
		log.Error("[", x.name, "] Error getting block number: ", err)
		return
	}
	safe := int64(res) - x.confirmations
	if safe < 0 {
		safe = 0
	}
	x.currentBlockNumber = safe
	log.Info("[", x.name, "] Current safe block number: ", x.currentBlockNumber)
}

func (x *TeleportMonitorRunner) HandleTeleportEvent(event *eth.TeleportInitiated) bool {
	doc, err := util.CreateTeleportEvent(x.sourceChainID, event, x.now())
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			metrics.EventsSkippedTotal.WithLabelValues(x.sourceChainID, validationErr.Field).Inc()
		}
		if event != nil {
			log.Warn("[", x.name, "] Skipping burn log ", event.Raw.TxHash, " ", event.Raw.Index, ": ", err)
		} else {
			log.Warn("[", x.name, "] Skipping burn log: ", err)
		}
		return true
	}

	log.Debug("[", x.name, "] Handling burn event: ", doc.BurnTxHash, " ", doc.LogIndex)

	_, err = app.DB.InsertOne(models.CollectionTeleportEvents, doc)
	if err != nil {
		if !app.IsDuplicateKeyError(err) {
			log.Error("[", x.name, "] Error while storing burn event in db: ", err)
			return false
		}
		var stored models.TeleportEvent
		filter := bson.M{"source_chain_id": doc.SourceChainID, "burn_tx_hash": doc.BurnTxHash}
		if err := app.DB.FindOne(models.CollectionTeleportEvents, filter, &stored); err != nil {
			log.Error("[", x.name, "] Error finding stored burn event: ", err)
			return false
		}
		if stored.LogIndex != doc.LogIndex {
			// one teleport per burn tx, later burns of the same tx are dropped
			metrics.EventsSkippedTotal.WithLabelValues(x.sourceChainID, "log_index").Inc()
			log.WithFields(log.Fields{
				"burn_tx_hash":     doc.BurnTxHash,
				"log_index":        doc.LogIndex,
				"stored_log_index": stored.LogIndex,
				"token_id":         doc.TokenID,
			}).Warn("[", x.name, "] Dropping second burn in the same tx")
			return true
		}
		log.Info("[", x.name, "] Found duplicate burn event: ", doc.BurnTxHash, " ", doc.LogIndex)
	} else {
		metrics.EventsIngestedTotal.WithLabelValues(x.sourceChainID).Inc()
		log.Info("[", x.name, "] Stored burn event: ", doc.BurnTxHash, " ", doc.LogIndex)
	}

	if _, err := x.store.RecordBurnDetected(context.Background(), doc); err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			log.Warn("[", x.name, "] Burn ", doc.BurnTxHash, " does not match its teleport record: ", err)
			return true
		}
		log.Error("[", x.name, "] Error updating teleport record of ", doc.BurnTxHash, ": ", err)
		return false
	}
	return true
}

func (x *TeleportMonitorRunner) SyncBlocks(startBlockNumber uint64, endBlockNumber uint64) bool {
	events, err := x.contract.FilterTeleportInitiated(&bind.FilterOpts{
		Start:   startBlockNumber,
		End:     &endBlockNumber,
		Context: context.Background(),
	})
	if err != nil {
		log.Error("[", x.name, "] Error while syncing burn events: ", err)
		return false
	}

	success := true
	for _, event := range events {
		success = x.HandleTeleportEvent(event) && success
	}
	return success
}

// SyncTxs ingests every block after the checkpoint up to the safe head. The
// checkpoint only moves when the whole range succeeded.
func (x *TeleportMonitorRunner) SyncTxs() bool {
	if x.currentBlockNumber <= x.startBlockNumber {
		log.Info("[", x.name, "] No new blocks to sync")
		return true
	}

	success := true
	for from := x.startBlockNumber + 1; from <= x.currentBlockNumber; from += eth.MAX_QUERY_BLOCKS {
		to := from + eth.MAX_QUERY_BLOCKS - 1
		if to > x.currentBlockNumber {
			to = x.currentBlockNumber
		}
		log.Info("[", x.name, "] Syncing burn txs from blockNumber: ", from, " to blockNumber: ", to)
		success = x.SyncBlocks(uint64(from), uint64(to)) && success
	}

	if !success {
		return false
	}

	x.startBlockNumber = x.currentBlockNumber
	if err := SaveCheckpoint(x.name, x.startBlockNumber); err != nil {
		log.Error("[", x.name, "] Error saving checkpoint: ", err)
	}
	return true
}

func (x *TeleportMonitorRunner) InitStartBlockNumber(lastHealth models.ServiceHealth, configured int64) {
	if startBlockNumber, ok := startBlockNumber(x.name, lastHealth, configured); ok {
		x.startBlockNumber = startBlockNumber
	} else {
		log.Warn("[", x.name, "] Found invalid start block number, updating to current block number")
		x.startBlockNumber = x.currentBlockNumber
	}
	log.Info("[", x.name, "] Start block number: ", x.startBlockNumber)
}

func NewTeleportMonitor(
	chain models.SourceChainConfig,
	wg *sync.WaitGroup,
	lastHealth models.ServiceHealth,
	store teleport.RecordStore,
) app.Service {
	if !app.Config.TeleportMonitor.Enabled {
		log.Debug("[", TeleportMonitorName, "] Teleport monitor disabled")
		return app.NewEmptyService(wg)
	}

	name := fmt.Sprintf("%s %s", TeleportMonitorName, chain.Name)
	log.Debug("[", name, "] Initializing teleport monitor")

	client, err := eth.NewClient(eth.SourceChain(chain))
	if err != nil {
		log.Fatal("[", name, "] Error initializing ethereum client: ", err)
	}
	client.ValidateNetwork()

	log.Debug("[", name, "] Connecting to teleporter contract at: ", chain.TeleporterAddress)
	contract, err := eth.NewSourceTeleporterContract(
		common.HexToAddress(chain.TeleporterAddress),
		client.GetClient(),
		client.Chain().RPCTimeout,
	)
	if err != nil {
		log.Fatal("[", name, "] Error initializing teleporter contract: ", err)
	}
	log.Debug("[", name, "] Connected to teleporter contract")

	x := &TeleportMonitorRunner{
		name:          name,
		sourceChainID: chain.ChainID,
		confirmations: chain.Confirmations,
		contract:      contract,
		client:        client,
		store:         store,
		now:           time.Now,
	}

	x.UpdateCurrentBlockNumber()
	x.InitStartBlockNumber(lastHealth, chain.StartBlockNumber)

	log.Info("[", name, "] Initialized teleport monitor")

	return app.NewRunnerService(
		name,
		x,
		wg,
		time.Duration(app.Config.TeleportMonitor.IntervalMillis)*time.Millisecond,
	)
}
