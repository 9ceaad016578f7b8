package eth

import (
	"errors"
	"io"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dan13ram/teleport-relayer/app"
	appMocks "github.com/dan13ram/teleport-relayer/app/mocks"
	eth "github.com/dan13ram/teleport-relayer/eth/client"
	clientMocks "github.com/dan13ram/teleport-relayer/eth/client/mocks"
	"github.com/dan13ram/teleport-relayer/models"
	teleportMocks "github.com/dan13ram/teleport-relayer/teleport/mocks"
)

func init() {
	log.SetOutput(io.Discard)
}

var (
	testNow   = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	testOwner = common.HexToAddress("0x1111111111111111111111111111111111111111")
)

func NewTestTeleportMonitor(
	t *testing.T,
	mockContract *clientMocks.MockSourceTeleporterContract,
	mockClient *clientMocks.MockEthereumClient,
	mockStore *teleportMocks.MockRecordStore,
) *TeleportMonitorRunner {
	return &TeleportMonitorRunner{
		name:               "TELEPORT MONITOR source-one",
		sourceChainID:      "31338",
		confirmations:      2,
		startBlockNumber:   0,
		currentBlockNumber: 100,
		contract:           mockContract,
		client:             mockClient,
		store:              mockStore,
		now:                func() time.Time { return testNow },
	}
}

func teleportInitiated(tokenID int64, txHash common.Hash) *eth.TeleportInitiated {
	return &eth.TeleportInitiated{
		TokenId:   big.NewInt(tokenID),
		Owner:     testOwner,
		Timestamp: big.NewInt(1700000000),
		TokenURI:  "ipfs://token",
		Raw:       types.Log{TxHash: txHash, BlockNumber: 10, Index: 1},
	}
}

func expectStoredEvent(mockDB *appMocks.MockDatabase, txHash common.Hash, logIndex uint64) {
	filter := bson.M{"source_chain_id": "31338", "burn_tx_hash": txHash.Hex()}
	mockDB.EXPECT().FindOne(models.CollectionTeleportEvents, filter, mock.Anything).
		Run(func(collection string, filter interface{}, result interface{}) {
			*result.(*models.TeleportEvent) = models.TeleportEvent{BurnTxHash: txHash.Hex(), LogIndex: logIndex}
		}).
		Return(nil)
}

func TestTeleportMonitorStatus(t *testing.T) {
	x := NewTestTeleportMonitor(t, nil, nil, nil)
	x.startBlockNumber = 42

	assert.Equal(t, "42", x.Status().BlockNumber)
}

func TestTeleportMonitorUpdateCurrentBlockNumber(t *testing.T) {

	t.Run("No Error", func(t *testing.T) {
		mockClient := clientMocks.NewMockEthereumClient(t)
		x := NewTestTeleportMonitor(t, nil, mockClient, nil)

		mockClient.EXPECT().GetBlockNumber().Return(uint64(200), nil)

		x.UpdateCurrentBlockNumber()

		assert.Equal(t, int64(198), x.currentBlockNumber)
	})

	t.Run("Below Confirmations", func(t *testing.T) {
		mockClient := clientMocks.NewMockEthereumClient(t)
		x := NewTestTeleportMonitor(t, nil, mockClient, nil)

		mockClient.EXPECT().GetBlockNumber().Return(uint64(1), nil)

		x.UpdateCurrentBlockNumber()

		assert.Equal(t, int64(0), x.currentBlockNumber)
	})

	t.Run("With Error", func(t *testing.T) {
		mockClient := clientMocks.NewMockEthereumClient(t)
		x := NewTestTeleportMonitor(t, nil, mockClient, nil)

		mockClient.EXPECT().GetBlockNumber().Return(uint64(0), errors.New("error"))

		x.UpdateCurrentBlockNumber()

		assert.Equal(t, int64(100), x.currentBlockNumber)
	})
}

func TestTeleportMonitorHandleTeleportEvent(t *testing.T) {
	txHash := common.HexToHash("0x3a7bd3e2360a3d29eea436fcfb7e44c735d117c42d1c1835420b6b9942dd4f1b")

	t.Run("Nil Event", func(t *testing.T) {
		mockStore := teleportMocks.NewMockRecordStore(t)
		x := NewTestTeleportMonitor(t, nil, nil, mockStore)

		success := x.HandleTeleportEvent(nil)

		assert.True(t, success)
	})

	t.Run("Malformed Event", func(t *testing.T) {
		mockStore := teleportMocks.NewMockRecordStore(t)
		x := NewTestTeleportMonitor(t, nil, nil, mockStore)

		event := teleportInitiated(1, txHash)
		event.Owner = common.Address{}

		success := x.HandleTeleportEvent(event)

		assert.True(t, success)
	})

	t.Run("No Error", func(t *testing.T) {
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		mockStore := teleportMocks.NewMockRecordStore(t)
		x := NewTestTeleportMonitor(t, nil, nil, mockStore)

		var stored models.TeleportEvent
		mockDB.EXPECT().InsertOne(models.CollectionTeleportEvents, mock.Anything).
			Run(func(collection string, data interface{}) {
				stored = data.(models.TeleportEvent)
			}).
			Return(primitive.NewObjectID(), nil)
		mockStore.EXPECT().RecordBurnDetected(mock.Anything, mock.Anything).
			Return(&models.TeleportRecord{Status: models.TeleportStatusProofPending}, nil)

		success := x.HandleTeleportEvent(teleportInitiated(1, txHash))

		assert.True(t, success)
		assert.Equal(t, "31338", stored.SourceChainID)
		assert.Equal(t, "1", stored.TokenID)
		assert.Equal(t, txHash.Hex(), stored.BurnTxHash)
		assert.Equal(t, models.EventStatusPending, stored.Status)
		assert.Equal(t, testNow, stored.CreatedAt)
	})

	t.Run("With Duplicate Key Error", func(t *testing.T) {
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		mockStore := teleportMocks.NewMockRecordStore(t)
		x := NewTestTeleportMonitor(t, nil, nil, mockStore)

		mockDB.EXPECT().InsertOne(models.CollectionTeleportEvents, mock.Anything).
			Return(primitive.NilObjectID, mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}})
		expectStoredEvent(mockDB, txHash, 1)
		mockStore.EXPECT().RecordBurnDetected(mock.Anything, mock.Anything).
			Return(&models.TeleportRecord{Status: models.TeleportStatusProofPending}, nil)

		success := x.HandleTeleportEvent(teleportInitiated(1, txHash))

		assert.True(t, success)
	})

	t.Run("With Second Burn In Same Tx", func(t *testing.T) {
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		mockStore := teleportMocks.NewMockRecordStore(t)
		x := NewTestTeleportMonitor(t, nil, nil, mockStore)

		mockDB.EXPECT().InsertOne(models.CollectionTeleportEvents, mock.Anything).
			Return(primitive.NilObjectID, mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}})
		expectStoredEvent(mockDB, txHash, 0)

		success := x.HandleTeleportEvent(teleportInitiated(2, txHash))

		assert.True(t, success)
		mockStore.AssertNotCalled(t, "RecordBurnDetected", mock.Anything, mock.Anything)
	})

	t.Run("With Duplicate Key And Lookup Error", func(t *testing.T) {
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		mockStore := teleportMocks.NewMockRecordStore(t)
		x := NewTestTeleportMonitor(t, nil, nil, mockStore)

		mockDB.EXPECT().InsertOne(models.CollectionTeleportEvents, mock.Anything).
			Return(primitive.NilObjectID, mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}})
		mockDB.EXPECT().FindOne(models.CollectionTeleportEvents, mock.Anything, mock.Anything).
			Return(errors.New("error"))

		success := x.HandleTeleportEvent(teleportInitiated(1, txHash))

		assert.False(t, success)
	})

	t.Run("With Other Error", func(t *testing.T) {
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		mockStore := teleportMocks.NewMockRecordStore(t)
		x := NewTestTeleportMonitor(t, nil, nil, mockStore)

		mockDB.EXPECT().InsertOne(models.CollectionTeleportEvents, mock.Anything).
			Return(primitive.NilObjectID, errors.New("error"))

		success := x.HandleTeleportEvent(teleportInitiated(1, txHash))

		assert.False(t, success)
	})

	t.Run("Record Update Error", func(t *testing.T) {
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		mockStore := teleportMocks.NewMockRecordStore(t)
		x := NewTestTeleportMonitor(t, nil, nil, mockStore)

		mockDB.EXPECT().InsertOne(models.CollectionTeleportEvents, mock.Anything).Return(primitive.NewObjectID(), nil)
		mockStore.EXPECT().RecordBurnDetected(mock.Anything, mock.Anything).Return(nil, models.ErrStaleRecord)

		success := x.HandleTeleportEvent(teleportInitiated(1, txHash))

		assert.False(t, success)
	})

	t.Run("Record Mismatch", func(t *testing.T) {
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		mockStore := teleportMocks.NewMockRecordStore(t)
		x := NewTestTeleportMonitor(t, nil, nil, mockStore)

		mockDB.EXPECT().InsertOne(models.CollectionTeleportEvents, mock.Anything).Return(primitive.NewObjectID(), nil)
		mockStore.EXPECT().RecordBurnDetected(mock.Anything, mock.Anything).
			Return(nil, &models.ValidationError{Field: "token_id", Reason: "event does not match record"})

		success := x.HandleTeleportEvent(teleportInitiated(1, txHash))

		assert.True(t, success)
	})
}

func TestTeleportMonitorSyncBlocks(t *testing.T) {

	t.Run("Filter Error", func(t *testing.T) {
		mockContract := clientMocks.NewMockSourceTeleporterContract(t)
		x := NewTestTeleportMonitor(t, mockContract, nil, nil)

		mockContract.EXPECT().FilterTeleportInitiated(mock.Anything).Return(nil, errors.New("error"))

		success := x.SyncBlocks(1, 100)

		assert.False(t, success)
	})

	t.Run("Handles Every Event", func(t *testing.T) {
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		mockContract := clientMocks.NewMockSourceTeleporterContract(t)
		mockStore := teleportMocks.NewMockRecordStore(t)
		x := NewTestTeleportMonitor(t, mockContract, nil, mockStore)

		events := []*eth.TeleportInitiated{
			teleportInitiated(1, common.HexToHash("0x01")),
			teleportInitiated(2, common.HexToHash("0x02")),
		}
		mockContract.EXPECT().FilterTeleportInitiated(mock.Anything).
			Run(func(opts *bind.FilterOpts) {
				assert.Equal(t, uint64(1), opts.Start)
				assert.Equal(t, uint64(100), *opts.End)
			}).
			Return(events, nil)
		mockDB.EXPECT().InsertOne(models.CollectionTeleportEvents, mock.Anything).Return(primitive.NilObjectID, errors.New("error")).Once()
		mockDB.EXPECT().InsertOne(models.CollectionTeleportEvents, mock.Anything).Return(primitive.NewObjectID(), nil).Once()
		mockStore.EXPECT().RecordBurnDetected(mock.Anything, mock.Anything).Return(&models.TeleportRecord{}, nil).Once()

		success := x.SyncBlocks(1, 100)

		assert.False(t, success)
	})
}

func TestTeleportMonitorSyncTxs(t *testing.T) {

	t.Run("No New Blocks", func(t *testing.T) {
		x := NewTestTeleportMonitor(t, nil, nil, nil)
		x.startBlockNumber = 100

		success := x.SyncTxs()

		assert.True(t, success)
		assert.Equal(t, int64(100), x.startBlockNumber)
	})

	t.Run("Single Range", func(t *testing.T) {
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		mockContract := clientMocks.NewMockSourceTeleporterContract(t)
		x := NewTestTeleportMonitor(t, mockContract, nil, nil)

		mockContract.EXPECT().FilterTeleportInitiated(mock.Anything).
			Run(func(opts *bind.FilterOpts) {
				assert.Equal(t, uint64(1), opts.Start)
				assert.Equal(t, uint64(100), *opts.End)
			}).
			Return([]*eth.TeleportInitiated{}, nil)
		mockDB.EXPECT().UpsertOne(models.CollectionCheckpoints, bson.M{"name": "TELEPORT MONITOR source-one"}, mock.Anything).
			Return(primitive.NewObjectID(), nil)

		success := x.SyncTxs()

		assert.True(t, success)
		assert.Equal(t, int64(100), x.startBlockNumber)
	})

	t.Run("Chunked Ranges", func(t *testing.T) {
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		mockContract := clientMocks.NewMockSourceTeleporterContract(t)
		x := NewTestTeleportMonitor(t, mockContract, nil, nil)
		x.startBlockNumber = 10
		x.currentBlockNumber = 1010

		var ranges [][2]uint64
		mockContract.EXPECT().FilterTeleportInitiated(mock.Anything).
			Run(func(opts *bind.FilterOpts) {
				ranges = append(ranges, [2]uint64{opts.Start, *opts.End})
			}).
			Return([]*eth.TeleportInitiated{}, nil)
		mockDB.EXPECT().UpsertOne(models.CollectionCheckpoints, mock.Anything, mock.Anything).Return(primitive.NewObjectID(), nil)

		success := x.SyncTxs()

		assert.True(t, success)
		assert.Equal(t, [][2]uint64{{11, 509}, {510, 1008}, {1009, 1010}}, ranges)
		assert.Equal(t, int64(1010), x.startBlockNumber)
	})

	t.Run("Failed Range Keeps Checkpoint", func(t *testing.T) {
		mockContract := clientMocks.NewMockSourceTeleporterContract(t)
		x := NewTestTeleportMonitor(t, mockContract, nil, nil)
		x.startBlockNumber = 10
		x.currentBlockNumber = 1010

		mockContract.EXPECT().FilterTeleportInitiated(mock.Anything).Return(nil, errors.New("error")).Once()
		mockContract.EXPECT().FilterTeleportInitiated(mock.Anything).Return([]*eth.TeleportInitiated{}, nil).Times(2)

		success := x.SyncTxs()

		assert.False(t, success)
		assert.Equal(t, int64(10), x.startBlockNumber)
	})
}

func TestTeleportMonitorInitStartBlockNumber(t *testing.T) {

	t.Run("From Checkpoint", func(t *testing.T) {
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestTeleportMonitor(t, nil, nil, nil)

		mockDB.EXPECT().FindOne(models.CollectionCheckpoints, bson.M{"name": x.name}, mock.Anything).
			Run(func(collection string, filter interface{}, result interface{}) {
				*result.(*models.Checkpoint) = models.Checkpoint{Name: x.name, BlockNumber: 77}
			}).
			Return(nil)

		x.InitStartBlockNumber(models.ServiceHealth{BlockNumber: "50"}, 5)

		assert.Equal(t, int64(77), x.startBlockNumber)
	})

	t.Run("From Last Health", func(t *testing.T) {
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestTeleportMonitor(t, nil, nil, nil)

		mockDB.EXPECT().FindOne(models.CollectionCheckpoints, mock.Anything, mock.Anything).Return(mongo.ErrNoDocuments)

		x.InitStartBlockNumber(models.ServiceHealth{BlockNumber: "50"}, 5)

		assert.Equal(t, int64(50), x.startBlockNumber)
	})

	t.Run("From Config", func(t *testing.T) {
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestTeleportMonitor(t, nil, nil, nil)

		mockDB.EXPECT().FindOne(models.CollectionCheckpoints, mock.Anything, mock.Anything).Return(errors.New("error"))

		x.InitStartBlockNumber(models.ServiceHealth{BlockNumber: "invalid"}, 5)

		assert.Equal(t, int64(4), x.startBlockNumber)
	})

	t.Run("From Current Block", func(t *testing.T) {
		mockDB := appMocks.NewMockDatabase(t)
		app.DB = mockDB
		x := NewTestTeleportMonitor(t, nil, nil, nil)

		mockDB.EXPECT().FindOne(models.CollectionCheckpoints, mock.Anything, mock.Anything).Return(mongo.ErrNoDocuments)

		x.InitStartBlockNumber(models.ServiceHealth{}, 0)

		assert.Equal(t, int64(100), x.startBlockNumber)
	})
}
