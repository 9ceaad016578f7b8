package batch

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dan13ram/teleport-relayer/app"
	"github.com/dan13ram/teleport-relayer/app/mocks"
	"github.com/dan13ram/teleport-relayer/merkle"
	"github.com/dan13ram/teleport-relayer/models"
	"github.com/dan13ram/teleport-relayer/proof"
)

var builderNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func NewTestBuilder(t *testing.T, threshold int, maxLatency time.Duration) (*BuilderRunner, *mocks.MockDatabase) {
	mockDB := mocks.NewMockDatabase(t)
	app.DB = mockDB
	x := &BuilderRunner{
		sourceChainID: "31338",
		threshold:     threshold,
		maxLatency:    maxLatency,
		queue:         NewPendingQueue("31338"),
		now:           func() time.Time { return builderNow },
	}
	return x, mockDB
}

func testEvents(t *testing.T, n int, createdAt time.Time) []models.TeleportEvent {
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	events := make([]models.TeleportEvent, n)
	for i := range events {
		leaf, err := merkle.LeafHash(big.NewInt(int64(i+1)), owner, fmt.Sprintf("ipfs://token/%d", i+1))
		assert.NoError(t, err)
		events[i] = models.TeleportEvent{
			SourceChainID:   "31338",
			TokenID:         fmt.Sprint(i + 1),
			Owner:           owner.Hex(),
			TokenURI:        fmt.Sprintf("ipfs://token/%d", i+1),
			BurnTxHash:      common.BigToHash(big.NewInt(int64(i + 100))).Hex(),
			BlockNumber:     uint64(10 + i),
			LeafHash:        leaf.Hex(),
			EncodingVersion: merkle.LeafEncodingVersion,
			Status:          models.EventStatusPending,
			CreatedAt:       createdAt,
		}
	}
	return events
}

func expectLock(mockDB *mocks.MockDatabase) {
	mockDB.EXPECT().XLock("batch:31338").Return("lock-id", nil)
	mockDB.EXPECT().Unlock("lock-id").Return(nil)
}

func expectLatestBatch(mockDB *mocks.MockDatabase, batch *models.CommitmentBatch) *mocks.MockDatabase_FindOneSorted_Call {
	call := mockDB.EXPECT().FindOneSorted(
		models.CollectionCommitmentBatches,
		bson.M{"source_chain_id": "31338"},
		bson.D{{Key: "batch_number", Value: -1}},
		mock.Anything,
	)
	if batch == nil {
		return call.Return(mongo.ErrNoDocuments)
	}
	return call.Run(func(collection string, filter interface{}, sort interface{}, result interface{}) {
		*result.(*models.CommitmentBatch) = *batch
	}).Return(nil)
}

func TestBuilderStatus(t *testing.T) {
	x, _ := NewTestBuilder(t, 3, time.Minute)
	x.lastBatchNumber = 4

	assert.Equal(t, "4", x.Status().BlockNumber)
}

func TestBuilderBuild(t *testing.T) {

	t.Run("Threshold Flush", func(t *testing.T) {
		x, mockDB := NewTestBuilder(t, 3, time.Hour)
		events := testEvents(t, 3, builderNow)

		expectLock(mockDB)
		expectLatestBatch(mockDB, nil)
		expectPending(mockDB, events)

		var sealed *models.CommitmentBatch
		mockDB.EXPECT().InsertOne(models.CollectionCommitmentBatches, mock.Anything).
			Run(func(collection string, data interface{}) {
				sealed = data.(*models.CommitmentBatch)
			}).
			Return(primitive.NewObjectID(), nil)

		var markFilter, markUpdate interface{}
		mockDB.EXPECT().UpdateMany(models.CollectionTeleportEvents, mock.Anything, mock.Anything).
			Run(func(collection string, filter interface{}, update interface{}) {
				markFilter, markUpdate = filter, update
			}).
			Return(int64(3), nil)

		success := x.Build(context.Background())

		assert.True(t, success)
		assert.Equal(t, "31338:1", sealed.BatchID)
		assert.Equal(t, uint64(1), sealed.BatchNumber)
		assert.Equal(t, models.BatchStatusPending, sealed.Status)
		assert.Len(t, sealed.Leaves, 3)
		assert.Equal(t, builderNow, sealed.NextAttemptAt)
		assert.Equal(t, merkle.TreeVersion, sealed.TreeVersion)
		assert.Equal(t, uint64(1), x.lastBatchNumber)
		assert.Equal(t, 0, x.queue.Len())

		assert.Equal(t, bson.M{
			"source_chain_id": "31338",
			"burn_tx_hash":    bson.M{"$in": []string{events[0].BurnTxHash, events[1].BurnTxHash, events[2].BurnTxHash}},
			"status":          models.EventStatusPending,
		}, markFilter)
		set := markUpdate.(bson.M)["$set"].(bson.M)
		assert.Equal(t, models.EventStatusBatched, set["status"])
		assert.Equal(t, "31338:1", set["batch_id"])

		tree, err := proof.TreeOf(sealed)
		assert.NoError(t, err)
		p, err := proof.Build(tree, sealed, tree.Leaves()[0])
		assert.NoError(t, err)
		assert.Len(t, p.Siblings, 2)
		assert.True(t, proof.Verify(p))
	})

	t.Run("Below Threshold And Young", func(t *testing.T) {
		x, mockDB := NewTestBuilder(t, 3, time.Hour)

		expectLock(mockDB)
		expectLatestBatch(mockDB, nil)
		expectPending(mockDB, testEvents(t, 2, builderNow.Add(-time.Minute)))

		success := x.Build(context.Background())

		assert.True(t, success)
		assert.Equal(t, 2, x.queue.Len())
	})

	t.Run("Latency Flush Of Single Leaf", func(t *testing.T) {
		x, mockDB := NewTestBuilder(t, 3, time.Minute)
		events := testEvents(t, 1, builderNow.Add(-10*time.Minute))

		expectLock(mockDB)
		expectLatestBatch(mockDB, &models.CommitmentBatch{
			BatchID:       "31338:4",
			SourceChainID: "31338",
			BatchNumber:   4,
			BurnTxHashes:  []string{"0x04"},
			Status:        models.BatchStatusConfirmed,
		})
		expectPending(mockDB, events)

		var sealed *models.CommitmentBatch
		mockDB.EXPECT().InsertOne(models.CollectionCommitmentBatches, mock.Anything).
			Run(func(collection string, data interface{}) {
				sealed = data.(*models.CommitmentBatch)
			}).
			Return(primitive.NewObjectID(), nil)
		mockDB.EXPECT().UpdateMany(models.CollectionTeleportEvents, mock.Anything, mock.Anything).Return(int64(0), nil).Once()
		mockDB.EXPECT().UpdateMany(models.CollectionTeleportEvents, mock.Anything, mock.Anything).Return(int64(1), nil).Once()

		success := x.Build(context.Background())

		assert.True(t, success)
		assert.Equal(t, "31338:5", sealed.BatchID)
		assert.Equal(t, events[0].LeafHash, sealed.Root)

		tree, err := proof.TreeOf(sealed)
		assert.NoError(t, err)
		p, err := proof.Build(tree, sealed, common.HexToHash(events[0].LeafHash))
		assert.NoError(t, err)
		assert.Empty(t, p.Siblings)
		assert.True(t, proof.Verify(p))
	})

	t.Run("Threshold Then Latency", func(t *testing.T) {
		x, mockDB := NewTestBuilder(t, 2, time.Minute)
		events := testEvents(t, 3, builderNow.Add(-time.Hour))

		expectLock(mockDB)
		expectLatestBatch(mockDB, nil).Times(2)
		expectLatestBatch(mockDB, &models.CommitmentBatch{BatchNumber: 1}).Once()
		expectPending(mockDB, events)

		var sealed []*models.CommitmentBatch
		mockDB.EXPECT().InsertOne(models.CollectionCommitmentBatches, mock.Anything).
			Run(func(collection string, data interface{}) {
				sealed = append(sealed, data.(*models.CommitmentBatch))
			}).
			Return(primitive.NewObjectID(), nil).Times(2)
		mockDB.EXPECT().UpdateMany(models.CollectionTeleportEvents, mock.Anything, mock.Anything).Return(int64(1), nil).Times(2)

		success := x.Build(context.Background())

		assert.True(t, success)
		assert.Len(t, sealed, 2)
		assert.Len(t, sealed[0].Leaves, 2)
		assert.Equal(t, "31338:1", sealed[0].BatchID)
		assert.Len(t, sealed[1].Leaves, 1)
		assert.Equal(t, "31338:2", sealed[1].BatchID)
	})

	t.Run("Lock Error", func(t *testing.T) {
		x, mockDB := NewTestBuilder(t, 3, time.Minute)
		mockDB.EXPECT().XLock("batch:31338").Return("", errors.New("locked"))

		success := x.Build(context.Background())

		assert.False(t, success)
	})

	t.Run("Insert Error", func(t *testing.T) {
		x, mockDB := NewTestBuilder(t, 1, time.Minute)

		expectLock(mockDB)
		expectLatestBatch(mockDB, nil)
		expectPending(mockDB, testEvents(t, 1, builderNow))
		mockDB.EXPECT().InsertOne(models.CollectionCommitmentBatches, mock.Anything).Return(primitive.NilObjectID, errors.New("error"))

		success := x.Build(context.Background())

		assert.False(t, success)
	})

	t.Run("Mark Error Leaves Batch For Reconcile", func(t *testing.T) {
		x, mockDB := NewTestBuilder(t, 1, time.Minute)

		expectLock(mockDB)
		expectLatestBatch(mockDB, nil)
		expectPending(mockDB, testEvents(t, 1, builderNow))
		mockDB.EXPECT().InsertOne(models.CollectionCommitmentBatches, mock.Anything).Return(primitive.NewObjectID(), nil)
		mockDB.EXPECT().UpdateMany(models.CollectionTeleportEvents, mock.Anything, mock.Anything).Return(int64(0), errors.New("error"))

		success := x.Build(context.Background())

		assert.False(t, success)
		assert.Equal(t, uint64(1), x.lastBatchNumber)
	})
}

func TestBuilderReconcile(t *testing.T) {

	t.Run("Remarks Latest Batch", func(t *testing.T) {
		x, mockDB := NewTestBuilder(t, 3, time.Minute)
		expectLatestBatch(mockDB, &models.CommitmentBatch{
			BatchID:       "31338:2",
			SourceChainID: "31338",
			BatchNumber:   2,
			BurnTxHashes:  []string{"0x01", "0x02"},
			Status:        models.BatchStatusPending,
		})
		mockDB.EXPECT().UpdateMany(
			models.CollectionTeleportEvents,
			bson.M{
				"source_chain_id": "31338",
				"burn_tx_hash":    bson.M{"$in": []string{"0x01", "0x02"}},
				"status":          models.EventStatusPending,
			},
			mock.Anything,
		).Return(int64(2), nil)

		marked, err := x.Reconcile(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(2), marked)
		assert.Equal(t, uint64(2), x.lastBatchNumber)
	})

	t.Run("No Batches", func(t *testing.T) {
		x, mockDB := NewTestBuilder(t, 3, time.Minute)
		expectLatestBatch(mockDB, nil)

		marked, err := x.Reconcile(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(0), marked)
	})

	t.Run("Rebatched Latest Batch", func(t *testing.T) {
		x, mockDB := NewTestBuilder(t, 3, time.Minute)
		expectLatestBatch(mockDB, &models.CommitmentBatch{BatchNumber: 3, Status: models.BatchStatusRebatched})

		marked, err := x.Reconcile(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(0), marked)
	})

	t.Run("Database Error", func(t *testing.T) {
		x, mockDB := NewTestBuilder(t, 3, time.Minute)
		mockDB.EXPECT().FindOneSorted(models.CollectionCommitmentBatches, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("error"))

		_, err := x.Reconcile(context.Background())

		assert.Error(t, err)
	})
}

func TestBuilderSeal(t *testing.T) {

	t.Run("No Events", func(t *testing.T) {
		x, _ := NewTestBuilder(t, 3, time.Minute)

		_, err := x.Seal(context.Background(), nil)

		assert.ErrorIs(t, err, merkle.ErrEmptyTree)
	})

	t.Run("Unknown Encoding Version", func(t *testing.T) {
		x, mockDB := NewTestBuilder(t, 3, time.Minute)
		expectLatestBatch(mockDB, nil)
		events := testEvents(t, 1, builderNow)
		events[0].EncodingVersion = 2

		_, err := x.Seal(context.Background(), events)

		assert.Error(t, err)
	})

	t.Run("Root Independent Of Order", func(t *testing.T) {
		x, mockDB := NewTestBuilder(t, 3, time.Minute)
		expectLatestBatch(mockDB, nil)
		mockDB.EXPECT().InsertOne(models.CollectionCommitmentBatches, mock.Anything).Return(primitive.NewObjectID(), nil)
		mockDB.EXPECT().UpdateMany(models.CollectionTeleportEvents, mock.Anything, mock.Anything).Return(int64(3), nil)

		events := testEvents(t, 3, builderNow)
		first, err := x.Seal(context.Background(), events)
		assert.NoError(t, err)

		reversed := []models.TeleportEvent{events[2], events[1], events[0]}
		second, err := x.Seal(context.Background(), reversed)
		assert.NoError(t, err)

		assert.Equal(t, first.Root, second.Root)
	})
}

func TestNewBuilder(t *testing.T) {
	defer func() { app.Config = models.Config{} }()

	t.Run("Disabled", func(t *testing.T) {
		app.Config.CommitmentBuilder.Enabled = false
		wg := &sync.WaitGroup{}

		service := NewBuilder(models.SourceChainConfig{Name: "source-one", ChainID: "31338"}, wg)

		assert.IsType(t, &app.EmptyService{}, service)
	})

	t.Run("Enabled", func(t *testing.T) {
		app.Config.CommitmentBuilder.Enabled = true
		app.Config.CommitmentBuilder.IntervalMillis = 1000
		app.Config.Commitment.BatchSizeThreshold = 0
		app.Config.Commitment.MaxLatencyMillis = 60000
		wg := &sync.WaitGroup{}

		service := NewBuilder(models.SourceChainConfig{Name: "source-one", ChainID: "31338"}, wg)

		assert.IsType(t, &app.RunnerService{}, service)
		assert.Equal(t, "COMMITMENT BUILDER source-one", service.Health().Name)
		assert.Equal(t, "0", service.Health().BlockNumber)
	})

	t.Run("Threshold Floor", func(t *testing.T) {
		x := newBuilderRunner("31338", models.CommitmentConfig{BatchSizeThreshold: 0, MaxLatencyMillis: 1000})

		assert.Equal(t, 1, x.threshold)
		assert.Equal(t, time.Second, x.maxLatency)
	})
}
