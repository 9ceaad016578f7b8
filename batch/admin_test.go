package batch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dan13ram/teleport-relayer/app"
	"github.com/dan13ram/teleport-relayer/app/mocks"
	"github.com/dan13ram/teleport-relayer/models"
)

func expectBatch(mockDB *mocks.MockDatabase, status string) {
	mockDB.EXPECT().
		FindOne(models.CollectionCommitmentBatches, bson.M{"batch_id": "31338:2"}, mock.Anything).
		Run(func(collection string, filter interface{}, result interface{}) {
			*result.(*models.CommitmentBatch) = models.CommitmentBatch{
				BatchID:        "31338:2",
				SourceChainID:  "31338",
				BatchNumber:    2,
				Status:         status,
				SubmitAttempts: 5,
			}
		}).
		Return(nil)
}

func TestRetryBatch(t *testing.T) {

	t.Run("Resets Failed Batch", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		expectBatch(mockDB, models.BatchStatusSubmissionFailed)

		var update interface{}
		mockDB.EXPECT().
			UpdateOne(models.CollectionCommitmentBatches, bson.M{"batch_id": "31338:2", "status": models.BatchStatusSubmissionFailed}, mock.Anything).
			Run(func(collection string, filter interface{}, u interface{}) { update = u }).
			Return(int64(1), nil)

		err := RetryBatch(context.Background(), "31338:2")

		assert.NoError(t, err)
		set := update.(bson.M)["$set"].(bson.M)
		assert.Equal(t, models.BatchStatusPending, set["status"])
		assert.Equal(t, 0, set["submit_attempts"])
	})

	t.Run("Batch Not Failed", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		expectBatch(mockDB, models.BatchStatusConfirmed)

		err := RetryBatch(context.Background(), "31338:2")

		assert.Error(t, err)
	})

	t.Run("Unknown Batch", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		mockDB.EXPECT().FindOne(models.CollectionCommitmentBatches, mock.Anything, mock.Anything).Return(mongo.ErrNoDocuments)

		err := RetryBatch(context.Background(), "31338:9")

		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("Concurrent Change", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		expectBatch(mockDB, models.BatchStatusSubmissionFailed)
		mockDB.EXPECT().UpdateOne(models.CollectionCommitmentBatches, mock.Anything, mock.Anything).Return(int64(0), nil)

		err := RetryBatch(context.Background(), "31338:2")

		assert.Error(t, err)
	})
}

func TestRebatch(t *testing.T) {

	t.Run("Releases Events", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		expectBatch(mockDB, models.BatchStatusSubmissionFailed)
		expectLock(mockDB)

		mockDB.EXPECT().
			UpdateOne(models.CollectionCommitmentBatches, bson.M{"batch_id": "31338:2", "status": models.BatchStatusSubmissionFailed}, mock.Anything).
			Return(int64(1), nil)

		var update interface{}
		mockDB.EXPECT().
			UpdateMany(models.CollectionTeleportEvents, bson.M{"batch_id": "31338:2", "status": models.EventStatusBatched}, mock.Anything).
			Run(func(collection string, filter interface{}, u interface{}) { update = u }).
			Return(int64(3), nil)

		released, err := Rebatch(context.Background(), "31338:2")

		assert.NoError(t, err)
		assert.Equal(t, int64(3), released)
		set := update.(bson.M)["$set"].(bson.M)
		assert.Equal(t, models.EventStatusPending, set["status"])
		assert.Equal(t, "", set["batch_id"])
	})

	t.Run("Batch Not Failed", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		expectBatch(mockDB, models.BatchStatusPending)

		_, err := Rebatch(context.Background(), "31338:2")

		assert.Error(t, err)
	})

	t.Run("Release Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		app.DB = mockDB
		expectBatch(mockDB, models.BatchStatusSubmissionFailed)
		expectLock(mockDB)
		mockDB.EXPECT().UpdateOne(models.CollectionCommitmentBatches, mock.Anything, mock.Anything).Return(int64(1), nil)
		mockDB.EXPECT().UpdateMany(models.CollectionTeleportEvents, mock.Anything, mock.Anything).Return(int64(0), errors.New("error"))

		_, err := Rebatch(context.Background(), "31338:2")

		assert.Error(t, err)
	})
}
