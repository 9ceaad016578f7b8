package eth

import (
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dan13ram/teleport-relayer/app"
	"github.com/dan13ram/teleport-relayer/models"
)

// FindCheckpoint returns the last fully processed block stored under name.
func FindCheckpoint(name string) (int64, bool) {
	var checkpoint models.Checkpoint
	if err := app.DB.FindOne(models.CollectionCheckpoints, bson.M{"name": name}, &checkpoint); err != nil {
		if !app.IsNoDocuments(err) {
			log.Error("[CHECKPOINT] Error finding checkpoint ", name, ": ", err)
		}
		return 0, false
	}
	return checkpoint.BlockNumber, true
}

func SaveCheckpoint(name string, blockNumber int64) error {
	filter := bson.M{"name": name}
	update := bson.M{
		"$set": bson.M{
			"name":         name,
			"block_number": blockNumber,
			"updated_at":   time.Now(),
		},
	}
	_, err := app.DB.UpsertOne(models.CollectionCheckpoints, filter, update)
	return err
}

// startBlockNumber picks where a monitor resumes: the stored checkpoint, then
// the last health report, then the configured start block.
func startBlockNumber(name string, lastHealth models.ServiceHealth, configured int64) (int64, bool) {
	if checkpoint, ok := FindCheckpoint(name); ok && checkpoint > 0 {
		return checkpoint, true
	}
	if lastBlockNumber, err := strconv.ParseInt(lastHealth.BlockNumber, 10, 64); err == nil && lastBlockNumber > 0 {
		return lastBlockNumber, true
	}
	if configured > 0 {
		return configured - 1, true
	}
	return 0, false
}
