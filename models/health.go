package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionHealthChecks = "healthchecks"
	CollectionCheckpoints  = "checkpoints"
)

type RunnerStatus struct {
	BlockNumber string
}

type ServiceHealth struct {
	Name         string    `bson:"name" json:"name"`
	LastSyncTime time.Time `bson:"last_sync_time" json:"last_sync_time"`
	NextSyncTime time.Time `bson:"next_sync_time" json:"next_sync_time"`
	BlockNumber  string    `bson:"block_number" json:"block_number"`
	Healthy      bool      `bson:"healthy" json:"healthy"`
}

type Health struct {
	Id             *primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	RelayerAddress string              `bson:"relayer_address" json:"relayer_address"`
	Hostname       string              `bson:"hostname" json:"hostname"`
	Healthy        bool                `bson:"healthy" json:"healthy"`
	ServiceHealths []ServiceHealth     `bson:"service_healths" json:"service_healths"`
	CreatedAt      time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time           `bson:"updated_at" json:"updated_at"`
}

// Checkpoint is the last block a monitor fully processed.
type Checkpoint struct {
	Id          *primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name        string              `bson:"name" json:"name"`
	BlockNumber int64               `bson:"block_number" json:"block_number"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updated_at"`
}
