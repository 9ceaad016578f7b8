package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionTeleportEvents = "teleport_events"
)

// types of teleport event status
const (
	EventStatusPending = "pending"
	EventStatusBatched = "batched"
)

// TeleportEvent is a canonicalized burn observed on a source chain.
// Everything except Status and BatchID is immutable once stored.
type TeleportEvent struct {
	Id              *primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SourceChainID   string              `bson:"source_chain_id" json:"source_chain_id"`
	TokenID         string              `bson:"token_id" json:"token_id"`
	Owner           string              `bson:"owner" json:"owner"`
	TokenURI        string              `bson:"token_uri" json:"token_uri"`
	Timestamp       uint64              `bson:"timestamp" json:"timestamp"`
	BurnTxHash      string              `bson:"burn_tx_hash" json:"burn_tx_hash"`
	LogIndex        uint64              `bson:"log_index" json:"log_index"`
	BlockNumber     uint64              `bson:"block_number" json:"block_number"`
	LeafHash        string              `bson:"leaf_hash" json:"leaf_hash"`
	EncodingVersion uint8               `bson:"encoding_version" json:"encoding_version"`
	Status          string              `bson:"status" json:"status"`
	BatchID         string              `bson:"batch_id" json:"batch_id"`
	CreatedAt       time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at" json:"updated_at"`
}
