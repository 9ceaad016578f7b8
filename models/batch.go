package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionCommitmentBatches = "commitment_batches"
)

// types of commitment batch status
const (
	BatchStatusPending          = "pending"
	BatchStatusSubmitted        = "submitted"
	BatchStatusConfirmed        = "confirmed"
	BatchStatusSubmissionFailed = "submission_failed"
	BatchStatusRebatched        = "rebatched"
)

// CommitmentBatch is a sealed set of leaves committed under one root.
// Leaves and Root never change after sealing.
type CommitmentBatch struct {
	Id              *primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	BatchID         string              `bson:"batch_id" json:"batch_id"`
	SourceChainID   string              `bson:"source_chain_id" json:"source_chain_id"`
	BatchNumber     uint64              `bson:"batch_number" json:"batch_number"`
	Leaves          []string            `bson:"leaves" json:"leaves"`
	BurnTxHashes    []string            `bson:"burn_tx_hashes" json:"burn_tx_hashes"`
	Root            string              `bson:"root" json:"root"`
	EncodingVersion uint8               `bson:"encoding_version" json:"encoding_version"`
	TreeVersion     uint8               `bson:"tree_version" json:"tree_version"`
	Status          string              `bson:"status" json:"status"`
	SubmitTxHash    string              `bson:"submit_tx_hash" json:"submit_tx_hash"`
	SubmitAttempts  int64               `bson:"submit_attempts" json:"submit_attempts"`
	NextAttemptAt   time.Time           `bson:"next_attempt_at" json:"next_attempt_at"`
	LastError       string              `bson:"last_error" json:"last_error"`
	ConfirmedBlock  uint64              `bson:"confirmed_block" json:"confirmed_block"`
	SealedAt        time.Time           `bson:"sealed_at" json:"sealed_at"`
	SubmittedAt     *time.Time          `bson:"submitted_at" json:"submitted_at"`
	ConfirmedAt     *time.Time          `bson:"confirmed_at" json:"confirmed_at"`
	RecordsReleased bool                `bson:"records_released" json:"records_released"`
	UpdatedAt       time.Time           `bson:"updated_at" json:"updated_at"`
}

func FormatBatchID(sourceChainID string, batchNumber uint64) string {
	return fmt.Sprintf("%s:%d", sourceChainID, batchNumber)
}
