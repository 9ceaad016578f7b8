package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionTeleportRecords = "teleport_records"
)

type TeleportStatus string

// types of teleport record status
const (
	TeleportStatusInitiated    TeleportStatus = "initiated"
	TeleportStatusBurning      TeleportStatus = "burning"
	TeleportStatusProofPending TeleportStatus = "proof_pending"
	TeleportStatusReadyToClaim TeleportStatus = "ready_to_claim"
	TeleportStatusClaiming     TeleportStatus = "claiming"
	TeleportStatusCompleted    TeleportStatus = "completed"
	TeleportStatusFailed       TeleportStatus = "failed"
)

func (s TeleportStatus) IsTerminal() bool {
	return s == TeleportStatusCompleted || s == TeleportStatusFailed
}

type FailureReason string

const (
	FailureReasonConfirmationTimeout FailureReason = "confirmation_timeout"
	FailureReasonTxReverted          FailureReason = "tx_reverted"
)

type Failure struct {
	Reason   FailureReason `bson:"reason" json:"reason"`
	Message  string        `bson:"message" json:"message"`
	FailedAt time.Time     `bson:"failed_at" json:"failed_at"`
}

type StatusChange struct {
	From TeleportStatus `bson:"from" json:"from"`
	To   TeleportStatus `bson:"to" json:"to"`
	At   time.Time      `bson:"at" json:"at"`
}

// RecordEvent is the part of a TeleportEvent a record keeps a reference to.
type RecordEvent struct {
	LeafHash    string `bson:"leaf_hash" json:"leaf_hash"`
	TokenURI    string `bson:"token_uri" json:"token_uri"`
	BlockNumber uint64 `bson:"block_number" json:"block_number"`
	BatchID     string `bson:"batch_id" json:"batch_id"`
}

type TeleportRecord struct {
	Id            *primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	RecordID      string              `bson:"record_id" json:"record_id"`
	SourceChainID string              `bson:"source_chain_id" json:"source_chain_id"`
	TokenID       string              `bson:"token_id" json:"token_id"`
	Owner         string              `bson:"owner" json:"owner"`
	BurnTxHash    string              `bson:"burn_tx_hash" json:"burn_tx_hash"`
	Event         *RecordEvent        `bson:"event" json:"event,omitempty"`
	Status        TeleportStatus      `bson:"status" json:"status"`
	Proof         *Proof              `bson:"proof" json:"proof,omitempty"`
	ClaimTxHash   string              `bson:"claim_tx_hash" json:"claim_tx_hash,omitempty"`
	Failure       *Failure            `bson:"failure" json:"failure,omitempty"`
	History       []StatusChange      `bson:"history" json:"history"`
	CreatedAt     time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updated_at"`
	BurningAt     *time.Time          `bson:"burning_at" json:"burning_at,omitempty"`
	ClaimingAt    *time.Time          `bson:"claiming_at" json:"claiming_at,omitempty"`
}

func FormatRecordID(sourceChainID string, tokenID string, burnTxHash string) string {
	return fmt.Sprintf("%s:%s:%s", sourceChainID, tokenID, burnTxHash)
}
