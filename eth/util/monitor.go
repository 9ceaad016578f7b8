package util

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	eth "github.com/dan13ram/teleport-relayer/eth/client"
	"github.com/dan13ram/teleport-relayer/merkle"
	"github.com/dan13ram/teleport-relayer/models"
)

func invalid(field string, reason string) error {
	return &models.ValidationError{Field: field, Reason: reason}
}

// CreateTeleportEvent canonicalizes a burn log and computes its leaf.
func CreateTeleportEvent(sourceChainID string, event *eth.TeleportInitiated, now time.Time) (models.TeleportEvent, error) {
	if event == nil {
		return models.TeleportEvent{}, invalid("log", "missing")
	}
	if event.Raw.Removed {
		return models.TeleportEvent{}, invalid("log", "removed by reorg")
	}
	if event.TokenId == nil || event.Timestamp == nil {
		return models.TeleportEvent{}, invalid("log", "undecodable")
	}
	if event.Raw.TxHash == (common.Hash{}) {
		return models.TeleportEvent{}, invalid("tx_hash", "missing")
	}
	if event.Owner == (common.Address{}) {
		return models.TeleportEvent{}, invalid("owner", "zero address")
	}
	if event.TokenId.Sign() < 0 || event.TokenId.BitLen() > 256 {
		return models.TeleportEvent{}, invalid("token_id", "out of uint256 range")
	}
	if !event.Timestamp.IsUint64() {
		return models.TeleportEvent{}, invalid("timestamp", "out of range")
	}

	leaf, err := merkle.LeafHash(event.TokenId, event.Owner, event.TokenURI)
	if err != nil {
		return models.TeleportEvent{}, invalid("log", err.Error())
	}

	return models.TeleportEvent{
		SourceChainID:   sourceChainID,
		TokenID:         event.TokenId.String(),
		Owner:           event.Owner.Hex(),
		TokenURI:        event.TokenURI,
		Timestamp:       event.Timestamp.Uint64(),
		BurnTxHash:      event.Raw.TxHash.Hex(),
		LogIndex:        uint64(event.Raw.Index),
		BlockNumber:     event.Raw.BlockNumber,
		LeafHash:        leaf.Hex(),
		EncodingVersion: merkle.LeafEncodingVersion,
		Status:          models.EventStatusPending,
		BatchID:         "",
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
