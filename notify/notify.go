package notify

import (
	"context"
	"errors"
	"time"

	"github.com/dan13ram/teleport-relayer/models"
)

const (
	KindTeleportTransition = "teleport_transition"
	KindBatchStatus        = "batch_status"
)

// Notification describes one teleport record transition or batch status change.
type Notification struct {
	Kind          string                `json:"kind"`
	RecordID      string                `json:"record_id,omitempty"`
	BurnTxHash    string                `json:"burn_tx_hash,omitempty"`
	SourceChainID string                `json:"source_chain_id,omitempty"`
	TokenID       string                `json:"token_id,omitempty"`
	From          models.TeleportStatus `json:"from,omitempty"`
	To            models.TeleportStatus `json:"to,omitempty"`
	BatchID       string                `json:"batch_id,omitempty"`
	BatchStatus   string                `json:"batch_status,omitempty"`
	ClaimTxHash   string                `json:"claim_tx_hash,omitempty"`
	Failure       *models.Failure       `json:"failure,omitempty"`
	At            time.Time             `json:"at"`
}

type Notifier interface {
	Publish(ctx context.Context, n Notification) error
}

// Multi publishes to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Publish(ctx context.Context, n Notification) error {
	var errs []error
	for _, notifier := range m {
		if notifier == nil {
			continue
		}
		if err := notifier.Publish(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Publish(context.Context, Notification) error {
	return nil
}
