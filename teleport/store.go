package teleport

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dan13ram/teleport-relayer/app"
	"github.com/dan13ram/teleport-relayer/metrics"
	"github.com/dan13ram/teleport-relayer/models"
	"github.com/dan13ram/teleport-relayer/notify"
	"github.com/dan13ram/teleport-relayer/proof"
)

type RecordStore interface {
	Initiate(ctx context.Context, req InitiateRequest) (*models.TeleportRecord, error)
	MarkBurning(ctx context.Context, burnTxHash string) (*models.TeleportRecord, error)
	MarkProofPending(ctx context.Context, burnTxHash string, event models.TeleportEvent) (*models.TeleportRecord, error)
	MarkReadyToClaim(ctx context.Context, burnTxHash string, batchID string, p *models.Proof) (*models.TeleportRecord, error)
	MarkClaiming(ctx context.Context, burnTxHash string, claimTxHash string) (*models.TeleportRecord, error)
	MarkCompleted(ctx context.Context, burnTxHash string, claimTxHash string) (*models.TeleportRecord, error)
	Fail(ctx context.Context, burnTxHash string, reason models.FailureReason, message string) (*models.TeleportRecord, error)
	Get(ctx context.Context, burnTxHash string) (*models.TeleportRecord, error)
	FindByStatus(ctx context.Context, status models.TeleportStatus, limit int64) ([]models.TeleportRecord, error)
	RecordBurnDetected(ctx context.Context, event models.TeleportEvent) (*models.TeleportRecord, error)
	MarkBatchReady(ctx context.Context, batch *models.CommitmentBatch) (int, error)
}

type InitiateRequest struct {
	SourceChainID string `json:"source_chain_id"`
	TokenID       string `json:"token_id"`
	Owner         string `json:"owner"`
	BurnTxHash    string `json:"burn_tx_hash"`
}

// Normalize validates the request and returns it with a lowercase tx hash and
// a checksummed owner.
func (r InitiateRequest) Normalize() (InitiateRequest, error) {
	if r.SourceChainID == "" {
		return r, &models.ValidationError{Field: "source_chain_id", Reason: "missing"}
	}

	tokenID, ok := new(big.Int).SetString(r.TokenID, 10)
	if !ok || tokenID.Sign() < 0 || tokenID.BitLen() > 256 {
		return r, &models.ValidationError{Field: "token_id", Reason: "not a uint256 decimal"}
	}

	if !common.IsHexAddress(r.Owner) || common.HexToAddress(r.Owner) == (common.Address{}) {
		return r, &models.ValidationError{Field: "owner", Reason: "not a non-zero address"}
	}

	burnTxHash, err := NormalizeTxHash(r.BurnTxHash)
	if err != nil {
		return r, err
	}

	return InitiateRequest{
		SourceChainID: r.SourceChainID,
		TokenID:       tokenID.String(),
		Owner:         common.HexToAddress(r.Owner).Hex(),
		BurnTxHash:    burnTxHash,
	}, nil
}

func NormalizeTxHash(hash string) (string, error) {
	b, err := hexutil.Decode(hash)
	if err != nil || len(b) != common.HashLength {
		return "", &models.ValidationError{Field: "tx_hash", Reason: "not a 32 byte hex string"}
	}
	return common.BytesToHash(b).Hex(), nil
}

// Store keeps teleport records in mongo. Every transition is a compare and set
// on the current status, so concurrent drivers cannot skip a state.
type Store struct {
	notifier notify.Notifier
	now      func() time.Time
}

var _ RecordStore = &Store{}

func (s *Store) publish(ctx context.Context, record *models.TeleportRecord, from models.TeleportStatus) {
	metrics.TransitionsTotal.WithLabelValues(string(record.Status)).Inc()

	n := notify.Notification{
		Kind:          notify.KindTeleportTransition,
		RecordID:      record.RecordID,
		BurnTxHash:    record.BurnTxHash,
		SourceChainID: record.SourceChainID,
		TokenID:       record.TokenID,
		From:          from,
		To:            record.Status,
		ClaimTxHash:   record.ClaimTxHash,
		Failure:       record.Failure,
		At:            record.UpdatedAt,
	}
	if record.Event != nil {
		n.BatchID = record.Event.BatchID
	}
	if err := s.notifier.Publish(ctx, n); err != nil {
		log.Warn("[TELEPORT] Error publishing notification for ", record.BurnTxHash, ": ", err)
	}
}

func (s *Store) Get(ctx context.Context, burnTxHash string) (*models.TeleportRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := NormalizeTxHash(burnTxHash)
	if err != nil {
		return nil, err
	}

	var record models.TeleportRecord
	err = app.DB.FindOne(models.CollectionTeleportRecords, bson.M{"burn_tx_hash": hash}, &record)
	if err != nil {
		if app.IsNoDocuments(err) {
			return nil, fmt.Errorf("teleport record for %s: %w", hash, models.ErrNotFound)
		}
		return nil, fmt.Errorf("error finding teleport record: %w", err)
	}
	return &record, nil
}

func (s *Store) FindByStatus(ctx context.Context, status models.TeleportStatus, limit int64) ([]models.TeleportRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := []models.TeleportRecord{}
	sort := bson.D{{Key: "updated_at", Value: 1}}
	err := app.DB.FindManySorted(models.CollectionTeleportRecords, bson.M{"status": status}, sort, limit, &records)
	if err != nil {
		return nil, fmt.Errorf("error finding %s teleport records: %w", status, err)
	}
	return records, nil
}

func (s *Store) Initiate(ctx context.Context, req InitiateRequest) (*models.TeleportRecord, error) {
	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, req.BurnTxHash)
	if err == nil {
		return nil, &models.DuplicateInitiationError{BurnTxHash: req.BurnTxHash, ExistingID: existing.RecordID}
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	now := s.now()
	record := &models.TeleportRecord{
		RecordID:      models.FormatRecordID(req.SourceChainID, req.TokenID, req.BurnTxHash),
		SourceChainID: req.SourceChainID,
		TokenID:       req.TokenID,
		Owner:         req.Owner,
		BurnTxHash:    req.BurnTxHash,
		Status:        models.TeleportStatusInitiated,
		History:       []models.StatusChange{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := app.DB.InsertOne(models.CollectionTeleportRecords, record)
	if err != nil {
		if app.IsDuplicateKeyError(err) {
			// lost the race against another initiator
			duplicate := &models.DuplicateInitiationError{BurnTxHash: req.BurnTxHash}
			if existing, getErr := s.Get(ctx, req.BurnTxHash); getErr == nil {
				duplicate.ExistingID = existing.RecordID
			}
			return nil, duplicate
		}
		return nil, fmt.Errorf("error inserting teleport record: %w", err)
	}
	record.Id = &id

	log.WithFields(log.Fields{"record_id": record.RecordID}).Info("[TELEPORT] Record initiated")
	s.publish(ctx, record, "")
	return record, nil
}

func (s *Store) transition(
	ctx context.Context,
	burnTxHash string,
	to models.TeleportStatus,
	apply func(record *models.TeleportRecord, now time.Time) error,
) (*models.TeleportRecord, error) {
	record, err := s.Get(ctx, burnTxHash)
	if err != nil {
		return nil, err
	}

	from := record.Status
	if !CanTransition(from, to) {
		return nil, fmt.Errorf("%w: %s -> %s for %s", models.ErrInvalidTransition, from, to, record.BurnTxHash)
	}

	now := s.now()
	if apply != nil {
		if err := apply(record, now); err != nil {
			return nil, err
		}
	}
	change := models.StatusChange{From: from, To: to, At: now}
	record.Status = to
	record.UpdatedAt = now
	record.History = append(record.History, change)

	filter := bson.M{"burn_tx_hash": record.BurnTxHash, "status": from}
	update := bson.M{
		"$set": bson.M{
			"record_id":       record.RecordID,
			"source_chain_id": record.SourceChainID,
			"token_id":        record.TokenID,
			"owner":           record.Owner,
			"status":          record.Status,
			"event":           record.Event,
			"proof":           record.Proof,
			"claim_tx_hash":   record.ClaimTxHash,
			"failure":         record.Failure,
			"burning_at":      record.BurningAt,
			"claiming_at":     record.ClaimingAt,
			"updated_at":      now,
		},
		"$push": bson.M{"history": change},
	}

	matched, err := app.DB.UpdateOne(models.CollectionTeleportRecords, filter, update)
	if err != nil {
		return nil, fmt.Errorf("error updating teleport record: %w", err)
	}
	if matched == 0 {
		return nil, fmt.Errorf("%w: %s is no longer %s", models.ErrStaleRecord, record.BurnTxHash, from)
	}

	log.WithFields(log.Fields{
		"record_id": record.RecordID,
		"from":      from,
		"to":        to,
	}).Info("[TELEPORT] Record transitioned")
	s.publish(ctx, record, from)
	return record, nil
}

func (s *Store) MarkBurning(ctx context.Context, burnTxHash string) (*models.TeleportRecord, error) {
	return s.transition(ctx, burnTxHash, models.TeleportStatusBurning, func(record *models.TeleportRecord, now time.Time) error {
		record.BurningAt = &now
		return nil
	})
}

func (s *Store) MarkProofPending(ctx context.Context, burnTxHash string, event models.TeleportEvent) (*models.TeleportRecord, error) {
	return s.transition(ctx, burnTxHash, models.TeleportStatusProofPending, func(record *models.TeleportRecord, now time.Time) error {
		if event.BurnTxHash != record.BurnTxHash {
			return &models.ValidationError{Field: "burn_tx_hash", Reason: "event belongs to another burn"}
		}
		if event.SourceChainID != record.SourceChainID ||
			event.TokenID != record.TokenID ||
			common.HexToAddress(event.Owner) != common.HexToAddress(record.Owner) {
			// the burn log is authoritative over what the caller initiated
			log.WithFields(log.Fields{
				"record_id":       record.RecordID,
				"source_chain_id": event.SourceChainID,
				"token_id":        event.TokenID,
				"owner":           event.Owner,
			}).Warn("[TELEPORT] Initiated record does not match its burn, adopting the burn log")
			record.SourceChainID = event.SourceChainID
			record.TokenID = event.TokenID
			record.Owner = event.Owner
			record.RecordID = models.FormatRecordID(event.SourceChainID, event.TokenID, record.BurnTxHash)
		}
		record.Event = &models.RecordEvent{
			LeafHash:    event.LeafHash,
			TokenURI:    event.TokenURI,
			BlockNumber: event.BlockNumber,
			BatchID:     event.BatchID,
		}
		return nil
	})
}

func (s *Store) MarkReadyToClaim(ctx context.Context, burnTxHash string, batchID string, p *models.Proof) (*models.TeleportRecord, error) {
	return s.transition(ctx, burnTxHash, models.TeleportStatusReadyToClaim, func(record *models.TeleportRecord, now time.Time) error {
		if record.Event == nil {
			return &models.ValidationError{Field: "event", Reason: "record has no burn event"}
		}
		record.Event.BatchID = batchID
		record.Proof = p
		return nil
	})
}

func (s *Store) MarkClaiming(ctx context.Context, burnTxHash string, claimTxHash string) (*models.TeleportRecord, error) {
	claimTxHash, err := NormalizeTxHash(claimTxHash)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, burnTxHash, models.TeleportStatusClaiming, func(record *models.TeleportRecord, now time.Time) error {
		record.ClaimTxHash = claimTxHash
		record.ClaimingAt = &now
		return nil
	})
}

func (s *Store) MarkCompleted(ctx context.Context, burnTxHash string, claimTxHash string) (*models.TeleportRecord, error) {
	return s.transition(ctx, burnTxHash, models.TeleportStatusCompleted, func(record *models.TeleportRecord, now time.Time) error {
		if claimTxHash != "" {
			hash, err := NormalizeTxHash(claimTxHash)
			if err != nil {
				return err
			}
			record.ClaimTxHash = hash
		}
		return nil
	})
}

func (s *Store) Fail(ctx context.Context, burnTxHash string, reason models.FailureReason, message string) (*models.TeleportRecord, error) {
	return s.transition(ctx, burnTxHash, models.TeleportStatusFailed, func(record *models.TeleportRecord, now time.Time) error {
		record.Failure = &models.Failure{
			Reason:   reason,
			Message:  message,
			FailedAt: now,
		}
		return nil
	})
}

// RecordBurnDetected walks the record of an ingested burn to proof_pending,
// creating it first when nobody initiated it.
func (s *Store) RecordBurnDetected(ctx context.Context, event models.TeleportEvent) (*models.TeleportRecord, error) {
	record, err := s.Get(ctx, event.BurnTxHash)
	if errors.Is(err, models.ErrNotFound) {
		record, err = s.Initiate(ctx, InitiateRequest{
			SourceChainID: event.SourceChainID,
			TokenID:       event.TokenID,
			Owner:         event.Owner,
			BurnTxHash:    event.BurnTxHash,
		})
		var duplicate *models.DuplicateInitiationError
		if errors.As(err, &duplicate) {
			record, err = s.Get(ctx, event.BurnTxHash)
		}
	}
	if err != nil {
		return nil, err
	}

	if record.Status == models.TeleportStatusInitiated {
		record, err = s.MarkBurning(ctx, record.BurnTxHash)
		if err != nil {
			return nil, err
		}
	}

	if record.Status == models.TeleportStatusBurning {
		return s.MarkProofPending(ctx, record.BurnTxHash, event)
	}

	log.Debug("[TELEPORT] Burn ", record.BurnTxHash, " already at status ", record.Status)
	return record, nil
}

// MarkBatchReady moves the proof_pending records of a confirmed batch to
// ready_to_claim and returns how many moved.
func (s *Store) MarkBatchReady(ctx context.Context, batch *models.CommitmentBatch) (int, error) {
	if batch.Status != models.BatchStatusConfirmed {
		return 0, fmt.Errorf("batch %s is %s: %w", batch.BatchID, batch.Status, models.ErrNotReady)
	}

	tree, err := proof.TreeOf(batch)
	if err != nil {
		return 0, err
	}

	moved := 0
	var errs []error
	for _, burnTxHash := range batch.BurnTxHashes {
		record, err := s.Get(ctx, burnTxHash)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		switch record.Status {
		case models.TeleportStatusProofPending:
		case models.TeleportStatusInitiated, models.TeleportStatusBurning:
			errs = append(errs, fmt.Errorf("record %s is still %s", record.RecordID, record.Status))
			continue
		default:
			log.Debug("[TELEPORT] Skipping ", burnTxHash, " at status ", record.Status)
			continue
		}
		if record.Event == nil {
			errs = append(errs, fmt.Errorf("record %s has no burn event", record.RecordID))
			continue
		}

		p, err := proof.Build(tree, batch, common.HexToHash(record.Event.LeafHash))
		if err != nil {
			errs = append(errs, fmt.Errorf("error building proof for %s: %w", record.RecordID, err))
			continue
		}
		p.TokenID = record.TokenID
		p.Owner = record.Owner
		p.TokenURI = record.Event.TokenURI
		p.BurnTxHash = record.BurnTxHash

		if _, err := s.MarkReadyToClaim(ctx, burnTxHash, batch.BatchID, p); err != nil {
			errs = append(errs, err)
			continue
		}
		moved++
	}

	return moved, errors.Join(errs...)
}

func NewStore(notifier notify.Notifier) *Store {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Store{
		notifier: notifier,
		now:      time.Now,
	}
}
