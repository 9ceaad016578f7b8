package proof

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dan13ram/teleport-relayer/app"
	"github.com/dan13ram/teleport-relayer/merkle"
	"github.com/dan13ram/teleport-relayer/metrics"
	"github.com/dan13ram/teleport-relayer/models"
)

const DefaultCacheSize = 256

type Provider interface {
	GetProof(ctx context.Context, sourceChainID string, tokenID string) (*models.Proof, error)
	GetProofByLeaf(ctx context.Context, leafHash string) (*models.Proof, error)
	GetProofByBurnTx(ctx context.Context, burnTxHash string) (*models.Proof, error)
}

// Service answers proof queries from stored events and confirmed batches.
// Only trees of confirmed batches are cached.
type Service struct {
	trees *lru.Cache[string, *merkle.Tree]
}

var _ Provider = &Service{}

var latestFirst = bson.D{{Key: "block_number", Value: -1}, {Key: "log_index", Value: -1}}

func parseHash(field string, value string) (string, error) {
	b, err := hexutil.Decode(value)
	if err != nil || len(b) != common.HashLength {
		return "", &models.ValidationError{Field: field, Reason: "not a 32 byte hex string"}
	}
	return common.BytesToHash(b).Hex(), nil
}

func observe(start time.Time, err error) {
	metrics.ProofRequestDuration.Observe(time.Since(start).Seconds())

	var validationErr *models.ValidationError
	switch {
	case err == nil:
		metrics.ProofsServedTotal.WithLabelValues("ok").Inc()
	case errors.Is(err, models.ErrNotFound):
		metrics.ProofsServedTotal.WithLabelValues("not_found").Inc()
	case errors.Is(err, models.ErrNotReady):
		metrics.ProofsServedTotal.WithLabelValues("not_ready").Inc()
	case errors.As(err, &validationErr):
		metrics.ProofsServedTotal.WithLabelValues("invalid").Inc()
	default:
		metrics.ProofsServedTotal.WithLabelValues("error").Inc()
	}
}

func (s *Service) findEvent(ctx context.Context, filter bson.M) (*models.TeleportEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var event models.TeleportEvent
	err := app.DB.FindOneSorted(models.CollectionTeleportEvents, filter, latestFirst, &event)
	if err != nil {
		if app.IsNoDocuments(err) {
			return nil, fmt.Errorf("teleport event: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("error finding teleport event: %w", err)
	}
	return &event, nil
}

// GetProof returns the proof of the most recent burn of tokenID. An empty
// sourceChainID matches every source chain.
func (s *Service) GetProof(ctx context.Context, sourceChainID string, tokenID string) (p *models.Proof, err error) {
	defer func(start time.Time) { observe(start, err) }(time.Now())

	id, ok := new(big.Int).SetString(tokenID, 10)
	if !ok || id.Sign() < 0 || id.BitLen() > 256 {
		return nil, &models.ValidationError{Field: "token_id", Reason: "not a uint256 decimal"}
	}

	filter := bson.M{"token_id": id.String()}
	if sourceChainID != "" {
		filter["source_chain_id"] = sourceChainID
	}

	event, err := s.findEvent(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.proofForEvent(ctx, event)
}

func (s *Service) GetProofByLeaf(ctx context.Context, leafHash string) (p *models.Proof, err error) {
	defer func(start time.Time) { observe(start, err) }(time.Now())

	leaf, err := parseHash("leaf_hash", leafHash)
	if err != nil {
		return nil, err
	}

	event, err := s.findEvent(ctx, bson.M{"leaf_hash": leaf})
	if err != nil {
		return nil, err
	}
	return s.proofForEvent(ctx, event)
}

func (s *Service) GetProofByBurnTx(ctx context.Context, burnTxHash string) (p *models.Proof, err error) {
	defer func(start time.Time) { observe(start, err) }(time.Now())

	hash, err := parseHash("burn_tx_hash", burnTxHash)
	if err != nil {
		return nil, err
	}

	event, err := s.findEvent(ctx, bson.M{"burn_tx_hash": hash})
	if err != nil {
		return nil, err
	}
	return s.proofForEvent(ctx, event)
}

func (s *Service) proofForEvent(ctx context.Context, event *models.TeleportEvent) (*models.Proof, error) {
	if event.Status != models.EventStatusBatched || event.BatchID == "" {
		return nil, fmt.Errorf("burn %s is not batched yet: %w", event.BurnTxHash, models.ErrNotReady)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var batch models.CommitmentBatch
	err := app.DB.FindOne(models.CollectionCommitmentBatches, bson.M{"batch_id": event.BatchID}, &batch)
	if err != nil {
		if app.IsNoDocuments(err) {
			return nil, fmt.Errorf("batch %s: %w", event.BatchID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("error finding batch: %w", err)
	}
	if batch.Status != models.BatchStatusConfirmed {
		return nil, fmt.Errorf("batch %s is %s: %w", batch.BatchID, batch.Status, models.ErrNotReady)
	}

	tree, err := s.tree(&batch)
	if err != nil {
		return nil, err
	}

	p, err := Build(tree, &batch, common.HexToHash(event.LeafHash))
	if err != nil {
		return nil, fmt.Errorf("error building proof for %s: %w", event.BurnTxHash, err)
	}
	p.TokenID = event.TokenID
	p.Owner = event.Owner
	p.TokenURI = event.TokenURI
	p.BurnTxHash = event.BurnTxHash
	return p, nil
}

func (s *Service) tree(batch *models.CommitmentBatch) (*merkle.Tree, error) {
	if tree, ok := s.trees.Get(batch.BatchID); ok {
		return tree, nil
	}

	tree, err := TreeOf(batch)
	if err != nil {
		return nil, err
	}
	s.trees.Add(batch.BatchID, tree)
	log.Debug("[PROOF] Cached tree of batch ", batch.BatchID)
	return tree, nil
}

func NewService(cacheSize int) (*Service, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	trees, err := lru.New[string, *merkle.Tree](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("error creating proof cache: %w", err)
	}
	return &Service{trees: trees}, nil
}
