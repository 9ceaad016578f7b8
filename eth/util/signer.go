package util

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/dan13ram/teleport-relayer/common"
)

var ErrNotAuthorized = errors.New("signer is not authorized to sign for this address")

// NewTransactOpts returns transact opts that sign with the relayer signer,
// which may hold its key remotely.
func NewTransactOpts(ctx context.Context, signer common.Signer, chainID *big.Int, gasLimit uint64) (*bind.TransactOpts, error) {
	if signer == nil {
		return nil, errors.New("signer is required")
	}
	if chainID == nil {
		return nil, errors.New("chain id is required")
	}

	txSigner := types.LatestSignerForChainID(chainID)
	from := signer.EthAddress()

	return &bind.TransactOpts{
		From:     from,
		Context:  ctx,
		GasLimit: gasLimit,
		Signer: func(address ethcommon.Address, tx *types.Transaction) (*types.Transaction, error) {
			if address != from {
				return nil, ErrNotAuthorized
			}
			signature, err := signer.SignHash(txSigner.Hash(tx))
			if err != nil {
				return nil, err
			}
			return tx.WithSignature(txSigner, signature)
		},
	}, nil
}
