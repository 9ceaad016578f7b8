package client

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/teleport-relayer/models"
)

const (
	MAX_QUERY_BLOCKS int64 = 499

	MaxRPCRetries = 3
)

// ChainConfig identifies one EVM chain the relayer talks to.
type ChainConfig struct {
	Name       string
	ChainID    string
	RPCURL     string
	RPCTimeout time.Duration
}

func SourceChain(config models.SourceChainConfig) ChainConfig {
	return ChainConfig{
		Name:       config.Name,
		ChainID:    config.ChainID,
		RPCURL:     config.RPCURL,
		RPCTimeout: time.Duration(config.RPCTimeoutMillis) * time.Millisecond,
	}
}

func DestinationChain(config models.DestinationConfig) ChainConfig {
	return ChainConfig{
		Name:       "destination",
		ChainID:    config.ChainID,
		RPCURL:     config.RPCURL,
		RPCTimeout: time.Duration(config.RPCTimeoutMillis) * time.Millisecond,
	}
}

type EthereumClient interface {
	ValidateNetwork()
	Chain() ChainConfig
	GetBlockNumber() (uint64, error)
	GetChainID() (*big.Int, error)
	GetClient() *ethclient.Client
	GetTransactionByHash(txHash string) (*types.Transaction, bool, error)
	GetTransactionReceipt(txHash string) (*types.Receipt, error)
}

type ethereumClient struct {
	chain  ChainConfig
	client *ethclient.Client
}

// NewBackOff is the retry policy of a single RPC call.
var NewBackOff = func() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, MaxRPCRetries)
}

// Retry calls fn until it succeeds or the retry budget is spent. A spent
// budget is reported as a TransientNetworkError. ethereum.NotFound is final.
func Retry(op string, fn func() error) error {
	err := backoff.RetryNotify(
		func() error {
			err := fn()
			if errors.Is(err, ethereum.NotFound) {
				return backoff.Permanent(err)
			}
			return err
		},
		NewBackOff(),
		func(err error, next time.Duration) {
			log.Warn("[ETH] ", op, " failed, retrying in ", next, ": ", err)
		},
	)
	if err == nil || errors.Is(err, ethereum.NotFound) {
		return err
	}
	return &models.TransientNetworkError{Op: op, Err: err}
}

func (c *ethereumClient) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.chain.RPCTimeout)
}

func (c *ethereumClient) Chain() ChainConfig {
	return c.chain
}

func (c *ethereumClient) GetClient() *ethclient.Client {
	return c.client
}

func (c *ethereumClient) GetBlockNumber() (uint64, error) {
	var blockNumber uint64
	err := Retry("eth_blockNumber", func() error {
		ctx, cancel := c.context()
		defer cancel()

		var err error
		blockNumber, err = c.client.BlockNumber(ctx)
		return err
	})
	return blockNumber, err
}

func (c *ethereumClient) GetChainID() (*big.Int, error) {
	var chainID *big.Int
	err := Retry("eth_chainId", func() error {
		ctx, cancel := c.context()
		defer cancel()

		var err error
		chainID, err = c.client.ChainID(ctx)
		return err
	})
	return chainID, err
}

func (c *ethereumClient) ValidateNetwork() {
	log.Debugln("[ETH]", "Validating network", c.chain.Name)
	log.Debugln("[ETH]", "uri", c.chain.RPCURL)

	chainID, err := c.GetChainID()
	if err != nil {
		log.Fatalln("[ETH]", "Failed to get chain ID:", err)
	}
	blockNumber, err := c.GetBlockNumber()
	if err != nil {
		log.Fatalln("[ETH]", "Failed to get block number:", err)
	}

	log.Debugln("[ETH]", "chainID", chainID.String())

	if chainID.String() != c.chain.ChainID {
		log.Fatalln("[ETH]", "Chain ID Mismatch", "expected", c.chain.ChainID, "got", chainID.String())
	}

	log.Debugln("[ETH]", "blockNumber", blockNumber)

	log.Infoln("[ETH]", "Validated network", c.chain.Name)
}

func (c *ethereumClient) GetTransactionByHash(txHash string) (*types.Transaction, bool, error) {
	var tx *types.Transaction
	var isPending bool
	err := Retry("eth_getTransactionByHash", func() error {
		ctx, cancel := c.context()
		defer cancel()

		var err error
		tx, isPending, err = c.client.TransactionByHash(ctx, common.HexToHash(txHash))
		return err
	})
	return tx, isPending, err
}

// GetTransactionReceipt returns ethereum.NotFound while the tx is not mined.
func (c *ethereumClient) GetTransactionReceipt(txHash string) (*types.Receipt, error) {
	var receipt *types.Receipt
	err := Retry("eth_getTransactionReceipt", func() error {
		ctx, cancel := c.context()
		defer cancel()

		var err error
		receipt, err = c.client.TransactionReceipt(ctx, common.HexToHash(txHash))
		return err
	})
	return receipt, err
}

func newEthereumClient(chain ChainConfig, client *ethclient.Client) *ethereumClient {
	return &ethereumClient{
		chain:  chain,
		client: client,
	}
}

func NewClient(chain ChainConfig) (EthereumClient, error) {
	client, err := ethclient.Dial(chain.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("error dialing %s: %w", chain.Name, err)
	}
	return newEthereumClient(chain, client), nil
}
