package client

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	EventTeleportInitiated = "TeleportInitiated"
	EventTeleportClaimed   = "TeleportClaimed"
)

const SourceTeleporterABI = `[
	{"anonymous":false,"type":"event","name":"TeleportInitiated","inputs":[
		{"indexed":true,"name":"tokenId","type":"uint256"},
		{"indexed":true,"name":"owner","type":"address"},
		{"indexed":false,"name":"timestamp","type":"uint256"},
		{"indexed":false,"name":"tokenURI","type":"string"}
	]}
]`

const RootRegistryABI = `[
	{"type":"function","name":"updateRoot","stateMutability":"nonpayable","inputs":[
		{"name":"root","type":"bytes32"}
	],"outputs":[]},
	{"type":"function","name":"isRootKnown","stateMutability":"view","inputs":[
		{"name":"root","type":"bytes32"}
	],"outputs":[
		{"name":"","type":"bool"}
	]}
]`

const DestinationTeleporterABI = `[
	{"type":"function","name":"claim","stateMutability":"nonpayable","inputs":[
		{"name":"tokenId","type":"uint256"},
		{"name":"owner","type":"address"},
		{"name":"tokenURI","type":"string"},
		{"name":"proof","type":"bytes32[]"},
		{"name":"proofIsLeft","type":"bool[]"}
	],"outputs":[]},
	{"anonymous":false,"type":"event","name":"TeleportClaimed","inputs":[
		{"indexed":true,"name":"tokenId","type":"uint256"},
		{"indexed":true,"name":"owner","type":"address"},
		{"indexed":false,"name":"leaf","type":"bytes32"}
	]}
]`

// TeleportInitiated is a burn log of a source teleporter. A log that does not
// decode is returned with only Raw set.
type TeleportInitiated struct {
	TokenId   *big.Int
	Owner     common.Address
	Timestamp *big.Int
	TokenURI  string
	Raw       types.Log
}

type TeleportClaimed struct {
	TokenId *big.Int
	Owner   common.Address
	Leaf    [32]byte
	Raw     types.Log
}

type SourceTeleporterContract interface {
	Address() common.Address
	FilterTeleportInitiated(opts *bind.FilterOpts) ([]*TeleportInitiated, error)
}

type RootRegistryContract interface {
	Address() common.Address
	IsRootKnown(opts *bind.CallOpts, root [32]byte) (bool, error)
	UpdateRoot(opts *bind.TransactOpts, root [32]byte) (*types.Transaction, error)
}

type DestinationTeleporterContract interface {
	Address() common.Address
	FilterTeleportClaimed(opts *bind.FilterOpts) ([]*TeleportClaimed, error)
	ParseTeleportClaimed(l types.Log) (*TeleportClaimed, error)
}

// boundContract pairs an abi binding with the filterer used for raw log queries.
type boundContract struct {
	address  common.Address
	abi      abi.ABI
	contract *bind.BoundContract
	filterer bind.ContractFilterer
	timeout  time.Duration
}

func newBoundContract(address common.Address, definition string, backend bind.ContractBackend, timeout time.Duration) (*boundContract, error) {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		return nil, fmt.Errorf("error parsing abi: %w", err)
	}
	return &boundContract{
		address:  address,
		abi:      parsed,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
		filterer: backend,
		timeout:  timeout,
	}, nil
}

func (c *boundContract) context(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, c.timeout)
}

func (c *boundContract) filterLogs(opts *bind.FilterOpts, event string) ([]types.Log, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(opts.Start),
		Addresses: []common.Address{c.address},
		Topics:    [][]common.Hash{{c.abi.Events[event].ID}},
	}
	if opts.End != nil {
		query.ToBlock = new(big.Int).SetUint64(*opts.End)
	}

	var logs []types.Log
	err := Retry("eth_getLogs", func() error {
		ctx, cancel := c.context(opts.Context)
		defer cancel()

		var err error
		logs, err = c.filterer.FilterLogs(ctx, query)
		return err
	})
	return logs, err
}

type SourceTeleporterContractImpl struct {
	*boundContract
}

func (x *SourceTeleporterContractImpl) Address() common.Address {
	return x.address
}

func (x *SourceTeleporterContractImpl) FilterTeleportInitiated(opts *bind.FilterOpts) ([]*TeleportInitiated, error) {
	logs, err := x.filterLogs(opts, EventTeleportInitiated)
	if err != nil {
		return nil, err
	}

	events := make([]*TeleportInitiated, 0, len(logs))
	for _, l := range logs {
		event := new(TeleportInitiated)
		if err := x.contract.UnpackLog(event, EventTeleportInitiated, l); err != nil {
			event = &TeleportInitiated{}
		}
		event.Raw = l
		events = append(events, event)
	}
	return events, nil
}

type RootRegistryContractImpl struct {
	*boundContract
}

func (x *RootRegistryContractImpl) Address() common.Address {
	return x.address
}

func (x *RootRegistryContractImpl) IsRootKnown(opts *bind.CallOpts, root [32]byte) (bool, error) {
	if opts == nil {
		opts = &bind.CallOpts{}
	}

	var known bool
	err := Retry("isRootKnown", func() error {
		ctx, cancel := x.context(opts.Context)
		defer cancel()

		callOpts := *opts
		callOpts.Context = ctx

		var out []interface{}
		if err := x.contract.Call(&callOpts, &out, "isRootKnown", root); err != nil {
			return err
		}
		known = *abi.ConvertType(out[0], new(bool)).(*bool)
		return nil
	})
	return known, err
}

func (x *RootRegistryContractImpl) UpdateRoot(opts *bind.TransactOpts, root [32]byte) (*types.Transaction, error) {
	return x.contract.Transact(opts, "updateRoot", root)
}

type DestinationTeleporterContractImpl struct {
	*boundContract
}

func (x *DestinationTeleporterContractImpl) Address() common.Address {
	return x.address
}

func (x *DestinationTeleporterContractImpl) FilterTeleportClaimed(opts *bind.FilterOpts) ([]*TeleportClaimed, error) {
	logs, err := x.filterLogs(opts, EventTeleportClaimed)
	if err != nil {
		return nil, err
	}

	events := make([]*TeleportClaimed, 0, len(logs))
	for _, l := range logs {
		event := new(TeleportClaimed)
		if err := x.contract.UnpackLog(event, EventTeleportClaimed, l); err != nil {
			event = &TeleportClaimed{}
		}
		event.Raw = l
		events = append(events, event)
	}
	return events, nil
}

// ParseTeleportClaimed decodes a receipt log emitted by this contract as a
// TeleportClaimed event.
func (x *DestinationTeleporterContractImpl) ParseTeleportClaimed(l types.Log) (*TeleportClaimed, error) {
	id := x.abi.Events[EventTeleportClaimed].ID
	if l.Address != x.address || len(l.Topics) == 0 || l.Topics[0] != id {
		return nil, fmt.Errorf("log %d of %s is not a %s event", l.Index, l.TxHash, EventTeleportClaimed)
	}

	event := new(TeleportClaimed)
	if err := x.contract.UnpackLog(event, EventTeleportClaimed, l); err != nil {
		return nil, fmt.Errorf("error decoding %s log: %w", EventTeleportClaimed, err)
	}
	event.Raw = l
	return event, nil
}

func NewSourceTeleporterContract(address common.Address, backend bind.ContractBackend, timeout time.Duration) (SourceTeleporterContract, error) {
	contract, err := newBoundContract(address, SourceTeleporterABI, backend, timeout)
	if err != nil {
		return nil, err
	}
	return &SourceTeleporterContractImpl{contract}, nil
}

func NewRootRegistryContract(address common.Address, backend bind.ContractBackend, timeout time.Duration) (RootRegistryContract, error) {
	contract, err := newBoundContract(address, RootRegistryABI, backend, timeout)
	if err != nil {
		return nil, err
	}
	return &RootRegistryContractImpl{contract}, nil
}

func NewDestinationTeleporterContract(address common.Address, backend bind.ContractBackend, timeout time.Duration) (DestinationTeleporterContract, error) {
	contract, err := newBoundContract(address, DestinationTeleporterABI, backend, timeout)
	if err != nil {
		return nil, err
	}
	return &DestinationTeleporterContractImpl{contract}, nil
}
