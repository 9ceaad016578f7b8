package util

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"

	eth "github.com/dan13ram/teleport-relayer/eth/client"
	"github.com/dan13ram/teleport-relayer/merkle"
	"github.com/dan13ram/teleport-relayer/models"
)

var (
	testOwner  = common.HexToAddress("0xabcdefabcdefabcdefabcdefabcdefabcdefabcd")
	testTxHash = common.HexToHash("0x3a7bd3e2360a3d29eea436fcfb7e44c735d117c42d1c1835420b6b9942dd4f1b")
	testNow    = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
)

func testInitiated() *eth.TeleportInitiated {
	return &eth.TeleportInitiated{
		TokenId:   big.NewInt(42),
		Owner:     testOwner,
		Timestamp: big.NewInt(1700000000),
		TokenURI:  "ipfs://token/42",
		Raw: types.Log{
			TxHash:      testTxHash,
			Index:       3,
			BlockNumber: 120,
		},
	}
}

func TestCreateTeleportEvent(t *testing.T) {

	t.Run("Valid Log", func(t *testing.T) {
		event, err := CreateTeleportEvent("31338", testInitiated(), testNow)

		leaf, _ := merkle.LeafHash(big.NewInt(42), testOwner, "ipfs://token/42")
		assert.NoError(t, err)
		assert.Equal(t, models.TeleportEvent{
			SourceChainID:   "31338",
			TokenID:         "42",
			Owner:           testOwner.Hex(),
			TokenURI:        "ipfs://token/42",
			Timestamp:       1700000000,
			BurnTxHash:      testTxHash.Hex(),
			LogIndex:        3,
			BlockNumber:     120,
			LeafHash:        leaf.Hex(),
			EncodingVersion: merkle.LeafEncodingVersion,
			Status:          models.EventStatusPending,
			CreatedAt:       testNow,
			UpdatedAt:       testNow,
		}, event)
	})

	t.Run("Empty Token URI", func(t *testing.T) {
		log := testInitiated()
		log.TokenURI = ""

		event, err := CreateTeleportEvent("31338", log, testNow)

		leaf, _ := merkle.LeafHash(big.NewInt(42), testOwner, "")
		assert.NoError(t, err)
		assert.Equal(t, leaf.Hex(), event.LeafHash)
	})

	invalid := []struct {
		name   string
		field  string
		mutate func(e *eth.TeleportInitiated) *eth.TeleportInitiated
	}{
		{"Nil Log", "log", func(e *eth.TeleportInitiated) *eth.TeleportInitiated { return nil }},
		{"Removed Log", "log", func(e *eth.TeleportInitiated) *eth.TeleportInitiated { e.Raw.Removed = true; return e }},
		{"Undecodable Log", "log", func(e *eth.TeleportInitiated) *eth.TeleportInitiated {
			return &eth.TeleportInitiated{Raw: e.Raw}
		}},
		{"Missing Tx Hash", "tx_hash", func(e *eth.TeleportInitiated) *eth.TeleportInitiated { e.Raw.TxHash = common.Hash{}; return e }},
		{"Zero Owner", "owner", func(e *eth.TeleportInitiated) *eth.TeleportInitiated { e.Owner = common.Address{}; return e }},
		{"Token Too Wide", "token_id", func(e *eth.TeleportInitiated) *eth.TeleportInitiated {
			e.TokenId = new(big.Int).Lsh(big.NewInt(1), 256)
			return e
		}},
		{"Negative Token", "token_id", func(e *eth.TeleportInitiated) *eth.TeleportInitiated { e.TokenId = big.NewInt(-1); return e }},
		{"Timestamp Too Wide", "timestamp", func(e *eth.TeleportInitiated) *eth.TeleportInitiated {
			e.Timestamp = new(big.Int).Lsh(big.NewInt(1), 64)
			return e
		}},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CreateTeleportEvent("31338", tc.mutate(testInitiated()), testNow)

			var validationErr *models.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}
