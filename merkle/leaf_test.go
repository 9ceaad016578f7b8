package merkle

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestEncodeLeaf(t *testing.T) {
	t.Run("Canonical Layout", func(t *testing.T) {
		encoded, err := EncodeLeaf(big.NewInt(1), common.HexToAddress("0x1111111111111111111111111111111111111111"), "ipfs://token/1")
		assert.NoError(t, err)
		assert.Equal(t,
			"0000000000000000000000000000000000000000000000000000000000000001"+
				"0000000000000000000000001111111111111111111111111111111111111111"+
				"0000000000000000000000000000000000000000000000000000000000000060"+
				"000000000000000000000000000000000000000000000000000000000000000e"+
				"697066733a2f2f746f6b656e2f31000000000000000000000000000000000000",
			common.Bytes2Hex(encoded),
		)
	})

	t.Run("Empty Token URI", func(t *testing.T) {
		encoded, err := EncodeLeaf(big.NewInt(7), common.HexToAddress("0x1111111111111111111111111111111111111111"), "")
		assert.NoError(t, err)
		assert.Len(t, encoded, 4*32)
	})

	t.Run("Nil Token ID", func(t *testing.T) {
		_, err := EncodeLeaf(nil, common.Address{}, "uri")
		assert.Error(t, err)
	})

	t.Run("Negative Token ID", func(t *testing.T) {
		_, err := EncodeLeaf(big.NewInt(-1), common.Address{}, "uri")
		assert.Error(t, err)
	})

	t.Run("Token ID Too Large", func(t *testing.T) {
		tooLarge := new(big.Int).Lsh(big.NewInt(1), 256)
		_, err := EncodeLeaf(tooLarge, common.Address{}, "uri")
		assert.Error(t, err)
	})
}

func TestLeafHash(t *testing.T) {
	leaf, err := LeafHash(big.NewInt(1), common.HexToAddress("0x1111111111111111111111111111111111111111"), "ipfs://token/1")
	assert.NoError(t, err)
	assert.Equal(t, common.HexToHash("0x6bcfe819264f07bb4a7f62f8c11ed02c2ccdcaa5aec0cb632f65b0db9f7a30fb"), leaf)

	leaf, err = LeafHash(big.NewInt(7), common.HexToAddress("0x1111111111111111111111111111111111111111"), "")
	assert.NoError(t, err)
	assert.Equal(t, common.HexToHash("0x5aa8142eb56a025df1b0f0f3440f445b56d5dfb271b0b71c90e3c68dfec4cfdb"), leaf)

	other, err := LeafHash(big.NewInt(1), common.HexToAddress("0x1111111111111111111111111111111111111111"), "ipfs://token/2")
	assert.NoError(t, err)
	assert.NotEqual(t, leaf, other)
}
