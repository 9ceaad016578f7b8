package common

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
)

const testMnemonic = "test test test test test test test test test test test junk"

func TestEthereumPrivateKeyFromMnemonic(t *testing.T) {
	t.Run("Default Path", func(t *testing.T) {
		key, err := EthereumPrivateKeyFromMnemonic(testMnemonic)
		assert.NoError(t, err)
		assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), crypto.PubkeyToAddress(key.PublicKey))
	})

	t.Run("Second Account", func(t *testing.T) {
		key, err := EthereumPrivateKeyFromMnemonicPath(testMnemonic, "m/44'/60'/0'/0/1")
		assert.NoError(t, err)
		assert.Equal(t, common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"), crypto.PubkeyToAddress(key.PublicKey))
	})

	t.Run("Extra Whitespace", func(t *testing.T) {
		key, err := EthereumPrivateKeyFromMnemonic("  test test test test test test test test test test test   junk ")
		assert.NoError(t, err)
		assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), crypto.PubkeyToAddress(key.PublicKey))
	})

	t.Run("Invalid Mnemonic", func(t *testing.T) {
		key, err := EthereumPrivateKeyFromMnemonic("test test test")
		assert.Error(t, err)
		assert.Nil(t, key)
	})

	t.Run("Invalid Path", func(t *testing.T) {
		key, err := EthereumPrivateKeyFromMnemonicPath(testMnemonic, "not/a/path")
		assert.Error(t, err)
		assert.Nil(t, key)
	})
}

func TestNewMnemonicSigner(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic)
	assert.NoError(t, err)
	assert.NotNil(t, signer)

	assert.NotNil(t, signer.ethPrivKey)
	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), signer.EthAddress())

	_, err = NewMnemonicSigner("")
	assert.Error(t, err)
}

func TestMnemonicSigner_EthSign(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic)
	assert.NoError(t, err)

	data := []byte("test data")
	sig, err := signer.EthSign(data)
	assert.NoError(t, err)
	assert.Len(t, sig, SignatureLength)

	if sig[64] != 27 && sig[64] != 28 {
		t.Fatalf("invalid Ethereum signature")
	}

	sig[64] -= 27

	hash := crypto.Keccak256(data)
	pubKey, err := crypto.SigToPub(hash, sig)
	assert.NoError(t, err)

	recoveredAddr := crypto.PubkeyToAddress(*pubKey)
	assert.Equal(t, signer.EthAddress(), recoveredAddr)
}

func TestMnemonicSigner_SignHash(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic)
	assert.NoError(t, err)

	hash := crypto.Keccak256Hash([]byte("root"))
	sig, err := signer.SignHash(hash)
	assert.NoError(t, err)
	assert.Contains(t, []byte{0, 1}, sig[64])

	pubKey, err := crypto.SigToPub(hash[:], sig)
	assert.NoError(t, err)
	assert.Equal(t, signer.EthAddress(), crypto.PubkeyToAddress(*pubKey))

	// a 32 byte input is treated as a digest
	ethSig, err := signer.EthSign(hash[:])
	assert.NoError(t, err)
	assert.Equal(t, sig[:64], ethSig[:64])
	assert.Equal(t, sig[64]+27, ethSig[64])
}

func TestMnemonicSigner_Destroy(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic)
	assert.NoError(t, err)

	signer.Destroy()
}
