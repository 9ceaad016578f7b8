package common

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type MnemonicSigner struct {
	ethAddress common.Address
	ethPrivKey *ecdsa.PrivateKey
}

var _ Signer = &MnemonicSigner{}

func NewMnemonicSigner(mnemonic string) (*MnemonicSigner, error) {
	ethPrivKey, err := EthereumPrivateKeyFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("failed to create ethereum private key: %w", err)
	}

	return NewPrivateKeySigner(ethPrivKey), nil
}

func NewPrivateKeySigner(key *ecdsa.PrivateKey) *MnemonicSigner {
	return &MnemonicSigner{
		ethPrivKey: key,
		ethAddress: crypto.PubkeyToAddress(key.PublicKey),
	}
}

func (s *MnemonicSigner) Destroy() {
	// nothing to do
}

func (s *MnemonicSigner) SignHash(hash common.Hash) ([]byte, error) {
	return crypto.Sign(hash[:], s.ethPrivKey)
}

func (s *MnemonicSigner) EthSign(data []byte) ([]byte, error) {
	signature, err := s.SignHash(digestOf(data))
	if err != nil {
		return nil, err
	}
	return toEthSignature(signature), nil
}

func (s *MnemonicSigner) EthAddress() common.Address {
	return s.ethAddress
}
