package common

import (
	"github.com/ethereum/go-ethereum/common"
)

// Signer holds the relayer key used for destination chain transactions.
type Signer interface {
	// SignHash returns a 65 byte [R || S || V] signature with V in {0, 1}.
	SignHash(hash common.Hash) ([]byte, error)
	// EthSign hashes data with keccak256 unless it is already a 32 byte digest
	// and returns a signature with V in {27, 28}.
	EthSign(data []byte) ([]byte, error)
	EthAddress() common.Address
	Destroy()
}

func digestOf(data []byte) common.Hash {
	if len(data) == HashLength {
		return common.BytesToHash(data)
	}
	return keccak(data)
}

func toEthSignature(sig []byte) []byte {
	out := make([]byte, len(sig))
	copy(out, sig)
	if out[64] < 27 {
		out[64] += 27
	}
	return out
}
