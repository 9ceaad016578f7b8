package merkle

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// LeafEncodingVersion identifies abi.encode(uint256 tokenId, address owner, string tokenURI).
// Contracts verifying claims recompute the leaf with exactly this encoding.
const LeafEncodingVersion uint8 = 1

var leafArguments abi.Arguments

func init() {
	uint256Type, err := abi.NewType("uint256", "", nil)
	if err != nil {
		panic(err)
	}
	addressType, err := abi.NewType("address", "", nil)
	if err != nil {
		panic(err)
	}
	stringType, err := abi.NewType("string", "", nil)
	if err != nil {
		panic(err)
	}
	leafArguments = abi.Arguments{
		{Name: "tokenId", Type: uint256Type},
		{Name: "owner", Type: addressType},
		{Name: "tokenURI", Type: stringType},
	}
}

// EncodeLeaf returns the canonical leaf preimage.
func EncodeLeaf(tokenID *big.Int, owner common.Address, tokenURI string) ([]byte, error) {
	if tokenID == nil {
		return nil, fmt.Errorf("token id is nil")
	}
	if tokenID.Sign() < 0 || tokenID.BitLen() > 256 {
		return nil, fmt.Errorf("token id %s out of uint256 range", tokenID)
	}
	return leafArguments.Pack(tokenID, owner, tokenURI)
}

// LeafHash is keccak256 of the canonical leaf encoding.
func LeafHash(tokenID *big.Int, owner common.Address, tokenURI string) (common.Hash, error) {
	encoded, err := EncodeLeaf(tokenID, owner, tokenURI)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(encoded), nil
}
