package merkle

import (
	"bytes"
	"errors"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// TreeVersion identifies the tree algorithm: keccak256, leaves sorted
// ascending, sorted-pair hashing, a lone node promoted unchanged.
const TreeVersion uint8 = 1

var (
	ErrEmptyTree   = errors.New("merkle tree has no leaves")
	ErrLeafMissing = errors.New("leaf is not in tree")
)

type Position uint8

const (
	// Left means the sibling is hashed on the left of the running node.
	Left Position = iota
	Right
)

func (p Position) String() string {
	if p == Left {
		return "left"
	}
	return "right"
}

type Element struct {
	Sibling  common.Hash
	Position Position
}

// Tree keeps every layer so proofs are a walk from leaf to root.
// layers[0] holds the sorted leaves and the last layer holds the root.
type Tree struct {
	layers [][]common.Hash
}

// HashPair hashes two nodes in ascending byte order.
func HashPair(a, b common.Hash) common.Hash {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return crypto.Keccak256Hash(a[:], b[:])
}

func sortedCopy(leaves []common.Hash) []common.Hash {
	sorted := make([]common.Hash, len(leaves))
	copy(sorted, leaves)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i][:], sorted[j][:]) < 0
	})
	return sorted
}

// NewTree builds the tree over leaves. The input order does not matter and
// the slice is not modified.
func NewTree(leaves []common.Hash) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}

	layer := sortedCopy(leaves)
	layers := [][]common.Hash{layer}
	for len(layer) > 1 {
		next := make([]common.Hash, 0, (len(layer)+1)/2)
		for i := 0; i < len(layer); i += 2 {
			if i+1 == len(layer) {
				next = append(next, layer[i])
				continue
			}
			next = append(next, HashPair(layer[i], layer[i+1]))
		}
		layers = append(layers, next)
		layer = next
	}

	return &Tree{layers: layers}, nil
}

func (t *Tree) Root() common.Hash {
	return t.layers[len(t.layers)-1][0]
}

// Leaves returns the leaves in tree order.
func (t *Tree) Leaves() []common.Hash {
	leaves := make([]common.Hash, len(t.layers[0]))
	copy(leaves, t.layers[0])
	return leaves
}

func (t *Tree) Len() int {
	return len(t.layers[0])
}

func (t *Tree) indexOf(leaf common.Hash) int {
	leaves := t.layers[0]
	i := sort.Search(len(leaves), func(i int) bool {
		return bytes.Compare(leaves[i][:], leaf[:]) >= 0
	})
	if i < len(leaves) && leaves[i] == leaf {
		return i
	}
	return -1
}

func (t *Tree) Contains(leaf common.Hash) bool {
	return t.indexOf(leaf) >= 0
}

// Proof returns the sibling path for leaf. A single leaf tree has an empty proof.
func (t *Tree) Proof(leaf common.Hash) ([]Element, error) {
	index := t.indexOf(leaf)
	if index < 0 {
		return nil, ErrLeafMissing
	}

	proof := []Element{}
	node := leaf
	for _, layer := range t.layers[:len(t.layers)-1] {
		siblingIndex := index ^ 1
		if siblingIndex < len(layer) {
			sibling := layer[siblingIndex]
			position := Right
			if bytes.Compare(sibling[:], node[:]) < 0 {
				position = Left
			}
			proof = append(proof, Element{Sibling: sibling, Position: position})
			node = HashPair(node, sibling)
		}
		index /= 2
	}

	return proof, nil
}

// Verify recomputes the root from leaf and proof.
func Verify(root common.Hash, leaf common.Hash, proof []Element) bool {
	node := leaf
	for _, element := range proof {
		if element.Position == Left {
			node = crypto.Keccak256Hash(element.Sibling[:], node[:])
		} else {
			node = crypto.Keccak256Hash(node[:], element.Sibling[:])
		}
	}
	return node == root
}
