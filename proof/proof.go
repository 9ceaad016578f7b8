package proof

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/dan13ram/teleport-relayer/merkle"
	"github.com/dan13ram/teleport-relayer/models"
)

// TreeOf rebuilds the tree of a sealed batch from its stored leaves.
func TreeOf(batch *models.CommitmentBatch) (*merkle.Tree, error) {
	if batch.TreeVersion != merkle.TreeVersion {
		return nil, fmt.Errorf("batch %s uses unsupported tree version %d", batch.BatchID, batch.TreeVersion)
	}

	leaves := make([]common.Hash, len(batch.Leaves))
	for i, leaf := range batch.Leaves {
		leaves[i] = common.HexToHash(leaf)
	}

	tree, err := merkle.NewTree(leaves)
	if err != nil {
		return nil, fmt.Errorf("error building tree for batch %s: %w", batch.BatchID, err)
	}
	if tree.Root() != common.HexToHash(batch.Root) {
		return nil, fmt.Errorf("batch %s root mismatch: stored %s, computed %s", batch.BatchID, batch.Root, tree.Root().Hex())
	}
	return tree, nil
}

// Build returns the inclusion proof of leaf in the batch tree. Token fields
// are left for the caller to fill.
func Build(tree *merkle.Tree, batch *models.CommitmentBatch, leaf common.Hash) (*models.Proof, error) {
	path, err := tree.Proof(leaf)
	if err != nil {
		return nil, err
	}

	siblings := make([]models.ProofElement, len(path))
	for i, element := range path {
		siblings[i] = models.ProofElement{
			Sibling:  element.Sibling.Hex(),
			Position: models.ProofPosition(element.Position.String()),
		}
	}

	return &models.Proof{
		BatchID:       batch.BatchID,
		SourceChainID: batch.SourceChainID,
		Root:          tree.Root().Hex(),
		Leaf:          leaf.Hex(),
		Siblings:      siblings,
	}, nil
}

// Verify recomputes the root of a proof from its leaf and siblings.
func Verify(p *models.Proof) bool {
	if p == nil {
		return false
	}

	path := make([]merkle.Element, len(p.Siblings))
	for i, element := range p.Siblings {
		switch element.Position {
		case models.ProofPositionLeft:
			path[i] = merkle.Element{Sibling: common.HexToHash(element.Sibling), Position: merkle.Left}
		case models.ProofPositionRight:
			path[i] = merkle.Element{Sibling: common.HexToHash(element.Sibling), Position: merkle.Right}
		default:
			return false
		}
	}

	return merkle.Verify(common.HexToHash(p.Root), common.HexToHash(p.Leaf), path)
}
