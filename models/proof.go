package models

type ProofPosition string

const (
	ProofPositionLeft  ProofPosition = "left"
	ProofPositionRight ProofPosition = "right"
)

// ProofElement is one sibling on the path from a leaf to the root.
// Position is the side the sibling takes when the pair is hashed.
type ProofElement struct {
	Sibling  string        `bson:"sibling" json:"sibling"`
	Position ProofPosition `bson:"position" json:"position"`
}

type Proof struct {
	BatchID       string         `bson:"batch_id" json:"batch_id"`
	SourceChainID string         `bson:"source_chain_id" json:"source_chain_id"`
	Root          string         `bson:"root" json:"root"`
	Leaf          string         `bson:"leaf" json:"leaf"`
	TokenID       string         `bson:"token_id" json:"token_id"`
	Owner         string         `bson:"owner" json:"owner"`
	TokenURI      string         `bson:"token_uri" json:"token_uri"`
	BurnTxHash    string         `bson:"burn_tx_hash" json:"burn_tx_hash"`
	Siblings      []ProofElement `bson:"siblings" json:"siblings"`
}
