// Package proof decodes block headers and Merkle proof material from an
// Ethereum JSON-RPC node into typed records for a state-proof verifier.
// Each decode issues exactly one transport call, validates the raw result
// field by field, and either returns a complete record or fails; no partial
// records, no defaults, no retries at this layer.
package proof

import "math/big"

// BlockHeader carries the header fields a state-proof verifier anchors to.
// Every numeric field is an unbounded unsigned integer as decoded from its
// hex wire string; ExtraData is the one variable-length byte field.
type BlockHeader struct {
	ParentHash       *big.Int
	Sha3Uncles       *big.Int
	Miner            *big.Int
	StateRoot        *big.Int
	TransactionsRoot *big.Int
	ReceiptsRoot     *big.Int
	LogsBloom        *big.Int
	Difficulty       *big.Int
	Number           *big.Int
	GasLimit         *big.Int
	GasUsed          *big.Int
	Timestamp        *big.Int
	ExtraData        []byte
	MixHash          *big.Int
	Nonce            *big.Int
}

// StorageProofEntry is one storage slot plus the trie nodes proving it.
// Proof holds the node encodings in path order, root first; the order is
// semantically meaningful and preserved exactly as the node returned it.
type StorageProofEntry struct {
	Key   *big.Int
	Value *big.Int
	Proof [][]byte
}

// AccountResult is the decoded eth_getProof result: the account's own
// inclusion proof and one entry per requested storage slot. Either slice
// may be empty, but both are always present.
type AccountResult struct {
	AccountProof [][]byte
	StorageProof []StorageProofEntry
}
