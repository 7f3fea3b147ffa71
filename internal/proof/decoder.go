package proof

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/dmagro/eth-proof-client/internal/hexutil"
	"github.com/dmagro/eth-proof-client/internal/jsonval"
	"github.com/dmagro/eth-proof-client/internal/rpc"
)

// HeaderByNumber fetches the header of the given block. A nil number
// selects the node's latest block. Construction is all-or-nothing: a
// missing, non-string, or malformed field fails the whole decode.
func HeaderByNumber(ctx context.Context, c rpc.Caller, number *big.Int) (*BlockHeader, error) {
	// Second param false: transaction hashes only, the header fields are
	// all this decoder reads.
	v, err := call(ctx, c, "eth_getBlockByNumber", encodeTag(number), false)
	if err != nil {
		return nil, err
	}
	obj, err := jsonval.Object(v)
	if err != nil {
		return nil, fmt.Errorf("eth_getBlockByNumber result: %w", err)
	}

	var h BlockHeader
	for _, f := range []struct {
		name string
		dst  **big.Int
	}{
		{"parentHash", &h.ParentHash},
		{"sha3Uncles", &h.Sha3Uncles},
		{"miner", &h.Miner},
		{"stateRoot", &h.StateRoot},
		{"transactionsRoot", &h.TransactionsRoot},
		{"receiptsRoot", &h.ReceiptsRoot},
		{"logsBloom", &h.LogsBloom},
		{"difficulty", &h.Difficulty},
		{"number", &h.Number},
		{"gasLimit", &h.GasLimit},
		{"gasUsed", &h.GasUsed},
		{"timestamp", &h.Timestamp},
		{"mixHash", &h.MixHash},
		{"nonce", &h.Nonce},
	} {
		if *f.dst, err = bigProperty(obj, f.name); err != nil {
			return nil, err
		}
	}

	extra, err := jsonval.StringProperty(obj, "extraData")
	if err != nil {
		return nil, err
	}
	if h.ExtraData, err = hexutil.ParseBytes(extra); err != nil {
		return nil, fmt.Errorf("property %q: %w", "extraData", err)
	}

	return &h, nil
}

// StorageAt reads one storage slot of the given account. A nil number
// selects the latest block.
func StorageAt(ctx context.Context, c rpc.Caller, address, position, number *big.Int) (*big.Int, error) {
	v, err := call(ctx, c, "eth_getStorageAt",
		hexutil.EncodeAddress(address),
		hexutil.EncodeQuantity(position),
		encodeTag(number))
	if err != nil {
		return nil, err
	}
	s, err := jsonval.String(v)
	if err != nil {
		return nil, fmt.Errorf("eth_getStorageAt result: %w", err)
	}
	value, err := hexutil.ParseBig(s)
	if err != nil {
		return nil, fmt.Errorf("eth_getStorageAt result: %w", err)
	}
	return value, nil
}

// ProofAt fetches the account and storage proofs for address at a concrete
// block number. eth_getProof has no "latest" form, so a nil number is
// rejected; callers resolve the tag first (see HeaderByNumber).
func ProofAt(ctx context.Context, c rpc.Caller, address *big.Int, positions []*big.Int, number *big.Int) (*AccountResult, error) {
	if number == nil {
		return nil, fmt.Errorf("eth_getProof requires a concrete block number")
	}

	keys := make([]string, len(positions))
	for i, p := range positions {
		keys[i] = hexutil.EncodeQuantity(p)
	}

	v, err := call(ctx, c, "eth_getProof",
		hexutil.EncodeAddress(address),
		keys,
		hexutil.EncodeQuantity(number))
	if err != nil {
		return nil, err
	}
	obj, err := jsonval.Object(v)
	if err != nil {
		return nil, fmt.Errorf("eth_getProof result: %w", err)
	}

	rawAccount, err := jsonval.ArrayProperty(obj, "accountProof")
	if err != nil {
		return nil, err
	}
	res := &AccountResult{AccountProof: make([][]byte, len(rawAccount))}
	for i, node := range rawAccount {
		if res.AccountProof[i], err = decodeNode(node); err != nil {
			return nil, fmt.Errorf("accountProof[%d]: %w", i, err)
		}
	}

	rawStorage, err := jsonval.ArrayProperty(obj, "storageProof")
	if err != nil {
		return nil, err
	}
	res.StorageProof = make([]StorageProofEntry, len(rawStorage))
	for i, raw := range rawStorage {
		entry, err := decodeStorageEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("storageProof[%d]: %w", i, err)
		}
		res.StorageProof[i] = entry
	}

	return res, nil
}

// call issues one transport call and decodes the raw result into an
// untyped JSON value for shape checking.
func call(ctx context.Context, c rpc.Caller, method string, params ...any) (any, error) {
	raw, err := c.Call(ctx, method, params...)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%s: invalid JSON result: %w", method, err)
	}
	return v, nil
}

// encodeTag renders a block number for the wire; nil selects "latest".
func encodeTag(number *big.Int) string {
	if number == nil {
		return "latest"
	}
	return hexutil.EncodeQuantity(number)
}

// bigProperty reads a hex-quantity string property into a big.Int.
func bigProperty(obj map[string]any, name string) (*big.Int, error) {
	s, err := jsonval.StringProperty(obj, name)
	if err != nil {
		return nil, err
	}
	v, err := hexutil.ParseBig(s)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", name, err)
	}
	return v, nil
}

func decodeNode(v any) ([]byte, error) {
	s, err := jsonval.String(v)
	if err != nil {
		return nil, err
	}
	return hexutil.ParseBytes(s)
}

func decodeStorageEntry(v any) (StorageProofEntry, error) {
	var entry StorageProofEntry
	obj, err := jsonval.Object(v)
	if err != nil {
		return entry, err
	}
	if entry.Key, err = bigProperty(obj, "key"); err != nil {
		return entry, err
	}
	if entry.Value, err = bigProperty(obj, "value"); err != nil {
		return entry, err
	}
	nodes, err := jsonval.ArrayProperty(obj, "proof")
	if err != nil {
		return entry, err
	}
	entry.Proof = make([][]byte, len(nodes))
	for i, node := range nodes {
		if entry.Proof[i], err = decodeNode(node); err != nil {
			return entry, fmt.Errorf("proof[%d]: %w", i, err)
		}
	}
	return entry, nil
}
