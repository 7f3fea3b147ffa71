// Package hexutil converts between the Ethereum JSON-RPC hex wire encoding
// and arbitrary-precision unsigned integers or byte slices. All values on
// the wire are 0x-prefixed hex strings; all values in the program are
// *big.Int or []byte.
package hexutil

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// ParseBig decodes a hex-encoded unsigned quantity. The 0x prefix is
// optional and an empty digit string decodes to zero, matching what nodes
// send for zero-valued fields.
func ParseBig(s string) (*big.Int, error) {
	digits := strings.TrimPrefix(s, "0x")
	if digits == "" {
		return new(big.Int), nil
	}
	if !isHex(digits) {
		return nil, fmt.Errorf("invalid hex string %q", s)
	}
	// Cannot fail after the digit check above.
	v, _ := new(big.Int).SetString(digits, 16)
	return v, nil
}

// ParseBytes decodes a hex-encoded byte string, two digits per byte. The
// digit count must be even; trie nodes and extraData are byte-aligned on
// the wire.
func ParseBytes(s string) ([]byte, error) {
	digits := strings.TrimPrefix(s, "0x")
	if len(digits)%2 != 0 {
		return nil, fmt.Errorf("odd-length hex string %q", s)
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string %q", s)
	}
	return b, nil
}

// EncodeBytes encodes b as a 0x-prefixed hex string, two digits per byte.
func EncodeBytes(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// EncodeAddress encodes v as a 20-byte address: 0x plus exactly 40
// lowercase hex digits, zero-left-padded. Values wider than 160 bits
// produce a longer string; callers own that invariant.
func EncodeAddress(v *big.Int) string {
	return fmt.Sprintf("0x%040x", v)
}

// EncodeQuantity encodes v in the minimal-width "quantity" convention:
// 0x-prefixed lowercase hex with no leading zeros ("0x0" for zero).
func EncodeQuantity(v *big.Int) string {
	return fmt.Sprintf("0x%x", v)
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
