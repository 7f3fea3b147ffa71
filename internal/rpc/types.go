package rpc

import (
	"encoding/json"
	"fmt"
)

// Request is a JSON-RPC 2.0 request envelope. Params is []any because each
// method takes a different parameter mix (hex strings, booleans, arrays).
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

// Response is a JSON-RPC 2.0 response envelope. Result stays raw so the
// caller decides what shape to decode it into.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *Error          `json:"error,omitempty"`
}

// Error is a JSON-RPC error reported by the node, as opposed to a local
// validation failure raised after a result arrives. Data carries the
// optional structured payload some nodes attach (revert reasons and the
// like). Callers separate the two failure kinds with errors.As.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
