package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// assert, not require: handlers run outside the test goroutine
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var req Request
		assert.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "2.0", req.JSONRPC)
		assert.Equal(t, "eth_getStorageAt", req.Method)
		assert.Len(t, req.Params, 3)

		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x2a"}`))
	}))
	defer srv.Close()

	c := NewClient("test", srv.URL, time.Second, 0)
	raw, err := c.Call(context.Background(), "eth_getStorageAt", "0x0", "0x0", "latest")
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`"0x2a"`), raw)
}

func TestCallNilParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		// params must be [] on the wire, never null
		assert.Contains(t, string(body), `"params":[]`)
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x1"}`))
	}))
	defer srv.Close()

	c := NewClient("test", srv.URL, time.Second, 0)
	_, err := c.Call(context.Background(), "eth_blockNumber")
	require.NoError(t, err)
}

func TestCallProtocolError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"invalid params","data":"extra detail"}}`))
	}))
	defer srv.Close()

	c := NewClient("test", srv.URL, time.Second, 3)
	_, err := c.Call(context.Background(), "eth_getProof")
	require.Error(t, err)

	var rpcErr *Error
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, -32602, rpcErr.Code)
	assert.Equal(t, "invalid params", rpcErr.Message)
	assert.Equal(t, json.RawMessage(`"extra detail"`), rpcErr.Data)

	// A node-reported error is final: no retries.
	assert.Equal(t, int32(1), calls.Load())
}

func TestCallRetriesTransportError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x1"}`))
	}))
	defer srv.Close()

	c := NewClient("test", srv.URL, time.Second, 2)
	raw, err := c.Call(context.Background(), "eth_blockNumber")
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`"0x1"`), raw)
	assert.Equal(t, int32(3), calls.Load())
}

func TestCallExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient("test", srv.URL, time.Second, 1)
	_, err := c.Call(context.Background(), "eth_blockNumber")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 2 attempts")
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestErrorString(t *testing.T) {
	e := &Error{Code: -32700, Message: "parse error"}
	assert.Equal(t, "rpc error -32700: parse error", e.Error())
}

func TestClientPoolReuse(t *testing.T) {
	pool := NewClientPool()
	a := pool.GetOrCreate("node", "http://localhost:8545", time.Second, 0)
	b := pool.GetOrCreate("node", "http://localhost:8545", time.Second, 0)
	assert.Same(t, a, b)
	assert.Same(t, a, pool.Get("node"))
	assert.Nil(t, pool.Get("other"))
}
