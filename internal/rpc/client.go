// Package rpc implements a minimal JSON-RPC 2.0 client over HTTP for
// Ethereum nodes, plus the Caller capability consumed by the decoders in
// internal/proof.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Caller is the transport capability the decoders consume: one method name
// plus parameters in, one raw JSON result out. Implementations must be safe
// for concurrent use.
type Caller interface {
	Call(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type Client struct {
	name       string
	url        string
	httpClient *http.Client
	maxRetries int
}

func NewClient(name, url string, timeout time.Duration, maxRetries int) *Client {
	return &Client{
		name:       name,
		url:        url,
		maxRetries: maxRetries,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Name() string { return c.name }

// Call executes a JSON-RPC request with simple exponential backoff retry
// (100ms, 200ms, 400ms...). Transport failures are retried; an error the
// node itself reported comes back immediately as a wrapped *Error, since
// repeating the request would repeat the answer.
func (c *Client) Call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	req := Request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", method, err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		result, err := c.doRequest(ctx, body)
		if err == nil {
			return result, nil
		}

		var rpcErr *Error
		if errors.As(err, &rpcErr) {
			return nil, err
		}

		lastErr = err
		if attempt < c.maxRetries {
			backoff := time.Duration(1<<attempt) * 100 * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("%s: failed after %d attempts: %w", method, c.maxRetries+1, lastErr)
}

func (c *Client) doRequest(ctx context.Context, body []byte) (json.RawMessage, error) {
	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != 200 {
		return nil, fmt.Errorf("HTTP %d", httpResp.StatusCode)
	}

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	var resp Response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %w", err)
	}

	if resp.Error != nil {
		return nil, fmt.Errorf("%s: %w", c.name, resp.Error)
	}

	return resp.Result, nil
}
