// Package main implements proofctl, a CLI for fetching Ethereum block
// headers, storage slots and Merkle state proofs over JSON-RPC.
//
// Usage:
//
//	proofctl header latest
//	proofctl header 21233467 --all
//	proofctl storage 0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045 0
//	proofctl proof 0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045 0 1 --block 21233467
package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmagro/eth-proof-client/internal/config"
	"github.com/dmagro/eth-proof-client/internal/env"
	"github.com/dmagro/eth-proof-client/internal/hexutil"
	"github.com/dmagro/eth-proof-client/internal/rpc"
)

var (
	cfgPath      string
	endpointName string

	pool = rpc.NewClientPool()
)

func main() {
	env.Load()

	root := &cobra.Command{
		Use:           "proofctl",
		Short:         "Fetch Ethereum block headers, storage slots and state proofs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "endpoints.yaml", "path to endpoint config file")
	root.PersistentFlags().StringVar(&endpointName, "endpoint", "", "endpoint name (default: first configured)")

	root.AddCommand(headerCmd(), storageCmd(), proofCmd())

	// Ctrl+C cancels in-flight RPC calls through the context.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the config file and resolves the selected endpoint's
// client.
func loadConfig() (*config.Config, *rpc.Client, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	ep, err := cfg.Endpoint(endpointName)
	if err != nil {
		return nil, nil, err
	}
	return cfg, clientFor(cfg, ep), nil
}

func clientFor(cfg *config.Config, ep *config.Endpoint) *rpc.Client {
	return pool.GetOrCreate(ep.Name, ep.URL, ep.Timeout, cfg.Defaults.MaxRetries)
}

// parseQuantityArg accepts a decimal or 0x-prefixed hex unsigned integer.
func parseQuantityArg(s string) (*big.Int, error) {
	if strings.HasPrefix(s, "0x") {
		return hexutil.ParseBig(s)
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid quantity %q", s)
	}
	return n, nil
}

// parseBlockArg turns a CLI block argument into the decoders' tag form:
// nil for "latest", otherwise a concrete number.
func parseBlockArg(s string) (*big.Int, error) {
	if s == "" || s == "latest" {
		return nil, nil
	}
	return parseQuantityArg(s)
}

// parseAddress accepts a 0x-prefixed (or bare) hex account address.
func parseAddress(s string) (*big.Int, error) {
	v, err := hexutil.ParseBig(s)
	if err != nil {
		return nil, fmt.Errorf("invalid address %q", s)
	}
	return v, nil
}
