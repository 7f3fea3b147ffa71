package main

import (
	"math/big"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmagro/eth-proof-client/internal/output"
	"github.com/dmagro/eth-proof-client/internal/proof"
)

func proofCmd() *cobra.Command {
	var blockArg string

	cmd := &cobra.Command{
		Use:   "proof <address> [position...]",
		Short: "Fetch the account and storage proofs for an address",
		Long: `Fetch the eth_getProof result for an address and optional storage
positions. eth_getProof needs a concrete block number, so "latest" is
resolved through a header fetch first. The header at that number is
fetched alongside the proof: its stateRoot is what a verifier checks
the proof against.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			positions := make([]*big.Int, 0, len(args)-1)
			for _, a := range args[1:] {
				p, err := parseQuantityArg(a)
				if err != nil {
					return err
				}
				positions = append(positions, p)
			}
			number, err := parseBlockArg(blockArg)
			if err != nil {
				return err
			}

			_, client, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			// Pin "latest" to a number before asking for the proof.
			if number == nil {
				h, err := proof.HeaderByNumber(ctx, client, nil)
				if err != nil {
					return err
				}
				number = h.Number
			}

			// Header and proof are independent calls against the same
			// pinned block; fetch them together.
			var (
				header *proof.BlockHeader
				res    *proof.AccountResult
			)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				header, err = proof.HeaderByNumber(gctx, client, number)
				return err
			})
			g.Go(func() error {
				var err error
				res, err = proof.ProofAt(gctx, client, address, positions, number)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			output.RenderProof(client.Name(), address, header, res)
			return nil
		},
	}

	cmd.Flags().StringVar(&blockArg, "block", "latest", `block number or "latest"`)
	return cmd
}
