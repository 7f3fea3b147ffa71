package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmagro/eth-proof-client/internal/output"
	"github.com/dmagro/eth-proof-client/internal/proof"
)

func headerCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "header [block]",
		Short: "Fetch and display a block header",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			number, err := parseBlockArg(arg)
			if err != nil {
				return err
			}

			cfg, client, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if !all {
				h, err := proof.HeaderByNumber(ctx, client, number)
				if err != nil {
					return err
				}
				output.RenderHeader(client.Name(), h)
				return nil
			}

			// Query every endpoint concurrently; handy for spotting a
			// lagging or disagreeing node.
			headers := make([]*proof.BlockHeader, len(cfg.Endpoints))
			g, gctx := errgroup.WithContext(ctx)
			for i := range cfg.Endpoints {
				i := i
				g.Go(func() error {
					c := clientFor(cfg, &cfg.Endpoints[i])
					h, err := proof.HeaderByNumber(gctx, c, number)
					if err != nil {
						return fmt.Errorf("%s: %w", c.Name(), err)
					}
					headers[i] = h
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for i := range cfg.Endpoints {
				output.RenderHeader(cfg.Endpoints[i].Name, headers[i])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "query every configured endpoint")
	return cmd
}
