package main

import (
	"github.com/spf13/cobra"

	"github.com/dmagro/eth-proof-client/internal/output"
	"github.com/dmagro/eth-proof-client/internal/proof"
)

func storageCmd() *cobra.Command {
	var blockArg string

	cmd := &cobra.Command{
		Use:   "storage <address> <position>",
		Short: "Read one storage slot of an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			position, err := parseQuantityArg(args[1])
			if err != nil {
				return err
			}
			number, err := parseBlockArg(blockArg)
			if err != nil {
				return err
			}

			_, client, err := loadConfig()
			if err != nil {
				return err
			}

			value, err := proof.StorageAt(cmd.Context(), client, address, position, number)
			if err != nil {
				return err
			}

			output.RenderStorage(client.Name(), address, position, value)
			return nil
		},
	}

	cmd.Flags().StringVar(&blockArg, "block", "latest", `block number or "latest"`)
	return cmd
}
