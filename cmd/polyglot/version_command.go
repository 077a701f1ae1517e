package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"polyglot/internal/core/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "polyglot %s\n", version.String())
			return nil
		},
	}
}
