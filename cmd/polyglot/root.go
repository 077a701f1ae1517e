package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var envFlag []string
	var logLevel string

	ctx := newCommandContext(&envFlag, &logLevel)

	rootCmd := &cobra.Command{
		Use:           "polyglot",
		Short:         "Script aware tokenization and language identification",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringSliceVar(&envFlag, "env", nil, "Env files to load before reading configuration (default .env)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level written to stderr")

	rootCmd.AddCommand(newDetectCommand(ctx))
	rootCmd.AddCommand(newTokenizeCommand(ctx))
	rootCmd.AddCommand(newScriptCommand())
	rootCmd.AddCommand(newLanguagesCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
