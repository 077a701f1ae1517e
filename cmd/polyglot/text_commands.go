package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"polyglot/internal/core/script"
)

func newTokenizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize [text...]",
		Short: "Classify the script and print the tokenized text",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			rt, err := ctx.ensureRuntime()
			if err != nil {
				return err
			}
			cat, tokens, err := rt.Pipeline.Tokenize(input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Script: %s\nTokenized: %s\n", cat, tokens)
			return nil
		},
	}
}

// script needs no runtime, the census is a pure function of the text
func newScriptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "script [text...]",
		Short: "Print the script classification and per-script rune counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			c := script.Counts(input)
			rows := [][]string{
				{script.CJK.String(), strconv.Itoa(c.CJK)},
				{script.Kana.String(), strconv.Itoa(c.Kana)},
				{script.Thai.String(), strconv.Itoa(c.Thai)},
				{"other", strconv.Itoa(c.Other)},
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Script: %s\n", script.Classify(input))
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Block", "Runes"}, rows, 2))
			return nil
		},
	}
}
