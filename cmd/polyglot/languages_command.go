package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"polyglot/internal/core/identify"
	perr "polyglot/internal/platform/errors"
	"polyglot/internal/services/detect/service"
)

func newLanguagesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages the loaded classifier can report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := ctx.ensureRuntime()
			if err != nil {
				return err
			}
			lister, ok := rt.Model.(identify.LanguageLister)
			if !ok {
				return perr.Newf(perr.ErrorCodeUnavailable, "classifier %s cannot list its languages", rt.Model.Name())
			}
			codes := lister.Languages()
			rows := make([][]string, 0, len(codes))
			for _, code := range codes {
				rows = append(rows, []string{code, service.LanguageName(code)})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Classifier: %s (%d languages)\n", rt.Model.Name(), len(codes))
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Code", "Language"}, rows))
			return nil
		},
	}
}
