package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"polyglot/internal/services/detect/domain"
	"polyglot/internal/services/detect/service"
)

func newDetectCommand(ctx *commandContext) *cobra.Command {
	var top int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "detect [text...]",
		Short: "Identify the language of text (reads stdin when no text is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			rt, err := ctx.ensureRuntime()
			if err != nil {
				return err
			}
			svc := service.New(rt.Pipeline, service.Config{Top: 1})

			if top <= 0 && !asJSON {
				out, err := svc.HandleRequest(cmd.Context(), input)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			res, err := svc.Detect(cmd.Context(), domain.DetectInput{Text: input, Top: top})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, res)
			}
			if res.Prompt != "" {
				fmt.Fprintln(cmd.OutOrStdout(), res.Prompt)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), candidateTable(res.Candidates))
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "k", 0, "Show the top k candidates as a table")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the structured result as JSON")
	return cmd
}

func candidateTable(cands []domain.Candidate) string {
	rows := make([][]string, 0, len(cands))
	for i, c := range cands {
		rows = append(rows, []string{strconv.Itoa(i + 1), c.Language, c.LanguageName, c.Percent})
	}
	return renderTable([]string{"#", "Code", "Language", "Confidence"}, rows, 1, 4)
}

// writeJSON encodes v as indented JSON to the command's stdout
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
