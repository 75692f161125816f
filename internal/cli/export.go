package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/freeeve/openingbook/internal/export"
)

// openings export -o <path>
func (a *app) exportCmd() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the opening index to a TSV or SQLite file",
		Long: heredoc.Doc(`export writes every opening in index order with its ECO
			code, name, FEN and moves. TSV output is zstd-compressed when the
			file name ends in .zst. SQLite output replaces the openings table.`),
		Example: heredoc.Doc(`
			  openings export -o openings.tsv.zst
			  openings export --format sqlite -o openings.db`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			ix := a.index()
			if err := export.WriteFile(output, f, ix.All()); err != nil {
				return fmt.Errorf("export %s: %w", output, err)
			}
			a.log.Info().
				Str("path", output).
				Str("format", string(f)).
				Int("openings", ix.Len()).
				Msg("export complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&format, "format", "f", "tsv", "output format (tsv, sqlite)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
