package cli

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// openings fen <FEN>
func (a *app) fenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fen <FEN>",
		Short: "Name the opening at a FEN position",
		Long: heredoc.Doc(`fen prints the name of the first opening whose position
			matches the given FEN. Move clocks are ignored, and an en-passant
			square only counts when a capture there is legal.

			The FEN may be passed as one quoted argument or as its six fields.`),
		Example: `  openings fen "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPPKPPP/RNBQ1BNR b kq - 1 2"`,
		Args:    cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := a.index().LookupByFEN(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

// openings name <NAME>
func (a *app) nameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <NAME>",
		Short: "Print the moves of an opening by exact name",
		Long: heredoc.Doc(`name prints the moves of the first opening whose name is
			exactly the given text. The match is case-sensitive; use search
			for approximate names.`),
		Example: `  openings name "Bongcloud Attack"`,
		Args:    cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := a.index().LookupByExactName(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), moves)
			return nil
		},
	}
}
