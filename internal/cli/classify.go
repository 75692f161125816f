package cli

import (
	"encoding/json"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/freeeve/openingbook/internal/classify"
)

// openings classify <file.pgn>...
func (a *app) classifyCmd() *cobra.Command {
	var (
		workers int
		maxPly  int
	)

	cmd := &cobra.Command{
		Use:   "classify <file.pgn[.zst]>...",
		Short: "Name the opening of every game in PGN files",
		Long: heredoc.Doc(`classify replays every game of the given PGN files and
			prints one JSON object per game with the deepest book opening it
			reached. Files ending in .zst are decompressed on the fly.`),
		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("workers") {
				a.cfg.Classify.Workers = workers
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c := classify.New(classify.Config{
				Workers: a.cfg.Classify.Workers,
				MaxPly:  maxPly,
				Logger:  a.log.With().Str("component", "classify").Logger(),
			}, a.index())

			enc := json.NewEncoder(cmd.OutOrStdout())
			return c.Files(ctx, args, func(r classify.Result) error {
				return enc.Encode(r)
			})
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "files classified in parallel")
	cmd.Flags().IntVar(&maxPly, "max-ply", 40, "stop looking for openings after this ply")
	return cmd
}
