package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/freeeve/openingbook/internal/book"
	"github.com/freeeve/openingbook/internal/httpapi"
)

// openings search <QUERY>
func (a *app) searchCmd() *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "search <QUERY>",
		Short:   "Find openings with a similar name",
		Example: `  openings search sicilian najdorf --limit 5`,
		Args:    cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.Search.Limit
			}
			if limit < 1 || limit > book.SearchLimit {
				return fmt.Errorf("--limit must be between 1 and %d", book.SearchLimit)
			}

			query := strings.Join(args, " ")
			matches, err := a.index().SearchScored(query)
			if err != nil {
				return err
			}
			if len(matches) > limit {
				matches = matches[:limit]
			}
			if asJSON {
				return writeMatchesJSON(cmd.OutOrStdout(), query, matches)
			}
			return writeMatches(cmd.OutOrStdout(), matches)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", book.SearchLimit, "maximum number of results")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

// writeMatches prints one aligned row per match.
func writeMatches(w io.Writer, matches []book.Match) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, m := range matches {
		fmt.Fprintf(tw, "%.3f\t%s\t%s\n", m.Score, m.Opening.ECO, m.Opening.Name)
	}
	return tw.Flush()
}

func writeMatchesJSON(w io.Writer, query string, matches []book.Match) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(httpapi.ToSearchResponse(query, matches, 0))
}
