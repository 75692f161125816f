// Package cli implements the openings command line: lookups, search, the
// HTTP server, game classification, export and an interactive prompt.
package cli

import (
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/freeeve/openingbook/internal/book"
	"github.com/freeeve/openingbook/internal/config"
	"github.com/freeeve/openingbook/internal/logx"
)

// Version is set at build time.
var Version = "v0.0.0"

// app is the state shared by every subcommand after flags are parsed.
type app struct {
	cfg config.Config
	log zerolog.Logger
}

// Root returns the openings command tree.
func Root() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "openings",
		Short: "Look up and search named chess openings",
		Long: heredoc.Doc(`openings names chess positions. It ships an index of ECO
			openings built from embedded tables and answers three questions:
			which opening is this position, what are the moves of the opening
			with this exact name, and which openings have a name like this one.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logx.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			return nil
		},
	}

	root.PersistentFlags().String("config", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error)")

	root.Version = Version

	root.AddCommand(a.fenCmd())
	root.AddCommand(a.nameCmd())
	root.AddCommand(a.searchCmd())
	root.AddCommand(a.serveCmd())
	root.AddCommand(a.classifyCmd())
	root.AddCommand(a.exportCmd())
	root.AddCommand(a.replCmd())

	return root
}

// index returns the shared opening index, showing a spinner on an
// interactive stderr while the first call builds it. A build failure is
// fatal.
func (a *app) index() *book.Index {
	var s *spinner.Spinner
	if term.IsTerminal(int(os.Stderr.Fd())) {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.Suffix = " loading openings"
		s.Start()
	}

	start := time.Now()
	ix, err := book.Default()
	if s != nil {
		s.Stop()
	}
	if err != nil {
		a.log.Fatal().Err(err).Msg("build opening index")
	}

	a.log.Debug().
		Int("openings", ix.Len()).
		Int("skipped_tokens", ix.SkippedTokens()).
		Dur("elapsed", time.Since(start)).
		Msg("opening index ready")
	return ix
}
