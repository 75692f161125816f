package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/freeeve/openingbook/internal/book"
)

const replHelp = `commands:
  search <query>   openings with a similar name (bare text searches too)
  fen <FEN>        opening at a position
  name <name>      moves of an opening by exact name
  help             this message
  quit             leave`

// openings repl
func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive opening lookups",
		Long: heredoc.Doc(`repl reads commands from a prompt with line editing and
			history. Lines that are not a command are searched as names.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return a.repl(cmd.OutOrStdout())
		},
	}
}

func (a *app) repl(out io.Writer) error {
	history := a.cfg.Repl.HistoryFile
	if history != "" {
		if err := os.MkdirAll(filepath.Dir(history), 0o755); err != nil {
			a.log.Warn().Err(err).Str("path", history).Msg("history disabled")
			history = ""
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "openings> ",
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdout:          out,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	ix := a.index()
	fmt.Fprintf(out, "%d openings loaded. Type 'help' for commands\n", ix.Len())

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return err
		}
		if !eval(ix, line, out) {
			return nil
		}
	}
}

// eval runs one prompt line against ix and reports whether the session
// continues.
func eval(ix *book.Index, line string, w io.Writer) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}

	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch verb {
	case "quit", "exit", "q":
		return false
	case "help", "?":
		fmt.Fprintln(w, replHelp)
	case "fen":
		name, err := ix.LookupByFEN(rest)
		printResult(w, name, err)
	case "name":
		moves, err := ix.LookupByExactName(rest)
		printResult(w, moves, err)
	case "search":
		replSearch(ix, rest, w)
	default:
		replSearch(ix, line, w)
	}
	return true
}

func replSearch(ix *book.Index, query string, w io.Writer) {
	matches, err := ix.SearchScored(query)
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	_ = writeMatches(w, matches)
}

func printResult(w io.Writer, s string, err error) {
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	fmt.Fprintln(w, s)
}
