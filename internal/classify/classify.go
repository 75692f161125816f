// Package classify names the opening of recorded games by replaying them
// against the opening index.
package classify

import (
	"context"
	"sync"
	"time"

	"github.com/freeeve/pgn/v3"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/freeeve/openingbook/internal/book"
	"github.com/freeeve/openingbook/internal/position"
)

// Config configures a Classifier.
type Config struct {
	Workers int            // Files classified in parallel (default 4)
	MaxPly  int            // Stop looking for openings after this ply (default 40)
	Logger  zerolog.Logger // Logger
}

// Result is the opening of one game.
type Result struct {
	File    string `json:"file"`
	Game    int    `json:"game"`
	White   string `json:"white,omitempty"`
	Black   string `json:"black,omitempty"`
	Result  string `json:"result,omitempty"`
	ECO     string `json:"eco,omitempty"`
	Opening string `json:"opening,omitempty"`
	Ply     int    `json:"ply"`
}

// Classifier reads PGN files and reports the deepest known opening of every
// game.
type Classifier struct {
	cfg Config
	ix  *book.Index
	log zerolog.Logger
}

// New creates a classifier over ix.
func New(cfg Config, ix *book.Index) *Classifier {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.MaxPly <= 0 {
		cfg.MaxPly = 40
	}
	return &Classifier{
		cfg: cfg,
		ix:  ix,
		log: cfg.Logger,
	}
}

// Game replays moves and returns the last non-synthetic opening reached
// within MaxPly, with the ply it was reached at. ok is false when the game
// never enters the book.
func (c *Classifier) Game(moves []pgn.Mv) (opening book.Opening, ply int, ok bool) {
	board := position.NewBoard()
	for i := 0; ; i++ {
		if o, err := c.ix.OpeningAt(board.Key()); err == nil && !o.Synthetic {
			opening, ply, ok = o, i, true
		}
		if i >= len(moves) || i >= c.cfg.MaxPly {
			return opening, ply, ok
		}
		if err := board.Apply(moves[i]); err != nil {
			return opening, ply, ok
		}
	}
}

// Files classifies every game in paths, calling emit once per game. emit is
// never called concurrently. The first error cancels the remaining files.
func (c *Classifier) Files(ctx context.Context, paths []string, emit func(Result) error) error {
	var mu sync.Mutex
	serial := func(r Result) error {
		mu.Lock()
		defer mu.Unlock()
		return emit(r)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Workers)
	for _, path := range paths {
		g.Go(func() error {
			return c.File(ctx, path, serial)
		})
	}
	return g.Wait()
}

// File classifies the games of one PGN file (plain or .zst).
func (c *Classifier) File(ctx context.Context, path string, emit func(Result) error) error {
	c.log.Info().Str("path", path).Msg("classifying file")

	startTime := time.Now()
	var games, unknown int

	// Parse PGN file (handles .zst automatically)
	parser := pgn.Games(path)

	for game := range parser.Games {
		// Check for interruption (non-blocking)
		select {
		case <-ctx.Done():
			parser.Stop()
			return ctx.Err()
		default:
		}

		games++
		res := Result{
			File:   path,
			Game:   games,
			White:  game.Tags["White"],
			Black:  game.Tags["Black"],
			Result: game.Tags["Result"],
		}
		if o, ply, ok := c.Game(game.Moves); ok {
			res.ECO, res.Opening, res.Ply = o.ECO, o.Name, ply
		} else {
			unknown++
		}
		if err := emit(res); err != nil {
			parser.Stop()
			return err
		}
	}

	if err := parser.Err(); err != nil {
		return err
	}

	c.log.Info().
		Str("path", path).
		Int("games", games).
		Int("unknown", unknown).
		Dur("elapsed", time.Since(startTime)).
		Msg("file classified")
	return nil
}
