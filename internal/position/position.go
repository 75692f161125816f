// Package position adapts the pgn move engine to the opening index.
//
// A Key is the packed board (pieces, side to move, castling rights and
// en-passant target). Two positions are the same opening position when
// their keys are equal; move clocks never take part in the comparison.
package position

import (
	"errors"
	"fmt"
	"strings"

	"github.com/freeeve/pgn/v3"
)

// Key is a 26-byte packed position from the pgn library.
type Key = pgn.PackedPosition

const (
	StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	EmptyFEN = "8/8/8/8/8/8/8/8 w - - 0 1"
)

// flagEnPassant marks an en-passant capture in pgn.Mv.Flags.
const flagEnPassant = 2

var (
	ErrInvalidFEN  = errors.New("invalid FEN")
	ErrIllegalMove = errors.New("illegal move")
)

// Start returns the key of the standard starting position.
func Start() Key {
	return Canonical(pgn.NewStartingPosition())
}

// Empty returns the key of a board with no pieces.
func Empty() Key {
	k, err := Parse(EmptyFEN)
	if err != nil {
		return Key{}
	}
	return k
}

// Parse converts FEN text into a canonical key.
func Parse(fen string) (Key, error) {
	fen = strings.TrimSpace(fen)
	if fen == "" {
		return Key{}, fmt.Errorf("%w: empty", ErrInvalidFEN)
	}
	gs, err := pgn.NewGame(fen)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	return Canonical(gs), nil
}

// Canonical packs gs, dropping an en-passant target that no legal capture
// can use.
func Canonical(gs *pgn.GameState) Key {
	key := gs.Pack()
	fields := strings.Fields(gs.ToFEN())
	if len(fields) < 4 || fields[3] == "-" {
		return key
	}
	for _, mv := range pgn.GenerateLegalMoves(gs) {
		if mv.Flags == flagEnPassant {
			return key
		}
	}
	fields[3] = "-"
	stripped, err := pgn.NewGame(strings.Join(fields, " "))
	if err != nil {
		return key
	}
	return stripped.Pack()
}

// Equal reports whether a and b describe the same position.
func Equal(a, b Key) bool {
	return a == b
}

// FEN serializes a key.
func FEN(k Key) string {
	gs := k.Unpack()
	if gs == nil {
		return ""
	}
	return gs.ToFEN()
}
