package position

import (
	"fmt"
	"strings"

	"github.com/freeeve/pgn/v3"
)

// sanLeading lists the bytes a SAN move can start with.
const sanLeading = "abcdefghKQRBNO"

// Board replays moves from the starting position.
type Board struct {
	gs *pgn.GameState
}

// NewBoard returns a board at the starting position.
func NewBoard() *Board {
	return &Board{gs: pgn.NewStartingPosition()}
}

// castlingZeros spells castling with digit zeros, as some PGN writers do.
var castlingZeros = strings.NewReplacer("0-0-0", "O-O-O", "0-0", "O-O")

// Play applies one SAN token such as "e4", "Nxf7+", "O-O" or "0-0".
// Move numbers, results and annotations are rejected with ErrIllegalMove.
func (b *Board) Play(token string) error {
	san := strings.TrimRight(token, "+#!?")
	if san == "0-0" || san == "0-0-0" {
		san = castlingZeros.Replace(san)
	}
	if san == "" || !strings.ContainsRune(sanLeading, rune(san[0])) {
		return fmt.Errorf("%w: %q", ErrIllegalMove, token)
	}
	mv, err := pgn.ParseSAN(b.gs, san)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrIllegalMove, token, err)
	}
	return b.Apply(mv)
}

// Apply plays an already decoded move.
func (b *Board) Apply(mv pgn.Mv) error {
	if err := pgn.ApplyMove(b.gs, mv); err != nil {
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	return nil
}

// Key returns the canonical key of the current position.
func (b *Board) Key() Key {
	return Canonical(b.gs)
}

// FEN returns the current position as FEN.
func (b *Board) FEN() string {
	return b.gs.ToFEN()
}
