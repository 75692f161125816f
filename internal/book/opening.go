// Package book is the opening-book index: named openings keyed by the board
// position their moves reach, built once from embedded ECO tables and
// queried by position, by exact name and by approximate name.
package book

import (
	"encoding/json"

	"github.com/freeeve/openingbook/internal/position"
)

// Opening is one named opening line.
type Opening struct {
	ECO      string
	Name     string
	Position position.Key
	// Moves is the move text from the source table. Empty for synthetic
	// entries.
	Moves string
	// Synthetic marks the starting-position and empty-board entries, which
	// have no move sequence.
	Synthetic bool
}

// FEN returns the opening position as FEN.
func (o Opening) FEN() string {
	return position.FEN(o.Position)
}

type openingJSON struct {
	ECO  string `json:"eco"`
	Name string `json:"name"`
	FEN  string `json:"fen"`
	PGN  string `json:"pgn,omitempty"`
}

// MarshalJSON encodes the position as FEN.
func (o Opening) MarshalJSON() ([]byte, error) {
	return json.Marshal(openingJSON{
		ECO:  o.ECO,
		Name: o.Name,
		FEN:  o.FEN(),
		PGN:  o.Moves,
	})
}

func startingPosition() Opening {
	return Opening{ECO: "Extra", Name: "Starting Position", Position: position.Start(), Synthetic: true}
}

func emptyBoard() Opening {
	return Opening{ECO: "Extra", Name: "Empty Board", Position: position.Empty(), Synthetic: true}
}
