package book

import (
	"fmt"

	"github.com/freeeve/openingbook/internal/position"
)

// OpeningAt returns the first opening whose position equals pos.
// Transpositions resolve to the entry that comes first in the index.
func (ix *Index) OpeningAt(pos position.Key) (Opening, error) {
	for _, o := range ix.openings {
		if position.Equal(o.Position, pos) {
			return o, nil
		}
	}
	return Opening{}, ErrNotFound
}

// LookupByPosition returns the name of the first opening at pos.
func (ix *Index) LookupByPosition(pos position.Key) (string, error) {
	o, err := ix.OpeningAt(pos)
	if err != nil {
		return "", err
	}
	return o.Name, nil
}

// LookupByFEN parses fen and looks the position up.
func (ix *Index) LookupByFEN(fen string) (string, error) {
	pos, err := position.Parse(fen)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return ix.LookupByPosition(pos)
}

// LookupByExactName returns the move text of the first opening named name.
// The match is case-sensitive. Hitting a synthetic entry returns ErrNoMoves.
func (ix *Index) LookupByExactName(name string) (string, error) {
	for _, o := range ix.openings {
		if o.Name != name {
			continue
		}
		if o.Synthetic {
			return "", fmt.Errorf("%w: %q", ErrNoMoves, name)
		}
		return o.Moves, nil
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, name)
}
