package book

import (
	"fmt"
	"slices"
	"sync"
)

// Index is an immutable, ordered list of openings. All methods are safe for
// concurrent use.
type Index struct {
	openings []Opening
	skipped  int
}

// NewIndex wraps a prebuilt list of openings. The slice is copied.
func NewIndex(openings []Opening) *Index {
	return &Index{openings: slices.Clone(openings)}
}

// Build parses sources in order and returns the index: the starting
// position and the empty board first, then one opening per record.
func Build(sources ...Source) (*Index, error) {
	openings := []Opening{startingPosition(), emptyBoard()}
	skipped := 0

	for _, src := range sources {
		records, err := parseSource(src)
		if err != nil {
			return nil, fmt.Errorf("build opening index: %w", err)
		}
		for _, rec := range records {
			key, n := replay(rec.pgn)
			skipped += n
			openings = append(openings, Opening{
				ECO:      rec.eco,
				Name:     rec.name,
				Position: key,
				Moves:    rec.pgn,
			})
		}
	}

	return &Index{openings: openings, skipped: skipped}, nil
}

var defaultIndex = sync.OnceValues(func() (*Index, error) {
	sources, err := EmbeddedSources()
	if err != nil {
		return nil, fmt.Errorf("build opening index: %w", err)
	}
	return Build(sources...)
})

// Default returns the index built from the embedded tables. The first call
// builds it; concurrent first callers wait for that single build and every
// caller shares the result. A build error is returned to every caller and
// is not retried.
func Default() (*Index, error) {
	return defaultIndex()
}

// Len returns the number of openings, synthetic entries included.
func (ix *Index) Len() int {
	return len(ix.openings)
}

// All returns a copy of the openings in index order.
func (ix *Index) All() []Opening {
	return slices.Clone(ix.openings)
}

// SkippedTokens returns how many move tokens were skipped while building.
func (ix *Index) SkippedTokens() int {
	return ix.skipped
}
