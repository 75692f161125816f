package book

import (
	"cmp"
	"slices"

	"github.com/adrg/strutil/metrics"
)

// SearchLimit is the maximum number of results of a name search.
const SearchLimit = 15

// Jaro-Winkler parameters: the prefix bonus applies above winklerBoost
// and counts at most winklerPrefix leading characters.
const (
	winklerBoost  = 0.7
	winklerPrefix = 4
	winklerScale  = 0.1
)

var jaro = metrics.NewJaro()

// Match is a search result with its similarity score.
type Match struct {
	Opening Opening
	Score   float64
}

// Similarity scores two names in [0, 1]; 1 means identical. Names are
// compared by character, case-sensitively.
func Similarity(a, b string) float64 {
	s := jaro.Compare(a, b)
	if s > winklerBoost {
		s += winklerScale * float64(commonPrefix(a, b)) * (1 - s)
	}
	return min(max(s, 0), 1)
}

// commonPrefix counts the leading characters a and b share, up to
// winklerPrefix.
func commonPrefix(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := 0
	for n < len(ra) && n < len(rb) && n < winklerPrefix && ra[n] == rb[n] {
		n++
	}
	return n
}

// SearchScored returns up to SearchLimit openings ranked by name similarity
// to query, best first.
//
// The index is streamed once into a bounded list. An opening whose name is
// already in the list is skipped, so the first entry of a repeated name is
// the only candidate. Once the list is full a new opening enters only with
// a score strictly above the current lowest, which it evicts. Equal scores
// keep index order.
func (ix *Index) SearchScored(query string) ([]Match, error) {
	best := make([]Match, 0, SearchLimit)
	for _, o := range ix.openings {
		if slices.ContainsFunc(best, func(m Match) bool { return m.Opening.Name == o.Name }) {
			continue
		}
		score := Similarity(query, o.Name)
		if len(best) == SearchLimit {
			if score <= best[len(best)-1].Score {
				continue
			}
			best = best[:len(best)-1]
		}
		best = append(best, Match{Opening: o, Score: score})
		slices.SortStableFunc(best, func(a, b Match) int {
			return cmp.Compare(b.Score, a.Score)
		})
	}
	if len(best) == 0 {
		return nil, ErrNoMatch
	}
	return best, nil
}

// SearchByName is SearchScored without the scores.
func (ix *Index) SearchByName(query string) ([]Opening, error) {
	matches, err := ix.SearchScored(query)
	if err != nil {
		return nil, err
	}
	openings := make([]Opening, len(matches))
	for i, m := range matches {
		openings[i] = m.Opening
	}
	return openings, nil
}
