package httpapi

import "github.com/freeeve/openingbook/internal/book"

// OpeningResponse is the JSON form of one opening.
type OpeningResponse struct {
	ECO  string `json:"eco"`
	Name string `json:"name"`
	FEN  string `json:"fen"`
	PGN  string `json:"pgn,omitempty"`
}

// NameResponse answers an exact-name lookup.
type NameResponse struct {
	Name string `json:"name"`
	PGN  string `json:"pgn"`
}

// SearchResult is one ranked search hit.
type SearchResult struct {
	OpeningResponse
	Score float64 `json:"score"`
}

// SearchResponse answers a name search.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

// StatsResponse reports the index size.
type StatsResponse struct {
	Openings      int `json:"openings"`
	SkippedTokens int `json:"skipped_tokens"`
}

// ToOpeningResponse converts an opening to its JSON form.
func ToOpeningResponse(o book.Opening) OpeningResponse {
	return OpeningResponse{
		ECO:  o.ECO,
		Name: o.Name,
		FEN:  o.FEN(),
		PGN:  o.Moves,
	}
}

// ToSearchResponse converts ranked matches, keeping at most limit.
func ToSearchResponse(query string, matches []book.Match, limit int) SearchResponse {
	if limit > 0 && limit < len(matches) {
		matches = matches[:limit]
	}
	resp := SearchResponse{
		Query:   query,
		Results: make([]SearchResult, 0, len(matches)),
	}
	for _, m := range matches {
		resp.Results = append(resp.Results, SearchResult{
			OpeningResponse: ToOpeningResponse(m.Opening),
			Score:           m.Score,
		})
	}
	return resp
}
