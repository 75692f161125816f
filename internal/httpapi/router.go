package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/freeeve/openingbook/internal/book"
	"github.com/freeeve/openingbook/internal/position"
)

// Handler serves the opening index.
type Handler struct {
	ix  *book.Index
	log zerolog.Logger
}

// NewRouter creates the HTTP router for ix.
func NewRouter(log zerolog.Logger, ix *book.Index) http.Handler {
	h := &Handler{
		ix:  ix,
		log: log,
	}

	mux := http.NewServeMux()
	mux.Handle("GET /healthz", http.HandlerFunc(h.health))
	mux.Handle("GET /readyz", http.HandlerFunc(h.health))
	mux.Handle("GET /v1/opening", http.HandlerFunc(h.byFEN))
	mux.Handle("GET /v1/opening/name", http.HandlerFunc(h.byName))
	mux.Handle("GET /v1/opening/search", http.HandlerFunc(h.search))
	mux.Handle("GET /v1/stats", http.HandlerFunc(h.stats))

	handler := CORS(RequestID(AccessLog(log, mux)))
	return handler
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, StatsResponse{
		Openings:      h.ix.Len(),
		SkippedTokens: h.ix.SkippedTokens(),
	})
}

// byFEN returns the opening at a FEN position.
func (h *Handler) byFEN(w http.ResponseWriter, r *http.Request) {
	q := fenQuery{FEN: r.URL.Query().Get("fen")}
	if err := validate.Struct(q); err != nil {
		http.Error(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	pos, err := position.Parse(q.FEN)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o, err := h.ix.OpeningAt(pos)
	if errors.Is(err, book.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, ToOpeningResponse(o))
}

// byName returns the moves of an opening by its exact name.
func (h *Handler) byName(w http.ResponseWriter, r *http.Request) {
	q := nameQuery{Name: r.URL.Query().Get("name")}
	if err := validate.Struct(q); err != nil {
		http.Error(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	pgn, err := h.ix.LookupByExactName(q.Name)
	switch {
	case errors.Is(err, book.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, book.ErrNoMoves):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		h.fail(w, r, err)
		return
	}
	writeJSON(w, NameResponse{Name: q.Name, PGN: pgn})
}

// search ranks openings by name similarity.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := searchQuery{Q: r.URL.Query().Get("q")}
	if r.URL.Query().Has("limit") {
		n, err := strconv.Atoi(r.URL.Query().Get("limit"))
		if err != nil {
			http.Error(w, "limit must be an integer", http.StatusBadRequest)
			return
		}
		q.Limit = &n
	}
	if err := validate.Struct(q); err != nil {
		http.Error(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	matches, err := h.ix.SearchScored(q.Q)
	if errors.Is(err, book.ErrNoMatch) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.log.Debug().
		Str("rid", GetRequestID(r.Context())).
		Str("query", q.Q).
		Int("results", len(matches)).
		Dur("elapsed", time.Since(start)).
		Msg("search completed")

	limit := book.SearchLimit
	if q.Limit != nil {
		limit = *q.Limit
	}
	writeJSON(w, ToSearchResponse(q.Q, matches, limit))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error().Err(err).Str("rid", GetRequestID(r.Context())).Msg("request failed")
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
	// Don't call http.Error after setting headers - it causes "superfluous WriteHeader"
}
