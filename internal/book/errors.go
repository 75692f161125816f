package book

import "errors"

var (
	// ErrNotFound is returned when no opening matches an exact query.
	ErrNotFound = errors.New("no opening found")
	// ErrNoMatch is returned when a name search has no candidates at all.
	ErrNoMatch = errors.New("no match found")
	// ErrInvalidInput wraps a position that failed to parse.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoMoves is returned by an exact-name lookup that hits one of the
	// synthetic entries. It is a caller bug, not a miss.
	ErrNoMoves = errors.New("opening has no moves")
	// ErrMalformedRecord aborts index construction.
	ErrMalformedRecord = errors.New("malformed opening record")
)
