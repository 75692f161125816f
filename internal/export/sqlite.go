package export

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/freeeve/openingbook/internal/book"
)

// Schema is the SQLite layout of an exported index. id keeps index order,
// so "ORDER BY id" reproduces first-match-wins lookups.
const Schema = `
CREATE TABLE IF NOT EXISTS openings (
	id INTEGER PRIMARY KEY,
	eco TEXT NOT NULL,
	name TEXT NOT NULL,
	fen TEXT NOT NULL,
	pgn TEXT
);
CREATE INDEX IF NOT EXISTS idx_openings_name ON openings(name);
CREATE INDEX IF NOT EXISTS idx_openings_fen ON openings(fen);
`

// WriteSQLite replaces the openings table of the database at path.
func WriteSQLite(path string, openings []book.Opening) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM openings"); err != nil {
		return fmt.Errorf("failed to clear openings: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO openings (id, eco, name, fen, pgn) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, o := range openings {
		pgn := sql.NullString{String: o.Moves, Valid: !o.Synthetic}
		if _, err := stmt.Exec(i+1, o.ECO, o.Name, o.FEN(), pgn); err != nil {
			return fmt.Errorf("failed to insert %q: %w", o.Name, err)
		}
	}
	return tx.Commit()
}
