package book

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/freeeve/openingbook/internal/position"
)

//go:embed data/*.tsv
var dataFS embed.FS

// sourceFiles is the fixed load order of the embedded tables.
var sourceFiles = []string{"a.tsv", "b.tsv", "c.tsv", "d.tsv", "e.tsv"}

// Source is one tab-separated table with eco, name and pgn columns.
type Source struct {
	Name string
	Data []byte
}

// EmbeddedSources returns the tables compiled into the binary, in order.
func EmbeddedSources() ([]Source, error) {
	sources := make([]Source, 0, len(sourceFiles))
	for _, name := range sourceFiles {
		data, err := dataFS.ReadFile(path.Join("data", name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		sources = append(sources, Source{Name: name, Data: data})
	}
	return sources, nil
}

// record is one row of a source table.
type record struct {
	eco  string
	name string
	pgn  string
}

// parseSource splits a table into records. Any structural problem is an
// error; there is no partial result.
func parseSource(src Source) ([]record, error) {
	scanner := bufio.NewScanner(bytes.NewReader(src.Data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		records []record
		columns map[string]int
		width   int
		lineNum int
	)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "\t")

		// Header
		if columns == nil {
			columns = make(map[string]int, len(parts))
			for i, col := range parts {
				columns[strings.TrimSpace(col)] = i
			}
			for _, want := range []string{"eco", "name", "pgn"} {
				if _, ok := columns[want]; !ok {
					return nil, fmt.Errorf("%s:%d: %w: missing %q column", src.Name, lineNum, ErrMalformedRecord, want)
				}
			}
			width = len(parts)
			continue
		}

		if len(parts) != width {
			return nil, fmt.Errorf("%s:%d: %w: want %d columns, got %d", src.Name, lineNum, ErrMalformedRecord, width, len(parts))
		}
		records = append(records, record{
			eco:  parts[columns["eco"]],
			name: parts[columns["name"]],
			pgn:  parts[columns["pgn"]],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", src.Name, err)
	}
	if columns == nil {
		return nil, fmt.Errorf("%s: %w: no header", src.Name, ErrMalformedRecord)
	}
	return records, nil
}

// moveNumberRegex matches move numbers like "1." or "12..."
var moveNumberRegex = regexp.MustCompile(`^\d+\.+$`)

// replay plays every token of moves from the starting position and returns
// the final key with the number of skipped tokens. A token that does not
// apply (an annotation, a stray result, an illegal move) is skipped, never
// an error: the record keeps the position reached by the moves that did
// apply. Move numbers are dropped without counting.
func replay(moves string) (position.Key, int) {
	board := position.NewBoard()
	skipped := 0
	for _, token := range strings.Fields(moves) {
		if moveNumberRegex.MatchString(token) {
			continue
		}
		if err := board.Play(token); err != nil {
			skipped++
		}
	}
	return board.Key(), skipped
}
