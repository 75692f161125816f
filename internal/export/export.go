// Package export writes the opening index out for other tools: as a TSV
// table, zstd-compressed when the file name ends in .zst, or as a SQLite
// database.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/freeeve/openingbook/internal/book"
)

// Format selects the output encoding.
type Format string

const (
	FormatTSV    Format = "tsv"
	FormatSQLite Format = "sqlite"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTSV, FormatSQLite:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (want tsv or sqlite)", s)
}

// WriteFile exports openings to path in the given format.
func WriteFile(path string, format Format, openings []book.Opening) error {
	switch format {
	case FormatSQLite:
		return WriteSQLite(path, openings)
	case FormatTSV:
		return writeTSVFile(path, openings)
	}
	return fmt.Errorf("unknown export format %q", format)
}

func writeTSVFile(path string, openings []book.Opening) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if strings.HasSuffix(path, ".zst") {
		enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return fmt.Errorf("create zstd encoder: %w", err)
		}
		if err := WriteTSV(enc, openings); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	}
	return WriteTSV(f, openings)
}

// WriteTSV writes a header and one eco/name/fen/pgn row per opening.
// Synthetic entries get an empty pgn column.
func WriteTSV(w io.Writer, openings []book.Opening) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("eco\tname\tfen\tpgn\n"); err != nil {
		return err
	}
	for _, o := range openings {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\n", o.ECO, o.Name, o.FEN(), o.Moves); err != nil {
			return err
		}
	}
	return bw.Flush()
}
