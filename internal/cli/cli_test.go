package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/freeeve/openingbook/internal/book"
	"github.com/freeeve/openingbook/internal/httpapi"
)

const bongcloudFEN = "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPPKPPP/RNBQ1BNR b kq - 1 2"

// run executes the command tree with a hermetic config file and returns
// stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfg, []byte("log_level: error\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestFenCommand(t *testing.T) {
	out, err := run(t, "fen", bongcloudFEN)
	if err != nil {
		t.Fatalf("fen: %v", err)
	}
	if strings.TrimSpace(out) != "Bongcloud Attack" {
		t.Errorf("fen = %q", out)
	}

	// Unquoted FEN fields are joined back together.
	out, err = run(t, append([]string{"fen"}, strings.Fields(bongcloudFEN)...)...)
	if err != nil {
		t.Fatalf("fen fields: %v", err)
	}
	if strings.TrimSpace(out) != "Bongcloud Attack" {
		t.Errorf("fen fields = %q", out)
	}
}

func TestFenCommandInvalid(t *testing.T) {
	if _, err := run(t, "fen", "not-a-fen"); err == nil {
		t.Fatal("expected error for invalid FEN")
	}
}

func TestNameCommand(t *testing.T) {
	out, err := run(t, "name", "Bongcloud Attack")
	if err != nil {
		t.Fatalf("name: %v", err)
	}
	if strings.TrimSpace(out) != "1. e4 e5 2. Ke2" {
		t.Errorf("name = %q", out)
	}

	if _, err := run(t, "name", "bongcloud attack"); err == nil {
		t.Error("exact name lookup should be case-sensitive")
	}
}

func TestSearchCommand(t *testing.T) {
	out, err := run(t, "search", "--limit", "2", "Sicilian Najdorf")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("search returned %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "Sicilian") {
		t.Errorf("search output missing Sicilian:\n%s", out)
	}
}

func TestSearchCommandJSON(t *testing.T) {
	out, err := run(t, "search", "--json", "-n", "3", "Bongcloud Attack")
	if err != nil {
		t.Fatalf("search --json: %v", err)
	}
	var resp httpapi.SearchResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if resp.Query != "Bongcloud Attack" || len(resp.Results) != 3 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Results[0].Name != "Bongcloud Attack" || resp.Results[0].Score != 1 {
		t.Errorf("first result = %+v", resp.Results[0])
	}
}

func TestSearchCommandLimitRange(t *testing.T) {
	for _, limit := range []string{"0", "16"} {
		if _, err := run(t, "search", "--limit", limit, "London"); err == nil {
			t.Errorf("--limit %s: expected error", limit)
		}
	}
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openings.tsv")
	if _, err := run(t, "export", "-o", path); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "eco\tname\tfen\tpgn\n") {
		t.Errorf("unexpected header: %q", strings.SplitN(string(data), "\n", 2)[0])
	}
	if !strings.Contains(string(data), "Bongcloud Attack") {
		t.Error("export missing Bongcloud Attack")
	}
}

func TestExportCommandBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openings.csv")
	if _, err := run(t, "export", "-f", "csv", "-o", path); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestEval(t *testing.T) {
	ix, err := book.Default()
	if err != nil {
		t.Fatalf("book.Default: %v", err)
	}

	tests := []struct {
		line string
		want string
		more bool
	}{
		{"fen " + bongcloudFEN, "Bongcloud Attack", true},
		{"name Bongcloud Attack", "1. e4 e5 2. Ke2", true},
		{"name Starting Position", "error:", true},
		{"search Bongcloud", "Bongcloud Attack", true},
		{"Bongcloud", "Bongcloud Attack", true},
		{"help", "commands:", true},
		{"   ", "", true},
		{"quit", "", false},
		{"exit", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			var buf bytes.Buffer
			more := eval(ix, tt.line, &buf)
			if more != tt.more {
				t.Errorf("eval(%q) continue = %v, want %v", tt.line, more, tt.more)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("eval(%q) output = %q, want it to contain %q", tt.line, buf.String(), tt.want)
			}
		})
	}
}
