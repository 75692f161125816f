package logx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := NewLogger(&bytes.Buffer{}, tt.level).GetLevel(); got != tt.want {
			t.Errorf("NewLogger(%q) level = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestNewLoggerWrites(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, "info")
	log.Debug().Msg("hidden")
	log.Info().Int("openings", 42).Msg("index built")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at info level: %q", out)
	}
	if !strings.Contains(out, "index built") || !strings.Contains(out, "42") {
		t.Errorf("missing info message: %q", out)
	}
}
