package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, closer, err := New("", "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closer.Close()
	if logger.GetLevel() != zerolog.Disabled {
		t.Errorf("expected disabled logger, got level %v", logger.GetLevel())
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")
	logger, closer, err := New(path, "info")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info().Str("k", "v").Msg("hello")
	logger.Debug().Msg("hidden")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"message":"hello"`) {
		t.Errorf("expected info line in log, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered at info level")
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.DebugLevel)
	ctx := IntoContext(context.Background(), logger)

	FromContext(ctx).Debug().Msg("from ctx")
	if !strings.Contains(buf.String(), "from ctx") {
		t.Errorf("expected context logger to write, got %q", buf.String())
	}

	// A bare context yields a usable disabled logger.
	FromContext(context.Background()).Info().Msg("dropped")
}

func TestNewWithWriter_LeavesTimeFormatAlone(t *testing.T) {
	if zerolog.TimeFieldFormat != time.RFC3339Nano {
		t.Fatalf("TimeFieldFormat = %q after init, want RFC3339Nano", zerolog.TimeFieldFormat)
	}

	orig := zerolog.TimeFieldFormat
	zerolog.TimeFieldFormat = time.RFC3339
	defer func() { zerolog.TimeFieldFormat = orig }()

	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.InfoLevel)
	logger.Info().Msg("stamped")
	if zerolog.TimeFieldFormat != time.RFC3339 {
		t.Errorf("NewWithWriter changed TimeFieldFormat to %q", zerolog.TimeFieldFormat)
	}
	if !strings.Contains(buf.String(), `"time":`) {
		t.Errorf("expected a timestamp field, got %q", buf.String())
	}
}
