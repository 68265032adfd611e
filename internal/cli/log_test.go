package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/sekaimcp/sekaimcp/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("loaded collection") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("cache hit") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("cache hit") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestUseFormat(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		l := newLogger(&buf, log.InfoLevel)
		useFormat(l, config.LogFormatJSON)
		l.Info("loaded collection", "collection", "cards", "records", 12)

		var line map[string]any
		if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
			t.Fatalf("output is not a JSON line: %v\n%s", err, buf.String())
		}
		if line["msg"] != "loaded collection" || line["collection"] != "cards" {
			t.Errorf("line = %v", line)
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		l := newLogger(&buf, log.InfoLevel)
		useFormat(l, config.LogFormatText)
		l.Info("loaded collection", "collection", "cards")

		if strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), "collection=cards") {
			t.Errorf("output = %q, want logfmt text", buf.String())
		}
	})
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)

	prog := startProgress(logger, "prefetch")
	prog.done("prefetched master data")

	out := buf.String()
	for _, want := range []string{"started", "step=prefetch", "prefetched master data", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("progress output missing %q:\n%s", want, out)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext did not return the installed logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext without a logger should fall back to log.Default")
	}
}
