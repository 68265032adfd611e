package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sekaimcp/sekaimcp/internal/config"
)

// newLogger returns the process logger. Commands always pass stderr:
// stdout belongs to the MCP stream in stdio mode.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// useFormat switches l to the configured log_format. JSON lines carry full
// RFC 3339 timestamps so they can be shipped as-is.
func useFormat(l *log.Logger, format string) {
	if format == config.LogFormatJSON {
		l.SetFormatter(log.JSONFormatter)
		l.SetTimeFormat(time.RFC3339)
		return
	}
	l.SetFormatter(log.TextFormatter)
}

// progress times one long-running step, such as warming the snapshot.
type progress struct {
	logger *log.Logger
	step   string
	start  time.Time
}

func startProgress(l *log.Logger, step string) *progress {
	l.Debug("started", "step", step)
	return &progress{logger: l, step: step, start: time.Now()}
}

// done logs msg with the step name and the elapsed time.
func (p *progress) done(msg string) {
	p.logger.Info(msg, "step", p.step, "elapsed", time.Since(p.start).Round(time.Millisecond))
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger installed by the root command, or
// log.Default when a command runs without it.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
