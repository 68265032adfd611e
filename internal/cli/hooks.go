package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports tool, cache and upstream HTTP events as debug logs.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l.WithPrefix("hooks")}
}

func (h *logHooks) OnToolStart(_ context.Context, tool string) {
	h.logger.Debug("tool start", "tool", tool)
}

func (h *logHooks) OnToolComplete(_ context.Context, tool string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("tool error", "tool", tool, "duration", d, "error", err)
		return
	}
	h.logger.Debug("tool done", "tool", tool, "duration", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, slot string) {
	h.logger.Debug("cache hit", "slot", slot)
}

func (h *logHooks) OnCacheMiss(_ context.Context, slot string) {
	h.logger.Debug("cache miss", "slot", slot)
}

func (h *logHooks) OnCacheSet(_ context.Context, slot string, size int) {
	h.logger.Info("loaded collection", "slot", slot, "records", size)
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", status, "duration", d)
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Warn("http error", "method", method, "host", host, "path", path, "error", err)
}
