package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sekaimcp/sekaimcp/pkg/buildinfo"
	"github.com/sekaimcp/sekaimcp/pkg/snapshot"
)

// HTTP timeouts.
const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// StatusFunc reports the state of the snapshot cache for /healthz.
type StatusFunc func() []snapshot.SlotStatus

// Health is the /healthz response body.
type Health struct {
	Status  string                `json:"status"`
	Name    string                `json:"name"`
	Version string                `json:"version"`
	Slots   []snapshot.SlotStatus `json:"slots"`
}

// Handler returns the HTTP routes:
//
//	GET  /sse       SSE stream (legacy transport)
//	POST /sse       SSE client messages, at the endpoint the stream announces
//	POST /messages  alias of POST /sse for clients configured with that path
//	     /mcp       streamable HTTP transport
//	GET  /healthz   liveness and cache status
//
// SSE clients find their message endpoint in the stream's first event, which
// points at /sse?sessionid=... . The /messages alias accepts the same
// sessionid query and is served by the same handler.
func (s *Server) Handler(status StatusFunc) http.Handler {
	getServer := func(*http.Request) *sdkmcp.Server { return s.MCPServer }
	sse := sdkmcp.NewSSEHandler(getServer, nil)
	streamable := sdkmcp.NewStreamableHTTPHandler(getServer, nil)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Mcp-Session-Id"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		body := Health{
			Status:  "ok",
			Name:    buildinfo.Name,
			Version: buildinfo.Version,
			Slots:   []snapshot.SlotStatus{},
		}
		if status != nil {
			body.Slots = status()
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(body); err != nil {
			s.logger.Warn("write health response", "error", err)
		}
	})
	r.Get("/sse", sse.ServeHTTP)
	r.Post("/sse", sse.ServeHTTP)
	r.Post("/messages", sse.ServeHTTP)
	r.Handle("/mcp", streamable)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()))
		}()
		next.ServeHTTP(ww, r)
	})
}

// ListenAndServe serves h on addr until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	s.logger.Info("listening", "addr", addr)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		// Open SSE streams never go idle, so a timed-out shutdown is expected.
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
