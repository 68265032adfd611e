package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sekaimcp/sekaimcp/pkg/buildinfo"
	sekaierrors "github.com/sekaimcp/sekaimcp/pkg/errors"
	"github.com/sekaimcp/sekaimcp/pkg/httputil"
	"github.com/sekaimcp/sekaimcp/pkg/observability"
)

// Client provides shared HTTP functionality for all upstream API clients.
// It handles retry logic, common request headers, and HTTP hooks.
//
// A Client holds no mutable state after construction and is safe for
// concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	headers map[string]string
	retry   httputil.Policy
}

// Options configures a Client. The zero value is usable.
type Options struct {
	// Timeout bounds each HTTP attempt. Defaults to 10 seconds.
	Timeout time.Duration

	// Retry controls retries of transient failures. A zero Attempts uses
	// [httputil.DefaultPolicy].
	Retry httputil.Policy

	// Headers are applied to every request. A User-Agent is always set.
	Headers map[string]string

	// HTTPClient overrides the underlying client (tests).
	HTTPClient *http.Client
}

// NewClient creates a Client rooted at baseURL.
func NewClient(baseURL string, opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = NewHTTPClient(opts.Timeout)
	}
	retry := opts.Retry
	if retry.Attempts == 0 {
		retry = httputil.DefaultPolicy
	}
	headers := map[string]string{
		"Accept":     "application/json",
		"User-Agent": buildinfo.UserAgent(),
	}
	for k, v := range opts.Headers {
		headers[k] = v
	}
	return &Client{
		http:    hc,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		headers: headers,
		retry:   retry,
	}
}

// BaseURL returns the root every request path is resolved against.
func (c *Client) BaseURL() string { return c.baseURL }

// URL joins path and query onto the client's base URL.
func (c *Client) URL(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Get performs an HTTP GET of path (relative to the base URL) and
// JSON-decodes the response into v. Transient failures are retried
// according to the client's retry policy; 404s and decode errors are not.
func (c *Client) Get(ctx context.Context, path string, query url.Values, v any) error {
	target := c.URL(path, query)
	return c.retry.Do(ctx, func() error {
		body, err := c.doRequest(ctx, target)
		if err != nil {
			return err
		}
		defer body.Close()
		if err := json.NewDecoder(body).Decode(v); err != nil {
			return fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return nil
	})
}

func (c *Client) doRequest(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, httputil.Retryable(networkError(ErrNetwork, "%s %s: %v", req.Method, path, err))
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusTooManyRequests, code >= 500:
		return httputil.Retryable(networkError(ErrNetwork, "status %d", code))
	default:
		return networkError(ErrNetwork, "status %d", code)
	}
}

// networkError tags an upstream transport failure with
// [sekaierrors.ErrCodeNetwork]. The chain still matches [ErrNetwork].
func networkError(cause error, format string, args ...any) error {
	return sekaierrors.Wrap(sekaierrors.ErrCodeNetwork, cause, format, args...)
}
