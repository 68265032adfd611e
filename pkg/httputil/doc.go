// Package httputil provides HTTP utilities for upstream API clients.
//
// # Retry
//
// [Retry] wraps a request with automatic retry for transient failures.
// Callers mark an error as transient by wrapping it with [Retryable]:
//
//   - Network errors
//   - 5xx server errors
//
// Everything else (404s, decode failures) is returned on the first attempt.
// The delay doubles after every failed attempt:
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    return client.Get(ctx, url, &v)
//	})
//
// A [Policy] bundles the attempt count and initial delay so clients can
// carry it as configuration:
//
//	p := httputil.Policy{Attempts: 5, Delay: 500 * time.Millisecond}
//	err := p.Do(ctx, fetch)
//
// # Configuration
//
// [DefaultPolicy] is 3 attempts with a 1 second initial delay.
package httputil
