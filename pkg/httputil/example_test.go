package httputil_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sekaimcp/sekaimcp/pkg/httputil"
)

func ExampleRetry() {
	calls := 0
	err := httputil.Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return httputil.Retryable(errors.New("503 from upstream"))
		}
		return nil
	})
	fmt.Println("Error:", err)
	fmt.Println("Calls:", calls)
	// Output:
	// Error: <nil>
	// Calls: 3
}

func ExampleRetry_nonRetryable() {
	calls := 0
	err := httputil.Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return errors.New("404 not found")
	})
	fmt.Println("Error:", err)
	fmt.Println("Calls:", calls)
	// Output:
	// Error: 404 not found
	// Calls: 1
}
