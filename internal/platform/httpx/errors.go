package httpx

import (
	"context"
	"errors"
	"net/http"
)

// StoreUnavailable reports a failed store call as 503 so callers can render
// a degraded view instead of crashing. Context cancellation is reported as
// a client timeout.
func StoreUnavailable(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		Problem(w, http.StatusGatewayTimeout, "Store Timeout", "the data store did not answer in time")
		return
	}
	Problem(w, http.StatusServiceUnavailable, "Store Unavailable", "the data store failed to answer")
}
