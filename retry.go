package client

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// maxBackoff caps the exponential delay between attempts. A server
// Retry-After hint is honored verbatim and is not subject to the cap.
const maxBackoff = 8 * time.Second

// retryableStatus reports whether the pipeline treats an HTTP status as
// transient: rate limiting (429) and the upstream failure family
// (500, 502, 503, 504). All other non-2xx statuses fail immediately.
func retryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// backoffDelay returns the wait after the failed attempt with the given
// zero-based index. When resp carries Retry-After as integer seconds the
// hint is used verbatim; the HTTP-date form is ignored. Without a usable
// hint the delay is 2^attempt seconds, capped at maxBackoff.
func backoffDelay(attempt int, resp *resty.Response) time.Duration {
	if resp != nil {
		if hint := resp.Header().Get("Retry-After"); hint != "" {
			if seconds, err := strconv.Atoi(hint); err == nil && seconds >= 0 {
				return time.Duration(seconds) * time.Second
			}
		}
	}

	// 2^attempt reaches the cap at attempt 3; bounding first keeps the
	// shift safe for arbitrarily large attempt indexes.
	if attempt >= 3 {
		return maxBackoff
	}
	return time.Duration(1<<attempt) * time.Second
}
