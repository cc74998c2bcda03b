package horizon

import (
	"net/http"
	"strconv"
)

// Rate limiting header helpers. Horizon reports the request quota on
// every response; expose it so callers can throttle before hitting 429.

// RateLimitLimit returns the requests quota in the current time window.
func RateLimitLimit(h http.Header) (int, bool) {
	return intHeader(h, "X-Ratelimit-Limit")
}

// RateLimitRemaining returns the remaining requests quota in the current
// window.
func RateLimitRemaining(h http.Header) (int, bool) {
	return intHeader(h, "X-Ratelimit-Remaining")
}

// RateLimitReset returns the seconds remaining in the current window.
func RateLimitReset(h http.Header) (int, bool) {
	return intHeader(h, "X-Ratelimit-Reset")
}

func intHeader(h http.Header, name string) (int, bool) {
	v := h.Get(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
