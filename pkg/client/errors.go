package client

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode wraps failures to parse a provider body as a JSON object.
	ErrDecode = errors.New("decode weather response")
	// ErrCircuitOpen is returned while the breaker rejects calls.
	ErrCircuitOpen = errors.New("weather provider circuit open")
)

// UpstreamError is a non-2xx response from the provider.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%d - %s", e.StatusCode, e.Body)
}
