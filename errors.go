package horizon

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// Done is returned by Subscription.Next when the sequence has ended:
	// after a clean server close, after Close, or after the terminal
	// error has already been returned once.
	// Check with errors.Is(err, horizon.Done).
	Done = errors.New("horizon: no more items in subscription")

	// ErrInvalidHost indicates the client host URL could not be parsed.
	ErrInvalidHost = errors.New("horizon: invalid host")

	// ErrHorizonServer indicates a transport failure or a server-side
	// (5xx) response with no usable problem body.
	ErrHorizonServer = errors.New("horizon: server error")

	// ErrStream indicates a non-success status on a stream connect.
	// The streaming path does not parse an error body; the status code
	// is available via *Error.
	ErrStream = errors.New("horizon: stream connection failed")
)

// Error wraps errors with context about the failed operation.
type Error struct {
	// Op is the operation that failed: "request", "stream".
	Op string

	// URL is the request URL.
	URL string

	// StatusCode is the HTTP status code, if available.
	StatusCode int

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("horizon: %s %s failed with status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("horizon: %s %s failed: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op, url string, statusCode int, err error) *Error {
	return &Error{
		Op:         op,
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

// Problem is the structured error body Horizon returns on client errors,
// following the problem+json convention.
type Problem struct {
	// Type is a URL identifying the problem type.
	Type string `json:"type"`
	// Title is a short description of the problem.
	Title string `json:"title"`
	// Status is the HTTP status code.
	Status int `json:"status"`
	// Detail is a longer description of the problem.
	Detail string `json:"detail"`
}

// Error implements the error interface.
func (p *Problem) Error() string {
	return fmt.Sprintf("horizon: %s (status %d): %s", p.Title, p.Status, p.Detail)
}
