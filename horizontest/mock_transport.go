package horizontest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// MockTransport is an http.RoundTripper that records requests and returns
// configured responses. Useful for testing client behavior without a server.
type MockTransport struct {
	mu        sync.Mutex
	requests  []*http.Request
	responses []*http.Response
	errors    []error
	index     int
}

// NewMockTransport creates a new MockTransport.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// AddResponse adds a response to be returned by the next request.
func (mt *MockTransport) AddResponse(resp *http.Response, err error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.responses = append(mt.responses, resp)
	mt.errors = append(mt.errors, err)
}

// AddJSONResponse is a helper to add a JSON response.
func (mt *MockTransport) AddJSONResponse(status int, body any, headers map[string]string) {
	data, _ := json.Marshal(body)
	resp := &http.Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(string(data))),
	}
	resp.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		resp.Header.Set(k, v)
	}
	mt.AddResponse(resp, nil)
}

// AddSSEResponse is a helper to add a text/event-stream response whose
// body is the raw wire script. The returned body tracks whether the
// client closed it.
func (mt *MockTransport) AddSSEResponse(script string) *TrackedBody {
	body := &TrackedBody{Reader: strings.NewReader(script)}
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Header:     make(http.Header),
		Body:       body,
	}
	resp.Header.Set("Content-Type", "text/event-stream")
	mt.AddResponse(resp, nil)
	return body
}

// Requests returns all recorded requests.
func (mt *MockTransport) Requests() []*http.Request {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return mt.requests
}

// RoundTrip implements http.RoundTripper.
func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	mt.requests = append(mt.requests, req)

	if mt.index >= len(mt.responses) {
		return nil, fmt.Errorf("no more mock responses configured")
	}

	resp := mt.responses[mt.index]
	err := mt.errors[mt.index]
	mt.index++

	return resp, err
}

// Reset clears all recorded requests and responses.
func (mt *MockTransport) Reset() {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.requests = nil
	mt.responses = nil
	mt.errors = nil
	mt.index = 0
}

// TrackedBody is a response body that counts Close calls and reports
// reads after close, so tests can assert teardown behavior.
type TrackedBody struct {
	Reader io.Reader

	mu             sync.Mutex
	closeCount     int
	readAfterClose bool
}

// Read implements io.Reader.
func (b *TrackedBody) Read(p []byte) (int, error) {
	b.mu.Lock()
	if b.closeCount > 0 {
		b.readAfterClose = true
		b.mu.Unlock()
		return 0, io.ErrClosedPipe
	}
	b.mu.Unlock()
	return b.Reader.Read(p)
}

// Close implements io.Closer.
func (b *TrackedBody) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closeCount++
	return nil
}

// CloseCount reports how many times Close was called.
func (b *TrackedBody) CloseCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closeCount
}

// ReadAfterClose reports whether a Read happened after the first Close.
func (b *TrackedBody) ReadAfterClose() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.readAfterClose
}
