// Package horizontest provides testing utilities for Horizon clients.
//
// The package includes an in-memory mock server that speaks the Horizon
// HTTP API and its text/event-stream endpoints, useful for unit testing
// without network dependencies.
//
// Example:
//
//	func TestMyCode(t *testing.T) {
//	    // Create mock server
//	    server := horizontest.NewMockServer()
//	    defer server.Close()
//
//	    server.HandleJSON("/ledgers/1234", http.StatusOK, fixture)
//
//	    // Create client pointing to mock server
//	    client, err := horizon.NewClient(server.URL())
//	    // ...
//	}
package horizontest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// MockServer is an in-memory implementation of a Horizon server.
// It's useful for testing client code without network dependencies.
type MockServer struct {
	server   *httptest.Server
	handlers map[string]http.HandlerFunc
	requests []RecordedRequest
	mu       sync.RWMutex
}

// RecordedRequest captures the parts of a request that tests assert on.
type RecordedRequest struct {
	Method      string
	Path        string
	Query       string
	Accept      string
	LastEventID string
	ClientName  string
	Form        string
}

// NewMockServer creates a new mock Horizon server.
func NewMockServer() *MockServer {
	ms := &MockServer{
		handlers: make(map[string]http.HandlerFunc),
	}

	ms.server = httptest.NewServer(http.HandlerFunc(ms.handleRequest))
	return ms
}

// URL returns the base URL of the mock server.
func (ms *MockServer) URL() string {
	return ms.server.URL
}

// HTTPClient returns an HTTP client configured to use the mock server.
func (ms *MockServer) HTTPClient() *http.Client {
	return ms.server.Client()
}

// Close shuts down the mock server.
func (ms *MockServer) Close() {
	ms.server.Close()
}

// Reset clears all handlers and recorded requests.
func (ms *MockServer) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.handlers = make(map[string]http.HandlerFunc)
	ms.requests = nil
}

// Handle registers a handler for the given path.
func (ms *MockServer) Handle(path string, handler http.HandlerFunc) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.handlers[path] = handler
}

// HandleJSON registers a handler that responds with the JSON encoding of
// body. If body is a string or []byte it is written verbatim, which lets
// tests serve recorded fixtures.
func (ms *MockServer) HandleJSON(path string, status int, body any, headers ...map[string]string) {
	ms.Handle(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		for _, h := range headers {
			for k, v := range h {
				w.Header().Set(k, v)
			}
		}
		w.WriteHeader(status)
		switch b := body.(type) {
		case string:
			io.WriteString(w, b)
		case []byte:
			w.Write(b)
		default:
			json.NewEncoder(w).Encode(b)
		}
	})
}

// HandleProblem registers a handler that responds with a Horizon problem
// document.
func (ms *MockServer) HandleProblem(path string, status int, title, detail string) {
	body := fmt.Sprintf(`{"type":"https://stellar.org/horizon-errors/%s","title":%q,"status":%d,"detail":%q}`,
		strings.ReplaceAll(strings.ToLower(title), " ", "_"), title, status, detail)
	ms.Handle(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	})
}

// HandleSSE registers a handler that writes the script verbatim as a
// text/event-stream response and then closes the connection. The script
// is raw wire text; build it with EventScript or write frames by hand.
func (ms *MockServer) HandleSSE(path string, script string) {
	ms.Handle(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, script)
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
	})
}

// HandleSSESequence registers SSE scripts served in order, one per
// connection; connections past the last script replay the final one.
// Use it to test resumption across reconnects.
func (ms *MockServer) HandleSSESequence(path string, scripts ...string) {
	var n int
	var mu sync.Mutex
	ms.Handle(path, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		script := scripts[len(scripts)-1]
		if n < len(scripts) {
			script = scripts[n]
		}
		n++
		mu.Unlock()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, script)
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
	})
}

// Requests returns all recorded requests.
func (ms *MockServer) Requests() []RecordedRequest {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	out := make([]RecordedRequest, len(ms.requests))
	copy(out, ms.requests)
	return out
}

// LastRequest returns the most recent recorded request.
func (ms *MockServer) LastRequest() (RecordedRequest, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	if len(ms.requests) == 0 {
		return RecordedRequest{}, false
	}
	return ms.requests[len(ms.requests)-1], true
}

func (ms *MockServer) handleRequest(w http.ResponseWriter, r *http.Request) {
	rec := RecordedRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		Query:       r.URL.RawQuery,
		Accept:      r.Header.Get("Accept"),
		LastEventID: r.Header.Get("Last-Event-Id"),
		ClientName:  r.Header.Get("X-Client-Name"),
	}
	if r.Method == http.MethodPost {
		body, _ := io.ReadAll(r.Body)
		rec.Form = string(body)
	}

	ms.mu.Lock()
	ms.requests = append(ms.requests, rec)
	handler, ok := ms.handlers[r.URL.Path]
	ms.mu.Unlock()

	if !ok {
		http.Error(w, `{"title":"Resource Missing","status":404}`, http.StatusNotFound)
		return
	}
	handler(w, r)
}

// EventScript renders a single wire frame with the given id, event name
// and data payload. Empty id or name omits the field.
func EventScript(id, name, data string) string {
	var b strings.Builder
	if id != "" {
		fmt.Fprintf(&b, "id: %s\n", id)
	}
	if name != "" {
		fmt.Fprintf(&b, "event: %s\n", name)
	}
	for _, line := range strings.Split(data, "\n") {
		fmt.Fprintf(&b, "data: %s\n", line)
	}
	b.WriteString("\n")
	return b.String()
}
