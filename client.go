package horizon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Version is the client version reported in the X-Client-Version header.
const Version = "0.8.0"

const clientName = "aurora-rs/horizon-go"

// Client is a Horizon API client. It is safe for concurrent use; every
// subscription created from it owns its own connection and state.
type Client struct {
	httpClient   *http.Client
	host         *url.URL
	extraHeaders http.Header
	logger       *zap.Logger
}

type clientConfig struct {
	httpClient   *http.Client
	extraHeaders http.Header
	logger       *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

// WithHTTPClient sets a custom HTTP client.
// If not set, a default client with pooled connections is used.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cfg *clientConfig) {
		cfg.httpClient = c
	}
}

// WithExtraHeaders sets headers added to every request, for example an
// authorization header for a private Horizon instance.
func WithExtraHeaders(h http.Header) ClientOption {
	return func(cfg *clientConfig) {
		cfg.extraHeaders = h
	}
}

// WithLogger sets a structured logger. The client logs connection
// lifecycle and dispatch events at debug level. Default is a no-op
// logger.
func WithLogger(l *zap.Logger) ClientOption {
	return func(cfg *clientConfig) {
		cfg.logger = l
	}
}

// NewClient creates a Horizon client for the given host URL.
//
// A malformed host fails here, not on the first request. If the host
// carries a path prefix (for example https://example.com/horizon), all
// request URIs are appended under that prefix.
//
//	client, err := horizon.NewClient("https://horizon.stellar.org")
func NewClient(host string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(host)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidHost
	}

	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			// No global timeout: streaming responses stay open
			// indefinitely. Use context for per-request deadlines.
			Transport: defaultTransport(),
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient:   httpClient,
		host:         u,
		extraHeaders: cfg.extraHeaders,
		logger:       logger,
	}, nil
}

func defaultTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		ForceAttemptHTTP2:   true,
	}
}

// Host returns a copy of the client host URL.
func (c *Client) Host() *url.URL {
	h := *c.host
	return &h
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// newRequest builds an HTTP request with the client identification and
// extra headers applied.
func (c *Client) newRequest(ctx context.Context, method string, uri *url.URL, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, uri.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Client-Name", clientName)
	req.Header.Set("X-Client-Version", Version)
	for k, vs := range c.extraHeaders {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}

// Do sends a one-shot request and decodes the success response into T.
// The response headers are returned alongside so callers can follow
// rate limiting.
//
// Client errors (4xx) return the parsed *Problem body; server errors and
// transport failures return ErrHorizonServer, both wrapped in *Error.
//
//	req := ledgers.All().WithLimit(5)
//	page, headers, err := horizon.Do(ctx, client, req)
func Do[T any](ctx context.Context, c *Client, req TypedRequest[T]) (T, http.Header, error) {
	var zero T

	uri, err := req.URI(c.host)
	if err != nil {
		return zero, nil, newError("request", c.host.String(), 0, err)
	}

	httpReq, err := buildHTTPRequest(ctx, c, req, uri)
	if err != nil {
		return zero, nil, newError("request", uri.String(), 0, err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return zero, nil, ctx.Err()
		}
		return zero, nil, newError("request", uri.String(), 0, fmt.Errorf("%w: %v", ErrHorizonServer, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, nil, newError("request", uri.String(), resp.StatusCode, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var result T
		if err := json.Unmarshal(body, &result); err != nil {
			return zero, nil, newError("request", uri.String(), resp.StatusCode, err)
		}
		return result, resp.Header, nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var problem Problem
		if err := json.Unmarshal(body, &problem); err != nil {
			return zero, nil, newError("request", uri.String(), resp.StatusCode, ErrHorizonServer)
		}
		return zero, nil, newError("request", uri.String(), resp.StatusCode, &problem)

	default:
		return zero, nil, newError("request", uri.String(), resp.StatusCode, ErrHorizonServer)
	}
}

func buildHTTPRequest(ctx context.Context, c *Client, req Request, uri *url.URL) (*http.Request, error) {
	if pr, ok := req.(PostRequest); ok {
		form, err := pr.PostBody()
		if err != nil {
			return nil, err
		}
		httpReq, err := c.newRequest(ctx, http.MethodPost, uri, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return httpReq, nil
	}
	return c.newRequest(ctx, http.MethodGet, uri, nil)
}
