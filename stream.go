package horizon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/aurora-rs/horizon-go/internal/sse"
)

// StreamOption configures a subscription.
type StreamOption func(*streamConfig)

type streamConfig struct {
	lastID string
}

// WithLastID seeds the subscription's resumption cursor. The first
// connect request carries it in the Last-Event-Id header, so events up
// to and including that id are not redelivered.
func WithLastID(id string) StreamOption {
	return func(cfg *streamConfig) {
		cfg.lastID = id
	}
}

// Subscription is one logical stream subscription to one endpoint.
//
// A subscription drives exactly one connection at a time. Pull items
// with Next; Close releases the connection. Subscriptions are
// single-consumer: do not call Next from multiple goroutines. Close may
// be called from any goroutine, including while Next is blocked.
//
// Every terminal condition (connection failure, framing violation,
// undecodable payload) is returned from Next exactly once; afterwards,
// and after a clean server close, Next returns Done. The subscription
// never retries on its own; see Tail for layered resumption.
type Subscription[R any] struct {
	client *Client
	req    StreamRequest[R]
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	lastID string
	resp   *http.Response
	dec    *sse.Decoder
	closed bool
	done   bool
}

// Stream creates a subscription for a streamable request. No connection
// is made until the first call to Next.
//
//	sub := horizon.Stream(ctx, client, transactions.All().WithCursor("now"))
//	defer sub.Close()
//
//	for {
//	    tx, err := sub.Next()
//	    if errors.Is(err, horizon.Done) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    process(tx)
//	}
func Stream[R any](ctx context.Context, c *Client, req StreamRequest[R], opts ...StreamOption) *Subscription[R] {
	cfg := &streamConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	subCtx, cancel := context.WithCancel(ctx)
	return &Subscription[R]{
		client: c,
		req:    req,
		ctx:    subCtx,
		cancel: cancel,
		lastID: cfg.lastID,
	}
}

// LastID returns the resumption cursor: the id of the most recent event
// observed, or "" before the first identified event. Persist it to seed
// a later subscription via WithLastID.
func (s *Subscription[R]) LastID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastID
}

// Next returns the next resource from the stream.
//
// It blocks until the server sends a matching event, the stream ends, or
// the subscription context is cancelled. After any error Next returns
// Done; resuming is an explicit action by the caller (create a new
// subscription seeded with LastID).
func (s *Subscription[R]) Next() (R, error) {
	var zero R

	for {
		// Snapshot the decoder under the lock: Close runs on another
		// goroutine and swaps the connection fields.
		s.mu.Lock()
		if s.closed || s.done {
			s.mu.Unlock()
			return zero, Done
		}
		dec := s.dec
		s.mu.Unlock()

		if s.ctx.Err() != nil {
			return zero, Done
		}

		if dec == nil {
			if err := s.connect(); err != nil {
				s.fail()
				return zero, err
			}
			continue
		}

		ev, err := dec.Next()
		if err != nil {
			s.closeConnection()
			if s.ctx.Err() != nil {
				return zero, Done
			}
			if errors.Is(err, io.EOF) {
				// Clean server close ends the sequence without error.
				s.mu.Lock()
				s.done = true
				s.mu.Unlock()
				return zero, Done
			}
			s.fail()
			return zero, newError("stream", s.client.host.String(), 0, err)
		}

		// The cursor advances before the frame is surfaced, so a
		// resumed connection never redelivers a consumer-observed item.
		if ev.ID != "" {
			s.mu.Lock()
			s.lastID = ev.ID
			s.mu.Unlock()
		}

		if (ev.Name != "" && ev.Name != "message") || len(ev.Data) == 0 {
			// Heartbeats, retry hints and foreign event names update
			// bookkeeping only; keep pulling frames.
			s.client.logger.Debug("skipping event frame",
				zap.String("event", ev.Name),
				zap.String("id", ev.ID))
			continue
		}

		var resource R
		if err := json.Unmarshal(ev.Data, &resource); err != nil {
			s.closeConnection()
			s.fail()
			return zero, newError("stream", s.client.host.String(), 0, err)
		}
		return resource, nil
	}
}

// connect establishes a new connection and binds a fresh decoder to it.
func (s *Subscription[R]) connect() error {
	uri, err := s.req.URI(s.client.host)
	if err != nil {
		return newError("stream", s.client.host.String(), 0, err)
	}

	httpReq, err := s.client.newRequest(s.ctx, http.MethodGet, uri, nil)
	if err != nil {
		return newError("stream", uri.String(), 0, err)
	}
	httpReq.Header.Set("Accept", "text/event-stream")

	s.mu.Lock()
	lastID := s.lastID
	s.mu.Unlock()
	if lastID != "" {
		httpReq.Header.Set("Last-Event-Id", lastID)
	}

	s.client.logger.Debug("connecting to stream",
		zap.String("url", uri.String()),
		zap.String("last_event_id", lastID))

	resp, err := s.client.httpClient.Do(httpReq)
	if err != nil {
		if s.ctx.Err() != nil {
			return Done
		}
		return newError("stream", uri.String(), 0, fmt.Errorf("%w: %v", ErrHorizonServer, err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return newError("stream", uri.String(), resp.StatusCode, ErrStream)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		resp.Body.Close()
		return Done
	}
	s.resp = resp
	s.dec = sse.NewDecoder(resp.Body)
	s.mu.Unlock()
	return nil
}

// fail marks the subscription terminal so the error is surfaced once.
func (s *Subscription[R]) fail() {
	s.mu.Lock()
	s.done = true
	s.mu.Unlock()
}

// closeConnection drops the current connection and decoder. The
// resumption cursor survives.
func (s *Subscription[R]) closeConnection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resp != nil {
		s.resp.Body.Close()
		s.resp = nil
	}
	s.dec = nil
}

// Close cancels the subscription and releases the underlying connection.
// It performs no further I/O and no server-side unsubscribe. Close is
// idempotent; after Close, Next returns Done.
// Implements io.Closer.
func (s *Subscription[R]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.cancel()

	if s.resp != nil {
		s.resp.Body.Close()
		s.resp = nil
	}
	s.dec = nil
	return nil
}

// Resources returns channels yielding individual resources from a new
// subscription. The items channel closes when the sequence ends; a
// terminal error, if any, is delivered on the errs channel.
//
//	items, errs := horizon.Resources(ctx, client, ledgers.All().WithCursor("now"))
//	for item := range items {
//	    process(item)
//	}
//	if err := <-errs; err != nil {
//	    return err
//	}
func Resources[R any](ctx context.Context, c *Client, req StreamRequest[R], opts ...StreamOption) (<-chan R, <-chan error) {
	items := make(chan R)
	errs := make(chan error, 1)

	go func() {
		defer close(items)
		defer close(errs)

		sub := Stream(ctx, c, req, opts...)
		defer sub.Close()

		for {
			item, err := sub.Next()
			if errors.Is(err, Done) {
				return
			}
			if err != nil {
				errs <- err
				return
			}
			select {
			case items <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	return items, errs
}
