package horizon

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// Tail consumes a stream indefinitely, re-subscribing after terminal
// errors and clean server closes.
//
// The core Subscription is deliberately retry-free: every connection
// failure ends the sequence. Tail layers resumption on top: each new
// subscription is seeded with the last observed cursor, so handled
// items are not redelivered, and reconnect attempts wait per the given
// backoff policy. The policy is reset after every delivered item.
//
// Tail returns when ctx is cancelled (returns nil), when the handler
// returns an error (returned as-is), or when the backoff policy gives up
// (returns the last terminal error).
//
//	policy := backoff.NewExponentialBackOff()
//	err := horizon.Tail(ctx, client, transactions.All().WithCursor("now"), policy,
//	    func(tx resources.Transaction) error {
//	        process(tx)
//	        return nil
//	    })
func Tail[R any](ctx context.Context, c *Client, req StreamRequest[R], policy backoff.BackOff, handle func(R) error) error {
	policy = backoff.WithContext(policy, ctx)
	lastID := ""

	for {
		err := tailOnce(ctx, c, req, lastID, &lastID, policy, handle)
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}

		wait := policy.NextBackOff()
		if wait == backoff.Stop {
			return newError("stream", c.host.String(), 0, ErrStream)
		}
		c.logger.Debug("re-subscribing to stream",
			zap.Duration("wait", wait),
			zap.String("last_event_id", lastID))

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
	}
}

// tailOnce runs one subscription to exhaustion. It returns nil when the
// loop should re-subscribe and a non-nil error when Tail should stop.
func tailOnce[R any](ctx context.Context, c *Client, req StreamRequest[R], seed string, lastID *string, policy backoff.BackOff, handle func(R) error) error {
	var opts []StreamOption
	if seed != "" {
		opts = append(opts, WithLastID(seed))
	}

	sub := Stream(ctx, c, req, opts...)
	defer sub.Close()

	for {
		item, err := sub.Next()
		*lastID = sub.LastID()

		if errors.Is(err, Done) {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Debug("stream ended, will resume",
				zap.Error(err),
				zap.String("last_event_id", *lastID))
			return nil
		}

		if err := handle(item); err != nil {
			return err
		}
		policy.Reset()
	}
}
