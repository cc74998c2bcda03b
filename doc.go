// Package horizon provides a Go client for the Horizon ledger-query API.
//
// Horizon exposes the history of a Stellar network over HTTP: paginated
// JSON endpoints for bounded queries and Server-Sent-Events streams for
// live updates. This package implements both paths over a single client.
//
// # One-shot requests
//
// Build a request with an api subpackage and execute it with Do:
//
//	client, err := horizon.NewClient("https://horizon.stellar.org")
//	if err != nil {
//	    return err
//	}
//
//	root, _, err := horizon.Do(ctx, client, root.Root())
//	fmt.Println("Horizon version:", root.HorizonVersion)
//
// Paginated endpoints return a Page:
//
//	page, headers, err := horizon.Do(ctx, client,
//	    ledgers.All().WithLimit(7).WithOrder(horizon.OrderDescending))
//	for _, ledger := range page.Records {
//	    fmt.Println(ledger.Sequence)
//	}
//
// Response headers are returned so callers can follow rate limiting, see
// RateLimitRemaining.
//
// # Streaming
//
// Streamable requests produce a Subscription, a pull-based sequence of
// typed resources:
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
//	    fmt.Println(tx.Hash)
//	}
//
// A subscription ends on the first terminal condition: a failed connect,
// an SSE framing violation, or an undecodable payload. It never retries
// on its own. To keep consuming across failures, persist the cursor from
// LastID and create a new subscription seeded with WithLastID, or use
// Tail which does exactly that with a backoff policy.
//
// # Error handling
//
// Terminal conditions carry an *Error with the operation, URL and HTTP
// status:
//
//	var herr *horizon.Error
//	if errors.As(err, &herr) {
//	    fmt.Println("status:", herr.StatusCode)
//	}
//
// Client errors on the one-shot path additionally carry the parsed
// problem body:
//
//	var problem *horizon.Problem
//	if errors.As(err, &problem) {
//	    fmt.Println(problem.Title, problem.Detail)
//	}
package horizon
