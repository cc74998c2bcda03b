// Package effects provides request builders for the Horizon effects
// endpoints.
//
// Effects can be listed globally or scoped to an account, ledger,
// operation or transaction; all variants share the same request shape.
package effects

import (
	"net/url"
	"strconv"

	horizon "github.com/aurora-rs/horizon-go"
	"github.com/aurora-rs/horizon-go/resources"
)

const apiPath = "effects"

// All creates a request to retrieve all effects.
func All() Request {
	return Request{}
}

// ForAccount creates a request to retrieve an account's effects.
func ForAccount(accountID string) Request {
	return Request{parent: []string{"accounts", accountID}}
}

// ForLedger creates a request to retrieve a ledger's effects.
func ForLedger(sequence int32) Request {
	return Request{parent: []string{"ledgers", strconv.FormatInt(int64(sequence), 10)}}
}

// ForOperation creates a request to retrieve an operation's effects.
func ForOperation(operationID string) Request {
	return Request{parent: []string{"operations", operationID}}
}

// ForTransaction creates a request to retrieve a transaction's effects.
func ForTransaction(hash string) Request {
	return Request{parent: []string{"transactions", hash}}
}

// Request requests a page of effects. It is streamable.
type Request struct {
	parent []string
	page   horizon.PageOptions
}

// WithCursor sets the request cursor.
func (r Request) WithCursor(cursor string) Request {
	r.page.Cursor = cursor
	return r
}

// WithLimit sets the request limit.
func (r Request) WithLimit(limit uint64) Request {
	r.page.Limit = limit
	return r
}

// WithOrder sets the request order.
func (r Request) WithOrder(order horizon.Order) Request {
	r.page.Order = order
	return r
}

// URI implements horizon.Request.
func (r Request) URI(host *url.URL) (*url.URL, error) {
	u := host.JoinPath(append(append([]string{}, r.parent...), apiPath)...)
	q := u.Query()
	r.page.AppendTo(q)
	u.RawQuery = q.Encode()
	return u, nil
}

// ResponseType implements horizon.TypedRequest.
func (Request) ResponseType() horizon.Page[resources.Effect] {
	return horizon.Page[resources.Effect]{}
}

// StreamType implements horizon.StreamRequest.
func (Request) StreamType() resources.Effect { return resources.Effect{} }

var (
	_ horizon.TypedRequest[horizon.Page[resources.Effect]] = Request{}
	_ horizon.StreamRequest[resources.Effect]              = Request{}
)
