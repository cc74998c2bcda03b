// Package payments provides request builders for the Horizon payments
// endpoints. Payments are the subset of operations that move value; the
// per-item type is the shared operations resource.
package payments

import (
	"net/url"
	"strconv"

	horizon "github.com/aurora-rs/horizon-go"
	"github.com/aurora-rs/horizon-go/resources"
)

const apiPath = "payments"

// All creates a request to retrieve all payments.
func All() Request {
	return Request{}
}

// ForAccount creates a request to retrieve an account's payments.
func ForAccount(accountID string) Request {
	return Request{parent: []string{"accounts", accountID}}
}

// ForLedger creates a request to retrieve a ledger's payments.
func ForLedger(sequence int32) Request {
	return Request{parent: []string{"ledgers", strconv.FormatInt(int64(sequence), 10)}}
}

// ForTransaction creates a request to retrieve a transaction's payments.
func ForTransaction(hash string) Request {
	return Request{parent: []string{"transactions", hash}}
}

// Request requests a page of payments. It is streamable.
type Request struct {
	parent        []string
	includeFailed *bool
	join          horizon.Join
	page          horizon.PageOptions
}

// WithIncludeFailed includes payments of failed transactions.
func (r Request) WithIncludeFailed(includeFailed bool) Request {
	r.includeFailed = &includeFailed
	return r
}

// WithJoin includes the related records in the response.
func (r Request) WithJoin(join horizon.Join) Request {
	r.join = join
	return r
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
	if r.includeFailed != nil {
		q.Set("include_failed", strconv.FormatBool(*r.includeFailed))
	}
	if r.join != "" {
		q.Set("join", string(r.join))
	}
	r.page.AppendTo(q)
	u.RawQuery = q.Encode()
	return u, nil
}

// ResponseType implements horizon.TypedRequest.
func (Request) ResponseType() horizon.Page[resources.Operation] {
	return horizon.Page[resources.Operation]{}
}

// StreamType implements horizon.StreamRequest.
func (Request) StreamType() resources.Operation { return resources.Operation{} }

var (
	_ horizon.TypedRequest[horizon.Page[resources.Operation]] = Request{}
	_ horizon.StreamRequest[resources.Operation]              = Request{}
)
