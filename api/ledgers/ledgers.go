// Package ledgers provides request builders for the Horizon ledgers
// endpoints.
package ledgers

import (
	"net/url"
	"strconv"

	horizon "github.com/aurora-rs/horizon-go"
	"github.com/aurora-rs/horizon-go/resources"
)

const apiPath = "ledgers"

// Single creates a request to retrieve a single ledger.
func Single(sequence int32) SingleRequest {
	return SingleRequest{sequence: sequence}
}

// All creates a request to retrieve all ledgers.
func All() AllRequest {
	return AllRequest{}
}

// SingleRequest requests a single ledger.
type SingleRequest struct {
	sequence int32
}

// URI implements horizon.Request.
func (r SingleRequest) URI(host *url.URL) (*url.URL, error) {
	return host.JoinPath(apiPath, strconv.FormatInt(int64(r.sequence), 10)), nil
}

// ResponseType implements horizon.TypedRequest.
func (SingleRequest) ResponseType() resources.Ledger { return resources.Ledger{} }

// AllRequest requests all ledgers. It is streamable.
type AllRequest struct {
	page horizon.PageOptions
}

// WithCursor sets the request cursor.
func (r AllRequest) WithCursor(cursor string) AllRequest {
	r.page.Cursor = cursor
	return r
}

// WithLimit sets the request limit.
func (r AllRequest) WithLimit(limit uint64) AllRequest {
	r.page.Limit = limit
	return r
}

// WithOrder sets the request order.
func (r AllRequest) WithOrder(order horizon.Order) AllRequest {
	r.page.Order = order
	return r
}

// URI implements horizon.Request.
func (r AllRequest) URI(host *url.URL) (*url.URL, error) {
	u := host.JoinPath(apiPath)
	q := u.Query()
	r.page.AppendTo(q)
	u.RawQuery = q.Encode()
	return u, nil
}

// ResponseType implements horizon.TypedRequest.
func (AllRequest) ResponseType() horizon.Page[resources.Ledger] {
	return horizon.Page[resources.Ledger]{}
}

// StreamType implements horizon.StreamRequest.
func (AllRequest) StreamType() resources.Ledger { return resources.Ledger{} }

var (
	_ horizon.TypedRequest[resources.Ledger]               = SingleRequest{}
	_ horizon.TypedRequest[horizon.Page[resources.Ledger]] = AllRequest{}
	_ horizon.StreamRequest[resources.Ledger]              = AllRequest{}
)
