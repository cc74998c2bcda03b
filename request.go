package horizon

import (
	"net/url"
	"strconv"
)

// Order is the records order of a paginated request.
type Order string

const (
	// OrderAscending returns records in ascending order.
	OrderAscending Order = "asc"
	// OrderDescending returns records in descending order.
	OrderDescending Order = "desc"
)

// Request builds the URI for one Horizon endpoint.
//
// URI must be a pure function of the request and the host: it appends the
// resource path segments and query parameters to a copy of the host URL,
// preserving any path prefix already present on it. Implementations must
// not mutate the host.
type Request interface {
	URI(host *url.URL) (*url.URL, error)
}

// TypedRequest binds a request to its response type.
//
// ResponseType is a compile-time marker used for type inference by Do;
// it is never called.
type TypedRequest[T any] interface {
	Request
	ResponseType() T
}

// StreamRequest marks a request whose endpoint supports streaming and
// binds it to the per-item resource type.
//
// StreamType is a compile-time marker used for type inference by Stream;
// it is never called.
type StreamRequest[R any] interface {
	Request
	StreamType() R
}

// PostRequest marks a request submitted as a form-encoded POST.
type PostRequest interface {
	Request
	// PostBody returns the form values for the request body.
	PostBody() (url.Values, error)
}

// PageOptions holds the pagination parameters shared by all paginated
// requests. The zero value omits all of them.
type PageOptions struct {
	// Cursor is the paging token to resume from. The special value
	// "now" starts from the current ledger.
	Cursor string

	// Limit is the maximum number of records, 0 for the server default.
	Limit uint64

	// Order is the records order, empty for the server default.
	Order Order
}

// AppendTo adds the pagination parameters to the query values.
func (p PageOptions) AppendTo(q url.Values) {
	if p.Cursor != "" {
		q.Set("cursor", p.Cursor)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.FormatUint(p.Limit, 10))
	}
	if p.Order != "" {
		q.Set("order", string(p.Order))
	}
}

// Join optionally joins related records into an operations response.
type Join string

const (
	// JoinTransactions includes each operation's transaction.
	JoinTransactions Join = "transactions"
)
