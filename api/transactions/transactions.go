// Package transactions provides request builders for the Horizon
// transactions endpoints, including transaction submission.
package transactions

import (
	"net/url"
	"strconv"

	horizon "github.com/aurora-rs/horizon-go"
	"github.com/aurora-rs/horizon-go/resources"
)

const apiPath = "transactions"

// All creates a request to retrieve all transactions.
func All() AllRequest {
	return AllRequest{}
}

// Single creates a request to retrieve a single transaction.
func Single(id string) SingleRequest {
	return SingleRequest{id: id}
}

// Submit creates a request to submit a transaction. The envelope is the
// base64-encoded TransactionEnvelope XDR.
func Submit(envelopeXDR string) SubmitRequest {
	return SubmitRequest{envelopeXDR: envelopeXDR}
}

// ForAccount creates a request to retrieve an account's transactions.
func ForAccount(accountID string) ForAccountRequest {
	return ForAccountRequest{accountID: accountID}
}

// ForLedger creates a request to retrieve a ledger's transactions.
func ForLedger(sequence int32) ForLedgerRequest {
	return ForLedgerRequest{sequence: sequence}
}

// AllRequest requests all transactions. It is streamable.
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
func (AllRequest) ResponseType() horizon.Page[resources.Transaction] {
	return horizon.Page[resources.Transaction]{}
}

// StreamType implements horizon.StreamRequest.
func (AllRequest) StreamType() resources.Transaction { return resources.Transaction{} }

// SingleRequest requests a single transaction.
type SingleRequest struct {
	id string
}

// URI implements horizon.Request.
func (r SingleRequest) URI(host *url.URL) (*url.URL, error) {
	return host.JoinPath(apiPath, r.id), nil
}

// ResponseType implements horizon.TypedRequest.
func (SingleRequest) ResponseType() resources.Transaction { return resources.Transaction{} }

// SubmitRequest submits a transaction envelope.
type SubmitRequest struct {
	envelopeXDR string
}

// URI implements horizon.Request.
func (SubmitRequest) URI(host *url.URL) (*url.URL, error) {
	return host.JoinPath(apiPath), nil
}

// PostBody implements horizon.PostRequest.
func (r SubmitRequest) PostBody() (url.Values, error) {
	form := url.Values{}
	form.Set("tx", r.envelopeXDR)
	return form, nil
}

// ResponseType implements horizon.TypedRequest.
func (SubmitRequest) ResponseType() resources.Transaction { return resources.Transaction{} }

// ForAccountRequest requests an account's transactions. It is streamable.
type ForAccountRequest struct {
	accountID string
	page      horizon.PageOptions
}

// WithCursor sets the request cursor.
func (r ForAccountRequest) WithCursor(cursor string) ForAccountRequest {
	r.page.Cursor = cursor
	return r
}

// WithLimit sets the request limit.
func (r ForAccountRequest) WithLimit(limit uint64) ForAccountRequest {
	r.page.Limit = limit
	return r
}

// WithOrder sets the request order.
func (r ForAccountRequest) WithOrder(order horizon.Order) ForAccountRequest {
	r.page.Order = order
	return r
}

// URI implements horizon.Request.
func (r ForAccountRequest) URI(host *url.URL) (*url.URL, error) {
	u := host.JoinPath("accounts", r.accountID, apiPath)
	q := u.Query()
	r.page.AppendTo(q)
	u.RawQuery = q.Encode()
	return u, nil
}

// ResponseType implements horizon.TypedRequest.
func (ForAccountRequest) ResponseType() horizon.Page[resources.Transaction] {
	return horizon.Page[resources.Transaction]{}
}

// StreamType implements horizon.StreamRequest.
func (ForAccountRequest) StreamType() resources.Transaction { return resources.Transaction{} }

// ForLedgerRequest requests a ledger's transactions. It is streamable.
type ForLedgerRequest struct {
	sequence int32
	page     horizon.PageOptions
}

// WithCursor sets the request cursor.
func (r ForLedgerRequest) WithCursor(cursor string) ForLedgerRequest {
	r.page.Cursor = cursor
	return r
}

// WithLimit sets the request limit.
func (r ForLedgerRequest) WithLimit(limit uint64) ForLedgerRequest {
	r.page.Limit = limit
	return r
}

// WithOrder sets the request order.
func (r ForLedgerRequest) WithOrder(order horizon.Order) ForLedgerRequest {
	r.page.Order = order
	return r
}

// URI implements horizon.Request.
func (r ForLedgerRequest) URI(host *url.URL) (*url.URL, error) {
	u := host.JoinPath("ledgers", strconv.FormatInt(int64(r.sequence), 10), apiPath)
	q := u.Query()
	r.page.AppendTo(q)
	u.RawQuery = q.Encode()
	return u, nil
}

// ResponseType implements horizon.TypedRequest.
func (ForLedgerRequest) ResponseType() horizon.Page[resources.Transaction] {
	return horizon.Page[resources.Transaction]{}
}

// StreamType implements horizon.StreamRequest.
func (ForLedgerRequest) StreamType() resources.Transaction { return resources.Transaction{} }

var (
	_ horizon.TypedRequest[horizon.Page[resources.Transaction]] = AllRequest{}
	_ horizon.StreamRequest[resources.Transaction]              = AllRequest{}
	_ horizon.TypedRequest[resources.Transaction]               = SingleRequest{}
	_ horizon.PostRequest                                       = SubmitRequest{}
	_ horizon.StreamRequest[resources.Transaction]              = ForAccountRequest{}
	_ horizon.StreamRequest[resources.Transaction]              = ForLedgerRequest{}
)
