// Package accounts provides request builders for the Horizon accounts
// endpoints.
package accounts

import (
	"net/url"

	horizon "github.com/aurora-rs/horizon-go"
	"github.com/aurora-rs/horizon-go/resources"
)

const apiPath = "accounts"

// Single creates a request to retrieve a single account.
func Single(accountID string) SingleRequest {
	return SingleRequest{accountID: accountID}
}

// All creates a request to retrieve all accounts matching a filter.
// Horizon requires at least one of the signer, asset or sponsor filters.
func All() AllRequest {
	return AllRequest{}
}

// SingleRequest requests a single account.
type SingleRequest struct {
	accountID string
}

// URI implements horizon.Request.
func (r SingleRequest) URI(host *url.URL) (*url.URL, error) {
	return host.JoinPath(apiPath, r.accountID), nil
}

// ResponseType implements horizon.TypedRequest.
func (SingleRequest) ResponseType() resources.Account { return resources.Account{} }

// AllRequest requests all accounts matching a filter.
type AllRequest struct {
	signer  string
	asset   string
	sponsor string
	page    horizon.PageOptions
}

// WithSigner filters results by signer.
func (r AllRequest) WithSigner(accountID string) AllRequest {
	r.signer = accountID
	return r
}

// WithTrustedAsset filters results by trust line to the canonical asset
// ("CODE:ISSUER").
func (r AllRequest) WithTrustedAsset(canonical string) AllRequest {
	r.asset = canonical
	return r
}

// WithSponsor filters results by sponsor.
func (r AllRequest) WithSponsor(accountID string) AllRequest {
	r.sponsor = accountID
	return r
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
	if r.signer != "" {
		q.Set("signer", r.signer)
	}
	if r.asset != "" {
		q.Set("asset", r.asset)
	}
	if r.sponsor != "" {
		q.Set("sponsor", r.sponsor)
	}
	r.page.AppendTo(q)
	u.RawQuery = q.Encode()
	return u, nil
}

// ResponseType implements horizon.TypedRequest.
func (AllRequest) ResponseType() horizon.Page[resources.Account] {
	return horizon.Page[resources.Account]{}
}

var (
	_ horizon.TypedRequest[resources.Account]               = SingleRequest{}
	_ horizon.TypedRequest[horizon.Page[resources.Account]] = AllRequest{}
)
