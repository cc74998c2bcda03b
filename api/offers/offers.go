// Package offers provides request builders for the Horizon offers
// endpoints.
package offers

import (
	"net/url"

	horizon "github.com/aurora-rs/horizon-go"
	"github.com/aurora-rs/horizon-go/resources"
)

const apiPath = "offers"

// All creates a request to retrieve all offers.
func All() AllRequest {
	return AllRequest{}
}

// ForAccount creates a request to retrieve an account's open offers.
func ForAccount(accountID string) ForAccountRequest {
	return ForAccountRequest{accountID: accountID}
}

// AllRequest requests all offers matching a filter.
type AllRequest struct {
	seller  string
	selling *resources.Asset
	buying  *resources.Asset
	sponsor string
	page    horizon.PageOptions
}

// WithSeller filters offers by seller account.
func (r AllRequest) WithSeller(accountID string) AllRequest {
	r.seller = accountID
	return r
}

// WithSelling filters offers by the asset being sold. Pass empty code
// and issuer for the native asset.
func (r AllRequest) WithSelling(assetType, code, issuer string) AllRequest {
	r.selling = &resources.Asset{Type: assetType, Code: code, Issuer: issuer}
	return r
}

// WithBuying filters offers by the asset being bought. Pass empty code
// and issuer for the native asset.
func (r AllRequest) WithBuying(assetType, code, issuer string) AllRequest {
	r.buying = &resources.Asset{Type: assetType, Code: code, Issuer: issuer}
	return r
}

// WithSponsor filters offers by sponsor.
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
	if r.seller != "" {
		q.Set("seller", r.seller)
	}
	appendAsset(q, "selling", r.selling)
	appendAsset(q, "buying", r.buying)
	if r.sponsor != "" {
		q.Set("sponsor", r.sponsor)
	}
	r.page.AppendTo(q)
	u.RawQuery = q.Encode()
	return u, nil
}

func appendAsset(q url.Values, prefix string, asset *resources.Asset) {
	if asset == nil {
		return
	}
	q.Set(prefix+"_asset_type", asset.Type)
	if asset.Code != "" {
		q.Set(prefix+"_asset_code", asset.Code)
	}
	if asset.Issuer != "" {
		q.Set(prefix+"_asset_issuer", asset.Issuer)
	}
}

// ResponseType implements horizon.TypedRequest.
func (AllRequest) ResponseType() horizon.Page[resources.Offer] {
	return horizon.Page[resources.Offer]{}
}

// ForAccountRequest requests an account's open offers. It is streamable.
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
func (ForAccountRequest) ResponseType() horizon.Page[resources.Offer] {
	return horizon.Page[resources.Offer]{}
}

// StreamType implements horizon.StreamRequest.
func (ForAccountRequest) StreamType() resources.Offer { return resources.Offer{} }

var (
	_ horizon.TypedRequest[horizon.Page[resources.Offer]] = AllRequest{}
	_ horizon.TypedRequest[horizon.Page[resources.Offer]] = ForAccountRequest{}
	_ horizon.StreamRequest[resources.Offer]              = ForAccountRequest{}
)
