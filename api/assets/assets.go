// Package assets provides the request builder for the Horizon assets
// endpoint.
package assets

import (
	"net/url"

	horizon "github.com/aurora-rs/horizon-go"
	"github.com/aurora-rs/horizon-go/resources"
)

const apiPath = "assets"

// All creates a request to retrieve all assets.
func All() AllRequest {
	return AllRequest{}
}

// AllRequest requests all assets matching a filter.
type AllRequest struct {
	code   string
	issuer string
	page   horizon.PageOptions
}

// WithAssetCode filters assets by code.
func (r AllRequest) WithAssetCode(code string) AllRequest {
	r.code = code
	return r
}

// WithAssetIssuer filters assets by issuer.
func (r AllRequest) WithAssetIssuer(issuer string) AllRequest {
	r.issuer = issuer
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
	if r.code != "" {
		q.Set("asset_code", r.code)
	}
	if r.issuer != "" {
		q.Set("asset_issuer", r.issuer)
	}
	r.page.AppendTo(q)
	u.RawQuery = q.Encode()
	return u, nil
}

// ResponseType implements horizon.TypedRequest.
func (AllRequest) ResponseType() horizon.Page[resources.AssetStat] {
	return horizon.Page[resources.AssetStat]{}
}

var _ horizon.TypedRequest[horizon.Page[resources.AssetStat]] = AllRequest{}
