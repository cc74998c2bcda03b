// Package trades provides request builders for the Horizon trades
// endpoints.
package trades

import (
	"net/url"
	"strconv"

	horizon "github.com/aurora-rs/horizon-go"
	"github.com/aurora-rs/horizon-go/resources"
)

const apiPath = "trades"

// All creates a request to retrieve all trades.
func All() Request {
	return Request{}
}

// ForAccount creates a request to retrieve an account's trades.
func ForAccount(accountID string) Request {
	return Request{parent: []string{"accounts", accountID}}
}

// ForOffer creates a request to retrieve an offer's trades.
func ForOffer(offerID int64) Request {
	return Request{parent: []string{"offers", strconv.FormatInt(offerID, 10)}}
}

// Request requests a page of trades. It is streamable.
type Request struct {
	parent  []string
	base    *resources.Asset
	counter *resources.Asset
	offerID string
	page    horizon.PageOptions
}

// WithBaseAsset filters trades by base asset. Pass empty code and issuer
// for the native asset.
func (r Request) WithBaseAsset(assetType, code, issuer string) Request {
	r.base = &resources.Asset{Type: assetType, Code: code, Issuer: issuer}
	return r
}

// WithCounterAsset filters trades by counter asset. Pass empty code and
// issuer for the native asset.
func (r Request) WithCounterAsset(assetType, code, issuer string) Request {
	r.counter = &resources.Asset{Type: assetType, Code: code, Issuer: issuer}
	return r
}

// WithOfferID filters trades originating from the offer.
func (r Request) WithOfferID(offerID int64) Request {
	r.offerID = strconv.FormatInt(offerID, 10)
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
	appendAsset(q, "base", r.base)
	appendAsset(q, "counter", r.counter)
	if r.offerID != "" {
		q.Set("offer_id", r.offerID)
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
func (Request) ResponseType() horizon.Page[resources.Trade] {
	return horizon.Page[resources.Trade]{}
}

// StreamType implements horizon.StreamRequest.
func (Request) StreamType() resources.Trade { return resources.Trade{} }

var (
	_ horizon.TypedRequest[horizon.Page[resources.Trade]] = Request{}
	_ horizon.StreamRequest[resources.Trade]              = Request{}
)
