// Package resources contains the JSON types returned by Horizon.
//
// Field names mirror the wire protocol exactly; when updating, use the
// Horizon protocol definitions as the source of truth. All types
// round-trip through encoding/json unchanged so responses can be passed
// through middleware services.
package resources

import horizon "github.com/aurora-rs/horizon-go"

// Asset identifies an asset on the network. The native asset has type
// "native" and no code or issuer.
type Asset struct {
	Type   string `json:"asset_type"`
	Code   string `json:"asset_code,omitempty"`
	Issuer string `json:"asset_issuer,omitempty"`
}

// Price is a fractional price.
type Price struct {
	Numerator   int32 `json:"n"`
	Denominator int32 `json:"d"`
}

// TradePrice is a fractional price with string-encoded components.
type TradePrice struct {
	Numerator   int64 `json:"n,string"`
	Denominator int64 `json:"d,string"`
}

// Link aliases the HAL link type used across all resources.
type Link = horizon.Link
