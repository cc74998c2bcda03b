package resources

import "time"

// Offer is an open offer on the distributed exchange.
type Offer struct {
	Links OfferLinks `json:"_links"`
	// The offer id, string-encoded on the wire.
	ID          int64  `json:"id,string"`
	PagingToken string `json:"paging_token"`
	Seller      string `json:"seller"`
	Selling     Asset  `json:"selling"`
	Buying      Asset  `json:"buying"`
	Amount      string `json:"amount"`
	// The precise price as a fraction.
	PriceRatio         Price      `json:"price_r"`
	Price              string     `json:"price"`
	LastModifiedLedger int32      `json:"last_modified_ledger"`
	LastModifiedTime   *time.Time `json:"last_modified_time,omitempty"`
	Sponsor            string     `json:"sponsor,omitempty"`
}

// OfferLinks are the HAL links on an offer.
type OfferLinks struct {
	Self       Link `json:"self"`
	OfferMaker Link `json:"offer_maker"`
}
