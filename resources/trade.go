package resources

import "time"

// Trade is one executed trade on the distributed exchange. The base and
// counter assets are flattened on the wire with base_/counter_ prefixes.
type Trade struct {
	Links TradeLinks `json:"_links"`
	// A unique identifier for this trade.
	ID string `json:"id"`
	// A cursor value for use in pagination.
	PagingToken string `json:"paging_token"`
	// When the ledger with this trade was closed.
	LedgerCloseTime time.Time `json:"ledger_close_time"`
	// The sell offer ID.
	OfferID string `json:"offer_id,omitempty"`
	// The type of trade: "orderbook" or "liquidity_pool".
	TradeType string `json:"trade_type"`
	// The fee charged by the liquidity pool, in basis points.
	LiquidityPoolFeeBP uint32 `json:"liquidity_pool_fee_bp,omitempty"`

	BaseLiquidityPoolID string `json:"base_liquidity_pool_id,omitempty"`
	BaseOfferID         string `json:"base_offer_id,omitempty"`
	BaseAccount         string `json:"base_account,omitempty"`
	BaseAmount          string `json:"base_amount"`
	BaseAssetType       string `json:"base_asset_type"`
	BaseAssetCode       string `json:"base_asset_code,omitempty"`
	BaseAssetIssuer     string `json:"base_asset_issuer,omitempty"`

	CounterLiquidityPoolID string `json:"counter_liquidity_pool_id,omitempty"`
	CounterOfferID         string `json:"counter_offer_id,omitempty"`
	CounterAccount         string `json:"counter_account,omitempty"`
	CounterAmount          string `json:"counter_amount"`
	CounterAssetType       string `json:"counter_asset_type"`
	CounterAssetCode       string `json:"counter_asset_code,omitempty"`
	CounterAssetIssuer     string `json:"counter_asset_issuer,omitempty"`

	// Indicates which party is the seller.
	BaseIsSeller bool `json:"base_is_seller"`
	// The original offer price.
	Price *TradePrice `json:"price,omitempty"`
}

// TradeLinks are the HAL links on a trade.
type TradeLinks struct {
	Self      Link `json:"self"`
	Base      Link `json:"base"`
	Counter   Link `json:"counter"`
	Operation Link `json:"operation"`
}
