package resources

import "time"

// Effect is one side effect of an operation. The wire format is a tagged
// union over the type field; Effect flattens the common fields with the
// variant-specific ones, which are populated only when present.
type Effect struct {
	Links       EffectLinks `json:"_links"`
	ID          string      `json:"id"`
	PagingToken string      `json:"paging_token"`
	// The account the effect applies to.
	Account      string    `json:"account"`
	AccountMuxed string    `json:"account_muxed,omitempty"`
	Type         string    `json:"type"`
	TypeI        int32     `json:"type_i"`
	CreatedAt    time.Time `json:"created_at"`

	// account_created
	StartingBalance string `json:"starting_balance,omitempty"`

	// account_credited, account_debited, trustline effects
	Amount      string `json:"amount,omitempty"`
	AssetType   string `json:"asset_type,omitempty"`
	AssetCode   string `json:"asset_code,omitempty"`
	AssetIssuer string `json:"asset_issuer,omitempty"`
	Limit       string `json:"limit,omitempty"`

	// account_thresholds_updated
	LowThreshold  *uint8 `json:"low_threshold,omitempty"`
	MedThreshold  *uint8 `json:"med_threshold,omitempty"`
	HighThreshold *uint8 `json:"high_threshold,omitempty"`

	// account_home_domain_updated
	HomeDomain string `json:"home_domain,omitempty"`

	// signer effects
	Weight    *int32 `json:"weight,omitempty"`
	PublicKey string `json:"public_key,omitempty"`

	// trade
	Seller string `json:"seller,omitempty"`
	// The counter offer id, string-encoded on the wire.
	OfferID           string `json:"offer_id,omitempty"`
	SoldAmount        string `json:"sold_amount,omitempty"`
	SoldAssetType     string `json:"sold_asset_type,omitempty"`
	SoldAssetCode     string `json:"sold_asset_code,omitempty"`
	SoldAssetIssuer   string `json:"sold_asset_issuer,omitempty"`
	BoughtAmount      string `json:"bought_amount,omitempty"`
	BoughtAssetType   string `json:"bought_asset_type,omitempty"`
	BoughtAssetCode   string `json:"bought_asset_code,omitempty"`
	BoughtAssetIssuer string `json:"bought_asset_issuer,omitempty"`

	// data effects
	DataName  string `json:"name,omitempty"`
	DataValue string `json:"value,omitempty"`

	// sequence_bumped
	NewSequence string `json:"new_seq,omitempty"`
}

// EffectLinks are the HAL links on an effect.
type EffectLinks struct {
	Operation Link `json:"operation"`
	Succeeds  Link `json:"succeeds"`
	Precedes  Link `json:"precedes"`
}
