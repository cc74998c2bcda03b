package resources

// AssetStat holds aggregate statistics for one asset known to Horizon.
// The asset identity is flattened into the object on the wire.
type AssetStat struct {
	Links AssetStatLinks `json:"_links"`
	// The asset identity.
	Type   string `json:"asset_type"`
	Code   string `json:"asset_code,omitempty"`
	Issuer string `json:"asset_issuer,omitempty"`

	PagingToken string `json:"paging_token"`
	// Units of the asset issued.
	Amount string `json:"amount"`
	// Number of accounts holding the asset.
	NumAccounts int32        `json:"num_accounts"`
	Flags       AccountFlags `json:"flags"`
}

// AssetStatLinks are the HAL links on an asset stat.
type AssetStatLinks struct {
	TOML Link `json:"toml"`
}
