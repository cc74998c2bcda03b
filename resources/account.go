package resources

import "time"

// Account is a user account on the network.
type Account struct {
	// HAL links.
	Links AccountLinks `json:"_links"`
	// An unique identifier for this account.
	ID string `json:"id"`
	// This account's public key encoded as a base32 string.
	AccountID string `json:"account_id"`
	// This account's current sequence number.
	Sequence string `json:"sequence"`
	// The number of subentries in this account.
	SubentryCount int32 `json:"subentry_count"`
	// The inflation destination.
	InflationDestination string `json:"inflation_destination,omitempty"`
	// The domain hosting this account's stellar.toml file.
	HomeDomain string `json:"home_domain,omitempty"`
	// The id of the last ledger that included changes to this account.
	LastModifiedLedger uint32 `json:"last_modified_ledger"`
	// The time when this account was last modified.
	LastModifiedTime *time.Time `json:"last_modified_time,omitempty"`
	// Thresholds for different access levels.
	Thresholds AccountThresholds `json:"thresholds"`
	// Flags for enabling/disabling of certain asset issuer privileges.
	Flags AccountFlags `json:"flags"`
	// The assets this account holds.
	Balances []Balance `json:"balances"`
	// The signers that can be used to sign transactions for this account.
	Signers []Signer `json:"signers"`
	// Account data entries.
	Data map[string]string `json:"data"`
	// The number of reserves sponsored by this account.
	NumSponsoring int64 `json:"num_sponsoring,omitempty"`
	// The number of reserves sponsored for this account.
	NumSponsored int64 `json:"num_sponsored,omitempty"`
	// The account sponsoring this account's base reserve.
	Sponsor string `json:"sponsor,omitempty"`
	// Paging token for this account.
	PagingToken string `json:"paging_token"`
}

// AccountLinks are the HAL links on an account.
type AccountLinks struct {
	Self         Link `json:"self"`
	Transactions Link `json:"transactions"`
	Operations   Link `json:"operations"`
	Payments     Link `json:"payments"`
	Effects      Link `json:"effects"`
	Offers       Link `json:"offers"`
	Trades       Link `json:"trades"`
	Data         Link `json:"data"`
}

// AccountThresholds are the signature weights required for different
// access levels.
type AccountThresholds struct {
	LowThreshold  uint8 `json:"low_threshold"`
	MedThreshold  uint8 `json:"med_threshold"`
	HighThreshold uint8 `json:"high_threshold"`
}

// AccountFlags enable or disable certain asset issuer privileges.
type AccountFlags struct {
	AuthRequired        bool `json:"auth_required"`
	AuthRevocable       bool `json:"auth_revocable"`
	AuthImmutable       bool `json:"auth_immutable"`
	AuthClawbackEnabled bool `json:"auth_clawback_enabled"`
}

// Balance is one asset balance of an account.
type Balance struct {
	// The number of units the account holds.
	Balance string `json:"balance"`
	// The liquidity pool this balance belongs to, if any.
	LiquidityPoolID string `json:"liquidity_pool_id,omitempty"`
	// The maximum amount of the asset the account is willing to accept.
	Limit string `json:"limit,omitempty"`
	// The sum of all buy offers owned by this account for this asset.
	BuyingLiabilities string `json:"buying_liabilities,omitempty"`
	// The sum of all sell offers owned by this account for this asset.
	SellingLiabilities string `json:"selling_liabilities,omitempty"`
	// The account sponsoring this trustline.
	Sponsor string `json:"sponsor,omitempty"`
	// Ledger when the balance was last changed.
	LastModifiedLedger uint32 `json:"last_modified_ledger,omitempty"`
	// Whether the account is authorized to hold the asset.
	IsAuthorized *bool `json:"is_authorized,omitempty"`
	// Whether the account is authorized to maintain liabilities.
	IsAuthorizedToMaintainLiabilities *bool `json:"is_authorized_to_maintain_liabilities,omitempty"`
	IsClawbackEnabled                 *bool `json:"is_clawback_enabled,omitempty"`
	// The asset, flattened into the balance object on the wire.
	Type   string `json:"asset_type"`
	Code   string `json:"asset_code,omitempty"`
	Issuer string `json:"asset_issuer,omitempty"`
}

// Signer is a valid signer for an account.
type Signer struct {
	// Signer weight.
	Weight int32 `json:"weight"`
	// Signer key, depends on the signer type.
	Key string `json:"key"`
	// The signer type.
	Type string `json:"type"`
	// The account sponsoring this signer's base reserve.
	Sponsor string `json:"sponsor,omitempty"`
}

// AccountData is a single account data entry.
type AccountData struct {
	// The value, base64 encoded.
	Value string `json:"value"`
	// The account sponsoring this data entry's base reserve.
	Sponsor string `json:"sponsor,omitempty"`
}
