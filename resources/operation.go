package resources

import "time"

// Operation is one command executed as part of a transaction. Like
// Effect, the wire format is a tagged union over the type field; the
// common base fields are flattened with the variant-specific ones.
type Operation struct {
	Links       OperationLinks `json:"_links"`
	ID          string         `json:"id"`
	PagingToken string         `json:"paging_token"`
	// Indicates if the enclosing transaction was successful.
	TransactionSuccessful bool      `json:"transaction_successful"`
	SourceAccount         string    `json:"source_account"`
	SourceAccountMuxed    string    `json:"source_account_muxed,omitempty"`
	SourceAccountMuxedID  string    `json:"source_account_muxed_id,omitempty"`
	Type                  string    `json:"type"`
	TypeI                 int32     `json:"type_i"`
	CreatedAt             time.Time `json:"created_at"`
	TransactionHash       string    `json:"transaction_hash"`
	// The enclosing transaction, present when requested via join.
	Transaction *Transaction `json:"transaction,omitempty"`
	Sponsor     string       `json:"sponsor,omitempty"`

	// create_account
	StartingBalance string `json:"starting_balance,omitempty"`
	Funder          string `json:"funder,omitempty"`
	Account         string `json:"account,omitempty"`

	// payment and path payments
	AssetType   string `json:"asset_type,omitempty"`
	AssetCode   string `json:"asset_code,omitempty"`
	AssetIssuer string `json:"asset_issuer,omitempty"`
	From        string `json:"from,omitempty"`
	FromMuxed   string `json:"from_muxed,omitempty"`
	To          string `json:"to,omitempty"`
	ToMuxed     string `json:"to_muxed,omitempty"`
	Amount      string `json:"amount,omitempty"`

	SourceAssetType   string  `json:"source_asset_type,omitempty"`
	SourceAssetCode   string  `json:"source_asset_code,omitempty"`
	SourceAssetIssuer string  `json:"source_asset_issuer,omitempty"`
	SourceAmount      string  `json:"source_amount,omitempty"`
	SourceMax         string  `json:"source_max,omitempty"`
	DestinationMin    string  `json:"destination_min,omitempty"`
	Path              []Asset `json:"path,omitempty"`

	// offers
	OfferID            string `json:"offer_id,omitempty"`
	Price              string `json:"price,omitempty"`
	PriceR             *Price `json:"price_r,omitempty"`
	BuyingAssetType    string `json:"buying_asset_type,omitempty"`
	BuyingAssetCode    string `json:"buying_asset_code,omitempty"`
	BuyingAssetIssuer  string `json:"buying_asset_issuer,omitempty"`
	SellingAssetType   string `json:"selling_asset_type,omitempty"`
	SellingAssetCode   string `json:"selling_asset_code,omitempty"`
	SellingAssetIssuer string `json:"selling_asset_issuer,omitempty"`

	// set_options
	HomeDomain      string   `json:"home_domain,omitempty"`
	SignerKey       string   `json:"signer_key,omitempty"`
	SignerWeight    *uint8   `json:"signer_weight,omitempty"`
	MasterKeyWeight *uint8   `json:"master_key_weight,omitempty"`
	LowThreshold    *uint8   `json:"low_threshold,omitempty"`
	MedThreshold    *uint8   `json:"med_threshold,omitempty"`
	HighThreshold   *uint8   `json:"high_threshold,omitempty"`
	SetFlags        []int32  `json:"set_flags,omitempty"`
	SetFlagsS       []string `json:"set_flags_s,omitempty"`
	ClearFlags      []int32  `json:"clear_flags,omitempty"`
	ClearFlagsS     []string `json:"clear_flags_s,omitempty"`

	// change_trust, allow_trust
	Trustor   string `json:"trustor,omitempty"`
	Trustee   string `json:"trustee,omitempty"`
	Limit     string `json:"limit,omitempty"`
	Authorize *bool  `json:"authorize,omitempty"`

	// account_merge
	Into string `json:"into,omitempty"`

	// manage_data
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`

	// bump_sequence
	BumpTo string `json:"bump_to,omitempty"`
}

// OperationLinks are the HAL links on an operation.
type OperationLinks struct {
	Self        Link `json:"self"`
	Transaction Link `json:"transaction"`
	Effects     Link `json:"effects"`
	Succeeds    Link `json:"succeeds"`
	Precedes    Link `json:"precedes"`
}
