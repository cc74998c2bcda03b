package resources

import "time"

// Transaction is a command that modified the ledger state; it consists
// of one or more operations.
type Transaction struct {
	// HAL links.
	Links TransactionLinks `json:"_links"`
	// An unique identifier for this transaction.
	ID string `json:"id"`
	// A cursor value for use in pagination.
	PagingToken string `json:"paging_token"`
	// Indicates if this transaction was successful or not.
	Successful bool `json:"successful"`
	// A hex-encoded SHA-256 hash of this transaction's XDR-encoded form.
	Hash string `json:"hash"`
	// The sequence number of the ledger this transaction was included in.
	Ledger int32 `json:"ledger"`
	// The date this transaction was created.
	CreatedAt time.Time `json:"created_at"`
	// The account that originates the transaction.
	SourceAccount string `json:"source_account"`
	// The muxed account that was the source account, if any.
	AccountMuxed string `json:"account_muxed,omitempty"`
	// The ID of the muxed account that was the source account.
	AccountMuxedID string `json:"account_muxed_id,omitempty"`
	// The source account's sequence number this transaction consumed.
	SourceAccountSequence string `json:"source_account_sequence"`
	// The account that paid the transaction fee.
	FeeAccount string `json:"fee_account"`
	// The muxed account that paid the transaction fee, if any.
	FeeAccountMuxed string `json:"fee_account_muxed,omitempty"`
	// The ID of the muxed account that paid the transaction fee.
	FeeAccountMuxedID string `json:"fee_account_muxed_id,omitempty"`
	// The fee (in stroops) paid by the source account.
	FeeCharged int64 `json:"fee_charged,string"`
	// The maximum fee (in stroops) the source account was willing to pay.
	MaxFee int64 `json:"max_fee,string"`
	// The number of operations contained within this transaction.
	OperationCount int32 `json:"operation_count"`
	// A base64 encoded string of the raw TransactionEnvelope XDR struct.
	EnvelopeXDR string `json:"envelope_xdr"`
	// A base64 encoded string of the raw TransactionResult XDR struct.
	ResultXDR string `json:"result_xdr"`
	// A base64 encoded string of the raw TransactionMeta XDR struct.
	ResultMetaXDR string `json:"result_meta_xdr,omitempty"`
	// A base64 encoded string of the raw LedgerEntryChanges XDR struct
	// produced by taking fees for this transaction.
	FeeMetaXDR string `json:"fee_meta_xdr"`
	// The type of memo: MEMO_TEXT, MEMO_ID, MEMO_HASH or MEMO_RETURN.
	MemoType string `json:"memo_type"`
	// The optional memo, in base64 encoded bytes.
	MemoBytes string `json:"memo_bytes,omitempty"`
	// The optional memo attached to the transaction.
	Memo string `json:"memo,omitempty"`
	// The signatures used to sign this transaction.
	Signatures []string `json:"signatures"`
	// The date after which the transaction is valid.
	ValidAfter string `json:"valid_after,omitempty"`
	// The date before which the transaction is valid.
	ValidBefore string `json:"valid_before,omitempty"`
	// The fee bump transaction, if any.
	FeeBumpTransaction *FeeBumpTransaction `json:"fee_bump_transaction,omitempty"`
	// The fee bump inner transaction, if any.
	InnerTransaction *InnerTransaction `json:"inner_transaction,omitempty"`
}

// FeeBumpTransaction is the fee bump wrapper of a transaction.
type FeeBumpTransaction struct {
	Hash       string   `json:"hash"`
	Signatures []string `json:"signatures"`
}

// InnerTransaction is the transaction wrapped by a fee bump.
type InnerTransaction struct {
	Hash       string   `json:"hash"`
	Signatures []string `json:"signatures"`
	MaxFee     int64    `json:"max_fee,string"`
}

// TransactionResultCodes are the result codes of a failed transaction.
type TransactionResultCodes struct {
	Transaction string   `json:"transaction"`
	Operations  []string `json:"operations"`
}

// TransactionLinks are the HAL links on a transaction.
type TransactionLinks struct {
	Self        Link `json:"self"`
	Account     Link `json:"account"`
	Ledger      Link `json:"ledger"`
	Operations  Link `json:"operations"`
	Effects     Link `json:"effects"`
	Precedes    Link `json:"precedes"`
	Succeeds    Link `json:"succeeds"`
	Transaction Link `json:"transaction"`
}
