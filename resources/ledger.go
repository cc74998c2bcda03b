package resources

import "time"

// Ledger stores the state of the network at a point in time.
type Ledger struct {
	// HAL links.
	Links LedgerLinks `json:"_links"`
	// An unique identifier.
	ID string `json:"id"`
	// The cursor value.
	PagingToken string `json:"paging_token"`
	// A hex-encoded SHA-256 hash of this ledger's XDR-encoded form.
	Hash string `json:"hash"`
	// The hash of the ledger preceding this one.
	PrevHash string `json:"prev_hash,omitempty"`
	// The ledger sequence number.
	Sequence int32 `json:"sequence"`
	// The number of successful transactions in this ledger.
	SuccessfulTransactionCount int32 `json:"successful_transaction_count"`
	// The number of failed transactions in this ledger.
	FailedTransactionCount *int32 `json:"failed_transaction_count,omitempty"`
	// The number of operations applied in this ledger.
	OperationCount int32 `json:"operation_count"`
	// The number of operations in the transaction set.
	TxSetOperationCount *int32 `json:"tx_set_operation_count,omitempty"`
	// When this ledger was closed.
	ClosedAt time.Time `json:"closed_at"`
	// Total number of lumens in circulation.
	TotalCoins string `json:"total_coins"`
	// The sum of all transaction fees.
	FeePool string `json:"fee_pool"`
	// The fee the network charges per operation.
	BaseFeeInStroops int32 `json:"base_fee_in_stroops"`
	// The reserve the network uses when calculating the minimum balance.
	BaseReserveInStroops int32 `json:"base_reserve_in_stroops"`
	// The maximum number of transactions validators have agreed to
	// process in a ledger.
	MaxTxSetSize int32 `json:"max_tx_set_size"`
	// The protocol version the network was running when this ledger
	// closed.
	ProtocolVersion int32 `json:"protocol_version"`
	// A base64 encoded string of the raw LedgerHeader XDR structure.
	HeaderXDR string `json:"header_xdr"`
}

// LedgerLinks are the HAL links on a ledger.
type LedgerLinks struct {
	Self         Link `json:"self"`
	Transactions Link `json:"transactions"`
	Operations   Link `json:"operations"`
	Payments     Link `json:"payments"`
	Effects      Link `json:"effects"`
}
