package resources

// Root describes the Horizon instance and the network it ingests.
type Root struct {
	Links                        RootLinks `json:"_links"`
	HorizonVersion               string    `json:"horizon_version"`
	CoreVersion                  string    `json:"core_version"`
	IngestLatestLedger           uint32    `json:"ingest_latest_ledger"`
	HistoryLatestLedger          int32     `json:"history_latest_ledger"`
	HistoryElderLedger           int32     `json:"history_elder_ledger"`
	CoreLatestLedger             int32     `json:"core_latest_ledger"`
	NetworkPassphrase            string    `json:"network_passphrase"`
	CurrentProtocolVersion       int32     `json:"current_protocol_version"`
	CoreSupportedProtocolVersion int32     `json:"core_supported_protocol_version"`
}

// RootLinks are the HAL links on the root endpoint.
type RootLinks struct {
	Account             Link  `json:"account"`
	Accounts            *Link `json:"accounts,omitempty"`
	AccountTransactions Link  `json:"account_transactions"`
	Assets              Link  `json:"assets"`
	Effects             Link  `json:"effects"`
	FeeStats            Link  `json:"fee_stats"`
	Friendbot           *Link `json:"friendbot,omitempty"`
	Ledger              Link  `json:"ledger"`
	Ledgers             Link  `json:"ledgers"`
	Offer               *Link `json:"offer,omitempty"`
	Offers              *Link `json:"offers,omitempty"`
	Operation           Link  `json:"operation"`
	Operations          Link  `json:"operations"`
	OrderBook           Link  `json:"order_book"`
	Payments            Link  `json:"payments"`
	Self                Link  `json:"self"`
	StrictReceivePaths  *Link `json:"strict_receive_paths,omitempty"`
	StrictSendPaths     *Link `json:"strict_send_paths,omitempty"`
	TradeAggregations   Link  `json:"trade_aggregations"`
	Trades              Link  `json:"trades"`
	Transaction         Link  `json:"transaction"`
	Transactions        Link  `json:"transactions"`
}
