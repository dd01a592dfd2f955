package dto

const (
	EventTransactionPosted = "transaction.posted"
	EventFundsTransferred  = "funds.transferred"
)

// TransactionEvent is published to Kafka after a ledger operation
// commits. Declined operations are published too, with status failed.
type TransactionEvent struct {
	Event             string `json:"event"`
	FromAccount       string `json:"from_account"`
	ToAccount         string `json:"to_account,omitempty"`
	TransactionAmount int64  `json:"transaction_amount"`
	TransactionStatus string `json:"transaction_status"`
	FundTransferID    uint   `json:"fund_transfer_id"`
}
