package domain

import "time"

const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"

	TransactionStatusSuccess = "success"
	TransactionStatusFailed  = "failed"
)

// TransactionType is a lookup table; credit and debit are resolved by
// name, case-insensitively.
type TransactionType struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	TransactionType string `gorm:"type:varchar(50);not null" json:"transaction_type"`
}

// FundTransfer records one transfer event. ToAccount is nil for
// single-account deposits and withdrawals.
type FundTransfer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FromAccount string    `gorm:"type:varchar(8);not null" json:"from_account"`
	ToAccount   *string   `gorm:"type:varchar(8)" json:"to_account"`
	CreatedAt   time.Time `json:"created_at"`
}

// AccountTransactionDetails is one ledger posting against an account.
type AccountTransactionDetails struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	TransactionAmount int64     `gorm:"not null" json:"transaction_amount"`
	TransactionStatus string    `gorm:"type:varchar(50);not null" json:"transaction_status"`
	BankAccountID     uint      `gorm:"index;not null" json:"bank_account_id"`
	TransactionTypeID uint      `gorm:"index;not null" json:"transaction_type_id"`
	FundTransferID    uint      `gorm:"index;not null" json:"fund_transfer_id"`
	FundTransferInfo  string    `gorm:"type:varchar(250)" json:"fund_transfer_info"`
	CreatedAt         time.Time `json:"transaction_date"`
}
