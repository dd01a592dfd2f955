package dto

import "github.com/SundayYogurt/bank_service/internal/domain"

type PostTransactionRequest struct {
	TransactionAmount int64  `json:"transaction_amount" validate:"required,gt=0"`
	BankAccountID     uint   `json:"bank_account_id" validate:"required,min=1"`
	TransactionTypeID uint   `json:"transaction_type_id" validate:"required,min=1"`
	FundTransferInfo  string `json:"fund_transfer_info" validate:"max=250"`
}

type UpdateTransactionRequest struct {
	TransactionAmount *int64  `json:"transaction_amount" validate:"omitempty,gt=0"`
	BankAccountID     *uint   `json:"bank_account_id" validate:"omitempty,min=1"`
	TransactionTypeID *uint   `json:"transaction_type_id" validate:"omitempty,min=1"`
	FundTransferInfo  *string `json:"fund_transfer_info" validate:"omitempty,max=250"`
}

type FundTransferRequest struct {
	FromAccount       string `json:"from_account" validate:"required,len=8"`
	ToAccount         string `json:"to_account" validate:"required,len=8,nefield=FromAccount"`
	TransactionAmount int64  `json:"transaction_amount" validate:"required,gt=0"`
}

type UpdateFundTransferRequest struct {
	FromAccount *string `json:"from_account" validate:"omitempty,len=8"`
	ToAccount   *string `json:"to_account" validate:"omitempty,len=8"`
}

type TransactionTypeRequest struct {
	TransactionType string `json:"transaction_type" validate:"required,min=3,max=250"`
}

type UpdateTransactionTypeRequest struct {
	TransactionType *string `json:"transaction_type" validate:"omitempty,min=3,max=250"`
}

// FundTransferResult is the response payload of a two-account
// transfer: the transfer row plus its two ledger postings.
type FundTransferResult struct {
	FundTransfer      domain.FundTransfer                `json:"fund_transfer"`
	Transactions      []domain.AccountTransactionDetails `json:"account_transaction_details"`
	TransactionStatus string                             `json:"transaction_status"`
}
