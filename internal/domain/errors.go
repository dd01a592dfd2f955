package domain

import "errors"

var (
	ErrUserNotFound            = errors.New("user does not exist")
	ErrUserTypeNotFound        = errors.New("user type does not exist")
	ErrAccountNotFound         = errors.New("bank account does not exist")
	ErrAccountTypeNotFound     = errors.New("account type does not exist")
	ErrBranchNotFound          = errors.New("branch details does not exist")
	ErrTransactionNotFound     = errors.New("account transaction details does not exist")
	ErrTransactionTypeNotFound = errors.New("transaction type does not exist")
	ErrFundTransferNotFound    = errors.New("fund transfer does not exist")

	ErrDuplicateEmail  = errors.New("duplicate email id")
	ErrDuplicateMobile = errors.New("duplicate mobile number")

	ErrMinimumBalance      = errors.New("minimum balance required while creating account")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrSameAccountTransfer = errors.New("from and to account must differ")
	ErrInvalidBranchCode   = errors.New("branch id must fit in 3 digits")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenRevoked       = errors.New("token has been revoked")
)
