package dto

type CreateBankAccountRequest struct {
	AccountBalance int64 `json:"account_balance" validate:"required,gt=0"`
	UserID         uint  `json:"user_id" validate:"required,min=1"`
	BranchID       uint  `json:"branch_id" validate:"required,min=1,max=999"`
	AccountTypeID  uint  `json:"account_type_id" validate:"required,min=1"`
}

type UpdateBankAccountRequest struct {
	UserID        *uint `json:"user_id" validate:"omitempty,min=1"`
	BranchID      *uint `json:"branch_id" validate:"omitempty,min=1,max=999"`
	AccountTypeID *uint `json:"account_type_id" validate:"omitempty,min=1"`
	IsActive      *bool `json:"is_active"`
}

type AccountTypeRequest struct {
	AccountType string `json:"account_type" validate:"required,min=3,max=250"`
}

type UpdateAccountTypeRequest struct {
	AccountType *string `json:"account_type" validate:"omitempty,min=3,max=250"`
}

type BranchDetailsRequest struct {
	BranchAddress string `json:"branch_address" validate:"required,min=3,max=250"`
}

type UpdateBranchDetailsRequest struct {
	BranchAddress *string `json:"branch_address" validate:"omitempty,min=3,max=250"`
}
