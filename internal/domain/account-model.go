package domain

import "gorm.io/gorm"

// MinimumBalance is the reserve, in minor units, that a debit may not
// breach and that every account must exceed at creation.
const MinimumBalance int64 = 1000

type BankAccount struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	AccountNumber  string `gorm:"type:varchar(8);uniqueIndex;not null" json:"account_number"`
	IsActive       bool   `gorm:"not null;default:true" json:"is_active"`
	IsDeleted      bool   `gorm:"not null;default:false" json:"is_deleted"`
	AccountBalance int64  `gorm:"not null" json:"account_balance"`
	UserID         uint   `gorm:"index;not null" json:"user_id"`
	BranchID       uint   `gorm:"index;not null" json:"branch_id"`
	AccountTypeID  uint   `gorm:"index;not null" json:"account_type_id"`
	gorm.Model
}

// AccountType is a lookup table, e.g. Saving | Current.
type AccountType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	AccountType string `gorm:"type:varchar(250);not null" json:"account_type"`
}

type BranchDetails struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	BranchAddress string `gorm:"type:varchar(250);not null" json:"branch_address"`
}
