package domain

import "gorm.io/gorm"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FirstName    string `gorm:"type:varchar(250);not null" json:"first_name"`
	LastName     string `gorm:"type:varchar(250);not null" json:"last_name"`
	Address      string `gorm:"type:varchar(250);not null" json:"address"`
	MobileNumber string `gorm:"type:varchar(10);uniqueIndex;not null" json:"mobile_number"`
	EmailID      string `gorm:"type:varchar(250);uniqueIndex;not null" json:"email_id"`
	Password     string `gorm:"not null" json:"-"`
	IsDeleted    bool   `gorm:"not null;default:false" json:"is_deleted"`
	UserTypeID   uint   `gorm:"index;not null" json:"user_type_id"`
	gorm.Model
}

// UserType is a lookup table, e.g. customer | admin | other.
type UserType struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserType string `gorm:"type:varchar(250);not null" json:"user_type"`
}
