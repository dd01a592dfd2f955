package domain

import "time"

// TokenBlockList journals revoked token ids. Entries older than the
// token TTL are pruned by a background job.
type TokenBlockList struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Jti       string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"jti"`
	CreatedAt time.Time `json:"created_at"`
}
