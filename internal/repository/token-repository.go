package repository

import (
	"errors"
	"time"

	"github.com/SundayYogurt/bank_service/internal/domain"
	"gorm.io/gorm"
)

type TokenRepository interface {
	Add(jti string) error
	IsBlocked(jti string) (bool, error)
	// DeleteOlderThan drops entries created before the cutoff and
	// reports how many were removed.
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Add(jti string) error {
	err := r.db.Create(&domain.TokenBlockList{Jti: jti}).Error
	// logging out twice with the same token is not an error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *tokenRepository) IsBlocked(jti string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.TokenBlockList{}).Where("jti = ?", jti).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *tokenRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&domain.TokenBlockList{})
	return res.RowsAffected, res.Error
}
