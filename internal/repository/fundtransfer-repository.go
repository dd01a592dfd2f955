package repository

import (
	"errors"

	"github.com/SundayYogurt/bank_service/internal/domain"
	"gorm.io/gorm"
)

type FundTransferRepository interface {
	FindAll() ([]domain.FundTransfer, error)
	FindByID(id uint) (*domain.FundTransfer, error)
	Save(ft *domain.FundTransfer) error
	Delete(id uint) error
}

type fundTransferRepository struct {
	db *gorm.DB
}

func NewFundTransferRepository(db *gorm.DB) FundTransferRepository {
	return &fundTransferRepository{db: db}
}

func (r *fundTransferRepository) FindAll() ([]domain.FundTransfer, error) {
	var transfers []domain.FundTransfer
	if err := r.db.Find(&transfers).Error; err != nil {
		return nil, err
	}
	return transfers, nil
}

func (r *fundTransferRepository) FindByID(id uint) (*domain.FundTransfer, error) {
	ft := &domain.FundTransfer{}
	if err := r.db.First(ft, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFundTransferNotFound
		}
		return nil, err
	}
	return ft, nil
}

func (r *fundTransferRepository) Save(ft *domain.FundTransfer) error {
	return r.db.Save(ft).Error
}

func (r *fundTransferRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.FundTransfer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrFundTransferNotFound
	}
	return nil
}
