package repository

import (
	"errors"

	"github.com/SundayYogurt/bank_service/internal/domain"
	"gorm.io/gorm"
)

type TransactionTypeRepository interface {
	Create(tt *domain.TransactionType) error
	FindAll() ([]domain.TransactionType, error)
	FindByID(id uint) (*domain.TransactionType, error)
	Save(tt *domain.TransactionType) error
	Delete(id uint) error
}

type transactionTypeRepository struct {
	db *gorm.DB
}

func NewTransactionTypeRepository(db *gorm.DB) TransactionTypeRepository {
	return &transactionTypeRepository{db: db}
}

func (r *transactionTypeRepository) Create(tt *domain.TransactionType) error {
	return r.db.Create(tt).Error
}

func (r *transactionTypeRepository) FindAll() ([]domain.TransactionType, error) {
	var types []domain.TransactionType
	if err := r.db.Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *transactionTypeRepository) FindByID(id uint) (*domain.TransactionType, error) {
	tt := &domain.TransactionType{}
	if err := r.db.First(tt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionTypeNotFound
		}
		return nil, err
	}
	return tt, nil
}

func (r *transactionTypeRepository) Save(tt *domain.TransactionType) error {
	return r.db.Save(tt).Error
}

func (r *transactionTypeRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.TransactionType{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTransactionTypeNotFound
	}
	return nil
}
