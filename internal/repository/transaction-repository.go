package repository

import (
	"errors"

	"github.com/SundayYogurt/bank_service/internal/domain"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	FindAll() ([]domain.AccountTransactionDetails, error)
	FindByID(id uint) (*domain.AccountTransactionDetails, error)
	Save(txd *domain.AccountTransactionDetails) error
	Delete(id uint) error
	// Recent returns the newest postings for one account, newest first.
	Recent(bankAccountID uint, limit int) ([]domain.AccountTransactionDetails, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) FindAll() ([]domain.AccountTransactionDetails, error) {
	var txs []domain.AccountTransactionDetails
	if err := r.db.Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *transactionRepository) FindByID(id uint) (*domain.AccountTransactionDetails, error) {
	txd := &domain.AccountTransactionDetails{}
	if err := r.db.First(txd, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return txd, nil
}

func (r *transactionRepository) Save(txd *domain.AccountTransactionDetails) error {
	return r.db.Save(txd).Error
}

func (r *transactionRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.AccountTransactionDetails{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) Recent(bankAccountID uint, limit int) ([]domain.AccountTransactionDetails, error) {
	var txs []domain.AccountTransactionDetails
	err := r.db.Where("bank_account_id = ?", bankAccountID).
		Order("id DESC").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}
