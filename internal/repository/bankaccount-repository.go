package repository

import (
	"errors"
	"log"

	"github.com/SundayYogurt/bank_service/internal/domain"
	"gorm.io/gorm"
)

type BankAccountRepository interface {
	Create(account *domain.BankAccount) error
	FindAll() ([]domain.BankAccount, error)
	FindByID(id uint) (*domain.BankAccount, error)
	// UpdateFields writes only the given columns. account_balance is
	// owned by the ledger and must never travel through here.
	UpdateFields(id uint, fields map[string]interface{}) error
}

type bankAccountRepository struct {
	db *gorm.DB
}

func NewBankAccountRepository(db *gorm.DB) BankAccountRepository {
	return &bankAccountRepository{db: db}
}

func (b *bankAccountRepository) Create(account *domain.BankAccount) error {
	// gorm.ErrDuplicatedKey surfaces account number collisions; the
	// service retries with a fresh number.
	return b.db.Create(account).Error
}

func (b *bankAccountRepository) FindAll() ([]domain.BankAccount, error) {
	var accounts []domain.BankAccount
	if err := b.db.Where("is_deleted = ?", false).Find(&accounts).Error; err != nil {
		log.Printf("find bank accounts error: %v", err)
		return nil, err
	}
	return accounts, nil
}

func (b *bankAccountRepository) FindByID(id uint) (*domain.BankAccount, error) {
	account := &domain.BankAccount{}
	if err := b.db.Where("is_deleted = ?", false).First(account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		log.Printf("find bank account by id error: %v", err)
		return nil, err
	}
	return account, nil
}

func (b *bankAccountRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	res := b.db.Model(&domain.BankAccount{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(fields)
	if res.Error != nil {
		log.Printf("update bank account error: %v", res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
