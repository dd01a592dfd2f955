package repository

import (
	"errors"

	"github.com/SundayYogurt/bank_service/internal/domain"
	"gorm.io/gorm"
)

type AccountTypeRepository interface {
	Create(at *domain.AccountType) error
	FindAll() ([]domain.AccountType, error)
	FindByID(id uint) (*domain.AccountType, error)
	Save(at *domain.AccountType) error
}

type accountTypeRepository struct {
	db *gorm.DB
}

func NewAccountTypeRepository(db *gorm.DB) AccountTypeRepository {
	return &accountTypeRepository{db: db}
}

func (r *accountTypeRepository) Create(at *domain.AccountType) error {
	return r.db.Create(at).Error
}

func (r *accountTypeRepository) FindAll() ([]domain.AccountType, error) {
	var types []domain.AccountType
	if err := r.db.Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *accountTypeRepository) FindByID(id uint) (*domain.AccountType, error) {
	at := &domain.AccountType{}
	if err := r.db.First(at, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountTypeNotFound
		}
		return nil, err
	}
	return at, nil
}

func (r *accountTypeRepository) Save(at *domain.AccountType) error {
	return r.db.Save(at).Error
}
