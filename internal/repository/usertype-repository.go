package repository

import (
	"errors"

	"github.com/SundayYogurt/bank_service/internal/domain"
	"gorm.io/gorm"
)

type UserTypeRepository interface {
	Create(ut *domain.UserType) error
	FindAll() ([]domain.UserType, error)
	FindByID(id uint) (*domain.UserType, error)
	Save(ut *domain.UserType) error
	Delete(id uint) error
}

type userTypeRepository struct {
	db *gorm.DB
}

func NewUserTypeRepository(db *gorm.DB) UserTypeRepository {
	return &userTypeRepository{db: db}
}

func (r *userTypeRepository) Create(ut *domain.UserType) error {
	return r.db.Create(ut).Error
}

func (r *userTypeRepository) FindAll() ([]domain.UserType, error) {
	var types []domain.UserType
	if err := r.db.Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *userTypeRepository) FindByID(id uint) (*domain.UserType, error) {
	ut := &domain.UserType{}
	if err := r.db.First(ut, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserTypeNotFound
		}
		return nil, err
	}
	return ut, nil
}

func (r *userTypeRepository) Save(ut *domain.UserType) error {
	return r.db.Save(ut).Error
}

func (r *userTypeRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.UserType{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserTypeNotFound
	}
	return nil
}
