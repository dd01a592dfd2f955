package repository

import (
	"errors"

	"github.com/SundayYogurt/bank_service/internal/domain"
	"gorm.io/gorm"
)

type BranchRepository interface {
	Create(b *domain.BranchDetails) error
	FindAll() ([]domain.BranchDetails, error)
	FindByID(id uint) (*domain.BranchDetails, error)
	Save(b *domain.BranchDetails) error
	Delete(id uint) error
}

type branchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Create(b *domain.BranchDetails) error {
	return r.db.Create(b).Error
}

func (r *branchRepository) FindAll() ([]domain.BranchDetails, error) {
	var branches []domain.BranchDetails
	if err := r.db.Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}

func (r *branchRepository) FindByID(id uint) (*domain.BranchDetails, error) {
	b := &domain.BranchDetails{}
	if err := r.db.First(b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBranchNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *branchRepository) Save(b *domain.BranchDetails) error {
	return r.db.Save(b).Error
}

func (r *branchRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.BranchDetails{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrBranchNotFound
	}
	return nil
}
