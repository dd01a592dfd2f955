package repository

import (
	"errors"
	"log"

	"github.com/SundayYogurt/bank_service/internal/domain"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	FindUsers() ([]domain.User, error)
	FindUserByID(userID uint) (*domain.User, error)
	FindUserByEmail(email string) (*domain.User, error)
	EmailExists(email string) (bool, error)
	MobileNumberExists(mobile string) (bool, error)
	SaveUser(user *domain.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("nil user")
	}

	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateEmail
		}
		log.Printf("create user error: %v", err)
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindUsers() ([]domain.User, error) {
	var users []domain.User
	if err := r.db.Where("is_deleted = ?", false).Find(&users).Error; err != nil {
		log.Printf("find users error: %v", err)
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindUserByID(userID uint) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.Where("is_deleted = ?", false).First(user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		log.Printf("find user by id error: %v", err)
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.Where("is_deleted = ?", false).First(user, "email_id = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		log.Printf("find user by email error: %v", err)
		return nil, err
	}

	return user, nil
}

func (r *userRepository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.User{}).Where("email_id = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) MobileNumberExists(mobile string) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.User{}).Where("mobile_number = ?", mobile).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) SaveUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	if err := r.db.Save(user).Error; err != nil {
		log.Printf("save user error: %v", err)
		return err
	}
	return nil
}
