package services

import (
	"strings"

	"github.com/SundayYogurt/bank_service/internal/domain"
	"github.com/SundayYogurt/bank_service/internal/dto"
	"github.com/SundayYogurt/bank_service/internal/helper"
	"github.com/SundayYogurt/bank_service/internal/repository"
)

type UserService interface {
	// Auth
	Login(email, password string) (string, error)
	Logout(jti string) error

	// Users
	Register(input dto.CreateUserRequest) (*domain.User, error)
	ListUsers() ([]domain.User, error)
	GetUser(userID uint) (*domain.User, error)
	UpdateUser(userID uint, input dto.UpdateUserRequest) (*domain.User, error)
	DeleteUser(userID uint) error

	// User types
	CreateUserType(input dto.UserTypeRequest) (*domain.UserType, error)
	ListUserTypes() ([]domain.UserType, error)
	GetUserType(id uint) (*domain.UserType, error)
	UpdateUserType(id uint, input dto.UpdateUserTypeRequest) (*domain.UserType, error)
	DeleteUserType(id uint) error
}

type userService struct {
	repo     repository.UserRepository
	typeRepo repository.UserTypeRepository
	tokens   repository.TokenRepository
	auth     helper.Auth
}

func NewUserService(
	repo repository.UserRepository,
	typeRepo repository.UserTypeRepository,
	tokens repository.TokenRepository,
	auth helper.Auth,
) UserService {
	return &userService{
		repo:     repo,
		typeRepo: typeRepo,
		tokens:   tokens,
		auth:     auth,
	}
}

func (u *userService) Login(email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := u.repo.FindUserByEmail(email)
	if err != nil {
		// do not leak whether the email exists
		return "", domain.ErrInvalidCredentials
	}

	if err := u.auth.VerifyPassword(password, user.Password); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	return u.auth.GenerateToken(user.ID, user.EmailID)
}

func (u *userService) Logout(jti string) error {
	return u.tokens.Add(jti)
}

func (u *userService) Register(input dto.CreateUserRequest) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(input.EmailID))
	mobile := strings.TrimSpace(input.MobileNumber)

	if _, err := u.typeRepo.FindByID(input.UserTypeID); err != nil {
		return nil, err
	}

	exists, err := u.repo.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}

	exists, err = u.repo.MobileNumberExists(mobile)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateMobile
	}

	hashed, err := u.auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Address:      strings.TrimSpace(input.Address),
		MobileNumber: mobile,
		EmailID:      email,
		Password:     hashed,
		UserTypeID:   input.UserTypeID,
	}

	return u.repo.CreateUser(user)
}

func (u *userService) ListUsers() ([]domain.User, error) {
	return u.repo.FindUsers()
}

func (u *userService) GetUser(userID uint) (*domain.User, error) {
	return u.repo.FindUserByID(userID)
}

func (u *userService) UpdateUser(userID uint, input dto.UpdateUserRequest) (*domain.User, error) {
	user, err := u.repo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	if input.EmailID != nil {
		email := strings.TrimSpace(strings.ToLower(*input.EmailID))
		if email != user.EmailID {
			exists, err := u.repo.EmailExists(email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, domain.ErrDuplicateEmail
			}
			user.EmailID = email
		}
	}
	if input.MobileNumber != nil {
		mobile := strings.TrimSpace(*input.MobileNumber)
		if mobile != user.MobileNumber {
			exists, err := u.repo.MobileNumberExists(mobile)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, domain.ErrDuplicateMobile
			}
			user.MobileNumber = mobile
		}
	}
	if input.UserTypeID != nil {
		if _, err := u.typeRepo.FindByID(*input.UserTypeID); err != nil {
			return nil, err
		}
		user.UserTypeID = *input.UserTypeID
	}
	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Address != nil {
		user.Address = strings.TrimSpace(*input.Address)
	}

	if err := u.repo.SaveUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userService) DeleteUser(userID uint) error {
	user, err := u.repo.FindUserByID(userID)
	if err != nil {
		return err
	}
	user.IsDeleted = true
	return u.repo.SaveUser(user)
}

func (u *userService) CreateUserType(input dto.UserTypeRequest) (*domain.UserType, error) {
	ut := &domain.UserType{UserType: strings.TrimSpace(input.UserType)}
	if err := u.typeRepo.Create(ut); err != nil {
		return nil, err
	}
	return ut, nil
}

func (u *userService) ListUserTypes() ([]domain.UserType, error) {
	return u.typeRepo.FindAll()
}

func (u *userService) GetUserType(id uint) (*domain.UserType, error) {
	return u.typeRepo.FindByID(id)
}

func (u *userService) UpdateUserType(id uint, input dto.UpdateUserTypeRequest) (*domain.UserType, error) {
	ut, err := u.typeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if input.UserType != nil {
		ut.UserType = strings.TrimSpace(*input.UserType)
	}
	if err := u.typeRepo.Save(ut); err != nil {
		return nil, err
	}
	return ut, nil
}

func (u *userService) DeleteUserType(id uint) error {
	return u.typeRepo.Delete(id)
}
