package services

import (
	"errors"
	"strings"

	"github.com/SundayYogurt/bank_service/internal/domain"
	"github.com/SundayYogurt/bank_service/internal/dto"
	"github.com/SundayYogurt/bank_service/internal/helper/utils"
	"github.com/SundayYogurt/bank_service/internal/repository"
	"gorm.io/gorm"
)

// account number collisions are rare (1 in 90000 per branch); retry a
// few times before giving up.
const accountNumberRetries = 5

// maxBranchCode is the largest branch id that still zero-pads to 3
// digits; anything larger would overflow the varchar(8) account number.
const maxBranchCode = 999

type AccountService interface {
	// Bank accounts
	CreateBankAccount(input dto.CreateBankAccountRequest) (*domain.BankAccount, error)
	ListBankAccounts() ([]domain.BankAccount, error)
	GetBankAccount(id uint) (*domain.BankAccount, error)
	UpdateBankAccount(id uint, input dto.UpdateBankAccountRequest) (*domain.BankAccount, error)
	DeleteBankAccount(id uint) error

	// Account types
	CreateAccountType(input dto.AccountTypeRequest) (*domain.AccountType, error)
	ListAccountTypes() ([]domain.AccountType, error)
	GetAccountType(id uint) (*domain.AccountType, error)
	UpdateAccountType(id uint, input dto.UpdateAccountTypeRequest) (*domain.AccountType, error)

	// Branches
	CreateBranch(input dto.BranchDetailsRequest) (*domain.BranchDetails, error)
	ListBranches() ([]domain.BranchDetails, error)
	GetBranch(id uint) (*domain.BranchDetails, error)
	UpdateBranch(id uint, input dto.UpdateBranchDetailsRequest) (*domain.BranchDetails, error)
	DeleteBranch(id uint) error
}

type accountService struct {
	repo       repository.BankAccountRepository
	userRepo   repository.UserRepository
	typeRepo   repository.AccountTypeRepository
	branchRepo repository.BranchRepository
}

func NewAccountService(
	repo repository.BankAccountRepository,
	userRepo repository.UserRepository,
	typeRepo repository.AccountTypeRepository,
	branchRepo repository.BranchRepository,
) AccountService {
	return &accountService{
		repo:       repo,
		userRepo:   userRepo,
		typeRepo:   typeRepo,
		branchRepo: branchRepo,
	}
}

func (s *accountService) CreateBankAccount(input dto.CreateBankAccountRequest) (*domain.BankAccount, error) {
	if input.AccountBalance <= domain.MinimumBalance {
		return nil, domain.ErrMinimumBalance
	}
	// the branch occupies the first 3 digits of the 8 digit number
	if input.BranchID > maxBranchCode {
		return nil, domain.ErrInvalidBranchCode
	}

	if _, err := s.userRepo.FindUserByID(input.UserID); err != nil {
		return nil, err
	}
	if _, err := s.branchRepo.FindByID(input.BranchID); err != nil {
		return nil, err
	}
	if _, err := s.typeRepo.FindByID(input.AccountTypeID); err != nil {
		return nil, err
	}

	account := &domain.BankAccount{
		IsActive:       true,
		AccountBalance: input.AccountBalance,
		UserID:         input.UserID,
		BranchID:       input.BranchID,
		AccountTypeID:  input.AccountTypeID,
	}

	var err error
	for i := 0; i < accountNumberRetries; i++ {
		account.AccountNumber = utils.GenerateAccountNumber(input.BranchID)
		err = s.repo.Create(account)
		if err == nil {
			return account, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, err
}

func (s *accountService) ListBankAccounts() ([]domain.BankAccount, error) {
	return s.repo.FindAll()
}

func (s *accountService) GetBankAccount(id uint) (*domain.BankAccount, error) {
	return s.repo.FindByID(id)
}

// UpdateBankAccount writes only the requested columns; the balance is
// owned by the ledger and a full-row save here could revert a transfer
// committed between the read and the write.
func (s *accountService) UpdateBankAccount(id uint, input dto.UpdateBankAccountRequest) (*domain.BankAccount, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.UserID != nil {
		if _, err := s.userRepo.FindUserByID(*input.UserID); err != nil {
			return nil, err
		}
		fields["user_id"] = *input.UserID
	}
	if input.BranchID != nil {
		if _, err := s.branchRepo.FindByID(*input.BranchID); err != nil {
			return nil, err
		}
		fields["branch_id"] = *input.BranchID
	}
	if input.AccountTypeID != nil {
		if _, err := s.typeRepo.FindByID(*input.AccountTypeID); err != nil {
			return nil, err
		}
		fields["account_type_id"] = *input.AccountTypeID
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.repo.FindByID(id)
}

func (s *accountService) DeleteBankAccount(id uint) error {
	return s.repo.UpdateFields(id, map[string]interface{}{
		"is_deleted": true,
		"is_active":  false,
	})
}

func (s *accountService) CreateAccountType(input dto.AccountTypeRequest) (*domain.AccountType, error) {
	at := &domain.AccountType{AccountType: strings.TrimSpace(input.AccountType)}
	if err := s.typeRepo.Create(at); err != nil {
		return nil, err
	}
	return at, nil
}

func (s *accountService) ListAccountTypes() ([]domain.AccountType, error) {
	return s.typeRepo.FindAll()
}

func (s *accountService) GetAccountType(id uint) (*domain.AccountType, error) {
	return s.typeRepo.FindByID(id)
}

func (s *accountService) UpdateAccountType(id uint, input dto.UpdateAccountTypeRequest) (*domain.AccountType, error) {
	at, err := s.typeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if input.AccountType != nil {
		at.AccountType = strings.TrimSpace(*input.AccountType)
	}
	if err := s.typeRepo.Save(at); err != nil {
		return nil, err
	}
	return at, nil
}

func (s *accountService) CreateBranch(input dto.BranchDetailsRequest) (*domain.BranchDetails, error) {
	b := &domain.BranchDetails{BranchAddress: strings.TrimSpace(input.BranchAddress)}
	if err := s.branchRepo.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *accountService) ListBranches() ([]domain.BranchDetails, error) {
	return s.branchRepo.FindAll()
}

func (s *accountService) GetBranch(id uint) (*domain.BranchDetails, error) {
	return s.branchRepo.FindByID(id)
}

func (s *accountService) UpdateBranch(id uint, input dto.UpdateBranchDetailsRequest) (*domain.BranchDetails, error) {
	b, err := s.branchRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if input.BranchAddress != nil {
		b.BranchAddress = strings.TrimSpace(*input.BranchAddress)
	}
	if err := s.branchRepo.Save(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *accountService) DeleteBranch(id uint) error {
	return s.branchRepo.Delete(id)
}
