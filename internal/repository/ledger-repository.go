package repository

import (
	"errors"

	"github.com/SundayYogurt/bank_service/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerStore is the slice of persistence one atomic ledger operation
// needs. Inside Transact every call runs on the same database
// transaction and account reads take SELECT ... FOR UPDATE row locks,
// so two requests moving money on the same account serialize.
type LedgerStore interface {
	AccountByID(id uint) (*domain.BankAccount, error)
	AccountByNumber(number string) (*domain.BankAccount, error)
	SaveAccount(account *domain.BankAccount) error
	TransactionTypeByID(id uint) (*domain.TransactionType, error)
	TransactionTypeByName(name string) (*domain.TransactionType, error)
	CreateFundTransfer(ft *domain.FundTransfer) error
	CreateTransaction(txd *domain.AccountTransactionDetails) error
}

// LedgerRepository is the unit of work for ledger operations: the
// callback either commits in full or not at all.
type LedgerRepository interface {
	Transact(fn func(store LedgerStore) error) error
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Transact(fn func(store LedgerStore) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&ledgerStore{db: tx})
	})
}

type ledgerStore struct {
	db *gorm.DB
}

func (s *ledgerStore) AccountByID(id uint) (*domain.BankAccount, error) {
	account := &domain.BankAccount{}
	err := s.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("is_deleted = ?", false).
		First(account, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (s *ledgerStore) AccountByNumber(number string) (*domain.BankAccount, error) {
	account := &domain.BankAccount{}
	err := s.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_number = ? AND is_deleted = ?", number, false).
		First(account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (s *ledgerStore) SaveAccount(account *domain.BankAccount) error {
	return s.db.Save(account).Error
}

func (s *ledgerStore) TransactionTypeByID(id uint) (*domain.TransactionType, error) {
	tt := &domain.TransactionType{}
	if err := s.db.First(tt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionTypeNotFound
		}
		return nil, err
	}
	return tt, nil
}

func (s *ledgerStore) TransactionTypeByName(name string) (*domain.TransactionType, error) {
	tt := &domain.TransactionType{}
	err := s.db.Where("LOWER(transaction_type) = LOWER(?)", name).First(tt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionTypeNotFound
		}
		return nil, err
	}
	return tt, nil
}

func (s *ledgerStore) CreateFundTransfer(ft *domain.FundTransfer) error {
	return s.db.Create(ft).Error
}

func (s *ledgerStore) CreateTransaction(txd *domain.AccountTransactionDetails) error {
	return s.db.Create(txd).Error
}
