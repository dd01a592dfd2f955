package services

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/SundayYogurt/bank_service/internal/domain"
	"github.com/SundayYogurt/bank_service/internal/dto"
	"github.com/SundayYogurt/bank_service/internal/interfaces"
	"github.com/SundayYogurt/bank_service/internal/repository"
)

const miniStatementLimit = 10

type LedgerService interface {
	// Ledger operations
	PostTransaction(input dto.PostTransactionRequest) (*domain.AccountTransactionDetails, error)
	TransferFunds(input dto.FundTransferRequest) (*dto.FundTransferResult, error)
	MiniStatement(bankAccountID uint) ([]domain.AccountTransactionDetails, error)

	// Transaction records
	ListTransactions() ([]domain.AccountTransactionDetails, error)
	GetTransaction(id uint) (*domain.AccountTransactionDetails, error)
	UpdateTransaction(id uint, input dto.UpdateTransactionRequest) (*domain.AccountTransactionDetails, error)
	DeleteTransaction(id uint) error

	// Transaction types
	CreateTransactionType(input dto.TransactionTypeRequest) (*domain.TransactionType, error)
	ListTransactionTypes() ([]domain.TransactionType, error)
	GetTransactionType(id uint) (*domain.TransactionType, error)
	UpdateTransactionType(id uint, input dto.UpdateTransactionTypeRequest) (*domain.TransactionType, error)
	DeleteTransactionType(id uint) error

	// Fund transfer records
	ListFundTransfers() ([]domain.FundTransfer, error)
	GetFundTransfer(id uint) (*domain.FundTransfer, error)
	UpdateFundTransfer(id uint, input dto.UpdateFundTransferRequest) (*domain.FundTransfer, error)
	DeleteFundTransfer(id uint) error
}

type ledgerService struct {
	ledger   repository.LedgerRepository
	txRepo   repository.TransactionRepository
	ftRepo   repository.FundTransferRepository
	typeRepo repository.TransactionTypeRepository
	accounts repository.BankAccountRepository
	producer interfaces.ProducerHandler
}

func NewLedgerService(
	ledger repository.LedgerRepository,
	txRepo repository.TransactionRepository,
	ftRepo repository.FundTransferRepository,
	typeRepo repository.TransactionTypeRepository,
	accounts repository.BankAccountRepository,
	producer interfaces.ProducerHandler,
) LedgerService {
	return &ledgerService{
		ledger:   ledger,
		txRepo:   txRepo,
		ftRepo:   ftRepo,
		typeRepo: typeRepo,
		accounts: accounts,
		producer: producer,
	}
}

// debitAllowed applies the reserve rule: the balance left after the
// debit must stay above the minimum.
func debitAllowed(balance, amount int64) bool {
	return balance-domain.MinimumBalance-amount > 0
}

// PostTransaction applies a single credit or debit. A declined debit is
// still recorded with status failed; the balance stays untouched. The
// balance update, the single-leg fund transfer row and the ledger row
// commit together or not at all.
func (s *ledgerService) PostTransaction(input dto.PostTransactionRequest) (*domain.AccountTransactionDetails, error) {
	var posted *domain.AccountTransactionDetails
	var event dto.TransactionEvent

	err := s.ledger.Transact(func(store repository.LedgerStore) error {
		account, err := store.AccountByID(input.BankAccountID)
		if err != nil {
			return err
		}

		txType, err := store.TransactionTypeByID(input.TransactionTypeID)
		if err != nil {
			return err
		}

		status := domain.TransactionStatusFailed
		switch strings.ToLower(txType.TransactionType) {
		case domain.TransactionTypeCredit:
			account.AccountBalance += input.TransactionAmount
			status = domain.TransactionStatusSuccess
		case domain.TransactionTypeDebit:
			if debitAllowed(account.AccountBalance, input.TransactionAmount) {
				account.AccountBalance -= input.TransactionAmount
				status = domain.TransactionStatusSuccess
			}
		default:
			return domain.ErrTransactionTypeNotFound
		}

		if status == domain.TransactionStatusSuccess {
			if err := store.SaveAccount(account); err != nil {
				return err
			}
		}

		ft := &domain.FundTransfer{FromAccount: account.AccountNumber}
		if err := store.CreateFundTransfer(ft); err != nil {
			return err
		}

		posted = &domain.AccountTransactionDetails{
			TransactionAmount: input.TransactionAmount,
			TransactionStatus: status,
			BankAccountID:     account.ID,
			TransactionTypeID: txType.ID,
			FundTransferID:    ft.ID,
			FundTransferInfo:  input.FundTransferInfo,
		}
		if err := store.CreateTransaction(posted); err != nil {
			return err
		}

		event = dto.TransactionEvent{
			Event:             dto.EventTransactionPosted,
			FromAccount:       account.AccountNumber,
			TransactionAmount: input.TransactionAmount,
			TransactionStatus: status,
			FundTransferID:    ft.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(event)
	return posted, nil
}

// TransferFunds moves funds between two accounts. The reserve rule is
// checked on the source only. Success posts a debit leg and a credit
// leg; a decline leaves both balances untouched but still records the
// transfer and both legs with status failed.
func (s *ledgerService) TransferFunds(input dto.FundTransferRequest) (*dto.FundTransferResult, error) {
	// a self transfer would read the row twice and let the credited
	// copy overwrite the debit
	if input.FromAccount == input.ToAccount {
		return nil, domain.ErrSameAccountTransfer
	}

	var result *dto.FundTransferResult
	var event dto.TransactionEvent

	err := s.ledger.Transact(func(store repository.LedgerStore) error {
		// lock in account number order so two opposite transfers
		// cannot deadlock
		first, second := input.FromAccount, input.ToAccount
		if first > second {
			first, second = second, first
		}

		accFirst, err := store.AccountByNumber(first)
		if err != nil {
			return err
		}
		accSecond, err := store.AccountByNumber(second)
		if err != nil {
			return err
		}

		from, to := accFirst, accSecond
		if from.AccountNumber != input.FromAccount {
			from, to = accSecond, accFirst
		}

		debitType, err := store.TransactionTypeByName(domain.TransactionTypeDebit)
		if err != nil {
			return err
		}
		creditType, err := store.TransactionTypeByName(domain.TransactionTypeCredit)
		if err != nil {
			return err
		}

		status := domain.TransactionStatusFailed
		if debitAllowed(from.AccountBalance, input.TransactionAmount) {
			from.AccountBalance -= input.TransactionAmount
			to.AccountBalance += input.TransactionAmount
			if err := store.SaveAccount(from); err != nil {
				return err
			}
			if err := store.SaveAccount(to); err != nil {
				return err
			}
			status = domain.TransactionStatusSuccess
		}

		toNumber := to.AccountNumber
		ft := &domain.FundTransfer{
			FromAccount: from.AccountNumber,
			ToAccount:   &toNumber,
		}
		if err := store.CreateFundTransfer(ft); err != nil {
			return err
		}

		debitLeg := domain.AccountTransactionDetails{
			TransactionAmount: input.TransactionAmount,
			TransactionStatus: status,
			BankAccountID:     from.ID,
			TransactionTypeID: debitType.ID,
			FundTransferID:    ft.ID,
			FundTransferInfo:  "Funds Transfer",
		}
		if err := store.CreateTransaction(&debitLeg); err != nil {
			return err
		}

		creditLeg := domain.AccountTransactionDetails{
			TransactionAmount: input.TransactionAmount,
			TransactionStatus: status,
			BankAccountID:     to.ID,
			TransactionTypeID: creditType.ID,
			FundTransferID:    ft.ID,
			FundTransferInfo:  "Funds Transfer",
		}
		if err := store.CreateTransaction(&creditLeg); err != nil {
			return err
		}

		result = &dto.FundTransferResult{
			FundTransfer:      *ft,
			Transactions:      []domain.AccountTransactionDetails{debitLeg, creditLeg},
			TransactionStatus: status,
		}
		event = dto.TransactionEvent{
			Event:             dto.EventFundsTransferred,
			FromAccount:       from.AccountNumber,
			ToAccount:         to.AccountNumber,
			TransactionAmount: input.TransactionAmount,
			TransactionStatus: status,
			FundTransferID:    ft.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(event)
	return result, nil
}

func (s *ledgerService) MiniStatement(bankAccountID uint) ([]domain.AccountTransactionDetails, error) {
	if _, err := s.accounts.FindByID(bankAccountID); err != nil {
		return nil, err
	}
	return s.txRepo.Recent(bankAccountID, miniStatementLimit)
}

// publish is best effort: a broker outage must never fail a committed
// ledger operation.
func (s *ledgerService) publish(event dto.TransactionEvent) {
	if s.producer == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("marshal transaction event error: %v", err)
		return
	}
	if err := s.producer.PublishMessage([]byte(event.FromAccount), payload); err != nil {
		log.Printf("publish transaction event error: %v", err)
	}
}

func (s *ledgerService) ListTransactions() ([]domain.AccountTransactionDetails, error) {
	return s.txRepo.FindAll()
}

func (s *ledgerService) GetTransaction(id uint) (*domain.AccountTransactionDetails, error) {
	return s.txRepo.FindByID(id)
}

func (s *ledgerService) UpdateTransaction(id uint, input dto.UpdateTransactionRequest) (*domain.AccountTransactionDetails, error) {
	txd, err := s.txRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if input.TransactionAmount != nil {
		txd.TransactionAmount = *input.TransactionAmount
	}
	if input.BankAccountID != nil {
		txd.BankAccountID = *input.BankAccountID
	}
	if input.TransactionTypeID != nil {
		txd.TransactionTypeID = *input.TransactionTypeID
	}
	if input.FundTransferInfo != nil {
		txd.FundTransferInfo = *input.FundTransferInfo
	}
	if err := s.txRepo.Save(txd); err != nil {
		return nil, err
	}
	return txd, nil
}

func (s *ledgerService) DeleteTransaction(id uint) error {
	return s.txRepo.Delete(id)
}

func (s *ledgerService) CreateTransactionType(input dto.TransactionTypeRequest) (*domain.TransactionType, error) {
	tt := &domain.TransactionType{TransactionType: strings.TrimSpace(input.TransactionType)}
	if err := s.typeRepo.Create(tt); err != nil {
		return nil, err
	}
	return tt, nil
}

func (s *ledgerService) ListTransactionTypes() ([]domain.TransactionType, error) {
	return s.typeRepo.FindAll()
}

func (s *ledgerService) GetTransactionType(id uint) (*domain.TransactionType, error) {
	return s.typeRepo.FindByID(id)
}

func (s *ledgerService) UpdateTransactionType(id uint, input dto.UpdateTransactionTypeRequest) (*domain.TransactionType, error) {
	tt, err := s.typeRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if input.TransactionType != nil {
		tt.TransactionType = strings.TrimSpace(*input.TransactionType)
	}
	if err := s.typeRepo.Save(tt); err != nil {
		return nil, err
	}
	return tt, nil
}

func (s *ledgerService) DeleteTransactionType(id uint) error {
	return s.typeRepo.Delete(id)
}

func (s *ledgerService) ListFundTransfers() ([]domain.FundTransfer, error) {
	return s.ftRepo.FindAll()
}

func (s *ledgerService) GetFundTransfer(id uint) (*domain.FundTransfer, error) {
	return s.ftRepo.FindByID(id)
}

func (s *ledgerService) UpdateFundTransfer(id uint, input dto.UpdateFundTransferRequest) (*domain.FundTransfer, error) {
	ft, err := s.ftRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if input.FromAccount != nil {
		ft.FromAccount = *input.FromAccount
	}
	if input.ToAccount != nil {
		ft.ToAccount = input.ToAccount
	}
	if err := s.ftRepo.Save(ft); err != nil {
		return nil, err
	}
	return ft, nil
}

func (s *ledgerService) DeleteFundTransfer(id uint) error {
	return s.ftRepo.Delete(id)
}
