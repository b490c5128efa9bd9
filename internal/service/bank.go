package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/terminal-bank/internal/domain"
	"github.com/josh-kwaku/terminal-bank/internal/logging"
)

type BankService struct {
	customers customerRepository
	accounts  accountRepository
	policy    domain.CheckingPolicy
}

func NewBankService(customers customerRepository, accounts accountRepository, policy domain.CheckingPolicy) *BankService {
	return &BankService{customers: customers, accounts: accounts, policy: policy}
}

type RegisterCustomerRequest struct {
	TaxID     string `field:"tax_id" validate:"required,number,max=14"`
	Name      string `field:"name" validate:"required,max=120"`
	BirthDate string `field:"birth_date" validate:"required,datetime=02-01-2006"`
	Address   string `field:"address" validate:"required,max=200"`
}

func (r *RegisterCustomerRequest) normalize() {
	r.TaxID = strings.TrimSpace(r.TaxID)
	r.Name = strings.TrimSpace(r.Name)
	r.BirthDate = strings.TrimSpace(r.BirthDate)
	r.Address = strings.TrimSpace(r.Address)
}

func (s *BankService) RegisterCustomer(ctx context.Context, req RegisterCustomerRequest) (*domain.IndividualCustomer, error) {
	log := logging.FromContext(ctx)

	req.normalize()
	if err := validateStruct(req); err != nil {
		return nil, fmt.Errorf("RegisterCustomer: %w", err)
	}

	born, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("RegisterCustomer: birth date: %w", domain.ErrInvalidRequest)
	}

	c := domain.NewIndividualCustomer(req.Name, born, req.TaxID, req.Address)
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("RegisterCustomer: %w", err)
	}

	log.Info("customer registered", "customer_id", c.ID())
	return c, nil
}

func (s *BankService) OpenAccount(ctx context.Context, taxID string) (*domain.CheckingAccount, error) {
	log := logging.FromContext(ctx)

	owner, err := s.customers.GetByTaxID(ctx, strings.TrimSpace(taxID))
	if err != nil {
		return nil, fmt.Errorf("OpenAccount: %w", err)
	}

	acct := domain.NewCheckingAccount(owner, s.accounts.NextNumber(ctx), s.policy)
	if err := s.accounts.Create(ctx, acct); err != nil {
		return nil, fmt.Errorf("OpenAccount: %w", err)
	}
	owner.AddAccount(acct)

	log.Info("account opened",
		"account_number", acct.Number(),
		"branch", acct.Branch(),
		"customer_id", owner.ID(),
	)
	return acct, nil
}

func (s *BankService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListAccounts: %w", err)
	}
	return accts, nil
}

// Customer returns the registered customer with the given tax ID.
func (s *BankService) Customer(ctx context.Context, taxID string) (domain.Customer, error) {
	c, err := s.customers.GetByTaxID(ctx, strings.TrimSpace(taxID))
	if err != nil {
		return nil, fmt.Errorf("Customer: %w", err)
	}
	return c, nil
}

// TransactionRequest identifies the account by its owner's tax ID. An
// AccountNumber of zero selects the customer's first account.
type TransactionRequest struct {
	TaxID         string
	AccountNumber int
	Amount        decimal.Decimal
}

func (s *BankService) Deposit(ctx context.Context, req TransactionRequest) (domain.Account, error) {
	acct, err := s.transact(ctx, req, domain.NewDeposit(req.Amount))
	if err != nil {
		return nil, fmt.Errorf("Deposit: %w", err)
	}
	return acct, nil
}

func (s *BankService) Withdraw(ctx context.Context, req TransactionRequest) (domain.Account, error) {
	acct, err := s.transact(ctx, req, domain.NewWithdrawal(req.Amount))
	if err != nil {
		return nil, fmt.Errorf("Withdraw: %w", err)
	}
	return acct, nil
}

func (s *BankService) Statement(ctx context.Context, taxID string, accountNumber int) (domain.Statement, error) {
	owner, acct, err := s.resolveAccount(ctx, taxID, accountNumber)
	if err != nil {
		return domain.Statement{}, fmt.Errorf("Statement: %w", err)
	}

	logging.FromContext(ctx).Debug("statement requested",
		"account_number", acct.Number(),
		"customer_id", owner.ID(),
	)
	return acct.Statement(), nil
}

func (s *BankService) transact(ctx context.Context, req TransactionRequest, tx domain.Transaction) (domain.Account, error) {
	log := logging.FromContext(ctx)

	owner, acct, err := s.resolveAccount(ctx, req.TaxID, req.AccountNumber)
	if err != nil {
		return nil, err
	}

	attrs := []any{
		"transaction_id", tx.ID(),
		"kind", tx.Kind(),
		"amount", tx.Value().StringFixed(2),
		"account_number", acct.Number(),
	}

	if err := owner.Transact(acct, tx); err != nil {
		log.Warn("transaction rejected", append(attrs, "reason", err)...)
		return nil, err
	}

	log.Info("transaction registered", append(attrs, "balance", acct.Balance().StringFixed(2))...)
	return acct, nil
}

func (s *BankService) resolveAccount(ctx context.Context, taxID string, number int) (domain.Customer, domain.Account, error) {
	owner, err := s.customers.GetByTaxID(ctx, strings.TrimSpace(taxID))
	if err != nil {
		return nil, nil, fmt.Errorf("resolveAccount: %w", err)
	}

	accts := owner.Accounts()
	if len(accts) == 0 {
		return nil, nil, fmt.Errorf("resolveAccount: %w", domain.ErrNoAccount)
	}
	if number == 0 {
		return owner, accts[0], nil
	}
	for _, a := range accts {
		if a.Number() == number {
			return owner, a, nil
		}
	}
	return nil, nil, fmt.Errorf("resolveAccount: account %d: %w", number, domain.ErrAccountNotFound)
}

// IsRejection reports whether err is an expected business outcome rather than
// a fault.
func IsRejection(err error) bool {
	for _, target := range []error{
		domain.ErrInvalidAmount,
		domain.ErrInsufficientFunds,
		domain.ErrLimitExceeded,
		domain.ErrQuotaExceeded,
		domain.ErrNotFound,
		domain.ErrNoAccount,
		domain.ErrCustomerExists,
		domain.ErrInvalidRequest,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
