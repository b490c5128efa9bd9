package shell

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/terminal-bank/internal/domain"
	"github.com/josh-kwaku/terminal-bank/internal/service"
)

var errInvalidNumber = errors.New("not a number")

func (s *Shell) deposit(ctx context.Context) error {
	req, err := s.askTransaction(ctx, "Enter the deposit amount: ")
	if err != nil {
		return err
	}
	acct, err := s.bank.Deposit(ctx, req)
	if err != nil {
		return err
	}
	s.ok(fmt.Sprintf("Deposit completed successfully! Balance: %s", formatMoney(acct.Balance())))
	return nil
}

func (s *Shell) withdraw(ctx context.Context) error {
	req, err := s.askTransaction(ctx, "Enter the withdrawal amount: ")
	if err != nil {
		return err
	}
	acct, err := s.bank.Withdraw(ctx, req)
	if err != nil {
		return err
	}
	s.ok(fmt.Sprintf("Withdrawal completed successfully! Balance: %s", formatMoney(acct.Balance())))
	return nil
}

func (s *Shell) statement(ctx context.Context) error {
	taxID, number, err := s.askAccount(ctx)
	if err != nil {
		return err
	}
	stmt, err := s.bank.Statement(ctx, taxID, number)
	if err != nil {
		return err
	}
	s.renderStatement(stmt)
	return nil
}

func (s *Shell) newCustomer(ctx context.Context) error {
	taxID, err := s.ask(ctx, "Enter the tax ID (digits only): ")
	if err != nil {
		return err
	}
	if _, err := s.bank.Customer(ctx, taxID); err == nil {
		return domain.ErrCustomerExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	req := service.RegisterCustomerRequest{TaxID: taxID}
	if req.Name, err = s.ask(ctx, "Enter the full name: "); err != nil {
		return err
	}
	if req.BirthDate, err = s.ask(ctx, "Enter the date of birth (dd-mm-yyyy): "); err != nil {
		return err
	}
	if req.Address, err = s.ask(ctx, "Enter the address (street, number - district - city/state): "); err != nil {
		return err
	}

	if _, err := s.bank.RegisterCustomer(ctx, req); err != nil {
		return err
	}
	s.ok("Customer created successfully!")
	return nil
}

func (s *Shell) newAccount(ctx context.Context) error {
	taxID, err := s.ask(ctx, "Enter the customer's tax ID: ")
	if err != nil {
		return err
	}
	acct, err := s.bank.OpenAccount(ctx, taxID)
	if err != nil {
		return err
	}
	s.ok(fmt.Sprintf("Account created successfully! Branch %s, account %d", acct.Branch(), acct.Number()))
	return nil
}

func (s *Shell) listAccounts(ctx context.Context) error {
	accts, err := s.bank.ListAccounts(ctx)
	if err != nil {
		return err
	}
	if len(accts) == 0 {
		s.fail("No accounts registered.")
		return nil
	}
	s.renderAccounts(accts)
	return nil
}

// askAccount prompts for the customer and, when the customer owns more than
// one account, for the account number. A blank number selects the first
// account.
func (s *Shell) askAccount(ctx context.Context) (string, int, error) {
	taxID, err := s.ask(ctx, "Enter the customer's tax ID: ")
	if err != nil {
		return "", 0, err
	}
	owner, err := s.bank.Customer(ctx, taxID)
	if err != nil {
		return "", 0, err
	}

	accts := owner.Accounts()
	if len(accts) == 0 {
		return "", 0, domain.ErrNoAccount
	}
	if len(accts) == 1 {
		return taxID, 0, nil
	}

	numbers := make([]string, len(accts))
	for i, a := range accts {
		numbers[i] = strconv.Itoa(a.Number())
	}
	raw, err := s.ask(ctx, fmt.Sprintf("Enter the account number (%s) [%s]: ", strings.Join(numbers, ", "), numbers[0]))
	if err != nil {
		return "", 0, err
	}
	if raw == "" {
		return taxID, 0, nil
	}
	number, err := strconv.Atoi(raw)
	if err != nil {
		return "", 0, errInvalidNumber
	}
	return taxID, number, nil
}

func (s *Shell) askTransaction(ctx context.Context, prompt string) (service.TransactionRequest, error) {
	taxID, number, err := s.askAccount(ctx)
	if err != nil {
		return service.TransactionRequest{}, err
	}
	raw, err := s.ask(ctx, prompt)
	if err != nil {
		return service.TransactionRequest{}, err
	}
	amount, err := parseAmount(raw)
	if err != nil {
		return service.TransactionRequest{}, err
	}
	return service.TransactionRequest{TaxID: taxID, AccountNumber: number, Amount: amount}, nil
}

// amountPattern allows at most cents and no exponent.
var amountPattern = regexp.MustCompile(`^[+-]?[0-9]+([.,][0-9]{1,2})?$`)

// parseAmount accepts "150", "150.5", "150,50" and an optional "R$" prefix.
func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "R$"))
	if !amountPattern.MatchString(raw) {
		return decimal.Decimal{}, errInvalidNumber
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return decimal.Decimal{}, errInvalidNumber
	}
	return d, nil
}
