package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/terminal-bank/internal/domain"
	"github.com/josh-kwaku/terminal-bank/internal/repository"
)

var DefaultBirthDate = time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)

func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type Registry struct {
	Customers *repository.CustomerRepository
	Accounts  *repository.AccountRepository
}

func NewRegistry() *Registry {
	return &Registry{
		Customers: repository.NewCustomerRepository(),
		Accounts:  repository.NewAccountRepository(),
	}
}

// SeedCustomer registers an individual customer directly in the registry.
func SeedCustomer(t *testing.T, reg *Registry, taxID, name string) *domain.IndividualCustomer {
	t.Helper()

	c := domain.NewIndividualCustomer(name, DefaultBirthDate, taxID, "Rua das Flores, 10 - Centro - Recife/PE")
	if err := reg.Customers.Create(context.Background(), c); err != nil {
		t.Fatalf("seed customer %s: %v", taxID, err)
	}
	return c
}

// SeedAccount opens a checking account for owner with the default policy and
// deposits balance into it when balance is positive.
func SeedAccount(t *testing.T, reg *Registry, owner domain.Customer, balance string) *domain.CheckingAccount {
	t.Helper()
	ctx := context.Background()

	acct := domain.NewCheckingAccount(owner, reg.Accounts.NextNumber(ctx), domain.DefaultCheckingPolicy())
	if err := reg.Accounts.Create(ctx, acct); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	owner.AddAccount(acct)

	if amount := Dec(balance); amount.IsPositive() {
		if err := acct.Deposit(amount); err != nil {
			t.Fatalf("seed account balance: %v", err)
		}
	}
	return acct
}
