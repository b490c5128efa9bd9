package service

import (
	"context"

	"github.com/josh-kwaku/terminal-bank/internal/domain"
)

type customerRepository interface {
	Create(ctx context.Context, c domain.Customer) error
	GetByTaxID(ctx context.Context, taxID string) (domain.Customer, error)
}

type accountRepository interface {
	NextNumber(ctx context.Context) int
	Create(ctx context.Context, acct domain.Account) error
	List(ctx context.Context) ([]domain.Account, error)
}
