package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/josh-kwaku/terminal-bank/internal/domain"
)

// AccountRepository keeps accounts in creation order. Account numbers are
// handed out sequentially starting at 1.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []domain.Account
	byNumber map[int]domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{byNumber: make(map[int]domain.Account)}
}

// NextNumber returns the number the next created account should carry. It
// does not reserve it; callers create the account before asking again.
func (r *AccountRepository) NextNumber(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts) + 1
}

func (r *AccountRepository) Create(_ context.Context, acct domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byNumber[acct.Number()]; ok {
		return fmt.Errorf("Create: account number %d already taken: %w", acct.Number(), domain.ErrInvalidRequest)
	}
	r.byNumber[acct.Number()] = acct
	r.accounts = append(r.accounts, acct)
	return nil
}

func (r *AccountRepository) GetByNumber(_ context.Context, number int) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acct, ok := r.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("GetByNumber: %w", domain.ErrAccountNotFound)
	}
	return acct, nil
}

func (r *AccountRepository) List(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.accounts), nil
}
