package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/josh-kwaku/terminal-bank/internal/domain"
)

// CustomerRepository keeps registered customers in memory, indexed by tax ID.
type CustomerRepository struct {
	mu      sync.RWMutex
	ordered []domain.Customer
	byTaxID map[string]domain.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{byTaxID: make(map[string]domain.Customer)}
}

func (r *CustomerRepository) Create(_ context.Context, c domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byTaxID[c.TaxID()]; ok {
		return fmt.Errorf("Create: %w", domain.ErrCustomerExists)
	}
	r.byTaxID[c.TaxID()] = c
	r.ordered = append(r.ordered, c)
	return nil
}

func (r *CustomerRepository) GetByTaxID(_ context.Context, taxID string) (domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byTaxID[taxID]
	if !ok {
		return nil, fmt.Errorf("GetByTaxID: %w", domain.ErrCustomerNotFound)
	}
	return c, nil
}

func (r *CustomerRepository) List(_ context.Context) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.ordered), nil
}
