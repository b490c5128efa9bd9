package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Customer owns accounts. Adding an account performs no uniqueness or
// ownership check.
type Customer interface {
	ID() uuid.UUID
	TaxID() string
	DisplayName() string
	Address() string
	AddAccount(acct Account)
	Accounts() []Account
	Transact(acct Account, tx Transaction) error
}

type customer struct {
	id       uuid.UUID
	address  string
	accounts []Account
}

func newCustomer(address string) customer {
	return customer{id: uuid.New(), address: address}
}

func (c *customer) ID() uuid.UUID   { return c.id }
func (c *customer) Address() string { return c.address }

func (c *customer) AddAccount(acct Account) {
	c.accounts = append(c.accounts, acct)
}

func (c *customer) Accounts() []Account {
	return slices.Clone(c.accounts)
}

func (c *customer) Transact(acct Account, tx Transaction) error {
	return tx.Register(acct)
}

type IndividualCustomer struct {
	customer
	name      string
	birthDate time.Time
	taxID     string
}

func NewIndividualCustomer(name string, birthDate time.Time, taxID, address string) *IndividualCustomer {
	return &IndividualCustomer{
		customer:  newCustomer(address),
		name:      name,
		birthDate: birthDate,
		taxID:     taxID,
	}
}

func (p *IndividualCustomer) Name() string         { return p.name }
func (p *IndividualCustomer) BirthDate() time.Time { return p.birthDate }
func (p *IndividualCustomer) TaxID() string        { return p.taxID }
func (p *IndividualCustomer) DisplayName() string  { return p.name }
