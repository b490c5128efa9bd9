package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindDeposit    Kind = "Deposit"
	KindWithdrawal Kind = "Withdrawal"
)

// Transaction is a monetary operation that knows how to apply itself to an
// account. A transaction is appended to the account's history only when
// Register succeeds.
type Transaction interface {
	ID() uuid.UUID
	Kind() Kind
	Value() decimal.Decimal
	CreatedAt() time.Time
	Register(acct Account) error
}

type record struct {
	id        uuid.UUID
	value     decimal.Decimal
	createdAt time.Time
}

func newRecord(value decimal.Decimal) record {
	return record{
		id:        uuid.New(),
		value:     value,
		createdAt: time.Now().UTC(),
	}
}

func (r record) ID() uuid.UUID          { return r.id }
func (r record) Value() decimal.Decimal { return r.value }
func (r record) CreatedAt() time.Time   { return r.createdAt }

type Deposit struct {
	record
}

func NewDeposit(value decimal.Decimal) *Deposit {
	return &Deposit{record: newRecord(value)}
}

func (d *Deposit) Kind() Kind { return KindDeposit }

func (d *Deposit) Register(acct Account) error {
	if !d.value.IsPositive() {
		return ErrInvalidAmount
	}
	if err := acct.credit(d.value); err != nil {
		return err
	}
	acct.History().add(d)
	return nil
}

type Withdrawal struct {
	record
}

func NewWithdrawal(value decimal.Decimal) *Withdrawal {
	return &Withdrawal{record: newRecord(value)}
}

func (w *Withdrawal) Kind() Kind { return KindWithdrawal }

// Register debits the account. The account decides which rules apply beyond
// the positive-amount check; a checking account also enforces its limit and
// quota.
func (w *Withdrawal) Register(acct Account) error {
	if !w.value.IsPositive() {
		return ErrInvalidAmount
	}
	if err := acct.debit(w.value); err != nil {
		return err
	}
	acct.History().add(w)
	return nil
}
