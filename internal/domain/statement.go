package domain

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Statement is a read-only view over an account. It is not a copy: both the
// transactions and the balance are read from the account when asked for.
type Statement struct {
	account Account
}

func (s Statement) Account() Account {
	return s.account
}

func (s Statement) Transactions() iter.Seq[Transaction] {
	return s.account.History().Transactions()
}

func (s Statement) Balance() decimal.Decimal {
	return s.account.Balance()
}

func (s Statement) Empty() bool {
	return s.account.History().Len() == 0
}
