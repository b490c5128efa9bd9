package domain

import (
	"github.com/shopspring/decimal"
)

const (
	DefaultBranch         = "0001"
	DefaultMaxWithdrawals = 3
)

var DefaultWithdrawalLimit = decimal.NewFromInt(500)

// Account holds a balance and the history of the transactions that produced
// it. The unexported mutation hooks are only reachable from transactions
// registered through this package, so the balance cannot change without a
// matching history entry.
type Account interface {
	Number() int
	Branch() string
	Customer() Customer
	Balance() decimal.Decimal
	History() *History

	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	Statement() Statement

	credit(amount decimal.Decimal) error
	debit(amount decimal.Decimal) error
}

type account struct {
	number   int
	branch   string
	customer Customer
	balance  decimal.Decimal
	history  *History
}

func newAccount(customer Customer, number int, branch string) account {
	if branch == "" {
		branch = DefaultBranch
	}
	return account{
		number:   number,
		branch:   branch,
		customer: customer,
		balance:  decimal.Zero,
		history:  newHistory(),
	}
}

func (a *account) Number() int              { return a.number }
func (a *account) Branch() string           { return a.branch }
func (a *account) Customer() Customer       { return a.customer }
func (a *account) Balance() decimal.Decimal { return a.balance }
func (a *account) History() *History        { return a.history }

func (a *account) credit(amount decimal.Decimal) error {
	a.balance = a.balance.Add(amount)
	return nil
}

func (a *account) debit(amount decimal.Decimal) error {
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// CheckingPolicy carries the rules stamped on every new checking account.
// Zero fields fall back to the package defaults.
type CheckingPolicy struct {
	Branch          string
	WithdrawalLimit decimal.Decimal
	MaxWithdrawals  int
}

func DefaultCheckingPolicy() CheckingPolicy {
	return CheckingPolicy{
		Branch:          DefaultBranch,
		WithdrawalLimit: DefaultWithdrawalLimit,
		MaxWithdrawals:  DefaultMaxWithdrawals,
	}
}

// CheckingAccount caps each withdrawal at a fixed amount and allows a fixed
// number of withdrawals. The withdrawal counter never resets.
type CheckingAccount struct {
	account
	withdrawalLimit decimal.Decimal
	maxWithdrawals  int
	withdrawals     int
}

func NewCheckingAccount(customer Customer, number int, policy CheckingPolicy) *CheckingAccount {
	limit := policy.WithdrawalLimit
	if !limit.IsPositive() {
		limit = DefaultWithdrawalLimit
	}
	maxWithdrawals := policy.MaxWithdrawals
	if maxWithdrawals <= 0 {
		maxWithdrawals = DefaultMaxWithdrawals
	}
	return &CheckingAccount{
		account:         newAccount(customer, number, policy.Branch),
		withdrawalLimit: limit,
		maxWithdrawals:  maxWithdrawals,
	}
}

func (c *CheckingAccount) WithdrawalLimit() decimal.Decimal { return c.withdrawalLimit }
func (c *CheckingAccount) MaxWithdrawals() int              { return c.maxWithdrawals }
func (c *CheckingAccount) Withdrawals() int                 { return c.withdrawals }

func (c *CheckingAccount) Deposit(amount decimal.Decimal) error {
	return NewDeposit(amount).Register(c)
}

func (c *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	return NewWithdrawal(amount).Register(c)
}

func (c *CheckingAccount) Statement() Statement {
	return Statement{account: c}
}

// debit applies the checking rules before the balance rule: per-operation
// limit, then quota, then available funds.
func (c *CheckingAccount) debit(amount decimal.Decimal) error {
	if amount.GreaterThan(c.withdrawalLimit) {
		return &LimitError{Limit: c.withdrawalLimit}
	}
	if c.withdrawals >= c.maxWithdrawals {
		return ErrQuotaExceeded
	}
	if err := c.account.debit(amount); err != nil {
		return err
	}
	c.withdrawals++
	return nil
}
