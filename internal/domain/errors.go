package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrLimitExceeded     = errors.New("withdrawal limit exceeded")
	ErrQuotaExceeded     = errors.New("maximum number of withdrawals exceeded")
	ErrCustomerExists    = errors.New("customer already exists for this tax id")
	ErrNoAccount         = errors.New("customer has no account")
	ErrInvalidRequest    = errors.New("invalid request")

	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)
	ErrAccountNotFound  = fmt.Errorf("account %w", ErrNotFound)
)

// LimitError reports a withdrawal above the account's per-operation cap.
type LimitError struct {
	Limit decimal.Decimal
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s: cap is %s", ErrLimitExceeded, e.Limit.StringFixed(2))
}

func (e *LimitError) Unwrap() error { return ErrLimitExceeded }
