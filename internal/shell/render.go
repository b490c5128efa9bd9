package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/terminal-bank/internal/domain"
	"github.com/josh-kwaku/terminal-bank/internal/service"
)

func formatMoney(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

func (s *Shell) renderStatement(stmt domain.Statement) {
	fmt.Fprintln(s.out, "\n================ STATEMENT ================")
	if stmt.Empty() {
		fmt.Fprintln(s.out, "No transactions were made.")
	} else {
		for tx := range stmt.Transactions() {
			fmt.Fprintf(s.out, "%s:\t\t%s\n", tx.Kind(), formatMoney(tx.Value()))
		}
	}
	fmt.Fprintf(s.out, "\nBalance:\t\t%s\n", formatMoney(stmt.Balance()))
	fmt.Fprintln(s.out, "===========================================")
}

func (s *Shell) renderAccounts(accts []domain.Account) {
	rule := strings.Repeat("=", s.opts.Width)
	for _, a := range accts {
		fmt.Fprintln(s.out, rule)
		fmt.Fprintf(s.out, "Branch:\t\t%s\nAccount:\t%d\nHolder:\t\t%s\n\n", a.Branch(), a.Number(), a.Customer().DisplayName())
	}
}

// renderError maps an error onto the message shown to the user.
func (s *Shell) renderError(err error) {
	var (
		verr *service.ValidationError
		lerr *domain.LimitError
	)

	switch {
	case errors.As(err, &verr):
		lines := make([]string, 0, len(verr.Fields)+1)
		lines = append(lines, "Invalid customer data:")
		for _, f := range verr.Fields {
			lines = append(lines, fmt.Sprintf("  %s: %s", f.Field, f.Message))
		}
		s.fail(strings.Join(lines, "\n"))
	case errors.Is(err, errInvalidNumber):
		s.fail("Invalid value! Please enter a number.")
	case errors.Is(err, domain.ErrInvalidAmount):
		s.fail("Operation failed! The amount provided is invalid.")
	case errors.Is(err, domain.ErrInsufficientFunds):
		s.fail("Operation failed! Insufficient balance.")
	case errors.As(err, &lerr):
		s.fail("Operation failed! The amount exceeds the withdrawal limit of " + formatMoney(lerr.Limit) + ".")
	case errors.Is(err, domain.ErrLimitExceeded):
		s.fail("Operation failed! The amount exceeds the per-withdrawal limit.")
	case errors.Is(err, domain.ErrQuotaExceeded):
		s.fail("Operation failed! Maximum number of withdrawals exceeded.")
	case errors.Is(err, domain.ErrCustomerNotFound):
		s.fail("Customer not found!")
	case errors.Is(err, domain.ErrAccountNotFound):
		s.fail("Account not found for this customer!")
	case errors.Is(err, domain.ErrNoAccount):
		s.fail("Customer has no account!")
	case errors.Is(err, domain.ErrCustomerExists):
		s.fail("A customer with this tax ID already exists!")
	case errors.Is(err, domain.ErrInvalidRequest):
		s.fail("Invalid request.")
	default:
		s.fail("An unexpected error occurred.")
	}
}
