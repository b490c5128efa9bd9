package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestAccount(t *testing.T) *CheckingAccount {
	t.Helper()
	owner := NewIndividualCustomer("Ana Souza", time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), "12345678900", "Rua A, 10 - Centro - Recife/PE")
	acct := NewCheckingAccount(owner, 1, DefaultCheckingPolicy())
	owner.AddAccount(acct)
	return acct
}

func collect(s Statement) []Transaction {
	var out []Transaction
	for tx := range s.Transactions() {
		out = append(out, tx)
	}
	return out
}

func TestNewCheckingAccount(t *testing.T) {
	acct := newTestAccount(t)

	assert.Equal(t, 1, acct.Number())
	assert.Equal(t, DefaultBranch, acct.Branch())
	assert.True(t, acct.Balance().IsZero())
	assert.Equal(t, 0, acct.History().Len())
	assert.Equal(t, 0, acct.Withdrawals())
	assert.True(t, acct.WithdrawalLimit().Equal(dec("500")))
	assert.Equal(t, 3, acct.MaxWithdrawals())
	assert.Equal(t, "12345678900", acct.Customer().TaxID())
}

func TestNewCheckingAccount_PolicyFallbacks(t *testing.T) {
	owner := NewIndividualCustomer("Ana", time.Time{}, "1", "addr")

	acct := NewCheckingAccount(owner, 7, CheckingPolicy{})
	assert.Equal(t, DefaultBranch, acct.Branch())
	assert.True(t, acct.WithdrawalLimit().Equal(DefaultWithdrawalLimit))
	assert.Equal(t, DefaultMaxWithdrawals, acct.MaxWithdrawals())

	custom := NewCheckingAccount(owner, 8, CheckingPolicy{Branch: "0042", WithdrawalLimit: dec("1000"), MaxWithdrawals: 5})
	assert.Equal(t, "0042", custom.Branch())
	assert.True(t, custom.WithdrawalLimit().Equal(dec("1000")))
	assert.Equal(t, 5, custom.MaxWithdrawals())
}

func TestDeposit(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr error
		wantBal string
	}{
		{name: "positive amount", amount: "100", wantBal: "100"},
		{name: "fractional amount", amount: "0.01", wantBal: "0.01"},
		{name: "zero", amount: "0", wantErr: ErrInvalidAmount, wantBal: "0"},
		{name: "negative", amount: "-5", wantErr: ErrInvalidAmount, wantBal: "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			acct := newTestAccount(t)

			err := acct.Deposit(dec(tc.amount))

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, 0, acct.History().Len())
			} else {
				require.NoError(t, err)
				txs := collect(acct.Statement())
				require.Len(t, txs, 1)
				assert.Equal(t, KindDeposit, txs[0].Kind())
				assert.True(t, txs[0].Value().Equal(dec(tc.amount)))
			}
			assert.True(t, acct.Balance().Equal(dec(tc.wantBal)), "balance: got %s, want %s", acct.Balance(), tc.wantBal)
		})
	}
}

func TestWithdraw(t *testing.T) {
	tests := []struct {
		name            string
		balance         string
		priorWithdraws  int
		amount          string
		wantErr         error
		wantBal         string
		wantWithdrawals int
	}{
		{name: "within every rule", balance: "100", amount: "50", wantBal: "50", wantWithdrawals: 1},
		{name: "entire balance", balance: "100", amount: "100", wantBal: "0", wantWithdrawals: 1},
		{name: "at the limit", balance: "1000", amount: "500", wantBal: "500", wantWithdrawals: 1},
		{name: "zero", balance: "100", amount: "0", wantErr: ErrInvalidAmount, wantBal: "100"},
		{name: "negative", balance: "100", amount: "-1", wantErr: ErrInvalidAmount, wantBal: "100"},
		{name: "over the limit with low balance", balance: "50", amount: "600", wantErr: ErrLimitExceeded, wantBal: "50"},
		{name: "over the limit with high balance", balance: "1000", amount: "500.01", wantErr: ErrLimitExceeded, wantBal: "1000"},
		{name: "quota reached", balance: "1000", priorWithdraws: 3, amount: "10", wantErr: ErrQuotaExceeded, wantBal: "970", wantWithdrawals: 3},
		{name: "insufficient funds", balance: "100", amount: "200", wantErr: ErrInsufficientFunds, wantBal: "100"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			acct := newTestAccount(t)
			require.NoError(t, acct.Deposit(dec(tc.balance)))
			for range tc.priorWithdraws {
				require.NoError(t, acct.Withdraw(dec("10")))
			}
			before := acct.History().Len()

			err := acct.Withdraw(dec(tc.amount))

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, before, acct.History().Len())
			} else {
				require.NoError(t, err)
				assert.Equal(t, before+1, acct.History().Len())
			}
			assert.True(t, acct.Balance().Equal(dec(tc.wantBal)), "balance: got %s, want %s", acct.Balance(), tc.wantBal)
			assert.Equal(t, tc.wantWithdrawals, acct.Withdrawals())
		})
	}
}

func TestCheckingAccountScenarios(t *testing.T) {
	t.Run("deposit then withdraw", func(t *testing.T) {
		acct := newTestAccount(t)

		require.NoError(t, acct.Deposit(dec("100")))
		assert.True(t, acct.Balance().Equal(dec("100")))

		require.NoError(t, acct.Withdraw(dec("50")))
		assert.True(t, acct.Balance().Equal(dec("50")))
		assert.Equal(t, 1, acct.Withdrawals())
	})

	t.Run("limit checked before funds", func(t *testing.T) {
		acct := newTestAccount(t)
		require.NoError(t, acct.Deposit(dec("50")))

		require.ErrorIs(t, acct.Withdraw(dec("600")), ErrLimitExceeded)
		assert.True(t, acct.Balance().Equal(dec("50")))
	})

	t.Run("quota exhausted", func(t *testing.T) {
		acct := newTestAccount(t)
		require.NoError(t, acct.Deposit(dec("1030")))
		for range 3 {
			require.NoError(t, acct.Withdraw(dec("10")))
		}
		require.True(t, acct.Balance().Equal(dec("1000")))

		require.ErrorIs(t, acct.Withdraw(dec("10")), ErrQuotaExceeded)
		assert.True(t, acct.Balance().Equal(dec("1000")))
		assert.Equal(t, 3, acct.Withdrawals())
	})

	t.Run("quota does not count rejected withdrawals", func(t *testing.T) {
		acct := newTestAccount(t)
		require.NoError(t, acct.Deposit(dec("100")))

		require.ErrorIs(t, acct.Withdraw(dec("200")), ErrInsufficientFunds)
		require.ErrorIs(t, acct.Withdraw(dec("900")), ErrLimitExceeded)
		assert.Equal(t, 0, acct.Withdrawals())
	})
}

func TestBalanceNeverNegative(t *testing.T) {
	acct := newTestAccount(t)
	ops := []struct {
		deposit bool
		amount  string
	}{
		{true, "20"}, {false, "30"}, {false, "20"}, {true, "-10"}, {false, "0.01"},
		{true, "499.99"}, {false, "500"}, {false, "1"}, {true, "3"}, {false, "3"},
	}

	for _, op := range ops {
		if op.deposit {
			_ = acct.Deposit(dec(op.amount))
		} else {
			_ = acct.Withdraw(dec(op.amount))
		}
		assert.False(t, acct.Balance().IsNegative(), "balance went negative: %s", acct.Balance())
	}

	sum := decimal.Zero
	for tx := range acct.History().Transactions() {
		switch tx.Kind() {
		case KindDeposit:
			sum = sum.Add(tx.Value())
		case KindWithdrawal:
			sum = sum.Sub(tx.Value())
		}
	}
	assert.True(t, sum.Equal(acct.Balance()), "history sum %s != balance %s", sum, acct.Balance())
}

func TestStatement(t *testing.T) {
	acct := newTestAccount(t)
	stmt := acct.Statement()
	assert.True(t, stmt.Empty())

	require.NoError(t, acct.Deposit(dec("100")))
	require.NoError(t, acct.Withdraw(dec("40")))
	require.ErrorIs(t, acct.Withdraw(dec("-1")), ErrInvalidAmount)

	first := collect(stmt)
	second := collect(stmt)
	require.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, KindDeposit, first[0].Kind())
	assert.Equal(t, KindWithdrawal, first[1].Kind())
	assert.False(t, stmt.Empty())
	assert.True(t, stmt.Balance().Equal(dec("60")))
	assert.Same(t, acct, stmt.Account())

	// the view is live, not a snapshot
	require.NoError(t, acct.Deposit(dec("5")))
	assert.Len(t, collect(stmt), 3)
	assert.True(t, stmt.Balance().Equal(dec("65")))
}

func TestWithdrawOverLimitReportsCap(t *testing.T) {
	owner := NewIndividualCustomer("Ana Souza", time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), "12345678900", "Rua A")
	acct := NewCheckingAccount(owner, 1, CheckingPolicy{WithdrawalLimit: dec("250")})
	require.NoError(t, acct.Deposit(dec("1000")))

	err := acct.Withdraw(dec("300"))
	require.ErrorIs(t, err, ErrLimitExceeded)

	var lerr *LimitError
	require.ErrorAs(t, err, &lerr)
	assert.True(t, lerr.Limit.Equal(dec("250")), "got %s", lerr.Limit)
}
