package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0001", cfg.BranchCode)
	assert.Equal(t, 3, cfg.MaxWithdrawals)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.ClearScreen)

	policy := cfg.CheckingPolicy()
	assert.Equal(t, "0001", policy.Branch)
	assert.True(t, policy.WithdrawalLimit.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 3, policy.MaxWithdrawals)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BRANCH_CODE", "0042")
	t.Setenv("WITHDRAWAL_LIMIT", "1250.50")
	t.Setenv("MAX_WITHDRAWALS", "5")
	t.Setenv("NO_COLOR", "true")

	cfg, err := Load()
	require.NoError(t, err)

	policy := cfg.CheckingPolicy()
	assert.Equal(t, "0042", policy.Branch)
	assert.True(t, policy.WithdrawalLimit.Equal(decimal.RequireFromString("1250.5")))
	assert.Equal(t, 5, policy.MaxWithdrawals)
	assert.True(t, cfg.NoColor)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "limit not a number", key: "WITHDRAWAL_LIMIT", value: "lots"},
		{name: "limit zero", key: "WITHDRAWAL_LIMIT", value: "0"},
		{name: "limit negative", key: "WITHDRAWAL_LIMIT", value: "-10"},
		{name: "quota zero", key: "MAX_WITHDRAWALS", value: "0"},
		{name: "quota not an int", key: "MAX_WITHDRAWALS", value: "three"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config.Load")
		})
	}
}
