package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/terminal-bank/internal/domain"
)

type Config struct {
	BranchCode      string `env:"BRANCH_CODE" envDefault:"0001"`
	WithdrawalLimit string `env:"WITHDRAWAL_LIMIT" envDefault:"500.00"`
	MaxWithdrawals  int    `env:"MAX_WITHDRAWALS" envDefault:"3"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	AppEnv   string `env:"APP_ENV" envDefault:"production"`
	LogFile  string `env:"LOG_FILE"`

	NoColor     bool `env:"NO_COLOR" envDefault:"false"`
	ClearScreen bool `env:"CLEAR_SCREEN" envDefault:"true"`

	withdrawalLimit decimal.Decimal
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	limit, err := decimal.NewFromString(cfg.WithdrawalLimit)
	if err != nil {
		return nil, fmt.Errorf("config.Load: WITHDRAWAL_LIMIT: %w", err)
	}
	if !limit.IsPositive() {
		return nil, fmt.Errorf("config.Load: WITHDRAWAL_LIMIT must be greater than zero, got %s", cfg.WithdrawalLimit)
	}
	if cfg.MaxWithdrawals < 1 {
		return nil, fmt.Errorf("config.Load: MAX_WITHDRAWALS must be at least 1, got %d", cfg.MaxWithdrawals)
	}
	cfg.withdrawalLimit = limit

	return &cfg, nil
}

// CheckingPolicy returns the rules new checking accounts are opened with.
func (c *Config) CheckingPolicy() domain.CheckingPolicy {
	return domain.CheckingPolicy{
		Branch:          c.BranchCode,
		WithdrawalLimit: c.withdrawalLimit,
		MaxWithdrawals:  c.MaxWithdrawals,
	}
}
