package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/josh-kwaku/terminal-bank/internal/config"
	"github.com/josh-kwaku/terminal-bank/internal/logging"
	"github.com/josh-kwaku/terminal-bank/internal/repository"
	"github.com/josh-kwaku/terminal-bank/internal/service"
	"github.com/josh-kwaku/terminal-bank/internal/shell"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logOut, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		slog.Error("failed to open log file", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	logging.Init("terminal-bank", cfg.LogLevel, cfg.AppEnv, logOut)

	bank := service.NewBankService(
		repository.NewCustomerRepository(),
		repository.NewAccountRepository(),
		cfg.CheckingPolicy(),
	)

	interactive, width := shell.DetectTerminal(os.Stdout)
	sh := shell.New(bank, os.Stdin, os.Stdout, shell.Options{
		NoColor:     cfg.NoColor || !interactive,
		ClearScreen: cfg.ClearScreen && interactive,
		Width:       width,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("session started", "branch", cfg.BranchCode)
	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("session ended with error", "error", err)
		closeLog()
		os.Exit(1)
	}
	slog.Info("session ended")
}

func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("openLog: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
