// Package shell is the interactive menu of the terminal bank. It reads
// commands and their arguments line by line, calls the bank service and
// renders the outcome.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/josh-kwaku/terminal-bank/internal/domain"
	"github.com/josh-kwaku/terminal-bank/internal/middleware"
	"github.com/josh-kwaku/terminal-bank/internal/service"
)

const menu = `
================ MENU ================
[d]	Deposit
[s]	Withdraw
[e]	Statement
[nc]	New account
[lc]	List accounts
[nu]	New customer
[q]	Quit
=> `

type bankService interface {
	RegisterCustomer(ctx context.Context, req service.RegisterCustomerRequest) (*domain.IndividualCustomer, error)
	OpenAccount(ctx context.Context, taxID string) (*domain.CheckingAccount, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	Customer(ctx context.Context, taxID string) (domain.Customer, error)
	Deposit(ctx context.Context, req service.TransactionRequest) (domain.Account, error)
	Withdraw(ctx context.Context, req service.TransactionRequest) (domain.Account, error)
	Statement(ctx context.Context, taxID string, accountNumber int) (domain.Statement, error)
}

type Options struct {
	// NoColor disables coloured success and failure lines.
	NoColor bool
	// ClearScreen clears the terminal before each menu and pauses after each
	// command so its output can be read.
	ClearScreen bool
	// Width of the rule printed between listed accounts.
	Width int
}

type Shell struct {
	bank  bankService
	in    io.Reader
	out   io.Writer
	opts  Options
	lines <-chan string

	commands map[string]middleware.Command
	success  *color.Color
	failure  *color.Color
}

func New(bank bankService, in io.Reader, out io.Writer, opts Options) *Shell {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}

	s := &Shell{
		bank:    bank,
		in:      in,
		out:     out,
		opts:    opts,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed, color.Bold),
	}
	if opts.NoColor {
		s.success.DisableColor()
		s.failure.DisableColor()
	}

	handlers := map[string]middleware.Command{
		"d":  s.deposit,
		"s":  s.withdraw,
		"e":  s.statement,
		"nu": s.newCustomer,
		"nc": s.newAccount,
		"lc": s.listAccounts,
	}
	s.commands = make(map[string]middleware.Command, len(handlers))
	for name, h := range handlers {
		s.commands[name] = middleware.Chain(name, h,
			middleware.Tracing,
			middleware.Logging,
			middleware.Recovery,
		)
	}
	return s
}

// Run loops until the user quits or the input ends, in which case it returns
// nil, or until ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.lines = readLines(ctx, s.in)

	for {
		s.clearScreen()
		choice, err := s.ask(ctx, menu)
		if err != nil {
			return s.stop(err)
		}

		choice = strings.ToLower(choice)
		if choice == "q" {
			s.goodbye()
			return nil
		}

		cmd, ok := s.commands[choice]
		if !ok {
			s.fail("Invalid operation, please select the desired operation again.")
			if err := s.pause(ctx); err != nil {
				return s.stop(err)
			}
			continue
		}

		if err := cmd(ctx); err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return s.stop(err)
			}
			s.renderError(err)
		}
		if err := s.pause(ctx); err != nil {
			return s.stop(err)
		}
	}
}

func (s *Shell) stop(err error) error {
	if errors.Is(err, io.EOF) {
		s.goodbye()
		return nil
	}
	return err
}

func (s *Shell) goodbye() {
	fmt.Fprintln(s.out, "\nThank you for using our system. Goodbye!")
}

func (s *Shell) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

func (s *Shell) pause(ctx context.Context) error {
	if !s.opts.ClearScreen {
		return nil
	}
	_, err := s.ask(ctx, "\nPress Enter to continue...")
	return err
}

func (s *Shell) clearScreen() {
	if s.opts.ClearScreen {
		fmt.Fprint(s.out, "\033[H\033[2J")
	}
}

func (s *Shell) ok(msg string) {
	s.success.Fprintf(s.out, "\n=== %s ===\n", msg)
}

func (s *Shell) fail(msg string) {
	s.failure.Fprintf(s.out, "\n@@@ %s @@@\n", msg)
}

// readLines feeds input lines to the returned channel until the input ends or
// ctx is cancelled. The channel is closed on end of input.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
