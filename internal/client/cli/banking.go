package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/dmitrijs2005/microbank-cli/internal/client/validation"
	"github.com/shopspring/decimal"
)

func formatCurrency(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Balance fetches and prints the account balance.
func (a *App) Balance(ctx context.Context) error {
	if !a.guardView("") {
		return nil
	}

	if err := a.banking.FetchBalance(ctx); err != nil {
		printlnFn(a.banking.State().Err)
		return err
	}

	if account, ok := a.banking.Account(); ok {
		printlnFn("Balance:", formatCurrency(account.Balance))
	}
	return nil
}

// Deposit prompts for an amount and optional description and submits a
// deposit. The printed balance is whatever the server returned.
func (a *App) Deposit(ctx context.Context) error {
	return a.transaction(ctx, a.banking.Deposit, false)
}

// Withdraw is Deposit's counterpart, with the advisory overdraft pre-check
// against the last known balance. The check is client-side only: a stale
// balance lets the request through and the server's rejection is shown like
// any other failed operation.
func (a *App) Withdraw(ctx context.Context) error {
	return a.transaction(ctx, a.banking.Withdraw, true)
}

func (a *App) transaction(ctx context.Context, submit func(context.Context, decimal.Decimal, string) error, precheck bool) error {
	if !a.guardView("") {
		return nil
	}

	// Blacklisted accounts keep their session but cannot transact;
	// this is a presentation branch, not an access decision.
	if s := a.auth.Session(); s.Identity != nil && s.Identity.IsBlacklisted {
		printlnFn("Your account is blacklisted. Transactions are disabled.")
		return nil
	}

	input, err := getSimpleText(a.reader, "Enter amount", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := validation.ParseAmount(input)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if precheck {
		if _, ok := a.banking.Account(); !ok {
			// No balance seen yet this session; fetch one for the pre-check.
			_ = a.banking.FetchBalance(ctx)
		}
		if account, ok := a.banking.Account(); ok {
			if err := validation.CheckWithdrawal(amount, account.Balance); err != nil {
				printlnFn(err.Error())
				return err
			}
		}
	}

	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	if err := submit(ctx, amount, description); err != nil {
		printlnFn(a.banking.TransactionState().Err)
		return err
	}

	if account, ok := a.banking.Account(); ok {
		printlnFn("Done. New balance:", formatCurrency(account.Balance))
	}
	return nil
}

// History fetches and prints a page of transactions. Usage:
// history [page [limit]].
func (a *App) History(ctx context.Context, args []string) error {
	if !a.guardView("") {
		return nil
	}

	page, limit := 0, 0
	if len(args) > 0 {
		page, _ = strconv.Atoi(args[0])
	}
	if len(args) > 1 {
		limit, _ = strconv.Atoi(args[1])
	}

	if err := a.banking.FetchTransactions(ctx, page, limit); err != nil {
		printlnFn(a.banking.State().Err)
		return err
	}

	transactions := a.banking.Transactions()
	if len(transactions) == 0 {
		printlnFn("No transactions.")
		return nil
	}

	for _, t := range transactions {
		desc := t.Description
		if desc != "" {
			desc = " " + desc
		}
		printfFn("%s  %-10s %12s  balance %s%s\n",
			t.CreatedAt.Format("2006-01-02 15:04"),
			t.Type,
			formatCurrency(t.Amount),
			formatCurrency(t.BalanceAfter),
			desc)
	}
	return nil
}
