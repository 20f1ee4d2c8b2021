package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/microbank-cli/internal/client/api"
	"github.com/dmitrijs2005/microbank-cli/internal/client/models"
	"github.com/dmitrijs2005/microbank-cli/internal/client/op"
	"github.com/dmitrijs2005/microbank-cli/internal/logging"
	"github.com/shopspring/decimal"
)

// Paging defaults for the transaction list.
const (
	DefaultTransactionsPage  = 1
	DefaultTransactionsLimit = 10
)

// BankingService owns the account and transaction-list slice. Two
// independent operation states keep a list refresh from visually blocking a
// pending deposit and vice versa: state covers balance/list fetches,
// txState covers deposits and withdrawals.
//
// The account value is always replaced with what the server returns; no
// arithmetic on money happens on the client. Overlapping dispatches of the
// same operation are not de-duplicated: whichever resolves last wins.
type BankingService struct {
	client api.Client
	log    logging.Logger

	mu           sync.Mutex
	account      *models.Account
	transactions []models.Transaction
	state        op.State
	txState      op.State
}

func NewBankingService(client api.Client, log logging.Logger) *BankingService {
	return &BankingService{client: client, log: log}
}

// FetchBalance replaces the account wholesale with the server value.
func (b *BankingService) FetchBalance(ctx context.Context) error {
	return op.Run(ctx,
		func() { b.beginState(&b.state) },
		func(ctx context.Context) (models.Account, error) {
			return b.client.GetBalance(ctx)
		},
		func(account models.Account) {
			b.mu.Lock()
			b.account = &account
			b.state.Succeed()
			b.mu.Unlock()
		},
		func(msg string) { b.failState(&b.state, msg) },
		"Failed to get balance")
}

// FetchTransactions replaces the list wholesale; there is no incremental
// merge. Non-positive page or limit fall back to the defaults.
func (b *BankingService) FetchTransactions(ctx context.Context, page, limit int) error {
	if page <= 0 {
		page = DefaultTransactionsPage
	}
	if limit <= 0 {
		limit = DefaultTransactionsLimit
	}

	return op.Run(ctx,
		func() { b.beginState(&b.state) },
		func(ctx context.Context) ([]models.Transaction, error) {
			return b.client.GetTransactions(ctx, page, limit)
		},
		func(transactions []models.Transaction) {
			b.mu.Lock()
			b.transactions = transactions
			b.state.Succeed()
			b.mu.Unlock()
		},
		func(msg string) { b.failState(&b.state, msg) },
		"Failed to get transactions")
}

// Deposit submits a deposit and adopts the post-operation balance returned
// by the server.
func (b *BankingService) Deposit(ctx context.Context, amount decimal.Decimal, description string) error {
	return b.submit(ctx, b.client.Deposit, amount, description, "Deposit failed")
}

// Withdraw submits a withdrawal. The overdraft pre-check is advisory and
// belongs to the form layer; a rejection for insufficient funds arrives here
// as an ordinary failed operation and leaves the balance untouched.
func (b *BankingService) Withdraw(ctx context.Context, amount decimal.Decimal, description string) error {
	return b.submit(ctx, b.client.Withdraw, amount, description, "Withdrawal failed")
}

func (b *BankingService) submit(ctx context.Context, call func(context.Context, api.TransactionRequest) (models.Account, error), amount decimal.Decimal, description, fallback string) error {
	return op.Run(ctx,
		func() { b.beginState(&b.txState) },
		func(ctx context.Context) (models.Account, error) {
			return call(ctx, api.TransactionRequest{Amount: amount, Description: description})
		},
		func(account models.Account) {
			b.mu.Lock()
			b.account = &account
			b.txState.Succeed()
			b.mu.Unlock()
		},
		func(msg string) { b.failState(&b.txState, msg) },
		fallback)
}

// Account returns the last fetched account, if any.
func (b *BankingService) Account() (models.Account, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.account == nil {
		return models.Account{}, false
	}
	return *b.account, true
}

// Transactions returns a copy of the current list.
func (b *BankingService) Transactions() []models.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.Transaction, len(b.transactions))
	copy(out, b.transactions)
	return out
}

// State covers balance and transaction-list fetches.
func (b *BankingService) State() op.State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// TransactionState covers deposits and withdrawals.
func (b *BankingService) TransactionState() op.State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.txState
}

func (b *BankingService) beginState(st *op.State) {
	b.mu.Lock()
	st.Begin()
	b.mu.Unlock()
}

func (b *BankingService) failState(st *op.State, msg string) {
	b.mu.Lock()
	st.Fail(msg)
	b.mu.Unlock()
}
