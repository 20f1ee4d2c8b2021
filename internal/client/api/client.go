package api

import (
	"context"

	"github.com/dmitrijs2005/microbank-cli/internal/client/models"
	"github.com/shopspring/decimal"
)

// AuthResult is a mapped login/registration response: a token pair plus the
// identity it belongs to.
type AuthResult struct {
	Token        string
	RefreshToken string
	Identity     models.Identity
}

// TransactionRequest is the write payload for deposits and withdrawals.
type TransactionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// Client is the remote API surface the services are built on.
type Client interface {
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Register(ctx context.Context, name, email, password string) (AuthResult, error)
	GetProfile(ctx context.Context) (models.Identity, error)

	GetBalance(ctx context.Context) (models.Account, error)
	Deposit(ctx context.Context, req TransactionRequest) (models.Account, error)
	Withdraw(ctx context.Context, req TransactionRequest) (models.Account, error)
	GetTransactions(ctx context.Context, page, limit int) ([]models.Transaction, error)

	ListClients(ctx context.Context) ([]models.ClientRecord, error)
	BlacklistClient(ctx context.Context, clientID string) error
	UnblacklistClient(ctx context.Context, clientID string) error
}

// CredentialStore is the part of the session store the gateway needs:
// the token to attach on the way out, and eviction on a 401.
type CredentialStore interface {
	HasToken() bool
	Token() string
	Clear(ctx context.Context) error
}

// Navigator is notified when the gateway evicts the session, so the
// front end can send the user back to the login entry point.
type Navigator interface {
	RedirectToLogin()
}
