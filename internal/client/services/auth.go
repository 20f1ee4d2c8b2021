// Package services contains the state-owning controllers of the client.
// Each service owns exactly one slice of state and the operations that
// mutate it; other components may read a slice but never write it.
package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/microbank-cli/internal/client/api"
	"github.com/dmitrijs2005/microbank-cli/internal/client/models"
	"github.com/dmitrijs2005/microbank-cli/internal/client/op"
	"github.com/dmitrijs2005/microbank-cli/internal/client/session"
	"github.com/dmitrijs2005/microbank-cli/internal/logging"
)

// AuthService owns the authenticated-identity state machine:
// Anonymous → Authenticating → Authenticated, back to Anonymous on logout or
// gateway eviction. Session data itself lives in the store; this service
// tracks the operation lifecycle and writes through on success.
type AuthService struct {
	client api.Client
	store  *session.Store
	log    logging.Logger

	mu    sync.Mutex
	state op.State
}

func NewAuthService(client api.Client, store *session.Store, log logging.Logger) *AuthService {
	return &AuthService{client: client, store: store, log: log}
}

// Login authenticates with the backend and, on success, persists the token
// pair and mapped identity before the state is marked fulfilled.
func (a *AuthService) Login(ctx context.Context, email, password string) error {
	return op.Run(ctx,
		func() { a.begin() },
		func(ctx context.Context) (api.AuthResult, error) {
			res, err := a.client.Login(ctx, email, password)
			if err != nil {
				return api.AuthResult{}, err
			}
			if err := a.store.Put(ctx, res.Token, res.Identity, res.RefreshToken); err != nil {
				return api.AuthResult{}, err
			}
			return res, nil
		},
		func(res api.AuthResult) {
			a.succeed()
			a.log.Info(ctx, "logged in", "email", res.Identity.Email, "role", res.Identity.Role)
		},
		func(msg string) { a.fail(msg) },
		"Login failed")
}

// Register creates an account. Registration implicitly authenticates, so the
// transition is identical to Login.
func (a *AuthService) Register(ctx context.Context, name, email, password string) error {
	return op.Run(ctx,
		func() { a.begin() },
		func(ctx context.Context) (api.AuthResult, error) {
			res, err := a.client.Register(ctx, name, email, password)
			if err != nil {
				return api.AuthResult{}, err
			}
			if err := a.store.Put(ctx, res.Token, res.Identity, res.RefreshToken); err != nil {
				return api.AuthResult{}, err
			}
			return res, nil
		},
		func(res api.AuthResult) {
			a.succeed()
			a.log.Info(ctx, "registered", "email", res.Identity.Email)
		},
		func(msg string) { a.fail(msg) },
		"Registration failed")
}

// GetProfile is a same-state refresh: it replaces the identity without
// touching tokens or the Authenticated state. A failure only sets the error
// field; eviction is the gateway's job, not this path's.
func (a *AuthService) GetProfile(ctx context.Context) error {
	identity, err := a.client.GetProfile(ctx)
	if err != nil {
		a.fail(op.Message(err, "Failed to get profile"))
		return err
	}

	if err := a.store.SetIdentity(ctx, identity); err != nil {
		a.log.Warn(ctx, "failed to persist refreshed identity", "error", err)
	}
	a.succeed()
	return nil
}

// Logout is local-only and always succeeds: the backend is never called.
// Persistence errors are logged and swallowed so the user is logged out
// regardless.
func (a *AuthService) Logout(ctx context.Context) {
	if err := a.store.Clear(ctx); err != nil {
		a.log.Warn(ctx, "failed to clear persisted session", "error", err)
	}

	a.mu.Lock()
	a.state = op.State{Status: op.StatusIdle}
	a.mu.Unlock()
}

// Session returns the current session snapshot from the store.
func (a *AuthService) Session() models.Session {
	return a.store.Get()
}

// State returns the auth operation state (loading flag and last error).
func (a *AuthService) State() op.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *AuthService) begin() {
	a.mu.Lock()
	a.state.Begin()
	a.mu.Unlock()
}

func (a *AuthService) succeed() {
	a.mu.Lock()
	a.state.Succeed()
	a.mu.Unlock()
}

func (a *AuthService) fail(msg string) {
	a.mu.Lock()
	a.state.Fail(msg)
	a.mu.Unlock()
}
