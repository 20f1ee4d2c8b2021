package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/microbank-cli/internal/client/api"
	"github.com/dmitrijs2005/microbank-cli/internal/client/models"
	"github.com/dmitrijs2005/microbank-cli/internal/client/op"
	"github.com/dmitrijs2005/microbank-cli/internal/logging"
)

// AdminService owns the client roster and the blacklist toggle.
type AdminService struct {
	client api.Client
	log    logging.Logger

	mu      sync.Mutex
	clients []models.ClientRecord
	state   op.State
}

func NewAdminService(client api.Client, log logging.Logger) *AdminService {
	return &AdminService{client: client, log: log}
}

// ListClients replaces the roster wholesale with the mapped backend result.
func (a *AdminService) ListClients(ctx context.Context) error {
	return op.Run(ctx,
		func() {
			a.mu.Lock()
			a.state.Begin()
			a.mu.Unlock()
		},
		func(ctx context.Context) ([]models.ClientRecord, error) {
			return a.client.ListClients(ctx)
		},
		func(clients []models.ClientRecord) {
			a.mu.Lock()
			a.clients = clients
			a.state.Succeed()
			a.mu.Unlock()
		},
		func(msg string) {
			a.mu.Lock()
			a.state.Fail(msg)
			a.mu.Unlock()
		},
		"Failed to get clients")
}

// ToggleBlacklist issues the inverse action of the current flag and, only
// after the server acknowledges, flips the flag on the matching roster
// record. A record that has meanwhile disappeared from the roster is a
// silent no-op. The toggle has no pending phase: a failure sets the error
// field and nothing else changes.
func (a *AdminService) ToggleBlacklist(ctx context.Context, clientID string, currentlyBlacklisted bool) error {
	var err error
	if currentlyBlacklisted {
		err = a.client.UnblacklistClient(ctx, clientID)
	} else {
		err = a.client.BlacklistClient(ctx, clientID)
	}

	if err != nil {
		a.mu.Lock()
		a.state.Fail(op.Message(err, "Failed to update blacklist status"))
		a.mu.Unlock()
		return err
	}

	a.mu.Lock()
	for i := range a.clients {
		if a.clients[i].ID == clientID {
			a.clients[i].IsBlacklisted = !currentlyBlacklisted
			break
		}
	}
	a.state.Succeed()
	a.mu.Unlock()

	a.log.Info(ctx, "blacklist toggled", "client_id", clientID, "blacklisted", !currentlyBlacklisted)
	return nil
}

// Clients returns a copy of the current roster.
func (a *AdminService) Clients() []models.ClientRecord {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]models.ClientRecord, len(a.clients))
	copy(out, a.clients)
	return out
}

func (a *AdminService) State() op.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}
