package cli

import (
	"context"

	"github.com/dmitrijs2005/microbank-cli/internal/client/models"
)

// Clients lists the roster. Admin only.
func (a *App) Clients(ctx context.Context) error {
	if !a.guardView(models.RoleAdmin) {
		return nil
	}

	if err := a.admin.ListClients(ctx); err != nil {
		printlnFn(a.admin.State().Err)
		return err
	}

	clients := a.admin.Clients()
	if len(clients) == 0 {
		printlnFn("No clients.")
		return nil
	}

	for _, c := range clients {
		flag := " "
		if c.IsBlacklisted {
			flag = "B"
		}
		printfFn("[%s] %-36s %-20s %s\n", flag, c.ID, c.Username, c.Email)
	}
	return nil
}

// Toggle flips a client's blacklist status: toggle <id>. The inverse action
// is chosen from the flag as the roster currently knows it.
func (a *App) Toggle(ctx context.Context, args []string) error {
	if !a.guardView(models.RoleAdmin) {
		return nil
	}

	if len(args) == 0 {
		printlnFn("Usage: toggle <client-id>")
		return nil
	}
	clientID := args[0]

	if len(a.admin.Clients()) == 0 {
		if err := a.admin.ListClients(ctx); err != nil {
			printlnFn(a.admin.State().Err)
			return err
		}
	}

	var current *models.ClientRecord
	for _, c := range a.admin.Clients() {
		if c.ID == clientID {
			record := c
			current = &record
			break
		}
	}
	if current == nil {
		printlnFn("Unknown client id:", clientID)
		return nil
	}

	if err := a.admin.ToggleBlacklist(ctx, clientID, current.IsBlacklisted); err != nil {
		printlnFn(a.admin.State().Err)
		return err
	}

	if current.IsBlacklisted {
		printlnFn("Client removed from blacklist.")
	} else {
		printlnFn("Client blacklisted.")
	}
	return nil
}
