package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/microbank-cli/internal/client/session"
)

// getStatus renders the prompt decoration: the logged-in user and role, or
// nothing for an anonymous session.
func (a *App) getStatus() string {
	s := a.store.Get()
	if !s.IsAuthenticated() {
		return ""
	}
	if s.Identity == nil {
		return "(authenticated) "
	}
	return fmt.Sprintf("(%s %s) ", s.Identity.Username, s.Identity.Role)
}

// Root restores any persisted session, greets the user, and hands control to
// the REPL.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to MicroBank CLI (type 'help' for commands)")

	if s := a.store.Get(); s.IsAuthenticated() {
		if exp, ok := session.TokenExpiresAt(s.AccessToken); ok {
			a.log.Info(ctx, "restored persisted session", "expires_at", exp)
		} else {
			a.log.Info(ctx, "restored persisted session")
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
