package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/dmitrijs2005/microbank-cli/internal/client/api"
	"github.com/dmitrijs2005/microbank-cli/internal/client/config"
	"github.com/dmitrijs2005/microbank-cli/internal/client/services"
	"github.com/dmitrijs2005/microbank-cli/internal/client/session"
	"github.com/dmitrijs2005/microbank-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the client together: local database, session store, request
// gateway, and the three services. It also acts as the gateway's Navigator,
// turning a forced eviction into a prompt back to login.
type App struct {
	config  *config.Config
	db      *sql.DB
	store   *session.Store
	auth    *services.AuthService
	banking *services.BankingService
	admin   *services.AdminService
	reader  *bufio.Reader
	log     logging.Logger
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewDefault()

	db, err := session.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	store, err := session.Open(ctx, db, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := &App{
		config: c,
		db:     db,
		store:  store,
		reader: bufio.NewReader(os.Stdin),
		log:    log,
	}

	gateway, err := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, store, app, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app.auth = services.NewAuthService(gateway, store, log)
	app.banking = services.NewBankingService(gateway, log)
	app.admin = services.NewAdminService(gateway, log)

	return app, nil
}

// RedirectToLogin implements api.Navigator. By the time it runs the session
// is already cleared, so the prompt falls back to the anonymous command set.
func (a *App) RedirectToLogin() {
	printlnFn("Session expired. Please login again.")
}

func (a *App) isLoggedIn() bool {
	return a.store.HasToken()
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() error {
	return a.db.Close()
}
