package api

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/microbank-cli/internal/client/models"
	"github.com/shopspring/decimal"
)

// Remote endpoints, one constant per operation.
const (
	endpointLogin        = "/auth/login"
	endpointRegister     = "/api/auth/register"
	endpointProfile      = "/api/me"
	endpointBalance      = "/api/accounts/balance"
	endpointDeposit      = "/api/accounts/deposit"
	endpointWithdraw     = "/api/accounts/withdraw"
	endpointTransactions = "/api/accounts/transactions"
	endpointAdminUsers   = "/api/admin/users"
	endpointBlacklist    = "/api/admin/blacklist/"
	endpointUnblacklist  = "/api/admin/unblacklist/"
)

// The backend is not consistent about field naming across its services.
// Every such inconsistency is resolved here, in the DTO layer, and nowhere
// else: id vs clientId, the roles collection vs a single role, the bare
// "blacklisted" flag.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse covers both login and registration. Registration implicitly
// authenticates, so the shapes are identical.
type authResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	profileResponse
}

type profileResponse struct {
	ClientID    string   `json:"clientId"`
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	FullName    string   `json:"fullName"`
	Roles       []string `json:"roles"`
	Blacklisted bool     `json:"blacklisted"`
}

// toIdentity normalizes the backend profile shape. The primary key arrives
// as clientId or id depending on the service; when both are absent the id is
// left empty rather than failing the operation, so the UI can still show a
// degraded session.
func (p profileResponse) toIdentity(now time.Time) models.Identity {
	id := p.ClientID
	if id == "" {
		id = p.ID
	}

	username := p.FullName
	if username == "" {
		username = emailLocalPart(p.Email)
	}

	role := models.RoleClient
	for _, r := range p.Roles {
		if r == string(models.RoleAdmin) {
			role = models.RoleAdmin
		}
	}

	return models.Identity{
		ID:            id,
		Username:      username,
		Email:         p.Email,
		Role:          role,
		IsBlacklisted: p.Blacklisted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

type accountResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

func (a accountResponse) toAccount() models.Account {
	return models.Account{Balance: a.Balance}
}

type transactionResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func (t transactionResponse) toTransaction() models.Transaction {
	return models.Transaction{
		ID:           t.ID,
		Type:         models.TransactionType(t.Type),
		Amount:       t.Amount,
		BalanceAfter: t.BalanceAfter,
		Description:  t.Description,
		CreatedAt:    t.CreatedAt,
	}
}

// adminClientResponse is the roster row shape. The roster never includes
// admins and carries no display name.
type adminClientResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Blacklisted bool   `json:"blacklisted"`
}

func (c adminClientResponse) toClientRecord(now time.Time) models.ClientRecord {
	return models.ClientRecord{
		ID:            c.ID,
		Username:      emailLocalPart(c.Email),
		Email:         c.Email,
		Role:          models.RoleClient,
		IsBlacklisted: c.Blacklisted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func emailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
