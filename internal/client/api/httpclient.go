package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/microbank-cli/internal/client/models"
	"github.com/dmitrijs2005/microbank-cli/internal/logging"
)

// HTTPClient is the single outbound request pipeline. All remote calls go
// through do(), which applies the two cross-cutting rules: credentials are
// attached on the way out (see authTransport), and a 401 on the way in
// evicts the session and redirects to login, for every endpoint, with no
// retry.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	creds   CredentialStore
	nav     Navigator
	log     logging.Logger

	// now stamps mapped entities whose timestamps the backend omits.
	now func() time.Time
}

// NewHTTPClient builds the gateway. The timeout bounds every request; there
// is no retry layer on top of it.
func NewHTTPClient(baseURL string, timeout time.Duration, creds CredentialStore, nav Navigator, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	return &HTTPClient{
		baseURL: u,
		http: &http.Client{
			Timeout:   timeout,
			Transport: &authTransport{creds: creds, base: http.DefaultTransport},
		},
		creds: creds,
		nav:   nav,
		log:   log,
		now:   time.Now,
	}, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.evict(ctx, method, path)
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.rejection(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// evict implements the unconditional 401 rule. There is no distinction
// between an expired and an invalid token.
func (c *HTTPClient) evict(ctx context.Context, method, path string) {
	c.log.Warn(ctx, "unauthorized response, evicting session", "method", method, "path", path)
	if err := c.creds.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear session", "error", err)
	}
	if c.nav != nil {
		c.nav.RedirectToLogin()
	}
}

// rejection converts a non-2xx response into *Error, carrying the backend
// message when the body has one.
func (c *HTTPClient) rejection(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	_ = json.Unmarshal(data, &payload)

	return &Error{Status: resp.StatusCode, Message: payload.Message}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (AuthResult, error) {
	var res authResponse
	err := c.do(ctx, http.MethodPost, endpointLogin, nil, loginRequest{Email: email, Password: password}, &res)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{
		Token:        res.Token,
		RefreshToken: res.RefreshToken,
		Identity:     res.toIdentity(c.now()),
	}, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (AuthResult, error) {
	var res authResponse
	err := c.do(ctx, http.MethodPost, endpointRegister, nil, registerRequest{Name: name, Email: email, Password: password}, &res)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{
		Token:        res.Token,
		RefreshToken: res.RefreshToken,
		Identity:     res.toIdentity(c.now()),
	}, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context) (models.Identity, error) {
	var res profileResponse
	if err := c.do(ctx, http.MethodGet, endpointProfile, nil, nil, &res); err != nil {
		return models.Identity{}, err
	}
	return res.toIdentity(c.now()), nil
}

func (c *HTTPClient) GetBalance(ctx context.Context) (models.Account, error) {
	var res accountResponse
	if err := c.do(ctx, http.MethodGet, endpointBalance, nil, nil, &res); err != nil {
		return models.Account{}, err
	}
	return res.toAccount(), nil
}

func (c *HTTPClient) Deposit(ctx context.Context, req TransactionRequest) (models.Account, error) {
	var res accountResponse
	if err := c.do(ctx, http.MethodPost, endpointDeposit, nil, req, &res); err != nil {
		return models.Account{}, err
	}
	return res.toAccount(), nil
}

func (c *HTTPClient) Withdraw(ctx context.Context, req TransactionRequest) (models.Account, error) {
	var res accountResponse
	if err := c.do(ctx, http.MethodPost, endpointWithdraw, nil, req, &res); err != nil {
		return models.Account{}, err
	}
	return res.toAccount(), nil
}

func (c *HTTPClient) GetTransactions(ctx context.Context, page, limit int) ([]models.Transaction, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var res []transactionResponse
	if err := c.do(ctx, http.MethodGet, endpointTransactions, query, nil, &res); err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0, len(res))
	for _, t := range res {
		transactions = append(transactions, t.toTransaction())
	}
	return transactions, nil
}

func (c *HTTPClient) ListClients(ctx context.Context) ([]models.ClientRecord, error) {
	var res []adminClientResponse
	if err := c.do(ctx, http.MethodGet, endpointAdminUsers, nil, nil, &res); err != nil {
		return nil, err
	}

	clients := make([]models.ClientRecord, 0, len(res))
	for _, r := range res {
		clients = append(clients, r.toClientRecord(c.now()))
	}
	return clients, nil
}

func (c *HTTPClient) BlacklistClient(ctx context.Context, clientID string) error {
	return c.do(ctx, http.MethodPost, endpointBlacklist+clientID, nil, nil, nil)
}

func (c *HTTPClient) UnblacklistClient(ctx context.Context, clientID string) error {
	return c.do(ctx, http.MethodPost, endpointUnblacklist+clientID, nil, nil, nil)
}
