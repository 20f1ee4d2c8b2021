package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/microbank-cli/internal/logging"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeCreds struct {
	mu      sync.Mutex
	token   string
	cleared int
}

func (f *fakeCreds) HasToken() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token != ""
}

func (f *fakeCreds) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeCreds) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	f.cleared++
	return nil
}

type fakeNav struct {
	mu        sync.Mutex
	redirects int
}

func (f *fakeNav) RedirectToLogin() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.redirects++
}

func newTestClient(t *testing.T, serverURL string, creds *fakeCreds, nav *fakeNav) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(serverURL, 5*time.Second, creds, nav, logging.NewDefault())
	require.NoError(t, err)
	return c
}

// ---- TESTS ----

func TestBearerAttachment(t *testing.T) {
	headers := map[string]string{}
	var mu sync.Mutex

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		headers[r.URL.Path] = r.Header.Get("Authorization")
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	creds := &fakeCreds{token: "stale-token"}
	c := newTestClient(t, srv.URL, creds, &fakeNav{})

	// Login and registration never carry a token, even a stale one.
	_, err := c.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	_, err = c.Register(context.Background(), "A B", "a@b.com", "secret")
	require.NoError(t, err)

	// Every other endpoint carries the token when one is stored.
	_, err = c.GetBalance(context.Background())
	require.NoError(t, err)

	require.Empty(t, headers[endpointLogin])
	require.Empty(t, headers[endpointRegister])
	require.Equal(t, "Bearer stale-token", headers[endpointBalance])

	// And no token means no header.
	require.NoError(t, creds.Clear(context.Background()))
	_, err = c.GetProfile(context.Background())
	require.NoError(t, err)
	require.Empty(t, headers[endpointProfile])
}

func TestRequestIDAttached(t *testing.T) {
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, &fakeCreds{}, &fakeNav{})
	_, err := c.GetBalance(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, requestID)
}

func TestUnauthorized_EvictsSessionOnAnyEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	calls := []func(c *HTTPClient) error{
		func(c *HTTPClient) error { _, err := c.GetBalance(context.Background()); return err },
		func(c *HTTPClient) error { _, err := c.GetProfile(context.Background()); return err },
		func(c *HTTPClient) error { _, err := c.ListClients(context.Background()); return err },
		func(c *HTTPClient) error { return c.BlacklistClient(context.Background(), "c-1") },
	}

	for _, call := range calls {
		creds := &fakeCreds{token: "tok"}
		nav := &fakeNav{}
		c := newTestClient(t, srv.URL, creds, nav)

		err := call(c)
		require.ErrorIs(t, err, ErrUnauthorized)
		require.Equal(t, 1, creds.cleared)
		require.False(t, creds.HasToken())
		require.Equal(t, 1, nav.redirects)
	}
}

func TestRejection_CarriesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Insufficient funds"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, &fakeCreds{token: "tok"}, &fakeNav{})

	_, err := c.Withdraw(context.Background(), TransactionRequest{Amount: decimal.NewFromInt(100)})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Equal(t, "Insufficient funds", apiErr.Message)
	require.Equal(t, "Insufficient funds", apiErr.Error())
}

func TestRejection_WithoutMessageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`oops`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, &fakeCreds{}, &fakeNav{})

	_, err := c.GetBalance(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Empty(t, apiErr.BackendMessage())
	require.Equal(t, "unexpected status 500", apiErr.Error())
}

func TestNetworkFailure_IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := newTestClient(t, srv.URL, &fakeCreds{}, &fakeNav{})

	_, err := c.GetBalance(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestLogin_MapsAuthResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, endpointLogin, r.URL.Path)
		_, _ = w.Write([]byte(`{
			"token":"tok-1","refreshToken":"refresh-1",
			"clientId":"c-1","email":"admin@bank.io","fullName":"Ada Admin",
			"roles":["CLIENT","ADMIN"],"blacklisted":false
		}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, &fakeCreds{}, &fakeNav{})

	res, err := c.Login(context.Background(), "admin@bank.io", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-1", res.Token)
	require.Equal(t, "refresh-1", res.RefreshToken)
	require.Equal(t, "c-1", res.Identity.ID)
	require.Equal(t, "Ada Admin", res.Identity.Username)
	require.EqualValues(t, "ADMIN", res.Identity.Role)
}

func TestGetBalance_DecodesDecimal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"balance": 1250.75}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, &fakeCreds{token: "tok"}, &fakeNav{})

	account, err := c.GetBalance(context.Background())
	require.NoError(t, err)
	require.True(t, account.Balance.Equal(decimal.RequireFromString("1250.75")))
}

func TestGetTransactions_PagingQuery(t *testing.T) {
	var page, limit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page = r.URL.Query().Get("page")
		limit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(`[
			{"id":"t-1","type":"DEPOSIT","amount":10,"balanceAfter":110,"createdAt":"2024-05-01T10:00:00Z"},
			{"id":"t-2","type":"WITHDRAWAL","amount":5,"balanceAfter":105,"description":"coffee","createdAt":"2024-05-02T10:00:00Z"}
		]`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, &fakeCreds{token: "tok"}, &fakeNav{})

	transactions, err := c.GetTransactions(context.Background(), 2, 25)
	require.NoError(t, err)
	require.Equal(t, "2", page)
	require.Equal(t, "25", limit)
	require.Len(t, transactions, 2)
	require.EqualValues(t, "WITHDRAWAL", transactions[1].Type)
	require.Equal(t, "coffee", transactions[1].Description)
}

func TestBlacklistClient_TargetsRecord(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, &fakeCreds{token: "tok"}, &fakeNav{})

	require.NoError(t, c.BlacklistClient(context.Background(), "c-42"))
	require.Equal(t, "/api/admin/blacklist/c-42", path)

	require.NoError(t, c.UnblacklistClient(context.Background(), "c-42"))
	require.Equal(t, "/api/admin/unblacklist/c-42", path)
}
