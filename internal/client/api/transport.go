package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// authTransport is the outbound interceptor: it attaches the stored access
// token as a bearer credential to every request except those establishing a
// new identity. Login and registration are exempt even when a stale token is
// still around.
type authTransport struct {
	creds CredentialStore
	base  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("X-Request-Id", uuid.NewString())

	if !authExempt(req.URL.Path) && t.creds.HasToken() {
		req.Header.Set("Authorization", "Bearer "+t.creds.Token())
	}

	return t.base.RoundTrip(req)
}

func authExempt(path string) bool {
	return strings.Contains(path, "/login") || strings.Contains(path, "/register")
}
