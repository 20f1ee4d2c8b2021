package models

// Session is the client's record of whether, and as whom, the user is
// authenticated. The access token is the single authority: a session with
// an identity but no token is invalid and is never constructed.
type Session struct {
	AccessToken  string
	RefreshToken string
	Identity     *Identity
}

// IsAuthenticated reports whether a token is present. Identity may lag the
// backend but never exists without a token.
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != ""
}
