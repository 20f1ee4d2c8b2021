// Package guard holds the single role-based access decision used to gate
// navigation. Role checks live here and nowhere else.
package guard

import "github.com/dmitrijs2005/microbank-cli/internal/client/models"

// Decision is the outcome of an access check.
type Decision int

const (
	// Allow lets the navigation proceed.
	Allow Decision = iota
	// RedirectToLogin means no token is present; the caller should send the
	// user to the login entry point and may return them here afterwards.
	RedirectToLogin
	// RedirectToDefault means the user is authenticated but lacks the
	// required role; the caller should fall back to the default view.
	RedirectToDefault
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect-to-login"
	case RedirectToDefault:
		return "redirect-to-default"
	default:
		return "unknown"
	}
}

// Decide is a pure total function over (session, requiredRole). It never
// mutates session state and yields the same decision for the same input.
// Pass requiredRole "" for views any authenticated user may enter.
func Decide(session models.Session, requiredRole models.Role) Decision {
	if !session.IsAuthenticated() {
		return RedirectToLogin
	}

	if requiredRole != "" && (session.Identity == nil || session.Identity.Role != requiredRole) {
		return RedirectToDefault
	}

	return Allow
}
