package service

import (
	"github.com/Bemnet-Y/job-portal-client/internal/core/ports"
)

// Decision is the outcome of a single navigation check.
type Decision int

const (
	// Render shows the requested target.
	Render Decision = iota
	// ShowLoading defers the decision while the session is restoring.
	ShowLoading
	// RedirectLogin sends an unauthenticated user to the sign-in target.
	RedirectLogin
	// RedirectHome sends an authenticated user without the required role to
	// the default landing target.
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Render:
		return "render"
	case ShowLoading:
		return "loading"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	}
	return "unknown"
}

// RouteGuard decides, per navigational target, whether to render it given
// the live session state and the target's required roles. Decisions are
// evaluated fresh on every call, never cached. Role membership alone gates
// navigation; account status is enforced at login, not here.
type RouteGuard struct {
	session ports.SessionState
}

func NewRouteGuard(session ports.SessionState) *RouteGuard {
	return &RouteGuard{session: session}
}

// Protected checks a target restricted to authenticated users. An empty
// role list admits any authenticated user.
func (g *RouteGuard) Protected(allowedRoles ...string) Decision {
	if g.session.Loading() {
		return ShowLoading
	}
	user := g.session.CurrentUser()
	if user == nil {
		return RedirectLogin
	}
	if len(allowedRoles) == 0 {
		return Render
	}
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}
	if _, ok := allowed[user.Role]; !ok {
		return RedirectHome
	}
	return Render
}

// Public checks a target reserved for unauthenticated users (sign-in,
// registration): an established session is redirected away.
func (g *RouteGuard) Public() Decision {
	if g.session.Loading() {
		return ShowLoading
	}
	if g.session.CurrentUser() == nil {
		return Render
	}
	return RedirectHome
}
