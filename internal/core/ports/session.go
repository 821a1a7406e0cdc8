package ports

import "github.com/Bemnet-Y/job-portal-client/internal/core/domain"

// SessionState is the read-only session view navigation guards consume.
type SessionState interface {
	// CurrentUser returns the authenticated identity, or nil.
	CurrentUser() *domain.User
	// Loading reports whether the initial restore or an auth call is in
	// flight.
	Loading() bool
}
