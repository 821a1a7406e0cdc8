package cli

import (
	"errors"
	"fmt"

	"github.com/Bemnet-Y/job-portal-client/internal/core/domain"
	"github.com/Bemnet-Y/job-portal-client/internal/core/service"
)

// requireRoles translates a protected-target guard decision into command
// behaviour. An empty role list admits any signed-in user.
func (a *app) requireRoles(roles ...string) error {
	switch a.guard.Protected(roles...) {
	case service.Render:
		return nil
	case service.ShowLoading:
		return errors.New("session is still loading, try again")
	case service.RedirectLogin:
		return errors.New("you are not signed in; run `jobctl login` first")
	default: // RedirectHome
		return errors.New("this view is not available for your role; run `jobctl jobs list` instead")
	}
}

// requireAnonymous guards public-only targets (login, register): an
// established session is sent back to the landing view.
func (a *app) requireAnonymous() error {
	switch a.guard.Public() {
	case service.Render:
		return nil
	case service.ShowLoading:
		return errors.New("session is still loading, try again")
	default: // RedirectHome
		user := a.session.CurrentUser()
		return fmt.Errorf("already signed in as %s; run `jobctl logout` first", user.Email)
	}
}

// backendErr rewrites an expired-session failure into a sign-in hint; the
// session itself has already been invalidated by the transport hook.
func (a *app) backendErr(err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return errors.New("your session has expired; run `jobctl login` to sign in again")
	}
	return err
}
