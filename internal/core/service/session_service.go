package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/Bemnet-Y/job-portal-client/internal/core/domain"
	"github.com/Bemnet-Y/job-portal-client/internal/core/ports"
)

const (
	msgNoToken       = "No token received from server"
	msgNoUser        = "No user data received from server"
	msgLoginFailed   = "Login failed"
	msgSignupFailed  = "Registration failed"
	inactiveTemplate = "Your account is %s. Please contact administrator."
)

// SessionService is the sole owner of authentication state and the only
// component permitted to write the persisted credential. Failure messages
// are the display contract: callers surface them verbatim.
type SessionService struct {
	api   ports.AuthAPI
	store ports.CredentialStore
	log   zerolog.Logger

	mu      sync.RWMutex
	user    *domain.User
	token   string
	loading bool
	lastErr string
}

func NewSessionService(api ports.AuthAPI, store ports.CredentialStore, log zerolog.Logger) *SessionService {
	return &SessionService{api: api, store: store, log: log}
}

// Initialize restores a prior session from the credential store. The token
// is not verified against the backend here; validity is discovered lazily on
// the first authenticated call. A credential that fails to parse is cleared
// entirely and never surfaced as an error.
func (s *SessionService) Initialize() {
	s.setLoading(true)
	defer s.setLoading(false)

	token, rawUser, err := s.store.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("session: credential read failed, starting unauthenticated")
		return
	}
	if token == "" || rawUser == "" {
		return
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.log.Warn().Err(err).Msg("session: stored user snapshot unparseable, clearing credential")
		if clearErr := s.store.Clear(); clearErr != nil {
			s.log.Error().Err(clearErr).Msg("session: failed to clear corrupt credential")
		}
		return
	}

	s.mu.Lock()
	s.user = &user
	s.token = token
	s.mu.Unlock()
	s.log.Debug().Str("email", user.Email).Str("role", user.Role).Msg("session: restored from storage")
}

// Login exchanges credentials for a session. A 2xx reply missing the token
// or the user is treated as a failure, and a non-active account is refused
// outright: no credential is written and no session is established.
func (s *SessionService) Login(ctx context.Context, email, password string) error {
	s.begin()
	defer s.setLoading(false)

	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return s.fail(failureMessage(err, msgLoginFailed))
	}
	if resp.Token == "" {
		return s.fail(msgNoToken)
	}
	if resp.User == nil {
		return s.fail(msgNoUser)
	}
	if resp.User.Status != domain.StatusActive {
		return s.fail(fmt.Sprintf(inactiveTemplate, resp.User.Status))
	}

	if err := s.establish(resp.Token, resp.User); err != nil {
		return s.fail(failureMessage(err, msgLoginFailed))
	}
	s.log.Debug().Str("email", resp.User.Email).Str("role", resp.User.Role).Msg("session: login succeeded")
	return nil
}

// Register submits a signup request. When the backend replies with a token
// and an active user the session is auto-established exactly as in Login;
// otherwise (pending employer review) no session is created and the raw
// response is returned so the caller can present the pending message.
func (s *SessionService) Register(ctx context.Context, req domain.RegistrationRequest) (*domain.AuthResponse, error) {
	s.begin()
	defer s.setLoading(false)

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, s.fail(failureMessage(err, msgSignupFailed))
	}

	if resp.Token != "" && resp.User != nil && resp.User.Status == domain.StatusActive {
		if err := s.establish(resp.Token, resp.User); err != nil {
			return nil, s.fail(failureMessage(err, msgSignupFailed))
		}
		s.log.Debug().Str("email", resp.User.Email).Msg("session: auto-login after registration")
	} else {
		s.log.Debug().Msg("session: registration accepted without auto-login")
	}
	return resp, nil
}

// Logout clears the persisted credential and all in-memory session state.
// It never fails; a storage error is logged and the in-memory state is
// cleared regardless.
func (s *SessionService) Logout() {
	if err := s.store.Clear(); err != nil {
		s.log.Error().Err(err).Msg("session: failed to clear stored credential on logout")
	}
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.lastErr = ""
	s.mu.Unlock()
}

// HandleUnauthorized invalidates the session after any request, from any
// collaborator, came back 401. Wire it to the transport's unauthorized hook.
func (s *SessionService) HandleUnauthorized() {
	if err := s.store.Clear(); err != nil {
		s.log.Error().Err(err).Msg("session: failed to clear stored credential after 401")
	}
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
	s.log.Debug().Msg("session: invalidated after unauthorized response")
}

// ClearError dismisses the last failure message without touching session
// state.
func (s *SessionService) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

// CurrentUser returns a copy of the authenticated identity, or nil.
func (s *SessionService) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	clone := *s.user
	return &clone
}

// Loading reports whether the initial restore or an auth call is in flight.
func (s *SessionService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the last operation's failure message, or "".
func (s *SessionService) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Token returns the bearer credential for outgoing requests, or "".
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// TokenExpiry reports the token's exp claim for display purposes. The claim
// is read without signature verification and is never an enforcement point;
// a missing or garbled claim yields the zero time.
func (s *SessionService) TokenExpiry() time.Time {
	token := s.Token()
	if token == "" {
		return time.Time{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// establish persists the credential and then publishes the in-memory state,
// back to back, so any observer that sees the user also sees the completed
// storage write.
func (s *SessionService) establish(token string, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.store.Save(token, string(raw)); err != nil {
		return err
	}
	s.mu.Lock()
	s.user = user
	s.token = token
	s.mu.Unlock()
	return nil
}

func (s *SessionService) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *SessionService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *SessionService) fail(msg string) error {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
	return errors.New(msg)
}

// failureMessage prefers the backend-provided message over a generic
// fallback. Transport-level detail never reaches the user.
func failureMessage(err error, fallback string) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
