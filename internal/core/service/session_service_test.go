package service

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/Bemnet-Y/job-portal-client/internal/core/domain"
)

type stubAuthAPI struct {
	loginFn    func(ctx context.Context, email, password string) (*domain.AuthResponse, error)
	registerFn func(ctx context.Context, req domain.RegistrationRequest) (*domain.AuthResponse, error)
}

func (s *stubAuthAPI) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthAPI) Register(ctx context.Context, req domain.RegistrationRequest) (*domain.AuthResponse, error) {
	return s.registerFn(ctx, req)
}

type memStore struct {
	token, user string
	saveErr     error
	saves       int
	clears      int
}

func (m *memStore) Save(token, user string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.token, m.user = token, user
	m.saves++
	return nil
}

func (m *memStore) Load() (string, string, error) {
	return m.token, m.user, nil
}

func (m *memStore) Clear() error {
	m.token, m.user = "", ""
	m.clears++
	return nil
}

func activeUser() *domain.User {
	return &domain.User{
		ID:     "u1",
		Name:   "Alice",
		Email:  "alice@example.com",
		Role:   domain.RoleJobSeeker,
		Status: domain.StatusActive,
	}
}

func newService(api *stubAuthAPI, store *memStore) *SessionService {
	return NewSessionService(api, store, zerolog.Nop())
}

func TestSessionService_Initialize_RestoresSession(t *testing.T) {
	user := activeUser()
	raw, _ := json.Marshal(user)
	store := &memStore{token: "tok123", user: string(raw)}
	svc := newService(&stubAuthAPI{}, store)

	svc.Initialize()

	got := svc.CurrentUser()
	if got == nil {
		t.Fatalf("expected restored user, got nil")
	}
	if !reflect.DeepEqual(got, user) {
		t.Fatalf("restored user mismatch: got %+v want %+v", got, user)
	}
	if svc.Token() != "tok123" {
		t.Fatalf("expected token restored, got %q", svc.Token())
	}
	if svc.Loading() {
		t.Fatalf("loading must be false after initialization")
	}
}

func TestSessionService_Initialize_Idempotent(t *testing.T) {
	user := activeUser()
	raw, _ := json.Marshal(user)
	store := &memStore{token: "tok123", user: string(raw)}

	first := newService(&stubAuthAPI{}, store)
	first.Initialize()
	second := newService(&stubAuthAPI{}, store)
	second.Initialize()

	if !reflect.DeepEqual(first.CurrentUser(), second.CurrentUser()) {
		t.Fatalf("two initializations from the same store must yield the same user")
	}
}

func TestSessionService_Initialize_CorruptSnapshotSelfHeals(t *testing.T) {
	store := &memStore{token: "tok123", user: "{not json"}
	svc := newService(&stubAuthAPI{}, store)

	svc.Initialize()

	if svc.CurrentUser() != nil {
		t.Fatalf("expected no user after corrupt snapshot")
	}
	if store.token != "" || store.user != "" {
		t.Fatalf("expected both slots cleared, got token=%q user=%q", store.token, store.user)
	}
	if svc.LastError() != "" {
		t.Fatalf("corruption must self-heal silently, got error %q", svc.LastError())
	}
}

func TestSessionService_Initialize_AbsentCredential(t *testing.T) {
	svc := newService(&stubAuthAPI{}, &memStore{})

	svc.Initialize()

	if svc.CurrentUser() != nil {
		t.Fatalf("expected unauthenticated state")
	}
	if svc.Loading() {
		t.Fatalf("loading must be false in unauthenticated steady state")
	}
}

func TestSessionService_Login_Success(t *testing.T) {
	user := activeUser()
	store := &memStore{}
	api := &stubAuthAPI{
		loginFn: func(_ context.Context, email, password string) (*domain.AuthResponse, error) {
			if email != "alice@example.com" || password != "pw" {
				t.Fatalf("unexpected credentials: %s/%s", email, password)
			}
			return &domain.AuthResponse{Token: "tok123", User: user}, nil
		},
	}
	svc := newService(api, store)

	if err := svc.Login(context.Background(), "alice@example.com", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if store.token != "tok123" || store.user == "" {
		t.Fatalf("expected both slots persisted, got token=%q user=%q", store.token, store.user)
	}
	var persisted domain.User
	if err := json.Unmarshal([]byte(store.user), &persisted); err != nil {
		t.Fatalf("persisted snapshot not parseable: %v", err)
	}
	if !reflect.DeepEqual(&persisted, user) {
		t.Fatalf("persisted user mismatch: got %+v want %+v", persisted, user)
	}
	if got := svc.CurrentUser(); !reflect.DeepEqual(got, user) {
		t.Fatalf("current user mismatch: got %+v want %+v", got, user)
	}
	if svc.LastError() != "" {
		t.Fatalf("unexpected last error %q", svc.LastError())
	}
	if svc.Loading() {
		t.Fatalf("loading must be false after login")
	}
}

func TestSessionService_Login_LoadingDuringCall(t *testing.T) {
	store := &memStore{}
	var svc *SessionService
	api := &stubAuthAPI{
		loginFn: func(_ context.Context, _, _ string) (*domain.AuthResponse, error) {
			if !svc.Loading() {
				t.Fatalf("loading must be true while the credential exchange is in flight")
			}
			return &domain.AuthResponse{Token: "t", User: activeUser()}, nil
		},
	}
	svc = newService(api, store)

	if err := svc.Login(context.Background(), "a@b.c", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
}

func TestSessionService_Login_RefusesInactiveStatus(t *testing.T) {
	for _, status := range []string{domain.StatusPending, domain.StatusSuspended} {
		t.Run(status, func(t *testing.T) {
			user := activeUser()
			user.Status = status
			store := &memStore{}
			api := &stubAuthAPI{
				loginFn: func(_ context.Context, _, _ string) (*domain.AuthResponse, error) {
					return &domain.AuthResponse{Token: "tok", User: user}, nil
				},
			}
			svc := newService(api, store)

			err := svc.Login(context.Background(), "e@x.com", "pw")
			if err == nil {
				t.Fatalf("expected login refusal for %s account", status)
			}
			want := "Your account is " + status + ". Please contact administrator."
			if err.Error() != want {
				t.Fatalf("got message %q, want %q", err.Error(), want)
			}
			if svc.LastError() != want {
				t.Fatalf("last error %q, want %q", svc.LastError(), want)
			}
			if store.saves != 0 || store.token != "" || store.user != "" {
				t.Fatalf("no credential may be written for an inactive account")
			}
			if svc.CurrentUser() != nil {
				t.Fatalf("no session may be established for an inactive account")
			}
		})
	}
}

func TestSessionService_Login_MissingToken(t *testing.T) {
	api := &stubAuthAPI{
		loginFn: func(_ context.Context, _, _ string) (*domain.AuthResponse, error) {
			return &domain.AuthResponse{User: activeUser()}, nil
		},
	}
	svc := newService(api, &memStore{})

	err := svc.Login(context.Background(), "e@x.com", "pw")
	if err == nil || err.Error() != "No token received from server" {
		t.Fatalf("got %v, want missing-token failure", err)
	}
	if svc.CurrentUser() != nil {
		t.Fatalf("no session on protocol violation")
	}
}

func TestSessionService_Login_MissingUser(t *testing.T) {
	api := &stubAuthAPI{
		loginFn: func(_ context.Context, _, _ string) (*domain.AuthResponse, error) {
			return &domain.AuthResponse{Token: "tok"}, nil
		},
	}
	svc := newService(api, &memStore{})

	err := svc.Login(context.Background(), "e@x.com", "pw")
	if err == nil || err.Error() != "No user data received from server" {
		t.Fatalf("got %v, want missing-user failure", err)
	}
}

func TestSessionService_Login_BackendMessagePreferred(t *testing.T) {
	api := &stubAuthAPI{
		loginFn: func(_ context.Context, _, _ string) (*domain.AuthResponse, error) {
			return nil, &domain.APIError{StatusCode: 400, Message: "Invalid credentials"}
		},
	}
	svc := newService(api, &memStore{})

	err := svc.Login(context.Background(), "e@x.com", "pw")
	if err == nil || err.Error() != "Invalid credentials" {
		t.Fatalf("got %v, want backend message", err)
	}
}

func TestSessionService_Login_TransportFallbackMessage(t *testing.T) {
	api := &stubAuthAPI{
		loginFn: func(_ context.Context, _, _ string) (*domain.AuthResponse, error) {
			return nil, errors.New("dial tcp 10.0.0.1:443: connection refused")
		},
	}
	svc := newService(api, &memStore{})

	err := svc.Login(context.Background(), "e@x.com", "pw")
	if err == nil || err.Error() != "Login failed" {
		t.Fatalf("got %v, want generic fallback", err)
	}
}

func TestSessionService_Login_ClearsPreviousError(t *testing.T) {
	calls := 0
	api := &stubAuthAPI{
		loginFn: func(_ context.Context, _, _ string) (*domain.AuthResponse, error) {
			calls++
			if calls == 1 {
				return nil, &domain.APIError{StatusCode: 500, Message: "boom"}
			}
			return &domain.AuthResponse{Token: "tok", User: activeUser()}, nil
		},
	}
	svc := newService(api, &memStore{})

	_ = svc.Login(context.Background(), "e@x.com", "pw")
	if svc.LastError() != "boom" {
		t.Fatalf("expected first failure recorded, got %q", svc.LastError())
	}
	if err := svc.Login(context.Background(), "e@x.com", "pw"); err != nil {
		t.Fatalf("second login failed: %v", err)
	}
	if svc.LastError() != "" {
		t.Fatalf("successful operation start must clear the previous error, got %q", svc.LastError())
	}
}

func TestSessionService_Register_ActiveAutoLogin(t *testing.T) {
	user := activeUser()
	store := &memStore{}
	api := &stubAuthAPI{
		registerFn: func(_ context.Context, req domain.RegistrationRequest) (*domain.AuthResponse, error) {
			if req.Role() != domain.RoleJobSeeker {
				t.Fatalf("unexpected role %q", req.Role())
			}
			return &domain.AuthResponse{Token: "tok", User: user}, nil
		},
	}
	svc := newService(api, store)

	resp, err := svc.Register(context.Background(), domain.JobSeekerRegistration{
		Name: "Alice", Email: "alice@example.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if resp.Token != "tok" {
		t.Fatalf("expected raw response returned")
	}
	if svc.CurrentUser() == nil {
		t.Fatalf("active registration must auto-establish the session")
	}
	if store.token != "tok" {
		t.Fatalf("credential not persisted")
	}
}

func TestSessionService_Register_PendingNoSession(t *testing.T) {
	pending := activeUser()
	pending.Role = domain.RoleEmployer
	pending.Status = domain.StatusPending
	store := &memStore{}
	api := &stubAuthAPI{
		registerFn: func(_ context.Context, _ domain.RegistrationRequest) (*domain.AuthResponse, error) {
			return &domain.AuthResponse{User: pending, Message: "Registration received, awaiting license review"}, nil
		},
	}
	svc := newService(api, store)

	resp, err := svc.Register(context.Background(), domain.EmployerRegistration{
		Name: "Bob", Email: "bob@corp.example", Password: "secret1",
		CompanyName: "Corp", BusinessLicense: "ZGF0YQ==",
	})
	if err != nil {
		t.Fatalf("pending registration is a success, got error %v", err)
	}
	if resp.Message == "" {
		t.Fatalf("raw response must reach the caller")
	}
	if svc.CurrentUser() != nil {
		t.Fatalf("no session may be established for a pending registration")
	}
	if store.saves != 0 {
		t.Fatalf("no credential may be persisted for a pending registration")
	}
	if svc.LastError() != "" {
		t.Fatalf("pending registration is not a failure, got %q", svc.LastError())
	}
}

func TestSessionService_Register_FailureFallbackMessage(t *testing.T) {
	api := &stubAuthAPI{
		registerFn: func(_ context.Context, _ domain.RegistrationRequest) (*domain.AuthResponse, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := newService(api, &memStore{})

	_, err := svc.Register(context.Background(), domain.JobSeekerRegistration{
		Name: "Alice", Email: "alice@example.com", Password: "secret1",
	})
	if err == nil || err.Error() != "Registration failed" {
		t.Fatalf("got %v, want generic fallback", err)
	}
	if svc.LastError() != "Registration failed" {
		t.Fatalf("last error %q", svc.LastError())
	}
}

func TestSessionService_Logout_ClearsEverything(t *testing.T) {
	store := &memStore{}
	api := &stubAuthAPI{
		loginFn: func(_ context.Context, _, _ string) (*domain.AuthResponse, error) {
			return nil, &domain.APIError{StatusCode: 500, Message: "boom"}
		},
	}
	svc := newService(api, store)

	raw, _ := json.Marshal(activeUser())
	store.token, store.user = "tok", string(raw)
	svc.Initialize()
	_ = svc.Login(context.Background(), "e@x.com", "pw")

	svc.Logout()

	if store.token != "" || store.user != "" {
		t.Fatalf("both slots must be cleared on logout")
	}
	if svc.CurrentUser() != nil || svc.Token() != "" {
		t.Fatalf("in-memory session must be cleared on logout")
	}
	if svc.LastError() != "" {
		t.Fatalf("logout must clear the last error")
	}
}

func TestSessionService_HandleUnauthorized_InvalidatesSession(t *testing.T) {
	user := activeUser()
	raw, _ := json.Marshal(user)
	store := &memStore{token: "tok", user: string(raw)}
	svc := newService(&stubAuthAPI{}, store)
	svc.Initialize()

	svc.HandleUnauthorized()

	if store.token != "" || store.user != "" {
		t.Fatalf("storage must be cleared after an unauthorized response")
	}
	if svc.CurrentUser() != nil || svc.Token() != "" {
		t.Fatalf("session must be invalidated after an unauthorized response")
	}
}

func TestSessionService_ClearError(t *testing.T) {
	api := &stubAuthAPI{
		loginFn: func(_ context.Context, _, _ string) (*domain.AuthResponse, error) {
			return nil, &domain.APIError{StatusCode: 500, Message: "boom"}
		},
	}
	svc := newService(api, &memStore{})
	_ = svc.Login(context.Background(), "e@x.com", "pw")
	if svc.LastError() == "" {
		t.Fatalf("precondition: error recorded")
	}

	svc.ClearError()

	if svc.LastError() != "" {
		t.Fatalf("ClearError must reset the message")
	}
}

func TestSessionService_TokenExpiry(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "alice@example.com",
		"exp":   exp.Unix(),
	}).SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	user := activeUser()
	raw, _ := json.Marshal(user)
	svc := newService(&stubAuthAPI{}, &memStore{token: token, user: string(raw)})
	svc.Initialize()

	if got := svc.TokenExpiry(); !got.Equal(exp) {
		t.Fatalf("expiry %v, want %v", got, exp)
	}
}

func TestSessionService_TokenExpiry_Opaque(t *testing.T) {
	user := activeUser()
	raw, _ := json.Marshal(user)
	svc := newService(&stubAuthAPI{}, &memStore{token: "not-a-jwt", user: string(raw)})
	svc.Initialize()

	if got := svc.TokenExpiry(); !got.IsZero() {
		t.Fatalf("opaque token must yield zero expiry, got %v", got)
	}
}
