package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Bemnet-Y/job-portal-client/internal/core/domain"
	"github.com/Bemnet-Y/job-portal-client/internal/core/service"
	"github.com/Bemnet-Y/job-portal-client/internal/infrastructure/credstore"
)

// A 401 on any request, from any adapter, must invalidate the session and
// clear the stored credential, even though the session still held a user
// when the response arrived.
func TestUnauthorizedResponse_InvalidatesSessionGlobally(t *testing.T) {
	e := echo.New()
	e.GET("/jobs/employer/my-jobs", func(c echo.Context) error {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "token expired"})
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	store, err := credstore.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	user := &domain.User{ID: "u1", Email: "emp@corp.example", Role: domain.RoleEmployer, Status: domain.StatusActive}
	raw, _ := json.Marshal(user)
	if err := store.Save("stale-token", string(raw)); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	client := NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	session := service.NewSessionService(NewAuthAPI(client), store, zerolog.Nop())
	client.SetTokenSource(session.Token)
	client.SetUnauthorizedHook(session.HandleUnauthorized)
	session.Initialize()

	if session.CurrentUser() == nil {
		t.Fatalf("precondition: session restored")
	}

	// The jobs adapter, not the auth adapter, receives the 401.
	_, err = NewJobAPI(client).EmployerJobs(context.Background())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}

	if session.CurrentUser() != nil || session.Token() != "" {
		t.Fatalf("session must be invalidated after the 401")
	}
	token, rawUser, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "" || rawUser != "" {
		t.Fatalf("credential must be cleared after the 401, got token=%q user=%q", token, rawUser)
	}

	// The guard now redirects to login, completing the redirect half of the
	// interceptor behaviour.
	guard := service.NewRouteGuard(session)
	if got := guard.Protected(domain.RoleEmployer); got != service.RedirectLogin {
		t.Fatalf("guard decision %v, want %v", got, service.RedirectLogin)
	}
}
