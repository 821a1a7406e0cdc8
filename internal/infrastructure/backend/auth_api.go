package backend

import (
	"context"
	"net/http"

	"github.com/Bemnet-Y/job-portal-client/internal/core/domain"
)

// AuthAPI adapts the backend's credential-exchange endpoints.
type AuthAPI struct {
	client *Client
}

func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *AuthAPI) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	err := a.client.doJSON(ctx, http.MethodPost, "/auth/login", nil, loginPayload{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AuthAPI) Register(ctx context.Context, req domain.RegistrationRequest) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := a.client.doJSON(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
