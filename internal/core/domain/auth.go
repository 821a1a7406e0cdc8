package domain

import "net/http"

// AuthResponse is the backend's reply to both the login and the register
// calls. Register may legitimately omit the token (pending employer
// accounts); login without a token is a protocol violation handled by the
// session layer.
type AuthResponse struct {
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}

// APIError is a non-2xx reply from the backend, carrying the optional
// human-readable message from the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode)
}

// Unwrap lets callers match 401 replies with errors.Is(err, ErrUnauthorized)
// without inspecting status codes.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}
