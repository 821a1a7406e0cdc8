package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Bemnet-Y/job-portal-client/internal/core/domain"
	"github.com/Bemnet-Y/job-portal-client/internal/core/ports"
)

// AdminAPI adapts the administration endpoints.
type AdminAPI struct {
	client *Client
}

func NewAdminAPI(client *Client) *AdminAPI {
	return &AdminAPI{client: client}
}

func (a *AdminAPI) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := a.client.doJSON(ctx, http.MethodGet, "/admin/dashboard", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// userListEnvelope wraps GET /admin/users.
type userListEnvelope struct {
	Users []domain.User `json:"users"`
}

func (a *AdminAPI) Users(ctx context.Context, filters ports.UserFilters) ([]domain.User, error) {
	query := url.Values{}
	setIfPresent(query, "role", filters.Role)
	setIfPresent(query, "status", filters.Status)
	setIfPresent(query, "search", filters.Search)

	var envelope userListEnvelope
	if err := a.client.doJSON(ctx, http.MethodGet, "/admin/users", query, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Users, nil
}

func (a *AdminAPI) UpdateUserStatus(ctx context.Context, userID, status string) error {
	path := "/admin/users/" + url.PathEscape(userID) + "/status"
	return a.client.doJSON(ctx, http.MethodPut, path, nil, statusPayload{Status: status}, nil)
}

func (a *AdminAPI) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := a.client.doJSON(ctx, http.MethodGet, "/admin/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

type newCategoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (a *AdminAPI) CreateCategory(ctx context.Context, name, description string) (*domain.Category, error) {
	var created domain.Category
	payload := newCategoryPayload{Name: name, Description: description}
	if err := a.client.doJSON(ctx, http.MethodPost, "/admin/categories", nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *AdminAPI) UpdateCategoryStatus(ctx context.Context, categoryID, status string) error {
	path := "/admin/categories/" + url.PathEscape(categoryID)
	return a.client.doJSON(ctx, http.MethodPut, path, nil, statusPayload{Status: status}, nil)
}

func (a *AdminAPI) Report(ctx context.Context, params ports.ReportParams) (*domain.Report, error) {
	query := url.Values{}
	query.Set("reportType", params.ReportType)
	setIfPresent(query, "startDate", params.StartDate)
	setIfPresent(query, "endDate", params.EndDate)
	setIfPresent(query, "role", params.Role)

	var report domain.Report
	if err := a.client.doJSON(ctx, http.MethodGet, "/admin/reports", query, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
