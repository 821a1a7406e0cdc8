package ports

import (
	"context"
	"io"

	"github.com/Bemnet-Y/job-portal-client/internal/core/domain"
)

// AuthAPI is the credential-exchange surface of the backend.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*domain.AuthResponse, error)
	Register(ctx context.Context, req domain.RegistrationRequest) (*domain.AuthResponse, error)
}

// JobFilters narrows a job listing; zero values are omitted from the query.
type JobFilters struct {
	Search   string
	Location string
	Type     string
	Category string
}

// NewJob is the payload for creating a posting.
type NewJob struct {
	Title        string
	Description  string
	Requirements []string
	Skills       []string
	Location     string
	Type         string
	Category     string
	Salary       domain.Salary
	Deadline     string
}

// JobAPI covers the public listing plus the employer-side posting surface.
type JobAPI interface {
	List(ctx context.Context, filters JobFilters) ([]domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	Create(ctx context.Context, job NewJob) (*domain.Job, error)
	EmployerJobs(ctx context.Context) ([]domain.Job, error)
	Applications(ctx context.Context, jobID string) ([]domain.Application, error)
	UpdateApplicationStatus(ctx context.Context, applicationID, status string) error
}

// ApplicationAPI is the job-seeker application surface.
type ApplicationAPI interface {
	Apply(ctx context.Context, jobID, coverLetter, resume string) error
	MyApplications(ctx context.Context) ([]domain.Application, error)
}

// UserFilters narrows the admin user listing.
type UserFilters struct {
	Role   string
	Status string
	Search string
}

// ReportParams selects an admin report.
type ReportParams struct {
	ReportType string
	StartDate  string
	EndDate    string
	Role       string
}

// AdminAPI is the administration surface.
type AdminAPI interface {
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	Users(ctx context.Context, filters UserFilters) ([]domain.User, error)
	UpdateUserStatus(ctx context.Context, userID, status string) error
	Categories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name, description string) (*domain.Category, error)
	UpdateCategoryStatus(ctx context.Context, categoryID, status string) error
	Report(ctx context.Context, params ReportParams) (*domain.Report, error)
}

// UploadResult is the backend's reply to a file upload.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
}

// UploadAPI is the raw file-upload wrapper.
type UploadAPI interface {
	Upload(ctx context.Context, filename string, content io.Reader) (*UploadResult, error)
}
