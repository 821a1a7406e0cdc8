package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Bemnet-Y/job-portal-client/internal/core/domain"
	"github.com/Bemnet-Y/job-portal-client/internal/core/ports"
)

// JobAPI adapts the job listing and employer posting endpoints.
type JobAPI struct {
	client *Client
}

func NewJobAPI(client *Client) *JobAPI {
	return &JobAPI{client: client}
}

// jobListEnvelope wraps GET /jobs; the other job endpoints return bare
// values.
type jobListEnvelope struct {
	Jobs []domain.Job `json:"jobs"`
}

func (j *JobAPI) List(ctx context.Context, filters ports.JobFilters) ([]domain.Job, error) {
	query := url.Values{}
	setIfPresent(query, "search", filters.Search)
	setIfPresent(query, "location", filters.Location)
	setIfPresent(query, "type", filters.Type)
	setIfPresent(query, "category", filters.Category)

	var envelope jobListEnvelope
	if err := j.client.doJSON(ctx, http.MethodGet, "/jobs", query, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Jobs, nil
}

func (j *JobAPI) Get(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	if err := j.client.doJSON(ctx, http.MethodGet, "/jobs/"+url.PathEscape(id), nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

type newJobPayload struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Requirements []string      `json:"requirements"`
	Skills       []string      `json:"skills"`
	Location     string        `json:"location"`
	Type         string        `json:"type"`
	Category     string        `json:"category"`
	Salary       domain.Salary `json:"salary"`
	Deadline     string        `json:"deadline"`
}

func (j *JobAPI) Create(ctx context.Context, job ports.NewJob) (*domain.Job, error) {
	payload := newJobPayload{
		Title:        job.Title,
		Description:  job.Description,
		Requirements: job.Requirements,
		Skills:       job.Skills,
		Location:     job.Location,
		Type:         job.Type,
		Category:     job.Category,
		Salary:       job.Salary,
		Deadline:     job.Deadline,
	}
	var created domain.Job
	if err := j.client.doJSON(ctx, http.MethodPost, "/jobs", nil, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (j *JobAPI) EmployerJobs(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := j.client.doJSON(ctx, http.MethodGet, "/jobs/employer/my-jobs", nil, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (j *JobAPI) Applications(ctx context.Context, jobID string) ([]domain.Application, error) {
	var apps []domain.Application
	path := "/jobs/" + url.PathEscape(jobID) + "/applications"
	if err := j.client.doJSON(ctx, http.MethodGet, path, nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

type statusPayload struct {
	Status string `json:"status"`
}

func (j *JobAPI) UpdateApplicationStatus(ctx context.Context, applicationID, status string) error {
	path := "/jobs/applications/" + url.PathEscape(applicationID) + "/status"
	return j.client.doJSON(ctx, http.MethodPut, path, nil, statusPayload{Status: status}, nil)
}

func setIfPresent(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}
