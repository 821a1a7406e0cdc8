package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Bemnet-Y/job-portal-client/internal/core/domain"
)

// ApplicationAPI adapts the job-seeker application endpoints.
type ApplicationAPI struct {
	client *Client
}

func NewApplicationAPI(client *Client) *ApplicationAPI {
	return &ApplicationAPI{client: client}
}

type applyPayload struct {
	CoverLetter string `json:"coverLetter"`
	Resume      string `json:"resume"`
}

// Apply submits an application; resume is the base64-encoded document.
func (a *ApplicationAPI) Apply(ctx context.Context, jobID, coverLetter, resume string) error {
	path := "/applications/jobs/" + url.PathEscape(jobID) + "/apply"
	return a.client.doJSON(ctx, http.MethodPost, path, nil, applyPayload{CoverLetter: coverLetter, Resume: resume}, nil)
}

func (a *ApplicationAPI) MyApplications(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	if err := a.client.doJSON(ctx, http.MethodGet, "/applications/my-applications", nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}
