package backend

import (
	"context"
	"io"

	"github.com/Bemnet-Y/job-portal-client/internal/core/ports"
)

// UploadAPI adapts the raw file-upload endpoint.
type UploadAPI struct {
	client *Client
}

func NewUploadAPI(client *Client) *UploadAPI {
	return &UploadAPI{client: client}
}

func (u *UploadAPI) Upload(ctx context.Context, filename string, content io.Reader) (*ports.UploadResult, error) {
	var result ports.UploadResult
	if err := u.client.upload(ctx, "/upload", filename, content, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
