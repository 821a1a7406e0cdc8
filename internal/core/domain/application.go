package domain

import (
	"encoding/json"
	"time"
)

// Application decision statuses.
const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// Application is a job application as returned by the backend. Job and
// Candidate are id references or populated objects depending on the
// endpoint, so they are kept raw.
type Application struct {
	ID          string          `json:"_id"`
	Job         json.RawMessage `json:"job,omitempty"`
	Candidate   json.RawMessage `json:"candidate,omitempty"`
	CoverLetter string          `json:"coverLetter"`
	Resume      string          `json:"resume,omitempty"`
	Status      string          `json:"status"`
	AppliedAt   time.Time       `json:"appliedAt,omitzero"`
	CreatedAt   time.Time       `json:"createdAt,omitzero"`
	UpdatedAt   time.Time       `json:"updatedAt,omitzero"`
}

// JobDetail returns the populated job, or false when the backend sent only
// the id reference.
func (a *Application) JobDetail() (*Job, bool) {
	if len(a.Job) == 0 || a.Job[0] != '{' {
		return nil, false
	}
	var j Job
	if err := json.Unmarshal(a.Job, &j); err != nil {
		return nil, false
	}
	return &j, true
}

// CandidateUser returns the populated candidate, or false when the backend
// sent only the id reference.
func (a *Application) CandidateUser() (*User, bool) {
	return populatedUser(a.Candidate)
}
