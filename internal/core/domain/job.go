package domain

import (
	"encoding/json"
	"time"
)

// JobType values accepted by the backend.
const (
	JobTypeFullTime = "full-time"
	JobTypePartTime = "part-time"
	JobTypeContract = "contract"
	JobTypeRemote   = "remote"
)

// Job posting statuses.
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

// Salary is an inclusive compensation range.
type Salary struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// JobCompany is the denormalised company snippet embedded in a posting.
type JobCompany struct {
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// Job is a posting as returned by the backend. Employer is either a bare id
// string or a populated User object depending on the endpoint, so it is kept
// raw; use EmployerUser to resolve the populated form.
type Job struct {
	ID           string          `json:"_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Requirements []string        `json:"requirements"`
	Skills       []string        `json:"skills"`
	Location     string          `json:"location"`
	Type         string          `json:"type"`
	Category     string          `json:"category"`
	Salary       Salary          `json:"salary"`
	Employer     json.RawMessage `json:"employer,omitempty"`
	Company      JobCompany      `json:"company"`
	Applications []string        `json:"applications,omitempty"`
	Status       string          `json:"status"`
	Deadline     time.Time       `json:"deadline,omitzero"`
	CreatedAt    time.Time       `json:"createdAt,omitzero"`
	UpdatedAt    time.Time       `json:"updatedAt,omitzero"`
}

// EmployerUser returns the populated employer, or false when the backend
// sent only the id reference.
func (j *Job) EmployerUser() (*User, bool) {
	return populatedUser(j.Employer)
}

func populatedUser(raw json.RawMessage) (*User, bool) {
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, false
	}
	return &u, true
}
