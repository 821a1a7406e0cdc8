package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin     = "admin"
	RoleEmployer  = "employer"
	RoleJobSeeker = "jobseeker"
)

// Account lifecycle statuses. Employers start out pending until their
// business license is verified; only active accounts may sign in.
const (
	StatusActive    = "active"
	StatusPending   = "pending"
	StatusSuspended = "suspended"
)

var ErrUnauthorized = errors.New("unauthorized")

// User models an authenticated actor, received verbatim from the backend.
// The stored snapshot may go stale relative to backend truth; it is trusted
// until an authenticated call fails.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Profile   *Profile  `json:"profile,omitempty"`
	Company   *Company  `json:"company,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// Profile holds the job-seeker facing part of an account.
type Profile struct {
	Title      string   `json:"title,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience string   `json:"experience,omitempty"`
	Education  string   `json:"education,omitempty"`
	Resume     string   `json:"resume,omitempty"`
}

// Company holds the employer facing part of an account.
type Company struct {
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Website         string `json:"website,omitempty"`
	Logo            string `json:"logo,omitempty"`
	BusinessLicense string `json:"businessLicense,omitempty"`
	LicenseVerified bool   `json:"licenseVerified,omitempty"`
}
