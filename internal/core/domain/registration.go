package domain

import "encoding/json"

// RegistrationRequest is the closed set of signup payloads. Only the
// employer variant carries company and license fields; the discriminating
// role is fixed by the variant, never chosen by the caller at runtime.
type RegistrationRequest interface {
	Role() string
	// registration marks the set as closed to this package.
	registration()
}

// JobSeekerRegistration signs up a job-seeker account.
type JobSeekerRegistration struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func (JobSeekerRegistration) Role() string  { return RoleJobSeeker }
func (JobSeekerRegistration) registration() {}

func (r JobSeekerRegistration) MarshalJSON() ([]byte, error) {
	return json.Marshal(registrationWire{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     RoleJobSeeker,
	})
}

// EmployerRegistration signs up an employer account. The business license is
// submitted base64-encoded and reviewed out of band; the resulting account
// stays pending until an administrator activates it.
type EmployerRegistration struct {
	Name               string `validate:"required"`
	Email              string `validate:"required,email"`
	Password           string `validate:"required,min=6"`
	CompanyName        string `validate:"required"`
	CompanyDescription string
	Website            string
	BusinessLicense    string `validate:"required"`
}

func (EmployerRegistration) Role() string  { return RoleEmployer }
func (EmployerRegistration) registration() {}

func (r EmployerRegistration) MarshalJSON() ([]byte, error) {
	return json.Marshal(registrationWire{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     RoleEmployer,
		Company: &registrationCompany{
			Name:        r.CompanyName,
			Description: r.CompanyDescription,
			Website:     r.Website,
		},
		BusinessLicense: r.BusinessLicense,
	})
}

// registrationWire is the shape the backend expects on POST /auth/register.
type registrationWire struct {
	Name            string               `json:"name"`
	Email           string               `json:"email"`
	Password        string               `json:"password"`
	Role            string               `json:"role"`
	Company         *registrationCompany `json:"company,omitempty"`
	BusinessLicense string               `json:"businessLicense,omitempty"`
}

type registrationCompany struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
}
