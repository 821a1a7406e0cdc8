package cli

import (
	"strings"
	"testing"

	"github.com/Bemnet-Y/job-portal-client/internal/core/domain"
)

func TestValidateForm_Login(t *testing.T) {
	if err := validateForm(loginForm{Email: "alice@example.com", Password: "pw"}); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}

	err := validateForm(loginForm{Email: "not-an-email", Password: ""})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	msg := err.Error()
	if !strings.Contains(msg, "email must be a valid email") {
		t.Fatalf("missing email message in %q", msg)
	}
	if !strings.Contains(msg, "password is required") {
		t.Fatalf("missing password message in %q", msg)
	}
}

func TestValidateForm_EmployerRegistration(t *testing.T) {
	err := validateForm(domain.EmployerRegistration{
		Name:     "Bob",
		Email:    "bob@corp.example",
		Password: "short1",
	})
	if err == nil {
		t.Fatalf("expected failure for missing company fields")
	}
	if !strings.Contains(err.Error(), "companyname is required") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestValidateForm_PostJobSalaryRange(t *testing.T) {
	form := postJobForm{
		Title:       "Go Engineer",
		Description: "Build things",
		Location:    "Remote",
		Type:        domain.JobTypeRemote,
		Category:    "engineering",
		SalaryMin:   90000,
		SalaryMax:   60000,
		Deadline:    "2030-01-01",
	}
	err := validateForm(form)
	if err == nil {
		t.Fatalf("expected failure for inverted salary range")
	}
	if !strings.Contains(err.Error(), "salarymax must be greater than salarymin") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
