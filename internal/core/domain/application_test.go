package domain

import (
	"encoding/json"
	"testing"
)

func TestApplication_PopulatedReferences(t *testing.T) {
	raw := []byte(`{
		"_id": "a1",
		"job": {"_id": "j1", "title": "Go Engineer", "company": {"name": "Corp"}},
		"candidate": {"_id": "u1", "name": "Alice", "email": "alice@example.com"},
		"status": "pending"
	}`)
	var app Application
	if err := json.Unmarshal(raw, &app); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	job, ok := app.JobDetail()
	if !ok || job.Title != "Go Engineer" {
		t.Fatalf("job detail %+v ok=%v", job, ok)
	}
	candidate, ok := app.CandidateUser()
	if !ok || candidate.Name != "Alice" {
		t.Fatalf("candidate %+v ok=%v", candidate, ok)
	}
}

func TestApplication_IDReferences(t *testing.T) {
	raw := []byte(`{"_id": "a1", "job": "j1", "candidate": "u1", "status": "pending"}`)
	var app Application
	if err := json.Unmarshal(raw, &app); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if _, ok := app.JobDetail(); ok {
		t.Fatalf("bare id must not resolve to a job")
	}
	if _, ok := app.CandidateUser(); ok {
		t.Fatalf("bare id must not resolve to a user")
	}
}

func TestJob_EmployerUser(t *testing.T) {
	raw := []byte(`{"_id": "j1", "employer": {"_id": "u2", "name": "Corp HR", "role": "employer"}}`)
	var job Job
	if err := json.Unmarshal(raw, &job); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	employer, ok := job.EmployerUser()
	if !ok || employer.Role != RoleEmployer {
		t.Fatalf("employer %+v ok=%v", employer, ok)
	}
}
