package domain

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalUsers        int `json:"totalUsers"`
	TotalEmployers    int `json:"totalEmployers"`
	TotalJobSeekers   int `json:"totalJobSeekers"`
	TotalJobs         int `json:"totalJobs"`
	TotalApplications int `json:"totalApplications"`
	PendingEmployers  int `json:"pendingEmployers"`
}

// Report types accepted by the reports endpoint.
const (
	ReportUsers        = "users"
	ReportJobs         = "jobs"
	ReportApplications = "applications"
)

// ReportPeriod is the date window a report covers; empty bounds mean
// unbounded on that side.
type ReportPeriod struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// Report is an administrator report. Rows are schemaless: their columns
// depend on the report type, so each row stays a generic map.
type Report struct {
	ReportType string           `json:"reportType"`
	Period     ReportPeriod     `json:"period"`
	Total      int              `json:"total"`
	Data       []map[string]any `json:"data"`
}
