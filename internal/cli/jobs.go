package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Bemnet-Y/job-portal-client/internal/core/domain"
	"github.com/Bemnet-Y/job-portal-client/internal/core/ports"
)

func newJobsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Browse and manage job postings",
	}
	cmd.AddCommand(
		newJobsListCmd(a),
		newJobsShowCmd(a),
		newJobsPostCmd(a),
		newJobsMineCmd(a),
		newJobsApplicationsCmd(a),
		newJobsDecideCmd(a),
	)
	return cmd
}

func newJobsListCmd(a *app) *cobra.Command {
	var filters ports.JobFilters

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open job postings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoles(); err != nil {
				return err
			}
			jobs, err := a.jobs.List(cmd.Context(), filters)
			if err != nil {
				return a.backendErr(err)
			}
			if len(jobs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No jobs found.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tLOCATION\tTYPE\tSALARY")
			for _, job := range jobs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					job.ID, job.Title, job.Company.Name, job.Location, job.Type, formatSalary(job.Salary))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&filters.Search, "search", "", "free-text search")
	cmd.Flags().StringVar(&filters.Location, "location", "", "filter by location")
	cmd.Flags().StringVar(&filters.Type, "type", "", "filter by job type")
	cmd.Flags().StringVar(&filters.Category, "category", "", "filter by category")
	return cmd
}

func newJobsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show JOB_ID",
		Short: "Show a job posting in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoles(); err != nil {
				return err
			}
			job, err := a.jobs.Get(cmd.Context(), args[0])
			if err != nil {
				return a.backendErr(err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s — %s\n", job.Title, job.Company.Name)
			fmt.Fprintf(out, "Location: %s (%s)\n", job.Location, job.Type)
			fmt.Fprintf(out, "Category: %s\n", job.Category)
			fmt.Fprintf(out, "Salary:   %s\n", formatSalary(job.Salary))
			if !job.Deadline.IsZero() {
				fmt.Fprintf(out, "Deadline: %s\n", job.Deadline.Format("2006-01-02"))
			}
			fmt.Fprintf(out, "\n%s\n", job.Description)
			if len(job.Requirements) > 0 {
				fmt.Fprintln(out, "\nRequirements:")
				for _, r := range job.Requirements {
					fmt.Fprintf(out, "  - %s\n", r)
				}
			}
			if len(job.Skills) > 0 {
				fmt.Fprintf(out, "\nSkills: %s\n", strings.Join(job.Skills, ", "))
			}
			return nil
		},
	}
}

type postJobForm struct {
	Title        string  `validate:"required"`
	Description  string  `validate:"required"`
	Location     string  `validate:"required"`
	Type         string  `validate:"required,oneof=full-time part-time contract remote"`
	Category     string  `validate:"required"`
	SalaryMin    float64 `validate:"gt=0"`
	SalaryMax    float64 `validate:"gtfield=SalaryMin"`
	Deadline     string  `validate:"required"`
	Requirements []string
	Skills       []string
	Currency     string
}

func newJobsPostCmd(a *app) *cobra.Command {
	var form postJobForm

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Publish a new job posting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoles(domain.RoleEmployer); err != nil {
				return err
			}
			if err := validateForm(form); err != nil {
				return err
			}
			deadline, err := time.Parse("2006-01-02", form.Deadline)
			if err != nil {
				return fmt.Errorf("deadline must be YYYY-MM-DD: %w", err)
			}
			if !deadline.After(time.Now()) {
				return fmt.Errorf("deadline must be in the future")
			}

			job, err := a.jobs.Create(cmd.Context(), ports.NewJob{
				Title:        form.Title,
				Description:  form.Description,
				Requirements: form.Requirements,
				Skills:       form.Skills,
				Location:     form.Location,
				Type:         form.Type,
				Category:     form.Category,
				Salary:       domain.Salary{Min: form.SalaryMin, Max: form.SalaryMax, Currency: form.Currency},
				Deadline:     form.Deadline,
			})
			if err != nil {
				return a.backendErr(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Posted %q (%s)\n", job.Title, job.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Title, "title", "", "job title")
	cmd.Flags().StringVar(&form.Description, "description", "", "job description")
	cmd.Flags().StringArrayVar(&form.Requirements, "requirement", nil, "requirement (repeatable)")
	cmd.Flags().StringSliceVar(&form.Skills, "skills", nil, "comma-separated skills")
	cmd.Flags().StringVar(&form.Location, "location", "", "job location")
	cmd.Flags().StringVar(&form.Type, "type", domain.JobTypeFullTime, "full-time, part-time, contract or remote")
	cmd.Flags().StringVar(&form.Category, "category", "", "job category")
	cmd.Flags().Float64Var(&form.SalaryMin, "salary-min", 0, "minimum salary")
	cmd.Flags().Float64Var(&form.SalaryMax, "salary-max", 0, "maximum salary")
	cmd.Flags().StringVar(&form.Currency, "currency", "USD", "salary currency")
	cmd.Flags().StringVar(&form.Deadline, "deadline", "", "application deadline (YYYY-MM-DD)")
	return cmd
}

func newJobsMineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List your own postings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoles(domain.RoleEmployer); err != nil {
				return err
			}
			jobs, err := a.jobs.EmployerJobs(cmd.Context())
			if err != nil {
				return a.backendErr(err)
			}
			if len(jobs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "You have no postings yet.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tAPPLICATIONS\tDEADLINE")
			for _, job := range jobs {
				deadline := ""
				if !job.Deadline.IsZero() {
					deadline = job.Deadline.Format("2006-01-02")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", job.ID, job.Title, job.Status, len(job.Applications), deadline)
			}
			return w.Flush()
		},
	}
}

func newJobsApplicationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "applications JOB_ID",
		Short: "List applications received for one of your postings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoles(domain.RoleEmployer); err != nil {
				return err
			}
			apps, err := a.jobs.Applications(cmd.Context(), args[0])
			if err != nil {
				return a.backendErr(err)
			}
			if len(apps) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No applications yet.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCANDIDATE\tSTATUS\tAPPLIED")
			for _, app := range apps {
				candidate := ""
				if user, ok := app.CandidateUser(); ok {
					candidate = fmt.Sprintf("%s <%s>", user.Name, user.Email)
				}
				applied := ""
				if !app.AppliedAt.IsZero() {
					applied = app.AppliedAt.Format("2006-01-02")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", app.ID, candidate, app.Status, applied)
			}
			return w.Flush()
		},
	}
}

func newJobsDecideCmd(a *app) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "decide APPLICATION_ID",
		Short: "Accept or reject an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoles(domain.RoleEmployer); err != nil {
				return err
			}
			if status != domain.ApplicationAccepted && status != domain.ApplicationRejected {
				return fmt.Errorf("status must be %q or %q", domain.ApplicationAccepted, domain.ApplicationRejected)
			}
			if err := a.jobs.UpdateApplicationStatus(cmd.Context(), args[0], status); err != nil {
				return a.backendErr(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Application %s marked %s.\n", args[0], status)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "accepted or rejected")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func formatSalary(s domain.Salary) string {
	if s.Min == 0 && s.Max == 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f-%.0f %s", s.Min, s.Max, s.Currency)
}
