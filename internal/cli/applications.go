package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Bemnet-Y/job-portal-client/internal/core/domain"
)

func newApplyCmd(a *app) *cobra.Command {
	var (
		coverLetter string
		resumePath  string
	)

	cmd := &cobra.Command{
		Use:   "apply JOB_ID",
		Short: "Apply for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoles(domain.RoleJobSeeker); err != nil {
				return err
			}
			if coverLetter == "" {
				return fmt.Errorf("a cover letter is required")
			}
			resume, err := readFileBase64(resumePath)
			if err != nil {
				return err
			}
			if resume == "" {
				return fmt.Errorf("a resume file is required")
			}
			if err := a.apps.Apply(cmd.Context(), args[0], coverLetter, resume); err != nil {
				return a.backendErr(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Application submitted.")
			return nil
		},
	}

	cmd.Flags().StringVar(&coverLetter, "cover-letter", "", "cover letter text")
	cmd.Flags().StringVar(&resumePath, "resume-file", "", "resume document")
	return cmd
}

func newApplicationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "applications",
		Short: "List your submitted applications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoles(domain.RoleJobSeeker); err != nil {
				return err
			}
			apps, err := a.apps.MyApplications(cmd.Context())
			if err != nil {
				return a.backendErr(err)
			}
			if len(apps) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "You have not applied to any jobs yet.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "JOB\tCOMPANY\tSTATUS\tAPPLIED")
			for _, app := range apps {
				title, company := "", ""
				if job, ok := app.JobDetail(); ok {
					title, company = job.Title, job.Company.Name
				}
				applied := ""
				if !app.AppliedAt.IsZero() {
					applied = app.AppliedAt.Format("2006-01-02")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", title, company, app.Status, applied)
			}
			return w.Flush()
		},
	}
}
