package cli

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Bemnet-Y/job-portal-client/internal/core/domain"
	"github.com/Bemnet-Y/job-portal-client/internal/core/ports"
)

func newAdminCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administer users, categories and reports",
	}
	cmd.AddCommand(
		newAdminDashboardCmd(a),
		newAdminUsersCmd(a),
		newAdminUserStatusCmd(a),
		newAdminCategoriesCmd(a),
		newAdminCategoryAddCmd(a),
		newAdminCategoryStatusCmd(a),
		newAdminReportCmd(a),
	)
	return cmd
}

func newAdminDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show portal-wide statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoles(domain.RoleAdmin); err != nil {
				return err
			}
			stats, err := a.admin.DashboardStats(cmd.Context())
			if err != nil {
				return a.backendErr(err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Users:        %d (%d employers, %d job seekers)\n",
				stats.TotalUsers, stats.TotalEmployers, stats.TotalJobSeekers)
			fmt.Fprintf(out, "Jobs:         %d\n", stats.TotalJobs)
			fmt.Fprintf(out, "Applications: %d\n", stats.TotalApplications)
			if stats.PendingEmployers > 0 {
				fmt.Fprintf(out, "Pending employer approvals: %d\n", stats.PendingEmployers)
			}
			return nil
		},
	}
}

func newAdminUsersCmd(a *app) *cobra.Command {
	var filters ports.UserFilters

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List user accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoles(domain.RoleAdmin); err != nil {
				return err
			}
			users, err := a.admin.Users(cmd.Context(), filters)
			if err != nil {
				return a.backendErr(err)
			}
			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No users found.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tSTATUS")
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, u.Status)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&filters.Role, "role", "", "filter by role")
	cmd.Flags().StringVar(&filters.Status, "status", "", "filter by status")
	cmd.Flags().StringVar(&filters.Search, "search", "", "free-text search")
	return cmd
}

func newAdminUserStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "user-status USER_ID STATUS",
		Short: "Activate or suspend a user account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoles(domain.RoleAdmin); err != nil {
				return err
			}
			status := args[1]
			if status != domain.StatusActive && status != domain.StatusSuspended {
				return fmt.Errorf("status must be %q or %q", domain.StatusActive, domain.StatusSuspended)
			}
			if err := a.admin.UpdateUserStatus(cmd.Context(), args[0], status); err != nil {
				return a.backendErr(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %s is now %s.\n", args[0], status)
			return nil
		},
	}
}

func newAdminCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List job categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoles(domain.RoleAdmin); err != nil {
				return err
			}
			categories, err := a.admin.Categories(cmd.Context())
			if err != nil {
				return a.backendErr(err)
			}
			if len(categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No categories defined.")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTATUS\tDESCRIPTION")
			for _, c := range categories {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Status, c.Description)
			}
			return w.Flush()
		},
	}
}

func newAdminCategoryAddCmd(a *app) *cobra.Command {
	var (
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "category-add",
		Short: "Create a job category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoles(domain.RoleAdmin); err != nil {
				return err
			}
			created, err := a.admin.CreateCategory(cmd.Context(), name, description)
			if err != nil {
				return a.backendErr(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created category %q (%s)\n", created.Name, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "category name")
	cmd.Flags().StringVar(&description, "description", "", "category description")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newAdminCategoryStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "category-status CATEGORY_ID STATUS",
		Short: "Activate or deactivate a job category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRoles(domain.RoleAdmin); err != nil {
				return err
			}
			status := args[1]
			if status != domain.CategoryActive && status != domain.CategoryInactive {
				return fmt.Errorf("status must be %q or %q", domain.CategoryActive, domain.CategoryInactive)
			}
			if err := a.admin.UpdateCategoryStatus(cmd.Context(), args[0], status); err != nil {
				return a.backendErr(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Category %s is now %s.\n", args[0], status)
			return nil
		},
	}
}

func newAdminReportCmd(a *app) *cobra.Command {
	var params ports.ReportParams

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Generate a portal report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoles(domain.RoleAdmin); err != nil {
				return err
			}
			report, err := a.admin.Report(cmd.Context(), params)
			if err != nil {
				return a.backendErr(err)
			}
			out := cmd.OutOrStdout()
			start, end := report.Period.StartDate, report.Period.EndDate
			if start == "" {
				start = "all time"
			}
			if end == "" {
				end = "present"
			}
			fmt.Fprintf(out, "%s report, %s to %s: %d records\n\n", report.ReportType, start, end, report.Total)
			if len(report.Data) == 0 {
				return nil
			}

			// Rows are schemaless; derive stable columns from the first row.
			columns := make([]string, 0, len(report.Data[0]))
			for key := range report.Data[0] {
				columns = append(columns, key)
			}
			sort.Strings(columns)

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for i, col := range columns {
				if i > 0 {
					fmt.Fprint(w, "\t")
				}
				fmt.Fprint(w, col)
			}
			fmt.Fprintln(w)
			for _, row := range report.Data {
				for i, col := range columns {
					if i > 0 {
						fmt.Fprint(w, "\t")
					}
					fmt.Fprintf(w, "%v", row[col])
				}
				fmt.Fprintln(w)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&params.ReportType, "type", domain.ReportUsers, "users, jobs or applications")
	cmd.Flags().StringVar(&params.StartDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&params.EndDate, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&params.Role, "role", "", "role filter (users report)")
	return cmd
}
