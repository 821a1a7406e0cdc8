package cli

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Bemnet-Y/job-portal-client/internal/core/domain"
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func newLoginCmd(a *app) *cobra.Command {
	var form loginForm

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the job portal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireAnonymous(); err != nil {
				return err
			}
			if err := validateForm(form); err != nil {
				return err
			}
			if err := a.session.Login(cmd.Context(), form.Email, form.Password); err != nil {
				return err
			}
			user := a.session.CurrentUser()
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.Name, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Email, "email", "", "account email")
	cmd.Flags().StringVar(&form.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var (
		role               string
		name               string
		email              string
		password           string
		companyName        string
		companyDescription string
		website            string
		licensePath        string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a job-seeker or employer account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireAnonymous(); err != nil {
				return err
			}

			var req domain.RegistrationRequest
			switch role {
			case domain.RoleJobSeeker:
				form := domain.JobSeekerRegistration{Name: name, Email: email, Password: password}
				if err := validateForm(form); err != nil {
					return err
				}
				req = form
			case domain.RoleEmployer:
				license, err := readFileBase64(licensePath)
				if err != nil {
					return err
				}
				form := domain.EmployerRegistration{
					Name:               name,
					Email:              email,
					Password:           password,
					CompanyName:        companyName,
					CompanyDescription: companyDescription,
					Website:            website,
					BusinessLicense:    license,
				}
				if err := validateForm(form); err != nil {
					return err
				}
				req = form
			default:
				return fmt.Errorf("role must be %q or %q", domain.RoleJobSeeker, domain.RoleEmployer)
			}

			resp, err := a.session.Register(cmd.Context(), req)
			if err != nil {
				return err
			}

			if user := a.session.CurrentUser(); user != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Account created; signed in as %s (%s)\n", user.Name, user.Role)
				return nil
			}
			if resp.Message != "" {
				fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Account created and pending approval. You will be able to sign in once an administrator activates it.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", domain.RoleJobSeeker, "account role: jobseeker or employer")
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&companyName, "company", "", "company name (employer)")
	cmd.Flags().StringVar(&companyDescription, "company-description", "", "company description (employer)")
	cmd.Flags().StringVar(&website, "website", "", "company website (employer)")
	cmd.Flags().StringVar(&licensePath, "license-file", "", "business license document (employer)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored credential",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.session.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireRoles(); err != nil {
				return err
			}
			user := a.session.CurrentUser()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:   %s\n", user.Name)
			fmt.Fprintf(out, "Email:  %s\n", user.Email)
			fmt.Fprintf(out, "Role:   %s\n", user.Role)
			fmt.Fprintf(out, "Status: %s\n", user.Status)
			if exp := a.session.TokenExpiry(); !exp.IsZero() {
				fmt.Fprintf(out, "Token expires: %s\n", exp.Local().Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func readFileBase64(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
