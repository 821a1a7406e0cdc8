// Package cli implements the jobctl command tree. Commands are the
// navigational targets of the client: each declares its required roles and
// consults the route guard before touching the backend.
package cli

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Bemnet-Y/job-portal-client/internal/core/ports"
	"github.com/Bemnet-Y/job-portal-client/internal/core/service"
	"github.com/Bemnet-Y/job-portal-client/internal/infrastructure/backend"
	"github.com/Bemnet-Y/job-portal-client/internal/infrastructure/config"
	"github.com/Bemnet-Y/job-portal-client/internal/infrastructure/credstore"
	"github.com/Bemnet-Y/job-portal-client/pkg/logger"
)

// app carries the wired dependencies shared by all commands. The session is
// constructed at boot and passed explicitly; nothing reaches for ambient
// globals.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	session *service.SessionService
	guard   *service.RouteGuard
	jobs    ports.JobAPI
	apps    ports.ApplicationAPI
	admin   ports.AdminAPI
	uploads ports.UploadAPI
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the full jobctl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "jobctl",
		Short:         "Terminal client for the job portal",
		Long:          "jobctl browses job listings, manages applications and postings, and administers the job portal against its REST backend.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.bootstrap(cmd.Context())
		},
	}

	root.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newJobsCmd(a),
		newApplyCmd(a),
		newApplicationsCmd(a),
		newAdminCmd(a),
		newUploadCmd(a),
	)
	return root
}

// bootstrap wires config, logging, storage, transport and the session, then
// restores any persisted session before the command body runs.
func (a *app) bootstrap(ctx context.Context) error {
	_ = godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	store, err := credstore.NewFileStore(cfg.StateDir)
	if err != nil {
		return err
	}

	client := backend.NewClient(cfg.APIURL, cfg.HTTPTimeout, log)
	session := service.NewSessionService(backend.NewAuthAPI(client), store, log)
	client.SetTokenSource(session.Token)
	client.SetUnauthorizedHook(session.HandleUnauthorized)

	session.Initialize()

	a.cfg = cfg
	a.log = log
	a.session = session
	a.guard = service.NewRouteGuard(session)
	a.jobs = backend.NewJobAPI(client)
	a.apps = backend.NewApplicationAPI(client)
	a.admin = backend.NewAdminAPI(client)
	a.uploads = backend.NewUploadAPI(client)
	return nil
}
