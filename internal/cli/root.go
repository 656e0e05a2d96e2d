package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/me/vita/internal/api"
	"github.com/me/vita/internal/config"
	"github.com/me/vita/internal/credstore"
	"github.com/me/vita/internal/logging"
)

var (
	flagServer      string
	flagCredentials string
	flagDebug       bool
	flagLogLevel    string
	flagLogFormat   string

	logger *slog.Logger
	store  credstore.Store
	client *api.Client
)

// NewRootCmd creates the root cobra command for the vita CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vita",
		Short: "Vita clinical records client",
		Long:  "Vita manages patients, appointments and vital signs against a Vita API server.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if flagServer != "" {
				cfg.APIBaseURL = flagServer
			}
			if flagCredentials != "" {
				cfg.CredentialsPath = flagCredentials
			}
			if flagLogLevel != "" {
				cfg.LogLevel = flagLogLevel
			}
			if flagDebug {
				cfg.LogLevel = "debug"
			}
			if flagLogFormat != "" {
				cfg.LogFormat = flagLogFormat
			}

			logger = logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

			credPath, err := cfg.ResolveCredentialsPath()
			if err != nil {
				return err
			}
			store, err = credstore.NewSQLiteStore(credPath, logger)
			if err != nil {
				return err
			}

			client = api.New(cfg.APIBaseURL, store, logger)
			client.Initialize(cmd.Context())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if store != nil {
				store.Close()
			}
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", "", "Vita API base URL (or VITA_API_URL env)")
	root.PersistentFlags().StringVar(&flagCredentials, "credentials", "", "Credentials database path (or VITA_CREDENTIALS env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newRegisterCmd(),
		newWhoamiCmd(),
		newPatientsCmd(),
		newAppointmentsCmd(),
		newVitalsCmd(),
		newDashboardCmd(),
	)

	return root
}
