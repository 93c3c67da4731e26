package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/majadash/admin-console/internal/core/service"
	"github.com/majadash/admin-console/internal/infrastructure/api"
	"github.com/majadash/admin-console/internal/infrastructure/storage"
	"github.com/majadash/admin-console/internal/pkg/config"
	"github.com/majadash/admin-console/internal/tui"
	"github.com/majadash/admin-console/pkg/logger"
)

var (
	apiURL   string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "MAJA admin dashboard",
	Long: `Terminal dashboard for the MAJA admin API.

Manage the product catalog and, as an administrator, the operator accounts.
Credentials persist between runs; the session is restored on startup.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if apiURL != "" {
			cfg.APIURL = apiURL
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}

		// The dashboard owns the terminal: logs go to a file.
		logFile, err := logger.FileWriter(cfg.LogFile)
		if err != nil {
			return err
		}
		defer logFile.Close()
		log := logger.Init(logger.Options{Level: cfg.LogLevel, Output: logFile})

		creds := storage.NewFileCredentialStore(cfg.CredentialsFile)
		client := api.NewClient(cfg.APIURL, creds, log)
		sessions := service.NewSessionService(client, creds, log)
		gate := service.NewGate(sessions)
		snackbar := tui.NewSnackbar()
		products := service.NewProductEditor(client, snackbar, log)
		users := service.NewUserEditor(client, snackbar, log)

		app := tui.NewApp(sessions, gate, products, users, snackbar, log)
		program := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			log.Error().Err(err).Msg("dashboard exited with error")
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "base URL of the admin API (overrides API_URL)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
