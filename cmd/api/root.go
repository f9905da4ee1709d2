package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"docqa/internal/config"
	"docqa/internal/logging"
)

var (
	cfg *config.AppConfig
	log *logrus.Logger
)

// rootCmd runs the HTTP server when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "docqa",
	Short: "document question answering service",
	Example: `docqa serve
docqa migrate`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		log = logging.New(os.Stdout, cfg.Location(), cfg.LogLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if log != nil {
			log.WithError(err).Error("exiting")
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}
