package commands

import (
	"github.com/spf13/cobra"

	"github.com/surrealwolf/high-command-mcp/internal/config"
	"github.com/surrealwolf/high-command-mcp/internal/logging"
)

// Version is stamped by the build; the default marks dev builds.
var Version = "0.1.0"

var (
	configPath string
	apiURL     string

	cfg       *config.Config
	appLogger *logging.AppLogger
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "highcommand",
		Short: "MCP server for Helldivers 2 galactic war data",
		Long: "highcommand exposes read-only Helldivers 2 game data from the\n" +
			"HellHub Collective API as Model Context Protocol tools, plus a\n" +
			"terminal dashboard and an endpoint health check.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			appLogger = logging.NewAppLogger()

			var err error
			if configPath != "" {
				cfg, err = config.LoadFrom(configPath)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				appLogger.Error("Error loading config", "error", err)
				return err
			}

			if apiURL != "" {
				cfg.BaseURL = apiURL
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			appLogger.SetLevel(cfg.LogLevel)
			appLogger.Debug("Configuration loaded", "api", cfg.BaseURL, "timeout_s", cfg.TimeoutSeconds)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/high-command/config.yaml)")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "HellHub API base URL override")

	root.AddCommand(serveCmd(), checkCmd(), dashboardCmd(), versionCmd())
	return root
}
