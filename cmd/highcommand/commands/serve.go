package commands

import (
	"github.com/spf13/cobra"

	"github.com/surrealwolf/high-command-mcp/internal/mcp"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdio",
		Long: "Starts the Model Context Protocol server. It reads JSON-RPC\n" +
			"requests from stdin and writes responses to stdout until the\n" +
			"client disconnects, so it is normally launched as a subprocess\n" +
			"by an MCP-capable assistant.",
		RunE: func(cmd *cobra.Command, args []string) error {
			appLogger.Info("Starting Helldivers 2 MCP server")

			server := mcp.NewServer(cfg, appLogger)
			if err := server.Start(); err != nil {
				appLogger.Error("MCP server exited with error", "error", err)
				return err
			}
			return server.Stop()
		},
	}
}
