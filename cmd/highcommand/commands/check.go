package commands

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/surrealwolf/high-command-mcp/internal/hellhub"
)

// liveEndpoints are the paths the MCP tools depend on.
var liveEndpoints = []string{
	"/war",
	"/planets",
	"/planets/1",
	"/statistics",
	"/biomes",
	"/factions",
}

// speculativeEndpoints are paths the upstream API has not historically
// served. Probing them documents when the API grows new surface, most
// notably a campaigns endpoint.
var speculativeEndpoints = []string{
	"/campaigns",
	"/operations",
	"/seasons",
	"/news",
	"/updates",
	"/enemies",
	"/hazards",
	"/rewards",
}

func checkCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Probe the HellHub API endpoints and report their status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := hellhub.NewClient(cfg, appLogger)

			endpoints := liveEndpoints
			if all {
				endpoints = append(append([]string{}, liveEndpoints...), speculativeEndpoints...)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Probing %s\n\n", client.BaseURL())

			var working, missing, failing int
			for _, path := range endpoints {
				status, size, err := client.Probe(cmd.Context(), path)
				switch {
				case err != nil:
					failing++
					fmt.Fprintf(out, "  %-14s unreachable: %v\n", path, err)
				case status == http.StatusOK:
					working++
					fmt.Fprintf(out, "  %-14s %d OK (%d bytes)\n", path, status, size)
				case status == http.StatusNotFound:
					missing++
					fmt.Fprintf(out, "  %-14s %d not found\n", path, status)
				default:
					failing++
					fmt.Fprintf(out, "  %-14s %d\n", path, status)
				}
			}

			fmt.Fprintf(out, "\n%d working, %d missing, %d failing\n", working, missing, failing)

			if failing > 0 {
				return fmt.Errorf("%d endpoint(s) failing", failing)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "also probe endpoints the API is not known to serve")
	return cmd
}
