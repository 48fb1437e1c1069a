package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/surrealwolf/high-command-mcp/internal/hellhub"
	"github.com/surrealwolf/high-command-mcp/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive galactic war dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := hellhub.NewClient(cfg, appLogger)
			model := tui.NewDashboardModel(client, appLogger)

			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("dashboard failed: %w", err)
			}
			return nil
		},
	}
}
