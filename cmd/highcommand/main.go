package main

import (
	"os"

	"github.com/surrealwolf/high-command-mcp/cmd/highcommand/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
