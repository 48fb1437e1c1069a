// Package commands defines the highcommand CLI and wires dependencies for
// subcommands.
//
// # Commands
//
//   - serve      Run the MCP server over stdio (the default deployment mode)
//   - check      Probe the HellHub API endpoints and report their status
//   - dashboard  Open the interactive galactic war dashboard
//   - version    Print the build version
//
// # Implementation
//
// The root command loads the application config and builds the logger
// before any subcommand runs, so handlers share one configured client
// setup. The MCP transport owns stdout, which is why all diagnostics go
// through the stderr-backed logger.
package commands
