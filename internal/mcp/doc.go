// Package mcp provides the Model Context Protocol (MCP) server for
// high-command using mcp-go.
//
// This package implements an MCP server that lets AI assistants query
// Helldivers 2 galactic war data through a standardized protocol. Each
// tool is a read-only forwarding shim onto one HellHub Collective API
// endpoint.
//
// # Implementation
//
// The package uses the mcp-go library (github.com/mark3labs/mcp-go).
// Communication happens over stdin/stdout using JSON-RPC 2.0 as
// specified by the MCP standard.
//
// # Tools
//
//   - get_war_status: current galactic war record
//   - get_planets: planet records, optionally paginated
//   - get_planet_status: a single planet by war index
//   - get_statistics: global war statistics
//   - get_biomes: biome records, optionally paginated
//   - get_factions: faction records
//   - get_campaign_info: always an error envelope; the upstream API has
//     no campaigns endpoint
//
// Every tool returns a JSON text block with the uniform envelope
// {status, data, error}. Upstream failures never surface as protocol
// errors: they are folded into the envelope so clients can always parse
// the result the same way.
//
// # Usage
//
// The server is typically started as a subprocess by an MCP-capable AI
// assistant. It can also be started manually:
//
//	highcommand serve
//
// The process reads JSON-RPC requests from stdin and writes responses to
// stdout until it receives EOF or is terminated.
package mcp
