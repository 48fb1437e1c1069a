package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/surrealwolf/high-command-mcp/internal/config"
	"github.com/surrealwolf/high-command-mcp/internal/hellhub"
	"github.com/surrealwolf/high-command-mcp/internal/logging"
	"github.com/surrealwolf/high-command-mcp/internal/tools"
)

const (
	serverName    = "high-command"
	serverVersion = "0.1.0"
)

// Server represents the high-command MCP server instance.
type Server struct {
	config    *config.Config
	logger    *logging.AppLogger
	service   *tools.Service
	mcpServer *server.MCPServer

	registered map[string]bool
}

// NewServer creates a new MCP server instance. Components are wired
// lazily in Start so construction never touches the network.
func NewServer(cfg *config.Config, logger *logging.AppLogger) *Server {
	return &Server{
		config: cfg,
		logger: logger,
	}
}

// Start initializes components, registers the tools, and serves the MCP
// protocol over stdio until the client disconnects.
func (s *Server) Start() error {
	s.logger.Info("Initializing MCP server", "api", s.config.BaseURL)

	if err := s.initializeComponents(); err != nil {
		return fmt.Errorf("failed to initialize MCP server: %w", err)
	}

	s.logger.Info("MCP server created, starting stdio communication")
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the MCP server.
func (s *Server) Stop() error {
	s.logger.Info("Stopping MCP server")
	// The mcp-go server handles cleanup when the stdio stream closes.
	return nil
}

// initializeComponents wires the API client, the tool service, and the
// underlying mcp-go server. Split out of Start for tests.
func (s *Server) initializeComponents() error {
	client := hellhub.NewClient(s.config, s.logger)
	s.service = tools.NewService(client, s.logger)

	s.mcpServer = server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(true),
	)
	s.registered = make(map[string]bool)

	return s.registerTools()
}

// registerTools adds every tool definition to the underlying server.
func (s *Server) registerTools() error {
	type toolDef struct {
		tool    mcp.Tool
		handler server.ToolHandlerFunc
	}

	defs := []toolDef{
		{
			tool: mcp.NewTool("get_war_status",
				mcp.WithDescription("Get current war status from HellHub Collective API"),
			),
			handler: s.handleWarStatus,
		},
		{
			tool: mcp.NewTool("get_planets",
				mcp.WithDescription("Get planet information from HellHub Collective API"),
				mcp.WithNumber("page", mcp.Description("Page number to fetch (optional)")),
				mcp.WithNumber("page_size", mcp.Description("Number of planets per page (optional)")),
			),
			handler: s.handlePlanets,
		},
		{
			tool: mcp.NewTool("get_planet_status",
				mcp.WithDescription("Get status for a specific planet"),
				mcp.WithNumber("planet_index", mcp.Required(), mcp.Description("The index of the planet")),
			),
			handler: s.handlePlanetStatus,
		},
		{
			tool: mcp.NewTool("get_statistics",
				mcp.WithDescription("Get global game statistics from HellHub Collective API"),
			),
			handler: s.handleStatistics,
		},
		{
			tool: mcp.NewTool("get_biomes",
				mcp.WithDescription("Get biome information from HellHub Collective API"),
				mcp.WithNumber("page", mcp.Description("Page number to fetch (optional)")),
				mcp.WithNumber("page_size", mcp.Description("Number of biomes per page (optional)")),
			),
			handler: s.handleBiomes,
		},
		{
			tool: mcp.NewTool("get_factions",
				mcp.WithDescription("Get faction information from HellHub Collective API"),
			),
			handler: s.handleFactions,
		},
		{
			tool: mcp.NewTool("get_campaign_info",
				mcp.WithDescription("Get campaign information from HellHub Collective API"),
			),
			handler: s.handleCampaignInfo,
		},
	}

	for _, def := range defs {
		if err := s.register(def.tool, def.handler); err != nil {
			return err
		}
	}
	return nil
}

// register guards against duplicate tool names before handing the tool to
// mcp-go, which would silently replace an existing registration.
func (s *Server) register(tool mcp.Tool, handler server.ToolHandlerFunc) error {
	if s.registered[tool.Name] {
		return fmt.Errorf("tool %q already registered", tool.Name)
	}
	s.registered[tool.Name] = true
	s.mcpServer.AddTool(tool, handler)
	s.logger.Debug("Tool registered", "tool", tool.Name)
	return nil
}

func (s *Server) handleWarStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.logger.Info("Calling tool", "tool", "get_war_status")
	return envelopeResult(s.service.WarStatus(ctx))
}

func (s *Server) handlePlanets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.logger.Info("Calling tool", "tool", "get_planets")

	page, err := pageOptions(request.GetArguments())
	if err != nil {
		return envelopeError(err)
	}
	return envelopeResult(s.service.Planets(ctx, page))
}

func (s *Server) handlePlanetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.logger.Info("Calling tool", "tool", "get_planet_status")

	index, ok, err := intArg(request.GetArguments(), "planet_index")
	if err != nil {
		return envelopeError(err)
	}
	if !ok {
		return envelopeError(fmt.Errorf("planet_index is required"))
	}
	return envelopeResult(s.service.PlanetStatus(ctx, index))
}

func (s *Server) handleStatistics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.logger.Info("Calling tool", "tool", "get_statistics")
	return envelopeResult(s.service.Statistics(ctx))
}

func (s *Server) handleBiomes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.logger.Info("Calling tool", "tool", "get_biomes")

	page, err := pageOptions(request.GetArguments())
	if err != nil {
		return envelopeError(err)
	}
	return envelopeResult(s.service.Biomes(ctx, page))
}

func (s *Server) handleFactions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.logger.Info("Calling tool", "tool", "get_factions")
	return envelopeResult(s.service.Factions(ctx))
}

func (s *Server) handleCampaignInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.logger.Info("Calling tool", "tool", "get_campaign_info")
	return envelopeResult(s.service.CampaignInfo(ctx))
}

// pageOptions extracts the optional page/page_size arguments.
func pageOptions(args map[string]any) (hellhub.PageOptions, error) {
	var page hellhub.PageOptions

	n, ok, err := intArg(args, "page")
	if err != nil {
		return page, err
	}
	if ok {
		page.Page = n
	}

	n, ok, err = intArg(args, "page_size")
	if err != nil {
		return page, err
	}
	if ok {
		page.PageSize = n
	}
	return page, nil
}

// intArg reads an integer argument. JSON numbers arrive as float64, so a
// fractional part is a type error rather than silent truncation.
func intArg(args map[string]any, name string) (int, bool, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return 0, false, nil
	}

	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, false, fmt.Errorf("parameter %q must be integer, got %v", name, v)
		}
		return int(v), true, nil
	case int:
		return v, true, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false, fmt.Errorf("parameter %q must be integer, got %v", name, v)
		}
		return int(n), true, nil
	default:
		return 0, false, fmt.Errorf("parameter %q must be integer, got %T", name, raw)
	}
}

// envelopeResult serializes a tool envelope into a text content block.
// A marshal failure is the one case that surfaces as a protocol error.
func envelopeResult(result tools.Result) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: string(data),
			},
		},
		IsError: result.Status == tools.StatusError,
	}, nil
}

// envelopeError wraps an argument-validation failure in the uniform
// error envelope.
func envelopeError(err error) (*mcp.CallToolResult, error) {
	return envelopeResult(tools.Failure(err))
}
