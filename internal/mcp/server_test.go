package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/surrealwolf/high-command-mcp/internal/config"
	"github.com/surrealwolf/high-command-mcp/internal/logging"
)

func createTestServer(t *testing.T, handler http.HandlerFunc) *Server {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.BaseURL = srv.URL

	logger, _ := logging.NewTestLogger()
	s := NewServer(&cfg, logger)

	if err := s.initializeComponents(); err != nil {
		t.Fatalf("Failed to initialize server components: %v", err)
	}
	return s
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// decodeEnvelope pulls the JSON envelope back out of a tool result.
func decodeEnvelope(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	if len(result.Content) != 1 {
		t.Fatalf("Expected exactly one content block, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", result.Content[0])
	}

	var envelope map[string]any
	if err := json.Unmarshal([]byte(text.Text), &envelope); err != nil {
		t.Fatalf("Tool result is not valid JSON: %v", err)
	}
	return envelope
}

func TestNewServer(t *testing.T) {
	cfg := config.DefaultConfig()
	logger, _ := logging.NewTestLogger()

	server := NewServer(&cfg, logger)

	if server == nil {
		t.Fatal("NewServer returned nil")
	}
	if server.config != &cfg {
		t.Error("Server config not set correctly")
	}
	if server.service != nil {
		t.Error("Service should not be initialized until Start() is called")
	}
	if server.mcpServer != nil {
		t.Error("MCP server should not be initialized until Start() is called")
	}
}

func TestInitializeComponentsRegistersAllTools(t *testing.T) {
	server := createTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	expected := []string{
		"get_war_status",
		"get_planets",
		"get_planet_status",
		"get_statistics",
		"get_biomes",
		"get_factions",
		"get_campaign_info",
	}

	if len(server.registered) != len(expected) {
		t.Errorf("Expected %d registered tools, got %d", len(expected), len(server.registered))
	}
	for _, name := range expected {
		if !server.registered[name] {
			t.Errorf("Expected tool %q to be registered", name)
		}
	}
}

func TestRegisterDuplicateTool(t *testing.T) {
	server := createTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	err := server.register(mcp.NewTool("get_war_status"), server.handleWarStatus)
	if err == nil {
		t.Error("Expected error registering a duplicate tool name")
	}
}

func TestHandleWarStatusSuccess(t *testing.T) {
	server := createTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/war" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"data": {"id": 1, "index": 801,
			"startDate": "2024-01-23T20:05:13Z", "endDate": "2028-02-08T20:04:55Z",
			"time": "2024-06-01T12:00:00Z",
			"createdAt": "2024-01-23T20:05:13Z", "updatedAt": "2024-06-01T12:00:00Z"}}`))
	})

	result, err := server.handleWarStatus(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Handler returned protocol error: %v", err)
	}
	if result.IsError {
		t.Error("Expected success result")
	}

	envelope := decodeEnvelope(t, result)
	if envelope["status"] != "success" {
		t.Errorf("Expected success status, got %v", envelope["status"])
	}
	if envelope["error"] != nil {
		t.Errorf("Expected null error, got %v", envelope["error"])
	}
}

func TestHandleWarStatusUpstreamFailure(t *testing.T) {
	server := createTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	result, err := server.handleWarStatus(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Upstream failure must not be a protocol error, got: %v", err)
	}
	if !result.IsError {
		t.Error("Expected error result")
	}

	envelope := decodeEnvelope(t, result)
	if envelope["status"] != "error" {
		t.Errorf("Expected error status, got %v", envelope["status"])
	}
}

func TestHandlePlanetsForwardsPagination(t *testing.T) {
	var gotPage, gotPageSize string
	server := createTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		gotPageSize = r.URL.Query().Get("pageSize")
		w.Write([]byte(`{"data": [], "pagination": {"page": 2, "pageSize": 5, "total": 261, "pageCount": 53}}`))
	})

	result, err := server.handlePlanets(context.Background(), callRequest(map[string]any{
		"page":      float64(2),
		"page_size": float64(5),
	}))
	if err != nil {
		t.Fatalf("Handler returned protocol error: %v", err)
	}
	if result.IsError {
		t.Error("Expected success result")
	}
	if gotPage != "2" || gotPageSize != "5" {
		t.Errorf("Expected page=2 pageSize=5 forwarded, got page=%q pageSize=%q", gotPage, gotPageSize)
	}
}

func TestHandlePlanetStatus(t *testing.T) {
	server := createTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/planets/64" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"data": {"index": 64, "name": "Meridia", "sector": "Umlaut",
			"position": {"x": 0.44, "y": 0.11}}}`))
	})

	result, err := server.handlePlanetStatus(context.Background(), callRequest(map[string]any{
		"planet_index": float64(64),
	}))
	if err != nil {
		t.Fatalf("Handler returned protocol error: %v", err)
	}

	envelope := decodeEnvelope(t, result)
	if envelope["status"] != "success" {
		t.Errorf("Expected success status, got %v", envelope["status"])
	}
}

func TestHandlePlanetStatusMissingIndex(t *testing.T) {
	server := createTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("No request should reach the API on a validation failure")
	})

	result, err := server.handlePlanetStatus(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Validation failure must not be a protocol error, got: %v", err)
	}
	if !result.IsError {
		t.Error("Expected error result")
	}

	envelope := decodeEnvelope(t, result)
	errMsg, _ := envelope["error"].(string)
	if errMsg == "" || !strings.Contains(errMsg, "planet_index is required") {
		t.Errorf("Expected missing-parameter message, got %q", errMsg)
	}
}

func TestHandlePlanetStatusWrongType(t *testing.T) {
	server := createTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("No request should reach the API on a validation failure")
	})

	result, err := server.handlePlanetStatus(context.Background(), callRequest(map[string]any{
		"planet_index": "sixty-four",
	}))
	if err != nil {
		t.Fatalf("Validation failure must not be a protocol error, got: %v", err)
	}
	if !result.IsError {
		t.Error("Expected error result")
	}

	envelope := decodeEnvelope(t, result)
	errMsg, _ := envelope["error"].(string)
	if !strings.Contains(errMsg, "must be integer") {
		t.Errorf("Expected integer-type message, got %q", errMsg)
	}
}

func TestHandleCampaignInfo(t *testing.T) {
	server := createTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("Campaign info must not issue an API request")
	})

	result, err := server.handleCampaignInfo(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Handler returned protocol error: %v", err)
	}
	if !result.IsError {
		t.Error("Expected error result")
	}

	envelope := decodeEnvelope(t, result)
	errMsg, _ := envelope["error"].(string)
	if !strings.Contains(errMsg, "not available") {
		t.Errorf("Expected unavailable-endpoint message, got %q", errMsg)
	}
}

func TestIntArg(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		wantVal int
		wantOK  bool
		wantErr bool
	}{
		{"missing", map[string]any{}, 0, false, false},
		{"nil value", map[string]any{"n": nil}, 0, false, false},
		{"float64 integer", map[string]any{"n": float64(7)}, 7, true, false},
		{"float64 fractional", map[string]any{"n": 7.5}, 0, false, true},
		{"int", map[string]any{"n": 7}, 7, true, false},
		{"json.Number", map[string]any{"n": json.Number("42")}, 42, true, false},
		{"json.Number fractional", map[string]any{"n": json.Number("4.2")}, 0, false, true},
		{"string", map[string]any{"n": "7"}, 0, false, true},
		{"bool", map[string]any{"n": true}, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, ok, err := intArg(tt.args, "n")

			if tt.wantErr && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
			if ok != tt.wantOK {
				t.Errorf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if val != tt.wantVal {
				t.Errorf("Expected value %d, got %d", tt.wantVal, val)
			}
		})
	}
}

func TestStop(t *testing.T) {
	cfg := config.DefaultConfig()
	logger, _ := logging.NewTestLogger()
	server := NewServer(&cfg, logger)

	if err := server.Stop(); err != nil {
		t.Errorf("Stop should not return error: %v", err)
	}
}

