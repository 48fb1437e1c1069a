// Package tools implements the tool layer between the MCP dispatcher and
// the HellHub API client. Every tool produces the same envelope
// {status, data, error} regardless of outcome, so MCP clients never see a
// protocol-level failure for an upstream problem.
package tools

import (
	"context"

	"github.com/surrealwolf/high-command-mcp/internal/hellhub"
	"github.com/surrealwolf/high-command-mcp/internal/logging"
)

// API is the slice of the HellHub client the tool layer needs.
type API interface {
	War(ctx context.Context) (*hellhub.War, error)
	Planets(ctx context.Context, page hellhub.PageOptions) ([]hellhub.Planet, *hellhub.Pagination, error)
	Planet(ctx context.Context, index int) (*hellhub.Planet, error)
	Statistics(ctx context.Context) (*hellhub.Statistics, error)
	Biomes(ctx context.Context, page hellhub.PageOptions) ([]hellhub.Biome, *hellhub.Pagination, error)
	Factions(ctx context.Context) ([]hellhub.Faction, *hellhub.Pagination, error)
	Campaigns(ctx context.Context) ([]hellhub.Campaign, error)
}

// Statically ensure the real client satisfies the interface.
var _ API = (*hellhub.Client)(nil)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the uniform tool envelope. Error is a pointer so a successful
// result marshals as "error": null, matching the wire format clients
// already depend on.
type Result struct {
	Status string  `json:"status"`
	Data   any     `json:"data"`
	Error  *string `json:"error"`
}

// payload mirrors the upstream HellHub envelope inside Result.Data, so the
// data a client receives keeps the shape the raw API would have given it.
type payload struct {
	Data       any                 `json:"data"`
	Pagination *hellhub.Pagination `json:"pagination,omitempty"`
}

// Success wraps data in a success envelope.
func Success(data any, pagination *hellhub.Pagination) Result {
	return Result{
		Status: StatusSuccess,
		Data:   payload{Data: data, Pagination: pagination},
	}
}

// Failure converts a client error into an error envelope.
func Failure(err error) Result {
	msg := err.Error()
	return Result{
		Status: StatusError,
		Error:  &msg,
	}
}

// Service exposes one method per MCP tool.
type Service struct {
	api    API
	logger *logging.AppLogger
}

// NewService creates the tool service over an API client.
func NewService(api API, logger *logging.AppLogger) *Service {
	return &Service{
		api:    api,
		logger: logger,
	}
}

// WarStatus returns the current war status.
func (s *Service) WarStatus(ctx context.Context) Result {
	war, err := s.api.War(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch war status", "error", err)
		return Failure(err)
	}
	return Success(war, nil)
}

// Planets returns a page of planet records.
func (s *Service) Planets(ctx context.Context, page hellhub.PageOptions) Result {
	planets, pagination, err := s.api.Planets(ctx, page)
	if err != nil {
		s.logger.Error("Failed to fetch planets", "error", err)
		return Failure(err)
	}
	return Success(planets, pagination)
}

// PlanetStatus returns a single planet by war index.
func (s *Service) PlanetStatus(ctx context.Context, index int) Result {
	planet, err := s.api.Planet(ctx, index)
	if err != nil {
		s.logger.Error("Failed to fetch planet status", "planet_index", index, "error", err)
		return Failure(err)
	}
	return Success(planet, nil)
}

// Statistics returns the global war statistics.
func (s *Service) Statistics(ctx context.Context) Result {
	stats, err := s.api.Statistics(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch statistics", "error", err)
		return Failure(err)
	}
	return Success(stats, nil)
}

// Biomes returns a page of biome records.
func (s *Service) Biomes(ctx context.Context, page hellhub.PageOptions) Result {
	biomes, pagination, err := s.api.Biomes(ctx, page)
	if err != nil {
		s.logger.Error("Failed to fetch biomes", "error", err)
		return Failure(err)
	}
	return Success(biomes, pagination)
}

// Factions returns the faction records.
func (s *Service) Factions(ctx context.Context) Result {
	factions, pagination, err := s.api.Factions(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch factions", "error", err)
		return Failure(err)
	}
	return Success(factions, pagination)
}

// CampaignInfo always returns an error envelope: the upstream API has no
// campaigns endpoint. No request is issued.
func (s *Service) CampaignInfo(ctx context.Context) Result {
	campaigns, err := s.api.Campaigns(ctx)
	if err != nil {
		return Failure(err)
	}
	// Unreachable today, but correct if the endpoint ever appears.
	return Success(campaigns, nil)
}
