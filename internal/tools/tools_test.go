package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surrealwolf/high-command-mcp/internal/hellhub"
	"github.com/surrealwolf/high-command-mcp/internal/logging"
)

// fakeAPI lets each test script the client's behavior per endpoint.
type fakeAPI struct {
	war        *hellhub.War
	warErr     error
	planets    []hellhub.Planet
	pagination *hellhub.Pagination
	planetsErr error
	planet     *hellhub.Planet
	planetErr  error
	stats      *hellhub.Statistics
	statsErr   error
	biomes     []hellhub.Biome
	biomesErr  error
	factions   []hellhub.Faction
	factsErr   error

	gotPage  hellhub.PageOptions
	gotIndex int
}

func (f *fakeAPI) War(ctx context.Context) (*hellhub.War, error) {
	return f.war, f.warErr
}

func (f *fakeAPI) Planets(ctx context.Context, page hellhub.PageOptions) ([]hellhub.Planet, *hellhub.Pagination, error) {
	f.gotPage = page
	return f.planets, f.pagination, f.planetsErr
}

func (f *fakeAPI) Planet(ctx context.Context, index int) (*hellhub.Planet, error) {
	f.gotIndex = index
	return f.planet, f.planetErr
}

func (f *fakeAPI) Statistics(ctx context.Context) (*hellhub.Statistics, error) {
	return f.stats, f.statsErr
}

func (f *fakeAPI) Biomes(ctx context.Context, page hellhub.PageOptions) ([]hellhub.Biome, *hellhub.Pagination, error) {
	f.gotPage = page
	return f.biomes, nil, f.biomesErr
}

func (f *fakeAPI) Factions(ctx context.Context) ([]hellhub.Faction, *hellhub.Pagination, error) {
	return f.factions, nil, f.factsErr
}

func (f *fakeAPI) Campaigns(ctx context.Context) ([]hellhub.Campaign, error) {
	return nil, &hellhub.Error{
		Kind: hellhub.KindUnavailable,
		Op:   "get /campaigns",
		Err:  hellhub.ErrEndpointUnavailable,
	}
}

func newTestService(api API) *Service {
	logger, _ := logging.NewTestLogger()
	return NewService(api, logger)
}

func TestWarStatusSuccess(t *testing.T) {
	api := &fakeAPI{war: &hellhub.War{ID: 1, Index: 801}}
	svc := newTestService(api)

	result := svc.WarStatus(context.Background())

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Nil(t, result.Error)

	p, ok := result.Data.(payload)
	require.True(t, ok)
	war, ok := p.Data.(*hellhub.War)
	require.True(t, ok)
	assert.Equal(t, 801, war.Index)
}

func TestWarStatusError(t *testing.T) {
	api := &fakeAPI{warErr: &hellhub.Error{Kind: hellhub.KindStatus, Op: "get /war", StatusCode: 503}}
	svc := newTestService(api)

	result := svc.WarStatus(context.Background())

	assert.Equal(t, StatusError, result.Status)
	assert.Nil(t, result.Data)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "503")
}

func TestPlanetsForwardsPageOptions(t *testing.T) {
	api := &fakeAPI{
		planets:    []hellhub.Planet{{Index: 0, Name: "Super Earth"}},
		pagination: &hellhub.Pagination{Page: 3, PageSize: 10, Total: 261, PageCount: 27},
	}
	svc := newTestService(api)

	result := svc.Planets(context.Background(), hellhub.PageOptions{Page: 3, PageSize: 10})

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, 3, api.gotPage.Page)
	assert.Equal(t, 10, api.gotPage.PageSize)

	p, ok := result.Data.(payload)
	require.True(t, ok)
	require.NotNil(t, p.Pagination)
	assert.Equal(t, 261, p.Pagination.Total)
}

func TestPlanetStatus(t *testing.T) {
	api := &fakeAPI{planet: &hellhub.Planet{Index: 64, Name: "Meridia"}}
	svc := newTestService(api)

	result := svc.PlanetStatus(context.Background(), 64)

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, 64, api.gotIndex)
}

func TestPlanetStatusError(t *testing.T) {
	api := &fakeAPI{planetErr: &hellhub.Error{Kind: hellhub.KindStatus, Op: "get /planets/999", StatusCode: 404}}
	svc := newTestService(api)

	result := svc.PlanetStatus(context.Background(), 999)

	assert.Equal(t, StatusError, result.Status)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "404")
}

func TestStatistics(t *testing.T) {
	api := &fakeAPI{stats: &hellhub.Statistics{MissionsWon: 100, Accuracy: 85}}
	svc := newTestService(api)

	result := svc.Statistics(context.Background())

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Nil(t, result.Error)
}

func TestBiomesAndFactions(t *testing.T) {
	api := &fakeAPI{
		biomes:   []hellhub.Biome{{Name: "desert"}},
		factions: []hellhub.Faction{{Name: "Automatons"}},
	}
	svc := newTestService(api)

	biomes := svc.Biomes(context.Background(), hellhub.PageOptions{})
	assert.Equal(t, StatusSuccess, biomes.Status)

	factions := svc.Factions(context.Background())
	assert.Equal(t, StatusSuccess, factions.Status)
}

func TestCampaignInfoAlwaysUnavailable(t *testing.T) {
	svc := newTestService(&fakeAPI{})

	result := svc.CampaignInfo(context.Background())

	assert.Equal(t, StatusError, result.Status)
	assert.Nil(t, result.Data)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "not available")
}

func TestEnvelopeWireFormat(t *testing.T) {
	// Success envelopes must serialize with an explicit null error, and
	// the upstream data shape must survive inside data.
	api := &fakeAPI{war: &hellhub.War{ID: 1, Index: 801}}
	svc := newTestService(api)

	raw, err := json.Marshal(svc.WarStatus(context.Background()))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "success", decoded["status"])
	assert.Contains(t, decoded, "error")
	assert.Nil(t, decoded["error"])

	data, ok := decoded["data"].(map[string]any)
	require.True(t, ok)
	inner, ok := data["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(801), inner["index"])
}
