// Package hellhub is a typed, rate-limited client for the HellHub
// Collective API, the community REST API serving Helldivers 2 galactic
// war data.
//
// All methods take a context and return either a decoded record or an
// *Error carrying an ErrorKind, so callers can categorize failures
// (transport, HTTP status, decode, unavailable endpoint) without
// inspecting error strings.
package hellhub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/surrealwolf/high-command-mcp/internal/config"
	"github.com/surrealwolf/high-command-mcp/internal/logging"
)

// Client issues GET requests against the HellHub Collective API.
// A zero-value Client is not usable; construct one with NewClient.
type Client struct {
	baseURL      string
	clientID     string
	contactEmail string
	httpClient   *http.Client
	limiter      *rate.Limiter
	logger       *logging.AppLogger
}

// Option customizes a Client. Used mainly by tests to inject transports.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the configured API root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// NewClient creates a client from the application config.
func NewClient(cfg *config.Config, logger *logging.AppLogger, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		contactEmail: cfg.ContactEmail,
		httpClient:   &http.Client{Timeout: cfg.Timeout()},
		logger:       logger,
	}

	if cfg.RequestsPerSecond > 0 {
		// Burst of 1: the API is a shared community resource
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// PageOptions selects a page of a list endpoint. The zero value requests
// the API's default page.
type PageOptions struct {
	Page     int
	PageSize int
}

func (p PageOptions) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	return q
}

// get performs a single GET against the API and decodes the body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	op := "get " + path
	start := time.Now()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &Error{Kind: KindRequest, Op: op, Err: err}
		}
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &Error{Kind: KindRequest, Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.clientID != "" {
		req.Header.Set("X-Super-Client", c.clientID)
	}
	if c.contactEmail != "" {
		req.Header.Set("X-Super-Contact", c.contactEmail)
	}

	c.logger.LogRequest(http.MethodGet, reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("API request failed", "op", op, "error", err)
		return &Error{Kind: KindRequest, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("API returned error status", "op", op, "status", resp.StatusCode)
		return &Error{Kind: KindStatus, Op: op, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindDecode, Op: op, Err: err}
	}

	c.logger.LogPerformance(op, start)
	return nil
}

// War fetches the current war record.
func (c *Client) War(ctx context.Context) (*War, error) {
	var resp Response[War]
	if err := c.get(ctx, "/war", nil, &resp); err != nil {
		return nil, err
	}
	if err := apiError("get /war", resp.Error); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Planets fetches a page of planet records.
func (c *Client) Planets(ctx context.Context, page PageOptions) ([]Planet, *Pagination, error) {
	var resp Response[[]Planet]
	if err := c.get(ctx, "/planets", page.query(), &resp); err != nil {
		return nil, nil, err
	}
	if err := apiError("get /planets", resp.Error); err != nil {
		return nil, nil, err
	}
	return resp.Data, resp.Pagination, nil
}

// Planet fetches a single planet by its war index.
func (c *Client) Planet(ctx context.Context, index int) (*Planet, error) {
	op := fmt.Sprintf("get /planets/%d", index)
	if index < 0 {
		return nil, &Error{Kind: KindRequest, Op: op, Err: fmt.Errorf("planet index must not be negative")}
	}

	var resp Response[Planet]
	if err := c.get(ctx, "/planets/"+strconv.Itoa(index), nil, &resp); err != nil {
		return nil, err
	}
	if err := apiError(op, resp.Error); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Statistics fetches the global war statistics record.
func (c *Client) Statistics(ctx context.Context) (*Statistics, error) {
	var resp Response[Statistics]
	if err := c.get(ctx, "/statistics", nil, &resp); err != nil {
		return nil, err
	}
	if err := apiError("get /statistics", resp.Error); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Biomes fetches a page of biome records.
func (c *Client) Biomes(ctx context.Context, page PageOptions) ([]Biome, *Pagination, error) {
	var resp Response[[]Biome]
	if err := c.get(ctx, "/biomes", page.query(), &resp); err != nil {
		return nil, nil, err
	}
	if err := apiError("get /biomes", resp.Error); err != nil {
		return nil, nil, err
	}
	return resp.Data, resp.Pagination, nil
}

// Factions fetches the faction records.
func (c *Client) Factions(ctx context.Context) ([]Faction, *Pagination, error) {
	var resp Response[[]Faction]
	if err := c.get(ctx, "/factions", nil, &resp); err != nil {
		return nil, nil, err
	}
	if err := apiError("get /factions", resp.Error); err != nil {
		return nil, nil, err
	}
	return resp.Data, resp.Pagination, nil
}

// Campaigns always fails: the HellHub API has no campaigns endpoint.
// Kept as a method so the tool layer has one place to call and the day
// the endpoint appears only this package changes.
func (c *Client) Campaigns(ctx context.Context) ([]Campaign, error) {
	return nil, &Error{Kind: KindUnavailable, Op: "get /campaigns", Err: ErrEndpointUnavailable}
}

// Probe issues a GET against an arbitrary API path and reports the status
// code and body size without decoding. Used by the endpoint check command.
func (c *Client) Probe(ctx context.Context, path string) (status int, size int, err error) {
	op := "probe " + path

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, 0, &Error{Kind: KindRequest, Op: op, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, 0, &Error{Kind: KindRequest, Op: op, Err: err}
	}
	if c.clientID != "" {
		req.Header.Set("X-Super-Client", c.clientID)
	}
	if c.contactEmail != "" {
		req.Header.Set("X-Super-Contact", c.contactEmail)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, &Error{Kind: KindRequest, Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, 0, &Error{Kind: KindRequest, Op: op, Err: err}
	}
	return resp.StatusCode, len(body), nil
}

// apiError converts an error string inside a 200 response envelope into a
// typed error.
func apiError(op string, msg *string) error {
	if msg == nil || *msg == "" {
		return nil
	}
	return &Error{Kind: KindAPI, Op: op, Err: fmt.Errorf("%s", *msg)}
}
