// Package sleeper is a thin read-only client for the Sleeper fantasy
// football API. Every call is a single GET returning the decoded JSON
// value as-is; no schema is imposed on the responses.
package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const DefaultBaseURL = "https://api.sleeper.app/v1"

const defaultTimeout = 10 * time.Second

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	Logger     *slog.Logger
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "sleeper-mcp/1.0"
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		logger:     logger,
	}
}

// getJSON performs one GET against the API and decodes the body. Non-2xx
// responses become *APIError with the raw body; everything else that keeps
// a usable response from existing becomes *TransportError. First failure
// is final: there is no retry.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values) (any, error) {
	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("sleeper request failed", "path", path, "status", resp.StatusCode)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return parsed, nil
}

func (c *Client) User(ctx context.Context, username string) (any, error) {
	return c.getJSON(ctx, "/user/"+username, nil)
}

func (c *Client) UserLeagues(ctx context.Context, userID, sport, season string) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/user/%s/leagues/%s/%s", userID, sport, season), nil)
}

func (c *Client) UserDrafts(ctx context.Context, userID, sport, season string) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/user/%s/drafts/%s/%s", userID, sport, season), nil)
}

func (c *Client) League(ctx context.Context, leagueID string) (any, error) {
	return c.getJSON(ctx, "/league/"+leagueID, nil)
}

func (c *Client) LeagueRosters(ctx context.Context, leagueID string) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/league/%s/rosters", leagueID), nil)
}

func (c *Client) LeagueUsers(ctx context.Context, leagueID string) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/league/%s/users", leagueID), nil)
}

// LeagueMatchups fetches matchups for one week. The week travels as an
// opaque path segment, exactly as supplied.
func (c *Client) LeagueMatchups(ctx context.Context, leagueID, week string) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/league/%s/matchups/%s", leagueID, week), nil)
}

func (c *Client) WinnersBracket(ctx context.Context, leagueID string) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/league/%s/winners_bracket", leagueID), nil)
}

func (c *Client) LosersBracket(ctx context.Context, leagueID string) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/league/%s/losers_bracket", leagueID), nil)
}

func (c *Client) LeagueTransactions(ctx context.Context, leagueID, week string) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/league/%s/transactions/%s", leagueID, week), nil)
}

func (c *Client) LeagueTradedPicks(ctx context.Context, leagueID string) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/league/%s/traded_picks", leagueID), nil)
}

func (c *Client) LeagueDrafts(ctx context.Context, leagueID string) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/league/%s/drafts", leagueID), nil)
}

func (c *Client) Draft(ctx context.Context, draftID string) (any, error) {
	return c.getJSON(ctx, "/draft/"+draftID, nil)
}

func (c *Client) DraftPicks(ctx context.Context, draftID string) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/draft/%s/picks", draftID), nil)
}

func (c *Client) DraftTradedPicks(ctx context.Context, draftID string) (any, error) {
	return c.getJSON(ctx, fmt.Sprintf("/draft/%s/traded_picks", draftID), nil)
}

func (c *Client) NFLState(ctx context.Context) (any, error) {
	return c.getJSON(ctx, "/state/nfl", nil)
}

// TrendingPlayers fetches players with high recent add/drop activity.
// trendType must already be validated by the caller.
func (c *Client) TrendingPlayers(ctx context.Context, trendType string, lookbackHours, limit int) (any, error) {
	query := url.Values{}
	query.Set("lookback_hours", fmt.Sprintf("%d", lookbackHours))
	query.Set("limit", fmt.Sprintf("%d", limit))
	return c.getJSON(ctx, "/players/nfl/trending/"+trendType, query)
}

// AllPlayers fetches the full NFL player directory, a large map keyed by
// player id.
func (c *Client) AllPlayers(ctx context.Context) (any, error) {
	return c.getJSON(ctx, "/players/nfl", nil)
}
