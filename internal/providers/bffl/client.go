// Package bffl talks to the league's scoreboard feed and maps its
// payloads to domain models.
package bffl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"league-hub/internal/domain"
	"league-hub/internal/providers"
)

// Config controls how the client reaches the upstream feed.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client fetches games and standings from the feed.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchGames retrieves the current scoreboard from the feed.
func (c *Client) FetchGames(ctx context.Context) ([]domain.Game, error) {
	var payload gamesResponse
	if err := c.get(ctx, "/games", &payload); err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(payload.Data))
	for _, g := range payload.Data {
		games = append(games, mapGame(g))
	}
	return games, nil
}

// FetchStandings retrieves the season-to-date standings table.
func (c *Client) FetchStandings(ctx context.Context) ([]domain.Standings, error) {
	var payload standingsResponse
	if err := c.get(ctx, "/standings", &payload); err != nil {
		return nil, err
	}

	standings := make([]domain.Standings, 0, len(payload.Data))
	for _, s := range payload.Data {
		standings = append(standings, mapStanding(s))
	}
	return standings, nil
}

func (c *Client) get(ctx context.Context, path string, payload any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("bffl: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(payload)
}
