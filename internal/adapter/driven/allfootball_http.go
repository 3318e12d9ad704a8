package driven

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// AllFootballClient implements the ScoreProvider port against the
// AllFootball live-score API.
type AllFootballClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewAllFootballClient creates a live-score client for the given base
// URL and API key.
func NewAllFootballClient(baseURL, apiKey string) *AllFootballClient {
	return &AllFootballClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *AllFootballClient) get(ctx context.Context, url string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating live-score request: %w", err)
	}

	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching live scores: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching live scores: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading live-score response: %w", err)
	}

	return json.RawMessage(body), nil
}

// LiveScores returns the current live matches. The upstream exposes
// the feed under several historical paths, so each candidate is tried
// in order until one answers.
func (c *AllFootballClient) LiveScores(ctx context.Context) (json.RawMessage, error) {
	paths := []string{
		"/v1/livescore",
		"/livescore",
		"/api/livescore",
		"/v1/matches/live",
		"/matches/live",
	}

	var lastErr error
	for _, path := range paths {
		data, err := c.get(ctx, c.baseURL+path)
		if err == nil {
			return data, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}

	return nil, fmt.Errorf("all live-score endpoints failed: %w", lastErr)
}

// LeagueLive returns the live matches of one league.
func (c *AllFootballClient) LeagueLive(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("%s/v1/leagues/%s/matches/live", c.baseURL, leagueID))
}

// MatchesByDate returns the matches scheduled for an ISO date.
func (c *AllFootballClient) MatchesByDate(ctx context.Context, date string) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("%s/v1/matches?date=%s", c.baseURL, date))
}
