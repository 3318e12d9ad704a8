package driven

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"tvstream/internal/port/driven"
)

// TheOddsAPIClient implements the OddsProvider port against
// the-odds-api.com v4.
type TheOddsAPIClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewTheOddsAPIClient creates an odds client for the given base URL
// and API key.
func NewTheOddsAPIClient(baseURL, apiKey string) *TheOddsAPIClient {
	return &TheOddsAPIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Odds returns odds for a sport/regions/markets combination along
// with the upstream's request-quota headers.
func (c *TheOddsAPIClient) Odds(ctx context.Context, sport, regions, markets string) (driven.OddsResult, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", regions)
	params.Set("markets", markets)
	params.Set("oddsFormat", "decimal")
	params.Set("dateFormat", "iso")

	endpoint := fmt.Sprintf("%s/sports/%s/odds?%s", c.baseURL, url.PathEscape(sport), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return driven.OddsResult{}, fmt.Errorf("creating odds request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return driven.OddsResult{}, fmt.Errorf("fetching odds: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return driven.OddsResult{}, fmt.Errorf("fetching odds: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return driven.OddsResult{}, fmt.Errorf("reading odds response: %w", err)
	}

	remaining := resp.Header.Get("x-requests-remaining")
	if remaining == "" {
		remaining = "unknown"
	}
	used := resp.Header.Get("x-requests-used")
	if used == "" {
		used = "unknown"
	}

	return driven.OddsResult{
		Odds:      json.RawMessage(body),
		Remaining: remaining,
		Used:      used,
	}, nil
}

// Sports lists the sports the upstream can quote.
func (c *TheOddsAPIClient) Sports(ctx context.Context) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/sports?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating sports request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sports list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching sports list: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading sports response: %w", err)
	}

	return json.RawMessage(body), nil
}
