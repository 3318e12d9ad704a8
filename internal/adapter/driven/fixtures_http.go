package driven

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"tvstream/internal/football"
)

const fixtureBatchLimit = 20

func randomForm() float64 {
	return 0.4 + rand.Float64()*0.5
}

// FootballDataClient implements the FixtureProvider port against the
// football-data.org v4 API.
type FootballDataClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	now     func() time.Time
}

// NewFootballDataClient creates a fixtures client for football-data.org.
func NewFootballDataClient(baseURL, apiKey string) *FootballDataClient {
	return &FootballDataClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		now:     time.Now,
	}
}

type footballDataTeam struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

type footballDataMatch struct {
	UTCDate     string           `json:"utcDate"`
	Status      string           `json:"status"`
	Venue       string           `json:"venue"`
	HomeTeam    footballDataTeam `json:"homeTeam"`
	AwayTeam    footballDataTeam `json:"awayTeam"`
	Competition struct {
		Name string `json:"name"`
	} `json:"competition"`
}

// Fixtures returns today's matches mapped to the domain shape.
func (c *FootballDataClient) Fixtures(ctx context.Context) ([]football.Fixture, string, error) {
	now := c.now()
	today := now.UTC().Format("2006-01-02")
	tomorrow := now.UTC().Add(24 * time.Hour).Format("2006-01-02")

	params := url.Values{}
	params.Set("dateFrom", today)
	params.Set("dateTo", tomorrow)
	params.Set("status", "SCHEDULED,TIMED,IN_PLAY")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v4/matches?"+params.Encode(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating fixtures request: %w", err)
	}
	req.Header.Set("X-Auth-Token", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching fixtures: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetching fixtures: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Matches []footballDataMatch `json:"matches"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, "", fmt.Errorf("decoding fixtures response: %w", err)
	}
	if len(payload.Matches) == 0 {
		return nil, "", fmt.Errorf("fetching fixtures: empty match list")
	}

	matches := payload.Matches
	if len(matches) > fixtureBatchLimit {
		matches = matches[:fixtureBatchLimit]
	}

	fixtures := make([]football.Fixture, 0, len(matches))
	for idx, m := range matches {
		name := m.HomeTeam.Name
		if name == "" {
			name = m.HomeTeam.ShortName
		}
		home := football.CleanTeamName(name)

		name = m.AwayTeam.Name
		if name == "" {
			name = m.AwayTeam.ShortName
		}
		away := football.CleanTeamName(name)

		league := m.Competition.Name
		if league == "" {
			league = "Football League"
		}

		kickoff := ""
		if t, err := time.Parse(time.RFC3339, m.UTCDate); err == nil {
			kickoff = t.Format("15:04")
		}

		venue := m.Venue
		if venue == "" {
			venue = home + " Stadium"
		}

		status := m.Status
		if status == "" {
			status = "SCHEDULED"
		}

		fixtures = append(fixtures, football.Fixture{
			ID:      fmt.Sprintf("FD-%d-%d", idx, now.UnixMilli()),
			League:  league,
			Kickoff: kickoff,
			Venue:   venue,
			Home:    home,
			Away:    away,
			Status:  status,
			Source:  "Football-Data.org",
			Metrics: football.BuildMetrics(randomForm(), randomForm(), 0.7),
		})
	}

	return fixtures, "Football-Data.org API", nil
}

// APIFootballClient implements the FixtureProvider port against the
// API-Football service on RapidAPI. It serves as the fallback when
// football-data.org is unavailable.
type APIFootballClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	now     func() time.Time
}

// NewAPIFootballClient creates a fixtures client for API-Football.
func NewAPIFootballClient(baseURL, apiKey string) *APIFootballClient {
	return &APIFootballClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		now:     time.Now,
	}
}

type apiFootballMatch struct {
	Fixture struct {
		Date  string `json:"date"`
		Venue struct {
			Name string `json:"name"`
		} `json:"venue"`
		Status struct {
			Short string `json:"short"`
		} `json:"status"`
	} `json:"fixture"`
	League struct {
		Name string `json:"name"`
	} `json:"league"`
	Teams struct {
		Home struct {
			Name string `json:"name"`
		} `json:"home"`
		Away struct {
			Name string `json:"name"`
		} `json:"away"`
	} `json:"teams"`
}

// Fixtures returns today's matches mapped to the domain shape.
func (c *APIFootballClient) Fixtures(ctx context.Context) ([]football.Fixture, string, error) {
	now := c.now()

	params := url.Values{}
	params.Set("date", now.UTC().Format("2006-01-02"))
	params.Set("status", "NS-LIVE-1H-HT-2H-ET-P")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v3/fixtures?"+params.Encode(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating fixtures request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", "api-football-v1.p.rapidapi.com")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching fixtures: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetching fixtures: unexpected status %d", resp.StatusCode)
	}

	var payload struct {
		Response []apiFootballMatch `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, "", fmt.Errorf("decoding fixtures response: %w", err)
	}
	if len(payload.Response) == 0 {
		return nil, "", fmt.Errorf("fetching fixtures: empty match list")
	}

	matches := payload.Response
	if len(matches) > fixtureBatchLimit {
		matches = matches[:fixtureBatchLimit]
	}

	fixtures := make([]football.Fixture, 0, len(matches))
	for idx, m := range matches {
		home := football.CleanTeamName(m.Teams.Home.Name)
		away := football.CleanTeamName(m.Teams.Away.Name)

		league := m.League.Name
		if league == "" {
			league = "Football League"
		}

		kickoff := ""
		if t, err := time.Parse(time.RFC3339, m.Fixture.Date); err == nil {
			kickoff = t.Format("15:04")
		}

		venue := m.Fixture.Venue.Name
		if venue == "" {
			venue = home + " Stadium"
		}

		status := m.Fixture.Status.Short
		if status == "" {
			status = "NS"
		}

		fixtures = append(fixtures, football.Fixture{
			ID:      fmt.Sprintf("AF-%d-%d", idx, now.UnixMilli()),
			League:  league,
			Kickoff: kickoff,
			Venue:   venue,
			Home:    home,
			Away:    away,
			Status:  status,
			Source:  "API-Football",
			Metrics: football.BuildMetrics(randomForm(), randomForm(), 0.7),
		})
	}

	return fixtures, "API-Football (RapidAPI)", nil
}
