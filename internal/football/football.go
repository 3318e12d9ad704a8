// Package football holds the domain types shared by the live-score,
// fixture and prediction proxies.
package football

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/grafana/regexp"
)

// Metrics are the synthetic strength indicators attached to a fixture
// and fed to the prediction endpoint.
type Metrics struct {
	HomeForm     float64 `json:"homeForm"`
	AwayForm     float64 `json:"awayForm"`
	AttackDelta  float64 `json:"attackDelta"`
	DefenseDelta float64 `json:"defenseDelta"`
	Importance   float64 `json:"importance"`
	HeadToHead   float64 `json:"headToHead"`
	Tempo        float64 `json:"tempo"`
}

// Fixture is one upcoming or in-play match.
type Fixture struct {
	ID      string  `json:"id"`
	League  string  `json:"league"`
	Kickoff string  `json:"kickoff"`
	Venue   string  `json:"venue"`
	Home    string  `json:"home"`
	Away    string  `json:"away"`
	Status  string  `json:"status"`
	Source  string  `json:"source"`
	Metrics Metrics `json:"metrics"`
}

// Prediction is the win-probability split returned by the AI
// prediction endpoint, in integer percent.
type Prediction struct {
	HomeWin int `json:"homeWin"`
	Draw    int `json:"draw"`
	AwayWin int `json:"awayWin"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildMetrics derives the full metric set from the two form values
// and an importance weight, rounded to two decimals.
func BuildMetrics(homeForm, awayForm, importance float64) Metrics {
	return Metrics{
		HomeForm:     round2(homeForm),
		AwayForm:     round2(awayForm),
		AttackDelta:  round2((homeForm - awayForm) * 0.6),
		DefenseDelta: round2((1 - awayForm - (1 - homeForm)) * 0.4),
		Importance:   importance,
		HeadToHead:   round2((homeForm + (1 - awayForm)) / 2),
		Tempo:        round2((homeForm+awayForm)/2*0.8 + 0.2),
	}
}

var (
	suffixRe  = regexp.MustCompile(`(?i)\b(fc|cf|united|city|town|rovers|wanderers|athletic|albion)\b`)
	nonWordRe = regexp.MustCompile(`[^\w\s]`)
)

// CleanTeamName strips club suffixes and punctuation and keeps at most
// the first two remaining words. Empty results fall back to "Team".
func CleanTeamName(name string) string {
	s := suffixRe.ReplaceAllString(name, "")
	s = nonWordRe.ReplaceAllString(s, "")
	words := strings.Fields(s)
	if len(words) > 2 {
		words = words[:2]
	}
	cleaned := strings.TrimSpace(strings.Join(words, " "))
	if cleaned == "" {
		return "Team"
	}
	return cleaned
}

// DedupeFixtures removes fixtures whose home/away pair (in either
// order) has already been seen, preserving first-seen order.
func DedupeFixtures(fixtures []Fixture) []Fixture {
	seen := make(map[string]bool)
	var out []Fixture

	for _, f := range fixtures {
		key := strings.ToLower(f.Home) + "-" + strings.ToLower(f.Away)
		reverse := strings.ToLower(f.Away) + "-" + strings.ToLower(f.Home)
		if seen[key] || seen[reverse] {
			continue
		}
		seen[key] = true
		out = append(out, f)
	}

	return out
}

// SampleFixtures returns a deterministic set of today's fixtures used
// when every upstream source is unavailable. forms supplies the
// synthetic (homeForm, awayForm) pair per fixture.
func SampleFixtures(now time.Time, forms func() (float64, float64)) []Fixture {
	samples := []struct {
		home, away, league, kickoff string
	}{
		{"Manchester City", "Arsenal", "Premier League", "15:00"},
		{"Barcelona", "Real Madrid", "La Liga", "16:30"},
		{"Bayern Munich", "Borussia Dortmund", "Bundesliga", "17:00"},
		{"PSG", "Marseille", "Ligue 1", "18:00"},
		{"Juventus", "Inter Milan", "Serie A", "19:00"},
		{"Liverpool", "Chelsea", "Premier League", "20:00"},
	}

	fixtures := make([]Fixture, 0, len(samples))
	for i, s := range samples {
		homeForm, awayForm := forms()
		fixtures = append(fixtures, Fixture{
			ID:      fmt.Sprintf("SAMPLE-%d-%d", i, now.UnixMilli()),
			League:  s.league,
			Kickoff: s.kickoff,
			Venue:   s.home + " Stadium",
			Home:    s.home,
			Away:    s.away,
			Status:  "SCHEDULED",
			Source:  "Sample Data (Today)",
			Metrics: BuildMetrics(homeForm, awayForm, 0.7),
		})
	}
	return fixtures
}
