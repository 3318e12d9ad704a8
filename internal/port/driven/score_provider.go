package driven

import (
	"context"
	"encoding/json"

	"tvstream/internal/football"
)

// ScoreProvider exposes the live-score upstream. Payloads are passed
// through untouched as raw JSON; the service layer only adds caching
// metadata around them.
type ScoreProvider interface {
	// LiveScores returns the current live matches.
	LiveScores(ctx context.Context) (json.RawMessage, error)

	// LeagueLive returns the live matches of one league.
	LeagueLive(ctx context.Context, leagueID string) (json.RawMessage, error)

	// MatchesByDate returns the matches scheduled for an ISO date
	// (YYYY-MM-DD).
	MatchesByDate(ctx context.Context, date string) (json.RawMessage, error)
}

// FixtureProvider returns upcoming fixtures already mapped to the
// domain shape.
type FixtureProvider interface {
	// Fixtures returns today's fixtures. The second value names the
	// upstream source for response attribution.
	Fixtures(ctx context.Context) ([]football.Fixture, string, error)
}

// OddsResult carries an odds payload along with the upstream's quota
// accounting headers.
type OddsResult struct {
	Odds      json.RawMessage
	Remaining string
	Used      string
}

// OddsProvider exposes the betting-odds upstream.
type OddsProvider interface {
	// Odds returns odds for a sport/regions/markets combination.
	Odds(ctx context.Context, sport, regions, markets string) (OddsResult, error)

	// Sports lists the sports the upstream can quote.
	Sports(ctx context.Context) (json.RawMessage, error)
}

// MatchPredictor produces a win-probability split for a pairing.
type MatchPredictor interface {
	Predict(ctx context.Context, home, away string, metrics map[string]float64) (football.Prediction, error)
}
