package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"tvstream/internal/cache"
	"tvstream/internal/football"
	"tvstream/internal/metrics"
	"tvstream/internal/port/driven"
)

const liveScoreKey = "livescore"
const fixturesKey = "fixtures"

// ScoreResult is a live-score payload with its caching annotation.
type ScoreResult struct {
	Data     json.RawMessage
	Cached   bool
	CacheAge int
}

// FixturesResult is the fixtures list with its source attribution and
// caching annotation.
type FixturesResult struct {
	Fixtures []football.Fixture
	Source   string
	Cached   bool
	CacheAge int
}

// OddsOutcome is an odds payload with its caching annotation and the
// upstream's quota counters. The counters are only present on a fresh
// fetch.
type OddsOutcome struct {
	Odds      json.RawMessage
	Cached    bool
	CacheAge  int
	Remaining string
	Used      string
}

// ScoreService proxies the football upstreams with short-lived
// caching so a burst of viewers does not exhaust upstream quotas.
type ScoreService struct {
	scores           driven.ScoreProvider
	fixtureProviders []driven.FixtureProvider
	odds             driven.OddsProvider

	liveCache     *cache.Cache[json.RawMessage]
	fixturesCache *cache.Cache[FixturesResult]
	oddsCache     *cache.Cache[json.RawMessage]

	now    func() time.Time
	logger *slog.Logger
}

// NewScoreService creates a new ScoreService. fixtureProviders are
// tried in order; when every one fails the service serves generated
// sample fixtures.
func NewScoreService(
	scores driven.ScoreProvider,
	fixtureProviders []driven.FixtureProvider,
	odds driven.OddsProvider,
	liveCache *cache.Cache[json.RawMessage],
	fixturesCache *cache.Cache[FixturesResult],
	oddsCache *cache.Cache[json.RawMessage],
	logger *slog.Logger,
) *ScoreService {
	return &ScoreService{
		scores:           scores,
		fixtureProviders: fixtureProviders,
		odds:             odds,
		liveCache:        liveCache,
		fixturesCache:    fixturesCache,
		oddsCache:        oddsCache,
		now:              time.Now,
		logger:           logger,
	}
}

func ageSeconds(d time.Duration) int {
	return int(d.Seconds())
}

// LiveScores returns the current live matches, served from cache while
// fresh. Only successful fetches are cached, so a failing upstream is
// retried on the next request.
func (s *ScoreService) LiveScores(ctx context.Context) (ScoreResult, error) {
	if data, ok := s.liveCache.Get(liveScoreKey); ok {
		age, _ := s.liveCache.Age(liveScoreKey)
		metrics.RecordCacheHit("livescore")
		return ScoreResult{Data: data, Cached: true, CacheAge: ageSeconds(age)}, nil
	}
	metrics.RecordCacheMiss("livescore")

	data, err := s.scores.LiveScores(ctx)
	if err != nil {
		metrics.RecordUpstreamError("allfootball")
		return ScoreResult{}, err
	}

	s.liveCache.Set(liveScoreKey, data)

	return ScoreResult{Data: data}, nil
}

// LeagueLive returns the live matches of one league, uncached.
func (s *ScoreService) LeagueLive(ctx context.Context, leagueID string) (json.RawMessage, error) {
	data, err := s.scores.LeagueLive(ctx, leagueID)
	if err != nil {
		metrics.RecordUpstreamError("allfootball")
		return nil, err
	}
	return data, nil
}

// TodayMatches returns the matches scheduled for today, uncached. The
// second value is the ISO date the lookup used.
func (s *ScoreService) TodayMatches(ctx context.Context) (json.RawMessage, string, error) {
	date := s.now().UTC().Format("2006-01-02")

	data, err := s.scores.MatchesByDate(ctx, date)
	if err != nil {
		metrics.RecordUpstreamError("allfootball")
		return nil, date, err
	}
	return data, date, nil
}

// Fixtures returns today's fixtures for the prediction view, at most
// six per response with home/away duplicates removed. Providers are
// tried in order; when all fail a generated sample set stands in so
// the view never comes up empty. Results are cached briefly.
func (s *ScoreService) Fixtures(ctx context.Context) (FixturesResult, error) {
	if result, ok := s.fixturesCache.Get(fixturesKey); ok {
		age, _ := s.fixturesCache.Age(fixturesKey)
		metrics.RecordCacheHit("fixtures")
		result.Cached = true
		result.CacheAge = ageSeconds(age)
		return result, nil
	}
	metrics.RecordCacheMiss("fixtures")

	for _, provider := range s.fixtureProviders {
		fixtures, source, err := provider.Fixtures(ctx)
		if err != nil {
			metrics.RecordUpstreamError("fixtures")
			s.logger.Warn("fixture provider unavailable", "error", err)
			continue
		}

		fixtures = football.DedupeFixtures(fixtures)
		if len(fixtures) > 6 {
			fixtures = fixtures[:6]
		}

		result := FixturesResult{Fixtures: fixtures, Source: source}
		s.fixturesCache.Set(fixturesKey, result)
		return result, nil
	}

	s.logger.Warn("all fixture providers unavailable, serving sample fixtures")

	samples := football.SampleFixtures(s.now(), func() (float64, float64) {
		return 0.4 + rand.Float64()*0.5, 0.4 + rand.Float64()*0.5
	})

	result := FixturesResult{Fixtures: samples, Source: "Sample Data (Today's Fixtures)"}
	s.fixturesCache.Set(fixturesKey, result)
	return result, nil
}

// Odds returns betting odds for a sport/regions/markets combination,
// cached per combination. Quota counters are only reported on a fresh
// fetch.
func (s *ScoreService) Odds(ctx context.Context, sport, regions, markets string) (OddsOutcome, error) {
	key := fmt.Sprintf("%s-%s-%s", sport, regions, markets)

	if data, ok := s.oddsCache.Get(key); ok {
		age, _ := s.oddsCache.Age(key)
		metrics.RecordCacheHit("odds")
		return OddsOutcome{Odds: data, Cached: true, CacheAge: ageSeconds(age)}, nil
	}
	metrics.RecordCacheMiss("odds")

	result, err := s.odds.Odds(ctx, sport, regions, markets)
	if err != nil {
		metrics.RecordUpstreamError("odds")
		return OddsOutcome{}, err
	}

	s.oddsCache.Set(key, result.Odds)

	return OddsOutcome{
		Odds:      result.Odds,
		Remaining: result.Remaining,
		Used:      result.Used,
	}, nil
}

// OddsSports lists the sports the odds upstream can quote, uncached.
func (s *ScoreService) OddsSports(ctx context.Context) (json.RawMessage, error) {
	data, err := s.odds.Sports(ctx)
	if err != nil {
		metrics.RecordUpstreamError("odds")
		return nil, err
	}
	return data, nil
}
