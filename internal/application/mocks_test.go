package application

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"time"

	"tvstream/internal/category"
	"tvstream/internal/football"
	"tvstream/internal/m3u"
	"tvstream/internal/notification"
	"tvstream/internal/port/driven"
	"tvstream/internal/settings"
	"tvstream/internal/stream"
	"tvstream/internal/ticker"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeClock struct {
	mu      sync.Mutex
	current time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

type mockCategoryRepository struct {
	SaveFunc      func(ctx context.Context, cat category.Category) error
	UpdateFunc    func(ctx context.Context, cat category.Category) error
	FindByKeyFunc func(ctx context.Context, key string) (category.Category, error)
	FindAllFunc   func(ctx context.Context) ([]category.Category, error)
	DeleteFunc    func(ctx context.Context, key string) (category.Category, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, cat category.Category) error {
	return m.SaveFunc(ctx, cat)
}

func (m *mockCategoryRepository) Update(ctx context.Context, cat category.Category) error {
	return m.UpdateFunc(ctx, cat)
}

func (m *mockCategoryRepository) FindByKey(ctx context.Context, key string) (category.Category, error) {
	return m.FindByKeyFunc(ctx, key)
}

func (m *mockCategoryRepository) FindAll(ctx context.Context) ([]category.Category, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, key string) (category.Category, error) {
	return m.DeleteFunc(ctx, key)
}

type mockPlaylistFetcher struct {
	FetchFunc func(ctx context.Context, url string) ([]m3u.Track, error)
	calls     int
}

func (m *mockPlaylistFetcher) Fetch(ctx context.Context, url string) ([]m3u.Track, error) {
	m.calls++
	return m.FetchFunc(ctx, url)
}

type mockStreamRepository struct {
	SaveFunc     func(ctx context.Context, s stream.Stream) error
	UpdateFunc   func(ctx context.Context, s stream.Stream) error
	FindByIDFunc func(ctx context.Context, id int) (stream.Stream, error)
	FindAllFunc  func(ctx context.Context) ([]stream.Stream, error)
	DeleteFunc   func(ctx context.Context, id int) (stream.Stream, error)
}

func (m *mockStreamRepository) Save(ctx context.Context, s stream.Stream) error {
	return m.SaveFunc(ctx, s)
}

func (m *mockStreamRepository) Update(ctx context.Context, s stream.Stream) error {
	return m.UpdateFunc(ctx, s)
}

func (m *mockStreamRepository) FindByID(ctx context.Context, id int) (stream.Stream, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockStreamRepository) FindAll(ctx context.Context) ([]stream.Stream, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockStreamRepository) Delete(ctx context.Context, id int) (stream.Stream, error) {
	return m.DeleteFunc(ctx, id)
}

type mockNotificationRepository struct {
	SaveFunc     func(ctx context.Context, n notification.Notification) error
	UpdateFunc   func(ctx context.Context, n notification.Notification) error
	FindByIDFunc func(ctx context.Context, id int) (notification.Notification, error)
	FindAllFunc  func(ctx context.Context) ([]notification.Notification, error)
	DeleteFunc   func(ctx context.Context, id int) (notification.Notification, error)
}

func (m *mockNotificationRepository) Save(ctx context.Context, n notification.Notification) error {
	return m.SaveFunc(ctx, n)
}

func (m *mockNotificationRepository) Update(ctx context.Context, n notification.Notification) error {
	return m.UpdateFunc(ctx, n)
}

func (m *mockNotificationRepository) FindByID(ctx context.Context, id int) (notification.Notification, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockNotificationRepository) FindAll(ctx context.Context) ([]notification.Notification, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockNotificationRepository) Delete(ctx context.Context, id int) (notification.Notification, error) {
	return m.DeleteFunc(ctx, id)
}

type mockTickerRepository struct {
	SaveFunc     func(ctx context.Context, msg ticker.Message) error
	UpdateFunc   func(ctx context.Context, msg ticker.Message) error
	FindByIDFunc func(ctx context.Context, id int) (ticker.Message, error)
	FindAllFunc  func(ctx context.Context) ([]ticker.Message, error)
	DeleteFunc   func(ctx context.Context, id int) error
}

func (m *mockTickerRepository) Save(ctx context.Context, msg ticker.Message) error {
	return m.SaveFunc(ctx, msg)
}

func (m *mockTickerRepository) Update(ctx context.Context, msg ticker.Message) error {
	return m.UpdateFunc(ctx, msg)
}

func (m *mockTickerRepository) FindByID(ctx context.Context, id int) (ticker.Message, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockTickerRepository) FindAll(ctx context.Context) ([]ticker.Message, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockTickerRepository) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}

type mockSettingsRepository struct {
	GetFunc  func(ctx context.Context) (settings.Settings, error)
	SaveFunc func(ctx context.Context, s settings.Settings) error
}

func (m *mockSettingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	return m.GetFunc(ctx)
}

func (m *mockSettingsRepository) Save(ctx context.Context, s settings.Settings) error {
	return m.SaveFunc(ctx, s)
}

type mockScoreProvider struct {
	LiveScoresFunc    func(ctx context.Context) (json.RawMessage, error)
	LeagueLiveFunc    func(ctx context.Context, leagueID string) (json.RawMessage, error)
	MatchesByDateFunc func(ctx context.Context, date string) (json.RawMessage, error)
	liveCalls         int
}

func (m *mockScoreProvider) LiveScores(ctx context.Context) (json.RawMessage, error) {
	m.liveCalls++
	return m.LiveScoresFunc(ctx)
}

func (m *mockScoreProvider) LeagueLive(ctx context.Context, leagueID string) (json.RawMessage, error) {
	return m.LeagueLiveFunc(ctx, leagueID)
}

func (m *mockScoreProvider) MatchesByDate(ctx context.Context, date string) (json.RawMessage, error) {
	return m.MatchesByDateFunc(ctx, date)
}

type mockFixtureProvider struct {
	FixturesFunc func(ctx context.Context) ([]football.Fixture, string, error)
	calls        int
}

func (m *mockFixtureProvider) Fixtures(ctx context.Context) ([]football.Fixture, string, error) {
	m.calls++
	return m.FixturesFunc(ctx)
}

type mockOddsProvider struct {
	OddsFunc   func(ctx context.Context, sport, regions, markets string) (driven.OddsResult, error)
	SportsFunc func(ctx context.Context) (json.RawMessage, error)
	oddsCalls  int
}

func (m *mockOddsProvider) Odds(ctx context.Context, sport, regions, markets string) (driven.OddsResult, error) {
	m.oddsCalls++
	return m.OddsFunc(ctx, sport, regions, markets)
}

func (m *mockOddsProvider) Sports(ctx context.Context) (json.RawMessage, error) {
	return m.SportsFunc(ctx)
}

type mockMatchPredictor struct {
	PredictFunc func(ctx context.Context, home, away string, metrics map[string]float64) (football.Prediction, error)
}

func (m *mockMatchPredictor) Predict(ctx context.Context, home, away string, metrics map[string]float64) (football.Prediction, error) {
	return m.PredictFunc(ctx, home, away, metrics)
}
