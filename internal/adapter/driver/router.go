package driver

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Categories    *CategoryHTTPHandler
	Streams       *StreamHTTPHandler
	Notifications *NotificationHTTPHandler
	Ticker        *TickerHTTPHandler
	Settings      *SettingsHTTPHandler
	Scores        *ScoreHTTPHandler
	Predictions   *PredictionHTTPHandler
	Health        *HealthHTTPHandler

	AdminToken string
	Logger     *slog.Logger
}

// NewRouter builds the full route table: the public API, the
// token-guarded admin API, the Prometheus endpoint and the health
// check.
func NewRouter(deps RouterDeps) *mux.Router {
	r := mux.NewRouter()

	r.Use(RequestLogger(deps.Logger))
	r.Use(Gzip)

	// Public API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/streams", deps.Streams.HandleCatalog).Methods(http.MethodGet)
	api.HandleFunc("/categories", deps.Streams.HandleCategories).Methods(http.MethodGet)
	api.HandleFunc("/iptv-playlists", deps.Categories.HandlePublicList).Methods(http.MethodGet)
	api.HandleFunc("/iptv/proxy/{key}", deps.Categories.HandleProxy).Methods(http.MethodGet)
	api.HandleFunc("/notifications", deps.Notifications.HandleUnread).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", deps.Notifications.HandleMarkRead).Methods(http.MethodPost)
	api.HandleFunc("/scrolling-text", deps.Ticker.HandleActive).Methods(http.MethodGet)
	api.HandleFunc("/settings", deps.Settings.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/livescore", deps.Scores.HandleLiveScores).Methods(http.MethodGet)
	api.HandleFunc("/livescore/today", deps.Scores.HandleToday).Methods(http.MethodGet)
	api.HandleFunc("/livescore/league/{leagueId}", deps.Scores.HandleLeagueLive).Methods(http.MethodGet)
	api.HandleFunc("/football-fixtures", deps.Scores.HandleFixtures).Methods(http.MethodGet)
	api.HandleFunc("/odds", deps.Scores.HandleOdds).Methods(http.MethodGet)
	api.HandleFunc("/odds/sports", deps.Scores.HandleOddsSports).Methods(http.MethodGet)
	api.HandleFunc("/ai/predict", deps.Predictions.HandlePredict).Methods(http.MethodPost)

	// Admin API
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(AdminAuth(deps.AdminToken))
	admin.HandleFunc("/streams", deps.Streams.HandleAdminList).Methods(http.MethodGet)
	admin.HandleFunc("/streams", deps.Streams.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/streams/{id}", deps.Streams.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/streams/{id}", deps.Streams.HandleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/iptv-playlists", deps.Categories.HandleAdminList).Methods(http.MethodGet)
	admin.HandleFunc("/iptv-playlists", deps.Categories.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/iptv-playlists/{key}", deps.Categories.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/iptv-playlists/{key}", deps.Categories.HandleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/notifications", deps.Notifications.HandleAdminList).Methods(http.MethodGet)
	admin.HandleFunc("/notifications", deps.Notifications.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/notifications/{id}", deps.Notifications.HandleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/scrolling-text", deps.Ticker.HandleAdminList).Methods(http.MethodGet)
	admin.HandleFunc("/scrolling-text", deps.Ticker.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/scrolling-text/{id}", deps.Ticker.HandleUpdate).Methods(http.MethodPut)
	admin.HandleFunc("/scrolling-text/{id}", deps.Ticker.HandleDelete).Methods(http.MethodDelete)
	admin.HandleFunc("/settings", deps.Settings.HandleUpdate).Methods(http.MethodPost)

	// Playlist export
	r.HandleFunc("/playlists/{key:[a-z0-9-]+}.m3u", deps.Categories.HandleExport).Methods(http.MethodGet)

	// Operational endpoints
	r.HandleFunc("/health", deps.Health.HandleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
