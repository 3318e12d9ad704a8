package driver

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"tvstream/internal/application"
)

// ScoreHTTPHandler handles HTTP requests for the football score, odds
// and fixtures proxies.
type ScoreHTTPHandler struct {
	service          *application.ScoreService
	oddsKeyAvailable bool
}

// NewScoreHTTPHandler creates a new HTTP handler for the football
// proxies. oddsKeyAvailable reflects whether the odds upstream key is
// configured; without it the odds endpoints refuse to call upstream.
func NewScoreHTTPHandler(service *application.ScoreService, oddsKeyAvailable bool) *ScoreHTTPHandler {
	return &ScoreHTTPHandler{service: service, oddsKeyAvailable: oddsKeyAvailable}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// HandleLiveScores handles GET /api/livescore
func (h *ScoreHTTPHandler) HandleLiveScores(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.LiveScores(r.Context())
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":   false,
			"error":     "Unable to fetch live scores",
			"cached":    false,
			"timestamp": timestamp(),
		})
		return
	}

	response := map[string]interface{}{
		"success": true,
		"data":    result.Data,
		"cached":  result.Cached,
	}
	if result.Cached {
		response["cacheAge"] = result.CacheAge
	} else {
		response["timestamp"] = timestamp()
	}

	writeJSON(w, http.StatusOK, response)
}

// HandleLeagueLive handles GET /api/livescore/league/{leagueId}
func (h *ScoreHTTPHandler) HandleLeagueLive(w http.ResponseWriter, r *http.Request) {
	leagueID := mux.Vars(r)["leagueId"]

	data, err := h.service.LeagueLive(r.Context(), leagueID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Failed to fetch league live scores",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"leagueId":  leagueID,
		"data":      data,
		"timestamp": timestamp(),
	})
}

// HandleToday handles GET /api/livescore/today
func (h *ScoreHTTPHandler) HandleToday(w http.ResponseWriter, r *http.Request) {
	data, date, err := h.service.TodayMatches(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Failed to fetch today's matches",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"date":      date,
		"data":      data,
		"timestamp": timestamp(),
	})
}

// HandleFixtures handles GET /api/football-fixtures
func (h *ScoreHTTPHandler) HandleFixtures(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Fixtures(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Failed to fetch today's football fixtures",
		})
		return
	}

	response := map[string]interface{}{
		"success":  true,
		"fixtures": result.Fixtures,
		"source":   result.Source,
		"cached":   result.Cached,
	}
	if result.Cached {
		response["cacheAge"] = result.CacheAge
	} else {
		response["timestamp"] = timestamp()
	}

	writeJSON(w, http.StatusOK, response)
}

// HandleOdds handles GET /api/odds
func (h *ScoreHTTPHandler) HandleOdds(w http.ResponseWriter, r *http.Request) {
	if !h.oddsKeyAvailable {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "The Odds API key not configured",
		})
		return
	}

	query := r.URL.Query()
	sport := query.Get("sport")
	if sport == "" {
		sport = "soccer_epl"
	}
	regions := query.Get("regions")
	if regions == "" {
		regions = "uk,us,eu"
	}
	markets := query.Get("markets")
	if markets == "" {
		markets = "h2h"
	}

	outcome, err := h.service.Odds(r.Context(), sport, regions, markets)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Failed to fetch odds data",
		})
		return
	}

	if outcome.Cached {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":  true,
			"odds":     outcome.Odds,
			"cached":   true,
			"cacheAge": outcome.CacheAge,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"odds":      outcome.Odds,
		"cached":    false,
		"timestamp": timestamp(),
		"remaining": outcome.Remaining,
		"used":      outcome.Used,
	})
}

// HandleOddsSports handles GET /api/odds/sports
func (h *ScoreHTTPHandler) HandleOddsSports(w http.ResponseWriter, r *http.Request) {
	if !h.oddsKeyAvailable {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "The Odds API key not configured",
		})
		return
	}

	sports, err := h.service.OddsSports(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Failed to fetch sports list",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"sports":  sports,
	})
}
