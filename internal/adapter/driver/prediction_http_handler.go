package driver

import (
	"encoding/json"
	"errors"
	"net/http"

	"tvstream/internal/application"
)

// PredictionHTTPHandler handles HTTP requests for AI match
// predictions.
type PredictionHTTPHandler struct {
	service *application.PredictionService
}

// NewPredictionHTTPHandler creates a new HTTP handler for predictions.
func NewPredictionHTTPHandler(service *application.PredictionService) *PredictionHTTPHandler {
	return &PredictionHTTPHandler{service: service}
}

// predictionRequest represents the JSON body for a prediction.
type predictionRequest struct {
	HomeTeam string             `json:"homeTeam"`
	AwayTeam string             `json:"awayTeam"`
	Metrics  map[string]float64 `json:"metrics"`
}

// HandlePredict handles POST /api/ai/predict
func (h *PredictionHTTPHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "invalid request body",
		})
		return
	}

	prediction, err := h.service.Predict(r.Context(), req.HomeTeam, req.AwayTeam, req.Metrics)
	if err != nil {
		if errors.Is(err, application.ErrTeamsRequired) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"error":   err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Invalid AI response",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"prediction": prediction,
	})
}
