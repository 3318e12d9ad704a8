package application

import (
	"context"
	"errors"
	"strings"

	"tvstream/internal/football"
	"tvstream/internal/port/driven"
)

// ErrTeamsRequired signals a prediction request without both team
// names.
var ErrTeamsRequired = errors.New("homeTeam and awayTeam are required")

// PredictionService provides the AI match-prediction use case.
type PredictionService struct {
	predictor driven.MatchPredictor
}

// NewPredictionService creates a new PredictionService with the given
// predictor.
func NewPredictionService(predictor driven.MatchPredictor) *PredictionService {
	return &PredictionService{predictor: predictor}
}

// Predict returns a win-probability split for the pairing.
// Returns ErrTeamsRequired when either team name is blank.
func (s *PredictionService) Predict(ctx context.Context, home, away string, metrics map[string]float64) (football.Prediction, error) {
	home = strings.TrimSpace(home)
	away = strings.TrimSpace(away)
	if home == "" || away == "" {
		return football.Prediction{}, ErrTeamsRequired
	}

	if metrics == nil {
		metrics = map[string]float64{}
	}

	return s.predictor.Predict(ctx, home, away, metrics)
}
