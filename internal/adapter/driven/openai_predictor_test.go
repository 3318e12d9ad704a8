package driven

import (
	"errors"
	"testing"
)

func TestExtractPrediction(t *testing.T) {
	t.Run("parses bare JSON", func(t *testing.T) {
		pred, err := extractPrediction(`{"homeWin": 55, "draw": 25, "awayWin": 20}`)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if pred.HomeWin != 55 || pred.Draw != 25 || pred.AwayWin != 20 {
			t.Errorf("expected 55/25/20, got %d/%d/%d", pred.HomeWin, pred.Draw, pred.AwayWin)
		}
	})

	t.Run("extracts JSON wrapped in prose", func(t *testing.T) {
		pred, err := extractPrediction("Here is my prediction:\n{\"homeWin\": 40, \"draw\": 30, \"awayWin\": 30}\nGood luck!")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if pred.HomeWin != 40 {
			t.Errorf("expected homeWin 40, got %d", pred.HomeWin)
		}
	})

	t.Run("rejects output without JSON", func(t *testing.T) {
		_, err := extractPrediction("I cannot predict that match.")
		if !errors.Is(err, ErrInvalidAIResponse) {
			t.Errorf("expected ErrInvalidAIResponse, got %v", err)
		}
	})

	t.Run("rejects malformed JSON block", func(t *testing.T) {
		_, err := extractPrediction("{homeWin: not json}")
		if !errors.Is(err, ErrInvalidAIResponse) {
			t.Errorf("expected ErrInvalidAIResponse, got %v", err)
		}
	})
}
