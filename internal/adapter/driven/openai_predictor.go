package driven

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"tvstream/internal/football"
)

// ErrInvalidAIResponse signals that the model answered with something
// that is not a prediction.
var ErrInvalidAIResponse = errors.New("invalid AI response")

// OpenAIPredictor implements the MatchPredictor port using the OpenAI
// chat completion API.
type OpenAIPredictor struct {
	client *openai.Client
	model  string
}

// NewOpenAIPredictor creates a predictor for the given API key and
// model name.
func NewOpenAIPredictor(apiKey, model string) *OpenAIPredictor {
	return &OpenAIPredictor{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Predict asks the model for a win-probability split of the pairing.
func (p *OpenAIPredictor) Predict(ctx context.Context, home, away string, metrics map[string]float64) (football.Prediction, error) {
	metricsJSON, err := json.Marshal(metrics)
	if err != nil {
		return football.Prediction{}, fmt.Errorf("encoding metrics: %w", err)
	}

	prompt := fmt.Sprintf(
		"You are a football prediction assistant. Given teams and simple metrics, return win probabilities as integers for homeWin, draw, and awayWin that sum to ~100.\nTeams: %s vs %s\nMetrics: %s\nRespond strictly as JSON: {\"homeWin\": 55, \"draw\": 25, \"awayWin\": 20}",
		home, away, metricsJSON,
	)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return football.Prediction{}, fmt.Errorf("requesting prediction: %w", err)
	}

	if len(resp.Choices) == 0 {
		return football.Prediction{}, ErrInvalidAIResponse
	}

	return extractPrediction(resp.Choices[0].Message.Content)
}

// extractPrediction parses the model output as JSON, falling back to
// the first brace-delimited block when the model wraps the JSON in
// prose.
func extractPrediction(text string) (football.Prediction, error) {
	var pred football.Prediction
	if err := json.Unmarshal([]byte(text), &pred); err == nil {
		return pred, nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end < start {
		return football.Prediction{}, ErrInvalidAIResponse
	}

	if err := json.Unmarshal([]byte(text[start:end+1]), &pred); err != nil {
		return football.Prediction{}, ErrInvalidAIResponse
	}

	return pred, nil
}
