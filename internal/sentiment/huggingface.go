package sentiment

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/api"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/logger"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/store"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/trace"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/types"
)

const inferenceBaseURL = "https://api-inference.huggingface.co"

// Polarity mapping for the three-class model output. Unrecognized
// labels map to neutral.
var labelPolarity = map[string]struct {
	label    types.SentimentLabel
	polarity float64
}{
	"LABEL_0":  {types.SentimentNegative, -0.8},
	"LABEL_1":  {types.SentimentNeutral, 0},
	"LABEL_2":  {types.SentimentPositive, 0.8},
	"negative": {types.SentimentNegative, -0.8},
	"neutral":  {types.SentimentNeutral, 0},
	"positive": {types.SentimentPositive, 0.8},
}

// HuggingFaceClassifier scores text against a hosted sentiment model.
type HuggingFaceClassifier struct {
	client *api.Client
	model  string
	apiKey string
}

// NewHuggingFaceClassifier creates a classifier for the configured model.
// The API key is read from the environment.
func NewHuggingFaceClassifier(cfg *store.Config) *HuggingFaceClassifier {
	return newClassifier(
		inferenceBaseURL,
		os.Getenv(store.EnvHuggingFaceAPIKey),
		cfg.Sentiment.Model,
		time.Duration(cfg.Sentiment.TimeoutSeconds)*time.Second,
	)
}

func newClassifier(baseURL, apiKey, model string, timeout time.Duration) *HuggingFaceClassifier {
	return &HuggingFaceClassifier{
		client: api.NewClient(
			api.WithBaseURL(baseURL),
			api.WithBearerToken(apiKey),
			api.WithTimeout(timeout),
			api.WithLogging(true),
		),
		model:  model,
		apiKey: apiKey,
	}
}

// Classify sends cleanText to the inference endpoint and maps the
// categorical result to a polarity. Any transport, status or payload
// failure degrades to the neutral default rather than an error: the
// pipeline must never stall because the model is unavailable, and the
// next poll cycle is the retry mechanism. The only hard error is a
// missing API key, which the caller handles with its own fallback.
func (h *HuggingFaceClassifier) Classify(ctx context.Context, cleanText string) (types.SentimentResult, error) {
	ctx, span := trace.StartSpan(ctx, "huggingface-api-call")
	defer span.End()

	if h.apiKey == "" {
		return types.SentimentResult{}, errors.New("HUGGINGFACE_API_KEY missing")
	}

	resp, err := h.client.POST(ctx, "/models/"+h.model, map[string]any{"inputs": cleanText})
	if err != nil {
		logger.ErrorWithErr(ctx, "Sentiment inference call failed, using neutral default", err, "model", h.model)
		return neutralDefault(), nil
	}

	best, err := parseTopResult(resp)
	if err != nil {
		logger.ErrorWithErr(ctx, "Malformed sentiment inference response, using neutral default", err, "model", h.model)
		return neutralDefault(), nil
	}

	mapped, ok := labelPolarity[best.Label]
	if !ok {
		logger.Warn(ctx, "Unrecognized sentiment label", "label", best.Label)
		mapped.label = types.SentimentNeutral
		mapped.polarity = 0
	}

	return types.SentimentResult{
		Label:           mapped.label,
		Polarity:        mapped.polarity,
		ModelConfidence: best.Score,
	}, nil
}

// labelScore is one classification candidate from the inference API.
type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// parseTopResult extracts the top-ranked classification. The API
// returns either [[{label,score},...]] or [{label,score},...] depending
// on the model, so both shapes are accepted.
func parseTopResult(resp *api.Response) (labelScore, error) {
	var nested [][]labelScore
	if err := resp.ParseJSON(&nested); err == nil {
		if len(nested) == 0 || len(nested[0]) == 0 {
			return labelScore{}, errors.New("empty classification result")
		}
		return nested[0][0], nil
	}

	var flat []labelScore
	if err := resp.ParseJSON(&flat); err != nil {
		return labelScore{}, err
	}
	if len(flat) == 0 {
		return labelScore{}, errors.New("empty classification result")
	}
	return flat[0], nil
}

// neutralDefault is the availability-over-accuracy fallback result.
func neutralDefault() types.SentimentResult {
	return types.SentimentResult{
		Label:           types.SentimentNeutral,
		Polarity:        0,
		ModelConfidence: 0.5,
		Fallback:        true,
	}
}
