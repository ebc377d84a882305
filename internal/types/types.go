package types

import "time"

// Post is a single post fetched from the upstream feed. Immutable once fetched.
type Post struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// SentimentLabel is the categorical output of the sentiment model.
type SentimentLabel string

const (
	SentimentNegative SentimentLabel = "NEGATIVE"
	SentimentNeutral  SentimentLabel = "NEUTRAL"
	SentimentPositive SentimentLabel = "POSITIVE"
)

// SentimentResult is the outcome of one sentiment inference call.
// Fallback is true when the remote call failed and the neutral default
// was substituted instead.
type SentimentResult struct {
	Label           SentimentLabel `json:"label"`
	Polarity        float64        `json:"polarity"`
	ModelConfidence float64        `json:"model_confidence"`
	Fallback        bool           `json:"fallback,omitempty"`
}

// SignalType is the ternary trading signal classification.
type SignalType string

const (
	SignalBuy     SignalType = "BUY"
	SignalSell    SignalType = "SELL"
	SignalNeutral SignalType = "NEUTRAL"
)

// Signal is a classified trading signal for one post. Confidence is a
// percentage; the cash-tag bonus is added after the clamp, so it can
// exceed 100 when symbols are present.
type Signal struct {
	Type           SignalType `json:"type"`
	Confidence     int        `json:"confidence"`
	Symbols        []string   `json:"symbols"`
	Reasoning      string     `json:"reasoning"`
	SentimentScore float64    `json:"sentiment_score"`
	Fallback       bool       `json:"fallback,omitempty"`
}

// CycleResult summarizes one poll cycle.
type CycleResult struct {
	CycleID     string `json:"cycle_id"`
	Fetched     int    `json:"fetched"`
	NewPosts    int    `json:"new_posts"`
	SignalsSent int    `json:"signals_sent"`
	BelowGate   int    `json:"below_gate"`
}
