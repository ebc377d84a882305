package notify

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/api"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/logger"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/store"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/trace"
	"github.com/laurentgalastuto/twitter-trading-bot/internal/types"
)

// maxSourceChars is how much of the source post is quoted in a message
const maxSourceChars = 100

var signalEmoji = map[types.SignalType]string{
	types.SignalBuy:     "🟢",
	types.SignalSell:    "🔴",
	types.SignalNeutral: "🟡",
}

// TelegramNotifier delivers signal and status messages to a chat.
// Delivery is best-effort: failures are logged, never returned, so a
// failed notification cannot abort a poll cycle.
type TelegramNotifier struct {
	client    *api.Client
	chatID    string
	parseMode string
}

// NewTelegramNotifier creates a notifier for the configured chat. Bot
// token and chat id come from the environment.
func NewTelegramNotifier(cfg *store.Config) *TelegramNotifier {
	token := os.Getenv(store.EnvTelegramBotToken)
	return newTelegramNotifier(
		"https://api.telegram.org/bot"+token,
		os.Getenv(store.EnvTelegramChatID),
		cfg.Notify.ParseMode,
	)
}

func newTelegramNotifier(baseURL, chatID, parseMode string) *TelegramNotifier {
	return &TelegramNotifier{
		client: api.NewClient(
			api.WithBaseURL(baseURL),
			api.WithTimeout(15*time.Second),
			api.WithLogging(true),
		),
		chatID:    chatID,
		parseMode: parseMode,
	}
}

// SendSignal formats and delivers a signal notification
func (n *TelegramNotifier) SendSignal(ctx context.Context, signal types.Signal, sourceText string) {
	msg := BuildSignalMessage(signal, sourceText, time.Now())
	if err := n.send(ctx, msg); err != nil {
		logger.ErrorWithErr(ctx, "Failed to deliver signal notification", err,
			"signal_type", signal.Type, "confidence", signal.Confidence)
	}
}

// SendStatus delivers a heartbeat/status notice
func (n *TelegramNotifier) SendStatus(ctx context.Context, message string) {
	if err := n.send(ctx, message); err != nil {
		logger.ErrorWithErr(ctx, "Failed to deliver status notification", err)
	}
}

func (n *TelegramNotifier) send(ctx context.Context, text string) error {
	ctx, span := trace.StartSpan(ctx, "telegram-api-call")
	defer span.End()

	body := map[string]any{
		"chat_id": n.chatID,
		"text":    text,
	}
	if n.parseMode != "" {
		body["parse_mode"] = n.parseMode
	}

	_, err := n.client.POST(ctx, "/sendMessage", body)
	return err
}

// BuildSignalMessage composes the notification text for one signal
func BuildSignalMessage(signal types.Signal, sourceText string, at time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s signal (%d%% confidence)\n", signalEmoji[signal.Type], signal.Type, signal.Confidence)
	if len(signal.Symbols) > 0 {
		fmt.Fprintf(&b, "Symbols: %s\n", strings.Join(signal.Symbols, ", "))
	}
	fmt.Fprintf(&b, "Post: %s\n", truncate(sourceText, maxSourceChars))
	fmt.Fprintf(&b, "Reasoning: %s\n", signal.Reasoning)
	b.WriteString(at.Format("02 Jan 2006 15:04:05 MST"))

	return b.String()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
