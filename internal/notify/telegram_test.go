package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/types"
)

var testTime = time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)

func TestBuildSignalMessage(t *testing.T) {
	signal := types.Signal{
		Type:       types.SignalBuy,
		Confidence: 110,
		Symbols:    []string{"$BTC", "$ETH"},
		Reasoning:  "sentiment 0.80 + 2 bullish keywords [$BTC, $ETH]",
	}

	msg := BuildSignalMessage(signal, "$BTC to the moon", testTime)

	for _, want := range []string{
		"🟢 BUY signal (110% confidence)",
		"Symbols: $BTC, $ETH",
		"Post: $BTC to the moon",
		"Reasoning: sentiment 0.80 + 2 bullish keywords",
		"30 Aug 2026",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected message to contain %q, got:\n%s", want, msg)
		}
	}
}

func TestBuildSignalMessageEmojiPerType(t *testing.T) {
	cases := []struct {
		signalType types.SignalType
		emoji      string
	}{
		{types.SignalBuy, "🟢"},
		{types.SignalSell, "🔴"},
		{types.SignalNeutral, "🟡"},
	}

	for _, tc := range cases {
		msg := BuildSignalMessage(types.Signal{Type: tc.signalType}, "text", testTime)
		if !strings.HasPrefix(msg, tc.emoji) {
			t.Errorf("Expected %s message to start with %s, got %q", tc.signalType, tc.emoji, msg[:12])
		}
	}
}

func TestBuildSignalMessageTruncatesSource(t *testing.T) {
	long := strings.Repeat("x", 250)
	msg := BuildSignalMessage(types.Signal{Type: types.SignalNeutral}, long, testTime)

	if strings.Contains(msg, strings.Repeat("x", 101)) {
		t.Error("Expected source text truncated to 100 characters")
	}
	if !strings.Contains(msg, strings.Repeat("x", 100)+"...") {
		t.Error("Expected truncation marker after 100 characters")
	}
}

func TestBuildSignalMessageOmitsEmptySymbols(t *testing.T) {
	msg := BuildSignalMessage(types.Signal{Type: types.SignalNeutral}, "text", testTime)

	if strings.Contains(msg, "Symbols:") {
		t.Error("Expected no symbols line for signal without cash tags")
	}
}

func TestSendSignalDeliversMessage(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sendMessage" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("Failed to decode payload: %v", err)
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)

	n := newTelegramNotifier(srv.URL, "chat-1", "")
	n.SendSignal(context.Background(), types.Signal{Type: types.SignalBuy, Confidence: 95}, "source post")

	if received["chat_id"] != "chat-1" {
		t.Errorf("Expected chat_id chat-1, got %v", received["chat_id"])
	}
	text, _ := received["text"].(string)
	if !strings.Contains(text, "BUY signal (95% confidence)") {
		t.Errorf("Unexpected message text: %q", text)
	}
}

func TestSendSignalSwallowsDeliveryFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false}`, http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	n := newTelegramNotifier(srv.URL, "chat-1", "")

	// Must not panic or propagate: delivery is best-effort
	n.SendSignal(context.Background(), types.Signal{Type: types.SignalSell, Confidence: 80}, "source")
	n.SendStatus(context.Background(), "heartbeat")
}

func TestSendStatus(t *testing.T) {
	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)

	n := newTelegramNotifier(srv.URL, "chat-1", "Markdown")
	n.SendStatus(context.Background(), "🤖 Bot started")

	if received["text"] != "🤖 Bot started" {
		t.Errorf("Expected status text, got %v", received["text"])
	}
	if received["parse_mode"] != "Markdown" {
		t.Errorf("Expected parse_mode Markdown, got %v", received["parse_mode"])
	}
}
