package sentiment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/laurentgalastuto/twitter-trading-bot/internal/types"
)

const testModel = "cardiffnlp/twitter-roberta-base-sentiment-latest"

func testServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/"+testModel {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Expected bearer auth, got %q", got)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClassifyPositive(t *testing.T) {
	srv := testServer(t, http.StatusOK, `[[{"label":"LABEL_2","score":0.98},{"label":"LABEL_1","score":0.01}]]`)
	c := newClassifier(srv.URL, "test-key", testModel, 5*time.Second)

	result, err := c.Classify(context.Background(), "great news")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Label != types.SentimentPositive {
		t.Errorf("Expected POSITIVE, got %s", result.Label)
	}
	if result.Polarity != 0.8 {
		t.Errorf("Expected polarity 0.8, got %f", result.Polarity)
	}
	if result.ModelConfidence != 0.98 {
		t.Errorf("Expected model confidence 0.98, got %f", result.ModelConfidence)
	}
	if result.Fallback {
		t.Error("Expected primary result, not fallback")
	}
}

func TestClassifyNegativeFlatShape(t *testing.T) {
	srv := testServer(t, http.StatusOK, `[{"label":"negative","score":0.7}]`)
	c := newClassifier(srv.URL, "test-key", testModel, 5*time.Second)

	result, err := c.Classify(context.Background(), "terrible news")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Label != types.SentimentNegative || result.Polarity != -0.8 {
		t.Errorf("Expected NEGATIVE/-0.8, got %s/%f", result.Label, result.Polarity)
	}
}

func TestClassifyUnrecognizedLabel(t *testing.T) {
	srv := testServer(t, http.StatusOK, `[[{"label":"LABEL_9","score":0.9}]]`)
	c := newClassifier(srv.URL, "test-key", testModel, 5*time.Second)

	result, err := c.Classify(context.Background(), "whatever")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Label != types.SentimentNeutral || result.Polarity != 0 {
		t.Errorf("Expected NEUTRAL/0 for unknown label, got %s/%f", result.Label, result.Polarity)
	}
}

func TestClassifyServerErrorFallsBack(t *testing.T) {
	srv := testServer(t, http.StatusServiceUnavailable, `{"error":"model loading"}`)
	c := newClassifier(srv.URL, "test-key", testModel, 5*time.Second)

	result, err := c.Classify(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Remote failure must not surface as error, got %v", err)
	}

	assertNeutralDefault(t, result)
}

func TestClassifyMalformedResponseFallsBack(t *testing.T) {
	srv := testServer(t, http.StatusOK, `{"unexpected":"shape"}`)
	c := newClassifier(srv.URL, "test-key", testModel, 5*time.Second)

	result, err := c.Classify(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Malformed payload must not surface as error, got %v", err)
	}

	assertNeutralDefault(t, result)
}

func TestClassifyEmptyResultFallsBack(t *testing.T) {
	srv := testServer(t, http.StatusOK, `[[]]`)
	c := newClassifier(srv.URL, "test-key", testModel, 5*time.Second)

	result, err := c.Classify(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	assertNeutralDefault(t, result)
}

func TestClassifyMissingAPIKey(t *testing.T) {
	c := newClassifier("http://unused", "", testModel, 5*time.Second)

	_, err := c.Classify(context.Background(), "anything")
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}
}

func assertNeutralDefault(t *testing.T, result types.SentimentResult) {
	t.Helper()
	if result.Label != types.SentimentNeutral {
		t.Errorf("Expected NEUTRAL, got %s", result.Label)
	}
	if result.Polarity != 0 {
		t.Errorf("Expected polarity 0, got %f", result.Polarity)
	}
	if result.ModelConfidence != 0.5 {
		t.Errorf("Expected model confidence 0.5, got %f", result.ModelConfidence)
	}
	if !result.Fallback {
		t.Error("Expected fallback flag to be set")
	}
}
