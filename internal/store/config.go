package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Env var names for the upstream credentials. Secrets are never stored
// in the yaml file.
const (
	EnvTwitterBearerToken = "TWITTER_BEARER_TOKEN"
	EnvHuggingFaceAPIKey  = "HUGGINGFACE_API_KEY"
	EnvTelegramBotToken   = "TELEGRAM_BOT_TOKEN"
	EnvTelegramChatID     = "TELEGRAM_CHAT_ID"
)

type Config struct {
	TargetAccount       string `yaml:"target_account"`
	PollSeconds         int    `yaml:"poll_seconds"`
	PageSize            int    `yaml:"page_size"`
	ConfidenceThreshold int    `yaml:"confidence_threshold"`
	MaxTrackedPosts     int    `yaml:"max_tracked_posts"`
	Sentiment           struct {
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"sentiment"`
	Feed struct {
		// FallbackMirror is a Nitter-style mirror host used when no API
		// bearer token is available. Empty disables the fallback.
		FallbackMirror string `yaml:"fallback_mirror"`
	} `yaml:"feed"`
	Notify struct {
		ParseMode string `yaml:"parse_mode"`
	} `yaml:"notify"`
	Health struct {
		Addr string `yaml:"addr"`
	} `yaml:"health"`
}

func (c *Config) Validate() error {
	if c.TargetAccount == "" {
		return fmt.Errorf("target_account cannot be empty")
	}
	if c.PollSeconds <= 0 {
		return fmt.Errorf("poll_seconds must be positive, got %d", c.PollSeconds)
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 100 {
		return fmt.Errorf("confidence_threshold must be between 0-100, got %d", c.ConfidenceThreshold)
	}
	if c.MaxTrackedPosts <= 0 {
		return fmt.Errorf("max_tracked_posts must be positive, got %d", c.MaxTrackedPosts)
	}
	if c.PageSize <= 0 || c.PageSize > 100 {
		return fmt.Errorf("page_size must be between 1-100, got %d", c.PageSize)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.PollSeconds == 0 {
		c.PollSeconds = 120
	}
	if c.PageSize == 0 {
		c.PageSize = 5
	}
	if c.ConfidenceThreshold == 0 {
		c.ConfidenceThreshold = 70
	}
	if c.MaxTrackedPosts == 0 {
		c.MaxTrackedPosts = 100
	}
	if c.Sentiment.Model == "" {
		c.Sentiment.Model = "cardiffnlp/twitter-roberta-base-sentiment-latest"
	}
	if c.Sentiment.TimeoutSeconds == 0 {
		c.Sentiment.TimeoutSeconds = 10
	}
	if c.Health.Addr == "" {
		c.Health.Addr = ":3000"
	}
}

// MissingCredentials reports which upstream credentials are absent from
// the environment. Missing credentials are logged at startup, not fatal.
func MissingCredentials() []string {
	required := []string{
		EnvTwitterBearerToken,
		EnvHuggingFaceAPIKey,
		EnvTelegramBotToken,
		EnvTelegramChatID,
	}
	missing := []string{}
	for _, key := range required {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
