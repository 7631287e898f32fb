package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/usecase"
)

// Config represents application configuration
type Config struct {
	// Telegram configuration
	Telegram TelegramConfig

	// Mistral classifier configuration
	Mistral MistralConfig

	// HTTP API configuration
	API APIConfig

	// Polling-session configuration
	Session SessionConfig

	// Queue configuration
	Queue QueueConfig

	// Monitored channel lists (loaded from YAML)
	Channels *ChannelsConfig

	// Prompt templates (loaded from YAML)
	Prompts *PromptsConfig

	// Debug mode
	Debug bool
}

// TelegramConfig contains Telegram configuration
type TelegramConfig struct {
	BotToken string
}

// MistralConfig contains Mistral configuration
type MistralConfig struct {
	APIKey         string
	Model          string
	TimeoutSeconds int
}

// APIConfig contains HTTP API configuration
type APIConfig struct {
	Host string
	Port int
}

// SessionConfig contains polling-session configuration
type SessionConfig struct {
	DBPath string
}

// QueueConfig contains category queue configuration
type QueueConfig struct {
	Capacity int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	// Session DB path
	sessionDBPath := os.Getenv("SESSION_DB_PATH")
	if sessionDBPath == "" {
		homeDir, _ := os.UserHomeDir()
		sessionDBPath = filepath.Join(homeDir, ".telegram-sentiment", "session.db")
	}

	// API port
	apiPort := 5030
	if val := os.Getenv("API_PORT"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			apiPort = parsed
		}
	}

	// API bind host
	apiHost := os.Getenv("API_HOST")
	if apiHost == "" {
		apiHost = "0.0.0.0"
	}

	// Queue capacity
	queueCapacity := 20
	if val := os.Getenv("QUEUE_CAPACITY"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			queueCapacity = parsed
		}
	}

	// Classifier call timeout
	classifierTimeout := 60
	if val := os.Getenv("CLASSIFIER_TIMEOUT_SECONDS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			classifierTimeout = parsed
		}
	}

	// Load channel lists from YAML. A broken file must not leave the monitor
	// without channel lists; fall back to the built-in defaults.
	channelsConfig, err := LoadChannelsConfig(os.Getenv("CHANNELS_CONFIG_PATH"))
	if err != nil {
		fmt.Printf("[Config] Invalid channels config, using defaults: %v\n", err)
		channelsConfig = DefaultChannelsConfig()
	}

	// Load prompt templates from YAML, same fallback policy
	promptsConfig, err := LoadPromptsConfig(os.Getenv("PROMPTS_CONFIG_PATH"))
	if err != nil {
		fmt.Printf("[Config] Invalid prompts config, using defaults: %v\n", err)
		promptsConfig = DefaultPromptsConfig()
	}

	return &Config{
		Telegram: TelegramConfig{
			BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		},
		Mistral: MistralConfig{
			APIKey:         os.Getenv("MISTRAL_API_KEY"),
			Model:          os.Getenv("MISTRAL_MODEL"),
			TimeoutSeconds: classifierTimeout,
		},
		API: APIConfig{
			Host: apiHost,
			Port: apiPort,
		},
		Session: SessionConfig{
			DBPath: sessionDBPath,
		},
		Queue: QueueConfig{
			Capacity: queueCapacity,
		},
		Channels: channelsConfig,
		Prompts:  promptsConfig,
		Debug:    os.Getenv("DEBUG") == "true",
	}
}

// ToPromptConfig converts to the usecase prompt configuration
func (c *Config) ToPromptConfig() usecase.PromptConfig {
	if c.Prompts == nil {
		return usecase.DefaultPromptConfig
	}
	return usecase.PromptConfig{
		PumpDumpTemplate: c.Prompts.PumpDumpPrompt,
		NewsTemplate:     c.Prompts.NewsPrompt,
	}
}

// ClassifierTimeout returns the classifier call timeout as a duration
func (c *Config) ClassifierTimeout() time.Duration {
	return time.Duration(c.Mistral.TimeoutSeconds) * time.Second
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return &ConfigError{Field: "TELEGRAM_BOT_TOKEN", Message: "required"}
	}
	if c.Mistral.APIKey == "" {
		return &ConfigError{Field: "MISTRAL_API_KEY", Message: "required"}
	}
	if c.Channels == nil {
		return &ConfigError{Field: "CHANNELS_CONFIG_PATH", Message: "no channel lists loaded"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
