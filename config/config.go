package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string        `mapstructure:"port"`
	MongoURI      string        `mapstructure:"MONGODB_URI"`
	MongoDatabase string        `mapstructure:"mongo_database"`
	StorageBucket string        `mapstructure:"storage_bucket"`
	// Path to a service account key file. Empty means application default
	// credentials.
	GoogleCredentials string        `mapstructure:"google_credentials"`
	StorageTimeout    time.Duration `mapstructure:"storage_timeout"`

	AIProvider   string `mapstructure:"ai_provider"` // "openai" or "gemini"
	AIEndpoint   string `mapstructure:"ai_endpoint"`
	Model        string `mapstructure:"model"`
	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`
	// Comma-separated list; the Gemini service rotates through them.
	GeminiAPIKeys string        `mapstructure:"GEMINI_API_KEYS"`
	AITimeout     time.Duration `mapstructure:"ai_timeout"`

	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	MaxNoteChars int           `mapstructure:"max_note_chars"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("MONGODB_URI")
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEYS")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = "5001"
	}
	if c.MongoDatabase == "" {
		c.MongoDatabase = "studybuddy"
	}
	if c.AIProvider == "" {
		c.AIProvider = "openai"
	}
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.StorageTimeout == 0 {
		c.StorageTimeout = 30 * time.Second
	}
	if c.AITimeout == 0 {
		c.AITimeout = 120 * time.Second
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = 20 * time.Second
	}
	if c.MaxNoteChars == 0 {
		c.MaxNoteChars = 15000
	}
}

// GeminiKeys splits the configured key list.
func (c *Config) GeminiKeys() []string {
	if c.GeminiAPIKeys == "" {
		return nil
	}
	parts := strings.Split(c.GeminiAPIKeys, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
