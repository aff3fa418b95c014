// Package config provides configuration loading and validation for the
// HR copilot service and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Defaults applied when neither environment nor config file provide a value.
const (
	DefaultCollection = "resume_chunks"
	DefaultTopK       = 5
	DefaultMaxHistory = 20
	DefaultScoreMode  = "similarity"
	DefaultListenAddr = ":8080"
)

// Config holds the runtime configuration. All fields are optional in the
// JSON file; environment variables win over file values.
type Config struct {
	// Vector store
	QdrantURL        string `json:"qdrant_url,omitempty"`
	QdrantAPIKey     string `json:"qdrant_api_key,omitempty"`
	QdrantCollection string `json:"qdrant_collection,omitempty"`

	// LLM / embeddings
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`

	// Pipeline tuning
	TopK       int    `json:"top_k,omitempty"`
	MaxHistory int    `json:"max_history,omitempty"`
	ScoreMode  string `json:"score_mode,omitempty"`

	// Server
	ListenAddr string `json:"listen_addr,omitempty"`
}

// LoadFile loads configuration from a JSON file.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Unset variables leave
// the zero value so a later merge can fill them.
func FromEnv() (*Config, error) {
	cfg := &Config{
		QdrantURL:        os.Getenv("QDRANT_URL"),
		QdrantAPIKey:     os.Getenv("QDRANT_API_KEY"),
		QdrantCollection: os.Getenv("QDRANT_COLLECTION_NAME"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		ScoreMode:        os.Getenv("VECTOR_SCORE_MODE"),
		ListenAddr:       os.Getenv("LISTEN_ADDR"),
	}

	var err error
	if cfg.TopK, err = envInt("TOP_K_DEFAULT"); err != nil {
		return nil, err
	}
	if cfg.MaxHistory, err = envInt("MAX_HISTORY_MESSAGES"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envInt(name string) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	return v, nil
}

// Load builds the effective configuration: environment variables merged over
// an optional JSON file, with defaults filled last. Pass an empty path to
// skip the file.
func Load(path string) (*Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	if path != "" {
		file, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = cfg.MergeWithDefaults(*file)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.QdrantCollection == "" {
		c.QdrantCollection = DefaultCollection
	}
	if c.TopK == 0 {
		c.TopK = DefaultTopK
	}
	if c.MaxHistory == 0 {
		c.MaxHistory = DefaultMaxHistory
	}
	if c.ScoreMode == "" {
		c.ScoreMode = DefaultScoreMode
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
}

// Validate checks that the configuration has valid values. Required
// connection fields are checked by the commands that need them, not here.
func (c *Config) Validate() error {
	if c.TopK < 0 {
		return fmt.Errorf("config error: 'top_k' must be non-negative")
	}
	if c.MaxHistory < 0 {
		return fmt.Errorf("config error: 'max_history' must be non-negative")
	}
	if c.ScoreMode != "" && c.ScoreMode != "similarity" && c.ScoreMode != "distance" {
		return fmt.Errorf("config error: 'score_mode' must be 'similarity' or 'distance', got %q", c.ScoreMode)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Used to layer the JSON file under environment variables.
func (c *Config) MergeWithDefaults(defaults Config) *Config {
	result := *c

	if result.QdrantURL == "" {
		result.QdrantURL = defaults.QdrantURL
	}
	if result.QdrantAPIKey == "" {
		result.QdrantAPIKey = defaults.QdrantAPIKey
	}
	if result.QdrantCollection == "" {
		result.QdrantCollection = defaults.QdrantCollection
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.ScoreMode == "" {
		result.ScoreMode = defaults.ScoreMode
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}
	if result.MaxHistory == 0 {
		result.MaxHistory = defaults.MaxHistory
	}

	return &result
}
