package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port         string `toml:"port"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

type LLMConfig struct {
	Provider    string  `toml:"provider"`
	Model       string  `toml:"model"`
	APIKey      string  `toml:"api_key"`
	BaseURL     string  `toml:"base_url"`
	Temperature float32 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
}

type ClassifierConfig struct {
	// SystemPrompt overrides the built-in classification instructions.
	SystemPrompt      string  `toml:"system_prompt"`
	TimeoutSeconds    int     `toml:"timeout_seconds"`
	CacheTTLSeconds   int     `toml:"cache_ttl_seconds"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

type Config struct {
	Server     ServerConfig     `toml:"server"`
	LLM        LLMConfig        `toml:"llm"`
	Classifier ClassifierConfig `toml:"classifier"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8000", MaxBodyBytes: 4 << 20},
		LLM: LLMConfig{
			Temperature: 0.3,
			MaxTokens:   1000,
		},
		Classifier: ClassifierConfig{
			TimeoutSeconds: 30,
		},
	}
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides file values with any of PORT, LLM_PROVIDER, LLM_MODEL,
// LLM_API_KEY, LLM_BASE_URL and CLASSIFIER_TIMEOUT_SECONDS that are set.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := getenv("CLASSIFIER_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Classifier.TimeoutSeconds = n
		}
	}
}

func (c ClassifierConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c ClassifierConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
