package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Extract ExtractConfig `yaml:"extract"`
	Summary SummaryConfig `yaml:"summary"`
	LLM     LLMConfig     `yaml:"llm"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string        `yaml:"address"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
}

// FetchConfig controls how pages are retrieved.
type FetchConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"userAgent"`
}

// ExtractConfig controls the content extraction strategies.
type ExtractConfig struct {
	// ReadabilityFallback inserts a readability pass between the selector
	// strategy and the body fallback.
	ReadabilityFallback bool `yaml:"readabilityFallback"`
}

// SummaryConfig defines the heuristics for the summary domain.
type SummaryConfig struct {
	DefaultLength int `yaml:"defaultLength"`
	MaxContentLen int `yaml:"maxContentLen"`
}

// LLMConfig contains OpenAI settings. APIKey may be empty; the summarize
// capability is then disabled rather than the process failing to start.
type LLMConfig struct {
	APIKey         string        `yaml:"apiKey"`
	BaseURL        string        `yaml:"baseUrl"`
	Model          string        `yaml:"model"`
	Temperature    float32       `yaml:"temperature"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_REQUEST_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.LLM.RequestTimeout = parsed
		}
	}
	if v := os.Getenv("FETCH_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Fetch.Timeout = parsed
		}
	}
	if v := os.Getenv("FETCH_USER_AGENT"); v != "" {
		cfg.Fetch.UserAgent = v
	}
	if v := os.Getenv("EXTRACT_READABILITY_FALLBACK"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			cfg.Extract.ReadabilityFallback = parsed
		}
	}
	if v := os.Getenv("SUMMARY_DEFAULT_LENGTH"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Summary.DefaultLength = parsed
		}
	}
	if v := os.Getenv("SUMMARY_MAX_CONTENT_LEN"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Summary.MaxContentLen = parsed
		}
	}
}

// Validate checks that the assembled configuration is usable.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http address cannot be empty")
	}
	if c.Fetch.Timeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}
	if c.Summary.DefaultLength <= 0 {
		return errors.New("summary default length must be positive")
	}
	if c.Summary.MaxContentLen <= 0 {
		return errors.New("summary max content length must be positive")
	}
	if c.LLM.Model == "" {
		return errors.New("llm model cannot be empty")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm temperature %v out of range [0, 2]", c.LLM.Temperature)
	}
	if c.LLM.RequestTimeout <= 0 {
		return errors.New("llm request timeout must be positive")
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8000",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 2 * time.Minute,
		},
		Fetch: FetchConfig{
			Timeout:   10 * time.Second,
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		},
		Summary: SummaryConfig{
			DefaultLength: 200,
			MaxContentLen: 8000,
		},
		LLM: LLMConfig{
			Model:          "gpt-3.5-turbo",
			Temperature:    0.3,
			RequestTimeout: 60 * time.Second,
		},
	}
}
