package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the evaluator configuration, read from an optional YAML file
// and overridden by environment variables.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Judge    JudgeConfig  `yaml:"judge"`
	Stream   StreamConfig `yaml:"stream"`
}

// JudgeConfig selects and configures the judge model backend.
type JudgeConfig struct {
	// Provider is one of: remote, bedrock, openai.
	Provider string `yaml:"provider"`

	// URL is the remote judge endpoint. Required for the remote
	// provider; there is no default.
	URL string `yaml:"url"`

	AWSRegion      string `yaml:"aws_region"`
	BedrockModelID string `yaml:"bedrock_model_id"`

	OpenAIModelID string `yaml:"openai_model_id"`
	OpenAIKey     string `yaml:"-"`
}

// StreamConfig configures the Redis Streams ingestion surface.
type StreamConfig struct {
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"-"`
	Stream        string `yaml:"stream"`
	Group         string `yaml:"group"`
}

// Load reads FAC_CONFIG_PATH (default configs/fac.yaml) when present,
// applies environment overrides and validates the result. A missing
// judge endpoint is a setup-time error, never a silent default.
func Load() (*Config, error) {
	path := os.Getenv("FAC_CONFIG_PATH")
	if path == "" {
		path = "configs/fac.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	overrideString(&cfg.LogLevel, "LOG_LEVEL")
	overrideString(&cfg.Judge.Provider, "FAC_JUDGE_PROVIDER")
	overrideString(&cfg.Judge.URL, "FAC_JUDGE_MODEL_URL")
	overrideString(&cfg.Judge.AWSRegion, "AWS_REGION")
	overrideString(&cfg.Judge.BedrockModelID, "CLAUDE_MODEL_ID")
	overrideString(&cfg.Judge.OpenAIModelID, "OPEN_AI_MODEL_ID")
	overrideString(&cfg.Stream.RedisAddr, "REDIS_ADDR")

	cfg.Judge.OpenAIKey = os.Getenv("OPEN_AI_KEY")
	cfg.Stream.RedisPassword = os.Getenv("REDIS_PASSWORD")
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Judge.Provider == "" {
		cfg.Judge.Provider = "remote"
	}
	if cfg.Judge.AWSRegion == "" {
		cfg.Judge.AWSRegion = "us-east-1"
	}
	if cfg.Stream.RedisAddr == "" {
		cfg.Stream.RedisAddr = "localhost:6379"
	}
	if cfg.Stream.Stream == "" {
		cfg.Stream.Stream = "fac-events"
	}
	if cfg.Stream.Group == "" {
		cfg.Stream.Group = "fac-group"
	}
}

func (c *Config) Validate() error {
	switch c.Judge.Provider {
	case "remote":
		if c.Judge.URL == "" {
			return fmt.Errorf("FAC_JUDGE_MODEL_URL is required for the remote judge provider")
		}
	case "bedrock":
		if c.Judge.BedrockModelID == "" {
			return fmt.Errorf("CLAUDE_MODEL_ID is required for the bedrock judge provider")
		}
	case "openai":
		if c.Judge.OpenAIKey == "" || c.Judge.OpenAIModelID == "" {
			return fmt.Errorf("OPEN_AI_KEY and OPEN_AI_MODEL_ID are required for the openai judge provider")
		}
	default:
		return fmt.Errorf("unsupported judge provider: %s", c.Judge.Provider)
	}

	return nil
}

func overrideString(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}
