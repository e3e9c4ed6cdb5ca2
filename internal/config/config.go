package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"quizpad/internal/prompt"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Documents struct {
		TTL string `yaml:"ttl"`
	} `yaml:"documents"`
	Prompt prompt.Options `yaml:"prompt"`
	UI     struct {
		NoColor       bool   `yaml:"no_color"`
		FeedbackDelay string `yaml:"feedback_delay"`
	} `yaml:"ui"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	cfg.Server.Port = "8080"
	cfg.Prompt = prompt.Defaults()
	return cfg
}

// Load reads YAML config from path. A missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	fillPromptDefaults(&cfg.Prompt)
	return cfg, nil
}

func fillPromptDefaults(opts *prompt.Options) {
	defaults := prompt.Defaults()
	if opts.Language == "" {
		opts.Language = defaults.Language
	}
	if opts.Topic == "" {
		opts.Topic = defaults.Topic
	}
	if opts.Difficulty == "" {
		opts.Difficulty = defaults.Difficulty
	}
	if opts.Questions == 0 {
		opts.Questions = defaults.Questions
	}
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
