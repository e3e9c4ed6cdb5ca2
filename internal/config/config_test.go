package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8080" || cfg.Prompt.Language != "Python" || cfg.Prompt.Questions != 5 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
server:
  port: "9090"
redis:
  addr: localhost:6379
  ttl: 5m
documents:
  ttl: 30s
prompt:
  language: react
  questions: 10
ui:
  no_color: true
  feedback_delay: 1s
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("unexpected server/redis config %+v", cfg)
	}
	if cfg.Prompt.Language != "react" || cfg.Prompt.Questions != 10 || cfg.Prompt.Difficulty != "intermediate" {
		t.Fatalf("unexpected prompt config %+v", cfg.Prompt)
	}
	if !cfg.UI.NoColor || TTLDuration(cfg.UI.FeedbackDelay, time.Minute) != time.Second {
		t.Fatalf("unexpected ui config %+v", cfg.UI)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected yaml error")
	}
}

func TestTTLDuration(t *testing.T) {
	if TTLDuration("", time.Minute) != time.Minute {
		t.Fatalf("expected fallback for empty")
	}
	if TTLDuration("bogus", time.Minute) != time.Minute {
		t.Fatalf("expected fallback for invalid")
	}
	if TTLDuration("2s", time.Minute) != 2*time.Second {
		t.Fatalf("expected parsed duration")
	}
}
