package config

import (
	"testing"

	"github.com/docintegrator/doc-service/internal/document"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "5010" {
		t.Fatalf("unexpected default port: %q", cfg.Server.Port)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("unexpected default log level: %q", cfg.Log.Level)
	}
	if cfg.MongoDB.Timeout.Seconds() != 10 {
		t.Fatalf("unexpected mongo timeout: %v", cfg.MongoDB.Timeout)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DATABASE_URL", "postgres://localhost/docs")
	t.Setenv("RATE_LIMIT_ENABLED", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != "9999" {
		t.Fatalf("env override ignored: %q", cfg.Server.Port)
	}
	if cfg.Database.URL != "postgres://localhost/docs" {
		t.Fatalf("database URL not read: %q", cfg.Database.URL)
	}
	if !cfg.RateLimit.Enabled {
		t.Fatalf("rate limit flag not read")
	}
}

func TestPolicy_DefaultWhenUnset(t *testing.T) {
	cfg := &Config{}
	p := cfg.Policy()
	want := document.DefaultPolicy()
	if len(p.AllowedStatuses) != len(want.AllowedStatuses) {
		t.Fatalf("expected default policy, got %+v", p)
	}
}

func TestPolicy_StatusOverride(t *testing.T) {
	cfg := &Config{Documents: DocumentsConfig{Statuses: "New, In Review ,Done"}}
	p := cfg.Policy()

	if len(p.AllowedStatuses) != 3 {
		t.Fatalf("expected 3 statuses, got %v", p.AllowedStatuses)
	}
	if p.StatusRank("New") != 1 || p.StatusRank("In Review") != 2 || p.StatusRank("Done") != 3 {
		t.Fatalf("ranks should follow list position: %+v", p.StatusRanks)
	}
	if p.StatusRank("New") >= p.StatusRank("Unknown") {
		t.Fatalf("unknown statuses must rank last")
	}
	if !p.IsSortField("createdAt") {
		t.Fatalf("sort fields should keep the default set")
	}
}
