package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"POSTGRES_HOST", "POSTGRES_PORT", "EXPORT_PATH", "EXPORT_MODE",
		"FETCH_TIMEOUT", "FETCH_RETRIES",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.PGHost != "localhost" {
		t.Errorf("PGHost = %q, want localhost", cfg.PGHost)
	}
	if cfg.PGPort != 5432 {
		t.Errorf("PGPort = %d, want 5432", cfg.PGPort)
	}
	if cfg.ExportPath != "news_data.csv" {
		t.Errorf("ExportPath = %q", cfg.ExportPath)
	}
	if cfg.ExportMode != "overwrite" {
		t.Errorf("ExportMode = %q, want overwrite", cfg.ExportMode)
	}
	if cfg.FetchTimeout != 15*time.Second {
		t.Errorf("FetchTimeout = %v, want 15s", cfg.FetchTimeout)
	}
	if cfg.FetchRetries != 0 {
		t.Errorf("FetchRetries = %d, want 0", cfg.FetchRetries)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PORT", "6543")
	t.Setenv("EXPORT_MODE", "append")
	t.Setenv("FETCH_TIMEOUT", "30s")
	t.Setenv("FETCH_RETRIES", "1")

	cfg := Load()
	if cfg.PGHost != "db.internal" {
		t.Errorf("PGHost = %q", cfg.PGHost)
	}
	if cfg.PGPort != 6543 {
		t.Errorf("PGPort = %d", cfg.PGPort)
	}
	if cfg.ExportMode != "append" {
		t.Errorf("ExportMode = %q", cfg.ExportMode)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("FetchTimeout = %v", cfg.FetchTimeout)
	}
	if cfg.FetchRetries != 1 {
		t.Errorf("FetchRetries = %d", cfg.FetchRetries)
	}
}

func TestLoad_BadEnvValuesFallBack(t *testing.T) {
	t.Setenv("POSTGRES_PORT", "not-a-number")
	t.Setenv("FETCH_TIMEOUT", "soon")

	cfg := Load()
	if cfg.PGPort != 5432 {
		t.Errorf("PGPort = %d, want default on bad value", cfg.PGPort)
	}
	if cfg.FetchTimeout != 15*time.Second {
		t.Errorf("FetchTimeout = %v, want default on bad value", cfg.FetchTimeout)
	}
}
