package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.URL != DefaultURL {
		t.Fatalf("Default().URL = %q, want %q", cfg.URL, DefaultURL)
	}
	if cfg.RevealInterval() != 10*time.Millisecond {
		t.Fatalf("Default().RevealInterval() = %v, want 10ms", cfg.RevealInterval())
	}
	if cfg.Timeout() != 0 {
		t.Fatalf("Default().Timeout() = %v, want no timeout", cfg.Timeout())
	}
	if !cfg.AltScreen || !cfg.Sound {
		t.Fatalf("Default() should enable alt screen and sound: %+v", cfg)
	}
}

func TestLoad_MissingFile_UsesDefaults(t *testing.T) {
	t.Setenv(URLEnv, "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != path {
		t.Fatalf("cfg.Source = %q, want %q", cfg.Source, path)
	}
	if cfg.URL != DefaultURL {
		t.Fatalf("cfg.URL = %q, want %q", cfg.URL, DefaultURL)
	}
}

func TestLoad_FromTOMLAndEnv(t *testing.T) {
	t.Setenv(URLEnv, "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`
url = "http://calc.test:9000"
language = "ru"
timeout_seconds = 5
reveal_interval_ms = 0
sound = false
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.URL != "http://calc.test:9000" {
		t.Fatalf("cfg.URL = %q", cfg.URL)
	}
	if cfg.Language != "ru" || cfg.Sound {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Fatalf("cfg.Timeout() = %v, want 5s", cfg.Timeout())
	}
	if cfg.RevealInterval() != 0 {
		t.Fatalf("reveal interval 0 should disable animation, got %v", cfg.RevealInterval())
	}
	if cfg.EntranceStagger() != 40*time.Millisecond {
		t.Fatalf("unset keys should keep defaults, got stagger %v", cfg.EntranceStagger())
	}

	t.Setenv(URLEnv, "http://env.test")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.URL != "http://env.test" {
		t.Fatalf("env should override url, got %q", cfg.URL)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("url = "), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestApplyKVOverrides(t *testing.T) {
	cfg := Default()
	got := ApplyKVOverrides(cfg, []string{
		"url=http://override.test",
		"timeout=7",
		"reveal_interval_ms=3",
		"sound=false",
		"alt-screen=false",
		"metrics_addr=127.0.0.1:9102",
		"bogus",
		"timeout=-1",
	})
	if got.URL != "http://override.test" {
		t.Fatalf("URL = %q", got.URL)
	}
	if got.TimeoutSeconds != 7 || got.RevealIntervalMS != 3 {
		t.Fatalf("numeric overrides not applied: %+v", got)
	}
	if got.Sound || got.AltScreen {
		t.Fatalf("bool overrides not applied: %+v", got)
	}
	if got.MetricsAddr != "127.0.0.1:9102" {
		t.Fatalf("MetricsAddr = %q", got.MetricsAddr)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(URLEnv, "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.URL = "http://saved.test"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.URL != "http://saved.test" || loaded.RevealIntervalMS != cfg.RevealIntervalMS {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}
