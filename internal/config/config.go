package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultURL is where the evaluation service listens out of the box.
const DefaultURL = "http://localhost:8080"

// URLEnv overrides the configured service URL.
const URLEnv = "EVALTERM_URL"

// Config is the only persisted config file schema.
type Config struct {
	URL               string `toml:"url"`
	Language          string `toml:"language"`
	TimeoutSeconds    int    `toml:"timeout_seconds"`
	RevealIntervalMS  int    `toml:"reveal_interval_ms"`
	EntranceStaggerMS int    `toml:"entrance_stagger_ms"`
	Sound             bool   `toml:"sound"`
	AltScreen         bool   `toml:"alt_screen"`
	MetricsAddr       string `toml:"metrics_addr"`
	Source            string `toml:"-"`
}

func Default() Config {
	return Config{
		URL:               DefaultURL,
		Language:          "en",
		RevealIntervalMS:  10,
		EntranceStaggerMS: 40,
		Sound:             true,
		AltScreen:         true,
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".evalterm", "config.toml")
}

func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

// Timeout returns the per-request timeout; zero means requests never time out.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RevealInterval returns the per-character reveal delay; zero disables the typing animation.
func (c Config) RevealInterval() time.Duration {
	if c.RevealIntervalMS <= 0 {
		return 0
	}
	return time.Duration(c.RevealIntervalMS) * time.Millisecond
}

func (c Config) EntranceStagger() time.Duration {
	if c.EntranceStaggerMS <= 0 {
		return 0
	}
	return time.Duration(c.EntranceStaggerMS) * time.Millisecond
}

func applyEnv(cfg *Config) {
	if env := strings.TrimSpace(os.Getenv(URLEnv)); env != "" {
		cfg.URL = env
	}
}
