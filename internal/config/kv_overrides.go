package config

import (
	"strconv"
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	if len(overrides) == 0 {
		return cfg
	}
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch key {
		case "url":
			cfg.URL = val
		case "language", "lang":
			cfg.Language = val
		case "timeout_seconds", "timeout":
			if n, err := strconv.Atoi(val); err == nil && n >= 0 {
				cfg.TimeoutSeconds = n
			}
		case "reveal_interval_ms", "reveal-interval-ms":
			if n, err := strconv.Atoi(val); err == nil && n >= 0 {
				cfg.RevealIntervalMS = n
			}
		case "entrance_stagger_ms", "entrance-stagger-ms":
			if n, err := strconv.Atoi(val); err == nil && n >= 0 {
				cfg.EntranceStaggerMS = n
			}
		case "sound":
			if b, err := strconv.ParseBool(val); err == nil {
				cfg.Sound = b
			}
		case "alt_screen", "alt-screen":
			if b, err := strconv.ParseBool(val); err == nil {
				cfg.AltScreen = b
			}
		case "metrics_addr", "metrics-addr":
			cfg.MetricsAddr = val
		}
	}
	return cfg
}
