package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type config struct {
	Prompt string `toml:"prompt"`
	Color  string `toml:"color"` // auto|on|off
}

func defaultConfig() config {
	return config{
		Prompt: "> ",
		Color:  "auto",
	}
}

// loadConfig reads the TOML config at path. An empty path falls back to
// bigcalc/config.toml under the user config directory; a missing fallback
// file is not an error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "bigcalc", "config.toml")
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return config{}, fmt.Errorf("%s: unknown key %q", path, undec[0].String())
	}
	switch cfg.Color {
	case "auto", "on", "off":
	default:
		return config{}, fmt.Errorf("%s: color must be auto, on, or off, got %q", path, cfg.Color)
	}

	return cfg, nil
}
