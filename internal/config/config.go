// Package config loads presenter settings: defaults, then an optional
// present.yml in the deck directory, then PRESENT_* environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FileName is the per-deck configuration file looked up in the deck
// directory.
const FileName = "present.yml"

// Config holds presenter settings.
type Config struct {
	DeckDir string `yaml:"deck_dir" koanf:"deck_dir"`
	Theme   string `yaml:"theme" koanf:"theme"`
	Watch   bool   `yaml:"watch" koanf:"watch"`
}

// Default returns the built-in settings: present the current directory
// with the terminal-appropriate glamour style, no watching.
func Default() Config {
	return Config{
		DeckDir: ".",
		Theme:   "auto",
		Watch:   false,
	}
}

var validThemes = map[string]bool{
	"auto":  true,
	"dark":  true,
	"light": true,
	"notty": true,
}

// Validate checks for recognized values.
func (c Config) Validate() error {
	if !validThemes[c.Theme] {
		return fmt.Errorf("invalid theme %q: must be one of auto, dark, light, notty", c.Theme)
	}
	return nil
}

// Load reads configuration for the deck in deckDir. A missing or
// malformed present.yml never blocks the presentation: a broken file is
// skipped with a warning and defaults plus env overrides apply.
func Load(deckDir string) (Config, error) {
	k := koanf.New(".")
	cfg := Default()
	cfg.DeckDir = deckDir

	path := filepath.Join(deckDir, FileName)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			fmt.Fprintf(os.Stderr, "present: ignoring %s: %v\n", path, err)
		}
	} else if !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "present: ignoring %s: %v\n", path, err)
	}

	// PRESENT_THEME -> theme, PRESENT_DECK_DIR -> deck_dir, etc.
	if err := k.Load(env.Provider("PRESENT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PRESENT_"))
	}), nil); err != nil {
		return cfg, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
