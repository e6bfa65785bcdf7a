package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadArena loads arena shooter configuration.
// Search order: customPath -> ~/.minis/configs/arena.yaml -> ./configs/arena.yaml -> embedded default
func LoadArena(customPath string) (ArenaConfig, error) {
	cfg, err := load(customPath, "arena.yaml", defaultArenaYAML, DefaultArenaConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadWhack loads whack-a-mole configuration.
// Search order: customPath -> ~/.minis/configs/whack.yaml -> ./configs/whack.yaml -> embedded default
func LoadWhack(customPath string) (WhackConfig, error) {
	cfg, err := load(customPath, "whack.yaml", defaultWhackYAML, DefaultWhackConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFAQ loads the FAQ content.
// Search order: customPath -> ~/.minis/configs/faq.yaml -> ./configs/faq.yaml -> embedded default
func LoadFAQ(customPath string) (FAQConfig, error) {
	cfg, err := load(customPath, "faq.yaml", defaultFAQYAML, DefaultFAQConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// load resolves one program config. Only an explicit customPath reports
// read and parse errors; the other locations fall through silently.
func load[T any](customPath, filename string, embedded []byte, fallback func() T) (T, error) {
	var cfg T

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			var fromFile T
			if err := yaml.Unmarshal(data, &fromFile); err == nil {
				return fromFile, nil
			}
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".minis", "configs", filename)
}

// Validate reports configurations the arena cannot run with.
func (c ArenaConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: arena field must have positive size, got %gx%g", c.Field.Width, c.Field.Height)
	case c.Player.Radius*2 >= c.Field.Width || c.Player.Radius*2 >= c.Field.Height:
		return fmt.Errorf("config: arena player radius %g does not fit the field", c.Player.Radius)
	case c.Projectile.FireInterval <= 0:
		return fmt.Errorf("config: arena fire_interval must be positive")
	case c.Enemy.SpawnInterval <= 0:
		return fmt.Errorf("config: arena spawn_interval must be positive")
	case c.Gameplay.Health <= 0:
		return fmt.Errorf("config: arena health must be positive")
	}
	return nil
}

// Validate reports configurations whack-a-mole cannot run with.
func (c WhackConfig) Validate() error {
	switch {
	case c.Holes < 2:
		return fmt.Errorf("config: whack needs at least 2 holes, got %d", c.Holes)
	case c.RoundDuration <= 0:
		return fmt.Errorf("config: whack round_duration must be positive")
	case c.MoleMinDelay < 0 || c.MoleMaxDelay < c.MoleMinDelay:
		return fmt.Errorf("config: whack mole delays must satisfy 0 <= min <= max")
	}
	return nil
}

// Validate reports FAQ content the accordion cannot show.
func (c FAQConfig) Validate() error {
	seen := make(map[string]bool, len(c.Items))
	for i, item := range c.Items {
		if item.Question == "" {
			return fmt.Errorf("config: faq item %d has no question", i)
		}
		if item.ID != "" {
			if seen[item.ID] {
				return fmt.Errorf("config: faq item id %q is duplicated", item.ID)
			}
			seen[item.ID] = true
		}
	}
	return nil
}
