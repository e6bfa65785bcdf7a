package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

//go:embed defaults/whack.yaml
var defaultWhackYAML []byte

//go:embed defaults/faq.yaml
var defaultFAQYAML []byte

// DefaultArenaConfig returns the default arena shooter configuration.
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		Field: ArenaField{
			Width:  960,
			Height: 540,
		},
		Player: ArenaPlayer{
			Radius: 18,
			Speed:  280,
		},
		Projectile: ArenaProjectile{
			Radius:       6,
			Speed:        620,
			Lifetime:     1.2,
			FireInterval: 0.18,
			BoundsMargin: 20,
		},
		Enemy: ArenaEnemy{
			Radius:        24,
			BaseSpeed:     90,
			SpeedJitter:   40,
			ScoreFactor:   0.6,
			SpawnInterval: 1.2,
			HitShrink:     0.8,
		},
		Gameplay: ArenaGameplay{
			Health: 3,
			Reward: 10,
		},
	}
}

// DefaultWhackConfig returns the default whack-a-mole configuration.
func DefaultWhackConfig() WhackConfig {
	return WhackConfig{
		Holes:         9,
		RoundDuration: 30,
		MoleMinDelay:  0.5,
		MoleMaxDelay:  1.1,
		MissBadgeTime: 0.6,
	}
}

// DefaultFAQConfig returns a minimal FAQ used when the embedded YAML is unusable.
func DefaultFAQConfig() FAQConfig {
	return FAQConfig{
		Title: "Frequently Asked Questions",
		Items: []FAQItem{
			{
				ID:       "how-to-play",
				Question: "How do I start a program?",
				Answer:   `Run "minis menu" and pick a program, or "minis play <id>".`,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a program.
func GetDefaultYAML(id string) []byte {
	switch id {
	case "arena":
		return defaultArenaYAML
	case "whack":
		return defaultWhackYAML
	case "faq":
		return defaultFAQYAML
	default:
		return nil
	}
}
