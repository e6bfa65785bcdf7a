package config

import "fmt"

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// presetScale returns the multiplier applied to "how hard" parameters.
// Normal and fixed keep the configured values.
func presetScale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}

// ApplyArenaPreset adjusts enemy tuning for a preset. The linear
// score-based enemy speed increase is scaled, never replaced, and the
// starting health is left alone.
func ApplyArenaPreset(cfg *ArenaConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		return
	}

	k := presetScale(preset)
	cfg.Enemy.BaseSpeed *= k
	cfg.Enemy.ScoreFactor *= k
	cfg.Enemy.SpawnInterval /= k
}

// ApplyWhackPreset adjusts mole timing for a preset.
func ApplyWhackPreset(cfg *WhackConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		return
	}

	k := presetScale(preset)
	cfg.MoleMinDelay /= k
	cfg.MoleMaxDelay /= k
}
