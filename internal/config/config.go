// Package config provides YAML-based program configuration loading and
// difficulty presets for the minis platform.
package config

// ArenaConfig contains all configuration for the arena shooter.
// Distances are in field units, speeds in units per second, times in seconds.
type ArenaConfig struct {
	Field      ArenaField      `yaml:"field"`
	Player     ArenaPlayer     `yaml:"player"`
	Projectile ArenaProjectile `yaml:"projectile"`
	Enemy      ArenaEnemy      `yaml:"enemy"`
	Gameplay   ArenaGameplay   `yaml:"gameplay"`
}

// ArenaField defines the play-field extent.
type ArenaField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ArenaPlayer defines player parameters.
type ArenaPlayer struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// ArenaProjectile defines projectile parameters.
type ArenaProjectile struct {
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`
	Lifetime     float64 `yaml:"lifetime"`
	FireInterval float64 `yaml:"fire_interval"`
	BoundsMargin float64 `yaml:"bounds_margin"`
}

// ArenaEnemy defines enemy parameters.
type ArenaEnemy struct {
	Radius        float64 `yaml:"radius"`
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedJitter   float64 `yaml:"speed_jitter"`
	ScoreFactor   float64 `yaml:"score_factor"`   // Speed added per point of score
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
	HitShrink     float64 `yaml:"hit_shrink"`     // Radius multiplier for player contact
}

// ArenaGameplay defines session rules.
type ArenaGameplay struct {
	Health int `yaml:"health"`
	Reward int `yaml:"reward"`
}

// WhackConfig contains all configuration for whack-a-mole.
type WhackConfig struct {
	Holes         int     `yaml:"holes"`
	RoundDuration int     `yaml:"round_duration"` // Whole seconds
	MoleMinDelay  float64 `yaml:"mole_min_delay"` // Seconds
	MoleMaxDelay  float64 `yaml:"mole_max_delay"` // Seconds
	MissBadgeTime float64 `yaml:"miss_badge_time"`
}

// FAQConfig contains the question/answer pairs shown by the FAQ accordion.
type FAQConfig struct {
	Title string    `yaml:"title"`
	Items []FAQItem `yaml:"items"`
}

// FAQItem is a single question and its answer.
type FAQItem struct {
	ID       string `yaml:"id"`
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
