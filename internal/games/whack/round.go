package whack

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/minis/internal/config"
)

// NoHole marks the absence of a mole.
const NoHole = -1

// Badge is a short label shown under a hole.
type Badge struct {
	Text string
	TTL  float64 // Seconds left; 0 means it stays until replaced
}

// Round is the state of one timed round.
type Round struct {
	Score      int
	Streak     int
	BestStreak int
	TimeLeft   int // Whole seconds remaining
	Active     int // Hole showing a mole, or NoHole
	Last       int // Hole the previous mole used, or NoHole
	Pending    bool
	Delay      float64 // Seconds until the pending mole appears
	Badges     []Badge

	secondAcc float64
}

// NewRound returns a round with a full countdown and the first mole scheduled.
func NewRound(cfg config.WhackConfig, rng *rand.Rand) Round {
	r := Round{
		TimeLeft: cfg.RoundDuration,
		Active:   NoHole,
		Last:     NoHole,
		Badges:   make([]Badge, cfg.Holes),
	}
	r.schedule(cfg, rng)
	return r
}

// MoleDelay returns a delay uniformly distributed in [min, max].
func MoleDelay(cfg config.WhackConfig, u float64) float64 {
	return cfg.MoleMinDelay + u*(cfg.MoleMaxDelay-cfg.MoleMinDelay)
}

func (r *Round) schedule(cfg config.WhackConfig, rng *rand.Rand) {
	r.Pending = true
	r.Delay = MoleDelay(cfg, rng.Float64())
}

// NextHole picks a hole uniformly among all holes except exclude.
func NextHole(holes, exclude int, rng *rand.Rand) int {
	if exclude < 0 || exclude >= holes {
		return rng.Intn(holes)
	}
	h := rng.Intn(holes - 1)
	if h >= exclude {
		h++
	}
	return h
}

// Whack resolves a hit attempt on hole and reports whether it hit a mole.
func (r *Round) Whack(hole int, cfg config.WhackConfig, rng *rand.Rand) bool {
	if hole < 0 || hole >= len(r.Badges) {
		return false
	}

	if hole == r.Active {
		r.Score++
		r.Streak++
		r.BestStreak = max(r.BestStreak, r.Streak)
		r.Badges[hole] = Badge{Text: fmt.Sprintf("x%d", r.Streak)}
		r.Active = NoHole
		r.schedule(cfg, rng)
		return true
	}

	r.Streak = 0
	r.Badges[hole] = Badge{Text: "Miss!", TTL: cfg.MissBadgeTime}
	return false
}

// Advance moves the round's clocks forward by dt seconds and reports
// whether the countdown reached zero.
func (r *Round) Advance(dt float64, cfg config.WhackConfig, rng *rand.Rand) bool {
	r.secondAcc += dt
	for r.secondAcc >= 1 && r.TimeLeft > 0 {
		r.secondAcc--
		r.TimeLeft--
	}
	if r.TimeLeft <= 0 {
		r.Active = NoHole
		r.Pending = false
		clear(r.Badges)
		return true
	}

	if r.Pending {
		r.Delay -= dt
		if r.Delay <= 0 {
			// A new mole never reuses the hole the last one occupied, even
			// though that hole is empty by now, so consecutive moles always move.
			h := NextHole(len(r.Badges), r.Last, rng)
			r.Active, r.Last = h, h
			r.Pending = false
			r.Badges[h] = Badge{}
		}
	}

	for i := range r.Badges {
		b := &r.Badges[i]
		if b.TTL <= 0 {
			continue
		}
		b.TTL -= dt
		if b.TTL <= 0 {
			*b = Badge{}
		}
	}

	return false
}
