package arena

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/minis/internal/config"
	"github.com/vovakirdan/minis/internal/core"
)

// Player is the single player-controlled entity.
type Player struct {
	Pos    core.Vec2
	Facing float64 // Radians; 0 points right, pi/2 points down
}

// Projectile travels along a fixed angle until it leaves the field or expires.
type Projectile struct {
	Pos   core.Vec2
	Angle float64
	Speed float64
	Age   float64 // Seconds since it was fired
}

// Enemy pursues the player and dies in one hit.
type Enemy struct {
	Pos    core.Vec2
	Speed  float64
	Facing float64
	Health int
}

// Controls is the per-frame input the simulation consumes.
type Controls struct {
	Up, Down, Left, Right bool
	Shoot                 bool
	Aim                   core.Vec2 // Cursor in field coordinates
	HasAim                bool
}

// Events summarizes what happened during one step.
type Events struct {
	Fired   int
	Spawned int
	Kills   int
	Hits    int  // Enemies that reached the player
	Ended   bool // The session ended during this step
}

// Session is the complete state of one play-through. It is a value: Step
// returns the next session and never mutates the receiver's slices.
type Session struct {
	Active      bool
	Score       int
	Health      int
	Cooldown    float64 // Seconds until the next shot is allowed
	SpawnTimer  float64 // Seconds accumulated toward the next spawn
	Elapsed     float64
	Player      Player
	Projectiles []Projectile
	Enemies     []Enemy
}

// NewSession returns an active session with the player centered.
func NewSession(cfg config.ArenaConfig) Session {
	return Session{
		Active: true,
		Health: cfg.Gameplay.Health,
		Player: Player{
			Pos: core.V(cfg.Field.Width/2, cfg.Field.Height/2),
		},
	}
}

// Step advances the session by dt seconds. An inactive session is returned
// unchanged.
func (s Session) Step(ctl Controls, dt float64, rng *rand.Rand, cfg config.ArenaConfig) (Session, Events) {
	var ev Events
	if !s.Active {
		return s, ev
	}

	s.Elapsed += dt
	s.Projectiles = append([]Projectile(nil), s.Projectiles...)
	s.Enemies = append([]Enemy(nil), s.Enemies...)

	s.movePlayer(ctl, dt, cfg)
	ev.Fired = s.shoot(ctl, dt, cfg)
	s.updateProjectiles(dt, cfg)
	ev.Spawned = s.spawnEnemies(dt, rng, cfg)
	s.updateEnemies(dt)
	ev.Kills, ev.Hits, ev.Ended = s.resolveCollisions(cfg)

	return s, ev
}

// MoveDirection converts held movement flags into a direction of length 0
// or 1. Opposing flags cancel; diagonals are normalized.
func MoveDirection(up, down, left, right bool) core.Vec2 {
	var d core.Vec2
	if left {
		d.X--
	}
	if right {
		d.X++
	}
	if up {
		d.Y--
	}
	if down {
		d.Y++
	}
	return d.Normalize()
}

func (s *Session) movePlayer(ctl Controls, dt float64, cfg config.ArenaConfig) {
	dir := MoveDirection(ctl.Up, ctl.Down, ctl.Left, ctl.Right)
	r := cfg.Player.Radius

	pos := s.Player.Pos.Add(dir.Scale(cfg.Player.Speed * dt))
	pos.X = core.ClampF(pos.X, r, cfg.Field.Width-r)
	pos.Y = core.ClampF(pos.Y, r, cfg.Field.Height-r)
	s.Player.Pos = pos

	switch {
	case ctl.HasAim && ctl.Aim != pos:
		s.Player.Facing = core.AngleTo(pos, ctl.Aim)
	case !ctl.HasAim && dir != (core.Vec2{}):
		// Keyboard-only terminals aim where the player walks.
		s.Player.Facing = math.Atan2(dir.Y, dir.X)
	}
}

func (s *Session) shoot(ctl Controls, dt float64, cfg config.ArenaConfig) int {
	s.Cooldown = math.Max(0, s.Cooldown-dt)
	if !ctl.Shoot || s.Cooldown > 0 {
		return 0
	}

	muzzle := s.Player.Pos.Add(core.FromAngle(s.Player.Facing).Scale(cfg.Player.Radius))
	s.Projectiles = append(s.Projectiles, Projectile{
		Pos:   muzzle,
		Angle: s.Player.Facing,
		Speed: cfg.Projectile.Speed,
	})
	s.Cooldown = cfg.Projectile.FireInterval
	return 1
}

func (s *Session) updateProjectiles(dt float64, cfg config.ArenaConfig) {
	m := cfg.Projectile.BoundsMargin
	kept := s.Projectiles[:0]

	for _, p := range s.Projectiles {
		p.Pos = p.Pos.Add(core.FromAngle(p.Angle).Scale(p.Speed * dt))
		p.Age += dt

		out := p.Pos.X < -m || p.Pos.X > cfg.Field.Width+m ||
			p.Pos.Y < -m || p.Pos.Y > cfg.Field.Height+m
		if out || p.Age > cfg.Projectile.Lifetime {
			continue
		}
		kept = append(kept, p)
	}
	s.Projectiles = kept
}

func (s *Session) spawnEnemies(dt float64, rng *rand.Rand, cfg config.ArenaConfig) int {
	s.SpawnTimer += dt

	spawned := 0
	for s.SpawnTimer >= cfg.Enemy.SpawnInterval {
		s.SpawnTimer -= cfg.Enemy.SpawnInterval
		s.Enemies = append(s.Enemies, Enemy{
			Pos:    PerimeterPoint(rng.Float64(), cfg.Field.Width, cfg.Field.Height),
			Speed:  EnemySpeed(cfg.Enemy, rng.Float64(), s.Score),
			Health: 1,
		})
		spawned++
	}
	return spawned
}

// PerimeterPoint maps u in [0, 1) to a point on the field's rectangular
// boundary, walking clockwise from the top-left corner. Uniform u gives a
// point uniformly distributed along the perimeter.
func PerimeterPoint(u, w, h float64) core.Vec2 {
	t := u * 2 * (w + h)

	if t < w {
		return core.V(t, 0)
	}
	t -= w
	if t < h {
		return core.V(w, t)
	}
	t -= h
	if t < w {
		return core.V(w-t, h)
	}
	t -= w
	return core.V(0, h-t)
}

// EnemySpeed returns base speed plus jitter (u in [0, 1)) plus a term
// proportional to the current score.
func EnemySpeed(cfg config.ArenaEnemy, u float64, score int) float64 {
	return cfg.BaseSpeed + u*cfg.SpeedJitter + cfg.ScoreFactor*float64(score)
}

func (s *Session) updateEnemies(dt float64) {
	target := s.Player.Pos
	for i := range s.Enemies {
		e := &s.Enemies[i]
		e.Facing = core.AngleTo(e.Pos, target)
		e.Pos = e.Pos.Add(core.FromAngle(e.Facing).Scale(e.Speed * dt))
	}
}

func (s *Session) resolveCollisions(cfg config.ArenaConfig) (kills, hits int, ended bool) {
	pr := cfg.Projectile.Radius
	er := cfg.Enemy.Radius

	// Projectiles against enemies: first match wins for each projectile.
	projectiles := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		hit := false
		for i := range s.Enemies {
			e := &s.Enemies[i]
			if e.Health <= 0 {
				continue
			}
			if core.CirclesOverlap(p.Pos, pr, e.Pos, er) {
				e.Health--
				s.Score += cfg.Gameplay.Reward
				kills++
				hit = true
				break
			}
		}
		if !hit {
			projectiles = append(projectiles, p)
		}
	}
	s.Projectiles = projectiles

	// Surviving enemies against the player.
	enemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.Health <= 0 {
			continue
		}
		if !ended && core.CirclesOverlap(e.Pos, er*cfg.Enemy.HitShrink, s.Player.Pos, cfg.Player.Radius) {
			hits++
			s.Health--
			if s.Health <= 0 {
				s.Health = 0
				s.Active = false
				ended = true
			}
			continue
		}
		enemies = append(enemies, e)
	}
	s.Enemies = enemies

	return kills, hits, ended
}
