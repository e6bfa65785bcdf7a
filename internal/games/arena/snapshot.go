package arena

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Mode        Mode
	Score       int
	Health      int
	Best        int
	PlayerX     float64
	PlayerY     float64
	Enemies     int
	Projectiles int
	Elapsed     float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Mode:        g.mode,
		Score:       g.session.Score,
		Health:      g.session.Health,
		Best:        g.best,
		PlayerX:     g.session.Player.Pos.X,
		PlayerY:     g.session.Player.Pos.Y,
		Enemies:     len(g.session.Enemies),
		Projectiles: len(g.session.Projectiles),
		Elapsed:     g.session.Elapsed,
	}
}
