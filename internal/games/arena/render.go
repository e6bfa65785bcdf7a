package arena

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/minis/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '@'
	EnemyChar      = '▒'
	EnemyCoreChar  = '█'
	ProjectileChar = '•'
	HeartFull      = '♥'
	HeartEmpty     = '♡'
)

// facingChars indexes eight directions, starting at "right" and turning clockwise.
var facingChars = []rune{'─', '╲', '│', '╱', '─', '╲', '│', '╱'}

// view maps field coordinates onto the screen area inside the border.
// Row 0 holds the HUD; the border occupies rows 1 and H-1.
type view struct {
	inner          core.Rect
	fieldW, fieldH float64
}

func newView(screenW, screenH int, fieldW, fieldH float64) view {
	return view{
		inner:  core.NewRect(1, 2, core.Max(screenW-2, 1), core.Max(screenH-3, 1)),
		fieldW: fieldW,
		fieldH: fieldH,
	}
}

func (g *Game) view() view {
	return newView(g.runtime.ScreenW, g.runtime.ScreenH, g.cfg.Field.Width, g.cfg.Field.Height)
}

// ToCell maps a field position to the cell that contains it.
func (v view) ToCell(p core.Vec2) core.Point {
	x := int(p.X / v.fieldW * float64(v.inner.W))
	y := int(p.Y / v.fieldH * float64(v.inner.H))
	return core.Point{
		X: v.inner.X + core.Clamp(x, 0, v.inner.W-1),
		Y: v.inner.Y + core.Clamp(y, 0, v.inner.H-1),
	}
}

// ToWorld maps a cell to the field position at the cell's center.
func (v view) ToWorld(c core.Point) core.Vec2 {
	x := (float64(c.X-v.inner.X) + 0.5) / float64(v.inner.W) * v.fieldW
	y := (float64(c.Y-v.inner.Y) + 0.5) / float64(v.inner.H) * v.fieldH
	return core.V(core.ClampF(x, 0, v.fieldW), core.ClampF(y, 0, v.fieldH))
}

// cellRadii returns a field radius expressed in cells along each axis.
func (v view) cellRadii(r float64) (float64, float64) {
	return r / v.fieldW * float64(v.inner.W), r / v.fieldH * float64(v.inner.H)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	v := newView(dst.Width(), dst.Height(), g.cfg.Field.Width, g.cfg.Field.Height)
	dst.DrawBoxColored(core.NewRect(0, 1, dst.Width(), dst.Height()-1), core.ColorGray)

	if g.mode != ModeIdle || g.finished {
		g.drawSession(dst, v)
	}
	g.drawHUD(dst)

	switch {
	case g.mode == ModePaused:
		dst.DrawMessageBox("PAUSED", "P: resume  |  B: menu")
	case g.mode == ModeIdle && g.finished:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  Best: %d  |  Enter: play again", g.session.Score, g.best))
	case g.mode == ModeIdle:
		dst.DrawMessageBox("ARENA", "WASD move, mouse aim, Space/click fire  |  Enter: start")
	}
}

func (g *Game) drawSession(dst *core.Screen, v view) {
	s := &g.session

	for _, e := range s.Enemies {
		drawBlob(dst, v, e.Pos, g.cfg.Enemy.Radius, EnemyChar, core.ColorRed)
		c := v.ToCell(e.Pos)
		dst.SetColored(c.X, c.Y, EnemyCoreChar, core.ColorBrightRed)
	}

	for _, p := range s.Projectiles {
		c := v.ToCell(p.Pos)
		dst.SetColored(c.X, c.Y, ProjectileChar, core.ColorBrightYellow)
	}

	// Facing indicator just outside the player's body
	rx, ry := v.cellRadii(g.cfg.Player.Radius)
	dir := core.FromAngle(s.Player.Facing)
	pc := v.ToCell(s.Player.Pos)
	tip := core.Point{
		X: pc.X + int(math.Round(dir.X*math.Max(rx, 1))),
		Y: pc.Y + int(math.Round(dir.Y*math.Max(ry, 1))),
	}
	if tip != pc && v.inner.Contains(tip.X, tip.Y) {
		dst.SetColored(tip.X, tip.Y, facingChar(s.Player.Facing), core.ColorCyan)
	}
	dst.SetColored(pc.X, pc.Y, PlayerChar, core.ColorBrightCyan)
}

// drawBlob fills the cells covered by a circle of field radius r.
func drawBlob(dst *core.Screen, v view, center core.Vec2, r float64, ch rune, color core.Color) {
	rx, ry := v.cellRadii(r)
	c := v.ToCell(center)

	for dy := -int(ry); dy <= int(ry); dy++ {
		for dx := -int(rx); dx <= int(rx); dx++ {
			nx, ny := float64(dx)/math.Max(rx, 1), float64(dy)/math.Max(ry, 1)
			if nx*nx+ny*ny > 1 {
				continue
			}
			x, y := c.X+dx, c.Y+dy
			if v.inner.Contains(x, y) {
				dst.SetColored(x, y, ch, color)
			}
		}
	}
}

// facingChar picks a line character for an angle in radians.
func facingChar(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return facingChars[octant]
}

func (g *Game) drawHUD(dst *core.Screen) {
	health := g.session.Health
	var hearts strings.Builder
	for i := 0; i < g.cfg.Gameplay.Health; i++ {
		if i < health {
			hearts.WriteRune(HeartFull)
		} else {
			hearts.WriteRune(HeartEmpty)
		}
	}

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.session.Score), core.ColorBrightWhite)
	dst.DrawTextColored(16, 0, hearts.String(), core.ColorBrightRed)

	best := fmt.Sprintf("Best: %d", g.best)
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorYellow)
}
