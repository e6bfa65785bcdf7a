package whack

import (
	"fmt"

	"github.com/vovakirdan/minis/internal/core"
)

// Hole geometry in cells
const (
	holeW    = 13
	holeH    = 5
	holeGapX = 2
	holeGapY = 1
	gridCols = 3
	gridTop  = 3
)

const (
	moleArt  = "(o.o)"
	emptyArt = "_____"
)

// layout returns the screen rectangle of every hole, centered horizontally
// below the header.
func layout(screenW, screenH, holes int) []core.Rect {
	rows := (holes + gridCols - 1) / gridCols
	totalW := gridCols*holeW + (gridCols-1)*holeGapX
	totalH := rows*holeH + (rows-1)*holeGapY

	left := core.Max((screenW-totalW)/2, 0)
	top := gridTop
	if free := screenH - gridTop - totalH; free > 1 {
		top += free / 2
	}

	rects := make([]core.Rect, holes)
	for i := range rects {
		col, row := i%gridCols, i/gridCols
		rects[i] = core.NewRect(
			left+col*(holeW+holeGapX),
			top+row*(holeH+holeGapY),
			holeW, holeH,
		)
	}
	return rects
}

// keyLabel returns the digit that whacks a hole.
func keyLabel(hole, holes int) rune {
	if holes == 9 {
		row, col := hole/3, hole%3
		return rune('1' + (2-row)*3 + col)
	}
	return rune('1' + hole)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf("Score: %d   Time: %ds   Streak: %d", g.round.Score, g.round.TimeLeft, g.round.Streak)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)
	best := fmt.Sprintf("Best: %d", g.best)
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorYellow)
	dst.DrawTextCenteredColored(1, "WHACK-A-MOLE", core.ColorBrightGreen)

	for i, r := range layout(dst.Width(), dst.Height(), g.cfg.Holes) {
		g.drawHole(dst, i, r)
	}

	switch {
	case g.mode == ModePaused:
		dst.DrawMessageBox("PAUSED", "P: resume  |  B: menu")
	case g.mode == ModeIdle && g.finished:
		dst.DrawMessageBox("TIME UP", fmt.Sprintf("Score: %d  Best: %d  |  Enter: play again", g.round.Score, g.best))
	case g.mode == ModeIdle:
		dst.DrawMessageBox("WHACK-A-MOLE", "Keys 1-9 or click to whack  |  Enter: start")
	}
}

func (g *Game) drawHole(dst *core.Screen, i int, r core.Rect) {
	color := core.ColorGray
	if i == g.round.Active {
		color = core.ColorGreen
	}
	dst.DrawBoxColored(r, color)
	dst.SetColored(r.X+1, r.Y, keyLabel(i, g.cfg.Holes), core.ColorBrightWhite)

	midX := r.X + (r.W-len(moleArt))/2
	if i == g.round.Active {
		dst.DrawTextColored(midX, r.Y+1, moleArt, core.ColorBrightYellow)
	}
	dst.DrawTextColored(midX, r.Y+2, emptyArt, core.ColorYellow)

	if i < len(g.round.Badges) {
		if b := g.round.Badges[i]; b.Text != "" {
			c := core.ColorBrightMagenta
			if b.TTL > 0 {
				c = core.ColorBrightRed
			}
			dst.DrawTextColored(r.X+(r.W-len(b.Text))/2, r.Y+3, b.Text, c)
		}
	}
}
