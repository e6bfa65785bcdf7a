package whack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/minis/internal/config"
	"github.com/vovakirdan/minis/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultWhackConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

// waitForMole steps until a mole is showing.
func waitForMole(t *testing.T, g *Game) int {
	t.Helper()
	for i := 0; i < 100 && g.round.Active == NoHole; i++ {
		g.Step(core.NewInputFrame(), 0.125)
	}
	require.NotEqual(t, NoHole, g.round.Active, "mole never appeared")
	return g.round.Active
}

func TestMoleDelayRange(t *testing.T) {
	cfg := config.DefaultWhackConfig()
	assert.Equal(t, 0.5, MoleDelay(cfg, 0))
	assert.InDelta(t, 1.1, MoleDelay(cfg, 1), 1e-12)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		d := MoleDelay(cfg, rng.Float64())
		require.GreaterOrEqual(t, d, cfg.MoleMinDelay)
		require.LessOrEqual(t, d, cfg.MoleMaxDelay)
	}
}

func TestNextHoleAvoidsExcluded(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	seen := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		h := NextHole(9, 4, rng)
		require.NotEqual(t, 4, h)
		require.True(t, h >= 0 && h < 9)
		seen[h] = true
	}
	assert.Len(t, seen, 8, "every other hole is reachable")

	for i := 0; i < 100; i++ {
		h := NextHole(9, NoHole, rng)
		require.True(t, h >= 0 && h < 9)
	}
}

func TestKeyHoleNumpadLayout(t *testing.T) {
	tests := []struct {
		key  rune
		hole int
	}{
		{'7', 0}, {'8', 1}, {'9', 2},
		{'4', 3}, {'5', 4}, {'6', 5},
		{'1', 6}, {'2', 7}, {'3', 8},
	}
	for _, tc := range tests {
		h, ok := KeyHole(tc.key, 9)
		require.True(t, ok)
		assert.Equal(t, tc.hole, h, "key %c", tc.key)
		assert.Equal(t, tc.key, keyLabel(tc.hole, 9), "label for hole %d", tc.hole)
	}

	_, ok := KeyHole('0', 9)
	assert.False(t, ok)
	_, ok = KeyHole('x', 9)
	assert.False(t, ok)

	h, ok := KeyHole('3', 4)
	assert.True(t, ok)
	assert.Equal(t, 2, h)
	_, ok = KeyHole('5', 4)
	assert.False(t, ok)
}

func TestStartRequiresConfirm(t *testing.T) {
	g := newTestGame(t)

	g.Step(core.NewInputFrame(), 3)
	assert.Equal(t, ModeIdle, g.Mode())

	g.Step(press(core.ActionConfirm), 0)
	require.Equal(t, ModePlaying, g.Mode())

	r := g.Round()
	assert.Equal(t, 30, r.TimeLeft)
	assert.Equal(t, NoHole, r.Active)
	assert.True(t, r.Pending)
	assert.GreaterOrEqual(t, r.Delay, 0.5)
	assert.LessOrEqual(t, r.Delay, 1.1)
}

func TestMoleAppearsAfterDelay(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	delay := g.round.Delay

	g.Step(core.NewInputFrame(), delay/2)
	assert.Equal(t, NoHole, g.round.Active)

	g.Step(core.NewInputFrame(), delay/2)
	assert.NotEqual(t, NoHole, g.round.Active)
	assert.False(t, g.round.Pending)
}

func TestHitScoresAndBuildsStreak(t *testing.T) {
	g := newTestGame(t)
	g.Start()

	for i := 1; i <= 3; i++ {
		hole := waitForMole(t, g)

		in := core.NewInputFrame()
		in.Text = []rune{keyLabel(hole, 9)}
		g.Step(in, 0)

		r := g.Round()
		assert.Equal(t, i, r.Score)
		assert.Equal(t, i, r.Streak)
		assert.Equal(t, NoHole, r.Active, "mole cleared after a hit")
		assert.True(t, r.Pending, "next mole scheduled")
		assert.Equal(t, Badge{Text: "x" + string(rune('0'+i))}, r.Badges[hole])
	}
}

func TestNextMoleUsesDifferentHole(t *testing.T) {
	g := newTestGame(t)
	g.Start()

	prev := NoHole
	for i := 0; i < 20; i++ {
		hole := waitForMole(t, g)
		require.NotEqual(t, prev, hole)
		g.round.Whack(hole, g.cfg, g.rng)
		prev = hole
	}
}

func TestMissResetsStreakAndShowsBadge(t *testing.T) {
	g := newTestGame(t)
	g.Start()

	hole := waitForMole(t, g)
	g.round.Whack(hole, g.cfg, g.rng)
	hole = waitForMole(t, g)
	g.round.Whack(hole, g.cfg, g.rng)
	require.Equal(t, 2, g.round.Streak)

	wrong := (hole + 1) % 9
	hit := g.round.Whack(wrong, g.cfg, g.rng)
	assert.False(t, hit)
	assert.Equal(t, 0, g.round.Streak)
	assert.Equal(t, 2, g.round.Score, "a miss costs no points")
	assert.Equal(t, 2, g.round.BestStreak)
	assert.Equal(t, "Miss!", g.round.Badges[wrong].Text)

	// Badge lasts 0.6s; keep the next mole away meanwhile
	g.round.Delay = 10
	g.Step(core.NewInputFrame(), 0.5)
	assert.Equal(t, "Miss!", g.round.Badges[wrong].Text)
	g.Step(core.NewInputFrame(), 0.125)
	assert.Empty(t, g.round.Badges[wrong].Text)
}

func TestClickWhacksHole(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	hole := waitForMole(t, g)

	rect := layout(80, 24, 9)[hole]
	cx, cy := rect.Center()

	in := core.NewInputFrame()
	in.Clicks = []core.Point{{X: cx, Y: cy}}
	g.Step(in, 0)

	assert.Equal(t, 1, g.round.Score)
}

func TestCountdownEndsRound(t *testing.T) {
	store := &core.MemoryHighScore{Value: 1}
	g := newTestGame(t)
	g.BindHighScore(store)
	g.Start()

	hole := waitForMole(t, g)
	g.round.Whack(hole, g.cfg, g.rng)
	hole = waitForMole(t, g)
	g.round.Whack(hole, g.cfg, g.rng)

	for g.Mode() == ModePlaying {
		before := g.round.TimeLeft
		g.Step(core.NewInputFrame(), 0.25)
		if g.Mode() == ModePlaying {
			require.GreaterOrEqual(t, g.round.TimeLeft, before-1, "countdown drops one second at a time")
		}
	}

	state := g.State()
	assert.True(t, state.GameOver)
	assert.False(t, state.Active)
	assert.Equal(t, 2, state.Score)
	assert.Equal(t, 0, g.round.TimeLeft)
	assert.Equal(t, NoHole, g.round.Active)
	assert.Equal(t, 2, g.Best())
	assert.Equal(t, 2, store.Value)
	assert.Equal(t, 1, store.Writes)

	// A worse round keeps the best score
	g.Step(press(core.ActionFire), 0)
	require.Equal(t, ModePlaying, g.Mode())
	g.Step(core.NewInputFrame(), 31)
	assert.Equal(t, ModeIdle, g.Mode())
	assert.Equal(t, 2, g.Best())
	assert.Equal(t, 1, store.Writes)
}

func TestInputIgnoredWhenIdle(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Text = []rune("123456789")
	g.Step(in, 0.1)

	assert.Equal(t, 0, g.State().Score)
	assert.Equal(t, ModeIdle, g.Mode())
}

func TestPauseFreezesClock(t *testing.T) {
	g := newTestGame(t)
	g.Start()

	g.Step(press(core.ActionPause), 0)
	require.Equal(t, ModePaused, g.Mode())

	g.Step(core.NewInputFrame(), 100)
	assert.Equal(t, 30, g.round.TimeLeft)

	g.Step(press(core.ActionPause), 0)
	assert.Equal(t, ModePlaying, g.Mode())
}

func TestLayoutFitsScreen(t *testing.T) {
	rects := layout(80, 24, 9)
	require.Len(t, rects, 9)

	for i, r := range rects {
		assert.GreaterOrEqual(t, r.X, 0)
		assert.LessOrEqual(t, r.Right(), 80)
		assert.LessOrEqual(t, r.Bottom(), 24)
		for j := i + 1; j < len(rects); j++ {
			assert.False(t, r.Intersects(rects[j]), "holes %d and %d overlap", i, j)
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	assert.Contains(t, screen.String(), "Enter: start")

	g.Start()
	waitForMole(t, g)
	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, moleArt)
	assert.Contains(t, out, "Time: ")
	assert.NotContains(t, out, "Enter: start")
}
