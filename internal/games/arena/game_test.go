package arena

import (
	"strings"
	"testing"

	"github.com/vovakirdan/minis/internal/config"
	"github.com/vovakirdan/minis/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		in := core.NewInputFrame()
		if i == 0 {
			in.Set(core.ActionConfirm)
		}
		in.Hold(core.ActionFire)
		if i%90 < 45 {
			in.Hold(core.ActionLeft)
		} else {
			in.Hold(core.ActionUp)
		}
		in.Pointer = core.Pointer{Point: core.Point{X: (i / 7) % 78, Y: 3 + i%18}, Valid: true}
		inputs[i] = in
	}

	run := func() Snapshot {
		g := NewWithConfig(config.DefaultArenaConfig())
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			g.Step(in, 1.0/60)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("Determinism failed: snapshots differ.\nRun1=%+v\nRun2=%+v", s1, s2)
	}
}

func TestGameStartsIdle(t *testing.T) {
	g := NewWithConfig(config.DefaultArenaConfig())
	g.Reset(testRuntime(1))

	if g.Mode() != ModeIdle {
		t.Fatalf("Expected idle after reset, got %s", g.Mode())
	}

	// Time passes on the title screen without starting anything
	g.Step(core.NewInputFrame(), 5)
	if g.State().Active {
		t.Error("Expected no session without a start action")
	}

	g.Step(press(core.ActionConfirm), 1.0/60)
	if g.Mode() != ModePlaying {
		t.Errorf("Expected playing after confirm, got %s", g.Mode())
	}
	if g.Session().Health != config.DefaultArenaConfig().Gameplay.Health {
		t.Errorf("Expected full health, got %d", g.Session().Health)
	}
}

func TestClickStartsSession(t *testing.T) {
	g := NewWithConfig(config.DefaultArenaConfig())
	g.Reset(testRuntime(1))

	in := core.NewInputFrame()
	in.Clicks = append(in.Clicks, core.Point{X: 10, Y: 10})
	g.Step(in, 1.0/60)

	if g.Mode() != ModePlaying {
		t.Errorf("Expected click to start a session, got %s", g.Mode())
	}
}

func TestStartIsNoOpWhileActive(t *testing.T) {
	g := NewWithConfig(config.DefaultArenaConfig())
	g.Reset(testRuntime(1))
	g.Start()

	g.session.Score = 40
	g.Start()

	if g.Session().Score != 40 {
		t.Error("Start replaced a running session")
	}
}

func TestPauseFreezesSession(t *testing.T) {
	g := NewWithConfig(config.DefaultArenaConfig())
	g.Reset(testRuntime(1))
	g.Start()

	g.Step(press(core.ActionPause), 1.0/60)
	if !g.State().Paused {
		t.Fatal("Expected paused state")
	}

	before := g.Session()
	g.Step(core.NewInputFrame(), 10)
	after := g.Session()
	if before.Elapsed != after.Elapsed || len(after.Enemies) != len(before.Enemies) {
		t.Error("Session advanced while paused")
	}

	g.Step(press(core.ActionPause), 1.0/60)
	if g.Mode() != ModePlaying {
		t.Errorf("Expected playing after unpause, got %s", g.Mode())
	}
}

// endWithScore forces the running session to end on the next step with the
// given score.
func endWithScore(g *Game, score int) {
	g.session.Score = score
	g.session.Health = 1
	g.session.Enemies = []Enemy{{Pos: g.session.Player.Pos, Health: 1}}
	g.Step(core.NewInputFrame(), 1.0/60)
}

func TestGameOverRecordsBestScore(t *testing.T) {
	store := &core.MemoryHighScore{Value: 25}

	g := NewWithConfig(config.DefaultArenaConfig())
	g.Reset(testRuntime(1))
	g.BindHighScore(store)

	if g.Best() != 25 {
		t.Fatalf("Expected best 25 from store, got %d", g.Best())
	}

	g.Start()
	endWithScore(g, 10)

	state := g.State()
	if !state.GameOver || state.Active {
		t.Fatalf("Expected game over and inactive, got %+v", state)
	}
	if g.Best() != 25 || store.Writes != 0 {
		t.Errorf("Lower score must not overwrite best: best=%d writes=%d", g.Best(), store.Writes)
	}

	g.Step(press(core.ActionConfirm), 1.0/60)
	if g.Mode() != ModePlaying {
		t.Fatal("Expected a new session from the game-over screen")
	}
	if g.State().GameOver {
		t.Error("GameOver should clear when a new session starts")
	}

	endWithScore(g, 30)
	if g.Best() != 30 || store.Value != 30 || store.Writes != 1 {
		t.Errorf("Expected best 30 written once, got best=%d value=%d writes=%d", g.Best(), store.Value, store.Writes)
	}
}

func TestResetKeepsBest(t *testing.T) {
	g := NewWithConfig(config.DefaultArenaConfig())
	g.Reset(testRuntime(1))
	g.Start()
	endWithScore(g, 50)

	g.Reset(testRuntime(2))
	if g.Best() != 50 {
		t.Errorf("Expected best to survive reset, got %d", g.Best())
	}
	if g.State().GameOver || g.State().Score != 0 {
		t.Errorf("Expected clean idle state after reset, got %+v", g.State())
	}
}

func TestControlsFromInput(t *testing.T) {
	g := NewWithConfig(config.DefaultArenaConfig())
	g.Reset(testRuntime(1))

	in := core.NewInputFrame()
	in.Hold(core.ActionUp)
	in.Hold(core.ActionRight)
	in.Pointer = core.Pointer{Point: core.Point{X: 1, Y: 2}, Valid: true, Down: true}

	ctl := g.controls(in)
	if !ctl.Up || !ctl.Right || ctl.Down || ctl.Left {
		t.Errorf("Unexpected movement flags: %+v", ctl)
	}
	if !ctl.Shoot {
		t.Error("Held pointer button should shoot")
	}
	if !ctl.HasAim {
		t.Fatal("Expected aim from a valid pointer")
	}
	// Top-left inner cell maps near the field origin
	if ctl.Aim.X > 20 || ctl.Aim.Y > 30 {
		t.Errorf("Expected aim near origin, got %+v", ctl.Aim)
	}

	none := g.controls(core.NewInputFrame())
	if none.HasAim || none.Shoot {
		t.Errorf("Expected no aim and no shot without input, got %+v", none)
	}
}

func TestViewRoundTrip(t *testing.T) {
	v := newView(80, 24, 960, 540)

	for _, c := range []core.Point{{X: 1, Y: 2}, {X: 40, Y: 12}, {X: 78, Y: 22}} {
		got := v.ToCell(v.ToWorld(c))
		if got != c {
			t.Errorf("ToCell(ToWorld(%v)) = %v", c, got)
		}
	}

	corner := v.ToCell(core.V(960, 540))
	if !v.inner.Contains(corner.X, corner.Y) {
		t.Errorf("Field corner mapped outside the view: %v", corner)
	}
}

func TestResizeKeepsSession(t *testing.T) {
	g := NewWithConfig(config.DefaultArenaConfig())
	g.Reset(testRuntime(1))
	g.Start()
	g.Step(core.NewInputFrame(), 0.5)

	before := g.Session()
	g.Resize(120, 40)
	after := g.Session()

	if before.Player != after.Player || before.Elapsed != after.Elapsed {
		t.Error("Resize changed the session")
	}
	if g.view().inner.W != 118 || g.view().inner.H != 37 {
		t.Errorf("Unexpected view after resize: %+v", g.view().inner)
	}
}

func TestRender(t *testing.T) {
	g := NewWithConfig(config.DefaultArenaConfig())
	g.Reset(testRuntime(1))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "ARENA") {
		t.Error("Expected title overlay while idle")
	}

	g.Start()
	g.Render(screen)
	out := screen.String()
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("Expected player glyph while playing")
	}
	if !strings.Contains(out, "Score: 0") {
		t.Error("Expected score in HUD")
	}
	if !strings.ContainsRune(screen.Row(0), HeartFull) {
		t.Error("Expected hearts in HUD row")
	}
}
