package chase

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/games/chase/engine"
	"github.com/vovakirdan/maze-chase/internal/games/chase/levels"
	"github.com/vovakirdan/maze-chase/internal/registry"
)

var screen80x24 = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20, Seed: 7}

// setup points the package selections at a temporary config with short
// pauses and, when rows is non-nil, at a maze file built from rows.
func setup(t *testing.T, rows []string, lives, extraAt int) {
	t.Helper()
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "chase.yaml")
	cfg := fmt.Sprintf("scoring:\n  extra_life_at: %d\ngameplay:\n  lives: %d\n  ready_ms: 100\n  death_pause_ms: 100\n  clear_pause_ms: 100\n", extraAt, lives)
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(cfgPath)
	SetDifficultyPreset("")
	SetMazeDir(filepath.Join(dir, "mazes"))
	SetMaze("compact")

	if rows != nil {
		var b strings.Builder
		b.WriteString("id: test\nname: Test\nrows:\n")
		for _, r := range rows {
			fmt.Fprintf(&b, "  - %q\n", r)
		}
		mazePath := filepath.Join(dir, "test.yaml")
		if err := os.WriteFile(mazePath, []byte(b.String()), 0o644); err != nil {
			t.Fatal(err)
		}
		SetMaze(mazePath)
	}

	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
		SetMaze("")
		SetMazeDir(levels.DefaultDir())
	})
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	in.Elapsed = 50 * time.Millisecond
	return g.Step(in)
}

// stepUntil steps until the game reaches phase p, failing after limit steps.
func stepUntil(t *testing.T, g *Game, p Phase, limit int) {
	t.Helper()
	for i := 0; i < limit; i++ {
		if g.phase == p {
			return
		}
		step(g)
	}
	if g.phase != p {
		t.Fatalf("phase %q not reached after %d steps, still %q", p, limit, g.phase)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"chase", "chase_practice"} {
		if !registry.Exists(id) {
			t.Errorf("%s should be registered", id)
		}
	}
	info, _ := registry.Info("chase_practice")
	if info.Scored {
		t.Error("practice variant should not be scored")
	}
	info, _ = registry.Info("chase")
	if !info.Scored {
		t.Error("arcade variant should be scored")
	}
}

func TestEngineConfigDefaults(t *testing.T) {
	got, err := EngineConfig(config.DefaultChaseConfig())
	if err != nil {
		t.Fatalf("EngineConfig failed: %v", err)
	}
	if !reflect.DeepEqual(got, engine.DefaultConfig()) {
		t.Errorf("default file config should match engine defaults:\n%+v\n%+v", got, engine.DefaultConfig())
	}

	bad := config.DefaultChaseConfig()
	bad.Timing.Phases = []config.PhaseConfig{{Mode: "nap", Seconds: 1}}
	if _, err := EngineConfig(bad); err == nil {
		t.Error("expected error for unknown phase mode")
	}
}

func TestReadyThenPlaying(t *testing.T) {
	setup(t, nil, 3, 0)
	g := New()
	g.Reset(screen80x24)

	if g.Err() != nil {
		t.Fatalf("unexpected error: %v", g.Err())
	}
	if g.phase != PhaseReady {
		t.Fatalf("expected ready phase, got %q", g.phase)
	}
	st := g.State()
	if st.Lives != 3 || st.Level != 1 || st.Variant != "compact" {
		t.Errorf("unexpected initial state %+v", st)
	}

	step(g)
	if g.phase != PhaseReady {
		t.Error("ready pause ended too early")
	}
	step(g)
	if g.phase != PhasePlaying {
		t.Errorf("expected playing after ready pause, got %q", g.phase)
	}
}

func TestDeterminism(t *testing.T) {
	setup(t, nil, 3, 0)

	run := func() Snapshot {
		g := New()
		g.Reset(screen80x24)
		for i := 0; i < 300; i++ {
			switch {
			case i%40 < 10:
				step(g, core.ActionLeft)
			case i%40 < 20:
				step(g, core.ActionUp)
			case i%40 < 30:
				step(g, core.ActionRight)
			default:
				step(g, core.ActionDown)
			}
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and input diverged:\n%+v\n%+v", a.Sim.Player, b.Sim.Player)
	}
}

func TestDirectionInputMovesPlayer(t *testing.T) {
	setup(t, []string{"#######", "#P....#", "#######"}, 3, 0)
	g := New()
	g.Reset(screen80x24)
	stepUntil(t, g, PhasePlaying, 10)

	res := step(g, core.ActionRight)
	for i := 0; i < 3; i++ {
		res = step(g)
	}
	if g.Snapshot().Sim.Player.Pos == engine.C(1, 1) {
		t.Fatal("player did not move right")
	}
	if res.State.Score == 0 {
		t.Error("moving over pellets should score")
	}
}

func TestLosingAllLivesEndsGame(t *testing.T) {
	setup(t, []string{"#####", "#P.A#", "#####"}, 2, 0)
	g := New()
	g.Reset(screen80x24)

	stepUntil(t, g, PhaseDying, 40)
	if g.lives != 1 {
		t.Errorf("lives = %d after first death, expected 1", g.lives)
	}
	stepUntil(t, g, PhaseReady, 10)
	if !g.Snapshot().Sim.Player.Alive {
		t.Error("player should be revived for the next round")
	}

	stepUntil(t, g, PhaseGameOver, 60)
	st := g.State()
	if !st.GameOver || st.Lives != 0 {
		t.Errorf("expected game over with no lives, got %+v", st)
	}

	// Frozen until restart.
	tick := g.Snapshot().Sim.Tick
	step(g, core.ActionLeft)
	if g.Snapshot().Sim.Tick != tick {
		t.Error("game over should freeze the simulation")
	}

	step(g, core.ActionRestart)
	if g.phase != PhaseReady || g.lives != 2 {
		t.Errorf("restart: phase %q lives %d", g.phase, g.lives)
	}
}

func TestPracticeKeepsLives(t *testing.T) {
	setup(t, []string{"#####", "#P.A#", "#####"}, 1, 0)
	g := NewPractice()
	g.Reset(screen80x24)

	stepUntil(t, g, PhaseDying, 40)
	stepUntil(t, g, PhaseReady, 10)
	stepUntil(t, g, PhaseDying, 40)
	if g.lives != 1 || g.State().GameOver {
		t.Errorf("practice should not lose lives, got %d", g.lives)
	}
	if !g.Unscored() || New().Unscored() {
		t.Error("only practice is unscored")
	}
}

func TestExtraLifeAndLevelClear(t *testing.T) {
	setup(t, []string{"####", "#P.#", "####"}, 3, 10)
	g := New()
	g.Reset(screen80x24)
	stepUntil(t, g, PhasePlaying, 10)

	step(g, core.ActionRight)
	stepUntil(t, g, PhaseCleared, 10)
	if g.lives != 4 {
		t.Errorf("lives = %d, expected bonus life at 10 points", g.lives)
	}

	stepUntil(t, g, PhaseReady, 10)
	snap := g.Snapshot().Sim
	if snap.Level != 2 || snap.Remaining != 1 || snap.Score != 10 {
		t.Errorf("next level: level %d remaining %d score %d", snap.Level, snap.Remaining, snap.Score)
	}

	// Only one bonus per game.
	stepUntil(t, g, PhasePlaying, 10)
	step(g, core.ActionRight)
	stepUntil(t, g, PhaseCleared, 10)
	if g.lives != 4 {
		t.Errorf("lives = %d, bonus should be awarded once", g.lives)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	setup(t, nil, 3, 0)
	g := New()
	g.Reset(screen80x24)
	stepUntil(t, g, PhasePlaying, 10)

	step(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	tick := g.Snapshot().Sim.Tick
	for i := 0; i < 10; i++ {
		step(g, core.ActionLeft)
	}
	if g.Snapshot().Sim.Tick != tick {
		t.Error("paused game should not advance")
	}
	step(g, core.ActionPause)
	step(g)
	if g.Snapshot().Sim.Tick == tick {
		t.Error("unpaused game should advance")
	}
}

func TestTooSmallAndResize(t *testing.T) {
	setup(t, nil, 3, 0)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1})

	if !g.Snapshot().TooSmall {
		t.Fatal("40x10 should be too small for the compact maze")
	}
	scr := core.NewScreen(40, 10)
	g.Render(scr)
	if !strings.Contains(scr.String(), "small") {
		t.Errorf("expected too-small notice, got:\n%s", scr.String())
	}

	g.Resize(80, 24)
	if g.Snapshot().TooSmall {
		t.Error("80x24 should fit the compact maze")
	}
	if g.cellW != 2 {
		t.Errorf("cellW = %d, expected double-width cells", g.cellW)
	}
}

func TestRender(t *testing.T) {
	setup(t, nil, 3, 0)
	g := New()
	g.Reset(screen80x24)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"Score: 0", "Maze: Compact", "READY!", "█", "·"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	sx, sy := g.toScreen(g.Snapshot().Sim.Player.Pos)
	if c := scr.GetCell(sx, sy); c.Rune != '@' || c.Color != core.ColorBrightYellow {
		t.Errorf("player cell = %+v", c)
	}
	for _, gv := range g.Snapshot().Sim.Ghosts {
		gx, gy := g.toScreen(gv.Pos)
		if c := scr.GetCell(gx, gy); c.Color != roleColors[gv.Role] {
			t.Errorf("%s drawn in %v", gv.Role, c.Color)
		}
	}
}

func TestMissingMazeFails(t *testing.T) {
	setup(t, nil, 3, 0)
	SetMaze("no-such-maze")

	if err := Preflight(); err == nil {
		t.Error("Preflight should fail for an unknown maze")
	}

	g := New()
	g.Reset(screen80x24)
	if g.Err() == nil || !g.State().GameOver {
		t.Fatal("expected the game to stop with an error")
	}
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Cannot start") {
		t.Error("expected error overlay")
	}
}

func TestDifficultyPresetApplies(t *testing.T) {
	setup(t, nil, 3, 0)
	SetDifficultyPreset("hard")

	g := New()
	g.Reset(screen80x24)
	if g.lives != 2 {
		t.Errorf("hard preset lives = %d, expected 2", g.lives)
	}

	SetDifficultyPreset("brutal")
	if err := Preflight(); err == nil {
		t.Error("unknown preset should fail preflight")
	}
}

func TestSelectMazeOverridesPackageSelection(t *testing.T) {
	setup(t, nil, 3, 0)
	SetMaze("classic")

	g := New()
	g.SelectMaze("compact")
	g.Reset(screen80x24)
	if g.Err() != nil {
		t.Fatalf("reset failed: %v", g.Err())
	}
	if got := g.State().Variant; got != "compact" {
		t.Errorf("maze = %q, expected compact", got)
	}

	other := New()
	other.Reset(screen80x24)
	if got := other.State().Variant; got != "classic" {
		t.Errorf("unpinned game maze = %q, expected classic", got)
	}
	if _, ok := registry.Game(g).(registry.MazeSelector); !ok {
		t.Error("chase should implement registry.MazeSelector")
	}
	if _, ok := registry.Game(g).(registry.Resizer); !ok {
		t.Error("chase should implement registry.Resizer")
	}
}

func TestEventNames(t *testing.T) {
	tests := []struct {
		ev   engine.Event
		want string
	}{
		{engine.PelletEaten{Points: 10, At: engine.C(1, 1)}, "pellet +10"},
		{engine.PowerPelletEaten{Points: 50, At: engine.C(1, 3)}, "power_pellet +50"},
		{engine.GhostEaten{Role: engine.RoleFlanker, Points: 800}, "caught " + engine.RoleFlanker.String() + " +800"},
		{engine.PlayerDied{At: engine.C(4, 2)}, "died at " + engine.C(4, 2).String()},
		{engine.LevelCleared{Level: 3}, "level 3 cleared"},
	}
	for _, tc := range tests {
		if got := eventName(tc.ev); got != tc.want {
			t.Errorf("eventName(%T) = %q, expected %q", tc.ev, got, tc.want)
		}
	}
}
