// Package chase implements the maze chase game: the player clears pellets
// from a maze while four pursuers with distinct targeting rules hunt them.
// The simulation lives in the engine subpackage; this package adds lives,
// pacing between rounds and terminal rendering.
package chase

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/maze-chase/internal/config"
	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/games/chase/engine"
	"github.com/vovakirdan/maze-chase/internal/games/chase/levels"
	"github.com/vovakirdan/maze-chase/internal/registry"
)

// Variant represents the game variant.
type Variant string

const (
	VariantArcade   Variant = "chase"
	VariantPractice Variant = "chase_practice"
)

// Phase is the game's pacing state around the simulation.
type Phase string

const (
	PhaseReady    Phase = "ready"
	PhasePlaying  Phase = "playing"
	PhaseDying    Phase = "dying"
	PhaseCleared  Phase = "cleared"
	PhaseGameOver Phase = "game_over"
)

const hudHeight = 2

// Game implements the maze chase.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64

	cfg   config.ChaseConfig
	level levels.Level
	sim   *engine.Sim
	err   error

	maze string // overrides the package selection when set

	lives     int
	extraDone bool
	phase     Phase
	phaseLeft time.Duration
	paused    bool

	// Screen layout
	screenW  int
	screenH  int
	cellW    int
	offsetX  int
	offsetY  int
	tooSmall bool
}

// New creates a new arcade game with limited lives.
func New() *Game {
	return &Game{variant: VariantArcade}
}

// NewPractice creates a practice game with unlimited lives and no scoreboard.
func NewPractice() *Game {
	return &Game{variant: VariantPractice}
}

func init() {
	registry.Register(string(VariantArcade), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantPractice), func() registry.Game {
		return NewPractice()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantPractice {
		return "Maze Chase (Practice)"
	}
	return "Maze Chase"
}

// Unscored keeps practice runs off the scoreboard.
func (g *Game) Unscored() bool {
	return g.variant == VariantPractice
}

// SelectMaze pins this game to a maze by ID or path, independent of
// the package-level selection.
func (g *Game) SelectMaze(ref string) {
	g.maze = ref
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.err = nil
	g.sim = nil
	g.paused = false
	g.extraDone = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	ref := g.maze
	if ref == "" {
		ref = mazeRef
	}
	chaseCfg, lvl, err := loadSettings(ref)
	g.cfg = chaseCfg
	g.level = lvl
	if err != nil {
		g.fail(err)
		return
	}
	if err := g.start(); err != nil {
		g.fail(err)
		return
	}
	g.layoutScreen()
}

func (g *Game) start() error {
	ecfg, err := EngineConfig(g.cfg)
	if err != nil {
		return err
	}
	m, layout, err := g.level.Build()
	if err != nil {
		return err
	}
	sim, err := engine.New(m, layout, ecfg, g.rng.Int63())
	if err != nil {
		return err
	}
	g.sim = sim
	g.lives = g.cfg.Gameplay.Lives
	g.enter(PhaseReady, g.cfg.Gameplay.ReadyMS)
	return nil
}

func (g *Game) fail(err error) {
	g.err = err
	g.phase = PhaseGameOver
}

func (g *Game) enter(p Phase, ms int) {
	g.phase = p
	g.phaseLeft = time.Duration(ms) * time.Millisecond
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.layoutScreen()
}

// layoutScreen picks the cell width and centers the maze.
func (g *Game) layoutScreen() {
	w, _ := g.level.Size()
	g.cellW = 2
	if w*2 > g.screenW {
		g.cellW = 1
	}
	reqW, reqH := g.requiredSize()
	g.tooSmall = g.screenW < reqW || g.screenH < reqH
	g.offsetX = max(0, (g.screenW-w*g.cellW)/2)
	g.offsetY = hudHeight
}

// requiredSize is the smallest screen that shows the whole maze.
func (g *Game) requiredSize() (int, int) {
	w, h := g.level.Size()
	return w, h + hudHeight
}

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && (g.phase == PhaseGameOver || g.paused) {
		cfg := g.runtime
		cfg.Seed = g.rng.Int63()
		g.Reset(cfg)
		return core.StepResult{State: g.State()}
	}
	if g.err != nil || g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && g.phase != PhaseGameOver {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall || g.phase == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	if d := dirFor(input.Direction()); d != engine.DirNone {
		g.sim.SetIntent(d)
	}

	dt := input.Elapsed
	if dt <= 0 {
		dt = g.runtime.TickDuration()
	}

	var names []string
	switch g.phase {
	case PhaseReady:
		if g.countdown(dt) {
			g.phase = PhasePlaying
		}
	case PhaseDying:
		if g.countdown(dt) {
			g.afterDeath()
		}
	case PhaseCleared:
		if g.countdown(dt) {
			g.sim.ResetLevel()
			g.enter(PhaseReady, g.cfg.Gameplay.ReadyMS)
		}
	case PhasePlaying:
		for _, ev := range g.sim.Advance(dt) {
			names = append(names, eventName(ev))
			g.handle(ev)
		}
		g.checkExtraLife()
	}

	return core.StepResult{State: g.State(), Events: names}
}

// countdown consumes dt from the phase timer and reports expiry.
func (g *Game) countdown(dt time.Duration) bool {
	g.phaseLeft -= dt
	return g.phaseLeft <= 0
}

func (g *Game) handle(ev engine.Event) {
	switch ev.(type) {
	case engine.PlayerDied:
		if g.variant != VariantPractice {
			g.lives--
		}
		g.enter(PhaseDying, g.cfg.Gameplay.DeathPauseMS)
	case engine.LevelCleared:
		g.enter(PhaseCleared, g.cfg.Gameplay.ClearPauseMS)
	}
}

func (g *Game) afterDeath() {
	if g.lives <= 0 {
		g.phase = PhaseGameOver
		return
	}
	g.sim.ResetRound()
	g.enter(PhaseReady, g.cfg.Gameplay.ReadyMS)
}

// checkExtraLife awards the one bonus life per game.
func (g *Game) checkExtraLife() {
	at := g.cfg.Scoring.ExtraLifeAt
	if g.extraDone || at <= 0 || g.variant == VariantPractice {
		return
	}
	if g.sim.Score() >= at && g.phase != PhaseGameOver {
		g.lives++
		g.extraDone = true
	}
}

func dirFor(a core.Action) engine.Dir {
	switch a {
	case core.ActionUp:
		return engine.DirUp
	case core.ActionLeft:
		return engine.DirLeft
	case core.ActionDown:
		return engine.DirDown
	case core.ActionRight:
		return engine.DirRight
	default:
		return engine.DirNone
	}
}

func eventName(ev engine.Event) string {
	var name string
	switch e := ev.(type) {
	case engine.PelletEaten:
		name = "pellet"
	case engine.PowerPelletEaten:
		name = "power_pellet"
	case engine.GhostEaten:
		name = "caught " + e.Role.String()
	case engine.PlayerDied:
		name = "died at " + e.At.String()
	case engine.LevelCleared:
		name = fmt.Sprintf("level %d cleared", e.Level)
	default:
		return "unknown"
	}
	if pts := engine.Points(ev); pts > 0 {
		name += fmt.Sprintf(" +%d", pts)
	}
	return name
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
		Lives:    g.lives,
		Variant:  g.level.ID,
	}
	if g.sim != nil {
		st.Score = g.sim.Score()
		st.Level = g.sim.Level()
	}
	return st
}

// Err returns the error that stopped the game from starting, if any.
func (g *Game) Err() error {
	return g.err
}
