package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// DefaultMaxDelta caps a single Advance call.
const DefaultMaxDelta = 50 * time.Millisecond

// Config holds the tunables of a simulation.
type Config struct {
	Phases          []Phase
	Frightened      float64 // seconds
	FrightenWarning float64 // seconds at the end of the window flagged as ending
	Release         [RoleCount]float64
	Speeds          Speeds
	Scores          ScoreTable
	MaxDelta        time.Duration

	// Strict panics on an invariant violation after every tick.
	Strict bool
}

// DefaultConfig returns the standard simulation settings.
func DefaultConfig() Config {
	return Config{
		Phases:          append([]Phase(nil), DefaultPhases...),
		Frightened:      6,
		FrightenWarning: 2,
		Release:         DefaultRelease,
		Speeds:          DefaultSpeeds(),
		Scores:          DefaultScoreTable(),
		MaxDelta:        DefaultMaxDelta,
	}
}

// Validate checks that a config can drive a simulation.
func (c Config) Validate() error {
	sp := c.Speeds
	if sp.Player <= 0 || sp.Ghost <= 0 {
		return errors.New("engine: speeds must be positive")
	}
	if sp.Eaten <= 0 || sp.Frightened <= 0 || sp.Tunnel <= 0 {
		return errors.New("engine: speed multipliers must be positive")
	}
	if c.MaxDelta <= 0 {
		return errors.New("engine: max delta must be positive")
	}
	if c.FrightenWarning < 0 || c.Frightened < 0 {
		return errors.New("engine: frightened timings must not be negative")
	}
	return nil
}

// Sim is one running maze chase. It is not safe for concurrent use; the
// caller drives it from a single loop.
type Sim struct {
	cfg    Config
	maze   *Maze
	layout Layout
	rng    *rand.Rand
	sched  *ModeScheduler

	player Player
	ghosts []Ghost

	score   int
	level   int
	tick    uint64
	eatTier int
	cleared bool
}

// New creates a simulation on a copy of m.
func New(m *Maze, l Layout, cfg Config, seed int64) (*Sim, error) {
	if m == nil {
		return nil, errors.New("engine: nil maze")
	}
	if cfg.MaxDelta == 0 {
		cfg.MaxDelta = DefaultMaxDelta
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !m.IsWalkable(l.Player, Walk{Player: true}) {
		return nil, fmt.Errorf("%w: player spawn %s is not walkable", ErrBadLayout, l.Player)
	}

	s := &Sim{
		cfg:    cfg,
		maze:   m.Clone(),
		layout: l,
		rng:    rand.New(rand.NewSource(seed)),
		sched:  NewModeScheduler(cfg.Phases, cfg.Frightened, cfg.FrightenWarning, cfg.Release),
		level:  1,
	}
	s.ResetRound()
	return s, nil
}

// SetIntent buffers the player's desired direction. DirNone is ignored.
func (s *Sim) SetIntent(d Dir) {
	if d == DirNone {
		return
	}
	s.player.Desired = d
}

// Score returns the accumulated score.
func (s *Sim) Score() int { return s.score }

// Level returns the 1-based level number.
func (s *Sim) Level() int { return s.level }

// Maze returns the live maze. Callers must not mutate it.
func (s *Sim) Maze() *Maze { return s.maze }

// Cleared reports whether the level has been cleared.
func (s *Sim) Cleared() bool { return s.cleared }

// Advance moves the simulation forward by dt (clamped to MaxDelta) and
// returns what happened. Within a tick the player moves first, then the
// pursuers, then the mode clock runs, then contacts are resolved.
// A dead player or cleared level freezes the simulation until reset.
func (s *Sim) Advance(dt time.Duration) []Event {
	if dt <= 0 || !s.player.Alive || s.cleared {
		return nil
	}
	if dt > s.cfg.MaxDelta {
		dt = s.cfg.MaxDelta
	}
	sec := dt.Seconds()
	s.tick++

	var events []Event

	s.player.clock.add(sec)
	for s.player.clock.take(s.playerStepDuration()) {
		s.movePlayer()
		events = s.eat(events)
		if s.cleared {
			s.check()
			return events
		}
	}

	s.release()

	for i := range s.ghosts {
		g := &s.ghosts[i]
		if g.Activity == Held {
			g.clock.reset()
			continue
		}
		g.clock.add(sec)
		for g.clock.take(s.ghostStepDuration(g)) {
			s.moveGhost(g)
		}
	}

	flips, calmed := s.sched.Advance(sec)
	if calmed {
		calm(s.ghosts, s.sched.Mode())
	}
	for _, f := range flips {
		ApplyGlobalReversal(s.ghosts, f.To)
	}

	events = s.collide(events)
	s.check()
	return events
}

// release moves held pursuers whose threshold has passed onto their exit path.
func (s *Sim) release() {
	for i := range s.ghosts {
		g := &s.ghosts[i]
		if g.Activity != Held || !s.sched.ReleaseDue(g.Role) {
			continue
		}
		g.Activity = Releasing
		if !s.maze.InHouse(g.Pos) {
			g.Activity = Active
		}
	}
}

// ResetRound puts every actor back on its spawn and restarts the mode
// clock. Pellets and score are kept.
func (s *Sim) ResetRound() {
	s.player = Player{
		Pos:   s.layout.Player,
		Prev:  s.layout.Player,
		Alive: true,
	}

	s.ghosts = s.ghosts[:0]
	for _, sp := range s.layout.Ghosts {
		g := Ghost{
			Role:     sp.Role,
			Pos:      sp.Pos,
			Prev:     sp.Pos,
			Dir:      DirUp,
			Mode:     ModeScatter,
			Activity: Held,
			Corner:   s.layout.Corners[sp.Role],
			Spawn:    sp.Pos,
		}
		if sp.Role == RoleChaser {
			g.Activity = Active
			g.Dir = DirLeft
			if s.maze.InHouse(g.Pos) {
				g.Activity = Releasing
			}
		}
		s.ghosts = append(s.ghosts, g)
	}

	s.sched.Reset()
	for i := range s.ghosts {
		s.ghosts[i].Mode = s.sched.Mode()
	}
	s.eatTier = 0
}

// ResetLevel advances the level counter, restores every pellet and resets
// the round. The score carries over.
func (s *Sim) ResetLevel() {
	s.level++
	s.maze.RestorePellets()
	s.cleared = false
	s.ResetRound()
}

// Validate checks the simulation invariants.
func (s *Sim) Validate() error {
	p := s.player
	if !s.maze.InBounds(p.Pos) {
		return fmt.Errorf("engine: player out of bounds at %s", p.Pos)
	}
	if !s.maze.IsWalkable(p.Pos, Walk{Player: true}) {
		return fmt.Errorf("engine: player on %s cell at %s", s.maze.Kind(p.Pos), p.Pos)
	}
	for i := range s.ghosts {
		g := &s.ghosts[i]
		if !s.maze.InBounds(g.Pos) {
			return fmt.Errorf("engine: %s out of bounds at %s", g.Role, g.Pos)
		}
		if s.maze.Kind(g.Pos) == KindWall {
			return fmt.Errorf("engine: %s inside a wall at %s", g.Role, g.Pos)
		}
		if !g.validState() {
			return fmt.Errorf("engine: %s is %s while %s", g.Role, g.Mode, g.Activity)
		}
	}
	if got, want := s.maze.CountPellets(), scanPellets(s.maze.cells); got != want {
		return fmt.Errorf("engine: pellet count %d, grid holds %d", got, want)
	}
	return nil
}

func (s *Sim) check() {
	if !s.cfg.Strict {
		return
	}
	if err := s.Validate(); err != nil {
		panic(err)
	}
}
