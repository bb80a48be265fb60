package engine

// PlayerView is the observable state of the player.
type PlayerView struct {
	Pos      Coord
	Prev     Coord
	Dir      Dir
	Desired  Dir
	Alive    bool
	Progress float64 // fraction of the way to the next step, presentation only
}

// GhostView is the observable state of one pursuer.
type GhostView struct {
	Role     Role
	Pos      Coord
	Prev     Coord
	Dir      Dir
	Mode     Mode
	Activity Activity
	Progress float64
}

// Snapshot is a read-only copy of the simulation state, everything a
// renderer or HUD needs.
type Snapshot struct {
	Tick             uint64
	Level            int
	Score            int
	Remaining        int
	Width            int
	Height           int
	Cells            []CellKind // row-major
	Mode             Mode       // table mode, ignoring frightened
	Frightened       bool
	FrightenedEnding bool
	FrightenedLeft   float64
	Elapsed          float64
	Cleared          bool
	Player           PlayerView
	Ghosts           []GhostView
}

// Cell returns the kind at c from the snapshot's copy of the grid.
func (sn Snapshot) Cell(c Coord) CellKind {
	if c.X < 0 || c.X >= sn.Width || c.Y < 0 || c.Y >= sn.Height {
		return KindEmpty
	}
	return sn.Cells[c.Y*sn.Width+c.X]
}

// Snapshot returns a copy of the current state.
func (s *Sim) Snapshot() Snapshot {
	p := s.player
	sn := Snapshot{
		Tick:             s.tick,
		Level:            s.level,
		Score:            s.score,
		Remaining:        s.maze.CountPellets(),
		Width:            s.maze.Width(),
		Height:           s.maze.Height(),
		Cells:            s.maze.Cells(),
		Mode:             s.sched.Mode(),
		Frightened:       s.sched.Frightened(),
		FrightenedEnding: s.sched.FrightenedEnding(),
		FrightenedLeft:   s.sched.FrightenedLeft(),
		Elapsed:          s.sched.Elapsed(),
		Cleared:          s.cleared,
		Player: PlayerView{
			Pos:      p.Pos,
			Prev:     p.Prev,
			Dir:      p.Dir,
			Desired:  p.Desired,
			Alive:    p.Alive,
			Progress: p.clock.progress(s.playerStepDuration()),
		},
		Ghosts: make([]GhostView, len(s.ghosts)),
	}
	for i := range s.ghosts {
		g := &s.ghosts[i]
		sn.Ghosts[i] = GhostView{
			Role:     g.Role,
			Pos:      g.Pos,
			Prev:     g.Prev,
			Dir:      g.Dir,
			Mode:     g.Mode,
			Activity: g.Activity,
			Progress: g.clock.progress(s.ghostStepDuration(g)),
		}
	}
	return sn
}
