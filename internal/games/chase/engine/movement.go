package engine

// Speeds sets how fast actors cross cells.
type Speeds struct {
	Player float64 // cells per second
	Ghost  float64 // cells per second before multipliers

	// Pursuer multipliers, first match wins: eaten, frightened, tunnel.
	Eaten      float64
	Frightened float64
	Tunnel     float64
}

// DefaultSpeeds returns the standard actor speeds.
func DefaultSpeeds() Speeds {
	return Speeds{
		Player:     8,
		Ghost:      7.5,
		Eaten:      2,
		Frightened: 0.5,
		Tunnel:     0.5,
	}
}

// stepper accumulates elapsed time and hands it out in whole steps.
type stepper struct {
	acc float64
}

func (s *stepper) add(dt float64) {
	s.acc += dt
}

// take consumes one step of the given duration if enough time has built up.
func (s *stepper) take(dur float64) bool {
	if dur <= 0 || s.acc < dur {
		return false
	}
	s.acc -= dur
	return true
}

// progress returns how far into the next step the actor is, in [0, 1).
func (s *stepper) progress(dur float64) float64 {
	if dur <= 0 {
		return 0
	}
	p := s.acc / dur
	if p >= 1 {
		return 0.999
	}
	return p
}

func (s *stepper) reset() {
	s.acc = 0
}

func (s *Sim) playerStepDuration() float64 {
	return 1 / s.cfg.Speeds.Player
}

func (s *Sim) ghostStepDuration(g *Ghost) float64 {
	sp := s.cfg.Speeds
	mult := 1.0
	switch {
	case g.Mode == ModeEaten:
		mult = sp.Eaten
	case g.Mode == ModeFrightened:
		mult = sp.Frightened
	case s.maze.InTunnel(g.Pos):
		mult = sp.Tunnel
	}
	return 1 / (sp.Ghost * mult)
}

// movePlayer applies one player step: the buffered direction if it is
// legal, otherwise the current heading, otherwise stand still.
// Blocked steps still consume their time.
func (s *Sim) movePlayer() {
	p := &s.player
	w := Walk{Player: true}

	if p.Desired != DirNone && s.maze.IsWalkable(p.Pos.Step(p.Desired), w) {
		p.Dir = p.Desired
		p.Desired = DirNone
	}
	if p.Dir == DirNone {
		return
	}
	next := s.maze.Wrap(p.Pos.Step(p.Dir))
	if !s.maze.IsWalkable(next, w) {
		return
	}
	p.Prev = p.Pos
	p.Pos = next
}

// moveGhost applies one step for a pursuer according to its activity and mode.
func (s *Sim) moveGhost(g *Ghost) {
	switch g.Activity {
	case Held:
		return
	case Releasing:
		s.moveReleasing(g)
		return
	}

	w := Walk{Eaten: g.Mode == ModeEaten}
	var d Dir
	switch {
	case g.forceReverse && s.maze.IsWalkable(g.Pos.Step(g.Dir), w):
		d = g.Dir
	case g.Mode == ModeFrightened:
		d = RandomDirection(s.maze, g.Pos, g.Dir, w, s.rng)
	default:
		d = ChooseDirection(s.maze, g.Pos, g.Dir, s.targetFor(g), w)
	}
	g.forceReverse = false
	if d == DirNone {
		return
	}

	g.Dir = d
	g.Prev = g.Pos
	g.Pos = s.maze.Wrap(g.Pos.Step(d))

	if g.Mode == ModeEaten && g.Pos == s.returnCell(g) {
		g.Mode = s.sched.Mode()
		g.Activity = Releasing
	}
}

// moveReleasing walks a pursuer to the exit column, then up through the door.
func (s *Sim) moveReleasing(g *Ghost) {
	if !s.maze.InHouse(g.Pos) {
		g.Activity = Active
		return
	}
	d := DirUp
	switch {
	case g.Pos.X < s.layout.ExitColumn:
		d = DirRight
	case g.Pos.X > s.layout.ExitColumn:
		d = DirLeft
	}
	next := g.Pos.Step(d)
	if !s.maze.IsWalkable(next, Walk{LeavingHouse: true}) {
		return
	}
	g.Dir = d
	g.Prev = g.Pos
	g.Pos = next
	if !s.maze.InHouse(g.Pos) {
		g.Activity = Active
	}
}

// targetFor returns the cell a non-frightened active pursuer steers toward.
func (s *Sim) targetFor(g *Ghost) Coord {
	switch g.Mode {
	case ModeScatter:
		return g.Corner
	case ModeEaten:
		return s.returnCell(g)
	}
	chaser := g.Pos
	for i := range s.ghosts {
		if s.ghosts[i].Role == RoleChaser {
			chaser = s.ghosts[i].Pos
			break
		}
	}
	return ChaseTarget(g.Role, TargetInput{
		Self:      g.Pos,
		Player:    s.player.Pos,
		PlayerDir: s.player.Dir,
		Chaser:    chaser,
		Corner:    g.Corner,
	})
}

// returnCell is where an eaten pursuer goes to revive.
func (s *Sim) returnCell(g *Ghost) Coord {
	if s.layout.HasHouse {
		return s.layout.HouseReturn
	}
	return g.Spawn
}
