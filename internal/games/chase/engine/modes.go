package engine

// Phase is one entry of the scatter/chase table.
// A phase with Seconds <= 0 never ends.
type Phase struct {
	Mode    Mode
	Seconds float64
}

// DefaultPhases is the standard level schedule: four scatter waves, the
// last chase wave lasting forever.
var DefaultPhases = []Phase{
	{ModeScatter, 7}, {ModeChase, 20},
	{ModeScatter, 7}, {ModeChase, 20},
	{ModeScatter, 7}, {ModeChase, 20},
	{ModeScatter, 7}, {ModeChase, 0},
}

// DefaultRelease holds the seconds after round start at which each role
// leaves the house.
var DefaultRelease = [RoleCount]float64{0, 2, 5, 8}

// Transition records a scatter/chase flip crossed during Advance.
type Transition struct {
	From Mode
	To   Mode
}

// ModeScheduler is the per-simulation mode clock. It walks the phase table,
// runs the frightened countdown (pausing the table meanwhile) and tracks
// the round clock used for house release.
type ModeScheduler struct {
	phases  []Phase
	index   int
	inPhase float64

	frightTotal float64
	frightWarn  float64
	frightLeft  float64

	release [RoleCount]float64
	clock   float64
}

// NewModeScheduler creates a scheduler. An empty phase table falls back to
// DefaultPhases.
func NewModeScheduler(phases []Phase, frightened, warning float64, release [RoleCount]float64) *ModeScheduler {
	if len(phases) == 0 {
		phases = DefaultPhases
	}
	return &ModeScheduler{
		phases:      append([]Phase(nil), phases...),
		frightTotal: frightened,
		frightWarn:  warning,
		release:     release,
	}
}

// Reset rewinds the table, cancels frightened and restarts the round clock.
func (s *ModeScheduler) Reset() {
	s.index = 0
	s.inPhase = 0
	s.frightLeft = 0
	s.clock = 0
}

// Mode returns the table's current mode, ignoring frightened.
func (s *ModeScheduler) Mode() Mode {
	return s.phases[s.index].Mode
}

// PhaseIndex returns the position in the phase table.
func (s *ModeScheduler) PhaseIndex() int {
	return s.index
}

// Frightened reports whether the frightened countdown is running.
func (s *ModeScheduler) Frightened() bool {
	return s.frightLeft > 0
}

// FrightenedEnding reports whether the countdown is inside its warning window.
func (s *ModeScheduler) FrightenedEnding() bool {
	return s.frightLeft > 0 && s.frightLeft <= s.frightWarn
}

// FrightenedLeft returns the seconds remaining on the countdown.
func (s *ModeScheduler) FrightenedLeft() float64 {
	return s.frightLeft
}

// FrightenedDuration returns the configured countdown length.
func (s *ModeScheduler) FrightenedDuration() float64 {
	return s.frightTotal
}

// Elapsed returns seconds since the round started.
func (s *ModeScheduler) Elapsed() float64 {
	return s.clock
}

// ReleaseDue reports whether a role's release threshold has passed.
func (s *ModeScheduler) ReleaseDue(r Role) bool {
	return s.clock >= s.release[r]
}

// Frighten (re)starts the countdown at its full length.
func (s *ModeScheduler) Frighten() {
	s.frightLeft = s.frightTotal
}

// Advance moves the clock forward by dt seconds. It returns the table
// transitions crossed, in order, and whether the frightened countdown
// expired during this call.
func (s *ModeScheduler) Advance(dt float64) (flips []Transition, frightEnded bool) {
	if dt <= 0 {
		return nil, false
	}
	s.clock += dt

	if s.frightLeft > 0 {
		if dt < s.frightLeft {
			s.frightLeft -= dt
			return nil, false
		}
		dt -= s.frightLeft
		s.frightLeft = 0
		frightEnded = true
	}

	for dt > 0 {
		p := s.phases[s.index]
		if p.Seconds <= 0 {
			s.inPhase += dt
			break
		}
		remaining := p.Seconds - s.inPhase
		if dt < remaining {
			s.inPhase += dt
			break
		}
		if s.index+1 >= len(s.phases) {
			// Table exhausted: the last mode holds.
			s.inPhase = p.Seconds
			break
		}
		dt -= remaining
		s.index++
		s.inPhase = 0
		if next := s.phases[s.index].Mode; next != p.Mode {
			flips = append(flips, Transition{From: p.Mode, To: next})
		}
	}
	return flips, frightEnded
}

// ApplyGlobalReversal switches every pursuer to mode after a table flip.
// Active pursuers that are neither frightened nor eaten also reverse and
// must keep the reversed heading on their next step when it is legal.
// Pursuers still in or leaving the house adopt the mode without reversing.
func ApplyGlobalReversal(ghosts []Ghost, mode Mode) {
	for i := range ghosts {
		g := &ghosts[i]
		if g.Mode == ModeFrightened || g.Mode == ModeEaten {
			continue
		}
		g.Mode = mode
		if g.Activity == Active {
			g.reverse()
		}
	}
}

// frighten turns active pursuers frightened. Already frightened and eaten
// pursuers are untouched, so a second power pellet never double-reverses.
func frighten(ghosts []Ghost) {
	for i := range ghosts {
		g := &ghosts[i]
		if g.Activity != Active || g.Mode == ModeFrightened || g.Mode == ModeEaten {
			continue
		}
		g.Mode = ModeFrightened
		g.reverse()
	}
}

// calm restores frightened pursuers to the table mode.
func calm(ghosts []Ghost, mode Mode) {
	for i := range ghosts {
		if ghosts[i].Mode == ModeFrightened {
			ghosts[i].Mode = mode
		}
	}
}
