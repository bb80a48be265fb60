package engine

// ScoreTable holds the point values.
type ScoreTable struct {
	Pellet      int
	PowerPellet int
	// Ghost holds the escalating reward per pursuer eaten within one
	// frightened window; the last entry repeats.
	Ghost []int
}

// DefaultScoreTable returns the standard scoring.
func DefaultScoreTable() ScoreTable {
	return ScoreTable{
		Pellet:      10,
		PowerPellet: 50,
		Ghost:       []int{200, 400, 800, 1600},
	}
}

// ghostPoints returns the reward for the next pursuer eaten in this window.
func (t ScoreTable) ghostPoints(tier int) int {
	if len(t.Ghost) == 0 {
		return 0
	}
	if tier >= len(t.Ghost) {
		tier = len(t.Ghost) - 1
	}
	return t.Ghost[tier]
}

// eat consumes whatever pellet sits under the player.
func (s *Sim) eat(events []Event) []Event {
	at := s.player.Pos
	kind, ok := s.maze.Consume(at)
	if !ok {
		return events
	}

	switch kind {
	case KindPellet:
		pts := s.cfg.Scores.Pellet
		s.score += pts
		events = append(events, PelletEaten{Points: pts, At: at})
	case KindPowerPellet:
		pts := s.cfg.Scores.PowerPellet
		s.score += pts
		events = append(events, PowerPelletEaten{Points: pts, At: at})
		s.frighten()
	}

	if s.maze.CountPellets() == 0 {
		s.cleared = true
		events = append(events, LevelCleared{Level: s.level})
	}
	return events
}

// frighten starts (or restarts) the frightened window. The eat reward
// tier starts over with every power pellet.
func (s *Sim) frighten() {
	if s.sched.FrightenedDuration() <= 0 {
		return
	}
	s.sched.Frighten()
	s.eatTier = 0
	frighten(s.ghosts)
}

// collide resolves player/pursuer contacts after pursuers have moved.
// Only same-cell contact counts; actors swapping cells pass each other.
func (s *Sim) collide(events []Event) []Event {
	for i := range s.ghosts {
		g := &s.ghosts[i]
		if g.Pos != s.player.Pos {
			continue
		}
		switch g.Mode {
		case ModeEaten:
			continue
		case ModeFrightened:
			pts := s.cfg.Scores.ghostPoints(s.eatTier)
			s.eatTier++
			s.score += pts
			g.Mode = ModeEaten
			g.forceReverse = false
			events = append(events, GhostEaten{Role: g.Role, Points: pts, At: g.Pos})
		default:
			s.player.Alive = false
			return append(events, PlayerDied{At: s.player.Pos})
		}
	}
	return events
}
