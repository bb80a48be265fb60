package chase

import "github.com/vovakirdan/maze-chase/internal/games/chase/engine"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Variant  Variant
	Maze     string
	Phase    Phase
	Lives    int
	Paused   bool
	TooSmall bool
	Sim      engine.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	sn := Snapshot{
		Tick:     g.tick,
		Variant:  g.variant,
		Maze:     g.level.ID,
		Phase:    g.phase,
		Lives:    g.lives,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
	}
	if g.sim != nil {
		sn.Sim = g.sim.Snapshot()
	}
	return sn
}
