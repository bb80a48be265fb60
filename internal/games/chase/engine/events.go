package engine

// Event is emitted by Advance. The concrete types are the only
// implementations.
type Event interface {
	event()
}

// PelletEaten is emitted when the player clears a regular pellet.
type PelletEaten struct {
	Points int
	At     Coord
}

// PowerPelletEaten is emitted when the player clears a power pellet.
type PowerPelletEaten struct {
	Points int
	At     Coord
}

// GhostEaten is emitted when the player catches a frightened pursuer.
type GhostEaten struct {
	Role   Role
	Points int
	At     Coord
}

// PlayerDied is emitted when a hostile pursuer reaches the player.
type PlayerDied struct {
	At Coord
}

// LevelCleared is emitted once when the last pellet is eaten.
type LevelCleared struct {
	Level int
}

func (PelletEaten) event()      {}
func (PowerPelletEaten) event() {}
func (GhostEaten) event()       {}
func (PlayerDied) event()       {}
func (LevelCleared) event()     {}

// Points returns the score carried by an event, zero for non-scoring events.
func Points(e Event) int {
	switch ev := e.(type) {
	case PelletEaten:
		return ev.Points
	case PowerPelletEaten:
		return ev.Points
	case GhostEaten:
		return ev.Points
	default:
		return 0
	}
}
