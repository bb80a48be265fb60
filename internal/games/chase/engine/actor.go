package engine

// Role selects a pursuer's chase targeting algorithm.
type Role uint8

const (
	RoleChaser   Role = iota // targets the player's cell
	RoleAmbusher             // targets four cells ahead of the player
	RoleFlanker              // doubles the vector from the chaser through a pivot
	RoleFeigner              // chases from afar, retreats up close
)

// RoleCount is the number of pursuer roles.
const RoleCount = 4

// String returns the string representation of a role.
func (r Role) String() string {
	switch r {
	case RoleChaser:
		return "chaser"
	case RoleAmbusher:
		return "ambusher"
	case RoleFlanker:
		return "flanker"
	case RoleFeigner:
		return "feigner"
	default:
		return "unknown"
	}
}

// Mode is a pursuer's behavioural mode.
type Mode uint8

const (
	ModeScatter Mode = iota
	ModeChase
	ModeFrightened
	ModeEaten
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeFrightened:
		return "frightened"
	case ModeEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Activity tracks a pursuer's progress out of the house.
type Activity uint8

const (
	Held Activity = iota
	Releasing
	Active
)

// String returns the string representation of an activity.
func (a Activity) String() string {
	switch a {
	case Held:
		return "held"
	case Releasing:
		return "releasing"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Player is the pellet-eating actor.
type Player struct {
	Pos     Coord
	Prev    Coord
	Dir     Dir
	Desired Dir // buffered intent, applied when the turn becomes legal
	Alive   bool

	clock stepper
}

// Ghost is a pursuer.
type Ghost struct {
	Role     Role
	Pos      Coord
	Prev     Coord
	Dir      Dir
	Mode     Mode
	Activity Activity
	Corner   Coord
	Spawn    Coord

	// forceReverse makes the next step keep the freshly reversed direction.
	forceReverse bool
	clock        stepper
}

// reverse flips the ghost's heading and pins it for the next step.
func (g *Ghost) reverse() {
	if g.Dir == DirNone {
		return
	}
	g.Dir = g.Dir.Opposite()
	g.forceReverse = true
}

// validState reports whether the mode/activity pair is reachable.
// Only active pursuers can be frightened or eaten.
func (g *Ghost) validState() bool {
	if g.Activity == Active {
		return true
	}
	return g.Mode == ModeScatter || g.Mode == ModeChase
}
