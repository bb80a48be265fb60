package engine

// Rand is the random source used for frightened movement.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// TargetInput carries everything a chase target depends on. The chaser's
// cell is passed explicitly because the flanker's target is built from it.
type TargetInput struct {
	Self      Coord
	Player    Coord
	PlayerDir Dir
	Chaser    Coord
	Corner    Coord
}

// feignRadiusSq is the squared distance under which the feigner gives up
// the chase and heads for its corner.
const feignRadiusSq = 64

// Ahead returns the cell n cells in front of pos facing d. Facing up also
// shifts the result n cells to the left, matching the arcade original.
func Ahead(pos Coord, d Dir, n int) Coord {
	dx, dy := d.Delta()
	t := pos.Add(dx*n, dy*n)
	if d == DirUp {
		t.X -= n
	}
	return t
}

// ChaseTarget returns the chase-mode target cell for a role.
// Targets may lie outside the grid; only distances are taken from them.
func ChaseTarget(r Role, in TargetInput) Coord {
	switch r {
	case RoleAmbusher:
		return Ahead(in.Player, in.PlayerDir, 4)
	case RoleFlanker:
		pivot := Ahead(in.Player, in.PlayerDir, 2)
		return C(2*pivot.X-in.Chaser.X, 2*pivot.Y-in.Chaser.Y)
	case RoleFeigner:
		if in.Self.DistSq(in.Player) >= feignRadiusSq {
			return in.Player
		}
		return in.Corner
	default:
		return in.Player
	}
}

// ChooseDirection picks the legal move from `from` whose resulting cell is
// closest (squared Euclidean) to target. Reversing the current heading is
// excluded unless it is the only way out. Ties resolve up, left, down,
// right. DirNone means the pursuer is boxed in.
func ChooseDirection(m *Maze, from Coord, heading Dir, target Coord, w Walk) Dir {
	rev := heading.Opposite()
	best := DirNone
	bestDist := 0
	for _, d := range Directions {
		if d == rev {
			continue
		}
		next := m.Wrap(from.Step(d))
		if !m.IsWalkable(next, w) {
			continue
		}
		dist := next.DistSq(target)
		if best == DirNone || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	if best == DirNone && rev != DirNone && m.IsWalkable(from.Step(rev), w) {
		return rev
	}
	return best
}

// RandomDirection picks uniformly among legal non-reverse moves, falling
// back to the reverse at a dead end.
func RandomDirection(m *Maze, from Coord, heading Dir, w Walk, rng Rand) Dir {
	rev := heading.Opposite()
	var options [4]Dir
	n := 0
	for _, d := range Directions {
		if d == rev {
			continue
		}
		if m.IsWalkable(from.Step(d), w) {
			options[n] = d
			n++
		}
	}
	if n == 0 {
		if rev != DirNone && m.IsWalkable(from.Step(rev), w) {
			return rev
		}
		return DirNone
	}
	return options[rng.Intn(n)]
}
