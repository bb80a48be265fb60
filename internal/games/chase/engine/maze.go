package engine

import (
	"errors"
	"fmt"
	"sort"
)

// CellKind is the static classification of a maze cell.
// Only pellet kinds ever change, and only to KindEmpty.
type CellKind uint8

const (
	KindEmpty CellKind = iota
	KindWall
	KindPellet
	KindPowerPellet
	KindHouse
	KindDoor
	KindTunnel
)

// String returns the string representation of a cell kind.
func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindWall:
		return "wall"
	case KindPellet:
		return "pellet"
	case KindPowerPellet:
		return "power"
	case KindHouse:
		return "house"
	case KindDoor:
		return "door"
	case KindTunnel:
		return "tunnel"
	default:
		return "unknown"
	}
}

// IsPellet reports whether the kind is consumable.
func (k CellKind) IsPellet() bool {
	return k == KindPellet || k == KindPowerPellet
}

// Walk selects which walkability rules apply to a query.
type Walk struct {
	Player       bool // the player never enters the door or the house
	LeavingHouse bool // pursuer on its exit path
	Eaten        bool // pursuer returning to the house
}

// ErrBadLayout is returned for malformed maze layouts.
var ErrBadLayout = errors.New("bad maze layout")

// Maze is the static grid plus the mutable pellet set.
type Maze struct {
	width     int
	height    int
	cells     []CellKind
	initial   []CellKind
	tunnelRow int
	pellets   int
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// TunnelRow returns the row that wraps horizontally, or -1.
func (m *Maze) TunnelRow() int { return m.tunnelRow }

// InBounds returns true if c lies on the grid.
func (m *Maze) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

func (m *Maze) index(c Coord) int {
	return c.Y*m.width + c.X
}

// Kind returns the cell kind at c. Out-of-bounds cells are empty so the
// tunnel mouths read as open corridor.
func (m *Maze) Kind(c Coord) CellKind {
	if !m.InBounds(c) {
		return KindEmpty
	}
	return m.cells[m.index(c)]
}

// Wrap maps tunnel-row columns that fell off one edge onto the other edge.
// Any other coordinate is returned unchanged.
func (m *Maze) Wrap(c Coord) Coord {
	if c.Y != m.tunnelRow || m.width == 0 {
		return c
	}
	if c.X < 0 || c.X >= m.width {
		c.X = ((c.X % m.width) + m.width) % m.width
	}
	return c
}

// IsWalkable reports whether an actor with the given flags may occupy c.
func (m *Maze) IsWalkable(c Coord, w Walk) bool {
	c = m.Wrap(c)
	if !m.InBounds(c) {
		return false
	}
	switch m.cells[m.index(c)] {
	case KindWall:
		return false
	case KindDoor:
		return !w.Player && (w.LeavingHouse || w.Eaten)
	case KindHouse:
		// Release paths start inside the house, so leaving counts too.
		return !w.Player && (w.LeavingHouse || w.Eaten)
	default:
		return true
	}
}

// InTunnel reports whether c is a tunnel cell (slows pursuers).
func (m *Maze) InTunnel(c Coord) bool {
	return m.Kind(m.Wrap(c)) == KindTunnel
}

// InHouse reports whether c is part of the house region (interior or door).
func (m *Maze) InHouse(c Coord) bool {
	k := m.Kind(c)
	return m.InBounds(c) && (k == KindHouse || k == KindDoor)
}

// CountPellets returns the number of pellet and power-pellet cells left.
func (m *Maze) CountPellets() int {
	return m.pellets
}

// Consume clears a pellet at c and returns what was there.
// ok is false when c held nothing consumable.
func (m *Maze) Consume(c Coord) (CellKind, bool) {
	c = m.Wrap(c)
	if !m.InBounds(c) {
		return KindEmpty, false
	}
	i := m.index(c)
	k := m.cells[i]
	if !k.IsPellet() {
		return KindEmpty, false
	}
	m.cells[i] = KindEmpty
	m.pellets--
	return k, true
}

// RestorePellets puts every pellet back to its level-start state.
func (m *Maze) RestorePellets() {
	copy(m.cells, m.initial)
	m.pellets = scanPellets(m.cells)
}

// Clone returns an independent copy of the maze.
func (m *Maze) Clone() *Maze {
	cp := *m
	cp.cells = append([]CellKind(nil), m.cells...)
	cp.initial = append([]CellKind(nil), m.initial...)
	return &cp
}

// Cells returns a row-major copy of the current cell kinds.
func (m *Maze) Cells() []CellKind {
	return append([]CellKind(nil), m.cells...)
}

func scanPellets(cells []CellKind) int {
	n := 0
	for _, k := range cells {
		if k.IsPellet() {
			n++
		}
	}
	return n
}

// GhostSpawn places one pursuer role at level start.
type GhostSpawn struct {
	Role Role
	Pos  Coord
}

// Layout holds the placement data parsed alongside a maze.
type Layout struct {
	Player      Coord
	Ghosts      []GhostSpawn
	Corners     [RoleCount]Coord
	HouseReturn Coord // target for eaten pursuers
	ExitColumn  int   // column releasing pursuers align to before going up
	HasHouse    bool
}

// Spawn returns the spawn cell of a role and whether the role is present.
func (l Layout) Spawn(r Role) (Coord, bool) {
	for _, g := range l.Ghosts {
		if g.Role == r {
			return g.Pos, true
		}
	}
	return Coord{}, false
}

// Layout characters:
//
//	#  wall            .  pellet        o  power pellet
//	-  house door      H  house         T  tunnel
//	P  player spawn    space  empty
//	A-D  pursuer spawn on an empty cell (roles in order)
//	a-d  pursuer spawn inside the house
func kindFor(ch rune) (CellKind, bool) {
	switch ch {
	case '#':
		return KindWall, true
	case '.':
		return KindPellet, true
	case 'o':
		return KindPowerPellet, true
	case '-':
		return KindDoor, true
	case 'H', 'a', 'b', 'c', 'd':
		return KindHouse, true
	case 'T':
		return KindTunnel, true
	case ' ', 'P', 'A', 'B', 'C', 'D':
		return KindEmpty, true
	default:
		return KindEmpty, false
	}
}

// ParseLayout builds a maze and its placement data from ASCII rows.
// All rows must have the same width.
func ParseLayout(rows []string) (*Maze, Layout, error) {
	var layout Layout
	if len(rows) == 0 {
		return nil, layout, fmt.Errorf("%w: no rows", ErrBadLayout)
	}
	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, layout, fmt.Errorf("%w: empty first row", ErrBadLayout)
	}

	m := &Maze{
		width:     width,
		height:    len(rows),
		cells:     make([]CellKind, width*len(rows)),
		tunnelRow: -1,
	}

	players := 0
	var seen [RoleCount]bool
	door := C(-1, -1)

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, layout, fmt.Errorf("%w: row %d has width %d, want %d", ErrBadLayout, y, len(runes), width)
		}
		for x, ch := range runes {
			k, ok := kindFor(ch)
			if !ok {
				return nil, layout, fmt.Errorf("%w: unknown cell %q at (%d,%d)", ErrBadLayout, ch, x, y)
			}
			c := C(x, y)
			m.cells[m.index(c)] = k

			switch {
			case ch == 'P':
				players++
				layout.Player = c
			case ch >= 'A' && ch <= 'D', ch >= 'a' && ch <= 'd':
				r := roleForSpawn(ch)
				if seen[r] {
					return nil, layout, fmt.Errorf("%w: duplicate spawn for %s", ErrBadLayout, r)
				}
				seen[r] = true
				layout.Ghosts = append(layout.Ghosts, GhostSpawn{Role: r, Pos: c})
			case k == KindDoor && door.X < 0:
				door = c
			case k == KindTunnel && m.tunnelRow < 0:
				m.tunnelRow = y
			}
		}
	}

	if players != 1 {
		return nil, layout, fmt.Errorf("%w: want exactly one player spawn, got %d", ErrBadLayout, players)
	}

	// Order ghosts by role so iteration is stable regardless of layout order.
	sortSpawns(layout.Ghosts)

	if door.X >= 0 {
		layout.HasHouse = true
		layout.ExitColumn = door.X
		layout.HouseReturn = houseReturn(m, door)
	}
	for _, g := range layout.Ghosts {
		if m.Kind(g.Pos) == KindHouse && !layout.HasHouse {
			return nil, layout, fmt.Errorf("%w: %s spawns in a house without a door", ErrBadLayout, g.Role)
		}
	}

	w, h := m.width, m.height
	layout.Corners = [RoleCount]Coord{
		RoleChaser:   C(w-3, -3),
		RoleAmbusher: C(2, -3),
		RoleFlanker:  C(w-1, h),
		RoleFeigner:  C(0, h),
	}

	m.initial = append([]CellKind(nil), m.cells...)
	m.pellets = scanPellets(m.cells)
	return m, layout, nil
}

// houseReturn picks the house cell eaten pursuers head for: two cells
// below the door when the house is that deep, otherwise the first.
func houseReturn(m *Maze, door Coord) Coord {
	c := door
	for m.Kind(c) == KindDoor {
		c = c.Step(DirDown)
	}
	if m.Kind(c) != KindHouse {
		return door
	}
	if next := c.Step(DirDown); m.Kind(next) == KindHouse {
		return next
	}
	return c
}

func roleForSpawn(ch rune) Role {
	if ch >= 'a' {
		return Role(ch - 'a')
	}
	return Role(ch - 'A')
}

func sortSpawns(s []GhostSpawn) {
	sort.Slice(s, func(i, j int) bool { return s[i].Role < s[j].Role })
}

// classicRows is the reference 28x31 maze.
var classicRows = []string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"     #.##### ## #####.#     ",
	"     #.##    A     ##.#     ",
	"     #.## ###--### ##.#     ",
	"######.## #HHHHHH# ##.######",
	"TTTTTT.   #HcbHdH#   .TTTTTT",
	"######.## #HHHHHH# ##.######",
	"     #.## ######## ##.#     ",
	"     #.##          ##.#     ",
	"     #.## ######## ##.#     ",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#o..##.......P .......##..o#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// ClassicRows returns a copy of the reference maze rows.
func ClassicRows() []string {
	return append([]string(nil), classicRows...)
}

// Classic returns the reference maze and its layout.
func Classic() (*Maze, Layout) {
	m, l, err := ParseLayout(classicRows)
	if err != nil {
		panic(fmt.Sprintf("engine: classic maze: %v", err))
	}
	return m, l
}
