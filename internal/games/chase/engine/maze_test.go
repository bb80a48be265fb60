package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayoutClassic(t *testing.T) {
	m, l := Classic()

	assert.Equal(t, 28, m.Width())
	assert.Equal(t, 31, m.Height())
	assert.Equal(t, 244, m.CountPellets())
	assert.Equal(t, 14, m.TunnelRow())
	assert.Equal(t, C(13, 23), l.Player)
	assert.True(t, l.HasHouse)
	assert.Equal(t, 13, l.ExitColumn)
	assert.Equal(t, C(13, 14), l.HouseReturn)

	require.Len(t, l.Ghosts, RoleCount)
	for i, g := range l.Ghosts {
		assert.Equal(t, Role(i), g.Role, "spawns are ordered by role")
	}
	chaser, ok := l.Spawn(RoleChaser)
	require.True(t, ok)
	assert.Equal(t, C(13, 11), chaser)
	assert.Equal(t, KindEmpty, m.Kind(chaser))

	ambusher, _ := l.Spawn(RoleAmbusher)
	assert.Equal(t, KindHouse, m.Kind(ambusher))
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"no rows", nil},
		{"empty row", []string{""}},
		{"ragged", []string{"#P#", "##"}},
		{"unknown cell", []string{"#P?#"}},
		{"no player", []string{"#..#"}},
		{"two players", []string{"#PP#"}},
		{"duplicate role", []string{"#PAA#"}},
		{"duplicate role mixed case", []string{"#PA#", "#Ha#"}},
		{"house without door", []string{"#P.#", "#Hb#"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ParseLayout(tc.rows)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadLayout)
		})
	}
}

func TestKindOutOfBoundsIsEmpty(t *testing.T) {
	m, _ := Classic()
	for _, c := range []Coord{C(-1, 0), C(0, -1), C(28, 5), C(5, 31)} {
		assert.Equal(t, KindEmpty, m.Kind(c), "Kind(%s)", c)
	}
}

func TestWrap(t *testing.T) {
	m, _ := Classic()
	row := m.TunnelRow()

	t.Run("idempotent in bounds", func(t *testing.T) {
		for y := 0; y < m.Height(); y++ {
			for x := 0; x < m.Width(); x++ {
				c := C(x, y)
				w := m.Wrap(c)
				assert.Equal(t, c, w)
				assert.Equal(t, w, m.Wrap(w))
			}
		}
	})

	t.Run("tunnel row maps to opposite edge", func(t *testing.T) {
		assert.Equal(t, C(m.Width()-1, row), m.Wrap(C(-1, row)))
		assert.Equal(t, C(0, row), m.Wrap(C(m.Width(), row)))
		assert.Equal(t, m.Wrap(C(-1, row)), m.Wrap(m.Wrap(C(-1, row))))
	})

	t.Run("other rows unchanged", func(t *testing.T) {
		assert.Equal(t, C(-1, 5), m.Wrap(C(-1, 5)))
		assert.False(t, m.IsWalkable(C(-1, 5), Walk{}))
	})

	t.Run("tunnel mouth walkable", func(t *testing.T) {
		assert.True(t, m.IsWalkable(C(-1, row), Walk{Player: true}))
		assert.True(t, m.InTunnel(C(-1, row)))
	})
}

func TestIsWalkable(t *testing.T) {
	m, l := Classic()
	door := C(13, 12)
	house := l.HouseReturn

	tests := []struct {
		name string
		at   Coord
		walk Walk
		want bool
	}{
		{"wall for player", C(0, 0), Walk{Player: true}, false},
		{"wall for eaten", C(0, 0), Walk{Eaten: true}, false},
		{"pellet for player", C(1, 1), Walk{Player: true}, true},
		{"door for player", door, Walk{Player: true}, false},
		{"door for player flagged eaten", door, Walk{Player: true, Eaten: true}, false},
		{"door for hunting pursuer", door, Walk{}, false},
		{"door when leaving", door, Walk{LeavingHouse: true}, true},
		{"door when eaten", door, Walk{Eaten: true}, true},
		{"house for player", house, Walk{Player: true}, false},
		{"house for hunting pursuer", house, Walk{}, false},
		{"house when eaten", house, Walk{Eaten: true}, true},
		{"house when leaving", house, Walk{LeavingHouse: true}, true},
		{"tunnel", C(2, 14), Walk{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, m.IsWalkable(tc.at, tc.walk))
		})
	}
}

func TestConsumeAndCount(t *testing.T) {
	m, _ := Classic()
	start := m.CountPellets()

	eaten := 0
	for x := 1; x <= 12; x++ {
		k, ok := m.Consume(C(x, 1))
		require.True(t, ok, "pellet at (%d,1)", x)
		require.Equal(t, KindPellet, k)
		eaten++
		assert.Equal(t, start-eaten, m.CountPellets())
		assert.Equal(t, scanPellets(m.cells), m.CountPellets())
	}

	_, ok := m.Consume(C(1, 1))
	assert.False(t, ok, "second consume of the same cell")
	_, ok = m.Consume(C(0, 0))
	assert.False(t, ok, "walls are not consumable")

	k, ok := m.Consume(C(1, 3))
	require.True(t, ok)
	assert.Equal(t, KindPowerPellet, k)
	assert.Equal(t, start-eaten-1, m.CountPellets())

	m.RestorePellets()
	assert.Equal(t, start, m.CountPellets())
	assert.Equal(t, KindPellet, m.Kind(C(1, 1)))
}

func TestCloneIsIndependent(t *testing.T) {
	m, _ := Classic()
	cp := m.Clone()

	_, ok := cp.Consume(C(1, 1))
	require.True(t, ok)
	assert.Equal(t, KindPellet, m.Kind(C(1, 1)))
	assert.Equal(t, m.CountPellets()-1, cp.CountPellets())
}

func TestDirOpposite(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, -dx, ox)
		assert.Equal(t, -dy, oy)
	}
	assert.Equal(t, DirNone, DirNone.Opposite())
	dx, dy := DirNone.Delta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestParseLayoutOrdersSpawnsByRole(t *testing.T) {
	_, l, err := ParseLayout([]string{"#D.C.P.B.A#"})
	require.NoError(t, err)
	require.Len(t, l.Ghosts, RoleCount)
	for i, g := range l.Ghosts {
		assert.Equal(t, Role(i), g.Role)
	}
	assert.Equal(t, C(9, 0), l.Ghosts[RoleChaser].Pos)
	assert.Equal(t, C(1, 0), l.Ghosts[RoleFeigner].Pos)
}
