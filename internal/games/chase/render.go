package chase

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/games/chase/engine"
)

var roleColors = [engine.RoleCount]core.Color{
	engine.RoleChaser:   core.ColorBrightRed,
	engine.RoleAmbusher: core.ColorBrightMagenta,
	engine.RoleFlanker:  core.ColorBrightCyan,
	engine.RoleFeigner:  core.ColorOrange,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		g.renderOverlay(dst, "Cannot start", truncate(g.err.Error(), dst.Width()-6))
		return
	}
	if g.sim == nil {
		return
	}

	snap := g.sim.Snapshot()
	g.renderHUD(dst, snap)

	if g.tooSmall {
		w, h := g.requiredSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d, resize to continue", w, h))
		return
	}

	g.renderMaze(dst, snap)
	g.renderGhosts(dst, snap)
	g.renderPlayer(dst, snap)

	switch {
	case g.phase == PhaseGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  Press R to restart", snap.Score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "P to continue, R to restart")
	case g.phase == PhaseCleared:
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", snap.Level), g.level.Name)
	}
}

// renderHUD draws the score line and the status line.
func (g *Game) renderHUD(dst *core.Screen, snap engine.Snapshot) {
	lives := strings.Repeat("♥", max(0, g.lives))
	if g.variant == VariantPractice {
		lives = "∞"
	}
	hud := fmt.Sprintf(" Score: %d  Level: %d  Lives: %s  Maze: %s", snap.Score, snap.Level, lives, g.level.Name)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	var status string
	color := core.ColorGray
	switch {
	case g.phase == PhaseReady:
		status, color = "READY!", core.ColorBrightYellow
	case g.phase == PhaseDying:
		status, color = "CAUGHT!", core.ColorBrightRed
	case snap.Frightened:
		status, color = fmt.Sprintf("FRIGHTENED %.1fs", snap.FrightenedLeft), core.ColorBrightBlue
	default:
		status = strings.ToUpper(snap.Mode.String())
	}
	dst.DrawTextColor(1, 1, status, color)
	right := fmt.Sprintf("Pellets: %d ", snap.Remaining)
	dst.DrawTextColor(dst.Width()-len(right), 1, right, core.ColorGray)
}

// renderMaze draws walls, pellets and the house door.
func (g *Game) renderMaze(dst *core.Screen, snap engine.Snapshot) {
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			sx, sy := g.toScreen(engine.C(x, y))
			switch snap.Cell(engine.C(x, y)) {
			case engine.KindWall:
				for i := 0; i < g.cellW; i++ {
					dst.SetColor(sx+i, sy, '█', core.ColorBlue)
				}
			case engine.KindPellet:
				dst.SetColor(sx, sy, '·', core.ColorWhite)
			case engine.KindPowerPellet:
				dst.SetColor(sx, sy, 'o', core.ColorBrightWhite)
			case engine.KindDoor:
				for i := 0; i < g.cellW; i++ {
					dst.SetColor(sx+i, sy, '-', core.ColorMagenta)
				}
			}
		}
	}
}

func (g *Game) renderGhosts(dst *core.Screen, snap engine.Snapshot) {
	// Blink between blue and white every quarter second near the end.
	blink := snap.FrightenedEnding && int(snap.FrightenedLeft*4)%2 == 0
	for _, gv := range snap.Ghosts {
		r, c := 'M', roleColors[gv.Role]
		switch gv.Mode {
		case engine.ModeFrightened:
			r, c = 'W', core.ColorBlue
			if blink {
				c = core.ColorBrightWhite
			}
		case engine.ModeEaten:
			r, c = '"', core.ColorWhite
		}
		sx, sy := g.toScreen(gv.Pos)
		dst.SetColor(sx, sy, r, c)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, snap engine.Snapshot) {
	p := snap.Player
	r := '@'
	switch p.Dir {
	case engine.DirLeft:
		r = '>'
	case engine.DirRight:
		r = '<'
	case engine.DirUp:
		r = 'v'
	case engine.DirDown:
		r = '^'
	}
	c := core.ColorBrightYellow
	if !p.Alive {
		r, c = '*', core.ColorBrightRed
	}
	sx, sy := g.toScreen(p.Pos)
	dst.SetColor(sx, sy, r, c)
}

func (g *Game) toScreen(c engine.Coord) (int, int) {
	return g.offsetX + c.X*g.cellW, g.offsetY + c.Y
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, boxH)

	dst.DrawRect(box.Inset(1), ' ')
	dst.DrawBox(box)
	dst.DrawTextCenteredColor(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2)
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if n <= 3 || len(rs) <= n {
		return s
	}
	return string(rs[:n-3]) + "..."
}
