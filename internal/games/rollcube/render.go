package rollcube

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/rollcube/internal/core"
	"github.com/vovakirdan/rollcube/internal/scene"
)

const (
	hudHeight    = 3
	footerHeight = 2
	minHUDWidth  = 34
)

func (g *Game) cellSize() (int, int) {
	w, h := g.cfg.Board.CellWidth, g.cfg.Board.CellHeight
	if w == 0 || h == 0 {
		return 7, 3
	}
	return w, h
}

func (g *Game) minScreenSize() (int, int) {
	cw, ch := g.cellSize()
	boardW := g.variant.Width*cw + 2
	boardH := g.variant.Height*ch + 2
	return max(boardW, minHUDWidth), boardH + hudHeight + footerHeight
}

// boardOrigin returns the top-left corner of the board frame.
func (g *Game) boardOrigin() (int, int) {
	cw, _ := g.cellSize()
	boardW := g.variant.Width*cw + 2
	return (g.screenW - boardW) / 2, hudHeight
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.resetHits(dst.Width(), dst.Height())

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.world == nil {
		dst.DrawTextCentered(dst.Height()/2, "Loading...")
		return
	}

	boardX, boardY := g.boardOrigin()
	g.renderHUD(dst)
	g.renderBoard(dst, boardX, boardY)
	g.renderFooter(dst)
	g.renderOverlays(dst, boardY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.variant.Title)

	status := fmt.Sprintf("Moves: %d   Time: %s", g.moves, formatElapsed(g.elapsed))
	dst.DrawTextCentered(1, status)
}

func (g *Game) renderFooter(dst *core.Screen) {
	help := "arrows/wasd/hjkl roll  click cube  p pause  q quit"
	dst.DrawTextColor(max((g.screenW-len(help))/2, 0), g.screenH-1, help, core.ColorGray)
}

// renderBoard draws the frame and every cube at the position of its body,
// so a rolling cube is drawn between cells.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	cw, ch := g.cellSize()
	b := g.world.Board
	dst.DrawBoxColor(core.NewRect(boardX, boardY, b.Width()*cw+2, b.Height()*ch+2), core.ColorGray)

	var rolling []scene.EntityID
	for _, pivot := range b.Cubes() {
		if g.world.Animator.Running(pivot) {
			rolling = append(rolling, pivot)
			continue
		}
		g.renderCube(dst, boardX+1, boardY+1, pivot)
	}
	for _, pivot := range rolling {
		g.renderCube(dst, boardX+1, boardY+1, pivot)
	}
}

func (g *Game) renderCube(dst *core.Screen, originX, originY int, pivot scene.EntityID) {
	body := g.world.body(pivot)
	global, ok := g.world.Arena.GlobalTransform(body)
	if !ok {
		return
	}
	cw, ch := g.cellSize()
	b := g.world.Board

	// World units are cells; screen rows grow downward.
	col := global.Translation.X() + float64(b.Width())/2 - 0.5
	row := float64(b.Height())/2 - 0.5 - global.Translation.Y()
	sx := originX + int(math.Round(col*float64(cw)))
	sy := originY + int(math.Round(row*float64(ch)))

	color := g.skin.Color(global.Rotation)
	label := strconv.Itoa(b.Label(pivot))
	rect := core.NewRect(sx, sy, cw, ch)

	dst.DrawRect(rect, ' ')
	if ch >= 3 {
		dst.DrawBoxColor(rect, color)
		cx, cy := rect.Center()
		dst.DrawTextColor(cx-len(label)/2, cy, label, color)
	} else {
		text := "[" + label + "]"
		dst.DrawTextColor(sx+(cw-len(text))/2, sy, text, color)
	}
	g.markHit(rect, body)
}

func (g *Game) renderOverlays(dst *core.Screen, boardY int) {
	_, ch := g.cellSize()
	below := boardY + g.world.Board.Height()*ch + 2

	switch {
	case g.paused:
		dst.DrawTextCentered(2, "PAUSED - press P to resume")
	case g.phase == PhaseShuffling:
		msg := fmt.Sprintf("Shuffling %d/%d", g.shuffler.Accepted(), g.shuffler.Threshold())
		dst.DrawTextColor(max((g.screenW-len(msg))/2, 0), 2, msg, core.ColorYellow)
	case g.phase == PhaseSolved:
		msg := fmt.Sprintf("SOLVED in %d moves!", g.moves)
		dst.DrawTextColor(max((g.screenW-len(msg))/2, 0), 2, msg, core.ColorBrightGreen)
		if below < g.screenH-1 {
			dst.DrawTextCentered(below, "R restart  B menu")
		}
	default:
		dst.DrawTextCentered(2, "Roll the cubes back into order")
	}
}

func (g *Game) resetHits(w, h int) {
	g.hitW = w
	if len(g.hits) != w*h {
		g.hits = make([]scene.EntityID, w*h)
		return
	}
	clear(g.hits)
}

func (g *Game) markHit(r core.Rect, id scene.EntityID) {
	w := g.hitW
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if x >= 0 && x < w && y >= 0 && y*w+x < len(g.hits) {
				g.hits[y*w+x] = id
			}
		}
	}
}

// hitAt returns the body drawn at a screen cell by the last Render.
func (g *Game) hitAt(x, y int) scene.EntityID {
	w := g.hitW
	if x < 0 || x >= w || y < 0 || y*w+x >= len(g.hits) {
		return scene.EntityID{}
	}
	return g.hits[y*w+x]
}
