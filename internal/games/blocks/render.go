package blocks

import (
	"fmt"
	"math"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	cellWidth  = 2  // Terminal columns per board column
	panelGap   = 2  // Columns between board frame and side panel
	panelWidth = 20 // Side panel width
)

var controlsHelp = []string{
	"←/→  move",
	"↑    rotate",
	"↓    soft drop",
	"spc  hard drop",
	"p    pause",
	"r    restart",
	"q    quit",
}

// layout is where the board and panel land on a screen.
type layout struct {
	frame  core.Rect
	panelX int
}

func (g *Game) layout(dst *core.Screen) (layout, bool) {
	frameW := g.board.Width()*cellWidth + 2
	frameH := g.board.Height() + 2
	total := frameW + panelGap + panelWidth

	if dst.Width() < frameW || dst.Height() < frameH {
		return layout{}, false
	}

	x := (dst.Width() - total) / 2
	if x < 0 {
		x = 0
	}
	y := (dst.Height() - frameH) / 2
	return layout{
		frame:  core.NewRect(x, y, frameW, frameH),
		panelX: x + frameW + panelGap,
	}, true
}

// Render draws the board, the falling piece, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	l, ok := g.layout(dst)
	if !ok {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(l.frame, core.ColorGray)
	g.renderGrid(dst, l)
	for _, blk := range g.board.LockedBlocks() {
		g.renderCell(dst, l, blk.Pos, blk.Color)
	}
	if !g.board.GameOver() {
		for _, pos := range g.current.WorldPositions() {
			g.renderCell(dst, l, pos, g.current.Color())
		}
	}
	g.renderPanel(dst, l)

	switch {
	case g.board.GameOver():
		g.renderGameOver(dst)
	case g.paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderGrid fills empty cells with a dim dot.
func (g *Game) renderGrid(dst *core.Screen, l layout) {
	for row := range g.board.Height() {
		for col := range g.board.Width() {
			x := l.frame.X + 1 + col*cellWidth
			y := l.frame.Y + 1 + row
			dst.SetColored(x, y, '·', core.ColorDim)
		}
	}
}

// renderCell draws one block at its nearest grid cell. Cells above the
// visible board are skipped.
func (g *Game) renderCell(dst *core.Screen, l layout, pos core.Vec2, c core.Color) {
	col := int(math.Round(pos.X))
	row := int(math.Round(pos.Y))
	if col < 0 || col >= g.board.Width() || row < 0 || row >= g.board.Height() {
		return
	}
	x := l.frame.X + 1 + col*cellWidth
	y := l.frame.Y + 1 + row
	for i := range cellWidth {
		dst.SetColored(x+i, y, core.BlockRune, c)
	}
}

func (g *Game) renderPanel(dst *core.Screen, l layout) {
	x := l.panelX
	y := l.frame.Y

	dst.DrawTextColored(x, y, "NEXT", core.ColorWhite)
	if g.next != nil {
		for _, off := range g.next.Pattern().Offsets() {
			// Offsets span x in [-2, 1] and y in [0, 1].
			px := x + int(math.Round(off.X+2))*cellWidth
			py := y + 2 + int(math.Round(off.Y))
			for i := range cellWidth {
				dst.SetColored(px+i, py, core.BlockRune, g.next.Color())
			}
		}
	}

	y += 5
	dst.DrawText(x, y, fmt.Sprintf("Score  %d", g.board.Score()))
	dst.DrawText(x, y+1, fmt.Sprintf("High   %d", g.board.HighScore()))
	dst.DrawText(x, y+2, fmt.Sprintf("Lines  %d", g.board.Lines()))

	y += 4
	for i, line := range controlsHelp {
		dst.DrawTextColored(x, y+i, line, core.ColorGray)
	}
}

// renderGameOver draws the pulsing block-letter banner, or a plain box
// when the screen cannot hold it.
func (g *Game) renderGameOver(dst *core.Screen) {
	t := float64(g.tick) / float64(g.tickRate)
	scale := 1 + gameOverPulse*math.Sin(gameOverPulseRate*t)

	if !drawBanner(dst, []string{"GAME", "OVER"}, scale) {
		renderOverlay(dst, "Game Over", "Press R to restart")
		return
	}
	msg := fmt.Sprintf("Score %d  -  Press R to restart", g.board.Score())
	dst.DrawTextColored((dst.Width()-len([]rune(msg)))/2, dst.Height()-2, msg, core.ColorWhite)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawText(box.X+(boxW-len(line1))/2, box.Y+1, line1)
	dst.DrawText(box.X+(boxW-len(line2))/2, box.Y+3, line2)
}
