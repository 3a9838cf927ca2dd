package blocks

import (
	"math"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	glyphSize    = 7 // Glyph cells span [0, 6] on both axes
	glyphAdvance = 8 // Horizontal distance between letters
	lineAdvance  = 8 // Vertical distance between banner lines

	gameOverPulse     = 0.3
	gameOverPulseRate = 4.0
)

// glyphs holds the block-letter font. Cells are (x, y) with y pointing up,
// so row 6 is the top of a letter.
var glyphs = map[rune][]core.Vec2{
	'G': {
		{X: 1, Y: 6}, {X: 2, Y: 6}, {X: 3, Y: 6}, {X: 4, Y: 6},
		{X: 0, Y: 5}, {X: 0, Y: 4}, {X: 0, Y: 3}, {X: 0, Y: 2}, {X: 0, Y: 1},
		{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0},
		{X: 4, Y: 3}, {X: 4, Y: 2}, {X: 4, Y: 1}, {X: 3, Y: 3}, {X: 2, Y: 3},
	},
	'A': {
		{X: 1, Y: 6}, {X: 2, Y: 6}, {X: 3, Y: 6}, {X: 4, Y: 6},
		{X: 0, Y: 5}, {X: 5, Y: 5},
		{X: 0, Y: 4}, {X: 5, Y: 4},
		{X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}, {X: 5, Y: 3},
		{X: 0, Y: 2}, {X: 5, Y: 2},
		{X: 0, Y: 1}, {X: 5, Y: 1},
		{X: 0, Y: 0}, {X: 5, Y: 0},
	},
	'M': {
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}, {X: 0, Y: 4}, {X: 0, Y: 5}, {X: 0, Y: 6},
		{X: 6, Y: 0}, {X: 6, Y: 1}, {X: 6, Y: 2}, {X: 6, Y: 3}, {X: 6, Y: 4}, {X: 6, Y: 5}, {X: 6, Y: 6},
		{X: 1, Y: 4}, {X: 2, Y: 3}, {X: 3, Y: 2}, {X: 4, Y: 3}, {X: 5, Y: 4},
	},
	'E': {
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0},
		{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}, {X: 0, Y: 4}, {X: 0, Y: 5}, {X: 0, Y: 6},
		{X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}, {X: 5, Y: 3},
		{X: 1, Y: 6}, {X: 2, Y: 6}, {X: 3, Y: 6}, {X: 4, Y: 6}, {X: 5, Y: 6},
	},
	'O': {
		{X: 1, Y: 6}, {X: 2, Y: 6}, {X: 3, Y: 6}, {X: 4, Y: 6}, {X: 5, Y: 6},
		{X: 0, Y: 5}, {X: 0, Y: 4}, {X: 0, Y: 3}, {X: 0, Y: 2}, {X: 0, Y: 1},
		{X: 6, Y: 5}, {X: 6, Y: 4}, {X: 6, Y: 3}, {X: 6, Y: 2}, {X: 6, Y: 1},
		{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0},
	},
	'V': {
		{X: 0, Y: 6}, {X: 0, Y: 5}, {X: 0, Y: 4}, {X: 0, Y: 3},
		{X: 6, Y: 6}, {X: 6, Y: 5}, {X: 6, Y: 4}, {X: 6, Y: 3},
		{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 3, Y: 0}, {X: 4, Y: 1}, {X: 5, Y: 2},
	},
	'R': {
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}, {X: 0, Y: 4}, {X: 0, Y: 5}, {X: 0, Y: 6},
		{X: 1, Y: 6}, {X: 2, Y: 6}, {X: 3, Y: 6}, {X: 4, Y: 5}, {X: 4, Y: 4}, {X: 4, Y: 3},
		{X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3},
		{X: 5, Y: 2}, {X: 6, Y: 1}, {X: 6, Y: 0},
	},
}

// glyphFlip maps y-up glyph space onto y-down screen rows.
var glyphFlip = core.Mul(core.Scale(1, -1), core.Translate(0, glyphSize))

// bannerSize returns the unscaled width and height of lines in cells.
func bannerSize(lines []string) (float64, float64) {
	longest := 0
	for _, line := range lines {
		longest = max(longest, len([]rune(line)))
	}
	w := float64(longest*glyphAdvance - (glyphAdvance - glyphSize))
	h := float64(len(lines)*lineAdvance - (lineAdvance - glyphSize))
	return w, h
}

// bannerTransform places a glyph cell of the letter at (col, line) on the
// screen, scaled by scale about the screen center.
func bannerTransform(lines []string, col, line int, scale float64, dst *core.Screen) core.Mat3 {
	bw, bh := bannerSize(lines)
	local := core.Translate(float64(col*glyphAdvance)-bw/2, float64(line*lineAdvance)-bh/2)
	center := core.Translate(float64(dst.Width())/2, float64(dst.Height())/2)

	m := core.Mul(glyphFlip, local)
	m = core.Mul(m, core.Scale(scale, scale))
	return core.Mul(m, center)
}

// drawBanner draws lines in the block font centered on dst. It reports
// false without drawing when the banner at its largest pulse would not fit.
func drawBanner(dst *core.Screen, lines []string, scale float64) bool {
	bw, bh := bannerSize(lines)
	peak := 1 + gameOverPulse
	if bw*peak > float64(dst.Width()) || bh*peak > float64(dst.Height()-2) {
		return false
	}

	for li, line := range lines {
		for ci, ch := range []rune(line) {
			m := bannerTransform(lines, ci, li, scale, dst)
			for _, cell := range glyphs[ch] {
				fillCell(dst, m, cell)
			}
		}
	}
	return true
}

// fillCell paints the screen cells covered by the unit square at cell
// after transforming its corners by m. Every glyph cell covers at least
// one screen cell.
func fillCell(dst *core.Screen, m core.Mat3, cell core.Vec2) {
	a := m.Apply(cell)
	b := m.Apply(cell.Add(core.V(1, 1)))

	x0, x1 := span(a.X, b.X)
	y0, y1 := span(a.Y, b.Y)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, core.BlockRune, core.ColorBrightRed)
		}
	}
}

func span(a, b float64) (int, int) {
	lo := int(math.Round(math.Min(a, b)))
	hi := int(math.Round(math.Max(a, b)))
	if hi == lo {
		hi++
	}
	return lo, hi
}
