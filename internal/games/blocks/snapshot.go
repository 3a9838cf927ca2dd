package blocks

import (
	"math"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Snapshot captures the game state for determinism testing and export.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	HighScore int
	Lines     int
	Pieces    int
	Blocks    int
	Current   string // Pattern name of the falling piece
	Next      string
	Origin    core.Vec2
	GameOver  bool
	Paused    bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Score:     g.board.Score(),
		HighScore: g.board.HighScore(),
		Lines:     g.board.Lines(),
		Pieces:    g.pieces,
		Blocks:    g.board.BlockCount(),
		Current:   g.current.Pattern().Name(),
		Next:      g.next.Pattern().Name(),
		Origin:    g.current.Origin(),
		GameOver:  g.board.GameOver(),
		Paused:    g.paused,
	}
}

// BoardText renders the board as plain text, one line per row. Settled
// blocks are '#', the falling piece is '@' and empty cells are '.'.
func (g *Game) BoardText() string {
	w, h := g.board.Width(), g.board.Height()
	grid := make([][]byte, h)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", w))
	}

	mark := func(pos core.Vec2, ch byte) {
		x, y := int(math.Round(pos.X)), int(math.Round(pos.Y))
		if x >= 0 && x < w && y >= 0 && y < h {
			grid[y][x] = ch
		}
	}
	for _, blk := range g.board.LockedBlocks() {
		mark(blk.Pos, '#')
	}
	if !g.board.GameOver() {
		for _, pos := range g.current.WorldPositions() {
			mark(pos, '@')
		}
	}

	var sb strings.Builder
	for y, row := range grid {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}
