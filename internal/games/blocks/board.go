package blocks

import (
	"math"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// rowBandHalfWidth is how far a block may sit from a row and still count as in it.
const rowBandHalfWidth = 0.5

// LockedBlock is one settled cell. It has no identity beyond its position.
type LockedBlock struct {
	Pos   core.Vec2
	Color core.Color
}

// Board owns the settled blocks and the score counters. Occupancy is
// decided by distance in continuous board space, not by grid indexing.
type Board struct {
	width   int
	height  int
	epsilon float64
	xMargin float64
	scoring config.ScoringConfig

	blocks    []LockedBlock
	score     int
	highScore int
	lines     int
	gameOver  bool
}

// NewBoard creates an empty board with the geometry and scoring of cfg.
func NewBoard(cfg config.BlocksConfig) *Board {
	return &Board{
		width:   cfg.Board.Width,
		height:  cfg.Board.Height,
		epsilon: cfg.Board.CollisionEpsilon,
		xMargin: cfg.Board.XMargin,
		scoring: cfg.Scoring,
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Score returns the score of the current game.
func (b *Board) Score() int { return b.score }

// HighScore returns the best score of the session.
func (b *Board) HighScore() int { return b.highScore }

// Lines returns the rows cleared in the current game.
func (b *Board) Lines() int { return b.lines }

// GameOver reports whether the controller has ended the game.
func (b *Board) GameOver() bool { return b.gameOver }

// SetGameOver is called by the controller when a spawn fails.
func (b *Board) SetGameOver(v bool) { b.gameOver = v }

// BlockCount returns the number of settled blocks.
func (b *Board) BlockCount() int { return len(b.blocks) }

// LockedBlocks returns a copy of the settled blocks.
func (b *Board) LockedBlocks() []LockedBlock {
	out := make([]LockedBlock, len(b.blocks))
	copy(out, b.blocks)
	return out
}

// Reset empties the board for a new game. The high score is kept.
func (b *Board) Reset() {
	b.blocks = b.blocks[:0]
	b.score = 0
	b.lines = 0
	b.gameOver = false
}

func (b *Board) overlaps(p, q core.Vec2) bool {
	return p.Dist(q) < b.epsilon
}

// inColumns reports whether x lies between the side walls.
func (b *Board) inColumns(x float64) bool {
	return x >= -b.xMargin && x < float64(b.width)
}

// CanPlace reports whether every cell of p is inside the walls, above the
// floor and clear of settled blocks. Cells above the top (y < 0) are legal
// and are not tested for overlap.
func (b *Board) CanPlace(p *Piece) bool {
	for _, pos := range p.WorldPositions() {
		if !b.inColumns(pos.X) || pos.Y >= float64(b.height) {
			return false
		}
		if pos.Y < 0 {
			continue
		}
		for _, locked := range b.blocks {
			if b.overlaps(pos, locked.Pos) {
				return false
			}
		}
	}
	return true
}

// Lock settles the in-bounds cells of p with the piece color.
// Cells outside the board are dropped.
func (b *Board) Lock(p *Piece) {
	color := p.Color()
	for _, pos := range p.WorldPositions() {
		if pos.Y < 0 || pos.Y >= float64(b.height) || !b.inColumns(pos.X) {
			continue
		}
		b.blocks = append(b.blocks, LockedBlock{Pos: pos, Color: color})
	}
}

// ClearLines removes every full row, drops the blocks above by the number
// of removed rows beneath them and awards points. Returns the row count.
func (b *Board) ClearLines() int {
	full := b.fullRows()
	if len(full) == 0 {
		return 0
	}

	survivors := make([]LockedBlock, 0, len(b.blocks))
	for _, blk := range b.blocks {
		if inAnyRow(blk.Pos.Y, full) {
			continue
		}
		var shift float64
		for _, row := range full {
			if row > blk.Pos.Y {
				shift++
			}
		}
		blk.Pos.Y += shift
		survivors = append(survivors, blk)
	}
	b.blocks = survivors

	n := len(full)
	b.score += b.points(n)
	b.highScore = max(b.highScore, b.score)
	b.lines += n
	return n
}

// fullRows returns the rows holding at least width blocks, in the order
// the rows were first seen. Candidate rows are the rounded block y values.
func (b *Board) fullRows() []float64 {
	seen := intmap.New[int32, struct{}](b.height)
	var full []float64
	for _, blk := range b.blocks {
		row := math.Round(blk.Pos.Y)
		if _, ok := seen.Get(int32(row)); ok {
			continue
		}
		seen.Put(int32(row), struct{}{})
		if b.RowCount(int(row)) >= b.width {
			full = append(full, row)
		}
	}
	return full
}

// RowCount returns how many settled blocks sit in the given row.
func (b *Board) RowCount(row int) int {
	n := 0
	for _, blk := range b.blocks {
		if math.Abs(blk.Pos.Y-float64(row)) < rowBandHalfWidth {
			n++
		}
	}
	return n
}

func (b *Board) points(rows int) int {
	switch rows {
	case 0:
		return 0
	case 1:
		return b.scoring.Single
	case 2:
		return b.scoring.Double
	case 3:
		return b.scoring.Triple
	default:
		return b.scoring.Tetris
	}
}

func inAnyRow(y float64, rows []float64) bool {
	for _, r := range rows {
		if math.Abs(y-r) < rowBandHalfWidth {
			return true
		}
	}
	return false
}
