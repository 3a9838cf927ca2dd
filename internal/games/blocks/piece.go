package blocks

import "github.com/vovakirdan/blockfall/internal/core"

// Pattern is an immutable piece shape: block offsets relative to the
// piece's local origin plus the color shared by all its blocks.
type Pattern struct {
	name    string
	offsets []core.Vec2
	color   core.Color
}

// Name returns the single-letter shape name (I, O, T, S, Z, J, L).
func (p *Pattern) Name() string {
	return p.name
}

// Color returns the pattern color.
func (p *Pattern) Color() core.Color {
	return p.color
}

// Offsets returns a copy of the local block offsets in pattern order.
func (p *Pattern) Offsets() []core.Vec2 {
	out := make([]core.Vec2, len(p.offsets))
	copy(out, p.offsets)
	return out
}

// Piece is a pattern placed in board space by an affine transform.
// Moves are made on a Clone and committed only after the board accepts them.
type Piece struct {
	pattern   *Pattern
	transform core.Mat3
}

// NewPiece returns a piece of the given pattern at the identity transform.
func NewPiece(p *Pattern) *Piece {
	return &Piece{
		pattern:   p,
		transform: core.Identity(),
	}
}

// Clone returns an independent copy sharing the immutable pattern.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// Pattern returns the piece shape.
func (p *Piece) Pattern() *Pattern {
	return p.pattern
}

// Color returns the color of every block of the piece.
func (p *Piece) Color() core.Color {
	return p.pattern.color
}

// Transform returns the current local-to-board transform.
func (p *Piece) Transform() core.Mat3 {
	return p.transform
}

// ResetTransform puts the piece back at the identity transform.
func (p *Piece) ResetTransform() {
	p.transform = core.Identity()
}

// WorldPositions maps every local offset through the current transform.
// The result is in pattern order.
func (p *Piece) WorldPositions() []core.Vec2 {
	out := make([]core.Vec2, len(p.pattern.offsets))
	for i, local := range p.pattern.offsets {
		out[i] = p.transform.Apply(local)
	}
	return out
}

// Origin returns the board position of the local origin.
func (p *Piece) Origin() core.Vec2 {
	return p.transform.Apply(core.Vec2{})
}

// Translate post-multiplies a translation onto the transform.
func (p *Piece) Translate(dx, dy float64) {
	p.transform = core.Mul(p.transform, core.Translate(dx, dy))
}

// Rotate turns the piece by angleDeg about the board position of its
// local origin.
func (p *Piece) Rotate(angleDeg float64) {
	c := p.Origin()
	pivot := core.Mul(core.Mul(core.Translate(-c.X, -c.Y), core.Rotate(angleDeg)), core.Translate(c.X, c.Y))
	p.transform = core.Mul(p.transform, pivot)
}
