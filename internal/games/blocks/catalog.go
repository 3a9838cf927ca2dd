package blocks

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/core"
)

// patterns holds the seven tetrominoes. Offsets put the rotation pivot at
// the local origin.
var patterns = []*Pattern{
	{name: "I", color: core.ColorCyan, offsets: []core.Vec2{{X: -2, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}},
	{name: "O", color: core.ColorYellow, offsets: []core.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}},
	{name: "T", color: core.ColorPurple, offsets: []core.Vec2{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}},
	{name: "S", color: core.ColorGreen, offsets: []core.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: 1}}},
	{name: "Z", color: core.ColorRed, offsets: []core.Vec2{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}},
	{name: "J", color: core.ColorBlue, offsets: []core.Vec2{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}},
	{name: "L", color: core.ColorOrange, offsets: []core.Vec2{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 1}}},
}

// Patterns returns the catalog shapes in canonical order.
func Patterns() []*Pattern {
	out := make([]*Pattern, len(patterns))
	copy(out, patterns)
	return out
}

// PatternByName looks up a shape by its letter. Returns nil if unknown.
func PatternByName(name string) *Pattern {
	for _, p := range patterns {
		if p.name == name {
			return p
		}
	}
	return nil
}

// Catalog hands out random pieces drawn uniformly from the seven shapes.
type Catalog struct {
	rng *rand.Rand
}

// NewCatalog creates a catalog drawing from rng. The generator is seeded
// once by the caller and never reseeded here.
func NewCatalog(rng *rand.Rand) *Catalog {
	return &Catalog{rng: rng}
}

// Random returns a fresh piece at the identity transform.
func (c *Catalog) Random() *Piece {
	return NewPiece(patterns[c.rng.Intn(len(patterns))])
}
