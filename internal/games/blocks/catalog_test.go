package blocks

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestPatternsShape(t *testing.T) {
	pats := Patterns()
	require.Len(t, pats, 7)

	names := map[string]bool{}
	colors := map[core.Color]bool{}
	for _, p := range pats {
		assert.Len(t, p.Offsets(), 4, p.Name())
		names[p.Name()] = true
		colors[p.Color()] = true
	}
	assert.Len(t, names, 7)
	assert.Len(t, colors, 7)

	var order []string
	for _, p := range pats {
		order = append(order, p.Name())
	}
	assert.Equal(t, []string{"I", "O", "T", "S", "Z", "J", "L"}, order)
}

func TestPatternByName(t *testing.T) {
	assert.Equal(t, core.ColorCyan, PatternByName("I").Color())
	assert.Nil(t, PatternByName("X"))
}

func TestPatternOffsetsAreCopies(t *testing.T) {
	p := PatternByName("O")
	offs := p.Offsets()
	offs[0] = core.V(9, 9)
	assert.Equal(t, core.V(0, 0), p.Offsets()[0])

	pats := Patterns()
	pats[0] = nil
	assert.NotNil(t, Patterns()[0])
}

func TestCatalogRandomIsUniform(t *testing.T) {
	c := NewCatalog(rand.New(rand.NewSource(99)))
	counts := map[string]int{}
	const draws = 7000
	for range draws {
		p := c.Random()
		assert.Equal(t, core.Identity(), p.Transform())
		counts[p.Pattern().Name()]++
	}

	require.Len(t, counts, 7)
	for name, n := range counts {
		assert.InDelta(t, draws/7, n, 150, "pattern %s", name)
	}
}

func TestCatalogSameSeedSameSequence(t *testing.T) {
	a := NewCatalog(rand.New(rand.NewSource(5)))
	b := NewCatalog(rand.New(rand.NewSource(5)))
	for range 50 {
		assert.Equal(t, a.Random().Pattern().Name(), b.Random().Pattern().Name())
	}
}

func TestCatalogPiecesAreDistinct(t *testing.T) {
	c := NewCatalog(rand.New(rand.NewSource(1)))
	p1 := c.Random()
	p2 := c.Random()
	p1.Translate(3, 3)
	assert.Equal(t, core.Identity(), p2.Transform())
}
