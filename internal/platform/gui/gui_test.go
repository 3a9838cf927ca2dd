package gui

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/blockfall/internal/core"
	_ "github.com/vovakirdan/blockfall/internal/games/blocks"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

func TestPaletteCoversEveryColor(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBrightRed; c++ {
		assert.NotNil(t, paletteColor(c), "color %s", c)
	}
	assert.Equal(t, colornames.Gray, paletteColor(core.Color(200)))
}

func TestKeyBindingsCoverGameActions(t *testing.T) {
	bound := map[core.Action]bool{}
	for _, b := range keyBindings {
		bound[b.action] = true
	}
	for _, a := range []core.Action{
		core.ActionLeft, core.ActionRight, core.ActionRotate, core.ActionSoftDrop,
		core.ActionHardDrop, core.ActionPause, core.ActionRestart, core.ActionQuit,
	} {
		assert.True(t, bound[a], "action %s has no key", a)
	}
}

func TestWindowRecordsGameOverOnce(t *testing.T) {
	store, err := storage.OpenMemory()
	require.NoError(t, err)
	defer store.Close()

	game, err := registry.Create("blocks")
	require.NoError(t, err)
	w := NewWindow(game, store, log.New(io.Discard), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9})

	w.observe(core.StepResult{State: core.GameState{Score: 300, Lines: 3, GameOver: true}})
	w.observe(core.StepResult{State: core.GameState{Score: 300, Lines: 3, GameOver: true}})
	top, err := store.TopGames("blocks", 10)
	require.NoError(t, err)
	assert.Len(t, top, 1)

	w.observe(core.StepResult{State: core.GameState{}})
	w.observe(core.StepResult{State: core.GameState{Score: 100, GameOver: true}})
	top, err = store.TopGames("blocks", 10)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestLayoutMatchesScreen(t *testing.T) {
	game, err := registry.Create("blocks")
	require.NoError(t, err)
	w := NewWindow(game, nil, log.New(io.Discard), core.RuntimeConfig{ScreenW: 60, ScreenH: 30, TickRate: 60, Seed: 1})

	width, height := w.Layout(0, 0)
	assert.Equal(t, 60*cellW, width)
	assert.Equal(t, 30*cellH, height)
}
