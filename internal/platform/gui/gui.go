// Package gui runs a game in a desktop window on ebiten. It draws the
// same screen buffer the terminal frontend uses, one cell per glyph box.
package gui

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

const (
	cellW = 8  // Pixels per screen column
	cellH = 16 // Pixels per screen row
)

var palette = map[core.Color]color.Color{
	core.ColorDefault:   colornames.Lightgray,
	core.ColorCyan:      colornames.Cyan,
	core.ColorYellow:    colornames.Gold,
	core.ColorPurple:    colornames.Mediumpurple,
	core.ColorGreen:     colornames.Limegreen,
	core.ColorRed:       colornames.Crimson,
	core.ColorBlue:      colornames.Royalblue,
	core.ColorOrange:    colornames.Darkorange,
	core.ColorGray:      colornames.Gray,
	core.ColorDim:       colornames.Dimgray,
	core.ColorWhite:     colornames.White,
	core.ColorBrightRed: colornames.Red,
}

// paletteColor returns the window color of c. Unknown colors are gray.
func paletteColor(c core.Color) color.Color {
	return palette[c.Resolve()]
}

var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyArrowUp, core.ActionRotate},
	{ebiten.KeyW, core.ActionRotate},
	{ebiten.KeyArrowDown, core.ActionSoftDrop},
	{ebiten.KeyS, core.ActionSoftDrop},
	{ebiten.KeySpace, core.ActionHardDrop},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyEscape, core.ActionQuit},
}

// Window adapts a registry.Game to ebiten.Game.
type Window struct {
	game       registry.Game
	store      *storage.Store
	logger     *log.Logger
	screen     *core.Screen
	frame      core.InputFrame
	started    time.Time
	wasOver    bool
	scoreSaved bool
}

// NewWindow creates a window for game sized by cfg in screen cells.
func NewWindow(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) *Window {
	game.Reset(cfg)
	return &Window{
		game:    game,
		store:   store,
		logger:  logger,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		frame:   core.NewInputFrame(),
		started: time.Now(),
	}
}

// Update collects the keys pressed this tick and steps the game once.
func (w *Window) Update() error {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			w.frame.Set(b.action)
		}
	}
	if w.frame.Has(core.ActionQuit) {
		w.logger.Info("quit", "score", w.game.State().Score)
		return ebiten.Termination
	}

	res := w.game.Step(w.frame)
	w.frame.Clear()
	w.observe(res)
	return nil
}

// observe logs locks and records a finished game once.
func (w *Window) observe(res core.StepResult) {
	if res.Locked {
		w.logger.Debug("piece locked", "cleared", res.Cleared, "score", res.State.Score)
	}
	if w.wasOver && !res.State.GameOver {
		w.logger.Info("restart", "high", res.State.HighScore)
		w.scoreSaved = false
		w.started = time.Now()
	}
	w.wasOver = res.State.GameOver

	if !res.State.GameOver || w.scoreSaved {
		return
	}
	w.scoreSaved = true
	w.logger.Info("game over", "score", res.State.Score, "lines", res.State.Lines)
	if w.store == nil {
		return
	}
	rec := storage.GameRecord{
		GameID:   w.game.ID(),
		Score:    res.State.Score,
		Lines:    res.State.Lines,
		Duration: time.Since(w.started),
	}
	if pc, ok := w.game.(interface{ Pieces() int }); ok {
		rec.Pieces = pc.Pieces()
	}
	if _, err := w.store.SaveGame(rec); err != nil {
		w.logger.Warn("cannot record game", "err", err)
	}
}

// Draw paints the game's screen buffer.
func (w *Window) Draw(dst *ebiten.Image) {
	dst.Fill(colornames.Black)
	w.screen.Clear()
	w.game.Render(w.screen)

	for y := range w.screen.Height() {
		for x := range w.screen.Width() {
			cell := w.screen.GetCell(x, y)
			drawCell(dst, cell, float32(x*cellW), float32(y*cellH))
		}
	}
}

// drawCell paints one screen cell. Blocks, the grid dot and box lines are
// drawn as shapes; other runes use the debug font, which has no color.
func drawCell(dst *ebiten.Image, cell core.Cell, px, py float32) {
	clr := paletteColor(cell.Color)
	const w, h = float32(cellW), float32(cellH)
	const midX, midY = w / 2, h / 2

	switch cell.Rune {
	case ' ', 0:
	case core.BlockRune:
		vector.FillRect(dst, px, py+1, w, h-2, clr, false)
	case '·':
		vector.FillRect(dst, px+midX-1, py+midY-1, 2, 2, clr, false)
	case '─':
		vector.FillRect(dst, px, py+midY, w, 1, clr, false)
	case '│':
		vector.FillRect(dst, px+midX, py, 1, h, clr, false)
	case '┌':
		vector.FillRect(dst, px+midX, py+midY, midX, 1, clr, false)
		vector.FillRect(dst, px+midX, py+midY, 1, midY, clr, false)
	case '┐':
		vector.FillRect(dst, px, py+midY, midX+1, 1, clr, false)
		vector.FillRect(dst, px+midX, py+midY, 1, midY, clr, false)
	case '└':
		vector.FillRect(dst, px+midX, py+midY, midX, 1, clr, false)
		vector.FillRect(dst, px+midX, py, 1, midY+1, clr, false)
	case '┘':
		vector.FillRect(dst, px, py+midY, midX+1, 1, clr, false)
		vector.FillRect(dst, px+midX, py, 1, midY+1, clr, false)
	default:
		ebitenutil.DebugPrintAt(dst, string(cell.Rune), int(px), int(py))
	}
}

// Layout keeps the logical screen at the buffer size; ebiten scales it.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.screen.Width() * cellW, w.screen.Height() * cellH
}

// Run opens the window and blocks until it is closed or the game quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	w := NewWindow(game, store, logger, cfg)
	logger.Info("session started", "game", game.ID(), "seed", cfg.Seed, "frontend", "gui")

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(cfg.ScreenW*cellW, cfg.ScreenH*cellH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	return ebiten.RunGame(w)
}
