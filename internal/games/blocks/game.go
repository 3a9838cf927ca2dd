// Package blocks implements the falling-block puzzle game. Pieces are block
// patterns placed by affine transforms and the board decides occupancy by
// distance in continuous space.
package blocks

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

const (
	gameID       = "blocks"
	rotationStep = 90.0
)

// Phase is the controller state.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseActive
	PhaseLocking
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseActive:
		return "active"
	case PhaseLocking:
		return "locking"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// sessionConfig is used by games created through the registry.
var sessionConfig = config.DefaultBlocksConfig()

// SetConfig sets the configuration for games created through the registry.
func SetConfig(cfg config.BlocksConfig) {
	sessionConfig = cfg
}

func init() {
	registry.Register(gameID, func() registry.Game {
		return New(sessionConfig)
	})
}

// Game is the controller. It owns the board and the current and next
// pieces, and routes every move through Board.CanPlace before committing.
type Game struct {
	cfg     config.BlocksConfig
	rng     *rand.Rand
	catalog *Catalog
	board   *Board
	current *Piece
	next    *Piece
	phase   Phase
	paused  bool

	tick           uint64
	tickRate       int
	gravityTicks   int // Ticks between gravity steps
	gravityCounter int
	pieces         int // Pieces locked in the current game

	// Per-step events reported through StepResult
	stepLocked  bool
	stepCleared int

	screenW int
	screenH int
}

// New creates a game with the given configuration. Call Reset before use.
func New(cfg config.BlocksConfig) *Game {
	return &Game{
		cfg:   cfg,
		board: NewBoard(cfg),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset starts a new session. The random source is seeded once here.
// The board's high score survives.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.catalog = NewCatalog(g.rng)
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.gravityTicks = gravityTicks(g.cfg.GravityInterval().Seconds(), g.tickRate)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.next = nil
	g.Restart()
}

// gravityTicks converts an interval in seconds to a whole number of ticks.
func gravityTicks(seconds float64, tickRate int) int {
	return max(1, int(math.Round(seconds*float64(tickRate))))
}

// Resize updates the screen dimensions used for rendering.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Restart clears the board, draws a fresh next piece and spawns.
func (g *Game) Restart() {
	g.board.Reset()
	g.paused = false
	g.gravityCounter = 0
	g.pieces = 0
	g.next = g.catalog.Random()
	g.spawn()
}

// spawn promotes the next piece to current at the spawn point and draws a
// new next piece. A spawn that cannot be placed ends the game.
func (g *Game) spawn() {
	g.phase = PhaseSpawning
	if g.next == nil {
		g.current = g.catalog.Random()
	} else {
		g.current = g.next
	}
	g.current.ResetTransform()
	g.current.Translate(float64(g.board.Width())/2, g.cfg.Spawn.Row)

	g.next = g.catalog.Random()

	if !g.board.CanPlace(g.current) {
		g.board.SetGameOver(true)
		g.phase = PhaseGameOver
		return
	}
	g.phase = PhaseActive
}

// Move shifts the current piece by (dx, dy) if the result is legal.
func (g *Game) Move(dx, dy float64) bool {
	candidate := g.current.Clone()
	candidate.Translate(dx, dy)
	return g.commit(candidate)
}

// MoveLeft shifts the current piece one column left.
func (g *Game) MoveLeft() bool {
	return g.Move(-1, 0)
}

// MoveRight shifts the current piece one column right.
func (g *Game) MoveRight() bool {
	return g.Move(1, 0)
}

// Rotate turns the current piece a quarter turn. When the turned piece
// does not fit, the configured horizontal kicks are tried in order on
// top of the rotation and the first that fits wins.
func (g *Game) Rotate() bool {
	rotated := g.current.Clone()
	rotated.Rotate(rotationStep)
	if g.commit(rotated) {
		return true
	}

	for _, dx := range g.cfg.Kicks {
		kicked := rotated.Clone()
		kicked.Translate(dx, 0)
		if g.commit(kicked) {
			return true
		}
	}
	return false
}

func (g *Game) commit(candidate *Piece) bool {
	if !g.board.CanPlace(candidate) {
		return false
	}
	g.current = candidate
	return true
}

// SoftDrop moves the current piece down one row. When it cannot move,
// the piece locks, full rows clear and the next piece spawns.
func (g *Game) SoftDrop() {
	if g.board.GameOver() {
		return
	}
	if g.Move(0, 1) {
		return
	}
	g.lockAndSpawn()
}

// HardDrop drops the current piece as far as it goes and locks it.
func (g *Game) HardDrop() {
	if g.board.GameOver() {
		return
	}
	landed := g.current.Clone()
	for {
		candidate := landed.Clone()
		candidate.Translate(0, 1)
		if !g.board.CanPlace(candidate) {
			break
		}
		landed = candidate
	}
	g.current = landed
	g.lockAndSpawn()
}

// Tick applies one step of gravity.
func (g *Game) Tick() {
	g.SoftDrop()
}

func (g *Game) lockAndSpawn() {
	g.phase = PhaseLocking
	g.board.Lock(g.current)
	g.pieces++
	g.stepLocked = true
	g.stepCleared += g.board.ClearLines()
	g.spawn()
}

// Step advances the game by one tick. Inputs are applied in a fixed
// order before gravity.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.stepLocked = false
	g.stepCleared = 0

	if in.Has(core.ActionRestart) {
		g.Restart()
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.board.GameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if in.Has(core.ActionLeft) {
		g.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.MoveRight()
	}
	if in.Has(core.ActionRotate) {
		g.Rotate()
	}
	if in.Has(core.ActionSoftDrop) {
		g.SoftDrop()
	}
	if in.Has(core.ActionHardDrop) {
		g.HardDrop()
		g.gravityCounter = 0
	}

	g.gravityCounter++
	if g.gravityCounter >= g.gravityTicks {
		g.gravityCounter = 0
		g.Tick()
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:   g.State(),
		Locked:  g.stepLocked,
		Cleared: g.stepCleared,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.board.Score(),
		HighScore: g.board.HighScore(),
		Lines:     g.board.Lines(),
		GameOver:  g.board.GameOver(),
		Paused:    g.paused,
	}
}

// Phase returns the controller state.
func (g *Game) Phase() Phase { return g.phase }

// Board returns the board for read access.
func (g *Game) Board() *Board { return g.board }

// LockedBlocks returns the settled blocks.
func (g *Game) LockedBlocks() []LockedBlock { return g.board.LockedBlocks() }

// CurrentCells returns the board positions of the falling piece.
func (g *Game) CurrentCells() []core.Vec2 { return g.current.WorldPositions() }

// CurrentColor returns the color of the falling piece.
func (g *Game) CurrentColor() core.Color { return g.current.Color() }

// NextPattern returns the shape that spawns next.
func (g *Game) NextPattern() *Pattern { return g.next.Pattern() }

// Score returns the current score.
func (g *Game) Score() int { return g.board.Score() }

// HighScore returns the session best.
func (g *Game) HighScore() int { return g.board.HighScore() }

// Lines returns the rows cleared this game.
func (g *Game) Lines() int { return g.board.Lines() }

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool { return g.board.GameOver() }

// Pieces returns how many pieces were locked this game.
func (g *Game) Pieces() int { return g.pieces }
