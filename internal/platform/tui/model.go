package tui

import (
	"io"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

const statusTicks = 90 // How long a status message stays up, in ticks

// resizer is implemented by games that lay out against the screen size.
type resizer interface {
	Resize(w, h int)
}

// pieceCounter is implemented by games that count locked pieces.
type pieceCounter interface {
	Pieces() int
}

// boardTexter is implemented by games that can export their board as text.
type boardTexter interface {
	BoardText() string
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	scoreboard Scoreboard
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	showScores bool
	autoPaused bool // The scoreboard paused the game
	quitting   bool
	scoreSaved bool // Whether the current game over has been recorded
	status     string
	statusLeft int

	writeClipboard func(string) error
}

// NewModel creates a new Bubble Tea model for the given game. A nil
// store disables the scoreboard and a nil logger discards output.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:           game,
		screen:         core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		store:          store,
		logger:         logger,
		config:         cfg,
		keys:           DefaultKeyMap(),
		help:           h,
		scoreboard:     NewScoreboard(store, game.ID(), game.Title(), cfg.ScreenW, cfg.ScreenH),
		inputFrame:     core.NewInputFrame(),
		started:        time.Now(),
		writeClipboard: clipboard.WriteAll,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Game actions are buffered until
// the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "high", m.gameState.HighScore)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Copy):
		m.copyBoard()
		return m, nil
	case key.Matches(msg, m.keys.Scores):
		return m.toggleScores(), nil
	}

	if m.showScores {
		var cmd tea.Cmd
		m.scoreboard, cmd = m.scoreboard.Update(msg)
		return m, cmd
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// toggleScores switches between the board and the session scoreboard.
// The game is paused while the scoreboard is up.
func (m Model) toggleScores() Model {
	m.showScores = !m.showScores
	if m.showScores {
		if err := m.scoreboard.Refresh(); err != nil {
			m.logger.Warn("scoreboard unavailable", "err", err)
		}
		if !m.gameState.Paused && !m.gameState.GameOver {
			m.inputFrame.Set(core.ActionPause)
			m.autoPaused = true
		}
	} else if m.autoPaused {
		// Both toggles in one frame cancel out.
		if m.inputFrame.Has(core.ActionPause) {
			m.inputFrame.Unset(core.ActionPause)
		} else {
			m.inputFrame.Set(core.ActionPause)
		}
		m.autoPaused = false
	}
	return m
}

// handleResize keeps the game running at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	// The last row holds the help line.
	m.screen.Resize(msg.Width, max(0, msg.Height-1))
	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, max(0, msg.Height-1))
	}
	m.scoreboard.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the simulation once with the buffered input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Locked {
		m.logger.Debug("piece locked", "cleared", result.Cleared, "score", result.State.Score)
	}
	if wasOver && !m.gameState.GameOver {
		m.logger.Info("restart", "high", m.gameState.HighScore)
		m.scoreSaved = false
		m.started = time.Now()
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.recordGame()
		m.scoreSaved = true
	}

	if m.statusLeft > 0 {
		m.statusLeft--
		if m.statusLeft == 0 {
			m.status = ""
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// recordGame stores the finished game. Failures are logged and play goes on.
func (m *Model) recordGame() {
	rec := storage.GameRecord{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Lines:    m.gameState.Lines,
		Duration: time.Since(m.started),
	}
	if pc, ok := m.game.(pieceCounter); ok {
		rec.Pieces = pc.Pieces()
	}
	m.logger.Info("game over", "score", rec.Score, "lines", rec.Lines, "pieces", rec.Pieces, "duration", rec.Duration.Round(time.Second))

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveGame(rec); err != nil {
		m.logger.Warn("cannot record game", "err", err)
	}
}

// copyBoard puts the board on the system clipboard as plain text.
func (m *Model) copyBoard() {
	var text string
	if bt, ok := m.game.(boardTexter); ok {
		text = bt.BoardText()
	} else {
		m.game.Render(m.screen)
		text = m.screen.String()
	}

	if err := m.writeClipboard(text); err != nil {
		m.logger.Warn("clipboard unavailable", "err", err)
		m.setStatus("clipboard unavailable")
		return
	}
	m.setStatus("board copied to clipboard")
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = statusTicks
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.showScores {
		body = m.scoreboard.View()
	} else {
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
	}

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status
	}
	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return body + "\n" + footerStyle.Render(footer)
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
