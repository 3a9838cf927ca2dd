package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blocks"
	"github.com/vovakirdan/blockfall/internal/platform/gui"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagGUI  bool
	flagMenu bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to blocks.

Controls:
  Left/Right, A/D   - Move
  Up, W             - Rotate
  Down, S           - Soft drop
  Space             - Hard drop
  P                 - Pause
  R                 - Restart
  Tab               - Session scores (terminal only)
  Ctrl+S            - Copy the board to the clipboard (terminal only)
  Q/Ctrl+C (Esc)    - Quit

Difficulty options:
  easy   - Gravity interval x1.5
  normal - Gravity interval as configured
  hard   - Gravity interval x0.5
  fixed  - Gravity interval as configured, ignoring presets

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall play --config ./my-blocks.yaml
  blockfall play --gui
  blockfall play --menu`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Pick the difficulty from a menu before playing")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available games.")
		os.Exit(1)
	}

	gameCfg, preset, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && !flagGUI {
		width = w
		height = h
	}

	if flagMenu {
		chosen, ok, menuErr := tui.RunDifficultySelector(registry.Title(gameID), preset, width, height)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			os.Exit(1)
		}
		if !ok {
			return
		}
		preset = chosen
	}

	config.ApplyBlocksPreset(&gameCfg, preset)
	blocks.SetConfig(gameCfg)

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
	logger.Debug("config resolved",
		"preset", preset,
		"gravity", gameCfg.GravityInterval(),
		"board", fmt.Sprintf("%dx%d", gameCfg.Board.Width, gameCfg.Board.Height))

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// The scoreboard lives for this session only.
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("scoreboard unavailable", "err", err)
		store = nil
	}

	var runErr error
	if flagGUI {
		runErr = gui.Run(game, store, logger, cfg)
	} else {
		runErr = tui.Run(game, store, logger, cfg)
	}

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
