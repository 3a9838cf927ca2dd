// Package config provides YAML-based game configuration loading and
// difficulty presets for blockfall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BlocksConfig contains all configuration for the falling-block game.
// The core reads it once per session and never mutates it.
type BlocksConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Kicks      []float64        `yaml:"kicks"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield geometry.
type BoardConfig struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	CollisionEpsilon float64 `yaml:"collision_epsilon"` // Distance under which two cells are the same cell
	XMargin          float64 `yaml:"x_margin"`          // Tolerance below x = 0 still considered on board
}

// SpawnConfig defines where new pieces appear.
type SpawnConfig struct {
	Row float64 `yaml:"row"` // Vertical offset of the piece origin at spawn
}

// GravityConfig defines the automatic drop cadence.
type GravityConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// ScoringConfig defines points awarded per simultaneous line clear.
type ScoringConfig struct {
	Single int `yaml:"single"`
	Double int `yaml:"double"`
	Triple int `yaml:"triple"`
	Tetris int `yaml:"tetris"` // Four or more rows
}

// DifficultyConfig selects the gravity preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name yields DifficultyNormal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// GravityInterval returns the configured gravity interval as a duration.
func (c BlocksConfig) GravityInterval() time.Duration {
	return time.Duration(c.Gravity.IntervalMS) * time.Millisecond
}

// Validate reports configuration values the engine cannot run with.
func (c BlocksConfig) Validate() error {
	var errs []error
	if c.Board.Width <= 0 {
		errs = append(errs, fmt.Errorf("board.width must be positive, got %d", c.Board.Width))
	}
	if c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board.height must be positive, got %d", c.Board.Height))
	}
	if c.Board.CollisionEpsilon <= 0 || c.Board.CollisionEpsilon >= 0.5 {
		errs = append(errs, fmt.Errorf("board.collision_epsilon must be in (0, 0.5), got %g", c.Board.CollisionEpsilon))
	}
	if c.Board.XMargin < 0 || c.Board.XMargin >= c.Board.CollisionEpsilon {
		errs = append(errs, fmt.Errorf("board.x_margin must be in [0, collision_epsilon), got %g", c.Board.XMargin))
	}
	if c.Gravity.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("gravity.interval_ms must be positive, got %d", c.Gravity.IntervalMS))
	}
	if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid blocks config: %w", err)
	}
	return nil
}
