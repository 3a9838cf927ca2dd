package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the built-in configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Width:            10,
			Height:           20,
			CollisionEpsilon: 0.4,
			XMargin:          0.01,
		},
		Spawn: SpawnConfig{
			Row: 1,
		},
		Gravity: GravityConfig{
			IntervalMS: 500,
		},
		Scoring: ScoringConfig{
			Single: 100,
			Double: 300,
			Triple: 500,
			Tetris: 800,
		},
		Kicks: []float64{-1, 1, -2, 2},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBlocksYAML
}
