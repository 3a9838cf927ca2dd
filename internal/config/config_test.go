package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML BlocksConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML(), &fromYAML))

	assert.Equal(t, DefaultBlocksConfig(), fromYAML)
	assert.NoError(t, fromYAML.Validate())
}

func TestLoadBlocksCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	data := []byte("gravity:\n  interval_ms: 250\nboard:\n  width: 12\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadBlocks(path)
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Gravity.IntervalMS)
	assert.Equal(t, 12, cfg.Board.Width)
	// Unspecified keys keep defaults
	assert.Equal(t, 20, cfg.Board.Height)
	assert.Equal(t, 0.4, cfg.Board.CollisionEpsilon)
	assert.Equal(t, []float64{-1, 1, -2, 2}, cfg.Kicks)
}

func TestLoadBlocksCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadBlocks(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board: [not, a, map"), 0o600))
	_, err = LoadBlocks(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("gravity:\n  interval_ms: 0\n"), 0o600))
	_, err = LoadBlocks(invalid)
	assert.ErrorContains(t, err, "interval_ms")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlocksConfig)
		ok     bool
	}{
		{"defaults", func(*BlocksConfig) {}, true},
		{"zero width", func(c *BlocksConfig) { c.Board.Width = 0 }, false},
		{"negative height", func(c *BlocksConfig) { c.Board.Height = -1 }, false},
		{"epsilon too large", func(c *BlocksConfig) { c.Board.CollisionEpsilon = 0.6 }, false},
		{"margin above epsilon", func(c *BlocksConfig) { c.Board.XMargin = 0.5 }, false},
		{"unknown preset", func(c *BlocksConfig) { c.Difficulty.Preset = "insane" }, false},
		{"empty preset", func(c *BlocksConfig) { c.Difficulty.Preset = "" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlocksConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestApplyBlocksPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected time.Duration
	}{
		{DifficultyEasy, 750 * time.Millisecond},
		{DifficultyNormal, 500 * time.Millisecond},
		{DifficultyHard, 250 * time.Millisecond},
		{DifficultyFixed, 500 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBlocksConfig()
			ApplyBlocksPreset(&cfg, tc.preset)
			assert.Equal(t, tc.expected, cfg.GravityInterval())
			assert.Equal(t, tc.preset, cfg.Difficulty.Preset)
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	cfg := DefaultBlocksConfig()
	cfg.Gravity.IntervalMS = 321

	data, err := Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := LoadBlocks(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
