package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
)

func withFlags(t *testing.T, cfgPath, difficulty string) {
	t.Helper()
	oldCfg, oldDiff := flagConfig, flagDifficulty
	flagConfig, flagDifficulty = cfgPath, difficulty
	t.Cleanup(func() { flagConfig, flagDifficulty = oldCfg, oldDiff })
}

func TestLoadConfigFlagPresetWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("difficulty:\n  preset: easy\n"), 0o600))

	withFlags(t, path, "")
	_, preset, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.DifficultyEasy, preset)

	withFlags(t, path, "hard")
	cfg, preset, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.DifficultyHard, preset)
	assert.Equal(t, 500, cfg.Gravity.IntervalMS, "preset is not applied by loadConfig")
}

func TestLoadConfigRejectsUnknownPreset(t *testing.T) {
	withFlags(t, "", "brutal")
	_, _, err := loadConfig()
	assert.Error(t, err)
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.log")

	logger, closeLog, err := newLogger(path, true)
	require.NoError(t, err)
	logger.Debug("piece locked", "cleared", 2)
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "piece locked"))
}

func TestNewLoggerWithoutFile(t *testing.T) {
	logger, closeLog, err := newLogger("", false)
	require.NoError(t, err)
	logger.Info("discarded")
	assert.NoError(t, closeLog())
}

func TestNewLoggerBadPath(t *testing.T) {
	_, closeLog, err := newLogger(filepath.Join(t.TempDir(), "missing", "x.log"), false)
	assert.Error(t, err)
	assert.NotNil(t, closeLog)
}
