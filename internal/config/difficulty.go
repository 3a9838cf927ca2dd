package config

// gravityFactor scales the configured gravity interval for a preset.
// Larger factors mean slower falling pieces.
func gravityFactor(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.5
	default:
		return 1.0
	}
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
// The interval is resolved once here; the game never changes it while running.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	if preset == DifficultyFixed {
		return
	}
	interval := int(float64(cfg.Gravity.IntervalMS) * gravityFactor(preset))
	cfg.Gravity.IntervalMS = max(interval, 1)
}
