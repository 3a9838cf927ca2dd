package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the way 'play' does and prints it as YAML,
followed by the gravity interval the difficulty preset resolves to.
Redirect it to a file to start a custom config:

  blockfall config > ~/.blockfall/configs/blocks.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, preset, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Difficulty.Preset = preset

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))

	config.ApplyBlocksPreset(&cfg, preset)
	fmt.Printf("# effective gravity interval: %s\n", cfg.GravityInterval())
}

// loadConfig reads the game config named by --config and picks the
// difficulty preset. A preset given on the command line wins over the
// file's preset. The preset is not applied yet.
func loadConfig() (config.BlocksConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return config.BlocksConfig{}, "", err
	}

	preset := cfg.Difficulty.Preset
	if flagDifficulty != "" {
		preset, err = config.ParsePreset(flagDifficulty)
		if err != nil {
			return config.BlocksConfig{}, "", err
		}
	}
	return cfg, preset, nil
}
