package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/square-shooter/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, as YAML, after the config
search and any --fps or --seed flags are applied. The output is a valid
config file.

Config search order:
  1. --config path
  2. ~/.shooter/configs/shooter.yaml
  3. ./configs/shooter.yaml
  4. Built-in defaults

Examples:
  shooter config
  shooter config --config ./my-shooter.yaml
  shooter config > ~/.shooter/configs/shooter.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig(cmd)
	if err != nil {
		fatal(logger, "cannot load config", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fatal(logger, "cannot encode config", err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		fatal(logger, "cannot write config", err)
	}
}
