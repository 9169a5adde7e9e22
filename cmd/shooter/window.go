package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/square-shooter/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play. This is also what running shooter
without a subcommand does.

Examples:
  shooter window
  shooter window --seed 7 --log-level debug`,
	Run: runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig(cmd)
	if err != nil {
		fatal(logger, "cannot load config", err)
	}

	wcfg := window.Config{
		Title:    cfg.Display.Title,
		Width:    cfg.Display.Width,
		Height:   cfg.Display.Height,
		Scale:    cfg.Display.Scale,
		TickRate: cfg.Runtime.TickRate,
	}
	logger.Info("opening window", "title", wcfg.Title, "width", wcfg.Width, "height", wcfg.Height)

	if err := window.Run(wcfg, loopFactory(cfg, logger)); err != nil {
		fatal(logger, "window stopped", err)
	}
}
