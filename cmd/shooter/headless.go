package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/square-shooter/internal/platform/headless"
)

var (
	flagTicks     uint64
	flagFireEvery int
	flagRealtime  bool
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run a scripted session without a display",
	Long: `Run the simulation against an in-memory surface. The player rotates
clockwise and fires at a sweeping cursor every --fire-every ticks. Totals
are logged when the run ends.

Examples:
  shooter headless
  shooter headless --ticks 3600 --seed 42
  shooter headless --fire-every 5 --realtime --log-level debug`,
	Run: runHeadless,
}

func init() {
	headlessCmd.Flags().Uint64Var(&flagTicks, "ticks", 600, "Number of ticks to run")
	headlessCmd.Flags().IntVar(&flagFireEvery, "fire-every", 15, "Fire once every N ticks (0 = never)")
	headlessCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks at the tick rate instead of running flat out")
}

func runHeadless(cmd *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig(cmd)
	if err != nil {
		fatal(logger, "cannot load config", err)
	}

	surface, err := headless.New(headless.Config{
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
		Frames: flagTicks,
		Script: headless.Sweep(cfg.Display.Width, cfg.Display.Height, flagFireEvery),
	})
	if err != nil {
		fatal(logger, "cannot create surface", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tickRate := 0
	if flagRealtime {
		tickRate = cfg.Runtime.TickRate
	}

	loop := loopFactory(cfg, logger)(surface)
	if err := loop.Run(ctx, tickRate); err != nil && !errors.Is(err, context.Canceled) {
		stop()
		fatal(logger, "run failed", err)
	}

	stats := loop.Stats()
	logger.Info("session finished",
		"frames", surface.Frames(),
		"spawned", stats.Spawned,
		"fired", stats.Fired,
		"hits", stats.Hits,
		"expired", stats.Expired,
		"targets", len(loop.State().Targets()),
	)
}
