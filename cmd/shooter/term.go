package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/square-shooter/internal/platform/tui"
)

var flagLogFile string

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play inside the terminal. Frames are drawn with half-block characters,
so a truecolor terminal with mouse support works best.

Terminals only report key presses, not releases: a key counts as held for
terminal.hold_ticks frames after its last press. Space fires at the last
known cursor position.

Controls:
  W/A/S/D      - Move
  Left/Right   - Rotate
  Click/Space  - Fire
  Esc          - Quit
  Q/Ctrl+C     - Force quit

Examples:
  shooter term
  shooter term --log-file shooter.log --log-level debug`,
	Run: runTerm,
}

func init() {
	termCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
}

func runTerm(cmd *cobra.Command, _ []string) {
	// Logs would draw over the alternate screen.
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatal(newLogger(os.Stderr), "cannot open log file", err)
		}
		defer f.Close()
		out = f
	}
	logger := newLogger(out)

	cfg, err := loadConfig(cmd)
	if err != nil {
		fatal(newLogger(os.Stderr), "cannot load config", err)
	}

	// Get terminal size early; the program corrects it on the first resize.
	cols, rows := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cols = w
		rows = h
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tcfg := tui.Config{
		Title:     cfg.Display.Title,
		Width:     cfg.Display.Width,
		Height:    cfg.Display.Height,
		Cols:      cols,
		Rows:      rows,
		HoldTicks: cfg.Terminal.HoldTicks,
		TickRate:  cfg.Runtime.TickRate,
	}
	if err := tui.Run(ctx, tcfg, loopFactory(cfg, logger)); err != nil {
		stop()
		fatal(newLogger(os.Stderr), "terminal stopped", err)
	}
}
