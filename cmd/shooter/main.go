// shooter is a minimal arcade shooter: move a square, aim with the mouse,
// shoot the targets that appear.
//
// Usage:
//
//	shooter                  - Play in a desktop window
//	shooter window           - Same as above
//	shooter term             - Play in the terminal
//	shooter headless         - Run a scripted session without a display
//	shooter config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.shooter/configs, ./configs)
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/square-shooter/internal/config"
	"github.com/vovakirdan/square-shooter/internal/shooter"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Square Shooter - shoot targets with a rotating square",
	Long: `Square Shooter is a small real-time arcade game. You control a square
that moves and rotates; click to fire at the cursor and hit the targets
that appear around the screen.

Controls:
  W/A/S/D      - Move
  Left/Right   - Rotate
  Mouse click  - Fire toward the cursor
  Esc          - Quit

Examples:
  shooter
  shooter term
  shooter headless --ticks 600 --seed 42
  shooter config > ~/.shooter/configs/shooter.yaml`,
	Run: runWindow,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("fps") {
		cfg.Runtime.TickRate = flagFPS
	}
	if cmd.Flags().Changed("seed") {
		cfg.Runtime.Seed = flagSeed
	}
	return cfg, cfg.Validate()
}

// newLogger creates the run logger, tagged with a fresh run id.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger.With("run", uuid.NewString())
}

// loopFactory builds the loop a surface drives.
func loopFactory(cfg config.Config, logger *log.Logger) func(shooter.Surface) *shooter.Loop {
	rc := cfg.RuntimeConfig()
	return func(s shooter.Surface) *shooter.Loop {
		logger.Debug("new game", "width", rc.ScreenW, "height", rc.ScreenH, "seed", rc.Seed)
		state := shooter.NewState(cfg, shooter.NewRandomSource(rc.Seed))
		return shooter.NewLoop(state, s, logger)
	}
}

// fatal logs err and exits.
func fatal(logger *log.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}
