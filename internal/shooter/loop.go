package shooter

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/square-shooter/internal/core"
)

// Stats accumulates StepResults over the lifetime of a Loop.
type Stats struct {
	Ticks   uint64
	Fired   int
	Spawned int
	Hits    int
	Expired int
}

// Loop drives a State against a Surface, one frame per Tick.
type Loop struct {
	state   *State
	surface Surface
	logger  *log.Logger
	frame   core.InputFrame
	stats   Stats
}

// NewLoop creates a loop. A nil logger discards output.
func NewLoop(state *State, surface Surface, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		state:   state,
		surface: surface,
		logger:  logger,
		frame:   core.NewInputFrame(),
	}
}

// State returns the simulation state driven by the loop.
func (l *Loop) State() *State {
	return l.state
}

// Stats returns totals over every tick run so far.
func (l *Loop) Stats() Stats {
	return l.stats
}

// Running reports whether the loop should keep ticking: the surface is
// open, no close was requested and Escape is not held.
func (l *Loop) Running() bool {
	return l.surface.IsOpen() && !l.surface.ShouldQuit() && !l.surface.KeyDown(core.KeyEscape)
}

// Sample reads the surface into an input frame for the next tick.
// A missing cursor sample falls back to the origin.
func (l *Loop) Sample() core.InputFrame {
	l.frame.Clear()
	for _, k := range core.HeldKeys {
		if l.surface.KeyDown(k) {
			l.frame.Press(k)
		}
	}

	if l.surface.MouseButtonDown(core.MouseButtonLeft) {
		x, y, ok := l.surface.MousePosition()
		if !ok {
			x, y = 0, 0
		}
		cfg := l.state.Config().Display
		l.frame.Aim(
			core.ClampF(x, 0, float64(cfg.Width-1)),
			core.ClampF(y, 0, float64(cfg.Height-1)),
		)
	}
	return l.frame
}

// Tick runs one frame: sample input, step, render, present. It returns
// false without doing any work once the loop should stop. Present errors
// are returned wrapped; the frame is lost.
func (l *Loop) Tick() (bool, error) {
	if !l.Running() {
		return false, nil
	}

	res := l.state.Step(l.Sample())
	l.record(res)

	fb := l.state.Render()
	if err := l.surface.Present(fb.Pixels(), fb.Width(), fb.Height()); err != nil {
		return false, fmt.Errorf("shooter: present frame %d: %w", res.Tick, err)
	}
	return true, nil
}

// Run ticks until the loop stops, the context is canceled or a frame
// cannot be presented. With tickRate > 0 ticks are paced by a ticker;
// otherwise they run back to back and pacing is left to the surface.
func (l *Loop) Run(ctx context.Context, tickRate int) error {
	l.logger.Info("loop started", "width", l.state.fb.Width(), "height", l.state.fb.Height(), "tick_rate", tickRate)
	defer func() {
		l.logger.Info("loop stopped",
			"ticks", l.stats.Ticks,
			"fired", l.stats.Fired,
			"hits", l.stats.Hits,
			"expired", l.stats.Expired,
		)
	}()

	var pace <-chan time.Time
	if tickRate > 0 {
		t := time.NewTicker(time.Second / time.Duration(tickRate))
		defer t.Stop()
		pace = t.C
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ok, err := l.Tick()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if pace == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-pace:
		}
	}
}

func (l *Loop) record(res StepResult) {
	l.stats.Ticks++
	l.stats.Fired += res.Fired
	l.stats.Hits += res.Hits
	l.stats.Expired += res.Expired
	if res.Spawned {
		l.stats.Spawned++
		l.logger.Debug("target spawned", "tick", res.Tick, "targets", res.Targets)
	}
	if res.Hits > 0 {
		l.logger.Debug("targets hit", "tick", res.Tick, "hits", res.Hits, "targets", res.Targets)
	}
}
