// Package shooter implements the arcade shooter simulation: a rotating
// player square firing projectiles at randomly spawning targets.
//
// All game state lives in one State value owned by the caller. Each tick
// runs a fixed sequence of phases over it; nothing in this package keeps
// global state, so two States never interfere.
package shooter

import (
	"slices"

	"github.com/vovakirdan/square-shooter/internal/config"
	"github.com/vovakirdan/square-shooter/internal/core"
)

// StepResult summarizes what happened during one tick.
type StepResult struct {
	Tick        uint64 // Tick number, starting at 1
	Fired       int    // Projectiles created from input
	Spawned     bool   // Whether a target spawned
	Hits        int    // Projectile/target pairs destroyed
	Expired     int    // Projectiles removed for leaving the screen
	Projectiles int    // Live projectiles after the tick
	Targets     int    // Live targets after the tick
}

// State is the complete simulation state.
type State struct {
	cfg    config.Config
	rng    RandomSource
	radius float64

	player      Player
	projectiles []Projectile
	targets     []Target
	tick        uint64

	fb      *core.Framebuffer
	removed []bool // Per-projectile removal marks, reused across ticks
}

// NewState creates a simulation with the player centered on the display.
func NewState(cfg config.Config, rng RandomSource) *State {
	s := &State{
		cfg:    cfg,
		rng:    rng,
		radius: cfg.Target.Radius(cfg.Player.Size),
		fb:     core.NewFramebuffer(cfg.Display.Width, cfg.Display.Height),
	}
	s.Reset()
	return s
}

// Reset clears all entities and recenters the player.
func (s *State) Reset() {
	s.player = NewPlayer(float64(s.cfg.Display.Width)/2, float64(s.cfg.Display.Height)/2)
	s.projectiles = s.projectiles[:0]
	s.targets = s.targets[:0]
	s.tick = 0
	s.fb.Clear(core.Color(s.cfg.Colors.Background))
}

// Config returns the configuration the state was built with.
func (s *State) Config() config.Config {
	return s.cfg
}

// Player returns a copy of the player.
func (s *State) Player() Player {
	return s.player
}

// Projectiles returns the live projectiles in storage order.
func (s *State) Projectiles() []Projectile {
	return s.projectiles
}

// Targets returns the live targets in storage order.
func (s *State) Targets() []Target {
	return s.targets
}

// TickCount returns the number of ticks stepped since the last Reset.
func (s *State) TickCount() uint64 {
	return s.tick
}

// Framebuffer returns the buffer Render draws into.
func (s *State) Framebuffer() *core.Framebuffer {
	return s.fb
}

// Step advances the simulation by one tick: input, spawning, projectile
// movement, collision resolution and pruning, in that order.
func (s *State) Step(in core.InputFrame) StepResult {
	s.tick++
	res := StepResult{Tick: s.tick}

	res.Fired = s.applyInput(in)
	res.Spawned = s.spawnTarget()
	s.advanceProjectiles()
	res.Hits, res.Expired = s.resolveCollisions()
	s.prune()

	res.Projectiles = len(s.projectiles)
	res.Targets = len(s.targets)
	return res
}

// applyInput moves and rotates the player and fires at the cursor.
func (s *State) applyInput(in core.InputFrame) int {
	step := s.cfg.Player.MoveStep
	if in.Down(core.KeyW) {
		s.player.Move(0, -step)
	}
	if in.Down(core.KeyA) {
		s.player.Move(-step, 0)
	}
	if in.Down(core.KeyS) {
		s.player.Move(0, step)
	}
	if in.Down(core.KeyD) {
		s.player.Move(step, 0)
	}
	if in.Down(core.KeyLeft) {
		s.player.Rotate(-1, s.cfg.Player.RotationStep)
	}
	if in.Down(core.KeyRight) {
		s.player.Rotate(1, s.cfg.Player.RotationStep)
	}

	if !in.Fire {
		return 0
	}
	s.projectiles = append(s.projectiles, s.player.Fire(in.CursorX, in.CursorY, s.cfg.Projectile.Speed))
	return 1
}

// spawnTarget rolls once per tick and adds a target at a uniformly random
// pixel when the roll succeeds and the live count is below the cap.
// The roll is consumed even when the cap is reached.
func (s *State) spawnTarget() bool {
	roll := s.rng.Float64()
	if roll >= s.cfg.Target.SpawnChance || len(s.targets) >= s.cfg.Target.MaxLive {
		return false
	}
	x := s.rng.Intn(s.cfg.Display.Width)
	y := s.rng.Intn(s.cfg.Display.Height)
	s.targets = append(s.targets, NewTarget(float64(x), float64(y)))
	return true
}

func (s *State) advanceProjectiles() {
	for i := range s.projectiles {
		s.projectiles[i].Advance()
	}
}

// resolveCollisions marks projectiles for removal. A projectile off the
// screen expires; otherwise the first target in storage order within the
// collision radius is removed immediately, so later projectiles in the
// same tick no longer see it.
func (s *State) resolveCollisions() (hits, expired int) {
	s.removed = slices.Grow(s.removed[:0], len(s.projectiles))[:len(s.projectiles)]
	clear(s.removed)

	w, h := s.cfg.Display.Width, s.cfg.Display.Height
	for i, p := range s.projectiles {
		if p.OutOfBounds(w, h) {
			s.removed[i] = true
			expired++
			continue
		}
		for j, t := range s.targets {
			if Collides(p.X, p.Y, t.X, t.Y, s.radius) {
				s.removed[i] = true
				s.targets = slices.Delete(s.targets, j, j+1)
				hits++
				break
			}
		}
	}
	return hits, expired
}

// prune drops marked projectiles with a single filtering pass, keeping the
// survivors in their original order.
func (s *State) prune() {
	kept := s.projectiles[:0]
	for i, p := range s.projectiles {
		if !s.removed[i] {
			kept = append(kept, p)
		}
	}
	s.projectiles = kept
}

// Render clears the framebuffer and draws the player, projectiles and
// targets in that order.
func (s *State) Render() *core.Framebuffer {
	colors := s.cfg.Colors
	s.fb.Clear(core.Color(colors.Background))

	DrawPlayer(s.fb, int(s.player.X), int(s.player.Y), s.player.Angle, s.cfg.Player.Size, core.Color(colors.Player))
	for _, p := range s.projectiles {
		DrawProjectile(s.fb, int(p.X), int(p.Y), s.cfg.Projectile.Size, core.Color(colors.Projectile))
	}
	for _, t := range s.targets {
		DrawTarget(s.fb, int(t.X), int(t.Y), s.cfg.Target.Size, core.Color(colors.Target))
	}
	return s.fb
}
