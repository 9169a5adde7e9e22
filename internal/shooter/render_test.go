package shooter

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/square-shooter/internal/config"
	"github.com/vovakirdan/square-shooter/internal/core"
)

func TestDrawPlayerAxisAligned(t *testing.T) {
	fb := core.NewFramebuffer(800, 600)
	DrawPlayer(fb, 400, 300, 0, 40, core.ColorRed)

	if got := fb.Count(core.ColorRed); got != 40*40 {
		t.Errorf("red pixels = %d, expected %d", got, 40*40)
	}
	// Footprint spans [380, 420) x [280, 320)
	corners := []struct {
		x, y int
		red  bool
	}{
		{380, 280, true},
		{419, 319, true},
		{379, 300, false},
		{420, 300, false},
		{400, 279, false},
		{400, 320, false},
	}
	for _, c := range corners {
		if got := fb.At(c.x, c.y) == core.ColorRed; got != c.red {
			t.Errorf("pixel (%d, %d) red = %v, expected %v", c.x, c.y, got, c.red)
		}
	}
}

func TestDrawPlayerClipsAtOrigin(t *testing.T) {
	fb := core.NewFramebuffer(800, 600)

	DrawPlayer(fb, 0, 0, 0, 40, core.ColorRed)

	// Only the bottom-right quarter is on canvas
	if got := fb.Count(core.ColorRed); got != 20*20 {
		t.Errorf("red pixels = %d, expected %d", got, 20*20)
	}
	if fb.At(19, 19) != core.ColorRed || fb.At(20, 20) == core.ColorRed {
		t.Error("visible quarter should cover [0, 20) x [0, 20)")
	}
}

func TestDrawPlayerRotated(t *testing.T) {
	fb := core.NewFramebuffer(800, 600)
	DrawPlayer(fb, 400, 300, math.Pi/4, 40, core.ColorRed)

	got := fb.Count(core.ColorRed)
	if got < 1440 || got > 1760 {
		t.Errorf("rotated square covers %d pixels, expected about 1600", got)
	}
	if fb.At(400, 300) != core.ColorRed {
		t.Error("center pixel should be filled")
	}
	// A diamond reaches further along the axes than the unrotated square
	if fb.At(400+24, 300) != core.ColorRed {
		t.Error("rotated square should extend past the unrotated edge on the x axis")
	}
	// and no longer covers the unrotated corner
	if fb.At(381, 281) == core.ColorRed {
		t.Error("rotated square should not cover the unrotated corner")
	}
}

func TestDrawPlayerNeverFaults(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fb := core.NewFramebuffer(800, 600)
		x := rapid.IntRange(-200, 1000).Draw(t, "x")
		y := rapid.IntRange(-200, 800).Draw(t, "y")
		angle := rapid.Float64Range(-100, 100).Draw(t, "angle")

		DrawPlayer(fb, x, y, angle, 40, core.ColorRed)

		if got := fb.Count(core.ColorRed); got > 2*40*40 {
			t.Fatalf("drew %d pixels for a 40x40 square", got)
		}
	})
}

func TestDrawProjectileAndTarget(t *testing.T) {
	fb := core.NewFramebuffer(800, 600)

	DrawProjectile(fb, 100, 100, 4, core.ColorGreen)
	if got := fb.Count(core.ColorGreen); got != 16 {
		t.Errorf("projectile pixels = %d, expected 16", got)
	}
	if fb.At(98, 98) != core.ColorGreen || fb.At(101, 101) != core.ColorGreen || fb.At(102, 102) == core.ColorGreen {
		t.Error("projectile should cover [98, 102) x [98, 102)")
	}

	DrawTarget(fb, 300, 300, 20, core.ColorBlue)
	if got := fb.Count(core.ColorBlue); got != 400 {
		t.Errorf("target pixels = %d, expected 400", got)
	}

	DrawTarget(fb, 799, 599, 20, core.ColorBlue)
	if got := fb.Count(core.ColorBlue); got != 400+11*11 {
		t.Errorf("target pixels = %d after clipped draw, expected %d", got, 400+11*11)
	}
}

func TestStateRender(t *testing.T) {
	s := newQuietState()
	s.projectiles = append(s.projectiles, NewProjectile(100.7, 100.2, 0, 0))
	s.targets = append(s.targets, NewTarget(600, 100))

	fb := s.Render()

	if got := fb.Count(core.ColorRed); got != 1600 {
		t.Errorf("player pixels = %d, expected 1600", got)
	}
	if got := fb.Count(core.ColorGreen); got != 16 {
		t.Errorf("projectile pixels = %d, expected 16", got)
	}
	// Fractional positions truncate: 100.7 draws from 98
	if fb.At(98, 98) != core.ColorGreen {
		t.Error("projectile position should truncate toward zero")
	}
	if got := fb.Count(core.ColorBlue); got != 400 {
		t.Errorf("target pixels = %d, expected 400", got)
	}
	want := 800*600 - 1600 - 16 - 400
	if got := fb.Count(core.ColorBlack); got != want {
		t.Errorf("background pixels = %d, expected %d", got, want)
	}
}

func TestStateRenderClearsPreviousFrame(t *testing.T) {
	s := newQuietState()
	in := core.NewInputFrame()
	in.Press(core.KeyD)

	s.Render()
	for i := 0; i < 50; i++ {
		s.Step(in)
	}
	fb := s.Render()

	if got := fb.Count(core.ColorRed); got != 1600 {
		t.Errorf("player pixels = %d after moving, expected 1600 (stale pixels left behind?)", got)
	}
	if fb.At(380, 300) == core.ColorRed {
		t.Error("old player position should be cleared")
	}
}

func TestStateRenderUsesConfiguredColors(t *testing.T) {
	cfg := config.Default()
	cfg.Colors.Background = 0x101010
	s := NewState(cfg, &scriptedSource{})

	fb := s.Render()
	if fb.At(0, 0) != core.Color(0x101010) {
		t.Errorf("background = %#x, expected 0x101010", uint32(fb.At(0, 0)))
	}
}
