package shooter

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestFireTowardPoint(t *testing.T) {
	p := NewPlayer(400, 300)
	proj := p.Fire(500, 300, 5.0)

	if proj.X != 400 || proj.Y != 300 {
		t.Errorf("projectile should start at player, got (%v, %v)", proj.X, proj.Y)
	}
	if !approx(proj.VX, 5.0) || !approx(proj.VY, 0) {
		t.Errorf("velocity = (%v, %v), expected (5, 0)", proj.VX, proj.VY)
	}
}

func TestFireLeavesPlayerUnchanged(t *testing.T) {
	p := Player{X: 10, Y: 20, Angle: 1.5}
	_ = p.Fire(0, 0, 5.0)

	if p != (Player{X: 10, Y: 20, Angle: 1.5}) {
		t.Errorf("Fire mutated the player: %+v", p)
	}
}

func TestFireProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(0, 800).Draw(t, "x")
		y := rapid.Float64Range(0, 600).Draw(t, "y")
		tx := rapid.Float64Range(-100, 900).Draw(t, "tx")
		ty := rapid.Float64Range(-100, 700).Draw(t, "ty")

		proj := NewPlayer(x, y).Fire(tx, ty, 5.0)

		if speed := math.Hypot(proj.VX, proj.VY); math.Abs(speed-5.0) > 1e-9 {
			t.Fatalf("speed = %v, expected 5", speed)
		}
		want := math.Atan2(ty-y, tx-x)
		if math.Abs(proj.VX/5.0-math.Cos(want)) > 1e-9 || math.Abs(proj.VY/5.0-math.Sin(want)) > 1e-9 {
			t.Fatalf("direction (%v, %v) does not match atan2 angle %v", proj.VX, proj.VY, want)
		}
	})
}

func TestAdvanceAddsVelocityExactly(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(-1000, 1000).Draw(t, "x")
		y := rapid.Float64Range(-1000, 1000).Draw(t, "y")
		vx := rapid.Float64Range(-10, 10).Draw(t, "vx")
		vy := rapid.Float64Range(-10, 10).Draw(t, "vy")

		p := NewProjectile(x, y, vx, vy)
		p.Advance()

		if p.X != x+vx || p.Y != y+vy {
			t.Fatalf("Advance() = (%v, %v), expected (%v, %v)", p.X, p.Y, x+vx, y+vy)
		}
		if p.VX != vx || p.VY != vy {
			t.Fatal("Advance() must not change velocity")
		}
	})
}

func TestAdvanceOffRightEdge(t *testing.T) {
	p := NewProjectile(799.9, 300, 5, 0)
	if p.OutOfBounds(800, 600) {
		t.Fatal("projectile at 799.9 should still be in bounds")
	}

	p.Advance()

	if !approx(p.X, 804.9) || p.Y != 300 {
		t.Errorf("position = (%v, %v), expected (804.9, 300)", p.X, p.Y)
	}
	if !p.OutOfBounds(800, 600) {
		t.Error("projectile at 804.9 should be out of bounds")
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"origin", 0, 0, false},
		{"center", 400, 300, false},
		{"just inside bottom-right", 799.999, 599.999, false},
		{"right edge (exclusive)", 800, 300, true},
		{"bottom edge (exclusive)", 400, 600, true},
		{"left of origin", -0.001, 300, true},
		{"above origin", 400, -0.001, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProjectile(tc.x, tc.y, 0, 0)
			if got := p.OutOfBounds(800, 600); got != tc.expected {
				t.Errorf("OutOfBounds(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCollides(t *testing.T) {
	tests := []struct {
		name     string
		px, py   float64
		tx, ty   float64
		expected bool
	}{
		{"same position", 100, 100, 100, 100, true},
		{"inside radius", 110, 100, 100, 100, true},
		{"just inside radius", 119.999, 100, 100, 100, true},
		{"exactly at radius", 120, 100, 100, 100, false},
		{"diagonal exactly at radius", 112, 116, 100, 100, false},
		{"far away", 500, 500, 100, 100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(tc.px, tc.py, tc.tx, tc.ty, 20); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPlayerMoveAndRotate(t *testing.T) {
	p := NewPlayer(400, 300)

	p.Move(1, 0)
	p.Move(0, -1)
	if p.X != 401 || p.Y != 299 {
		t.Errorf("position = (%v, %v), expected (401, 299)", p.X, p.Y)
	}

	for i := 0; i < 100; i++ {
		p.Rotate(1, 0.1)
	}
	if !approx(p.Angle, 10.0) {
		t.Errorf("angle = %v, expected 10 (no wrapping)", p.Angle)
	}

	p.Rotate(-1, 0.1)
	if !approx(p.Angle, 9.9) {
		t.Errorf("angle = %v, expected 9.9", p.Angle)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
