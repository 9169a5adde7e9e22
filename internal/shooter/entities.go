package shooter

import "github.com/vovakirdan/square-shooter/internal/core"

// Player is the controllable square. Angle is in radians and is never
// wrapped; trigonometry takes care of it.
type Player struct {
	X, Y  float64
	Angle float64
}

// NewPlayer creates a player at (x, y) facing angle 0.
func NewPlayer(x, y float64) Player {
	return Player{X: x, Y: y}
}

// Move translates the player. Each axis is applied independently, so a
// diagonal move covers more distance than a straight one.
func (p *Player) Move(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

// Rotate turns the player by step radians in the given direction
// (-1 counter-clockwise, +1 clockwise on screen).
func (p *Player) Rotate(direction int, step float64) {
	p.Angle += float64(direction) * step
}

// Fire returns a projectile leaving the player's position toward
// (targetX, targetY) at the given speed. The player is not modified.
func (p Player) Fire(targetX, targetY, speed float64) Projectile {
	angle := core.Heading(p.X, p.Y, targetX, targetY)
	vx, vy := core.VelocityFromAngle(angle, speed)
	return NewProjectile(p.X, p.Y, vx, vy)
}

// Projectile travels in a straight line at a constant velocity.
type Projectile struct {
	X, Y   float64
	VX, VY float64
}

// NewProjectile creates a projectile at (x, y) with velocity (vx, vy).
func NewProjectile(x, y, vx, vy float64) Projectile {
	return Projectile{X: x, Y: y, VX: vx, VY: vy}
}

// Advance moves the projectile by one tick of velocity.
func (p *Projectile) Advance() {
	p.X += p.VX
	p.Y += p.VY
}

// OutOfBounds reports whether the projectile left [0, width) x [0, height).
func (p Projectile) OutOfBounds(width, height int) bool {
	return p.X < 0 || p.X >= float64(width) || p.Y < 0 || p.Y >= float64(height)
}

// Target is a stationary square that projectiles destroy.
type Target struct {
	X, Y float64
}

// NewTarget creates a target at (x, y).
func NewTarget(x, y float64) Target {
	return Target{X: x, Y: y}
}

// Collides reports whether a projectile at (px, py) strikes a target at
// (tx, ty). The comparison is strict: a hit at exactly radius misses.
func Collides(px, py, tx, ty, radius float64) bool {
	return core.Distance(px, py, tx, ty) < radius
}
