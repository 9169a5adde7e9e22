package shooter

import (
	"math"

	"github.com/vovakirdan/square-shooter/internal/core"
)

// DrawPlayer draws a filled size×size square centered at (cx, cy) and
// rotated by angle. Every pixel in the rotated bounding box is mapped back
// through the inverse rotation and kept when it lands inside the unrotated
// square, so there are no holes at any angle. Pixels off the buffer are
// skipped.
func DrawPlayer(fb *core.Framebuffer, cx, cy int, angle float64, size int, c core.Color) {
	half := float64(size / 2)
	reach := int(math.Ceil(half*math.Sqrt2)) + 1

	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			u, v := core.InverseRotate(float64(dx), float64(dy), angle)
			if u < -half || u >= half || v < -half || v >= half {
				continue
			}
			fb.Set(cx+dx, cy+dy, c)
		}
	}
}

// DrawProjectile draws an axis-aligned projectile square.
func DrawProjectile(fb *core.Framebuffer, cx, cy, size int, c core.Color) {
	fb.FillRect(core.CenteredRect(cx, cy, size), c)
}

// DrawTarget draws an axis-aligned target square.
func DrawTarget(fb *core.Framebuffer, cx, cy, size int, c core.Color) {
	fb.FillRect(core.CenteredRect(cx, cy, size), c)
}
