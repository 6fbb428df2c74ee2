package sim

import (
	"fmt"
	"image/color"
)

// ProjectileShape only changes how a projectile is drawn; physics and
// collision always treat it as a circle of Radius.
type ProjectileShape int

const (
	ShapeRound ProjectileShape = iota
	ShapeOval
)

// settleSpeed2 is the squared speed below which a projectile near the floor
// is retired.
const settleSpeed2 = 2 * 2

// Projectile is a launched ball. It is owned by the Manager's projectile list
// and removed the tick it settles.
type Projectile struct {
	ID     int
	Owner  int // launcher index
	Pos    Vec2
	Vel    Vec2
	Radius float64
	Shape  ProjectileShape
	Size   Vec2 // oval bounding box, drawing only
	Color  color.RGBA
	Alive  bool
}

// NewProjectile builds a live projectile. A non-positive radius is a
// programming error.
func NewProjectile(id int, pos, vel Vec2, radius float64) *Projectile {
	if radius <= 0 {
		panic(fmt.Sprintf("sim: projectile radius %g must be positive", radius))
	}
	return &Projectile{
		ID:     id,
		Pos:    pos,
		Vel:    vel,
		Radius: radius,
		Size:   Vec2{radius * 2, radius * 2},
		Alive:  true,
	}
}

// Advance runs one Euler step: gravity is added to the vertical velocity,
// the position moves by velocity*dt, walls are applied and the settle rule is
// checked.
func (p *Projectile) Advance(dt, gravity float64, bounds Vec2, rest Restitution) {
	if !p.Alive {
		return
	}
	p.Vel.Y += gravity * dt
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.ReflectOffBounds(bounds, rest)
	if p.Vel.Len2() < settleSpeed2 && p.Pos.Y > bounds.Y-2*p.Radius {
		p.Alive = false
	}
}

// ReflectOffBounds keeps the projectile inside [Radius, bound-Radius] on each
// axis. On contact the velocity into the wall is negated and scaled by
// rest.Orthogonal, the other component scaled by rest.Parallel, both
// truncated toward zero. Axes are handled independently, so a corner hit
// damps twice.
func (p *Projectile) ReflectOffBounds(bounds Vec2, rest Restitution) {
	for i := 0; i < 2; i++ {
		lo := p.Radius
		hi := bounds.Axis(i) - p.Radius
		c := p.Pos.Axis(i)
		switch {
		case c < lo:
			p.Pos = p.Pos.WithAxis(i, lo)
		case c > hi:
			p.Pos = p.Pos.WithAxis(i, hi)
		default:
			continue
		}
		p.Vel = p.Vel.WithAxis(i, -trunc(p.Vel.Axis(i)*rest.Orthogonal))
		p.Vel = p.Vel.WithAxis(1-i, trunc(p.Vel.Axis(1-i)*rest.Parallel))
	}
}

// Speed2 returns the squared speed.
func (p *Projectile) Speed2() float64 { return p.Vel.Len2() }
