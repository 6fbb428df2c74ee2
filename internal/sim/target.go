package sim

import (
	"fmt"
	"image/color"
	"math"
)

// ShapeKind selects the collision predicate and how a target is drawn.
type ShapeKind int

const (
	Circle ShapeKind = iota
	Ellipse
	Rectangle
	Polygon
)

func (k ShapeKind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Ellipse:
		return "ellipse"
	case Rectangle:
		return "rectangle"
	case Polygon:
		return "polygon"
	}
	return fmt.Sprintf("shape(%d)", int(k))
}

// MotionKind selects the per-tick motion rule.
type MotionKind int

const (
	// Static targets never move.
	Static MotionKind = iota
	// Drift adds a fixed velocity every tick with no wall handling; drifting
	// targets can leave the field.
	Drift
	// Orbit walks a rectangle around the start position: right, down, left, up.
	Orbit
	// Bounce travels along one cardinal direction and reverses at the walls.
	Bounce
	// Heading travels along an angle and mirrors it near the walls.
	Heading
)

func (k MotionKind) String() string {
	switch k {
	case Static:
		return "static"
	case Drift:
		return "drift"
	case Orbit:
		return "orbit"
	case Bounce:
		return "bounce"
	case Heading:
		return "heading"
	}
	return fmt.Sprintf("motion(%d)", int(k))
}

// Cardinal is a travel direction for Bounce targets.
type Cardinal int

const (
	Left Cardinal = iota
	Right
	Up
	Down
)

func (c Cardinal) opposite() Cardinal {
	switch c {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	}
	return Up
}

// Orbit phases, in visiting order.
const (
	orbitRight = iota
	orbitDown
	orbitLeft
	orbitUp
)

// Default motion speeds, pixels per tick.
const (
	orbitSpeed   = 5
	bounceSpeed  = 2
	headingSpeed = 1
	driftMax     = 2
)

// Target is every target variant in one record. Shape and Motion pick the
// rules; fields a variant does not use stay zero.
//
// Extents by shape:
//
//	Circle     Radius
//	Ellipse    Radius, Size = (2r, 4r) bounding box
//	Rectangle  Size = (w, h)
//	Polygon    Size.X = circumradius, Sides
type Target struct {
	ID     int
	Shape  ShapeKind
	Motion MotionKind
	Pos    Vec2
	Color  color.RGBA

	Radius float64
	Size   Vec2
	Sides  int

	Speed float64
	Vel   Vec2     // Drift
	Dir   Cardinal // Bounce
	Angle float64  // Heading
	Phase int      // Orbit
	Start Vec2     // Orbit
}

// NewCircle returns a static circle target.
func NewCircle(id int, pos Vec2, radius float64) *Target {
	t := &Target{ID: id, Shape: Circle, Pos: pos, Radius: radius}
	t.mustBeValid()
	return t
}

// NewEllipse returns a static ellipse whose bounding box is 2r wide and 4r tall.
func NewEllipse(id int, pos Vec2, radius float64) *Target {
	t := &Target{ID: id, Shape: Ellipse, Pos: pos, Radius: radius, Size: Vec2{radius * 2, radius * 4}}
	t.mustBeValid()
	return t
}

// NewRectangle returns a static axis-aligned rectangle centred on pos.
func NewRectangle(id int, pos Vec2, w, h float64) *Target {
	t := &Target{ID: id, Shape: Rectangle, Pos: pos, Size: Vec2{w, h}}
	t.mustBeValid()
	return t
}

// NewPolygon returns a static regular polygon of the given circumradius.
func NewPolygon(id int, pos Vec2, sides int, size float64) *Target {
	t := &Target{ID: id, Shape: Polygon, Pos: pos, Sides: sides, Size: Vec2{size, size}}
	t.mustBeValid()
	return t
}

// Drifting sets a constant per-tick velocity.
func (t *Target) Drifting(vel Vec2) *Target {
	t.Motion = Drift
	t.Vel = vel
	return t
}

// Orbiting starts the rectangular patrol from the current position.
func (t *Target) Orbiting(speed float64) *Target {
	t.Motion = Orbit
	t.Speed = speed
	t.Start = t.Pos
	t.Phase = orbitRight
	return t
}

// Bouncing starts cardinal travel in dir.
func (t *Target) Bouncing(speed float64, dir Cardinal) *Target {
	t.Motion = Bounce
	t.Speed = speed
	t.Dir = dir
	return t
}

// Travelling starts free Heading travel along angle (radians).
func (t *Target) Travelling(speed, angle float64) *Target {
	t.Motion = Heading
	t.Speed = speed
	t.Angle = angle
	return t
}

func (t *Target) mustBeValid() {
	switch t.Shape {
	case Circle, Ellipse:
		if t.Radius <= 0 {
			panic(fmt.Sprintf("sim: %s target radius %g must be positive", t.Shape, t.Radius))
		}
	case Rectangle:
		if t.Size.X <= 0 || t.Size.Y <= 0 {
			panic(fmt.Sprintf("sim: rectangle target size %gx%g must be positive", t.Size.X, t.Size.Y))
		}
	case Polygon:
		if t.Size.X <= 0 || t.Sides < 3 {
			panic(fmt.Sprintf("sim: polygon target size %g sides %d", t.Size.X, t.Sides))
		}
	default:
		panic(fmt.Sprintf("sim: unknown target shape %d", int(t.Shape)))
	}
}

// Extent is the collision radius for round shapes and the half-extents for
// rectangles. It is what the renderer draws too.
func (t *Target) Extent() Vec2 {
	switch t.Shape {
	case Circle:
		return Vec2{t.Radius, t.Radius}
	case Ellipse:
		return t.Size.Scale(0.5)
	case Rectangle:
		return t.Size.Scale(0.5)
	default:
		return Vec2{t.Size.X, t.Size.X}
	}
}

// Hits reports whether p touches the target.
//
// Ellipses collide as a circle of half their larger dimension and polygons as
// a circle of their circumradius; neither uses the drawn outline.
func (t *Target) Hits(p *Projectile) bool {
	switch t.Shape {
	case Circle:
		return CirclesOverlap(t.Pos, t.Radius, p.Pos, p.Radius)
	case Ellipse:
		return CirclesOverlap(t.Pos, t.Size.MaxComponent()/2, p.Pos, p.Radius)
	case Rectangle:
		return RoundedRectOverlap(t.Pos, t.Size.X, t.Size.Y, p.Pos, p.Radius)
	case Polygon:
		return CirclesOverlap(t.Pos, t.Size.X, p.Pos, p.Radius)
	}
	return false
}

// Move advances the target one tick inside a field of the given bounds.
func (t *Target) Move(bounds Vec2) {
	switch t.Motion {
	case Static:
	case Drift:
		t.Pos = t.Pos.Add(t.Vel)
	case Orbit:
		t.moveOrbit()
	case Bounce:
		t.moveBounce(bounds)
	case Heading:
		t.moveHeading(bounds)
	}
}

func (t *Target) moveOrbit() {
	halfV := t.Size.MaxComponent() / 2
	switch t.Phase {
	case orbitRight:
		t.Pos.X += t.Speed
		if t.Pos.X >= t.Start.X+t.Radius {
			t.Phase = orbitDown
		}
	case orbitDown:
		t.Pos.Y += t.Speed
		if t.Pos.Y >= t.Start.Y+halfV {
			t.Phase = orbitLeft
		}
	case orbitLeft:
		t.Pos.X -= t.Speed
		if t.Pos.X <= t.Start.X-t.Radius {
			t.Phase = orbitUp
		}
	case orbitUp:
		t.Pos.Y -= t.Speed
		if t.Pos.Y <= t.Start.Y-halfV {
			t.Phase = orbitRight
		}
	}
}

func (t *Target) moveBounce(bounds Vec2) {
	half := t.Size.Scale(0.5)
	switch t.Dir {
	case Left:
		t.Pos.X -= t.Speed
		if t.Pos.X < half.X {
			t.Pos.X = half.X
			t.Dir = t.Dir.opposite()
		}
	case Right:
		t.Pos.X += t.Speed
		if t.Pos.X > bounds.X-half.X {
			t.Pos.X = bounds.X - half.X
			t.Dir = t.Dir.opposite()
		}
	case Up:
		t.Pos.Y -= t.Speed
		if t.Pos.Y < half.Y {
			t.Pos.Y = half.Y
			t.Dir = t.Dir.opposite()
		}
	case Down:
		t.Pos.Y += t.Speed
		if t.Pos.Y > bounds.Y-half.Y {
			t.Pos.Y = bounds.Y - half.Y
			t.Dir = t.Dir.opposite()
		}
	}
}

// moveHeading checks the side margins before the top/bottom ones and only
// applies one mirror per tick.
func (t *Target) moveHeading(bounds Vec2) {
	t.Pos = t.Pos.Add(Polar(t.Speed, t.Angle))
	m := t.Size.X
	if t.Pos.X < m || t.Pos.X > bounds.X-m {
		t.Angle = math.Pi - t.Angle
	} else if t.Pos.Y < m || t.Pos.Y > bounds.Y-m {
		t.Angle = -t.Angle
	}
}
