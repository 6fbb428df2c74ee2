package sim

import "math"

// CirclesOverlap reports whether two circles touch or overlap.
// Touching (distance == r1+r2) counts as overlap.
func CirclesOverlap(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	return c1.Dist(c2) <= r1+r2
}

// RoundedRectOverlap reports whether a circle of radius r at p overlaps the
// axis-aligned rectangle centred on c with the given full width and height.
//
// The region accepted is the rectangle grown by r with rounded corners: a
// circle beyond both half-extents hits only if the distance from its centre
// to the nearest corner is at most r.
func RoundedRectOverlap(c Vec2, w, h float64, p Vec2, r float64) bool {
	dx := math.Abs(p.X - c.X)
	dy := math.Abs(p.Y - c.Y)
	hw, hh := w/2, h/2

	if dx > hw+r || dy > hh+r {
		return false
	}
	if dx <= hw || dy <= hh {
		return true
	}
	cx := dx - hw
	cy := dy - hh
	return cx*cx+cy*cy <= r*r
}

// RegularPolygon returns the vertices of a regular polygon with the given
// number of sides and circumradius, first vertex on the +X axis.
func RegularPolygon(c Vec2, sides int, radius float64) []Vec2 {
	pts := make([]Vec2, 0, sides)
	for i := 0; i < sides; i++ {
		a := 2 * math.Pi * float64(i) / float64(sides)
		pts = append(pts, c.Add(Polar(radius, a)))
	}
	return pts
}
