package sim

import "math"

// Vec2 is a 2D point or vector in playfield pixels. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Len2 is the squared length; prefer it for threshold checks.
func (v Vec2) Len2() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Len() float64 { return math.Sqrt(v.Len2()) }

// Dist returns the Euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Axis returns the component for axis 0 (X) or 1 (Y).
func (v Vec2) Axis(i int) float64 {
	if i == 0 {
		return v.X
	}
	return v.Y
}

// WithAxis returns a copy of v with axis i set to f.
func (v Vec2) WithAxis(i int, f float64) Vec2 {
	if i == 0 {
		v.X = f
	} else {
		v.Y = f
	}
	return v
}

// MaxComponent returns the larger of X and Y.
func (v Vec2) MaxComponent() float64 { return math.Max(v.X, v.Y) }

// Polar returns the vector of length r pointing along angle a (radians).
func Polar(r, a float64) Vec2 { return Vec2{r * math.Cos(a), r * math.Sin(a)} }

// trunc drops the fractional part toward zero, like an int conversion.
func trunc(f float64) float64 { return math.Trunc(f) }
