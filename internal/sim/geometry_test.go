package sim

import (
	"math"
	"testing"
)

// --- Vec2 ---

func TestVec2_Arithmetic(t *testing.T) {
	v := V(3, 4)
	if got := v.Len(); got != 5 {
		t.Fatalf("expected length 5, got %.3f", got)
	}
	if got := v.Add(V(1, -1)); got != V(4, 3) {
		t.Fatalf("expected (4,3), got %+v", got)
	}
	if got := v.Scale(2); got != V(6, 8) {
		t.Fatalf("expected (6,8), got %+v", got)
	}
	if got := v.WithAxis(1, 9); got != V(3, 9) || v != V(3, 4) {
		t.Fatalf("WithAxis must copy: got %+v, original %+v", got, v)
	}
}

func TestPolar(t *testing.T) {
	p := Polar(10, math.Pi/2)
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y-10) > 1e-9 {
		t.Fatalf("expected (0,10), got %+v", p)
	}
}

// --- Circle overlap ---

func TestCirclesOverlap_ExactBoundary(t *testing.T) {
	if !CirclesOverlap(V(0, 0), 10, V(30, 0), 20) {
		t.Fatal("circles exactly touching should overlap")
	}
}

func TestCirclesOverlap_JustOutside(t *testing.T) {
	if CirclesOverlap(V(0, 0), 10, V(30+1e-6, 0), 20) {
		t.Fatal("circles 1e-6 apart should not overlap")
	}
}

// --- Rounded rectangle ---

func TestRoundedRectOverlap_Bands(t *testing.T) {
	c := V(0, 0)
	// Straight below the rectangle, inside the horizontal band.
	if !RoundedRectOverlap(c, 20, 10, V(0, 12), 8) {
		t.Fatal("circle overlapping the bottom edge should hit")
	}
	// Straight right, inside the vertical band.
	if !RoundedRectOverlap(c, 20, 10, V(14, 2), 5) {
		t.Fatal("circle overlapping the right edge should hit")
	}
	if RoundedRectOverlap(c, 20, 10, V(0, 14), 8) {
		t.Fatal("circle 1px below the bottom edge should miss")
	}
}

func TestRoundedRectOverlap_Corner(t *testing.T) {
	c := V(0, 0)
	// Offset (3,4) beyond the bottom-right corner: corner distance is 5.
	p := V(13, 9)
	if !RoundedRectOverlap(c, 20, 10, p, 5) {
		t.Fatal("radius 5 at corner distance 5 should hit")
	}
	if RoundedRectOverlap(c, 20, 10, p, 4.9) {
		t.Fatal("radius 4.9 at corner distance 5 should miss")
	}
}

func TestRoundedRectOverlap_CornerIsRounded(t *testing.T) {
	// Inside the grown bounding box but outside the rounded corner.
	if RoundedRectOverlap(V(0, 0), 20, 10, V(14.5, 9.5), 5) {
		t.Fatal("point in the square corner of the grown box should miss")
	}
}

func TestRegularPolygon(t *testing.T) {
	pts := RegularPolygon(V(100, 100), 5, 25)
	if len(pts) != 5 {
		t.Fatalf("expected 5 vertices, got %d", len(pts))
	}
	if pts[0] != V(125, 100) {
		t.Fatalf("first vertex should be on +X axis, got %+v", pts[0])
	}
	for i, p := range pts {
		if d := p.Dist(V(100, 100)); math.Abs(d-25) > 1e-9 {
			t.Fatalf("vertex %d at distance %.4f, want 25", i, d)
		}
	}
}
