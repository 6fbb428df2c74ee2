package sim

import "testing"

var (
	testBounds = V(800, 600)
	testRest   = Restitution{Orthogonal: 0.8, Parallel: 0.9}
)

// --- Free flight ---

func TestProjectileAdvance_GravityThenEuler(t *testing.T) {
	p := NewProjectile(1, V(400, 300), V(5, -10), 20)
	p.Advance(1, 2, testBounds, testRest)
	if p.Vel != V(5, -8) {
		t.Fatalf("expected velocity (5,-8), got %+v", p.Vel)
	}
	if p.Pos != V(405, 292) {
		t.Fatalf("expected position (405,292), got %+v", p.Pos)
	}
	if !p.Alive {
		t.Fatal("projectile in mid-air should stay alive")
	}
}

// --- Reflection ---

func TestReflect_RightWall(t *testing.T) {
	p := NewProjectile(1, V(770, 300), V(15, 7), 20)
	p.Advance(1, 0, testBounds, testRest)
	if p.Pos.X != 780 {
		t.Fatalf("expected x clamped to 780, got %.2f", p.Pos.X)
	}
	// -trunc(15*0.8) = -12, trunc(7*0.9) = 6
	if p.Vel != V(-12, 6) {
		t.Fatalf("expected velocity (-12,6), got %+v", p.Vel)
	}
}

func TestReflect_LeftWallNegativeTruncation(t *testing.T) {
	p := NewProjectile(1, V(25, 300), V(-10, -5), 20)
	p.Advance(1, 0, testBounds, testRest)
	if p.Pos.X != 20 {
		t.Fatalf("expected x clamped to 20, got %.2f", p.Pos.X)
	}
	// -trunc(-8) = 8, trunc(-4.5) = -4 (toward zero)
	if p.Vel != V(8, -4) {
		t.Fatalf("expected velocity (8,-4), got %+v", p.Vel)
	}
}

func TestReflect_Ceiling(t *testing.T) {
	p := NewProjectile(1, V(400, 30), V(10, -20), 20)
	p.Advance(1, 0, testBounds, testRest)
	if p.Pos.Y != 20 {
		t.Fatalf("expected y clamped to 20, got %.2f", p.Pos.Y)
	}
	if p.Vel != V(9, 16) {
		t.Fatalf("expected velocity (9,16), got %+v", p.Vel)
	}
}

func TestReflect_CornerDampsBothAxes(t *testing.T) {
	p := NewProjectile(1, V(775, 575), V(10, 10), 20)
	p.Advance(1, 0, testBounds, testRest)
	if p.Pos != V(780, 580) {
		t.Fatalf("expected position clamped to (780,580), got %+v", p.Pos)
	}
	// X first: vx=-8, vy=trunc(9)=9. Then Y: vy=-trunc(7.2)=-7, vx=trunc(-7.2)=-7.
	if p.Vel != V(-7, -7) {
		t.Fatalf("expected velocity (-7,-7), got %+v", p.Vel)
	}
}

// --- Settling ---

func TestSettle_SlowNearFloorDies(t *testing.T) {
	p := NewProjectile(1, V(400, 575), V(1, 0), 20)
	p.Advance(1, 0, testBounds, testRest)
	if p.Alive {
		t.Fatalf("speed^2=1 within 2r of the floor should settle, pos=%+v", p.Pos)
	}
}

func TestSettle_FastNearFloorLives(t *testing.T) {
	p := NewProjectile(1, V(400, 575), V(2, 0), 20)
	p.Advance(1, 0, testBounds, testRest)
	if !p.Alive {
		t.Fatal("speed^2=4 is not below the threshold and should stay alive")
	}
}

func TestSettle_SlowInMidAirLives(t *testing.T) {
	p := NewProjectile(1, V(400, 300), V(1, 0), 20)
	p.Advance(1, 0, testBounds, testRest)
	if !p.Alive {
		t.Fatal("slow projectile far from the floor should stay alive")
	}
}

func TestSettle_RestingOnFloorUnderGravity(t *testing.T) {
	p := NewProjectile(1, V(400, 580), V(0, 0), 20)
	p.Advance(1, 2, testBounds, testRest)
	// Falls 2px into the floor, clamps back to 580, vy=-trunc(1.6)=-1.
	if p.Pos.Y != 580 || p.Vel != V(0, -1) {
		t.Fatalf("unexpected state after floor contact: pos=%+v vel=%+v", p.Pos, p.Vel)
	}
	if p.Alive {
		t.Fatal("projectile resting on the floor should settle")
	}
}

func TestSettle_EventuallyStopsAfterBouncing(t *testing.T) {
	p := NewProjectile(1, V(100, 100), V(30, -20), 20)
	for i := 0; i < 2000 && p.Alive; i++ {
		p.Advance(1, 2, testBounds, testRest)
	}
	if p.Alive {
		t.Fatalf("projectile never settled: pos=%+v vel=%+v", p.Pos, p.Vel)
	}
}

func TestProjectile_DeadDoesNotMove(t *testing.T) {
	p := NewProjectile(1, V(400, 300), V(5, 5), 20)
	p.Alive = false
	p.Advance(1, 2, testBounds, testRest)
	if p.Pos != V(400, 300) {
		t.Fatalf("dead projectile moved to %+v", p.Pos)
	}
}

func TestNewProjectile_PanicsOnBadRadius(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero radius")
		}
	}()
	NewProjectile(1, V(0, 0), V(0, 0), 0)
}
