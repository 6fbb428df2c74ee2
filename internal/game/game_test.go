package game

import (
	"math"
	"strings"
	"testing"

	"github.com/Garsondee/Cannon-Arcade/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Input ---

func TestBindingIntents_MouseChargeAndRelease(t *testing.T) {
	p1 := DefaultBindings()[0]
	st := newInputState()
	st.cursor = sim.V(120, 80)
	st.mousePressed = true
	st.down[ebiten.KeyArrowLeft] = true

	in := p1.Intents(st)
	if !in.ChargeStart || in.FireRelease {
		t.Fatalf("mouse press should start charging only, got %+v", in)
	}
	if !in.MoveLeft || in.MoveRight {
		t.Fatalf("expected move left, got %+v", in)
	}
	if in.Aim == nil || *in.Aim != sim.V(120, 80) {
		t.Fatalf("expected aim at cursor, got %v", in.Aim)
	}

	st = newInputState()
	st.mouseReleased = true
	if in := p1.Intents(st); !in.FireRelease || in.ChargeStart {
		t.Fatalf("mouse release should fire, got %+v", in)
	}
}

func TestBindingIntents_KeyboardFire(t *testing.T) {
	p2 := DefaultBindings()[1]
	st := newInputState()
	st.pressed[ebiten.KeySpace] = true
	st.down[ebiten.KeyD] = true
	st.mousePressed = true // belongs to player one

	in := p2.Intents(st)
	if !in.ChargeStart || in.FireRelease || !in.MoveRight {
		t.Fatalf("space press should charge and D move right, got %+v", in)
	}

	st = newInputState()
	st.released[ebiten.KeySpace] = true
	if in := p2.Intents(st); !in.FireRelease {
		t.Fatalf("space release should fire, got %+v", in)
	}
}

func TestBindingIntents_AimIsCopied(t *testing.T) {
	st := newInputState()
	st.cursor = sim.V(10, 10)
	in := DefaultBindings()[0].Intents(st)
	st.cursor = sim.V(99, 99)
	if *in.Aim != sim.V(10, 10) {
		t.Fatal("aim should not alias the input state")
	}
}

func TestWatchedKeys(t *testing.T) {
	keys := watchedKeys(DefaultBindings())
	want := []ebiten.Key{keyQuit, keyToggleHUD, keyCopyReport, ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeySpace}
	for _, w := range want {
		found := false
		for _, k := range keys {
			if k == w {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("key %s not watched", w)
		}
	}
}

// --- Event feed ---

func TestEventFeed_RingOrder(t *testing.T) {
	f := NewEventFeed()
	for i := 0; i < feedMaxEntries+5; i++ {
		f.Add(sim.SimLogEntry{Tick: i, Category: sim.CatFire})
	}
	got := f.Recent()
	if len(got) != feedMaxEntries {
		t.Fatalf("expected %d entries, got %d", feedMaxEntries, len(got))
	}
	if got[0].Tick != 5 || got[len(got)-1].Tick != feedMaxEntries+4 {
		t.Fatalf("expected ticks 5..%d oldest first, got %d..%d", feedMaxEntries+4, got[0].Tick, got[len(got)-1].Tick)
	}
}

func TestEventFeed_SyncSkipsLauncherNoise(t *testing.T) {
	sl := sim.NewSimLog(true)
	sl.Add(1, "L0", sim.CatLauncher, "power", "12", 12)
	sl.Add(1, "L0", sim.CatFire, "release", "P1", 12)
	f := NewEventFeed()
	f.Sync(sl)
	sl.Add(2, "P1", sim.CatSettle, "rest", "(1,2)", 1)
	f.Sync(sl)

	got := f.Recent()
	if len(got) != 2 || got[0].Category != sim.CatFire || got[1].Category != sim.CatSettle {
		t.Fatalf("expected fire then settle, got %+v", got)
	}
	if line := feedLine(got[0]); !strings.Contains(line, "L0") || !strings.Contains(line, "P1") {
		t.Fatalf("unexpected feed line %q", line)
	}
}

// --- HUD ---

func TestScoreLines(t *testing.T) {
	res := sim.TickResult{Score: sim.Scoreboard{TargetsDestroyed: 3, ProjectilesUsed: 5}}
	got := strings.Join(scoreLines(res), "|")
	if got != "Destroyed: 3|Balls used: 5|Total: -2" {
		t.Fatalf("unexpected scoreboard %q", got)
	}
}

func TestHelpLines_PerBinding(t *testing.T) {
	lines := helpLines(DefaultBindings())
	if len(lines) != 3 {
		t.Fatalf("expected one line per player plus shortcuts, got %v", lines)
	}
	if !strings.HasPrefix(lines[0], "P1:") || !strings.Contains(lines[0], "mouse") {
		t.Fatalf("player one should mention the mouse: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Space") {
		t.Fatalf("player two should mention Space: %q", lines[1])
	}
}

// --- Drawing helpers ---

func TestEllipsePoints_OnOutline(t *testing.T) {
	c := sim.V(100, 100)
	size := sim.V(40, 80)
	for _, p := range ellipsePoints(c, size, ellipseSteps) {
		dx := (p.X - c.X) / 20
		dy := (p.Y - c.Y) / 40
		if math.Abs(dx*dx+dy*dy-1) > 1e-9 {
			t.Fatalf("point %+v is not on the ellipse", p)
		}
	}
}
