package sim

import (
	"math"
	"testing"
)

func TestLobAngle_Direction(t *testing.T) {
	a := NewAutopilot(DefaultConfig())
	from := V(400, 570)

	right := a.lobAngle(from, V(600, 400), 50)
	if right >= 0 || right <= -math.Pi/2 {
		t.Fatalf("target up-right should give an angle in (-pi/2, 0), got %.3f", right)
	}
	left := a.lobAngle(from, V(200, 400), 50)
	if left <= math.Pi || left >= 3*math.Pi/2 {
		t.Fatalf("target up-left should give an angle in (pi, 3pi/2), got %.3f", left)
	}
	if up := a.lobAngle(from, V(400, 100), 50); up != -math.Pi/2 {
		t.Fatalf("target overhead should fire straight up, got %.3f", up)
	}
}

func TestLobAngle_OutOfRangeFallsBackTo45(t *testing.T) {
	a := NewAutopilot(DefaultConfig())
	got := a.lobAngle(V(0, 570), V(5000, 570), 10)
	if math.Abs(got+math.Pi/4) > 1e-9 {
		t.Fatalf("expected -pi/4, got %.3f", got)
	}
}

func TestLobAngle_NoGravityAimsDirect(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gravity = 0
	a := NewAutopilot(cfg)
	got := a.lobAngle(V(0, 0), V(10, 10), 50)
	if math.Abs(got-math.Pi/4) > 1e-9 {
		t.Fatalf("expected pi/4, got %.3f", got)
	}
}

func TestAutopilot_ChargeCycle(t *testing.T) {
	s := NewSession(WithSessionSeed(5))
	fired := 0
	firstFire := 0
	for i := 0; i < 200; i++ {
		res := s.Tick()
		if res.Fired > 0 {
			fired += res.Fired
			if firstFire == 0 {
				firstFire = res.Tick
			}
		}
	}
	// One tick to start charging, twenty to reach full power, one to release.
	if firstFire != 22 {
		t.Fatalf("expected first release on tick 22, got %d", firstFire)
	}
	if fired < 5 {
		t.Fatalf("expected repeated fire, got %d shots", fired)
	}
	e, ok := s.SimLog.LastOf(CatFire, "release")
	if !ok || e.NumVal != 50 {
		t.Fatalf("autopilot should release at full power, got %+v", e)
	}
}

func TestAutopilot_IdleWithoutTargets(t *testing.T) {
	a := NewAutopilot(DefaultConfig())
	res := TickResult{Launchers: []Launcher{*NewLauncher(0, V(400, 570), 10, 50, LauncherRed)}}
	in := a.Intents(res)
	if len(in) != 1 || in[0].ChargeStart || in[0].FireRelease || in[0].Aim != nil {
		t.Fatalf("expected an empty intent with no targets, got %+v", in)
	}
}

// --- Scenario ---

func TestSession_AutopilotClearsTargets(t *testing.T) {
	s := NewSession(WithSessionSeed(42), WithPlayers(2))
	s.RunTicks(3000)
	r := s.Manager.Report()
	if r.Fired == 0 || r.Destroyed == 0 {
		t.Fatalf("autopilot should score over a long run:\n%s\n%s", r.Format(), s.SimLog.Summary(s.Manager))
	}
	if r.Settled == 0 {
		t.Fatalf("projectiles should come to rest during a long run:\n%s", r.Format())
	}
}
