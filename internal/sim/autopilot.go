package sim

import "math"

// Autopilot produces intents for every launcher from the previous tick's
// snapshot: aim a full-power lob at the nearest target, charge to maximum,
// release, repeat. It drives headless runs and scenario tests.
type Autopilot struct {
	gravity     float64
	chargeTicks int
	hold        []int
}

// NewAutopilot returns a pilot tuned to cfg's gravity and charge rate.
func NewAutopilot(cfg Config) *Autopilot {
	ticks := 0
	if cfg.ChargeIncrement > 0 {
		ticks = int(math.Ceil((cfg.MaxPower - cfg.MinPower) / cfg.ChargeIncrement))
	}
	return &Autopilot{gravity: cfg.Gravity, chargeTicks: ticks}
}

// Intents returns one entry per launcher in res.
func (a *Autopilot) Intents(res TickResult) []Intents {
	if len(a.hold) != len(res.Launchers) {
		a.hold = make([]int, len(res.Launchers))
	}
	out := make([]Intents, len(res.Launchers))
	for i, l := range res.Launchers {
		t, ok := nearestTarget(l.Pos, res.Targets)
		if !ok {
			continue
		}
		aim := l.Pos.Add(Polar(100, a.lobAngle(l.Pos, t.Pos, l.MaxPower)))
		out[i].Aim = &aim
		switch {
		case !l.Charging:
			out[i].ChargeStart = true
			a.hold[i] = a.chargeTicks
		case a.hold[i] > 0:
			a.hold[i]--
		default:
			out[i].FireRelease = true
		}
	}
	return out
}

// lobAngle returns the low-arc launch angle (screen radians) that carries a
// projectile of the given speed from `from` to `to`. Out-of-range targets get
// a 45 degree lob toward them.
func (a *Autopilot) lobAngle(from, to Vec2, speed float64) float64 {
	dx := to.X - from.X
	x := math.Abs(dx)
	h := from.Y - to.Y
	g := a.gravity

	if g <= 0 {
		return math.Atan2(to.Y-from.Y, dx)
	}
	if x == 0 {
		return -math.Pi / 2
	}
	elev := math.Pi / 4
	v2 := speed * speed
	if disc := v2*v2 - g*(g*x*x+2*h*v2); disc >= 0 {
		elev = math.Atan((v2 - math.Sqrt(disc)) / (g * x))
	}
	if dx >= 0 {
		return -elev
	}
	return math.Pi + elev
}

func nearestTarget(p Vec2, targets []Target) (Target, bool) {
	best := -1
	bestD := math.Inf(1)
	for i, t := range targets {
		if d := p.Sub(t.Pos).Len2(); d < bestD {
			best, bestD = i, d
		}
	}
	if best < 0 {
		return Target{}, false
	}
	return targets[best], true
}
