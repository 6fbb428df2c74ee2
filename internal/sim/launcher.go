package sim

import (
	"fmt"
	"image/color"
	"math"
)

// Launcher is the player's cannon. Its Y never changes; X moves with
// ShiftHorizontal. Power stays within [MinPower, MaxPower].
type Launcher struct {
	ID       int
	Pos      Vec2
	Angle    float64 // radians, 0 points right, positive is clockwise on screen
	Power    float64
	MinPower float64
	MaxPower float64
	Charging bool
	Color    color.RGBA
}

// NewLauncher builds an idle launcher at pos with power at its minimum.
func NewLauncher(id int, pos Vec2, minPower, maxPower float64, c color.RGBA) *Launcher {
	if minPower <= 0 || maxPower < minPower {
		panic(fmt.Sprintf("sim: launcher power range [%g,%g]", minPower, maxPower))
	}
	return &Launcher{
		ID:       id,
		Pos:      pos,
		Power:    minPower,
		MinPower: minPower,
		MaxPower: maxPower,
		Color:    c,
	}
}

// AimAt points the barrel at target.
func (l *Launcher) AimAt(target Vec2) {
	d := target.Sub(l.Pos)
	l.Angle = math.Atan2(d.Y, d.X)
}

// ActivateCharge starts building power. Calling it while charging is a no-op.
func (l *Launcher) ActivateCharge() {
	l.Charging = true
}

// GainCharge adds inc to the power while charging, capped at MaxPower.
func (l *Launcher) GainCharge(inc float64) {
	if !l.Charging || l.Power >= l.MaxPower {
		return
	}
	l.Power = math.Min(l.Power+inc, l.MaxPower)
	l.checkPower()
}

// Fire releases a projectile from the muzzle at the current power and angle,
// then resets the launcher to an idle minimum-power state. The velocity
// components are truncated toward zero. The caller owns the projectile.
func (l *Launcher) Fire(id int, radius float64) *Projectile {
	vel := Polar(l.Power, l.Angle)
	p := NewProjectile(id, l.Pos, Vec2{trunc(vel.X), trunc(vel.Y)}, radius)
	p.Owner = l.ID
	l.Power = l.MinPower
	l.Charging = false
	return p
}

// ShiftHorizontal moves the launcher by delta along X unless it is already
// past margin from the edge it is heading toward. Motion away from an edge is
// always allowed.
func (l *Launcher) ShiftHorizontal(delta, width, margin float64) {
	if (l.Pos.X > margin || delta > 0) && (l.Pos.X < width-margin || delta < 0) {
		l.Pos.X += delta
	}
}

func (l *Launcher) checkPower() {
	if l.Power < l.MinPower || l.Power > l.MaxPower {
		panic(fmt.Sprintf("sim: launcher %d power %g outside [%g,%g]", l.ID, l.Power, l.MinPower, l.MaxPower))
	}
}
