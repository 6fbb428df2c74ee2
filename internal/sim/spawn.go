package sim

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Spawn layout constants.
const (
	rectInset     = 200 // rectangles spawn at least this far from every wall
	polygonInset  = 100
	polygonSides  = 5
	polygonSize   = 25
	targetsPerSet = 8 // one of each shape/motion combination
)

// sizeBounds returns the inclusive [lo, hi] range new target extents are
// drawn from. Both shrink as the score grows and never drop below 1.
func (m *Manager) sizeBounds() (lo, hi int) {
	d := m.score.Difficulty()
	base := m.cfg.BaseTargetSize
	lo = max(1, base-2*d)
	hi = max(lo, base-d)
	if lo < 1 {
		panic(fmt.Sprintf("sim: spawn size bound %d below 1 (score %d)", lo, m.score.Score()))
	}
	return lo, hi
}

// spawnWave adds TargetsPerWave sets of the eight target kinds.
func (m *Manager) spawnWave() {
	m.wave++
	lo, hi := m.sizeBounds()
	for i := 0; i < m.cfg.TargetsPerWave; i++ {
		m.addTarget(m.newRoundTarget(Circle, lo, hi).Drifting(Vec2{
			X: float64(randInt(m.rng, -driftMax, driftMax)),
			Y: float64(randInt(m.rng, -driftMax, driftMax)),
		}))
		m.addTarget(m.newRoundTarget(Ellipse, lo, hi).Orbiting(orbitSpeed))
		m.addTarget(m.newRoundTarget(Circle, lo, hi))
		m.addTarget(m.newRoundTarget(Ellipse, lo, hi))
		m.addTarget(m.newRectTarget(lo, hi))
		m.addTarget(m.newRectTarget(lo, hi).Bouncing(bounceSpeed, Cardinal(m.rng.Intn(4))))
		m.addTarget(m.newPolygonTarget())
		m.addTarget(m.newPolygonTarget().Travelling(headingSpeed, m.rng.Float64()*2*math.Pi))
	}
	m.state = StateActive
	m.simLog.Add(m.tick, "--", CatWave, "spawn",
		fmt.Sprintf("wave %d: %d targets size [%d,%d]", m.wave, len(m.targets), lo, hi), float64(len(m.targets)))
	m.log.Debug("wave spawned",
		zap.Int("wave", m.wave),
		zap.Int("tick", m.tick),
		zap.Int("targets", len(m.targets)),
		zap.Int("size_lo", lo),
		zap.Int("size_hi", hi))
}

func (m *Manager) addTarget(t *Target) {
	m.targets = append(m.targets, t)
	m.simLog.AddVerbose(m.tick, targetLabel(t), CatWave, "target",
		fmt.Sprintf("%s/%s at (%.0f,%.0f)", t.Shape, t.Motion, t.Pos.X, t.Pos.Y), float64(t.ID))
}

// newRoundTarget places a circle or ellipse of random radius fully inside
// the field.
func (m *Manager) newRoundTarget(shape ShapeKind, lo, hi int) *Target {
	r := randInt(m.rng, lo, hi)
	pos := m.randPos(r)
	var t *Target
	if shape == Ellipse {
		t = NewEllipse(m.newID(), pos, float64(r))
	} else {
		t = NewCircle(m.newID(), pos, float64(r))
	}
	t.Color = randColor(m.rng)
	return t
}

func (m *Manager) newRectTarget(lo, hi int) *Target {
	pos := m.randPos(rectInset)
	w := randInt(m.rng, lo, hi)
	h := randInt(m.rng, lo, hi)
	t := NewRectangle(m.newID(), pos, float64(w), float64(h))
	t.Color = randColor(m.rng)
	return t
}

func (m *Manager) newPolygonTarget() *Target {
	pos := m.randPos(polygonInset)
	t := NewPolygon(m.newID(), pos, polygonSides, polygonSize)
	t.Color = randColor(m.rng)
	return t
}

// randPos returns an integer point at least inset from every wall.
func (m *Manager) randPos(inset int) Vec2 {
	w, h := int(m.cfg.Width), int(m.cfg.Height)
	return Vec2{
		X: float64(randInt(m.rng, inset, w-inset)),
		Y: float64(randInt(m.rng, inset, h-inset)),
	}
}
