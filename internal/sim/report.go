package sim

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Report is an end-of-session summary.
type Report struct {
	Ticks       int
	Waves       int
	Fired       int
	Destroyed   int
	Settled     int
	InFlight    int
	TargetsLeft int
	Score       int
	Digest      uint64
}

// Accuracy is destroyed targets per projectile fired. One projectile can
// clear several targets, so it may exceed 1.
func (r Report) Accuracy() float64 {
	if r.Fired == 0 {
		return 0
	}
	return float64(r.Destroyed) / float64(r.Fired)
}

// Format renders the report as a few aligned lines.
func (r Report) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Cannon Arcade session ---\n")
	fmt.Fprintf(&b, "ticks=%d waves=%d digest=%016x\n", r.Ticks, r.Waves, r.Digest)
	fmt.Fprintf(&b, "fired=%d destroyed=%d settled=%d in_flight=%d targets_left=%d\n",
		r.Fired, r.Destroyed, r.Settled, r.InFlight, r.TargetsLeft)
	fmt.Fprintf(&b, "score=%d accuracy=%.2f\n", r.Score, r.Accuracy())
	return b.String()
}

// Report summarises the session so far.
func (m *Manager) Report() Report {
	return Report{
		Ticks:       m.tick,
		Waves:       m.wave,
		Fired:       m.fired,
		Destroyed:   m.score.TargetsDestroyed,
		Settled:     m.settle,
		InFlight:    len(m.projectiles),
		TargetsLeft: len(m.targets),
		Score:       m.score.Score(),
		Digest:      m.Digest(),
	}
}

// Digest hashes the full simulation state. Two managers built from the same
// config and seed and fed the same intents produce the same digest.
func (m *Manager) Digest() uint64 {
	d := xxhash.New()
	var buf [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		_, _ = d.Write(buf[:])
	}
	putFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = d.Write(buf[:])
	}
	putVec := func(v Vec2) {
		putFloat(v.X)
		putFloat(v.Y)
	}

	putInt(m.tick)
	putInt(m.wave)
	putInt(m.score.TargetsDestroyed)
	putInt(m.score.ProjectilesUsed)
	for _, l := range m.launchers {
		putVec(l.Pos)
		putFloat(l.Angle)
		putFloat(l.Power)
	}
	putInt(len(m.projectiles))
	for _, p := range m.projectiles {
		putInt(p.ID)
		putVec(p.Pos)
		putVec(p.Vel)
	}
	putInt(len(m.targets))
	for _, t := range m.targets {
		putInt(t.ID)
		putInt(int(t.Shape))
		putInt(int(t.Motion))
		putVec(t.Pos)
		putFloat(t.Angle)
	}
	return d.Sum64()
}
