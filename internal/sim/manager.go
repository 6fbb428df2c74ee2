package sim

import (
	"fmt"
	"image/color"

	"go.uber.org/zap"
)

// State is the manager's wave state.
type State int

const (
	// StateSpawning holds between the field emptying and the next wave.
	StateSpawning State = iota
	// StateActive means live targets or projectiles remain.
	StateActive
)

func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "spawning"
}

// Launcher colours, matching the single and two-player layouts.
var (
	LauncherRed  = color.RGBA{R: 255, A: 255}
	LauncherBlue = color.RGBA{B: 255, A: 255}
)

// launcherRise is how far above the floor launchers sit.
const launcherRise = 30

// Intents is one launcher's input for a tick, already translated from
// devices by the front-end.
type Intents struct {
	MoveLeft    bool
	MoveRight   bool
	Aim         *Vec2 // nil keeps the previous angle
	ChargeStart bool
	FireRelease bool
}

// TickResult is a read-only snapshot handed to the renderer. Slices hold
// copies; mutating them does not touch the simulation.
type TickResult struct {
	Tick        int
	Wave        int
	State       State
	Projectiles []Projectile
	Targets     []Target
	Launchers   []Launcher
	Score       Scoreboard

	Fired     int
	Destroyed []int // IDs of targets removed this tick
	Settled   int
	Spawned   bool
}

// Option configures a Manager at construction.
type Option func(*Manager)

// WithRand injects the random source used for spawning and colours.
func WithRand(r Rand) Option {
	return func(m *Manager) { m.rng = r }
}

// WithSeed is WithRand with a math/rand source seeded from seed.
func WithSeed(seed int64) Option {
	return func(m *Manager) { m.rng = NewRand(seed) }
}

// WithLogger sets the process logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithSimLog records events into sl instead of a fresh non-verbose log.
func WithSimLog(sl *SimLog) Option {
	return func(m *Manager) { m.simLog = sl }
}

// Manager owns every entity and advances them one tick at a time. It is not
// safe for concurrent use.
type Manager struct {
	cfg    Config
	rng    Rand
	log    *zap.Logger
	simLog *SimLog

	launchers   []*Launcher
	projectiles []*Projectile
	targets     []*Target
	score       Scoreboard

	state  State
	tick   int
	wave   int
	nextID int
	fired  int
	settle int
}

// NewManager builds a manager and spawns the first wave. An invalid config
// is a programming error and panics.
func NewManager(cfg Config, opts ...Option) *Manager {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("sim: NewManager: %v", err))
	}
	m := &Manager{
		cfg:   cfg,
		state: StateSpawning,
	}
	for _, o := range opts {
		o(m)
	}
	if m.rng == nil {
		m.rng = NewRand(0)
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if m.simLog == nil {
		m.simLog = NewSimLog(false)
	}
	m.initLaunchers()
	m.spawnWave()
	return m
}

func (m *Manager) initLaunchers() {
	y := m.cfg.Height - launcherRise
	if m.cfg.Players == 1 {
		m.launchers = []*Launcher{
			NewLauncher(0, Vec2{m.cfg.Width / 2, y}, m.cfg.MinPower, m.cfg.MaxPower, LauncherRed),
		}
		return
	}
	m.launchers = []*Launcher{
		NewLauncher(0, Vec2{m.cfg.Width - 100, y}, m.cfg.MinPower, m.cfg.MaxPower, LauncherRed),
		NewLauncher(1, Vec2{100, y}, m.cfg.MinPower, m.cfg.MaxPower, LauncherBlue),
	}
}

// Tick advances the simulation one step. intents[i] drives launcher i;
// missing entries mean no input and extra entries are ignored.
//
// Order: intents, projectiles, targets, collisions, wave spawn.
func (m *Manager) Tick(intents ...Intents) TickResult {
	m.tick++
	res := TickResult{}

	for i, l := range m.launchers {
		var in Intents
		if i < len(intents) {
			in = intents[i]
		}
		if m.applyIntents(l, in) {
			res.Fired++
		}
		l.GainCharge(m.cfg.ChargeIncrement)
		m.simLog.AddVerbose(m.tick, launcherLabel(l), CatLauncher, "power",
			fmt.Sprintf("%.0f charging=%v", l.Power, l.Charging), l.Power)
	}

	res.Settled = m.advanceProjectiles()

	bounds := m.cfg.Bounds()
	for _, t := range m.targets {
		t.Move(bounds)
	}

	res.Destroyed = m.collide()

	if len(m.targets) == 0 && len(m.projectiles) == 0 {
		m.state = StateSpawning
		m.spawnWave()
		res.Spawned = true
	}

	res.Tick = m.tick
	res.Wave = m.wave
	res.State = m.state
	res.Score = m.score
	res.Projectiles = m.Projectiles()
	res.Targets = m.Targets()
	res.Launchers = m.Launchers()
	return res
}

// applyIntents reports whether the launcher fired.
func (m *Manager) applyIntents(l *Launcher, in Intents) bool {
	if in.MoveLeft {
		l.ShiftHorizontal(-m.cfg.LauncherStep, m.cfg.Width, m.cfg.LauncherMargin)
	}
	if in.MoveRight {
		l.ShiftHorizontal(m.cfg.LauncherStep, m.cfg.Width, m.cfg.LauncherMargin)
	}
	if in.Aim != nil {
		l.AimAt(*in.Aim)
	}
	if in.ChargeStart {
		l.ActivateCharge()
	}
	if !in.FireRelease {
		return false
	}
	m.fire(l)
	return true
}

func (m *Manager) fire(l *Launcher) *Projectile {
	power := l.Power
	p := l.Fire(m.newID(), m.cfg.ProjectileRadius)
	p.Color = randColor(m.rng)
	if m.cfg.OvalProjectiles {
		p.Shape = ShapeOval
		p.Size = Vec2{p.Radius * 2, p.Radius * 4}
	}
	m.projectiles = append(m.projectiles, p)
	m.score.ProjectilesUsed++
	m.fired++
	m.state = StateActive
	m.simLog.Add(m.tick, launcherLabel(l), CatFire, "release",
		fmt.Sprintf("P%d power=%.0f vel=(%.0f,%.0f)", p.ID, power, p.Vel.X, p.Vel.Y), power)
	return p
}

// advanceProjectiles moves every projectile and drops the settled ones,
// returning how many were dropped.
func (m *Manager) advanceProjectiles() int {
	bounds := m.cfg.Bounds()
	live := m.projectiles[:0]
	settled := 0
	for _, p := range m.projectiles {
		p.Advance(1, m.cfg.Gravity, bounds, m.cfg.Restitution)
		if p.Alive {
			live = append(live, p)
			continue
		}
		settled++
		m.simLog.Add(m.tick, projectileLabel(p), CatSettle, "rest",
			fmt.Sprintf("(%.0f,%.0f)", p.Pos.X, p.Pos.Y), p.Pos.X)
	}
	clear(m.projectiles[len(live):])
	m.projectiles = live
	m.settle += settled
	return settled
}

// collide tests every projectile against every target. A target hit by
// several projectiles is still removed and scored once. Projectiles are left
// untouched.
func (m *Manager) collide() []int {
	if len(m.targets) == 0 || len(m.projectiles) == 0 {
		return nil
	}
	hit := make([]bool, len(m.targets))
	for _, p := range m.projectiles {
		for j, t := range m.targets {
			if hit[j] || !t.Hits(p) {
				continue
			}
			hit[j] = true
			m.simLog.Add(m.tick, projectileLabel(p), CatHit, "target",
				fmt.Sprintf("T%d %s/%s", t.ID, t.Shape, t.Motion), float64(t.ID))
		}
	}

	var destroyed []int
	live := m.targets[:0]
	for j, t := range m.targets {
		if hit[j] {
			destroyed = append(destroyed, t.ID)
			continue
		}
		live = append(live, t)
	}
	clear(m.targets[len(live):])
	m.targets = live
	m.score.TargetsDestroyed += len(destroyed)
	if len(destroyed) > 0 {
		m.log.Debug("targets destroyed",
			zap.Int("tick", m.tick),
			zap.Int("count", len(destroyed)),
			zap.Int("remaining", len(m.targets)),
			zap.Int("score", m.score.Score()))
	}
	return destroyed
}

func (m *Manager) newID() int {
	m.nextID++
	return m.nextID
}

// Config returns the tuning the manager was built with.
func (m *Manager) Config() Config { return m.cfg }

// State reports whether a wave is in play.
func (m *Manager) State() State { return m.state }

// TickCount returns the number of ticks run so far.
func (m *Manager) TickCount() int { return m.tick }

// Wave returns the number of waves spawned, starting at 1.
func (m *Manager) Wave() int { return m.wave }

// Score returns a copy of the scoreboard.
func (m *Manager) Score() Scoreboard { return m.score }

// Log returns the event log.
func (m *Manager) Log() *SimLog { return m.simLog }

// Projectiles returns copies of the live projectiles.
func (m *Manager) Projectiles() []Projectile {
	out := make([]Projectile, len(m.projectiles))
	for i, p := range m.projectiles {
		out[i] = *p
	}
	return out
}

// Targets returns copies of the live targets.
func (m *Manager) Targets() []Target {
	out := make([]Target, len(m.targets))
	for i, t := range m.targets {
		out[i] = *t
	}
	return out
}

// Launchers returns copies of the launchers.
func (m *Manager) Launchers() []Launcher {
	out := make([]Launcher, len(m.launchers))
	for i, l := range m.launchers {
		out[i] = *l
	}
	return out
}

func launcherLabel(l *Launcher) string     { return fmt.Sprintf("L%d", l.ID) }
func projectileLabel(p *Projectile) string { return fmt.Sprintf("P%d", p.ID) }
func targetLabel(t *Target) string         { return fmt.Sprintf("T%d", t.ID) }
