package sim

import "go.uber.org/zap"

// Session is a headless harness: a Manager driven by an Autopilot with no
// front-end attached. It backs cmd/headless-report and the scenario tests.
type Session struct {
	Manager *Manager
	Pilot   *Autopilot
	SimLog  *SimLog
	Last    TickResult
}

type sessionSetup struct {
	cfg     Config
	seed    int64
	verbose bool
	log     *zap.Logger
}

// SessionOption is a builder function applied before the Manager is built.
type SessionOption func(*sessionSetup)

// WithConfig replaces the default tuning.
func WithConfig(cfg Config) SessionOption {
	return func(s *sessionSetup) { s.cfg = cfg }
}

// WithPlayers sets the launcher count.
func WithPlayers(n int) SessionOption {
	return func(s *sessionSetup) { s.cfg.Players = n }
}

// WithSessionSeed sets the RNG seed for deterministic runs.
func WithSessionSeed(seed int64) SessionOption {
	return func(s *sessionSetup) { s.seed = seed }
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SessionOption {
	return func(s *sessionSetup) { s.verbose = v }
}

// WithSessionLogger routes manager debug logging to l.
func WithSessionLogger(l *zap.Logger) SessionOption {
	return func(s *sessionSetup) { s.log = l }
}

// NewSession builds a seeded manager and its pilot. The default seed is 1 so
// an unconfigured session is still reproducible.
func NewSession(opts ...SessionOption) *Session {
	setup := sessionSetup{cfg: DefaultConfig(), seed: 1}
	for _, o := range opts {
		o(&setup)
	}
	sl := NewSimLog(setup.verbose)
	mopts := []Option{WithSeed(setup.seed), WithSimLog(sl)}
	if setup.log != nil {
		mopts = append(mopts, WithLogger(setup.log))
	}
	m := NewManager(setup.cfg, mopts...)
	return &Session{
		Manager: m,
		Pilot:   NewAutopilot(setup.cfg),
		SimLog:  sl,
		Last: TickResult{
			Wave:      m.Wave(),
			State:     m.State(),
			Targets:   m.Targets(),
			Launchers: m.Launchers(),
		},
	}
}

// Tick runs one autopilot-driven tick.
func (s *Session) Tick() TickResult {
	s.Last = s.Manager.Tick(s.Pilot.Intents(s.Last)...)
	return s.Last
}

// RunTicks advances the session n ticks.
func (s *Session) RunTicks(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

// CurrentTick returns the manager's tick counter.
func (s *Session) CurrentTick() int {
	return s.Manager.TickCount()
}
