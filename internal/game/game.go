package game

import (
	"image/color"

	"github.com/Garsondee/Cannon-Arcade/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

var backgroundColor = color.RGBA{R: 8, G: 9, B: 12, A: 255}

// Game adapts a sim.Manager to ebiten. It owns no game rules: Update turns
// device state into intents and Draw renders the last snapshot.
type Game struct {
	mgr      *sim.Manager
	log      *zap.Logger
	bindings []Binding
	keys     []ebiten.Key
	prevKeys map[ebiten.Key]bool

	last sim.TickResult
	feed *EventFeed

	width       int // playfield plus event panel
	height      int
	fieldWidth  int
	fieldHeight int

	// Offscreen buffer for HUD text, rendered at 1x then scaled up.
	hudBuf *ebiten.Image

	showHelp   bool
	status     string
	statusLeft int
}

// New wraps m. Launcher i is driven by DefaultBindings()[i].
func New(m *sim.Manager, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	cfg := m.Config()
	bindings := DefaultBindings()[:len(m.Launchers())]
	g := &Game{
		mgr:         m,
		log:         log,
		bindings:    bindings,
		keys:        watchedKeys(bindings),
		prevKeys:    make(map[ebiten.Key]bool),
		feed:        NewEventFeed(),
		fieldWidth:  int(cfg.Width),
		fieldHeight: int(cfg.Height),
		showHelp:    true,
	}
	g.width = g.fieldWidth + feedPanelWidth
	g.height = g.fieldHeight
	g.hudBuf = ebiten.NewImage(g.width/hudScale, g.height/hudScale)
	g.last = sim.TickResult{
		Wave:      m.Wave(),
		State:     m.State(),
		Targets:   m.Targets(),
		Launchers: m.Launchers(),
		Score:     m.Score(),
	}
	g.feed.Sync(m.Log())
	return g
}

// Update runs exactly one simulation tick per frame.
func (g *Game) Update() error {
	st := g.pollInput()

	if st.pressed[keyQuit] {
		r := g.mgr.Report()
		g.log.Info("session ended",
			zap.Int("ticks", r.Ticks),
			zap.Int("waves", r.Waves),
			zap.Int("fired", r.Fired),
			zap.Int("destroyed", r.Destroyed),
			zap.Int("score", r.Score))
		return ebiten.Termination
	}
	if st.pressed[keyToggleHUD] {
		g.showHelp = !g.showHelp
	}
	if st.pressed[keyCopyReport] {
		g.copyReport()
	}
	if g.statusLeft > 0 {
		g.statusLeft--
	}

	g.last = g.mgr.Tick(g.intents(st)...)
	g.feed.Sync(g.mgr.Log())
	if g.last.Spawned {
		g.log.Debug("new wave", zap.Int("wave", g.last.Wave), zap.Int("targets", len(g.last.Targets)))
	}
	return nil
}

func (g *Game) intents(st inputState) []sim.Intents {
	out := make([]sim.Intents, len(g.bindings))
	for i, b := range g.bindings {
		out[i] = b.Intents(st)
	}
	return out
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	vector.FillRect(screen, 0, 0, float32(g.fieldWidth), float32(g.fieldHeight), fieldColor, false)
	drawField(screen, g.last)

	g.feed.Draw(screen, g.fieldWidth, g.height)
	g.drawHUD(screen)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// WindowSize returns the native size of the playfield and event panel.
func (g *Game) WindowSize() (int, int) {
	return g.width, g.height
}
