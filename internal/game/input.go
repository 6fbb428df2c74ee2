package game

import (
	"github.com/Garsondee/Cannon-Arcade/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Binding maps one player's devices to sim.Intents. Every player aims at the
// mouse cursor.
type Binding struct {
	Name  string
	Left  ebiten.Key
	Right ebiten.Key
	Fire  []ebiten.Key // charge on press, release to fire
	Mouse bool         // left mouse button also charges and fires
}

// DefaultBindings returns the stock layout: player one on the arrows and the
// mouse, player two on A/D and Space.
func DefaultBindings() []Binding {
	return []Binding{
		{Name: "P1", Left: ebiten.KeyArrowLeft, Right: ebiten.KeyArrowRight, Mouse: true},
		{Name: "P2", Left: ebiten.KeyA, Right: ebiten.KeyD, Fire: []ebiten.Key{ebiten.KeySpace}},
	}
}

// Global keys handled by the front-end itself.
const (
	keyQuit       = ebiten.KeyEscape
	keyToggleHUD  = ebiten.KeyH
	keyCopyReport = ebiten.KeyC
)

// inputState is one frame of device state. Key edges come from comparing
// against the previous frame.
type inputState struct {
	down     map[ebiten.Key]bool
	pressed  map[ebiten.Key]bool
	released map[ebiten.Key]bool

	mousePressed  bool
	mouseReleased bool
	cursor        sim.Vec2
}

func newInputState() inputState {
	return inputState{
		down:     map[ebiten.Key]bool{},
		pressed:  map[ebiten.Key]bool{},
		released: map[ebiten.Key]bool{},
	}
}

// watchedKeys lists every key the bindings and global shortcuts read.
func watchedKeys(bindings []Binding) []ebiten.Key {
	keys := []ebiten.Key{keyQuit, keyToggleHUD, keyCopyReport}
	for _, b := range bindings {
		keys = append(keys, b.Left, b.Right)
		keys = append(keys, b.Fire...)
	}
	return keys
}

// pollInput samples the devices and updates g.prevKeys (edge-triggered).
func (g *Game) pollInput() inputState {
	st := newInputState()
	currentKeys := map[ebiten.Key]bool{}
	for _, k := range g.keys {
		down := ebiten.IsKeyPressed(k)
		currentKeys[k] = down
		st.down[k] = down
		if down && !g.prevKeys[k] {
			st.pressed[k] = true
		}
		if !down && g.prevKeys[k] {
			st.released[k] = true
		}
	}
	g.prevKeys = currentKeys

	st.mousePressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	st.mouseReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	mx, my := ebiten.CursorPosition()
	st.cursor = sim.V(float64(mx), float64(my))
	return st
}

// Intents translates a frame of input for this binding.
func (b Binding) Intents(st inputState) sim.Intents {
	aim := st.cursor
	in := sim.Intents{
		MoveLeft:  st.down[b.Left],
		MoveRight: st.down[b.Right],
		Aim:       &aim,
	}
	if b.Mouse {
		in.ChargeStart = st.mousePressed
		in.FireRelease = st.mouseReleased
	}
	for _, k := range b.Fire {
		in.ChargeStart = in.ChargeStart || st.pressed[k]
		in.FireRelease = in.FireRelease || st.released[k]
	}
	return in
}
