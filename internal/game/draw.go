package game

import (
	"image/color"
	"math"

	"github.com/Garsondee/Cannon-Arcade/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	barrelLength = 40
	barrelWidth  = 6
	ellipseSteps = 32
)

var (
	fieldColor    = color.RGBA{R: 18, G: 20, B: 26, A: 255}
	outlineColor  = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	chargeColor   = color.RGBA{R: 255, G: 210, B: 60, A: 255}
	chargeBgColor = color.RGBA{R: 60, G: 60, B: 60, A: 200}
)

// drawField renders every entity in the snapshot. Targets go first so
// projectiles and launchers stay visible on top.
func drawField(screen *ebiten.Image, res sim.TickResult) {
	for _, t := range res.Targets {
		drawTarget(screen, t)
	}
	for _, p := range res.Projectiles {
		drawProjectile(screen, p)
	}
	for _, l := range res.Launchers {
		drawLauncher(screen, l)
	}
}

func drawTarget(screen *ebiten.Image, t sim.Target) {
	x, y := float32(t.Pos.X), float32(t.Pos.Y)
	switch t.Shape {
	case sim.Circle:
		vector.FillCircle(screen, x, y, float32(t.Radius), t.Color, true)
	case sim.Ellipse:
		fillEllipse(screen, t.Pos, t.Size, t.Color)
	case sim.Rectangle:
		w, h := float32(t.Size.X), float32(t.Size.Y)
		vector.FillRect(screen, x-w/2, y-h/2, w, h, t.Color, false)
		vector.StrokeRect(screen, x-w/2, y-h/2, w, h, 1, outlineColor, false)
	case sim.Polygon:
		fillPolygon(screen, sim.RegularPolygon(t.Pos, t.Sides, t.Size.X), t.Color)
	}
}

func drawProjectile(screen *ebiten.Image, p sim.Projectile) {
	if p.Shape == sim.ShapeOval {
		fillEllipse(screen, p.Pos, p.Size, p.Color)
		return
	}
	vector.FillCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), p.Color, true)
}

// drawLauncher draws the base, a barrel along the aim angle and, while
// charging, a power gauge under the base.
func drawLauncher(screen *ebiten.Image, l sim.Launcher) {
	x, y := float32(l.Pos.X), float32(l.Pos.Y)
	tip := l.Pos.Add(sim.Polar(barrelLength, l.Angle))
	vector.StrokeLine(screen, x, y, float32(tip.X), float32(tip.Y), barrelWidth, l.Color, true)
	vector.FillCircle(screen, x, y, 14, l.Color, true)
	vector.StrokeCircle(screen, x, y, 14, 1, outlineColor, true)

	if !l.Charging {
		return
	}
	const gaugeW, gaugeH = 40, 4
	frac := float32((l.Power - l.MinPower) / (l.MaxPower - l.MinPower))
	vector.FillRect(screen, x-gaugeW/2, y+18, gaugeW, gaugeH, chargeBgColor, false)
	vector.FillRect(screen, x-gaugeW/2, y+18, gaugeW*frac, gaugeH, chargeColor, false)
}

// ellipsePoints approximates an axis-aligned ellipse of the given full size.
func ellipsePoints(center, size sim.Vec2, steps int) []sim.Vec2 {
	pts := make([]sim.Vec2, steps)
	rx, ry := size.X/2, size.Y/2
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(steps)
		pts[i] = sim.V(center.X+rx*math.Cos(a), center.Y+ry*math.Sin(a))
	}
	return pts
}

func fillEllipse(screen *ebiten.Image, center, size sim.Vec2, c color.RGBA) {
	fillPolygon(screen, ellipsePoints(center, size, ellipseSteps), c)
}

func fillPolygon(screen *ebiten.Image, pts []sim.Vec2, c color.RGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	vector.FillPath(screen, &path, &vector.FillOptions{}, op)
}
