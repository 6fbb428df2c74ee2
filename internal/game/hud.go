package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Cannon-Arcade/internal/sim"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

// hudScale is the integer upscale applied to the HUD buffer.
const hudScale = 2

// statusTicks is how long a transient HUD message stays up (~2s at 60 TPS).
const statusTicks = 120

var hudTextColor = color.RGBA{R: 235, G: 235, B: 235, A: 255}

// scoreLines are the scoreboard rows shown in the top-left corner.
func scoreLines(res sim.TickResult) []string {
	return []string{
		fmt.Sprintf("Destroyed: %d", res.Score.TargetsDestroyed),
		fmt.Sprintf("Balls used: %d", res.Score.ProjectilesUsed),
		fmt.Sprintf("Total: %d", res.Score.Score()),
	}
}

// helpLines describe the controls for the active bindings.
func helpLines(bindings []Binding) []string {
	lines := []string{}
	for _, b := range bindings {
		fire := "hold/release"
		if b.Mouse {
			fire = "mouse " + fire
		}
		for _, k := range b.Fire {
			fire = k.String() + " " + fire
		}
		lines = append(lines, fmt.Sprintf("%s: %s/%s move, %s", b.Name, b.Left, b.Right, fire))
	}
	return append(lines, "[C] copy report  [H] help  [Esc] quit")
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	const lineH = 15
	const padX, padY = 6, 4

	lines := scoreLines(g.last)
	lines = append(lines, fmt.Sprintf("Wave: %d", g.last.Wave))
	if g.showHelp {
		lines = append(lines, helpLines(g.bindings)...)
	}
	if g.statusLeft > 0 {
		lines = append(lines, g.status)
	}

	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	face := basicfont.Face7x13
	boxW := float32(maxLen*face.Advance + padX*2)
	boxH := float32(len(lines)*lineH + padY*2)

	g.hudBuf.Clear()
	vector.FillRect(g.hudBuf, 2, 2, boxW, boxH, color.RGBA{R: 8, G: 10, B: 14, A: 180}, false)
	vector.StrokeRect(g.hudBuf, 2, 2, boxW, boxH, 1, color.RGBA{R: 70, G: 80, B: 100, A: 180}, false)
	for i, line := range lines {
		// text.Draw positions by baseline.
		text.Draw(g.hudBuf, line, face, 2+padX, 2+padY+face.Ascent+i*lineH, hudTextColor)
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(hudScale, hudScale)
	screen.DrawImage(g.hudBuf, opts)
}

// copyReport puts the session report on the system clipboard.
func (g *Game) copyReport() {
	report := g.mgr.Report()
	if err := clipboard.WriteAll(report.Format()); err != nil {
		g.log.Warn("copy report failed", zap.Error(err))
		g.setStatus("clipboard unavailable")
		return
	}
	g.log.Info("report copied", zap.Uint64("digest", report.Digest), zap.Int("score", report.Score))
	g.setStatus("report copied")
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusLeft = statusTicks
}
