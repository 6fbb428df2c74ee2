package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Cannon-Arcade/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedPanelWidth = 300
	feedMaxEntries = 60
	feedLineHeight = 12
)

var categoryColors = map[string]color.RGBA{
	sim.CatFire:   {R: 255, G: 200, B: 60, A: 255},
	sim.CatHit:    {R: 90, G: 220, B: 90, A: 255},
	sim.CatSettle: {R: 140, G: 140, B: 140, A: 255},
	sim.CatWave:   {R: 90, G: 160, B: 255, A: 255},
}

// EventFeed is a ring buffer of the most recent SimLog entries, rendered as a
// side panel next to the playfield.
type EventFeed struct {
	entries []sim.SimLogEntry
	head    int
	count   int
	seen    int // SimLog entries already copied in
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{entries: make([]sim.SimLogEntry, feedMaxEntries)}
}

// Add appends an entry, overwriting the oldest once full. Per-tick launcher
// entries are skipped; they would push everything else off the panel.
func (f *EventFeed) Add(e sim.SimLogEntry) {
	if e.Category == sim.CatLauncher {
		return
	}
	f.entries[f.head] = e
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Sync copies in whatever the log recorded since the last call.
func (f *EventFeed) Sync(sl *sim.SimLog) {
	all := sl.Entries()
	for _, e := range all[f.seen:] {
		f.Add(e)
	}
	f.seen = len(all)
}

// Recent returns entries oldest first.
func (f *EventFeed) Recent() []sim.SimLogEntry {
	out := make([]sim.SimLogEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		out[i] = f.entries[idx]
	}
	return out
}

// Draw renders the panel at panelX, newest entry at the bottom.
func (f *EventFeed) Draw(screen *ebiten.Image, panelX, panelH int) {
	px := float32(panelX)
	vector.FillRect(screen, px, 0, feedPanelWidth, float32(panelH), color.RGBA{R: 10, G: 11, B: 14, A: 250}, false)
	vector.StrokeLine(screen, px, 0, px, float32(panelH), 1, color.RGBA{R: 60, G: 66, B: 80, A: 255}, false)
	vector.FillRect(screen, px, 0, feedPanelWidth, 16, color.RGBA{R: 22, G: 26, B: 34, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 1)

	entries := f.Recent()
	maxVisible := (panelH - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	y := 20
	for i, e := range entries {
		if i >= len(entries)-3 {
			vector.FillRect(screen, px+2, float32(y), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 30, G: 34, B: 44, A: 160}, false)
		}
		if c, ok := categoryColors[e.Category]; ok {
			vector.FillRect(screen, px+5, float32(y+4), 3, 5, c, false)
		}
		ebitenutil.DebugPrintAt(screen, feedLine(e), panelX+12, y-2)
		y += feedLineHeight
	}
}

func feedLine(e sim.SimLogEntry) string {
	return fmt.Sprintf("%5d %-4s %s", e.Tick, e.Source, e.Value)
}
