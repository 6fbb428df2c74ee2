package sim

import (
	"fmt"
	"strings"
)

// Event categories recorded by the Manager.
const (
	CatFire     = "fire"
	CatHit      = "hit"
	CatSettle   = "settle"
	CatWave     = "wave"
	CatLauncher = "launcher"
)

// SimLogEntry is one recorded simulation event.
type SimLogEntry struct {
	Tick     int
	Source   string  // "L0", "P12", "T7", or "--" for global events
	Category string  // fire, hit, settle, wave, launcher
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] P3   hit       target          T7 rectangle
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-15s %s",
		e.Tick, e.Source, e.Category, e.Key, e.Value)
}

// SimLog collects structured events for a session. It is unbounded and
// machine-readable; the headless report and the tests read it back.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick launcher entries
// (aim, power) are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, source, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Source:   source,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, source, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, source, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Len returns the number of recorded entries.
func (sl *SimLog) Len() int {
	return len(sl.entries)
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterSource returns entries for a specific source label.
func (sl *SimLog) FilterSource(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Source == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	n := 0
	for _, e := range sl.entries {
		if (category == "" || e.Category == category) && (key == "" || e.Key == key) {
			n++
		}
	}
	return n
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	for i := len(sl.entries) - 1; i >= 0; i-- {
		e := sl.entries[i]
		if (category == "" || e.Category == category) && (key == "" || e.Key == key) {
			return e, true
		}
	}
	return SimLogEntry{}, false
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a tick range.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	var sb strings.Builder
	for _, e := range sl.FilterTickRange(fromTick, toTick) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the manager's state.
func (sl *SimLog) Summary(m *Manager) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", m.TickCount())
	fmt.Fprintf(&sb, "Wave %d  state=%s\n", m.Wave(), m.State())

	byShape := map[ShapeKind]int{}
	for _, t := range m.targets {
		byShape[t.Shape]++
	}
	sb.WriteString("Targets: ")
	for _, k := range []ShapeKind{Circle, Ellipse, Rectangle, Polygon} {
		fmt.Fprintf(&sb, "%s=%d  ", k, byShape[k])
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Projectiles in flight: %d\n", len(m.projectiles))

	s := m.Score()
	fmt.Fprintf(&sb, "Destroyed=%d  Used=%d  Total=%d\n", s.TargetsDestroyed, s.ProjectilesUsed, s.Score())
	fmt.Fprintf(&sb, "Events: fire=%d hit=%d settle=%d wave=%d\n",
		sl.CountCategory(CatFire, ""), sl.CountCategory(CatHit, ""),
		sl.CountCategory(CatSettle, ""), sl.CountCategory(CatWave, ""))
	return sb.String()
}
