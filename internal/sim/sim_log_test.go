package sim

import (
	"strings"
	"testing"
)

func TestSimLog_FilterAndCount(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "L0", CatFire, "release", "P1 power=10", 10)
	sl.Add(2, "P1", CatHit, "target", "T4 circle/static", 4)
	sl.Add(3, "P1", CatSettle, "rest", "(300,575)", 300)
	sl.Add(5, "L0", CatFire, "release", "P2 power=50", 50)

	if sl.Len() != 4 {
		t.Fatalf("expected 4 entries, got %d", sl.Len())
	}
	if n := sl.CountCategory(CatFire, "release"); n != 2 {
		t.Fatalf("expected 2 fire entries, got %d", n)
	}
	if got := sl.Filter("", "rest"); len(got) != 1 || got[0].Tick != 3 {
		t.Fatalf("key-only filter failed: %+v", got)
	}
	if got := sl.FilterSource("P1"); len(got) != 2 {
		t.Fatalf("expected 2 entries for P1, got %d", len(got))
	}
	if got := sl.FilterTickRange(2, 3); len(got) != 2 {
		t.Fatalf("expected 2 entries in [2,3], got %d", len(got))
	}
	last, ok := sl.LastOf(CatFire, "")
	if !ok || last.NumVal != 50 {
		t.Fatalf("expected last fire at power 50, got %+v ok=%v", last, ok)
	}
	if _, ok := sl.LastOf(CatWave, ""); ok {
		t.Fatal("no wave entries were added")
	}
	if !sl.HasEntry(CatHit, "", "circle") || sl.HasEntry(CatHit, "", "polygon") {
		t.Fatal("HasEntry substring match is wrong")
	}
}

func TestSimLog_VerboseGate(t *testing.T) {
	quiet := NewSimLog(false)
	quiet.AddVerbose(1, "L0", CatLauncher, "power", "12", 12)
	if quiet.Len() != 0 {
		t.Fatal("non-verbose log should drop verbose entries")
	}
	loud := NewSimLog(true)
	loud.AddVerbose(1, "L0", CatLauncher, "power", "12", 12)
	if loud.Len() != 1 {
		t.Fatal("verbose log should keep verbose entries")
	}
}

func TestSimLog_Format(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(42, "P3", CatHit, "target", "T7 rectangle", 7)
	sl.Add(43, "--", CatWave, "spawn", "wave 2", 8)
	line := sl.Entries()[0].String()
	if !strings.HasPrefix(line, "[T=042] P3   hit") || !strings.HasSuffix(line, "T7 rectangle") {
		t.Fatalf("unexpected line format %q", line)
	}
	if got := strings.Count(sl.Format(), "\n"); got != 2 {
		t.Fatalf("expected 2 lines, got %d", got)
	}
	if got := sl.FormatRange(43, 43); !strings.Contains(got, "wave 2") || strings.Contains(got, "T7") {
		t.Fatalf("FormatRange should only include tick 43, got %q", got)
	}
}

func TestSimLog_ManagerRecordsEvents(t *testing.T) {
	sl := NewSimLog(true)
	m := NewManager(DefaultConfig(), WithSeed(3), WithSimLog(sl))
	if !sl.HasEntry(CatWave, "spawn", "wave 1") {
		t.Fatalf("expected wave 1 spawn entry:\n%s", sl.Format())
	}
	if n := sl.CountCategory(CatWave, "target"); n != targetsPerSet {
		t.Fatalf("verbose log should list %d targets, got %d", targetsPerSet, n)
	}
	m.Tick(Intents{ChargeStart: true})
	m.Tick(Intents{FireRelease: true})
	e, ok := sl.LastOf(CatFire, "release")
	if !ok || e.Source != "L0" || e.NumVal != 12 {
		t.Fatalf("expected L0 release at power 12, got %+v ok=%v", e, ok)
	}
	if n := sl.CountCategory(CatLauncher, "power"); n != 2 {
		t.Fatalf("expected one launcher entry per tick, got %d", n)
	}
	sum := sl.Summary(m)
	if !strings.Contains(sum, "Wave 1") || !strings.Contains(sum, "Used=1") {
		t.Fatalf("summary missing fields:\n%s", sum)
	}
}
