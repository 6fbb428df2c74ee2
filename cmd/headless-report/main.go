package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/Garsondee/Cannon-Arcade/internal/sim"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// stallWindow is how long a run may go without a hit before it is flagged.
const stallWindow = 1200

type runStats struct {
	runIndex int
	seed     int64
	ticks    int

	firstFireTick  int
	firstHitTick   int
	lastHitTick    int
	firstClearTick int // tick wave 2 spawned

	hits      int
	multiHits int // ticks where one projectile hit two or more targets
	byShape   map[string]int
	byShooter map[string]int // launcher label -> shots
	hitsBy    map[string]int // launcher label -> targets its projectiles hit
	tailLog   string         // last -tail ticks of events, stalled runs only

	report sim.Report
}

type options struct {
	runs       int
	ticks      int
	seedBase   int64
	seedStep   int64
	players    int
	configPath string
	verbose    bool
	tail       int
}

func main() {
	var o options
	flag.IntVar(&o.runs, "runs", 5, "number of headless runs")
	flag.IntVar(&o.ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&o.seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&o.seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&o.players, "players", 1, "launchers per run (1 or 2)")
	flag.StringVar(&o.configPath, "config", "", "optional YAML tuning file")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.IntVar(&o.tail, "tail", 0, "print the last N ticks of events for stalled runs")
	flag.Parse()

	log := newLogger(o.verbose)
	defer func() { _ = log.Sync() }()

	if o.runs <= 0 || o.ticks <= 0 {
		fmt.Println("error: -runs and -ticks must be > 0")
		os.Exit(2)
	}

	cfg := sim.DefaultConfig()
	if o.configPath != "" {
		loaded, err := sim.LoadConfig(o.configPath)
		if err != nil {
			log.Fatal("load config", zap.Error(err))
		}
		cfg = loaded
	}
	cfg = applyFlags(cfg, o, explicitFlags(flag.CommandLine))
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid settings", zap.Error(err))
	}

	fmt.Printf("=== Headless Arcade Report ===\n")
	fmt.Printf("runs=%d ticks=%d players=%d seed_base=%d seed_step=%d\n\n",
		o.runs, o.ticks, cfg.Players, o.seedBase, o.seedStep)

	all, err := runAll(context.Background(), cfg, o, log)
	if err != nil {
		log.Fatal("runs failed", zap.Error(err))
	}
	for _, rs := range all {
		printRun(rs)
	}
	printAggregate(all)
}

// explicitFlags returns the names of the flags set on the command line.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags overrides config values only for flags the user passed, so a
// tuning file's settings survive flag defaults.
func applyFlags(cfg sim.Config, o options, set map[string]bool) sim.Config {
	if set["players"] {
		cfg.Players = o.players
	}
	return cfg
}

func newLogger(verbose bool) *zap.Logger {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.OutputPaths = []string{"stderr"}
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := zc.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// runAll executes every seeded run in parallel. Each goroutine owns its own
// session; results land in run order.
func runAll(ctx context.Context, cfg sim.Config, o options, log *zap.Logger) ([]runStats, error) {
	out := make([]runStats, o.runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < o.runs; i++ {
		seed := o.seedBase + int64(i)*o.seedStep
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = runSession(i+1, seed, o.ticks, o.tail, cfg, log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func runSession(runIndex int, seed int64, ticks, tail int, cfg sim.Config, log *zap.Logger) runStats {
	s := sim.NewSession(
		sim.WithConfig(cfg),
		sim.WithSessionSeed(seed),
		sim.WithSessionLogger(log.With(zap.Int("run", runIndex))),
	)
	s.RunTicks(ticks)

	rs := collectStats(s.SimLog, cfg.Players)
	rs.runIndex = runIndex
	rs.seed = seed
	rs.ticks = ticks
	rs.report = s.Manager.Report()
	if stalled, _ := detectStall(rs); stalled && tail > 0 {
		rs.tailLog = s.SimLog.FormatRange(max(1, ticks-tail+1), ticks)
	}
	log.Debug("run complete",
		zap.Int("run", runIndex),
		zap.Int64("seed", seed),
		zap.Int("score", rs.report.Score),
		zap.Uint64("digest", rs.report.Digest))
	return rs
}

// collectStats derives per-run markers and counters from the event log.
func collectStats(sl *sim.SimLog, launchers int) runStats {
	entries := sl.Entries()
	rs := runStats{
		firstFireTick:  firstTick(entries, sim.CatFire, "release", ""),
		firstHitTick:   firstTick(entries, sim.CatHit, "target", ""),
		lastHitTick:    -1,
		firstClearTick: firstTick(entries, sim.CatWave, "spawn", "wave 2:"),
		byShape:        map[string]int{},
		byShooter:      map[string]int{},
		hitsBy:         map[string]int{},
	}
	type shot struct {
		tick   int
		source string
	}
	perShot := map[shot]int{}
	for _, e := range entries {
		if e.Category == sim.CatHit {
			rs.hits++
			rs.lastHitTick = e.Tick
			rs.byShape[hitShape(e.Value)]++
			perShot[shot{e.Tick, e.Source}]++
		}
	}
	for _, n := range perShot {
		if n >= 2 {
			rs.multiHits++
		}
	}
	for i := 0; i < launchers; i++ {
		label := fmt.Sprintf("L%d", i)
		shots, hits := launcherTally(sl, label)
		rs.byShooter[label] = shots
		rs.hitsBy[label] = hits
	}
	return rs
}

// launcherTally counts a launcher's shots and the hits scored by the
// projectiles it fired. Fire values start with the projectile label.
func launcherTally(sl *sim.SimLog, label string) (shots, hits int) {
	for _, e := range sl.FilterSource(label) {
		if e.Category != sim.CatFire {
			continue
		}
		shots++
		proj, _, _ := strings.Cut(e.Value, " ")
		for _, pe := range sl.FilterSource(proj) {
			if pe.Category == sim.CatHit {
				hits++
			}
		}
	}
	return shots, hits
}

// hitShape extracts the shape from a hit value like "T7 rectangle/bounce".
func hitShape(value string) string {
	_, rest, ok := strings.Cut(value, " ")
	if !ok {
		return "unknown"
	}
	shape, _, _ := strings.Cut(rest, "/")
	return shape
}

func firstTick(entries []sim.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

// detectStall reports runs that stopped scoring with targets still up.
func detectStall(rs runStats) (bool, string) {
	if rs.report.TargetsLeft == 0 {
		return false, "field_clear"
	}
	if rs.lastHitTick < 0 {
		return true, "no_hits"
	}
	if idle := rs.ticks - rs.lastHitTick; idle >= stallWindow {
		return true, fmt.Sprintf("idle_%d_ticks_targets_left_%d", idle, rs.report.TargetsLeft)
	}
	return false, "scoring"
}

func printRun(rs runStats) {
	r := rs.report
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("markers: first_fire=%d first_hit=%d last_hit=%d wave_clear=%d\n",
		rs.firstFireTick, rs.firstHitTick, rs.lastHitTick, rs.firstClearTick)
	fmt.Printf("totals: fired=%d destroyed=%d settled=%d waves=%d score=%d accuracy=%.2f\n",
		r.Fired, r.Destroyed, r.Settled, r.Waves, r.Score, r.Accuracy())
	fmt.Printf("hits_by_shape: %s  multi_hit_shots=%d\n", joinCounts(rs.byShape), rs.multiHits)
	fmt.Printf("shots_by_launcher: %s  hits_by_launcher: %s\n", joinCounts(rs.byShooter), joinCounts(rs.hitsBy))
	stalled, reason := detectStall(rs)
	fmt.Printf("stalled=%v reason=%s digest=%016x\n", stalled, reason, r.Digest)
	if rs.tailLog != "" {
		fmt.Printf("last events:\n%s", rs.tailLog)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	fired, destroyed, score, stalls := 0, 0, 0, 0
	firstHits := make([]int, 0, len(all))
	clears := make([]int, 0, len(all))
	shapes := map[string]int{}
	for _, rs := range all {
		fired += rs.report.Fired
		destroyed += rs.report.Destroyed
		score += rs.report.Score
		if rs.firstHitTick >= 0 {
			firstHits = append(firstHits, rs.firstHitTick)
		}
		if rs.firstClearTick >= 0 {
			clears = append(clears, rs.firstClearTick)
		}
		for k, v := range rs.byShape {
			shapes[k] += v
		}
		if ok, _ := detectStall(rs); ok {
			stalls++
		}
	}
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d fired_avg=%.1f destroyed_avg=%.1f score_avg=%.1f stalled=%d\n",
		len(all), avg(fired, len(all)), avg(destroyed, len(all)), avg(score, len(all)), stalls)
	fmt.Printf("first_hit_avg=%s first_wave_clear_avg=%s\n", avgTickString(firstHits), avgTickString(clears))
	fmt.Printf("hits_by_shape: %s\n", joinCounts(shapes))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, m[k])
	}
	return strings.Join(parts, ",")
}
