package main

import (
	"flag"
	"log"

	"github.com/Garsondee/Cannon-Arcade/internal/game"
	"github.com/Garsondee/Cannon-Arcade/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	players := flag.Int("players", 1, "number of launchers (1 or 2)")
	seed := flag.Int64("seed", 0, "RNG seed, 0 for a random session")
	configPath := flag.String("config", "", "optional YAML tuning file")
	verbose := flag.Bool("v", false, "debug logging")
	oval := flag.Bool("oval", false, "fire oval projectiles")
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := sim.DefaultConfig()
	if *configPath != "" {
		cfg, err = sim.LoadConfig(*configPath)
		if err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
	}
	cfg = applyFlags(cfg, explicitFlags(flag.CommandLine), *players, *oval)
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid settings", zap.Error(err))
	}

	m := sim.NewManager(cfg, sim.WithSeed(*seed), sim.WithLogger(logger))
	g := game.New(m, logger)

	ebiten.SetWindowTitle("Cannon Arcade")
	ebiten.SetWindowSize(g.WindowSize())
	ebiten.SetTPS(60)
	logger.Info("session start", zap.Int("players", cfg.Players), zap.Int64("seed", *seed))
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}

// explicitFlags returns the names of the flags set on the command line.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags overrides config values only for flags the user passed.
func applyFlags(cfg sim.Config, set map[string]bool, players int, oval bool) sim.Config {
	if set["players"] {
		cfg.Players = players
	}
	if set["oval"] {
		cfg.OvalProjectiles = oval
	}
	return cfg
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	return zc.Build()
}
