package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"ebiten-pong/audio/speaker"
	"ebiten-pong/config"
	"ebiten-pong/simulation"
	"ebiten-pong/spawners"
	"ebiten-pong/systems"
	"ebiten-pong/terminal"
)

const (
	frontendEbiten   = "ebiten"
	frontendTerminal = "terminal"
)

type options struct {
	configPath  string
	frontend    string
	headless    bool
	maxTicks    uint64
	seed        uint64
	logFile     string
	writeConfig string
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	flag.StringVar(&opts.frontend, "frontend", frontendEbiten, "frontend to run: ebiten or terminal")
	flag.BoolVar(&opts.headless, "headless", false, "run without a frontend, paddles on autopilot")
	flag.Uint64Var(&opts.maxTicks, "max-ticks", 60*60, "ticks to simulate in headless mode")
	flag.Uint64Var(&opts.seed, "seed", 0, "serve seed, overrides match.seed (0 keeps the config value)")
	flag.StringVar(&opts.logFile, "logfile", "", "write logs to this file")
	flag.StringVar(&opts.writeConfig, "write-config", "", "write the effective config to this path and exit")
	flag.Parse()
	return opts
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	if err := setupLogging(opts); err != nil {
		return err
	}

	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
		log.Printf("loaded config %s", opts.configPath)
	}
	if opts.seed != 0 {
		cfg.Match.Seed = opts.seed
	}

	if opts.writeConfig != "" {
		if err := config.Save(opts.writeConfig, cfg); err != nil {
			return err
		}
		log.Printf("wrote config %s", opts.writeConfig)
		return nil
	}

	seed := cfg.Match.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("serve seed %d", seed)
	rng := spawners.NewRand(seed)

	switch {
	case opts.headless:
		return runHeadless(cfg, rng, opts.maxTicks)
	case opts.frontend == frontendTerminal:
		return runTerminal(cfg, rng)
	case opts.frontend == frontendEbiten:
		return runEbiten(cfg, rng)
	default:
		return fmt.Errorf("unknown frontend %q", opts.frontend)
	}
}

// setupLogging routes log output. The terminal frontend owns the tty, so
// without a log file its logs are dropped.
func setupLogging(opts options) error {
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(f)
		return nil
	}
	if opts.frontend == frontendTerminal && !opts.headless {
		log.SetOutput(io.Discard)
	}
	return nil
}

func runHeadless(cfg config.Config, rng spawners.Rand, maxTicks uint64) error {
	sim, err := simulation.New(cfg, rng, simulation.WithLogger(func(m string) { log.Print(m) }))
	if err != nil {
		return err
	}

	started := time.Now()
	res := simulation.RunHeadless(sim, 1.0/60.0, maxTicks, simulation.Autopilot)
	log.Printf("headless: %d ticks (%.1fs game time) in %v, scores %s, %d goals",
		res.Ticks, res.GameTime, time.Since(started), res.Scores, res.Goals)
	if res.MatchOver {
		log.Printf("headless: player %d won", res.Winner+1)
	}
	return nil
}

func runTerminal(cfg config.Config, rng spawners.Rand) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()

	var player systems.TonePlayer
	if cfg.Audio.Enabled {
		if p, err := speaker.New(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("audio initialization failed: %v", err)
		} else {
			player = p
		}
	}
	messages := systems.GetMessageLog()
	audioSystem := systems.NewAudioSystem(player, cfg.Audio.Volume, messages.Add)
	defer audioSystem.Close()

	frontend, err := terminal.New(screen, func() (*simulation.Simulation, error) {
		messages.Clear()
		return simulation.New(cfg, rng,
			simulation.WithLogger(messages.Add),
			simulation.WithSubscribers(messages.Subscribe, audioSystem.Subscribe, logMatchResult))
	})
	if err != nil {
		return err
	}

	return frontend.Run()
}
