package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/rollaball/audio"
	"github.com/lixenwraith/rollaball/config"
	"github.com/lixenwraith/rollaball/engine"
	"github.com/lixenwraith/rollaball/game"
	"github.com/lixenwraith/rollaball/input"
	"github.com/lixenwraith/rollaball/locomotion"
	"github.com/lixenwraith/rollaball/logger"
)

var (
	configFlag  = flag.String("config", "", "YAML config file")
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/rollaball.log")
	modeFlag    = flag.String("mode", "", "Control mode: velocity, translate (overrides config)")
	scriptFlag  = flag.String("script", "", "Run headless with a key script, e.g. \"Wx10 . AD\"")
	bareFlag    = flag.Bool("bare", false, "With -script, drive the locomotion component without the ECS host")
	noAudioFlag = flag.Bool("no-audio", false, "Disable sound")
)

func main() {
	flag.Parse()

	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "rollaball: %v\n", err)
		os.Exit(1)
	}
}

func run(stdout io.Writer) error {
	cfg, err := loadConfig(*configFlag, *modeFlag)
	if err != nil {
		return err
	}

	log, closer, err := logger.Setup(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
		Debug:  *debugFlag,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	if *scriptFlag != "" {
		ticks, err := input.ParseScript(*scriptFlag)
		if err != nil {
			return err
		}
		if *bareFlag {
			runBare(stdout, cfg, ticks)
			return nil
		}
		g, err := game.New(cfg, game.Options{Logger: log})
		if err != nil {
			return err
		}
		defer g.Close()
		runHeadless(stdout, g, ticks)
		return nil
	}

	var player engine.AudioPlayer = audio.NopPlayer{}
	if cfg.Audio.Enabled && !*noAudioFlag {
		if bp, err := audio.NewBeepPlayer(); err == nil {
			defer bp.Close()
			player = bp
		} else {
			// Non-fatal, game runs without sound
			log.Warn("audio initialization failed", "err", err)
		}
	}

	g, err := game.New(cfg, game.Options{Audio: player, Logger: log})
	if err != nil {
		return err
	}
	defer g.Close()

	return runInteractive(g)
}

// loadConfig reads path over the defaults, then applies the mode override
// Empty path keeps the defaults, empty mode keeps the configured mode
func loadConfig(path, mode string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if mode != "" {
		m, err := locomotion.ParseControlMode(mode)
		if err != nil {
			return nil, fmt.Errorf("-mode: %w", err)
		}
		cfg.Sim.Mode = m
	}
	return cfg, cfg.Validate()
}
