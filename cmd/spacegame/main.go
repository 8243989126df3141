package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/lixenwraith/spacegame/audio"
	"github.com/lixenwraith/spacegame/game"
	"github.com/lixenwraith/spacegame/input"
	"github.com/lixenwraith/spacegame/parameter"
)

var (
	configFlag    = flag.String("config", "", "Settings file (.toml, .yaml, .yml); empty uses the built-in tuning")
	seedFlag      = flag.String("seed", "", "RNG seed: number or any text; empty picks one from the clock")
	profileFlag   = flag.String("profile", "", "Write a profile to the working directory: cpu, mem")
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/spacegame.log")
	logLevelFlag  = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	logFormatFlag = flag.String("log-format", "console", "Log format: console, json")
	muteFlag      = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "spacegame: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, logFile, err := setupLogging(*debugFlag, *logLevelFlag, *logFormatFlag)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger = logger.With(zap.String("run", uuid.NewString()))
	defer logger.Sync()

	switch *profileFlag {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		return fmt.Errorf("unknown profile mode %q", *profileFlag)
	}

	cfg := parameter.Reference()
	if *configFlag != "" {
		if cfg, err = parameter.Load(*configFlag); err != nil {
			return err
		}
	}
	seed := parseSeed(*seedFlag, time.Now)
	logger.Info("starting", zap.String("config", *configFlag), zap.Uint64("seed", seed))

	hold := input.NewHoldTracker()
	session, err := game.NewSession(cfg,
		game.WithSeed(seed),
		game.WithLogger(logger),
		game.WithInput(hold),
	)
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager(audio.LoadAudioConfig(), logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	defer sound.Cleanup()
	if *muteFlag {
		sound.ToggleMute()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	a := newApp(screen, session, hold, sound, logger)
	a.renderer.SetMuted(sound.IsMuted())
	defer a.guard.restore()
	defer func() {
		if r := recover(); r != nil {
			a.guard.handleCrash(r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = a.run(ctx)
	logger.Info("exiting",
		zap.Int("score", session.Score()),
		zap.Stringer("state", session.State()),
		zap.Int64("frame", session.Frame()),
	)
	return err
}
