package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/geomlab/config"
	"github.com/lixenwraith/geomlab/core"
	"github.com/lixenwraith/geomlab/input"
	"github.com/lixenwraith/geomlab/logging"
	"github.com/lixenwraith/geomlab/parameter"
	"github.com/lixenwraith/geomlab/scene"
	"github.com/lixenwraith/geomlab/status"
)

// frameSmoothing weights each new frame time in the displayed average
const frameSmoothing = 0.1

var (
	configFlag = flag.String("config", "", "YAML config file, defaults apply when empty")
	sceneFlag  = flag.String("scene", "", "Scene shown first, overrides the config")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed, overrides the config when non-zero")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *sceneFlag != "" {
		cfg.Scene = *sceneFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("testbed stopped", zap.Error(err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}
	scenes, err := scene.Build(cfg, log, cfg.Seed)
	if err != nil {
		return fmt.Errorf("build scenes: %w", err)
	}
	registry, err := scene.NewRegistry(log, scenes...)
	if err != nil {
		return err
	}
	if cfg.Scene != "" {
		if err := registry.Select(cfg.Scene); err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.RegisterScreen(screen)
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents)
	screen.HideCursor()

	tracker := input.NewTracker(keys, parameter.InputInitialHold, parameter.InputRepeatHold)
	stats := status.NewRegistry()
	frameMs := stats.Floats.Get("frame_ms")
	v := newView(screen, stats)
	tracker.SetScreenSize(v.viewSize())

	log.Info("testbed started",
		zap.Uint64("seed", cfg.Seed),
		zap.Int("scenes", registry.Len()),
		zap.String("scene", registry.Active().Name()))

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if tracker.HandleKey(ev, time.Now()) == input.Quit {
					log.Info("testbed quit", zap.Any("metrics", stats.Snapshot()))
					return nil
				}
			case *tcell.EventMouse:
				tracker.HandleMouse(ev)
			case *tcell.EventResize:
				screen.Sync()
				v.resize()
				tracker.SetScreenSize(v.viewSize())
			}

		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), parameter.MaxFrameDelta)
			last = now
			frameMs.Smooth(dt*1000, frameSmoothing)

			registry.Update(dt, tracker.Frame(now))
			v.draw(registry)
			screen.Show()
		}
	}
}
