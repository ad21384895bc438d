package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lixenwraith/minigold/audio"
	"github.com/lixenwraith/minigold/config"
	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/engine"
	"github.com/lixenwraith/minigold/event"
	"github.com/lixenwraith/minigold/gamemode"
	"github.com/lixenwraith/minigold/logging"
	"github.com/lixenwraith/minigold/parameter"
	"github.com/lixenwraith/minigold/recorder"
	"github.com/lixenwraith/minigold/status"
	"github.com/lixenwraith/minigold/system"
	"github.com/lixenwraith/minigold/telemetry"
)

var (
	configFlag  = flag.String("config", "", "Config file (json, yaml or toml)")
	pawnFlag    = flag.String("pawn", "", "Override default pawn: minigold, floating")
	noAudioFlag = flag.Bool("no-audio", false, "Disable sound")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if *pawnFlag != "" {
		settings.DefaultPawn = *pawnFlag
	}
	if *noAudioFlag {
		settings.Audio = false
	}

	log, logCloser, err := logging.New(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return 1
	}
	defer logCloser.Close()

	class, err := gamemode.ParsePawnClass(settings.DefaultPawn)
	if err != nil {
		log.Error().Err(err).Msg("Invalid default pawn")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	mode := gamemode.Mode{DefaultPawn: class}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	// Engine goroutines restore the terminal before reporting a crash
	core.SetCrashHandler(func(r any, stack []byte) {
		screen.Fini()
		log.Error().Interface("panic", r).Bytes("stack", stack).Msg("Game crashed")
		fmt.Fprintf(os.Stderr, "\r\nMINIGOLD CRASHED: %v\r\n%s\r\n", r, stack)
		os.Exit(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	world := engine.NewWorld(
		engine.WithLogger(log),
		engine.WithTuning(settings.Tuning),
	)
	system.Install(world)

	sink, err := telemetry.NewSink(world, meterFor(settings))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create telemetry sink")
		return 1
	}
	world.AddSystem(sink)

	if settings.Audio {
		player := audio.NewPlayer(nil)
		if err := player.Initialize(); err != nil {
			log.Warn().Err(err).Msg("Audio initialization failed, continuing without audio")
		} else {
			world.Resources.Audio = player
			world.Resources.Status.Bools.Get(status.KeyAudioEnabled).Store(true)
			defer player.Cleanup()
		}
	}

	if settings.Recorder.Enabled {
		if rec, err := openRecorder(world, settings, class, log); err != nil {
			log.Warn().Err(err).Msg("Recorder unavailable, continuing without it")
		} else {
			world.AddSystem(rec)
			defer func() {
				if err := rec.Close(); err != nil {
					log.Error().Err(err).Msg("Recorder close failed")
				}
			}()
		}
	}

	if settings.Influx.Enabled {
		tags := map[string]string{"pawn": class.String()}
		exporter, closeInflux, err := telemetry.ConnectInflux(ctx, settings.Influx, tags, log)
		if err != nil {
			log.Warn().Err(err).Msg("InfluxDB unavailable, continuing without it")
		} else {
			defer closeInflux()
			core.Go(func() { exporter.Run(ctx, world.Resources.Status, settings.Influx.Interval) })
		}
	}

	var player atomic.Uint64
	world.RunSafe(func() {
		player.Store(uint64(populateArena(world, mode)))
	})
	current := func() core.Entity { return core.Entity(player.Load()) }

	clock := engine.NewClockScheduler(world, settings.TickInterval)
	clock.OnReset(func() {
		player.Store(uint64(populateArena(world, mode)))
	})
	clock.Start(ctx)
	defer clock.Stop()

	log.Info().
		Str("pawn", class.String()).
		Dur("tick", settings.TickInterval).
		Msg("Game started")

	return loop(screen, world, clock, current)
}

// loop runs input and rendering on the main goroutine until the player quits
func loop(screen tcell.Screen, world *engine.World, clock *engine.ClockScheduler, current func() core.Entity) int {
	events := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	frameTicker := time.NewTicker(parameter.FrameInterval)
	defer frameTicker.Stop()

	ctrl := newController()
	v := newView(screen)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ctrl.handleKey(ev, time.Now()) {
				case actionQuit:
					return 0
				case actionFire:
					world.PushEvent(event.EventShipFireRequest, &event.ShipFireRequestPayload{Ship: current()})
				case actionReset:
					clock.RequestReset()
				case actionPause:
					if clock.IsPaused() {
						clock.Resume()
					} else {
						clock.Pause()
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			if fwd, turn, send := ctrl.sample(time.Now()); send {
				world.PushEvent(event.EventShipInput, &event.ShipInputPayload{
					Ship:    current(),
					Forward: fwd,
					Turn:    turn,
				})
			}

			world.RunSafe(func() {
				pos, alive := v.draw(world, current(), clock.IsPaused())
				if listener, ok := world.Resources.Audio.(*audio.Player); ok && alive {
					listener.SetListener(pos)
				}
			})
			screen.Show()
		}
	}
}

// meterFor returns the global OTel meter when enabled, a no-op meter otherwise
func meterFor(s *config.Settings) metric.Meter {
	if s.Otel.Enabled {
		return otel.Meter(s.Otel.ServiceName)
	}
	return noop.NewMeterProvider().Meter(s.Otel.ServiceName)
}

func openRecorder(world *engine.World, s *config.Settings, class gamemode.PawnClass, log zerolog.Logger) (*recorder.Recorder, error) {
	db, err := recorder.Open(s.Recorder, log)
	if err != nil {
		return nil, err
	}
	return recorder.New(world, db, s.Recorder, class.String())
}
