package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sixer/audio"
	"github.com/lixenwraith/sixer/config"
	"github.com/lixenwraith/sixer/core"
	"github.com/lixenwraith/sixer/engine"
	"github.com/lixenwraith/sixer/event"
	"github.com/lixenwraith/sixer/input"
	"github.com/lixenwraith/sixer/parameter"
	"github.com/lixenwraith/sixer/render"
	"github.com/lixenwraith/sixer/rng"
)

var (
	configFlag     = flag.String("config", "", "YAML tuning file (defaults built in)")
	keymapFlag     = flag.String("keymap", "", "YAML keymap override file")
	seedFlag       = flag.Uint64("seed", 0, "Random seed for a replayable session (0 = random)")
	tpsFlag        = flag.Int("tps", parameter.TicksPerSecond, "Simulation ticks per second")
	debugFlag      = flag.Bool("debug", false, "Write a debug log to logs/sixer.log")
	muteFlag       = flag.Bool("mute", false, "Start with sound muted")
	dumpConfigFlag = flag.Bool("dump-config", false, "Print the effective tuning as YAML and exit")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "sixer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	tuning, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *dumpConfigFlag {
		data, err := config.Marshal(tuning)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	if *tpsFlag <= 0 {
		return fmt.Errorf("tps must be positive, got %d", *tpsFlag)
	}

	keys, err := loadKeys(*keymapFlag)
	if err != nil {
		return err
	}

	var src rng.Source
	if *seedFlag != 0 {
		src = rng.NewXorshift(*seedFlag)
	} else {
		src = rng.NewRandom()
	}

	session, err := engine.NewSession(tuning, src, engine.WithLogger(log.Default()))
	if err != nil {
		return err
	}
	log.Printf("session %s: %d attempts, target %d, seed %d, %d tps",
		session.ID(), tuning.Attempts, tuning.Target, *seedFlag, *tpsFlag)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	// Goroutine crashes restore the terminal before printing the stack
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	audioCfg := audio.LoadAudioConfig()
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing without sound: %v", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(*muteFlag)

	renderer := render.NewRenderer(screen)
	renderer.SetMuted(sound.Muted() || !sound.Available())

	// Last read of the session from this goroutine until the scheduler stops
	last := session.Snapshot()
	renderer.Draw(last)

	// Latest frame wins; the draw loop never falls behind the clock
	frames := make(chan engine.Snapshot, 1)
	cs := engine.NewClockScheduler(session, time.Second/time.Duration(*tpsFlag), func(snap engine.Snapshot, evs []event.GameEvent) {
		sound.PlayAll(evs)
		logEvents(evs)
		publish(frames, snap)
	})
	cs.Start()
	defer cs.Stop()

	termEvents := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			termEvents <- ev
		}
	})

	mapper := input.NewMapper(keys)

	for {
		select {
		case snap := <-frames:
			last = snap
			renderer.Draw(snap)

		case ev := <-termEvents:
			switch mapper.Map(ev) {
			case input.IntentQuit:
				cs.Stop()
				logStats(session)
				return nil
			case input.IntentAction:
				cs.Send(engine.CommandAction)
			case input.IntentRestart:
				cs.Send(engine.CommandRestart)
			case input.IntentToggleMute:
				renderer.SetMuted(sound.ToggleMute() || !sound.Available())
				renderer.Draw(last)
			case input.IntentResize:
				screen.Sync()
				renderer.Draw(last)
			}
		}
	}
}

func loadKeys(path string) (*input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	if path == "" {
		return keys, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return input.MergeKeyTable(keys, override), nil
}

// publish replaces any undrawn frame with snap
func publish(frames chan engine.Snapshot, snap engine.Snapshot) {
	select {
	case frames <- snap:
		return
	default:
	}
	select {
	case <-frames:
	default:
	}
	select {
	case frames <- snap:
	default:
	}
}

func logEvents(evs []event.GameEvent) {
	for _, ev := range evs {
		if ev.Type == event.EventPhaseChanged {
			continue
		}
		if ev.Reason != event.ReasonNone {
			log.Printf("tick %d attempt %d: %s (%s)", ev.Tick, ev.Attempt, ev.Type, ev.Reason)
		} else {
			log.Printf("tick %d attempt %d: %s", ev.Tick, ev.Attempt, ev.Type)
		}
	}
}

func logStats(session *engine.Session) {
	values := session.Stats().Values()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		log.Printf("stat %s = %d", k, values[k])
	}
}
