package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/galangua/audio"
	"github.com/lixenwraith/galangua/config"
	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/render"
	"github.com/lixenwraith/galangua/vmath"
)

const appName = "galangua"

var (
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/galangua.log")
	configFlag = flag.String("config", "", "YAML tuning file overriding the built-in pacing")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	tuning := loadTuning(*configFlag)
	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[Main] seed %d", seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	// Panic Recovery: restore the terminal before the trace is printed
	defer func() { core.HandleCrash(recover(), screen.Fini) }()

	sm := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sm.Initialize(); err != nil {
		log.Printf("[Audio] initialization failed: %v (continuing without audio)", err)
	}
	defer sm.Cleanup()

	scores := openHighScores(appName)
	rng := vmath.NewFastRand(seed)
	g := newGame(tuning, rng, sm, scores.Best())
	r := render.NewTerminalRenderer(screen, 0, 0)

	events := make(chan tcell.Event, 64)
	go func() {
		defer func() { core.HandleCrash(recover(), screen.Fini) }()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	var ctl controls
	for {
		select {
		case ev, ok := <-events:
			if !ok || !ctl.handleEvent(ev) {
				submitScore(scores, g)
				return
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				screen.Sync()
			}
		case <-ticker.C:
			if g.over && ctl.start {
				submitScore(scores, g)
				g = newGame(tuning, rng, sm, scores.Best())
			}
			ctl.start = false
			g.update(ctl.next())
			g.draw(r)
		}
	}
}

// loadTuning reads the optional tuning file, falling back to defaults on any error
func loadTuning(path string) *config.Tuning {
	if path == "" {
		return config.Default()
	}
	t, err := config.Load(path)
	if err != nil {
		log.Printf("[Config] %v (using defaults)", err)
		return config.Default()
	}
	log.Printf("[Config] loaded %s", path)
	return t
}

func submitScore(scores *highScoreStore, g *game) {
	best, err := scores.Submit(g.score, g.stage.Stage())
	if err != nil {
		log.Printf("[Score] %v", err)
	}
	if best {
		log.Printf("[Score] new high score %d", g.score)
	}
}
