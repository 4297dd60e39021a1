// duelpong-tui runs the simulation locally in the terminal: a fixed-timestep
// host loop driving the world, arrow keys for player 1, the tracking
// controller for player 2.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"duelpong/game"
	"duelpong/render"
	"duelpong/utils"
)

// keyHoldWindow is how long a pressed arrow key keeps the paddle moving
// after its last repeat. Terminals deliver no key-up events, so release is
// inferred from the repeat stream going quiet.
const keyHoldWindow = 150 * time.Millisecond

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := utils.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "terminal:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "terminal:", err)
		os.Exit(1)
	}
	defer screen.Fini()

	run(screen, cfg)
}

func run(screen tcell.Screen, cfg utils.Config) {
	world := game.NewWorld(cfg)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(cfg.TickPeriod)
	defer ticker.Stop()

	var lastKeyAt time.Time
	keyHeld := false

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					close(quit)
					return
				case tcell.KeyUp:
					game.ApplyKeyEvent(world.Paddle1, game.KeyEvent{Kind: game.KeyDown, Key: game.KeyMoveUp}, cfg.InputSpeed)
					lastKeyAt = time.Now()
					keyHeld = true
				case tcell.KeyDown:
					game.ApplyKeyEvent(world.Paddle1, game.KeyEvent{Kind: game.KeyDown, Key: game.KeyMoveDown}, cfg.InputSpeed)
					lastKeyAt = time.Now()
					keyHeld = true
				case tcell.KeyRune:
					if ev.Rune() == 'q' {
						close(quit)
						return
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			// Synthesized key-up once the repeat stream goes quiet.
			if keyHeld && time.Since(lastKeyAt) > keyHoldWindow {
				game.ApplyKeyEvent(world.Paddle1, game.KeyEvent{Kind: game.KeyUp, Key: game.KeyMoveUp}, cfg.InputSpeed)
				keyHeld = false
			}

			game.SteerPaddle(world.Paddle2, world.Ball, cfg.AISpeed)
			world.Tick(1)
			draw(screen, world.Snapshot())
		}
	}
}

func draw(screen tcell.Screen, snap game.Snapshot) {
	width, height := screen.Size()
	cols, rows := width-2, height-4
	if cols < 10 || rows < 5 {
		return
	}

	frame := render.Frame(snap, cols, rows)
	screen.Clear()
	style := tcell.StyleDefault
	for y, line := range strings.Split(frame, "\n") {
		for x, ch := range line {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
	screen.Show()
}
