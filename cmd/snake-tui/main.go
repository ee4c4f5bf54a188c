// Command snake-tui plays the portfolio snake widget in a terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	_ "github.com/joho/godotenv/autoload"

	"github.com/carcruz97/portfolio/internal/config"
	"github.com/carcruz97/portfolio/internal/cv"
	"github.com/carcruz97/portfolio/internal/snake"
	"github.com/carcruz97/portfolio/internal/term"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	if err := run(screen, cfg.Snake, cfg.DefaultLanguage); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("snake-tui: %v", err)
	}
}

func run(screen tcell.Screen, rules snake.Rules, lang cv.Language) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snaps := make(chan snake.Snapshot, 1)
	runner := snake.NewRunner(snake.New(rules, nil), func(s snake.Snapshot) {
		// Keep only the newest snapshot if drawing falls behind.
		select {
		case <-snaps:
		default:
		}
		snaps <- s
	})

	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	events := make(chan tcell.Event, 16)
	go screen.ChannelEvents(events, ctx.Done())

	r := &term.Renderer{Screen: screen, Lang: lang}
	r.Center()
	last := runner.Snapshot()

	for {
		select {
		case err := <-done:
			return err

		case snap := <-snaps:
			last = snap
			r.Draw(last)

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				r.Center()
				r.Draw(last)
			case *tcell.EventKey:
				action, dir := term.Decode(ev)
				switch action {
				case term.Steer:
					runner.SetHeading(dir)
				case term.Restart:
					runner.Reset()
				case term.ToggleLanguage:
					r.Lang = r.Lang.Toggle()
					r.Draw(last)
				case term.Quit:
					cancel()
					return <-done
				}
			}
		}
	}
}
