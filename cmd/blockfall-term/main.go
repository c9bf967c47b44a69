// Command blockfall-term plays blockfall in a terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/internal/loop"
	"github.com/plus3/blockfall/internal/play"
	"github.com/plus3/blockfall/internal/settings"
	"github.com/plus3/blockfall/internal/termui"
	"github.com/plus3/blockfall/scores"
	"github.com/plus3/blockfall/tetris"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "blockfall-term",
		Usage: "play blockfall in the terminal",
		Flags: append(settings.Flags(),
			&cli.StringFlag{
				Name:  "log",
				Usage: "write the log to this file instead of discarding it",
			},
		),
		Action: run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := settings.FromCommand(cmd)
	if err != nil {
		return err
	}

	// The terminal is the display, so the log goes to a file or nowhere.
	logger := log.New(io.Discard, "", log.LstdFlags)
	if path := cmd.String("log"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	session := tetris.NewSession(cfg.SessionConfig(0),
		tetris.WithRandomizer(cfg.Randomizer()),
		tetris.WithStore(scores.NewFileStore(cfg.ScoresPath)),
		tetris.WithLogger(logger),
	)

	// Cancelled before Fini runs so the poller never blocks on a dead loop.
	pollCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan tcell.Event, 32)
	go termui.PollEvents(pollCtx, screen, events)

	queue := &play.ActionQueue{}
	scheduler := loop.NewScheduler()
	scheduler.Register(&termui.InputSystem{Events: events, Queue: queue, Resize: screen.Sync})
	scheduler.Register(&play.AutoplaySystem{Session: session, Queue: queue, Enabled: cfg.Demo})
	scheduler.Register(&play.InputSystem{Session: session, Queue: queue})
	scheduler.Register(&play.GravitySystem{Session: session})
	scheduler.Register(&play.CueSystem{Session: session, OnEvent: func(e tetris.Event) {
		if e.Kind == tetris.EventLevelUp {
			screen.Beep()
		}
	}})
	scheduler.Register(&termui.Renderer{Screen: screen, Session: session})

	logger.Printf("starting terminal session %dx%d", cfg.Cols, cfg.Rows)
	scheduler.Run(ctx, time.Second/60)
	logger.Printf("session ended after %d frames", scheduler.Stats().Frames)
	return nil
}
