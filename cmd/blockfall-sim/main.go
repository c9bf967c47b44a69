// Command blockfall-sim plays autoplayed games without a window and prints a
// report of the results.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/plus3/blockfall/internal/settings"
	"github.com/plus3/blockfall/internal/sim"
	"github.com/plus3/blockfall/scores"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "blockfall-sim",
		Usage: "play autoplayed games headlessly and report the results",
		Flags: append(settings.Flags(),
			&cli.IntFlag{
				Name:  "games",
				Value: 10,
				Usage: "number of games to play",
			},
			&cli.IntFlag{
				Name:  "max-frames",
				Value: 20000,
				Usage: "abandon a game after this many frames, 0 for no cap",
			},
			&cli.BoolFlag{
				Name:  "save",
				Usage: "save finished games to the score file",
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
	if cfg.Debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	opts := sim.Options{
		Games:      cmd.Int("games"),
		MaxFrames:  cmd.Int("max-frames"),
		Frame:      time.Second / 60,
		Config:     cfg.SessionConfig(0),
		Randomizer: cfg.Randomizer(),
	}
	if cfg.Debug {
		opts.Logger = log.Default()
	}
	if cmd.Bool("save") {
		opts.Store = scores.NewFileStore(cfg.ScoresPath)
	}

	report := &Report{
		Games:     opts.Games,
		MaxFrames: opts.MaxFrames,
		Frame:     opts.Frame,
		Rows:      cfg.Rows,
		Cols:      cfg.Cols,
		Seed:      cfg.Seed,
		Bag:       cfg.Bag,
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	log.Printf("Simulating %d games...", opts.Games)
	result, err := sim.Run(ctx, opts)
	runtime.ReadMemStats(&report.MemStatsEnd)
	if err != nil {
		log.Printf("Simulation interrupted: %v", err)
	}

	report.Collect(result)
	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("generating report: %w", err)
	}
	report.Summary(color.Output)
	return nil
}
