// Package sim plays autoplayed games headlessly with a fixed frame delta.
package sim

import (
	"context"
	"log"
	"time"

	"github.com/plus3/blockfall/internal/autoplay"
	"github.com/plus3/blockfall/internal/loop"
	"github.com/plus3/blockfall/internal/play"
	"github.com/plus3/blockfall/tetris"
)

// Options configures a simulation run.
type Options struct {
	Games int
	// MaxFrames abandons a game after this many playing frames. Zero means no cap.
	MaxFrames int
	Frame     time.Duration

	Config     tetris.Config
	Randomizer tetris.Randomizer
	Store      tetris.ScoreStore
	Logger     *log.Logger
	Weights    autoplay.Weights
}

// Game is the outcome of one simulated game.
type Game struct {
	Score    int
	Level    int
	Lines    int
	Pieces   int
	Frames   int
	Played   time.Duration
	Finished bool
}

// Result is the outcome of a run.
type Result struct {
	Games     []Game
	Frames    uint64
	Wall      time.Duration
	Scheduler *loop.SchedulerStats
	Events    map[tetris.EventKind]int
}

// Run plays opts.Games games and returns once they are done or ctx is cancelled.
// A cancelled run returns the games finished so far together with ctx.Err().
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Games <= 0 {
		opts.Games = 1
	}
	if opts.Frame <= 0 {
		opts.Frame = time.Second / 60
	}
	if opts.Weights == (autoplay.Weights{}) {
		opts.Weights = autoplay.DefaultWeights
	}

	sessionOpts := []tetris.Option{tetris.WithLogger(opts.Logger)}
	if opts.Randomizer != nil {
		sessionOpts = append(sessionOpts, tetris.WithRandomizer(opts.Randomizer))
	}
	if opts.Store != nil {
		sessionOpts = append(sessionOpts, tetris.WithStore(opts.Store))
	}
	session := tetris.NewSession(opts.Config, sessionOpts...)

	queue := &play.ActionQueue{}
	restart := &RestartSystem{Session: session, Queue: queue, Games: opts.Games, MaxFrames: opts.MaxFrames}
	events := make(map[tetris.EventKind]int)

	scheduler := loop.NewScheduler()
	scheduler.Register(&play.AutoplaySystem{
		Session: session,
		Queue:   queue,
		Planner: &autoplay.Planner{Weights: opts.Weights},
		Enabled: true,
	})
	scheduler.Register(restart)
	scheduler.Register(&play.InputSystem{Session: session, Queue: queue})
	scheduler.Register(&play.GravitySystem{Session: session})
	scheduler.Register(&play.CueSystem{Session: session, OnEvent: func(e tetris.Event) { events[e.Kind]++ }})

	start := time.Now()
	var err error
	for !scheduler.Stopped() {
		if err = ctx.Err(); err != nil {
			break
		}
		scheduler.Once(opts.Frame)
	}

	stats := scheduler.Stats()
	return &Result{
		Games:     restart.Results,
		Frames:    stats.Frames,
		Wall:      time.Since(start),
		Scheduler: stats,
		Events:    events,
	}, err
}

// RestartSystem starts games from the menu, records every finished or abandoned
// game and stops the loop once Games results are recorded.
type RestartSystem struct {
	Session   *tetris.Session
	Queue     *play.ActionQueue
	Games     int
	MaxFrames int

	Results []Game
	frames  int
}

func (s *RestartSystem) Execute(frame *loop.Frame) {
	switch s.Session.Phase() {
	case tetris.PhaseMenu:
		s.frames = 0
		s.Queue.Push(tetris.ActionConfirm)
	case tetris.PhasePlaying:
		s.frames++
		if s.MaxFrames > 0 && s.frames >= s.MaxFrames {
			s.record(false)
			s.Queue.Push(tetris.ActionBack)
			s.next(frame)
		}
	case tetris.PhaseGameOver:
		s.record(true)
		s.next(frame)
	}
}

func (s *RestartSystem) record(finished bool) {
	s.Results = append(s.Results, Game{
		Score:    s.Session.Score(),
		Level:    s.Session.Level(),
		Lines:    s.Session.Lines(),
		Pieces:   s.Session.Pieces(),
		Frames:   s.frames,
		Played:   s.Session.Elapsed(),
		Finished: finished,
	})
	s.frames = 0
}

func (s *RestartSystem) next(frame *loop.Frame) {
	if len(s.Results) >= s.Games {
		frame.Stop()
		return
	}
	s.Queue.Push(tetris.ActionConfirm)
}
