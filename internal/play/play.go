// Package play holds the frame systems shared by every blockfall front-end.
//
// A front-end pushes decoded key presses into an ActionQueue and registers, in
// order, AutoplaySystem (optional), InputSystem, GravitySystem and CueSystem
// followed by its own render system.
package play

import (
	"github.com/plus3/blockfall/internal/autoplay"
	"github.com/plus3/blockfall/internal/loop"
	"github.com/plus3/blockfall/tetris"
)

// ActionQueue buffers actions between the input device and the next frame.
type ActionQueue struct {
	pending []tetris.Action
}

// Push appends an action. ActionNone is dropped.
func (q *ActionQueue) Push(actions ...tetris.Action) {
	for _, a := range actions {
		if a != tetris.ActionNone {
			q.pending = append(q.pending, a)
		}
	}
}

// Drain returns the queued actions in arrival order and empties the queue.
func (q *ActionQueue) Drain() []tetris.Action {
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of queued actions.
func (q *ActionQueue) Len() int {
	return len(q.pending)
}

// InputSystem applies every queued action to the session, then stops the loop once
// the player has quit.
type InputSystem struct {
	Session *tetris.Session
	Queue   *ActionQueue
}

func (s *InputSystem) Execute(frame *loop.Frame) {
	for _, a := range s.Queue.Drain() {
		s.Session.Handle(a)
		if s.Session.Done() {
			break
		}
	}
	if s.Session.Done() {
		frame.Stop()
	}
}

// GravitySystem feeds frame time into the session.
type GravitySystem struct {
	Session *tetris.Session
}

func (s *GravitySystem) Execute(frame *loop.Frame) {
	s.Session.Advance(frame.Delta)
}

// CueSystem drains session events each frame and hands them to OnEvent.
type CueSystem struct {
	Session *tetris.Session
	OnEvent func(tetris.Event)

	counts map[tetris.EventKind]int
}

func (s *CueSystem) Execute(frame *loop.Frame) {
	events := s.Session.DrainEvents()
	if len(events) == 0 {
		return
	}
	if s.counts == nil {
		s.counts = make(map[tetris.EventKind]int)
	}
	for _, e := range events {
		s.counts[e.Kind]++
		if s.OnEvent != nil {
			s.OnEvent(e)
		}
	}
}

// Count returns how many events of kind have been seen.
func (s *CueSystem) Count(kind tetris.EventKind) int {
	return s.counts[kind]
}

// AutoplaySystem plays the session by itself while Enabled. It plans once per
// piece and queues the whole plan, so the piece is placed within a single frame.
type AutoplaySystem struct {
	Session *tetris.Session
	Queue   *ActionQueue
	Planner *autoplay.Planner
	Enabled bool

	planned *tetris.Piece
}

func (s *AutoplaySystem) Execute(frame *loop.Frame) {
	if !s.Enabled || s.Session.Phase() != tetris.PhasePlaying {
		s.planned = nil
		return
	}
	current := s.Session.Current()
	if current == nil || current == s.planned {
		return
	}
	if s.Planner == nil {
		s.Planner = autoplay.NewPlanner()
	}
	s.Queue.Push(s.Planner.Plan(s.Session.Grid(), current)...)
	s.planned = current
}
