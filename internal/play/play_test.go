package play_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/internal/loop"
	"github.com/plus3/blockfall/internal/play"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoop(t *testing.T, kinds ...tetris.Kind) (*loop.Scheduler, *tetris.Session, *play.ActionQueue, *play.CueSystem) {
	t.Helper()
	session := tetris.NewSession(tetris.DefaultConfig(), tetris.WithRandomizer(tetris.NewSequence(kinds...)))
	queue := &play.ActionQueue{}
	cues := &play.CueSystem{Session: session}

	scheduler := loop.NewScheduler()
	scheduler.Register(&play.InputSystem{Session: session, Queue: queue})
	scheduler.Register(&play.GravitySystem{Session: session})
	scheduler.Register(cues)
	return scheduler, session, queue, cues
}

func TestActionQueue(t *testing.T) {
	var q play.ActionQueue
	q.Push(tetris.ActionConfirm, tetris.ActionNone, tetris.ActionRotate)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, []tetris.Action{tetris.ActionConfirm, tetris.ActionRotate}, q.Drain())
	assert.Zero(t, q.Len())
	assert.Empty(t, q.Drain())
}

func TestInputThenGravity(t *testing.T) {
	scheduler, session, queue, cues := newLoop(t, tetris.KindO)

	queue.Push(tetris.ActionConfirm, tetris.ActionMoveLeft)
	scheduler.Once(16 * time.Millisecond)

	require.Equal(t, tetris.PhasePlaying, session.Phase())
	assert.Equal(t, 3, session.Current().X)
	assert.Equal(t, 16*time.Millisecond, session.Elapsed())
	assert.Equal(t, 1, cues.Count(tetris.EventMoved))

	for range 30 {
		scheduler.Once(17 * time.Millisecond)
	}
	assert.Equal(t, 1, session.Current().Y)
}

func TestQuitStopsLoop(t *testing.T) {
	scheduler, session, queue, _ := newLoop(t, tetris.KindO)

	queue.Push(tetris.ActionQuit, tetris.ActionConfirm)
	scheduler.Once(time.Millisecond)

	assert.True(t, session.Done())
	assert.True(t, scheduler.Stopped())
	assert.Equal(t, tetris.PhaseMenu, session.Phase(), "actions after quit are dropped")
}

func TestCueSystemForwardsEvents(t *testing.T) {
	scheduler, _, queue, cues := newLoop(t, tetris.KindI)
	var got []tetris.EventKind
	cues.OnEvent = func(e tetris.Event) { got = append(got, e.Kind) }

	queue.Push(tetris.ActionConfirm, tetris.ActionHardDrop)
	scheduler.Once(time.Millisecond)

	assert.Equal(t, []tetris.EventKind{
		tetris.EventPhaseChanged,
		tetris.EventHardDropped,
		tetris.EventLocked,
	}, got)
}

func TestAutoplaySystem(t *testing.T) {
	session := tetris.NewSession(tetris.DefaultConfig(), tetris.WithRandomizer(tetris.NewBag(7)))
	queue := &play.ActionQueue{}
	bot := &play.AutoplaySystem{Session: session, Queue: queue, Enabled: true}

	scheduler := loop.NewScheduler()
	scheduler.Register(bot)
	scheduler.Register(&play.InputSystem{Session: session, Queue: queue})

	scheduler.Once(time.Millisecond)
	assert.Zero(t, queue.Len(), "nothing to plan in the menu")

	queue.Push(tetris.ActionConfirm)
	scheduler.Once(time.Millisecond)
	for range 20 {
		scheduler.Once(time.Millisecond)
	}
	assert.Equal(t, 20, session.Pieces(), "one piece per frame")

	bot.Enabled = false
	scheduler.Once(time.Millisecond)
	scheduler.Once(time.Millisecond)
	assert.Equal(t, 20, session.Pieces())
}
