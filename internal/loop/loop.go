// Package loop runs the per-frame update of a game as an ordered list of systems.
package loop

import "time"

// System is one stage of a frame. Systems run in registration order and may keep
// their own state between frames.
type System interface {
	Execute(frame *Frame)
}

// Frame is handed to every system during a single update.
type Frame struct {
	// Delta is the time elapsed since the previous frame.
	Delta time.Duration
	// Index counts frames from 0.
	Index uint64
	// Commands collects work to run after every system has executed.
	Commands *Commands

	stop bool
}

// Stop asks the scheduler to stop once this frame completes.
func (f *Frame) Stop() {
	f.stop = true
}

// Commands is a buffer of deferred functions flushed at the end of a frame, in the
// order they were queued.
type Commands struct {
	defers []func()
}

// Defer queues fn to run after all systems of the frame.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued functions.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs every queued function and empties the buffer. Functions queued while
// flushing run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	clear(c.defers)
	c.defers = c.defers[:0]
}
