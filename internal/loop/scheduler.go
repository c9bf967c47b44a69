package loop

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount int
	Frames      uint64
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStats struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (s *systemStats) record(d time.Duration) {
	s.executionCount++
	s.lastDuration = d
	s.totalDuration += d
	s.minDuration = min(s.minDuration, d)
	s.maxDuration = max(s.maxDuration, d)
}

// Scheduler runs registered systems once per frame.
type Scheduler struct {
	systems  []System
	stats    []*systemStats
	commands Commands
	frames   uint64
	stopped  bool
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Register appends a system. Systems execute in registration order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)
	s.stats = append(s.stats, &systemStats{
		name:        systemName(system),
		minDuration: time.Duration(1<<63 - 1),
	})
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Once executes every system with the given frame delta, then flushes deferred
// commands.
func (s *Scheduler) Once(dt time.Duration) {
	frame := &Frame{
		Delta:    dt,
		Index:    s.frames,
		Commands: &s.commands,
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.stats[i].record(time.Since(start))
	}

	s.commands.Flush()
	s.frames++
	if frame.stop {
		s.stopped = true
	}
}

// Stopped reports whether a system called Frame.Stop.
func (s *Scheduler) Stopped() bool {
	return s.stopped
}

// Run executes frames at the given interval until the context is cancelled or a
// system stops the loop.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for !s.stopped {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			s.Once(dt)
		}
	}
}

// Stats returns statistics about system execution.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.stats)),
	}

	for i, internal := range s.stats {
		var avg time.Duration
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avg = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avg,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
