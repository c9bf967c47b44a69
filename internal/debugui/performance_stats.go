package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/internal/loop"
)

// History is a fixed-size ring of frame times in milliseconds.
type History struct {
	samples []float32
	index   int
	filled  int
}

// NewHistory returns a ring holding size samples.
func NewHistory(size int) *History {
	return &History{samples: make([]float32, size)}
}

// Push records a frame duration.
func (h *History) Push(d time.Duration) {
	h.samples[h.index] = float32(d.Seconds() * 1000)
	h.index = (h.index + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// Average returns the mean of the recorded samples, or 0 when empty.
func (h *History) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, s := range h.samples[:h.filled] {
		sum += s
	}
	return sum / float32(h.filled)
}

// Samples returns the backing ring.
func (h *History) Samples() []float32 {
	return h.samples
}

// PerformanceStats renders frame timing and per-system scheduler statistics.
type PerformanceStats struct {
	Scheduler *loop.Scheduler
	history   *History
}

func NewPerformanceStats(scheduler *loop.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		Scheduler: scheduler,
		history:   NewHistory(historyFrames),
	}
}

// Record adds a frame duration to the history. Call it once per frame.
func (ps *PerformanceStats) Record(delta time.Duration) {
	ps.history.Push(delta)
}

// Execute records the frame delta. It lets the stats window sit in the scheduler.
func (ps *PerformanceStats) Execute(frame *loop.Frame) {
	ps.Record(frame.Delta)
}

func (ps *PerformanceStats) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.Scheduler.Stats()

	avg := ps.history.Average()
	fps := float32(0)
	if avg > 0 {
		fps = 1000 / avg
	}
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := ps.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, system := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(system.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(system.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(system.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
