package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/fatih/color"
	"github.com/plus3/blockfall/internal/sim"
	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Games     int
	MaxFrames int
	Frame     time.Duration
	Rows      int
	Cols      int
	Seed      int64
	Bag       bool

	// Results
	Result        *sim.Result
	Score         Stats
	Lines         Stats
	Pieces        Stats
	Finished      int
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     int
	Max     int
	Avg     float64
	Samples []int
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	total := 0
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = float64(total) / float64(len(s.Samples))
}

// Collect fills the per-game statistics from the simulation result.
func (r *Report) Collect(result *sim.Result) {
	r.Result = result
	for _, g := range result.Games {
		r.Score.Samples = append(r.Score.Samples, g.Score)
		r.Lines.Samples = append(r.Lines.Samples, g.Lines)
		r.Pieces.Samples = append(r.Pieces.Samples, g.Pieces)
		if g.Finished {
			r.Finished++
		}
	}
	r.Score.Finalize()
	r.Lines.Finalize()
	r.Pieces.Finalize()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Simulation Report

## Configuration
- **Games:** {{.Games}}
- **Frame Cap:** {{if .MaxFrames}}{{.MaxFrames}}{{else}}none{{end}}
- **Frame Delta:** {{.Frame}}
- **Playfield:** {{.Cols}}x{{.Rows}}
- **Seed:** {{.Seed}}{{if .Bag}} (7-bag){{end}}

## Results
- **Finished Games:** {{.Finished}} / {{len .Result.Games}}
- **Frames:** {{.Result.Frames}} in {{.Result.Wall}}
- **Score:** avg {{printf "%.1f" .Score.Avg}}, min {{.Score.Min}}, max {{.Score.Max}}
- **Lines:** avg {{printf "%.1f" .Lines.Avg}}, min {{.Lines.Min}}, max {{.Lines.Max}}
- **Pieces:** avg {{printf "%.1f" .Pieces.Avg}}, min {{.Pieces.Min}}, max {{.Pieces.Max}}

## Games
{{range $i, $g := .Result.Games}}- {{inc $i}}: score {{$g.Score}}, level {{$g.Level}}, lines {{$g.Lines}}, pieces {{$g.Pieces}}, {{$g.Played}}{{if not $g.Finished}} (abandoned){{end}}
{{end}}
## Events
{{range $kind := eventKinds}}- {{$kind}}: {{index $.Result.Events $kind}}
{{end}}
## Systems
{{range .Result.Scheduler.Systems}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Memory Usage (Raw Bytes)
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"eventKinds": func() []tetris.EventKind {
			return []tetris.EventKind{
				tetris.EventLocked,
				tetris.EventLinesCleared,
				tetris.EventLevelUp,
				tetris.EventGameOver,
			}
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

// Summary prints a one-line colored verdict.
func (r *Report) Summary(w io.Writer) {
	verdict := color.New(color.FgGreen, color.Bold)
	if r.Finished > 0 {
		verdict = color.New(color.FgYellow, color.Bold)
	}
	verdict.Fprintf(w, "%d games, best score %d", len(r.Result.Games), r.Score.Max)
	fmt.Fprintf(w, " (%d topped out)\n", r.Finished)
}
