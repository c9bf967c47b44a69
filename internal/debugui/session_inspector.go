package debugui

import (
	"fmt"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/internal/assets"
	"github.com/plus3/blockfall/internal/play"
	"github.com/plus3/blockfall/tetris"
)

// SessionInspector shows the live state of a session and lets the autoplayer be
// toggled.
type SessionInspector struct {
	Session  *tetris.Session
	Autoplay *play.AutoplaySystem
	Cues     *play.CueSystem
	Assets   *assets.Registry
}

func (si *SessionInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 260), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 420), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := si.Session
	imgui.Text(fmt.Sprintf("Phase: %s", s.Phase()))
	imgui.Text(fmt.Sprintf("Score: %d  Level: %d  Lines: %d", s.Score(), s.Level(), s.Lines()))
	imgui.Text(fmt.Sprintf("Pieces: %d  Elapsed: %s", s.Pieces(), s.Elapsed().Round(100*time.Millisecond)))
	imgui.Text(fmt.Sprintf("Fall Interval: %s", s.FallInterval()))

	if si.Autoplay != nil {
		imgui.Checkbox("Autoplay", &si.Autoplay.Enabled)
	}

	imgui.Separator()
	pieceRow("Current", s.Current())
	pieceRow("Next", s.Next())
	if s.Current() != nil {
		imgui.Text(fmt.Sprintf("Ghost Row: %d", s.GhostY()))
	}

	if imgui.TreeNodeStr("Board") {
		grid := s.Grid()
		imgui.Text(fmt.Sprintf("Holes: %d", grid.Holes()))
		imgui.Text(fmt.Sprintf("Heights: %v", grid.Heights()))
		imgui.Text(grid.String())
		imgui.TreePop()
	}

	if si.Cues != nil && imgui.TreeNodeStr("Events") {
		for _, kind := range eventKinds {
			imgui.BulletText(fmt.Sprintf("%s: %d", kind, si.Cues.Count(kind)))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("High Scores") {
		for i, score := range s.HighScores() {
			imgui.BulletText(fmt.Sprintf("%d. %d", i+1, score))
		}
		imgui.TreePop()
	}

	if si.Assets != nil && imgui.TreeNodeStr("Textures") {
		for i, name := range si.Assets.Names() {
			imgui.BulletText(fmt.Sprintf("%d: %s", i+1, name))
		}
		imgui.TreePop()
	}

	imgui.End()
}

var eventKinds = []tetris.EventKind{
	tetris.EventMoved,
	tetris.EventRotated,
	tetris.EventHardDropped,
	tetris.EventLocked,
	tetris.EventLinesCleared,
	tetris.EventLevelUp,
	tetris.EventGameOver,
	tetris.EventPhaseChanged,
}

func pieceRow(label string, p *tetris.Piece) {
	if p == nil {
		imgui.Text(label + ": -")
		return
	}
	imgui.Text(fmt.Sprintf("%s: %s at (%d, %d)", label, p.Kind, p.X, p.Y))
	imgui.Text(strings.TrimRight(p.Shape.String(), "\n"))
}
