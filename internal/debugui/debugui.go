// Package debugui draws Dear ImGui inspector windows over the ebiten front-end.
// Windows are queued by System and rendered after every other system of the frame,
// between the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/internal/loop"
)

// Window is a Dear ImGui render function.
type Window func()

// InputState tracks whether Dear ImGui is consuming input this frame.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System defers every window each frame and refreshes Input.
type System struct {
	Windows []Window
	Input   InputState
	Visible bool
}

// Add appends a window.
func (s *System) Add(w Window) {
	s.Windows = append(s.Windows, w)
}

// Execute updates input state and queues the window render functions.
func (s *System) Execute(frame *loop.Frame) {
	if !s.Visible {
		s.Input = InputState{}
		return
	}

	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, w := range s.Windows {
		frame.Commands.Defer(w)
	}
}
