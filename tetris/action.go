package tetris

import "fmt"

// Phase is the top-level state of a Session.
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseHighScores
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	case PhaseHighScores:
		return "high scores"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// Action is a named player input. Key bindings belong to the front-end.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
	ActionHardDrop
	ActionPause
	ActionConfirm
	ActionBack
	ActionQuit
	ActionHighScores
)

var actionNames = [...]string{
	ActionNone:       "none",
	ActionMoveLeft:   "move-left",
	ActionMoveRight:  "move-right",
	ActionSoftDrop:   "soft-drop",
	ActionRotate:     "rotate",
	ActionHardDrop:   "hard-drop",
	ActionPause:      "pause",
	ActionConfirm:    "confirm",
	ActionBack:       "back",
	ActionQuit:       "quit",
	ActionHighScores: "high-scores",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// EventKind classifies an Event.
type EventKind uint8

const (
	EventMoved EventKind = iota + 1
	EventRotated
	EventHardDropped
	EventLocked
	EventLinesCleared
	EventLevelUp
	EventGameOver
	EventPhaseChanged
)

func (k EventKind) String() string {
	switch k {
	case EventMoved:
		return "moved"
	case EventRotated:
		return "rotated"
	case EventHardDropped:
		return "hard-dropped"
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines-cleared"
	case EventLevelUp:
		return "level-up"
	case EventGameOver:
		return "game-over"
	case EventPhaseChanged:
		return "phase-changed"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event reports something that happened inside a Session. Front-ends use events as
// sound and animation cues.
type Event struct {
	Kind  EventKind
	Lines int // rows cleared, or rows fallen for EventHardDropped
	Score int
	Level int
	Phase Phase
}
