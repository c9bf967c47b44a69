// Package termui plays a session in a terminal through tcell.
package termui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

var keyActions = map[tcell.Key]tetris.Action{
	tcell.KeyLeft:      tetris.ActionMoveLeft,
	tcell.KeyRight:     tetris.ActionMoveRight,
	tcell.KeyDown:      tetris.ActionSoftDrop,
	tcell.KeyUp:        tetris.ActionRotate,
	tcell.KeyEnter:     tetris.ActionConfirm,
	tcell.KeyEscape:    tetris.ActionBack,
	tcell.KeyBackspace: tetris.ActionBack,
	tcell.KeyCtrlC:     tetris.ActionQuit,
}

var runeActions = map[rune]tetris.Action{
	'a': tetris.ActionMoveLeft,
	'd': tetris.ActionMoveRight,
	's': tetris.ActionSoftDrop,
	'w': tetris.ActionRotate,
	'x': tetris.ActionRotate,
	' ': tetris.ActionHardDrop,
	'p': tetris.ActionPause,
	'h': tetris.ActionHighScores,
	'q': tetris.ActionQuit,
}

// KeyAction maps a key press to a session action.
func KeyAction(ev *tcell.EventKey) (tetris.Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := runeActions[unicode.ToLower(ev.Rune())]
		return a, ok
	}
	a, ok := keyActions[ev.Key()]
	return a, ok
}
