package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/internal/play"
	"github.com/plus3/blockfall/tetris"
)

// Auto-repeat timing in ticks for held movement keys.
const (
	repeatDelay    = 12
	repeatInterval = 3
)

type binding struct {
	keys   []ebiten.Key
	action tetris.Action
	repeat bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, action: tetris.ActionMoveLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, action: tetris.ActionMoveRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, action: tetris.ActionSoftDrop, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyX}, action: tetris.ActionRotate},
	{keys: []ebiten.Key{ebiten.KeySpace}, action: tetris.ActionHardDrop},
	{keys: []ebiten.Key{ebiten.KeyP}, action: tetris.ActionPause},
	{keys: []ebiten.Key{ebiten.KeyEnter}, action: tetris.ActionConfirm},
	{keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace}, action: tetris.ActionBack},
	{keys: []ebiten.Key{ebiten.KeyH}, action: tetris.ActionHighScores},
	{keys: []ebiten.Key{ebiten.KeyQ}, action: tetris.ActionQuit},
}

// fires reports whether a key held for d ticks triggers its action this tick.
func fires(d int, repeat bool) bool {
	if d == 1 {
		return true
	}
	return repeat && d > repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// pollKeys queues the actions of the keys pressed this tick.
func pollKeys(queue *play.ActionQueue) {
	for _, b := range bindings {
		for _, key := range b.keys {
			if fires(inpututil.KeyPressDuration(key), b.repeat) {
				queue.Push(b.action)
				break
			}
		}
	}
}
