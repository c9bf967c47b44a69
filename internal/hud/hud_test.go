package hud_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/internal/hud"
	"github.com/plus3/blockfall/scores"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	assert.Equal(t, "0:00", hud.Clock(0))
	assert.Equal(t, "0:59", hud.Clock(59*time.Second+900*time.Millisecond))
	assert.Equal(t, "12:05", hud.Clock(12*time.Minute+5*time.Second))
}

func TestOverlayFollowsPhase(t *testing.T) {
	s := tetris.NewSession(tetris.DefaultConfig(), tetris.WithRandomizer(tetris.NewSequence(tetris.KindO)))
	assert.Equal(t, "BLOCKFALL", hud.Overlay(s)[0])

	s.Handle(tetris.ActionConfirm)
	assert.Empty(t, hud.Overlay(s))

	s.Handle(tetris.ActionPause)
	assert.Equal(t, "PAUSED", hud.Overlay(s)[0])

	s.Handle(tetris.ActionBack)
	s.Handle(tetris.ActionHighScores)
	assert.Contains(t, hud.Overlay(s), "no scores yet")
}

func TestGameOverOverlay(t *testing.T) {
	store := &scores.MemoryStore{}
	s := tetris.NewSession(tetris.Config{Rows: 4, Cols: 4}, tetris.WithRandomizer(tetris.NewSequence(tetris.KindO)), tetris.WithStore(store))
	s.Handle(tetris.ActionConfirm)
	for s.Phase() == tetris.PhasePlaying {
		s.HardDrop()
	}

	lines := hud.Overlay(s)
	assert.Equal(t, "GAME OVER", lines[0])
	assert.Contains(t, lines, "Score 0")
	assert.Contains(t, hud.Sidebar(s), "BEST")
}

func TestHighScores(t *testing.T) {
	lines := hud.HighScores([]int{1500, 20})
	assert.Equal(t, []string{
		"HIGH SCORES",
		"",
		" 1.    1500",
		" 2.      20",
		"",
		"Esc    back",
	}, lines)
}

func TestSidebar(t *testing.T) {
	s := tetris.NewSession(tetris.DefaultConfig())
	assert.Equal(t, []string{
		"SCORE", "0", "",
		"LEVEL", "1", "",
		"LINES", "0", "",
		"TIME", "0:00",
	}, hud.Sidebar(s))
}
