package autoplay_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/internal/autoplay"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestFillsGap(t *testing.T) {
	grid := tetris.NewGrid(20, 10)
	for c := range 10 {
		if c != 7 {
			grid.Set(19, c, tetris.Cell{Occupied: true})
		}
	}
	piece := tetris.Spawn(tetris.KindI, grid.Cols(), nil, 0)

	best, ok := autoplay.NewPlanner().Best(grid, piece)

	require.True(t, ok)
	assert.Equal(t, 7, best.X)
	assert.Equal(t, 1, best.Rotations%2, "vertical I")
}

func TestPlanActions(t *testing.T) {
	grid := tetris.NewGrid(20, 10)
	for c := 1; c < 10; c++ {
		grid.Set(19, c, tetris.Cell{Occupied: true})
		grid.Set(18, c, tetris.Cell{Occupied: true})
	}
	piece := tetris.Spawn(tetris.KindO, grid.Cols(), nil, 0)

	actions := autoplay.NewPlanner().Plan(grid, piece)

	require.NotEmpty(t, actions)
	assert.Equal(t, tetris.ActionHardDrop, actions[len(actions)-1])
	for _, a := range actions[:len(actions)-1] {
		assert.Contains(t, []tetris.Action{tetris.ActionRotate, tetris.ActionMoveLeft, tetris.ActionMoveRight}, a)
	}
}

func TestPlanIsExecutable(t *testing.T) {
	s := tetris.NewSession(tetris.DefaultConfig(), tetris.WithRandomizer(tetris.NewBag(42)))
	s.Start()
	planner := autoplay.NewPlanner()

	for range 200 {
		if s.Phase() != tetris.PhasePlaying {
			break
		}
		best, ok := planner.Best(s.Grid(), s.Current())
		require.True(t, ok)

		pieces := s.Pieces()
		for _, a := range planner.Plan(s.Grid(), s.Current()) {
			if a == tetris.ActionHardDrop {
				assert.Equal(t, best.X, s.Current().X, "piece reaches planned column")
			}
			s.Handle(a)
		}
		assert.Equal(t, pieces+1, s.Pieces())
		s.Advance(time.Millisecond)
	}

	assert.Positive(t, s.Lines(), "the planner clears lines")
}

func TestBestBlockedPiece(t *testing.T) {
	grid := tetris.NewGrid(4, 4)
	piece := tetris.Spawn(tetris.KindO, grid.Cols(), nil, 0)
	for r := range 4 {
		for c := range 4 {
			grid.Set(r, c, tetris.Cell{Occupied: true})
		}
	}

	_, ok := autoplay.NewPlanner().Best(grid, piece)
	assert.False(t, ok)
	assert.Equal(t, []tetris.Action{tetris.ActionHardDrop}, autoplay.NewPlanner().Plan(grid, piece))
}
