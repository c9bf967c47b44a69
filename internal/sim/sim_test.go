package sim_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/internal/sim"
	"github.com/plus3/blockfall/scores"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinishedGamesAreSaved(t *testing.T) {
	store := &scores.MemoryStore{}
	result, err := sim.Run(context.Background(), sim.Options{
		Games:      3,
		Config:     tetris.Config{Rows: 4, Cols: 5},
		Randomizer: tetris.NewSequence(tetris.KindO),
		Store:      store,
	})
	require.NoError(t, err)

	require.Len(t, result.Games, 3)
	for _, g := range result.Games {
		assert.True(t, g.Finished)
		assert.Positive(t, g.Pieces)
	}
	assert.Equal(t, 3, result.Events[tetris.EventGameOver])

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, saved, 3)
}

func TestFrameCapAbandonsGames(t *testing.T) {
	store := &scores.MemoryStore{}
	result, err := sim.Run(context.Background(), sim.Options{
		Games:      2,
		MaxFrames:  3,
		Frame:      10 * time.Millisecond,
		Randomizer: tetris.NewBag(3),
		Store:      store,
	})
	require.NoError(t, err)

	require.Len(t, result.Games, 2)
	for _, g := range result.Games {
		assert.False(t, g.Finished)
		assert.Equal(t, 3, g.Frames)
		assert.Equal(t, 2, g.Pieces, "one piece per frame, recorded before the capped frame drops")
		assert.Equal(t, 30*time.Millisecond, g.Played)
	}
	assert.Equal(t, uint64(7), result.Frames)

	saved, _ := store.Load()
	assert.Empty(t, saved, "abandoned games are not saved")
}

func TestCancelledRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := sim.Run(ctx, sim.Options{Games: 5})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Games)
	assert.Zero(t, result.Frames)
}
