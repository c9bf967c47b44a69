package settings_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/blockfall/internal/settings"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func parse(t *testing.T, args ...string) (settings.Settings, error) {
	t.Helper()
	var got settings.Settings
	var parseErr error
	cmd := &cli.Command{
		Name:  "blockfall",
		Flags: settings.Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			got, parseErr = settings.FromCommand(cmd)
			return nil
		},
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"blockfall"}, args...)))
	return got, parseErr
}

func TestDefaults(t *testing.T) {
	s, err := parse(t)
	require.NoError(t, err)

	assert.Equal(t, "scores.yaml", s.ScoresPath)
	assert.Equal(t, "textures", s.TextureDir)
	assert.Equal(t, tetris.DefaultRows, s.Rows)
	assert.Equal(t, tetris.DefaultCols, s.Cols)
	assert.Equal(t, 30, s.CellSize)
	assert.Equal(t, 500*time.Millisecond, s.FallStart)
	assert.False(t, s.Debug)
	assert.False(t, s.Bag)
}

func TestFlags(t *testing.T) {
	s, err := parse(t, "--scores", "/tmp/s.yaml", "--rows", "24", "--cols", "12", "--seed", "9", "--bag", "--debug", "--fall", "300ms")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/s.yaml", s.ScoresPath)
	assert.Equal(t, 24, s.Rows)
	assert.Equal(t, 12, s.Cols)
	assert.Equal(t, int64(9), s.Seed)
	assert.True(t, s.Bag)
	assert.True(t, s.Debug)
	assert.Equal(t, 300*time.Millisecond, s.FallStart)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("BLOCKFALL_SCORES", "env.yaml")
	t.Setenv("BLOCKFALL_SEED", "77")

	s, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, "env.yaml", s.ScoresPath)
	assert.Equal(t, int64(77), s.Seed)
}

func TestValidate(t *testing.T) {
	_, err := parse(t, "--rows", "2")
	assert.ErrorIs(t, err, settings.ErrInvalid)

	_, err = parse(t, "--cell", "0")
	assert.ErrorIs(t, err, settings.ErrInvalid)
}

func TestSessionConfig(t *testing.T) {
	s := settings.Settings{Rows: 22, Cols: 8, CellSize: 20, FallStart: time.Second}
	cfg := s.SessionConfig(3)

	assert.Equal(t, 22, cfg.Rows)
	assert.Equal(t, 8, cfg.Cols)
	assert.Equal(t, time.Second, cfg.InitialFallInterval)
	assert.Equal(t, 3, cfg.TextureCount)
	assert.Equal(t, 5000, cfg.LevelScore)
}

func TestRandomizerIsSeeded(t *testing.T) {
	for _, bag := range []bool{false, true} {
		s := settings.Settings{Seed: 5, Bag: bag}
		a, b := s.Randomizer(), s.Randomizer()
		for range 20 {
			assert.Equal(t, a.NextKind(), b.NextKind())
		}
	}
}
