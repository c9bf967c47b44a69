// Package settings turns command-line flags and BLOCKFALL_* environment variables
// into the configuration shared by the blockfall commands.
package settings

import (
	"errors"
	"fmt"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/urfave/cli/v3"
)

// Settings is the resolved configuration of a front-end.
type Settings struct {
	ScoresPath string
	TextureDir string
	Seed       int64
	Bag        bool
	Rows       int
	Cols       int
	CellSize   int
	Debug      bool
	Demo       bool
	FallStart  time.Duration
}

// Smallest playfield that still fits every piece in every rotation.
const (
	minRows = 4
	minCols = 4
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid settings")

// Flags returns the flags understood by FromCommand.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "scores",
			Value:   "scores.yaml",
			Usage:   "high score file",
			Sources: cli.EnvVars("BLOCKFALL_SCORES"),
		},
		&cli.StringFlag{
			Name:    "textures",
			Value:   "textures",
			Usage:   "directory of PNG cell textures",
			Sources: cli.EnvVars("BLOCKFALL_TEXTURES"),
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed, 0 picks one from the clock",
			Sources: cli.EnvVars("BLOCKFALL_SEED"),
		},
		&cli.BoolFlag{
			Name:  "bag",
			Usage: "deal pieces from shuffled bags of seven",
		},
		&cli.IntFlag{
			Name:  "rows",
			Value: tetris.DefaultRows,
			Usage: "playfield height in cells",
		},
		&cli.IntFlag{
			Name:  "cols",
			Value: tetris.DefaultCols,
			Usage: "playfield width in cells",
		},
		&cli.IntFlag{
			Name:  "cell",
			Value: 30,
			Usage: "cell size in pixels",
		},
		&cli.DurationFlag{
			Name:  "fall",
			Value: tetris.DefaultConfig().InitialFallInterval,
			Usage: "gravity interval at level 1",
		},
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "show the debug overlay",
			Sources: cli.EnvVars("BLOCKFALL_DEBUG"),
		},
		&cli.BoolFlag{
			Name:  "demo",
			Usage: "let the autoplayer control the pieces",
		},
	}
}

// FromCommand reads and validates the flags declared by Flags.
func FromCommand(cmd *cli.Command) (Settings, error) {
	s := Settings{
		ScoresPath: cmd.String("scores"),
		TextureDir: cmd.String("textures"),
		Seed:       cmd.Int64("seed"),
		Bag:        cmd.Bool("bag"),
		Rows:       cmd.Int("rows"),
		Cols:       cmd.Int("cols"),
		CellSize:   cmd.Int("cell"),
		FallStart:  cmd.Duration("fall"),
		Debug:      cmd.Bool("debug"),
		Demo:       cmd.Bool("demo"),
	}
	return s, s.Validate()
}

// Validate checks that the settings describe a playable game.
func (s Settings) Validate() error {
	if s.Rows < minRows || s.Cols < minCols {
		return fmt.Errorf("%w: playfield %dx%d is smaller than %dx%d", ErrInvalid, s.Rows, s.Cols, minRows, minCols)
	}
	if s.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrInvalid, s.CellSize)
	}
	if s.FallStart <= 0 {
		return fmt.Errorf("%w: fall interval %s", ErrInvalid, s.FallStart)
	}
	return nil
}

// SessionConfig returns the core rules for these settings.
func (s Settings) SessionConfig(textureCount int) tetris.Config {
	cfg := tetris.DefaultConfig()
	cfg.Rows = s.Rows
	cfg.Cols = s.Cols
	cfg.InitialFallInterval = s.FallStart
	cfg.TextureCount = textureCount
	return cfg
}

// Randomizer returns the piece source selected by the settings.
func (s Settings) Randomizer() tetris.Randomizer {
	seed := uint64(s.Seed)
	if s.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if s.Bag {
		return tetris.NewBag(seed)
	}
	return tetris.NewRandom(seed)
}
