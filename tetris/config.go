package tetris

import (
	"io"
	"log"
	"time"
)

// Config holds the tunable rules of a Session.
type Config struct {
	Rows int
	Cols int

	// InitialFallInterval is the gravity period at level 1.
	InitialFallInterval time.Duration
	// MinFallInterval is the floor the gravity period never drops below.
	MinFallInterval time.Duration
	// FallIntervalStep is subtracted from the gravity period on every level up.
	FallIntervalStep time.Duration

	// LinePoints is the base award per cleared row, multiplied by the level.
	LinePoints int
	// LevelScore is the score span of one level.
	LevelScore int

	// TextureCount is the number of textures the presentation layer registered.
	// Zero leaves every cell untextured.
	TextureCount int
}

// DefaultConfig returns the reference rules: a 20x10 grid, 500ms gravity shrinking
// by 50ms per level down to 100ms, 100 points per line and a level every 5000 points.
func DefaultConfig() Config {
	return Config{
		Rows:                DefaultRows,
		Cols:                DefaultCols,
		InitialFallInterval: 500 * time.Millisecond,
		MinFallInterval:     100 * time.Millisecond,
		FallIntervalStep:    50 * time.Millisecond,
		LinePoints:          100,
		LevelScore:          5000,
	}
}

// ScoreStore persists the ranked list of finished games.
type ScoreStore interface {
	// Load returns the scores in descending order.
	Load() ([]int, error)
	// Save records a finished game.
	Save(score int) error
}

// Option customizes a Session.
type Option func(*Session)

// WithRandomizer sets the source of piece kinds and textures.
func WithRandomizer(r Randomizer) Option {
	return func(s *Session) {
		s.rnd = r
	}
}

// WithStore sets the score store consulted on game over and for the high score table.
func WithStore(store ScoreStore) Option {
	return func(s *Session) {
		s.store = store
	}
}

// WithLogger sets the logger used for store failures and game summaries.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
