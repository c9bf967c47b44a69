package tetris

import (
	"slices"
	"time"
)

// maxPendingEvents bounds the event buffer when nobody drains it.
const maxPendingEvents = 256

// Session owns one game: the grid, the falling and next pieces, score, level and
// the phase machine. A Session is driven by a single goroutine.
type Session struct {
	cfg    Config
	rnd    Randomizer
	store  ScoreStore
	logger Logger

	grid    *Grid
	current *Piece
	next    *Piece

	score  int
	level  int
	lines  int
	pieces int

	fallInterval time.Duration
	fallElapsed  time.Duration
	played       time.Duration

	phase      Phase
	done       bool
	highScores []int
	events     []Event
}

// Logger is the subset of *log.Logger a Session writes to.
type Logger interface {
	Printf(format string, v ...any)
}

// NewSession creates a session in the menu phase. Zero-valued fields of cfg are
// taken from DefaultConfig. Without WithRandomizer pieces are drawn from a
// time-seeded uniform randomizer.
func NewSession(cfg Config, opts ...Option) *Session {
	cfg = withDefaults(cfg)
	s := &Session{
		cfg:          cfg,
		grid:         NewGrid(cfg.Rows, cfg.Cols),
		level:        1,
		fallInterval: cfg.InitialFallInterval,
		phase:        PhaseMenu,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		s.rnd = NewRandom(uint64(time.Now().UnixNano()))
	}
	if s.logger == nil {
		s.logger = discardLogger()
	}
	return s
}

func withDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.Rows <= 0 {
		cfg.Rows = def.Rows
	}
	if cfg.Cols <= 0 {
		cfg.Cols = def.Cols
	}
	if cfg.InitialFallInterval <= 0 {
		cfg.InitialFallInterval = def.InitialFallInterval
	}
	if cfg.MinFallInterval <= 0 {
		cfg.MinFallInterval = def.MinFallInterval
	}
	if cfg.FallIntervalStep < 0 {
		cfg.FallIntervalStep = 0
	}
	if cfg.LinePoints <= 0 {
		cfg.LinePoints = def.LinePoints
	}
	if cfg.LevelScore <= 0 {
		cfg.LevelScore = def.LevelScore
	}
	return cfg
}

func (s *Session) Config() Config              { return s.cfg }
func (s *Session) Phase() Phase                { return s.phase }
func (s *Session) Grid() *Grid                 { return s.grid }
func (s *Session) Current() *Piece             { return s.current }
func (s *Session) Next() *Piece                { return s.next }
func (s *Session) Score() int                  { return s.score }
func (s *Session) Level() int                  { return s.level }
func (s *Session) Lines() int                  { return s.lines }
func (s *Session) Pieces() int                 { return s.pieces }
func (s *Session) FallInterval() time.Duration { return s.fallInterval }

// Elapsed returns the play time of the current game. Paused time is excluded.
func (s *Session) Elapsed() time.Duration { return s.played }

// Done reports whether the player asked to quit.
func (s *Session) Done() bool { return s.done }

// HighScores returns the score table as last loaded from the store.
func (s *Session) HighScores() []int {
	return slices.Clone(s.highScores)
}

// GhostY returns the row the current piece would land on if hard dropped.
func (s *Session) GhostY() int {
	if s.current == nil {
		return 0
	}
	return s.current.Y + s.grid.DropDistance(s.current.Shape, s.current.X, s.current.Y)
}

// DrainEvents returns and clears the events emitted since the last call.
func (s *Session) DrainEvents() []Event {
	events := s.events
	s.events = nil
	return events
}

// Handle applies a player action according to the current phase. Actions that make
// no sense in the current phase are ignored.
func (s *Session) Handle(a Action) {
	if a == ActionQuit {
		s.done = true
		return
	}

	switch s.phase {
	case PhaseMenu:
		switch a {
		case ActionConfirm:
			s.Start()
		case ActionHighScores:
			s.loadHighScores()
			s.setPhase(PhaseHighScores)
		}
	case PhaseHighScores:
		switch a {
		case ActionBack, ActionConfirm, ActionHighScores:
			s.setPhase(PhaseMenu)
		}
	case PhasePlaying:
		switch a {
		case ActionMoveLeft:
			s.MoveLeft()
		case ActionMoveRight:
			s.MoveRight()
		case ActionSoftDrop:
			s.SoftDrop()
		case ActionRotate:
			s.Rotate()
		case ActionHardDrop:
			s.HardDrop()
		case ActionPause:
			s.setPhase(PhasePaused)
		case ActionBack:
			s.setPhase(PhaseMenu)
		}
	case PhasePaused:
		switch a {
		case ActionPause:
			s.fallElapsed = 0
			s.setPhase(PhasePlaying)
		case ActionBack:
			s.setPhase(PhaseMenu)
		}
	case PhaseGameOver:
		switch a {
		case ActionConfirm:
			s.Start()
		case ActionBack:
			s.setPhase(PhaseMenu)
		}
	}
}

// Start resets the board and enters the playing phase.
func (s *Session) Start() {
	s.grid.Reset()
	s.score = 0
	s.level = 1
	s.lines = 0
	s.pieces = 0
	s.fallInterval = s.cfg.InitialFallInterval
	s.fallElapsed = 0
	s.played = 0
	s.current = s.spawn()
	s.next = s.spawn()
	s.setPhase(PhasePlaying)

	if s.grid.Collides(s.current.Shape, s.current.X, s.current.Y) {
		s.gameOver()
	}
}

// Advance feeds elapsed wall-clock time into gravity. Once the accumulated time
// reaches the fall interval the accumulator restarts from zero and the piece falls
// one row, or locks if it cannot. Outside the playing phase Advance does nothing.
func (s *Session) Advance(delta time.Duration) {
	if s.phase != PhasePlaying || delta <= 0 {
		return
	}
	s.played += delta
	s.fallElapsed += delta
	if s.fallElapsed < s.fallInterval {
		return
	}
	s.fallElapsed = 0

	if !s.grid.Collides(s.current.Shape, s.current.X, s.current.Y+1) {
		s.current.Translate(0, 1)
		return
	}
	s.lock()
}

// MoveLeft shifts the current piece one column left if the target is free.
func (s *Session) MoveLeft() bool { return s.move(-1, 0) }

// MoveRight shifts the current piece one column right if the target is free.
func (s *Session) MoveRight() bool { return s.move(1, 0) }

// SoftDrop moves the current piece one row down if the target is free. It never locks.
func (s *Session) SoftDrop() bool { return s.move(0, 1) }

// Rotate turns the current piece clockwise in place. There is no wall kick: a
// rotation that would collide is rejected.
func (s *Session) Rotate() bool {
	if !s.playing() {
		return false
	}
	shape, decor := s.current.Rotated()
	if s.grid.Collides(shape, s.current.X, s.current.Y) {
		return false
	}
	s.current.ApplyRotation(shape, decor)
	s.emit(Event{Kind: EventRotated})
	return true
}

// HardDrop drops the current piece as far as it goes and locks it immediately.
// It returns the number of rows fallen.
func (s *Session) HardDrop() int {
	if !s.playing() {
		return 0
	}
	d := s.grid.DropDistance(s.current.Shape, s.current.X, s.current.Y)
	s.current.Translate(0, d)
	s.emit(Event{Kind: EventHardDropped, Lines: d})
	s.fallElapsed = 0
	s.lock()
	return d
}

func (s *Session) playing() bool {
	return s.phase == PhasePlaying && s.current != nil
}

func (s *Session) move(dx, dy int) bool {
	if !s.playing() {
		return false
	}
	if s.grid.Collides(s.current.Shape, s.current.X+dx, s.current.Y+dy) {
		return false
	}
	s.current.Translate(dx, dy)
	s.emit(Event{Kind: EventMoved})
	return true
}

// lock merges the current piece, clears rows, scores them and brings in the next
// piece. A next piece that collides at its spawn position ends the game.
func (s *Session) lock() {
	s.grid.Merge(s.current)
	s.pieces++
	s.emit(Event{Kind: EventLocked})

	if cleared := s.grid.ClearFullLines(); cleared > 0 {
		s.award(cleared)
	}

	s.current = s.next
	s.next = s.spawn()
	if s.grid.Collides(s.current.Shape, s.current.X, s.current.Y) {
		s.gameOver()
	}
}

// award scores cleared rows at the level they were cleared on. Crossing a level
// boundary grants exactly one level even if the award spans several boundaries.
func (s *Session) award(cleared int) {
	before := s.score
	s.score += cleared * s.cfg.LinePoints * s.level
	s.lines += cleared
	s.emit(Event{Kind: EventLinesCleared, Lines: cleared, Score: s.score, Level: s.level})

	if s.score/s.cfg.LevelScore > before/s.cfg.LevelScore {
		s.level++
		s.fallInterval = max(s.cfg.MinFallInterval, s.fallInterval-s.cfg.FallIntervalStep)
		s.emit(Event{Kind: EventLevelUp, Score: s.score, Level: s.level})
	}
}

func (s *Session) gameOver() {
	s.setPhase(PhaseGameOver)
	s.emit(Event{Kind: EventGameOver, Score: s.score, Level: s.level, Lines: s.lines})
	s.logger.Printf("game over: score=%d level=%d lines=%d pieces=%d time=%s",
		s.score, s.level, s.lines, s.pieces, s.played.Round(time.Second))

	if s.store != nil {
		if err := s.store.Save(s.score); err != nil {
			s.logger.Printf("saving score %d: %v", s.score, err)
		}
	}
	s.loadHighScores()
}

func (s *Session) loadHighScores() {
	s.highScores = nil
	if s.store == nil {
		return
	}
	scores, err := s.store.Load()
	if err != nil {
		s.logger.Printf("loading high scores: %v", err)
		return
	}
	s.highScores = scores
}

func (s *Session) spawn() *Piece {
	return Spawn(s.rnd.NextKind(), s.cfg.Cols, s.rnd, s.cfg.TextureCount)
}

func (s *Session) setPhase(p Phase) {
	if s.phase == p {
		return
	}
	s.phase = p
	s.emit(Event{Kind: EventPhaseChanged, Phase: p})
}

func (s *Session) emit(e Event) {
	if len(s.events) >= maxPendingEvents {
		s.events = s.events[1:]
	}
	s.events = append(s.events, e)
}
