// Package autoplay picks placements for the falling piece. It drives the headless
// simulator and the demo mode of the front-ends.
package autoplay

import (
	"math"

	"github.com/plus3/blockfall/tetris"
)

// Weights scores a board after a candidate placement. Higher totals are better.
type Weights struct {
	Height    float64
	Lines     float64
	Holes     float64
	Bumpiness float64
}

// DefaultWeights is a well-known hand-tuned set that clears lines steadily.
var DefaultWeights = Weights{
	Height:    -0.510066,
	Lines:     0.760666,
	Holes:     -0.35663,
	Bumpiness: -0.184483,
}

// Placement is a reachable final position of the current piece.
type Placement struct {
	Rotations int
	X         int
	Score     float64
}

// Planner searches every rotation and column reachable without gravity.
type Planner struct {
	Weights Weights
}

// NewPlanner returns a planner using DefaultWeights.
func NewPlanner() *Planner {
	return &Planner{Weights: DefaultWeights}
}

// Best returns the highest scoring placement of piece on grid. It returns false
// when the piece cannot be moved at all.
func (p *Planner) Best(grid *tetris.Grid, piece *tetris.Piece) (Placement, bool) {
	if grid.Collides(piece.Shape, piece.X, piece.Y) {
		return Placement{}, false
	}

	best := Placement{Score: math.Inf(-1)}
	found := false

	candidate := piece.Clone()
	for rot := range 4 {
		if rot > 0 {
			shape, decor := candidate.Rotated()
			if grid.Collides(shape, candidate.X, candidate.Y) {
				break
			}
			candidate.ApplyRotation(shape, decor)
		}

		lo, hi := reach(grid, candidate)
		for x := lo; x <= hi; x++ {
			score := p.evaluate(grid, candidate, x)
			if !found || score > best.Score {
				best = Placement{Rotations: rot, X: x, Score: score}
				found = true
			}
		}
	}
	return best, found
}

// Plan returns the actions that bring piece to its best placement and hard drop it.
func (p *Planner) Plan(grid *tetris.Grid, piece *tetris.Piece) []tetris.Action {
	best, ok := p.Best(grid, piece)
	if !ok {
		return []tetris.Action{tetris.ActionHardDrop}
	}

	actions := make([]tetris.Action, 0, best.Rotations+grid.Cols()+1)
	for range best.Rotations {
		actions = append(actions, tetris.ActionRotate)
	}
	step := tetris.ActionMoveRight
	dx := best.X - piece.X
	if dx < 0 {
		step = tetris.ActionMoveLeft
		dx = -dx
	}
	for range dx {
		actions = append(actions, step)
	}
	return append(actions, tetris.ActionHardDrop)
}

// reach returns the column range the piece can slide to from its current position.
func reach(grid *tetris.Grid, piece *tetris.Piece) (int, int) {
	lo := piece.X
	for !grid.Collides(piece.Shape, lo-1, piece.Y) {
		lo--
	}
	hi := piece.X
	for !grid.Collides(piece.Shape, hi+1, piece.Y) {
		hi++
	}
	return lo, hi
}

func (p *Planner) evaluate(grid *tetris.Grid, piece *tetris.Piece, x int) float64 {
	board := grid.Clone()
	placed := piece.Clone()
	placed.X = x
	placed.Translate(0, board.DropDistance(placed.Shape, placed.X, placed.Y))
	board.Merge(placed)
	lines := board.ClearFullLines()

	heights := board.Heights()
	aggregate, bumpiness := 0, 0
	for i, h := range heights {
		aggregate += h
		if i > 0 {
			bumpiness += abs(h - heights[i-1])
		}
	}

	w := p.Weights
	return w.Height*float64(aggregate) +
		w.Lines*float64(lines) +
		w.Holes*float64(board.Holes()) +
		w.Bumpiness*float64(bumpiness)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
