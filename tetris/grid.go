package tetris

import (
	"fmt"
	"strings"
)

// Reference playfield dimensions.
const (
	DefaultRows = 20
	DefaultCols = 10
)

// Cell is one square of the playfield.
type Cell struct {
	Occupied   bool
	Decoration Decoration
}

// Grid is a fixed-size playfield. Row 0 is the top.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid creates an empty grid. It panics if either dimension is not positive.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("tetris: invalid grid size %dx%d", rows, cols))
	}
	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]Cell, rows)
	for r := range g.cells {
		g.cells[r] = make([]Cell, cols)
	}
	return g
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Cell returns the cell at (row, col). Coordinates outside the grid read as empty.
func (g *Grid) Cell(row, col int) Cell {
	if !g.inside(row, col) {
		return Cell{}
	}
	return g.cells[row][col]
}

// Set overwrites the cell at (row, col). Coordinates outside the grid are ignored.
func (g *Grid) Set(row, col int, cell Cell) {
	if !g.inside(row, col) {
		return
	}
	g.cells[row][col] = cell
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for r := range g.cells {
		clear(g.cells[r])
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, cells: cloneMatrix(g.cells)}
}

// Collides reports whether shape placed with its top-left corner at column x, row y
// overlaps a wall, the floor or an occupied cell. Cells above the top edge never
// collide, so pieces may hang partially off-screen.
func (g *Grid) Collides(shape Shape, x, y int) bool {
	for r, c := range shape.Cells() {
		col := x + c
		row := y + r
		if col < 0 || col >= g.cols || row >= g.rows {
			return true
		}
		if row >= 0 && g.cells[row][col].Occupied {
			return true
		}
	}
	return false
}

// DropDistance returns how many rows shape can fall from (x, y) before colliding.
// It returns 0 if the shape already collides.
func (g *Grid) DropDistance(shape Shape, x, y int) int {
	if g.Collides(shape, x, y) {
		return 0
	}
	limit := g.rows + shape.Height()
	d := 0
	for d < limit && !g.Collides(shape, x, y+d+1) {
		d++
	}
	return d
}

// Merge writes every occupied cell of p into the grid. Callers check for collisions
// first; cells that fall outside the grid are skipped.
func (g *Grid) Merge(p *Piece) {
	for b := range p.Blocks() {
		g.Set(b.Row, b.Col, Cell{Occupied: true, Decoration: b.Decoration})
	}
}

// RowFull reports whether every cell of row is occupied.
func (g *Grid) RowFull(row int) bool {
	if row < 0 || row >= g.rows {
		return false
	}
	for _, cell := range g.cells[row] {
		if !cell.Occupied {
			return false
		}
	}
	return true
}

// ClearFullLines removes every full row, shifts the remaining rows down keeping their
// order and refills the top with empty rows. It returns the number of rows removed.
func (g *Grid) ClearFullLines() int {
	kept := make([][]Cell, 0, g.rows)
	for r := range g.cells {
		if !g.RowFull(r) {
			kept = append(kept, g.cells[r])
		}
	}

	cleared := g.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	cells := make([][]Cell, 0, g.rows)
	for range cleared {
		cells = append(cells, make([]Cell, g.cols))
	}
	g.cells = append(cells, kept...)
	return cleared
}

// Heights returns the stack height of every column, 0 for an empty column.
func (g *Grid) Heights() []int {
	heights := make([]int, g.cols)
	for c := range g.cols {
		for r := range g.rows {
			if g.cells[r][c].Occupied {
				heights[c] = g.rows - r
				break
			}
		}
	}
	return heights
}

// Holes counts empty cells that have an occupied cell somewhere above them.
func (g *Grid) Holes() int {
	holes := 0
	for c := range g.cols {
		covered := false
		for r := range g.rows {
			switch {
			case g.cells[r][c].Occupied:
				covered = true
			case covered:
				holes++
			}
		}
	}
	return holes
}

// String renders the grid with '#' for occupied and '.' for empty cells.
func (g *Grid) String() string {
	var b strings.Builder
	for r, row := range g.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			if cell.Occupied {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

func (g *Grid) inside(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}
