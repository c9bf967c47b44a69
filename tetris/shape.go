package tetris

import (
	"iter"
	"strings"
)

// Shape is the row-major occupancy matrix of a piece in its current rotation.
// A valid Shape is rectangular and non-empty.
type Shape [][]bool

var catalog = [KindCount]Shape{
	{ // I
		{true, true, true, true},
	},
	{ // T
		{true, true, true},
		{false, true, false},
	},
	{ // O
		{true, true},
		{true, true},
	},
	{ // S
		{true, true, false},
		{false, true, true},
	},
	{ // Z
		{false, true, true},
		{true, true, false},
	},
	{ // L
		{true, true, true},
		{true, false, false},
	},
	{ // J
		{true, true, true},
		{false, false, true},
	},
}

// ShapeOf returns a copy of the rotation-0 layout of k.
// It panics if k is not a valid kind.
func ShapeOf(k Kind) Shape {
	if !k.Valid() {
		panic("tetris: unknown kind " + k.String())
	}
	return catalog[k].Clone()
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy of s.
func (s Shape) Clone() Shape {
	return cloneMatrix(s)
}

// Rotate returns s turned 90 degrees clockwise. s is not modified.
func (s Shape) Rotate() Shape {
	return rotateClockwise(s)
}

// Equal reports whether s and other have the same dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for r := range s {
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Cells yields the (row, col) offset of every occupied cell.
func (s Shape) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r, row := range s {
			for c, filled := range row {
				if !filled {
					continue
				}
				if !yield(r, c) {
					return
				}
			}
		}
	}
}

// String renders s with '#' for occupied and '.' for empty cells, one line per row.
func (s Shape) String() string {
	var b strings.Builder
	for r, row := range s {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

func cloneMatrix[T any](m [][]T) [][]T {
	if m == nil {
		return nil
	}
	out := make([][]T, len(m))
	for i, row := range m {
		out[i] = make([]T, len(row))
		copy(out[i], row)
	}
	return out
}

// rotateClockwise is the transpose of the vertically reversed matrix.
func rotateClockwise[T any](m [][]T) [][]T {
	rows := len(m)
	if rows == 0 {
		return nil
	}
	cols := len(m[0])

	out := make([][]T, cols)
	for c := range cols {
		out[c] = make([]T, rows)
		for r := range rows {
			out[c][r] = m[rows-1-r][c]
		}
	}
	return out
}
