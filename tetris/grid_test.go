package tetris_test

import (
	"strings"
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(g *tetris.Grid, row int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, c := range except {
		skip[c] = true
	}
	for c := range g.Cols() {
		if skip[c] {
			continue
		}
		g.Set(row, c, tetris.Cell{Occupied: true, Decoration: tetris.Decoration{Color: 1}})
	}
}

func TestNewGrid(t *testing.T) {
	g := tetris.NewGrid(20, 10)
	assert.Equal(t, 20, g.Rows())
	assert.Equal(t, 10, g.Cols())
	for r := range 20 {
		for c := range 10 {
			assert.False(t, g.Cell(r, c).Occupied)
		}
	}

	assert.Panics(t, func() { tetris.NewGrid(0, 10) })
	assert.Panics(t, func() { tetris.NewGrid(20, -1) })
}

func TestGridCellOutOfRange(t *testing.T) {
	g := tetris.NewGrid(4, 4)
	g.Set(-1, 0, tetris.Cell{Occupied: true})
	g.Set(0, 4, tetris.Cell{Occupied: true})
	assert.Equal(t, tetris.Cell{}, g.Cell(-1, 0))
	assert.Equal(t, tetris.Cell{}, g.Cell(4, 0))
	assert.Equal(t, strings.Repeat("....\n", 3)+"....", g.String())
}

func TestCollides(t *testing.T) {
	g := tetris.NewGrid(20, 10)
	g.Set(10, 5, tetris.Cell{Occupied: true})
	o := tetris.ShapeOf(tetris.KindO)
	i := tetris.ShapeOf(tetris.KindI)

	tests := []struct {
		name  string
		shape tetris.Shape
		x, y  int
		want  bool
	}{
		{"free", o, 0, 0, false},
		{"left wall", o, -1, 0, true},
		{"right wall", o, 9, 0, true},
		{"flush right", o, 8, 0, false},
		{"floor", o, 0, 19, true},
		{"resting on floor", o, 0, 18, false},
		{"occupied cell", o, 4, 9, true},
		{"next to occupied cell", o, 6, 9, false},
		{"above the top", o, 0, -2, false},
		{"partially above the top", i, 0, -1, false},
		{"above the top but beyond the wall", i, 7, -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Collides(tt.shape, tt.x, tt.y))
		})
	}
}

func TestTranslationKeepsValidity(t *testing.T) {
	g := tetris.NewGrid(20, 10)
	fillRow(g, 19, 2, 7)
	fillRow(g, 18, 0, 1, 2, 3, 7)
	g.Set(12, 4, tetris.Cell{Occupied: true})

	for _, kind := range tetris.Kinds() {
		p := tetris.Spawn(kind, g.Cols(), nil, 0)
		for rot := range 4 {
			for dy := -2; dy <= 20; dy++ {
				for dx := -6; dx <= 6; dx++ {
					if g.Collides(p.Shape, p.X+dx, p.Y+dy) {
						continue
					}
					moved := p.Clone()
					moved.Translate(dx, dy)
					assert.False(t, g.Collides(moved.Shape, moved.X, moved.Y),
						"kind=%s rot=%d dx=%d dy=%d", kind, rot, dx, dy)
				}
			}
			shape, decor := p.Rotated()
			p.ApplyRotation(shape, decor)
		}
	}
}

func TestDropDistance(t *testing.T) {
	g := tetris.NewGrid(20, 10)
	o := tetris.ShapeOf(tetris.KindO)

	assert.Equal(t, 18, g.DropDistance(o, 0, 0))

	fillRow(g, 19)
	assert.Equal(t, 17, g.DropDistance(o, 0, 0))

	g.Set(5, 1, tetris.Cell{Occupied: true})
	assert.Equal(t, 3, g.DropDistance(o, 0, 0))
	assert.Equal(t, 0, g.DropDistance(o, 0, 4), "already colliding")
}

func TestMerge(t *testing.T) {
	g := tetris.NewGrid(20, 10)
	p := tetris.Spawn(tetris.KindT, g.Cols(), tetris.NewSequence(tetris.KindT).WithTextures(1, 2, 3, 4), 4)
	p.Translate(0, 5)

	g.Merge(p)

	assert.Equal(t, tetris.Cell{Occupied: true, Decoration: tetris.Decoration{Color: tetris.ColorOf(tetris.KindT), Texture: 1}}, g.Cell(5, 4))
	assert.Equal(t, tetris.Cell{Occupied: true, Decoration: tetris.Decoration{Color: tetris.ColorOf(tetris.KindT), Texture: 2}}, g.Cell(5, 5))
	assert.Equal(t, tetris.Cell{Occupied: true, Decoration: tetris.Decoration{Color: tetris.ColorOf(tetris.KindT), Texture: 3}}, g.Cell(5, 6))
	assert.Equal(t, tetris.Cell{Occupied: true, Decoration: tetris.Decoration{Color: tetris.ColorOf(tetris.KindT), Texture: 4}}, g.Cell(6, 5))
	assert.False(t, g.Cell(6, 4).Occupied)
	assert.False(t, g.Cell(6, 6).Occupied)
}

func TestMergeSkipsCellsAboveTop(t *testing.T) {
	g := tetris.NewGrid(20, 10)
	p := tetris.Spawn(tetris.KindO, g.Cols(), nil, 0)
	p.Translate(0, -1)

	g.Merge(p)

	assert.True(t, g.Cell(0, 4).Occupied)
	assert.True(t, g.Cell(0, 5).Occupied)
	assert.False(t, g.Cell(1, 4).Occupied)
}

func TestClearFullLinesNone(t *testing.T) {
	g := tetris.NewGrid(20, 10)
	fillRow(g, 19, 0)
	fillRow(g, 18, 9)
	g.Set(3, 3, tetris.Cell{Occupied: true})
	before := g.String()

	assert.Equal(t, 0, g.ClearFullLines())
	assert.Equal(t, before, g.String())
}

func TestClearFullLinesNonContiguous(t *testing.T) {
	g := tetris.NewGrid(20, 10)
	fillRow(g, 19)
	fillRow(g, 17)
	fillRow(g, 15)

	// markers on the rows that survive
	g.Set(18, 0, tetris.Cell{Occupied: true, Decoration: tetris.Decoration{Color: 1}})
	g.Set(16, 1, tetris.Cell{Occupied: true, Decoration: tetris.Decoration{Color: 2}})
	g.Set(14, 2, tetris.Cell{Occupied: true, Decoration: tetris.Decoration{Color: 3}})

	require.Equal(t, 3, g.ClearFullLines())
	assert.Equal(t, 20, g.Rows())

	for r := range 17 {
		for c := range 10 {
			assert.False(t, g.Cell(r, c).Occupied, "row %d col %d", r, c)
		}
	}

	assert.Equal(t, tetris.ColorID(1), g.Cell(19, 0).Decoration.Color)
	assert.Equal(t, tetris.ColorID(2), g.Cell(18, 1).Decoration.Color)
	assert.Equal(t, tetris.ColorID(3), g.Cell(17, 2).Decoration.Color)
	assert.False(t, g.RowFull(19))
}

func TestClearFullLinesFreshRows(t *testing.T) {
	g := tetris.NewGrid(4, 3)
	fillRow(g, 3)
	require.Equal(t, 1, g.ClearFullLines())

	// the new top row must not alias the removed one
	g.Set(0, 0, tetris.Cell{Occupied: true})
	assert.Equal(t, "#..\n...\n...\n...", g.String())
}

func TestHeightsAndHoles(t *testing.T) {
	g := tetris.NewGrid(5, 3)
	g.Set(2, 0, tetris.Cell{Occupied: true})
	g.Set(4, 0, tetris.Cell{Occupied: true})
	g.Set(4, 2, tetris.Cell{Occupied: true})

	assert.Equal(t, []int{3, 0, 1}, g.Heights())
	assert.Equal(t, 1, g.Holes())
}

func TestGridClone(t *testing.T) {
	g := tetris.NewGrid(4, 4)
	clone := g.Clone()
	clone.Set(0, 0, tetris.Cell{Occupied: true})

	assert.False(t, g.Cell(0, 0).Occupied)
	assert.True(t, clone.Cell(0, 0).Occupied)
}
