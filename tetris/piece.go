package tetris

import "iter"

// Piece is a tetromino instance on the playfield.
// X and Y are the grid coordinates of the top-left corner of the shape's bounding box.
type Piece struct {
	Kind  Kind
	Shape Shape
	Decor [][]Decoration
	X, Y  int
}

// Block is one occupied cell of a piece in absolute grid coordinates.
type Block struct {
	Row, Col   int
	Decoration Decoration
}

// Spawn creates a piece of the given kind horizontally centered on row 0 of a grid
// gridWidth columns wide. Every occupied cell gets the kind's color and a texture
// drawn from rnd out of textureCount registered textures. A nil rnd or a zero
// textureCount leaves cells untextured.
func Spawn(kind Kind, gridWidth int, rnd Randomizer, textureCount int) *Piece {
	shape := ShapeOf(kind)
	color := ColorOf(kind)

	decor := make([][]Decoration, shape.Height())
	for r, row := range shape {
		decor[r] = make([]Decoration, len(row))
		for c, filled := range row {
			if !filled {
				continue
			}
			var texture TextureID
			if rnd != nil {
				texture = rnd.NextTexture(textureCount)
			}
			decor[r][c] = Decoration{Color: color, Texture: texture}
		}
	}

	return &Piece{
		Kind:  kind,
		Shape: shape,
		Decor: decor,
		X:     gridWidth/2 - shape.Width()/2,
		Y:     0,
	}
}

// Rotated returns the clockwise rotation of the shape and of the decoration matrix.
// The piece itself is unchanged so the candidate can be checked for collisions
// before ApplyRotation commits it.
func (p *Piece) Rotated() (Shape, [][]Decoration) {
	return p.Shape.Rotate(), rotateClockwise(p.Decor)
}

// ApplyRotation replaces the shape and decoration with a candidate from Rotated.
func (p *Piece) ApplyRotation(shape Shape, decor [][]Decoration) {
	p.Shape = shape
	p.Decor = decor
}

// Translate offsets the origin. Callers check Grid.Collides first.
func (p *Piece) Translate(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Clone returns a deep copy of p.
func (p *Piece) Clone() *Piece {
	return &Piece{
		Kind:  p.Kind,
		Shape: p.Shape.Clone(),
		Decor: cloneMatrix(p.Decor),
		X:     p.X,
		Y:     p.Y,
	}
}

// DecorationAt returns the decoration of the shape cell at (row, col), or the zero
// Decoration when the matrix does not cover it.
func (p *Piece) DecorationAt(row, col int) Decoration {
	if row < 0 || row >= len(p.Decor) || col < 0 || col >= len(p.Decor[row]) {
		return Decoration{}
	}
	return p.Decor[row][col]
}

// Blocks yields every occupied cell in grid coordinates.
func (p *Piece) Blocks() iter.Seq[Block] {
	return func(yield func(Block) bool) {
		for r, c := range p.Shape.Cells() {
			b := Block{
				Row:        p.Y + r,
				Col:        p.X + c,
				Decoration: p.DecorationAt(r, c),
			}
			if !yield(b) {
				return
			}
		}
	}
}
