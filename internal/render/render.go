package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/internal/assets"
	"github.com/plus3/blockfall/internal/hud"
	"github.com/plus3/blockfall/tetris"
)

var (
	background = color.RGBA{18, 18, 24, 255}
	boardFill  = color.RGBA{30, 30, 40, 255}
	gridLine   = color.RGBA{40, 40, 52, 255}
	border     = color.RGBA{120, 120, 130, 255}
	shade      = color.RGBA{0, 0, 0, 180}
	outline    = color.RGBA{0, 0, 0, 255}
)

// Renderer draws one session. Assets may be nil, in which case every cell is drawn
// with its plain color.
type Renderer struct {
	Session *tetris.Session
	Assets  *assets.Registry
	Layout  Layout
}

// New returns a renderer laid out for the session's playfield.
func New(session *tetris.Session, registry *assets.Registry, cellSize int) *Renderer {
	cfg := session.Config()
	return &Renderer{
		Session: session,
		Assets:  registry,
		Layout:  Layout{Rows: cfg.Rows, Cols: cfg.Cols, CellSize: cellSize},
	}
}

// Draw paints the full frame.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	r.drawBoard(screen)
	if r.Session.Phase() == tetris.PhasePlaying || r.Session.Phase() == tetris.PhasePaused {
		r.drawFalling(screen)
	}
	r.drawSidebar(screen)

	if lines := hud.Overlay(r.Session); len(lines) > 0 {
		r.drawOverlay(screen, lines)
	}
}

func (r *Renderer) drawBoard(screen *ebiten.Image) {
	x, y := r.Layout.BoardOrigin()
	w, h := r.Layout.BoardSize()
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), boardFill, false)
	vector.StrokeRect(screen, float32(x-2), float32(y-2), float32(w+4), float32(h+4), 2, border, false)

	grid := r.Session.Grid()
	size := float32(r.Layout.CellSize)
	for row := range grid.Rows() {
		for col := range grid.Cols() {
			cx, cy := r.Layout.CellOrigin(row, col)
			cell := grid.Cell(row, col)
			if !cell.Occupied {
				vector.StrokeRect(screen, float32(cx), float32(cy), size, size, 1, gridLine, false)
				continue
			}
			r.drawCell(screen, cx, cy, r.Layout.CellSize, cell.Decoration)
		}
	}
}

func (r *Renderer) drawFalling(screen *ebiten.Image) {
	current := r.Session.Current()
	if current == nil {
		return
	}

	ghostY := r.Session.GhostY()
	size := float32(r.Layout.CellSize)
	for b := range current.Blocks() {
		row := b.Row - current.Y + ghostY
		if row < 0 {
			continue
		}
		cx, cy := r.Layout.CellOrigin(row, b.Col)
		vector.DrawFilledRect(screen, float32(cx), float32(cy), size, size, assets.Ghost(b.Decoration), false)
	}

	for b := range current.Blocks() {
		if b.Row < 0 {
			continue
		}
		cx, cy := r.Layout.CellOrigin(b.Row, b.Col)
		r.drawCell(screen, cx, cy, r.Layout.CellSize, b.Decoration)
	}
}

// drawCell draws a size by size cell with its top left corner at x, y.
func (r *Renderer) drawCell(screen *ebiten.Image, x, y, size int, d tetris.Decoration) {
	fx, fy, fs := float32(x), float32(y), float32(size)
	if tex := r.texture(d); tex != nil {
		opts := &ebiten.DrawImageOptions{GeoM: placement(tex.Bounds().Dx(), x, y, size)}
		if size != tex.Bounds().Dx() {
			opts.Filter = ebiten.FilterLinear
		}
		screen.DrawImage(tex, opts)
	} else {
		vector.DrawFilledRect(screen, fx, fy, fs, fs, assets.Color(d), false)
	}
	vector.StrokeRect(screen, fx, fy, fs, fs, 1, outline, false)
}

// placement maps a square texture texSize pixels wide onto a size pixel cell at x, y.
func placement(texSize, x, y, size int) ebiten.GeoM {
	var m ebiten.GeoM
	if texSize > 0 && texSize != size {
		k := float64(size) / float64(texSize)
		m.Scale(k, k)
	}
	m.Translate(float64(x), float64(y))
	return m
}

func (r *Renderer) texture(d tetris.Decoration) *ebiten.Image {
	if r.Assets == nil || !d.HasTexture() {
		return nil
	}
	return r.Assets.Texture(d.Texture)
}

func (r *Renderer) drawSidebar(screen *ebiten.Image) {
	x, y := r.Layout.SidebarOrigin()

	ebitenutil.DebugPrintAt(screen, "NEXT", x, y)
	if next := r.Session.Next(); next != nil && r.Session.Phase() != tetris.PhaseMenu {
		top := y + lineHeight + 4
		cell := r.Layout.CellSize * 3 / 4
		for row, col := range next.Shape.Cells() {
			d := next.DecorationAt(row, col)
			r.drawCell(screen, x+col*cell, top+row*cell, cell, d)
		}
	}

	y += lineHeight + 4 + 4*r.Layout.CellSize*3/4 + Margin
	for i, line := range hud.Sidebar(r.Session) {
		ebitenutil.DebugPrintAt(screen, line, x, y+i*lineHeight)
	}
}

func (r *Renderer) drawOverlay(screen *ebiten.Image, lines []string) {
	x, y := r.Layout.BoardOrigin()
	w, h := r.Layout.BoardSize()
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), shade, false)

	top := y + h/2 - len(lines)*lineHeight/2
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x+Margin/2, top+i*lineHeight)
	}
}
