// Package render draws a session onto an ebiten screen.
package render

// Margin around the board and between the board and the sidebar, in pixels.
const (
	Margin       = 20
	SidebarWidth = 160
	lineHeight   = 16
)

// Layout places the board and the sidebar for a given playfield and cell size.
type Layout struct {
	Rows, Cols int
	CellSize   int
}

// BoardOrigin returns the top-left pixel of the board.
func (l Layout) BoardOrigin() (int, int) {
	return Margin, Margin
}

// BoardSize returns the board size in pixels.
func (l Layout) BoardSize() (int, int) {
	return l.Cols * l.CellSize, l.Rows * l.CellSize
}

// SidebarOrigin returns the top-left pixel of the sidebar.
func (l Layout) SidebarOrigin() (int, int) {
	w, _ := l.BoardSize()
	return 2*Margin + w, Margin
}

// CellOrigin returns the top-left pixel of a grid cell.
func (l Layout) CellOrigin(row, col int) (int, int) {
	x, y := l.BoardOrigin()
	return x + col*l.CellSize, y + row*l.CellSize
}

// Screen returns the window size that fits the board and sidebar.
func (l Layout) Screen() (int, int) {
	w, h := l.BoardSize()
	return 3*Margin + w + SidebarWidth, 2*Margin + h
}
