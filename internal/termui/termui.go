package termui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/internal/hud"
	"github.com/plus3/blockfall/internal/loop"
	"github.com/plus3/blockfall/internal/play"
	"github.com/plus3/blockfall/tetris"
)

// Each grid cell is two terminal columns wide so the board looks square.
const cellWidth = 2

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
)

// Renderer draws a session as text. Textures are not shown in the terminal.
type Renderer struct {
	Screen  tcell.Screen
	Session *tetris.Session
}

// Execute draws the frame. It lets the renderer sit at the end of the scheduler.
func (r *Renderer) Execute(frame *loop.Frame) {
	r.Draw()
}

// Draw paints the session and shows the result.
func (r *Renderer) Draw() {
	r.Screen.Clear()

	grid := r.Session.Grid()
	r.drawBorder(grid.Rows(), grid.Cols())
	for row := range grid.Rows() {
		for col := range grid.Cols() {
			cell := grid.Cell(row, col)
			if cell.Occupied {
				r.drawBlock(row, col, blockStyle(cell.Decoration))
			} else {
				r.drawCell(row, col, " .", emptyStyle)
			}
		}
	}

	phase := r.Session.Phase()
	if current := r.Session.Current(); current != nil && (phase == tetris.PhasePlaying || phase == tetris.PhasePaused) {
		ghostY := r.Session.GhostY()
		for b := range current.Blocks() {
			if row := b.Row - current.Y + ghostY; row >= 0 {
				r.drawCell(row, b.Col, "[]", ghostStyle(b.Decoration))
			}
		}
		for b := range current.Blocks() {
			if b.Row >= 0 {
				r.drawBlock(b.Row, b.Col, blockStyle(b.Decoration))
			}
		}
	}

	r.drawSidebar(grid.Cols())

	if lines := hud.Overlay(r.Session); len(lines) > 0 {
		top := 1 + grid.Rows()/2 - len(lines)/2
		for i, line := range lines {
			style := textStyle
			if i == 0 {
				style = titleStyle
			}
			drawText(r.Screen, 2, top+i, line, style)
		}
	}

	r.Screen.Show()
}

func (r *Renderer) drawBorder(rows, cols int) {
	right := 1 + cols*cellWidth
	bottom := 1 + rows
	for x := 1; x < right; x++ {
		r.Screen.SetContent(x, 0, tcell.RuneHLine, nil, borderStyle)
		r.Screen.SetContent(x, bottom, tcell.RuneHLine, nil, borderStyle)
	}
	for y := 1; y < bottom; y++ {
		r.Screen.SetContent(0, y, tcell.RuneVLine, nil, borderStyle)
		r.Screen.SetContent(right, y, tcell.RuneVLine, nil, borderStyle)
	}
	r.Screen.SetContent(0, 0, tcell.RuneULCorner, nil, borderStyle)
	r.Screen.SetContent(right, 0, tcell.RuneURCorner, nil, borderStyle)
	r.Screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, borderStyle)
	r.Screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, borderStyle)
}

func (r *Renderer) drawBlock(row, col int, style tcell.Style) {
	r.drawCell(row, col, "  ", style)
}

func (r *Renderer) drawCell(row, col int, text string, style tcell.Style) {
	drawText(r.Screen, 1+col*cellWidth, 1+row, text, style)
}

func (r *Renderer) drawSidebar(cols int) {
	x := 3 + cols*cellWidth
	drawText(r.Screen, x, 1, "NEXT", titleStyle)
	if next := r.Session.Next(); next != nil && r.Session.Phase() != tetris.PhaseMenu {
		for row, col := range next.Shape.Cells() {
			drawText(r.Screen, x+col*cellWidth, 2+row, "  ", blockStyle(next.DecorationAt(row, col)))
		}
	}

	for i, line := range hud.Sidebar(r.Session) {
		drawText(r.Screen, x, 7+i, line, textStyle)
	}
}

func blockStyle(d tetris.Decoration) tcell.Style {
	return tcell.StyleDefault.Background(rgb(d))
}

func ghostStyle(d tetris.Decoration) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(d)).Dim(true)
}

func rgb(d tetris.Decoration) tcell.Color {
	red, green, blue := d.Color.RGB()
	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

// PollEvents reads screen events into events until the screen is finalized or
// ctx is done. The nil event that ends polling is forwarded too.
func PollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
		if ev == nil {
			return
		}
	}
}

// InputSystem forwards key events read from the terminal into the action queue.
// Events arrive on a channel fed by PollEvents.
type InputSystem struct {
	Events <-chan tcell.Event
	Queue  *play.ActionQueue
	Resize func()
}

func (s *InputSystem) Execute(frame *loop.Frame) {
	for {
		select {
		case ev := <-s.Events:
			switch e := ev.(type) {
			case *tcell.EventKey:
				if a, ok := KeyAction(e); ok {
					s.Queue.Push(a)
				}
			case *tcell.EventResize:
				if s.Resize != nil {
					s.Resize()
				}
			case nil:
				s.Queue.Push(tetris.ActionQuit)
				return
			}
		default:
			return
		}
	}
}
