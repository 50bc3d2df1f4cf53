package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/constellation/internal/config"
)

const (
	bigDot   = '●'
	smallDot = '•'
	linkDot  = '·'

	// particles at least this large get the big glyph
	bigDotSize = 1.5
)

// Screen is the part of tcell.Screen the canvas draws through.
type Screen interface {
	Clear()
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Canvas renders onto terminal cells. Surface coordinates are pixels; each
// cell covers config.CellWidth x config.CellHeight of them. Cells hold no
// alpha, so colours are blended against black, and link segments never
// overwrite a cell that already shows a particle.
type Canvas struct {
	screen     Screen
	cols, rows int
	occupied   []bool
}

func NewCanvas(screen Screen) *Canvas {
	return &Canvas{screen: screen}
}

// SurfaceSize converts a cell grid into surface pixels.
func SurfaceSize(cols, rows int) (int, int) {
	return cols * config.CellWidth, rows * config.CellHeight
}

// CellCenter maps a cell to the surface pixel at its centre.
func CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * config.CellWidth, (float64(row) + 0.5) * config.CellHeight
}

func (c *Canvas) Clear() {
	c.screen.Clear()
	c.cols, c.rows = c.screen.Size()
	n := c.cols * c.rows
	if cap(c.occupied) < n {
		c.occupied = make([]bool, n)
		return
	}
	c.occupied = c.occupied[:n]
	clear(c.occupied)
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	col, row, ok := c.cell(cx, cy)
	if !ok {
		return
	}
	glyph := smallDot
	if r >= bigDotSize {
		glyph = bigDot
	}
	c.screen.SetContent(col, row, glyph, nil, styleFor(clr))
	c.occupied[row*c.cols+col] = true
}

// StrokeLine walks the cells between the endpoints with Bresenham's algorithm.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, _ float64, clr color.Color) {
	style := styleFor(clr)
	col0, row0 := cellOf(x0, y0)
	col1, row1 := cellOf(x1, y1)

	dx := abs(col1 - col0)
	dy := -abs(row1 - row0)
	sx, sy := 1, 1
	if col0 > col1 {
		sx = -1
	}
	if row0 > row1 {
		sy = -1
	}
	e := dx + dy
	for {
		if c.inside(col0, row0) && !c.occupied[row0*c.cols+col0] {
			c.screen.SetContent(col0, row0, linkDot, nil, style)
		}
		if col0 == col1 && row0 == row1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			col0 += sx
		}
		if e2 <= dx {
			e += dx
			row0 += sy
		}
	}
}

func (c *Canvas) cell(x, y float64) (int, int, bool) {
	col, row := cellOf(x, y)
	return col, row, c.inside(col, row)
}

func (c *Canvas) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < c.cols && row < c.rows
}

func cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / config.CellWidth)), int(math.Floor(y / config.CellHeight))
}

// styleFor flattens a translucent colour onto a black background.
func styleFor(clr color.Color) tcell.Style {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	scale := func(v uint8) int32 {
		return int32((uint32(v)*uint32(c.A) + 127) / 255)
	}
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(scale(c.R), scale(c.G), scale(c.B))).
		Background(tcell.ColorBlack)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
