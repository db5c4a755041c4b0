package canvas

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"boxdraw/core"
)

// MatrixGrid is an in-memory Grid.
//
// Thread Safety:
// MatrixGrid is NOT thread-safe for writes. SetCell, Clear and every Drawer call on the
// grid must be synchronized externally if used from multiple goroutines. Reads (Cell,
// Size, String) are safe for concurrent access as long as no writes are happening.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward
//   - Y increases downward
type MatrixGrid struct {
	cells [][]cell
	size  core.Size
}

type cell struct {
	r     rune
	style tcell.Style
}

var blank = cell{r: ' ', style: tcell.StyleDefault}

// NewMatrixGrid creates a blank grid with the specified dimensions.
// It returns nil if either dimension is not positive.
func NewMatrixGrid(cols, rows int) *MatrixGrid {
	if cols <= 0 || rows <= 0 {
		return nil
	}

	cells := make([][]cell, rows)
	for y := range cells {
		cells[y] = make([]cell, cols)
	}
	g := &MatrixGrid{cells: cells, size: core.Size{Rows: rows, Cols: cols}}
	g.Clear()
	return g
}

// Size returns the grid dimensions.
func (g *MatrixGrid) Size() core.Size {
	return g.size
}

// Cell returns the rune and style at p.
func (g *MatrixGrid) Cell(p core.Point) (rune, tcell.Style, error) {
	if !g.size.Contains(p) {
		return 0, tcell.StyleDefault, outOfBounds(p, g.size)
	}
	c := g.cells[p.Y][p.X]
	return c.r, c.style, nil
}

// SetCell replaces the rune and style at p.
func (g *MatrixGrid) SetCell(p core.Point, r rune, st tcell.Style) error {
	if !g.size.Contains(p) {
		return outOfBounds(p, g.size)
	}
	g.cells[p.Y][p.X] = cell{r: r, style: st}
	return nil
}

// Clear resets every cell to a space in the default style.
func (g *MatrixGrid) Clear() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = blank
		}
	}
}

// Rows returns each row of the grid as a string.
func (g *MatrixGrid) Rows() []string {
	rows := make([]string, g.size.Rows)
	var sb strings.Builder
	for y, row := range g.cells {
		sb.Reset()
		for _, c := range row {
			if c.r == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(c.r)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// String returns the grid as text, one line per row.
func (g *MatrixGrid) String() string {
	return strings.Join(g.Rows(), "\n")
}
