package canvas

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"boxdraw/core"
)

var errInjected = errors.New("injected write failure")

// recordingGrid wraps a Grid, counting writes and optionally failing one of them.
type recordingGrid struct {
	Grid
	writes []core.Point
	// failAt fails the write with this 1-based index; 0 never fails.
	failAt int
}

func newRecordingGrid(cols, rows int) *recordingGrid {
	return &recordingGrid{Grid: NewMatrixGrid(cols, rows)}
}

func (g *recordingGrid) SetCell(p core.Point, r rune, st tcell.Style) error {
	if g.failAt > 0 && len(g.writes)+1 == g.failAt {
		return errInjected
	}
	if err := g.Grid.SetCell(p, r, st); err != nil {
		return err
	}
	g.writes = append(g.writes, p)
	return nil
}

func (g *recordingGrid) reset() {
	g.writes = nil
}

func (g *recordingGrid) rows() []string {
	return g.Grid.(*MatrixGrid).Rows()
}

// runeAt reads a rune, ignoring errors; tests only ask for cells on the grid.
func runeAt(g Grid, x, y int) rune {
	r, _, _ := g.Cell(core.Point{X: x, Y: y})
	return r
}
