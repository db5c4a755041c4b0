// Package canvas draws box-drawing lines, boxes and borders onto character-cell grids.
package canvas

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"boxdraw/core"
)

// Common errors
var (
	ErrOutOfBounds        = errors.New("position out of bounds")
	ErrInvalidBoxGeometry = errors.New("invalid box geometry")
)

// Grid is a rectangular array of cells, each holding a rune and a tcell style.
//
// Drawing reads a cell, merges its glyph and writes it back. Those steps are not atomic:
// a Grid shared between goroutines must serialise drawing calls itself.
type Grid interface {
	// Cell returns the rune and style at p, or ErrOutOfBounds.
	Cell(p core.Point) (rune, tcell.Style, error)
	// SetCell replaces the rune and style at p.
	SetCell(p core.Point, r rune, st tcell.Style) error
	// Size returns the grid dimensions.
	Size() core.Size
}

// WriteError reports a grid write that failed while drawing.
type WriteError struct {
	At  core.Point
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write cell (%d,%d): %v", e.At.X, e.At.Y, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func outOfBounds(p core.Point, size core.Size) error {
	return fmt.Errorf("%w: (%d,%d) on a %dx%d grid", ErrOutOfBounds, p.X, p.Y, size.Cols, size.Rows)
}
