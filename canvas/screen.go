package canvas

import (
	"github.com/gdamore/tcell/v2"

	"boxdraw/core"
)

// ScreenGrid draws straight into a tcell screen's back buffer.
// Changes appear once the caller calls Show on the screen.
type ScreenGrid struct {
	screen tcell.Screen
}

// NewScreenGrid wraps an initialised tcell screen.
func NewScreenGrid(screen tcell.Screen) *ScreenGrid {
	return &ScreenGrid{screen: screen}
}

// Size returns the current screen dimensions.
func (g *ScreenGrid) Size() core.Size {
	w, h := g.screen.Size()
	return core.Size{Rows: h, Cols: w}
}

// Cell returns the primary rune and style at p. Combining runes are ignored.
func (g *ScreenGrid) Cell(p core.Point) (rune, tcell.Style, error) {
	if size := g.Size(); !size.Contains(p) {
		return 0, tcell.StyleDefault, outOfBounds(p, size)
	}
	r, _, st, _ := g.screen.GetContent(p.X, p.Y)
	return r, st, nil
}

// SetCell replaces the rune and style at p. tcell drops writes outside the screen
// silently, so the bounds are checked here.
func (g *ScreenGrid) SetCell(p core.Point, r rune, st tcell.Style) error {
	if size := g.Size(); !size.Contains(p) {
		return outOfBounds(p, size)
	}
	g.screen.SetContent(p.X, p.Y, r, nil, st)
	return nil
}
