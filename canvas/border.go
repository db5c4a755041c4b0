package canvas

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"boxdraw/core"
	"boxdraw/graphic"
	"boxdraw/style"
)

// Border writes eight caller-chosen glyphs around the outer edge of the grid.
// Nothing is merged: each glyph, style included, replaces what was there.
// A glyph with no rune is style.ErrInvalidGlyph and nothing is written.
func (d *Drawer) Border(left, right, top, bottom, ul, ur, ll, lr style.ComplexGlyph) error {
	size := d.grid.Size()
	if size.Rows < 2 || size.Cols < 2 {
		return fmt.Errorf("%w: border needs a 2x2 grid, have %dx%d", ErrInvalidBoxGeometry, size.Cols, size.Rows)
	}
	for _, g := range []style.ComplexGlyph{left, right, top, bottom, ul, ur, ll, lr} {
		if g.Rune == 0 {
			return fmt.Errorf("%w: border glyph has no rune", style.ErrInvalidGlyph)
		}
	}

	corners := size.Bounds().Corners()
	for i, g := range []style.ComplexGlyph{ul, ur, ll, lr} {
		if err := d.put(corners[i], g); err != nil {
			return err
		}
	}

	lastCol, lastRow := size.Cols-1, size.Rows-1
	for x := 1; x < lastCol; x++ {
		if err := d.put(core.Point{X: x, Y: 0}, top); err != nil {
			return err
		}
		if err := d.put(core.Point{X: x, Y: lastRow}, bottom); err != nil {
			return err
		}
	}
	for y := 1; y < lastRow; y++ {
		if err := d.put(core.Point{X: 0, Y: y}, left); err != nil {
			return err
		}
		if err := d.put(core.Point{X: lastCol, Y: y}, right); err != nil {
			return err
		}
	}
	return nil
}

// BorderStyle draws the grid border with the plain lines and corners of st.
func (d *Drawer) BorderStyle(st style.Style, attrs tcell.AttrMask, colors style.ColorPair) error {
	if err := st.Validate(); err != nil {
		return err
	}
	g := func(k graphic.Kind) style.ComplexGlyph {
		return style.NewComplexGlyph(st, k, attrs, colors)
	}
	return d.Border(
		g(graphic.VerticalLine), g(graphic.VerticalLine),
		g(graphic.HorizontalLine), g(graphic.HorizontalLine),
		g(graphic.UpperLeftCorner), g(graphic.UpperRightCorner),
		g(graphic.LowerLeftCorner), g(graphic.LowerRightCorner),
	)
}

func (d *Drawer) put(p core.Point, g style.ComplexGlyph) error {
	if err := d.grid.SetCell(p, g.Rune, g.Style); err != nil {
		return &WriteError{At: p, Err: err}
	}
	return nil
}
