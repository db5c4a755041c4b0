package canvas

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"boxdraw/core"
	"boxdraw/graphic"
	"boxdraw/style"
)

// HVariant selects where a horizontal line sits within its cells.
type HVariant int

const (
	HCenter HVariant = iota
	HUpper
	HLower
)

// Kind returns the graphic kind drawn by the variant.
func (v HVariant) Kind() graphic.Kind {
	switch v {
	case HUpper:
		return graphic.UpperHorizontalLine
	case HLower:
		return graphic.LowerHorizontalLine
	default:
		return graphic.HorizontalLine
	}
}

// VVariant selects where a vertical line sits within its cells.
type VVariant int

const (
	VCenter VVariant = iota
	VLeft
	VRight
)

// Kind returns the graphic kind drawn by the variant.
func (v VVariant) Kind() graphic.Kind {
	switch v {
	case VLeft:
		return graphic.LeftVerticalLine
	case VRight:
		return graphic.RightVerticalLine
	default:
		return graphic.VerticalLine
	}
}

// Drawer draws lines and boxes onto a Grid, merging them with the box-drawing
// glyphs already there. It keeps no state between calls.
type Drawer struct {
	grid Grid
	log  logrus.FieldLogger
}

// Option configures a Drawer.
type Option func(*Drawer)

// WithLogger sets the logger that receives composition and write diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(d *Drawer) {
		d.log = log
	}
}

// NewDrawer creates a Drawer for grid. Without WithLogger, diagnostics are discarded.
func NewDrawer(grid Grid, opts ...Option) *Drawer {
	d := &Drawer{grid: grid}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		d.log = l
	}
	return d
}

// Grid returns the grid the Drawer draws on.
func (d *Drawer) Grid() Grid {
	return d.grid
}

// HLine draws a horizontal line of length cells rightward from start.
//
// A start outside the grid or a negative length is ErrOutOfBounds, and a custom style
// with a missing or unprintable glyph is style.ErrInvalidGlyph; neither writes anything.
// A line running past the right edge is clipped there without error.
func (d *Drawer) HLine(st style.Style, v HVariant, start core.Point, length int) error {
	size := d.grid.Size()
	if err := checkLine(st, size, start, length); err != nil {
		return err
	}

	bounds := size.Bounds()
	n := min(length, size.Cols-start.X)
	for i := 0; i < n; i++ {
		if err := d.stamp(st, start.Add(i, 0), v.Kind(), true, bounds, graphic.AxisHorizontal); err != nil {
			return err
		}
	}
	return nil
}

// VLine draws a vertical line of length cells downward from start.
// It follows the same rules as HLine, clipping at the bottom edge.
func (d *Drawer) VLine(st style.Style, v VVariant, start core.Point, length int) error {
	size := d.grid.Size()
	if err := checkLine(st, size, start, length); err != nil {
		return err
	}

	bounds := size.Bounds()
	n := min(length, size.Rows-start.Y)
	for i := 0; i < n; i++ {
		if err := d.stamp(st, start.Add(0, i), v.Kind(), true, bounds, graphic.AxisVertical); err != nil {
			return err
		}
	}
	return nil
}

// Box draws a rectangle of the given size with its upper-left corner at origin.
//
// The box must be at least 2x2 and fit on the grid, otherwise ErrInvalidBoxGeometry is
// returned before anything is written. The style is checked the same way as for HLine. Corners always render as corners. Edges hug the
// outside of their cells. A failure part-way leaves the cells already drawn in place.
func (d *Drawer) Box(st style.Style, origin core.Point, size core.Size) error {
	if err := st.Validate(); err != nil {
		return err
	}
	grid := d.grid.Size()
	if size.Rows < 2 || size.Cols < 2 {
		return fmt.Errorf("%w: %dx%d is smaller than 2x2", ErrInvalidBoxGeometry, size.Cols, size.Rows)
	}
	// Compare against the room left; origin+size can overflow.
	if !grid.Contains(origin) || size.Cols > grid.Cols-origin.X || size.Rows > grid.Rows-origin.Y {
		return fmt.Errorf("%w: %dx%d at (%d,%d) does not fit a %dx%d grid",
			ErrInvalidBoxGeometry, size.Cols, size.Rows, origin.X, origin.Y, grid.Cols, grid.Rows)
	}

	box := core.BoundsAt(origin, size)
	corners := box.Corners()
	cornerKinds := [4]graphic.Kind{
		graphic.UpperLeftCorner,
		graphic.UpperRightCorner,
		graphic.LowerLeftCorner,
		graphic.LowerRightCorner,
	}
	for i, p := range corners {
		if err := d.stamp(st, p, cornerKinds[i], false, box, graphic.AxisNone); err != nil {
			return err
		}
	}

	if size.Cols > 2 {
		if err := d.HLine(st, HUpper, origin.Add(1, 0), size.Cols-2); err != nil {
			return err
		}
		if err := d.HLine(st, HLower, origin.Add(1, size.Rows-1), size.Cols-2); err != nil {
			return err
		}
	}
	if size.Rows > 2 {
		if err := d.VLine(st, VLeft, origin.Add(0, 1), size.Rows-2); err != nil {
			return err
		}
		if err := d.VLine(st, VRight, origin.Add(size.Cols-1, 1), size.Rows-2); err != nil {
			return err
		}
	}
	return nil
}

// stamp merges incoming into the cell at p and writes the result back in the
// cell's existing style. Cells that would not change are not written.
func (d *Drawer) stamp(st style.Style, p core.Point, incoming graphic.Kind, remap bool, bounds core.Bounds, axis graphic.Axis) error {
	current, cellStyle, err := d.grid.Cell(p)
	if err != nil {
		return err
	}

	target := incoming
	if existing, ok := style.Classify(st, current); ok {
		target, err = graphic.Combine(existing, incoming, remap)
		if err != nil {
			d.log.WithFields(logrus.Fields{
				"x":        p.X,
				"y":        p.Y,
				"existing": existing,
				"incoming": incoming,
			}).WithError(err).Debug("No junction defined, drawing incoming glyph.")
			target = incoming
		}
	}
	target = graphic.ResolveForPosition(target, p, bounds, axis)

	glyph := style.Glyph(st, target)
	if glyph == 0 {
		return fmt.Errorf("%w: style %v has no glyph for %v", style.ErrInvalidGlyph, st, target)
	}
	if glyph == current {
		return nil
	}
	if err := d.grid.SetCell(p, glyph, cellStyle); err != nil {
		d.log.WithFields(logrus.Fields{"x": p.X, "y": p.Y}).WithError(err).Warn("Failed to write cell.")
		return &WriteError{At: p, Err: err}
	}
	return nil
}

func checkLine(st style.Style, size core.Size, start core.Point, length int) error {
	if err := st.Validate(); err != nil {
		return err
	}
	if !size.Contains(start) {
		return fmt.Errorf("line start: %w", outOfBounds(start, size))
	}
	if length < 0 {
		return fmt.Errorf("%w: negative line length %d", ErrOutOfBounds, length)
	}
	return nil
}
