// Package core contains the fundamental geometry types shared by the boxdraw packages.
package core

// Point represents a cell coordinate on a grid.
// X is the column and Y is the row; the origin (0,0) is the top-left cell.
type Point struct {
	X, Y int
}

// Add returns p translated by dx columns and dy rows.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Size is the extent of a grid or a box in cells.
type Size struct {
	Rows, Cols int
}

// Contains checks if a point lies on a grid of this size.
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.Cols && p.Y >= 0 && p.Y < s.Rows
}

// Bounds returns the rectangle covering a grid of this size.
func (s Size) Bounds() Bounds {
	return Bounds{Max: Point{X: s.Cols, Y: s.Rows}}
}

// Bounds represents a rectangular area. Max is exclusive.
type Bounds struct {
	Min, Max Point
}

// BoundsAt returns the rectangle of the given size anchored at origin.
func BoundsAt(origin Point, size Size) Bounds {
	return Bounds{Min: origin, Max: origin.Add(size.Cols, size.Rows)}
}

// Width returns the width of the bounds.
func (b Bounds) Width() int {
	return b.Max.X - b.Min.X
}

// Height returns the height of the bounds.
func (b Bounds) Height() int {
	return b.Max.Y - b.Min.Y
}

// Empty reports whether the bounds cover no cells.
func (b Bounds) Empty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// In reports whether b lies entirely within outer.
func (b Bounds) In(outer Bounds) bool {
	return b.Min.X >= outer.Min.X && b.Min.Y >= outer.Min.Y &&
		b.Max.X <= outer.Max.X && b.Max.Y <= outer.Max.Y
}

// Corners returns the four corner cells in the order
// upper-left, upper-right, lower-left, lower-right.
func (b Bounds) Corners() [4]Point {
	right, bottom := b.Max.X-1, b.Max.Y-1
	return [4]Point{
		{X: b.Min.X, Y: b.Min.Y},
		{X: right, Y: b.Min.Y},
		{X: b.Min.X, Y: bottom},
		{X: right, Y: bottom},
	}
}
