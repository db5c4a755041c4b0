package graphic

import "boxdraw/core"

// Axis is the orientation of the primitive being drawn.
type Axis int

const (
	// AxisNone marks a single stamped junction such as a box corner.
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

// String returns the string representation of an Axis.
func (a Axis) String() string {
	switch a {
	case AxisNone:
		return "None"
	case AxisHorizontal:
		return "Horizontal"
	case AxisVertical:
		return "Vertical"
	default:
		return "Unknown"
	}
}

// ResolveForPosition overrides a composed kind by position.
//
// Line segments (a horizontal or vertical axis) never turn into corners mid-segment,
// so k passes through. For AxisNone, a point on one of the four corner cells of bounds
// always resolves to that corner, whatever was composed there.
func ResolveForPosition(k Kind, at core.Point, bounds core.Bounds, axis Axis) Kind {
	if axis != AxisNone || bounds.Empty() {
		return k
	}
	corners := bounds.Corners()
	switch at {
	case corners[0]:
		return UpperLeftCorner
	case corners[1]:
		return UpperRightCorner
	case corners[2]:
		return LowerLeftCorner
	case corners[3]:
		return LowerRightCorner
	}
	return k
}
