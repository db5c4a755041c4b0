// Package graphic defines the box-drawing graphic kinds and the algebra that merges them.
//
// Every kind is described by a 9-bit mask over the 3×3 pattern of a character cell:
//
//	NW  N  NE
//	 W  C  E
//	SW  S  SE
//
// Lines, corners, tees and the cross occupy the centre plus the arms they reach.
// The four pseudo-kinds (upper/lower horizontal, left/right vertical) hug one edge of
// the cell instead and leave the centre empty. Composition ORs two masks and maps the
// result back to a kind.
package graphic

// Kind is one of the 15 box-drawing graphic kinds.
type Kind int

const (
	UpperLeftCorner Kind = iota
	LowerLeftCorner
	UpperRightCorner
	LowerRightCorner
	RightTee
	LeftTee
	LowerTee
	UpperTee
	HorizontalLine
	UpperHorizontalLine
	LowerHorizontalLine
	VerticalLine
	LeftVerticalLine
	RightVerticalLine
	Cross

	// KindCount is the number of defined kinds.
	KindCount = int(Cross) + 1
)

var kindNames = [KindCount]string{
	UpperLeftCorner:     "UpperLeftCorner",
	LowerLeftCorner:     "LowerLeftCorner",
	UpperRightCorner:    "UpperRightCorner",
	LowerRightCorner:    "LowerRightCorner",
	RightTee:            "RightTee",
	LeftTee:             "LeftTee",
	LowerTee:            "LowerTee",
	UpperTee:            "UpperTee",
	HorizontalLine:      "HorizontalLine",
	UpperHorizontalLine: "UpperHorizontalLine",
	LowerHorizontalLine: "LowerHorizontalLine",
	VerticalLine:        "VerticalLine",
	LeftVerticalLine:    "LeftVerticalLine",
	RightVerticalLine:   "RightVerticalLine",
	Cross:               "Cross",
}

// Kinds returns every kind in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, KindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < KindCount
}

// String returns the name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "Unknown"
	}
	return kindNames[k]
}

// IsPseudo reports whether k is one of the edge-hugging line variants.
func (k Kind) IsPseudo() bool {
	switch k {
	case UpperHorizontalLine, LowerHorizontalLine, LeftVerticalLine, RightVerticalLine:
		return true
	}
	return false
}

// Canonical maps the pseudo-kinds onto the plain line running the same way.
// Every other kind is returned unchanged.
func (k Kind) Canonical() Kind {
	switch k {
	case UpperHorizontalLine, LowerHorizontalLine:
		return HorizontalLine
	case LeftVerticalLine, RightVerticalLine:
		return VerticalLine
	}
	return k
}
