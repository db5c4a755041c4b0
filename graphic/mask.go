package graphic

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrInvalidMask is returned for a bit pattern that no kind occupies.
var ErrInvalidMask = errors.New("invalid graphic mask")

// Mask is the 3×3 occupancy pattern of a kind. The high bit is the north-west
// cell and the low bit the south-east cell, so a binary literal reads row by row.
type Mask uint16

const (
	MaskNW Mask = 1 << 8
	MaskN  Mask = 1 << 7
	MaskNE Mask = 1 << 6
	MaskW  Mask = 1 << 5
	MaskC  Mask = 1 << 4
	MaskE  Mask = 1 << 3
	MaskSW Mask = 1 << 2
	MaskS  Mask = 1 << 1
	MaskSE Mask = 1 << 0

	// maskBits covers every valid position.
	maskBits Mask = 1<<9 - 1
)

// kindMasks is the catalog. Each literal is laid out as NW N NE _ W C E _ SW S SE.
var kindMasks = [KindCount]Mask{
	UpperLeftCorner:     0b000_011_010,
	LowerLeftCorner:     0b010_011_000,
	UpperRightCorner:    0b000_110_010,
	LowerRightCorner:    0b010_110_000,
	RightTee:            0b010_110_010,
	LeftTee:             0b010_011_010,
	LowerTee:            0b010_111_000,
	UpperTee:            0b000_111_010,
	HorizontalLine:      0b000_111_000,
	UpperHorizontalLine: 0b111_000_000,
	LowerHorizontalLine: 0b000_000_111,
	VerticalLine:        0b010_010_010,
	LeftVerticalLine:    0b100_100_100,
	RightVerticalLine:   0b001_001_001,
	Cross:               0b010_111_010,
}

// kindByMask maps every 9-bit pattern to its kind, or -1 when undefined.
var kindByMask = buildKindIndex()

func buildKindIndex() [maskBits + 1]Kind {
	var index [maskBits + 1]Kind
	for i := range index {
		index[i] = -1
	}
	for k, m := range kindMasks {
		if index[m] != -1 {
			panic(fmt.Sprintf("graphic: %v and %v share mask %09b", index[m], Kind(k), m))
		}
		index[m] = Kind(k)
	}
	return index
}

// Mask returns the occupancy pattern of k, or 0 for an undefined kind.
func (k Kind) Mask() Mask {
	if !k.Valid() {
		return 0
	}
	return kindMasks[k]
}

// FromMask returns the kind occupying exactly m.
func FromMask(m Mask) (Kind, error) {
	if m&^maskBits != 0 {
		return 0, fmt.Errorf("%w: %#x has bits outside the cell", ErrInvalidMask, uint16(m))
	}
	k := kindByMask[m]
	if k < 0 {
		return 0, fmt.Errorf("%w: %09b", ErrInvalidMask, uint16(m))
	}
	return k, nil
}

// Has reports whether every bit of other is set in m.
func (m Mask) Has(other Mask) bool {
	return other != 0 && m&other == other
}

// Count returns the number of occupied positions.
func (m Mask) Count() int {
	return bits.OnesCount16(uint16(m))
}
