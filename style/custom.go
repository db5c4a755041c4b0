package style

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"

	"boxdraw/graphic"
)

// ErrInvalidGlyph is returned when a custom glyph cannot occupy exactly one cell.
var ErrInvalidGlyph = errors.New("invalid custom glyph")

// narrow measures runes as a terminal outside an East Asian locale would.
var narrow = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// CustomSet defines the runes used to draw each graphic kind in a custom style.
type CustomSet struct {
	UpperLeftCorner  rune
	LowerLeftCorner  rune
	UpperRightCorner rune
	LowerRightCorner rune

	RightTee rune
	LeftTee  rune
	LowerTee rune
	UpperTee rune

	HorizontalLine      rune
	UpperHorizontalLine rune
	LowerHorizontalLine rune

	VerticalLine      rune
	LeftVerticalLine  rune
	RightVerticalLine rune

	Cross rune
}

// SetOf returns the glyphs of s as a CustomSet, a starting point for variations.
func SetOf(s Style) CustomSet {
	var set CustomSet
	for _, k := range graphic.Kinds() {
		*set.field(k) = Glyph(s, k)
	}
	return set
}

// Rounded returns the light style with arc corners.
func Rounded() CustomSet {
	set := SetOf(Light(Normal))
	set.UpperLeftCorner = '╭'
	set.UpperRightCorner = '╮'
	set.LowerLeftCorner = '╰'
	set.LowerRightCorner = '╯'
	return set
}

// Glyph returns the rune for kind k, or 0 for an undefined kind.
func (c CustomSet) Glyph(k graphic.Kind) rune {
	if !k.Valid() {
		return 0
	}
	return *c.field(k)
}

// With returns a copy of the set with kind k drawn as r.
func (c CustomSet) With(k graphic.Kind, r rune) CustomSet {
	if k.Valid() {
		*c.field(k) = r
	}
	return c
}

// Validate checks that every kind has a rune that fills exactly one terminal cell.
func (c CustomSet) Validate() error {
	var errs []error
	for _, k := range graphic.Kinds() {
		r := c.Glyph(k)
		if r == 0 {
			errs = append(errs, fmt.Errorf("%w: %v is not set", ErrInvalidGlyph, k))
			continue
		}
		if w := narrow.RuneWidth(r); w != 1 {
			errs = append(errs, fmt.Errorf("%w: %v %q is %d cells wide", ErrInvalidGlyph, k, r, w))
		}
	}
	return errors.Join(errs...)
}

func (c CustomSet) table() table {
	var t table
	for i := range t {
		t[i] = c.Glyph(graphic.Kind(i))
	}
	return t
}

func (c *CustomSet) field(k graphic.Kind) *rune {
	switch k {
	case graphic.UpperLeftCorner:
		return &c.UpperLeftCorner
	case graphic.LowerLeftCorner:
		return &c.LowerLeftCorner
	case graphic.UpperRightCorner:
		return &c.UpperRightCorner
	case graphic.LowerRightCorner:
		return &c.LowerRightCorner
	case graphic.RightTee:
		return &c.RightTee
	case graphic.LeftTee:
		return &c.LeftTee
	case graphic.LowerTee:
		return &c.LowerTee
	case graphic.UpperTee:
		return &c.UpperTee
	case graphic.HorizontalLine:
		return &c.HorizontalLine
	case graphic.UpperHorizontalLine:
		return &c.UpperHorizontalLine
	case graphic.LowerHorizontalLine:
		return &c.LowerHorizontalLine
	case graphic.VerticalLine:
		return &c.VerticalLine
	case graphic.LeftVerticalLine:
		return &c.LeftVerticalLine
	case graphic.RightVerticalLine:
		return &c.RightVerticalLine
	default:
		return &c.Cross
	}
}
