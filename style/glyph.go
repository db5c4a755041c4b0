package style

import (
	"github.com/gdamore/tcell/v2"

	"boxdraw/graphic"
)

// acsTable is the fixed legacy table, drawn with the runes tcell maps onto the
// terminal's alternate character set. The side lines have no ACS form.
var acsTable = table{
	graphic.UpperLeftCorner:     tcell.RuneULCorner,
	graphic.LowerLeftCorner:     tcell.RuneLLCorner,
	graphic.UpperRightCorner:    tcell.RuneURCorner,
	graphic.LowerRightCorner:    tcell.RuneLRCorner,
	graphic.RightTee:            tcell.RuneRTee,
	graphic.LeftTee:             tcell.RuneLTee,
	graphic.LowerTee:            tcell.RuneBTee,
	graphic.UpperTee:            tcell.RuneTTee,
	graphic.HorizontalLine:      tcell.RuneHLine,
	graphic.UpperHorizontalLine: tcell.RuneS1,
	graphic.LowerHorizontalLine: tcell.RuneS9,
	graphic.VerticalLine:        tcell.RuneVLine,
	graphic.LeftVerticalLine:    tcell.RuneVLine,
	graphic.RightVerticalLine:   tcell.RuneVLine,
	graphic.Cross:               tcell.RunePlus,
}

// ChtypeGlyph returns the legacy ACS rune for kind k, with no attributes attached.
func ChtypeGlyph(k graphic.Kind) rune {
	if !k.Valid() {
		return 0
	}
	return acsTable[k]
}

// ColorPair is a foreground and background colour applied together.
type ColorPair struct {
	Fg, Bg tcell.Color
}

// DefaultColors leaves both colours to the terminal.
var DefaultColors = ColorPair{Fg: tcell.ColorDefault, Bg: tcell.ColorDefault}

// ComplexGlyph is a rune together with the cell style it is drawn in.
type ComplexGlyph struct {
	Rune  rune
	Style tcell.Style
}

// NewComplexGlyph looks up kind k in style s and attaches attrs and colors.
func NewComplexGlyph(s Style, k graphic.Kind, attrs tcell.AttrMask, colors ColorPair) ComplexGlyph {
	return ComplexGlyph{
		Rune:  Glyph(s, k),
		Style: CellStyle(attrs, colors),
	}
}

// CellStyle builds the tcell style for the given attributes and colour pair.
func CellStyle(attrs tcell.AttrMask, colors ColorPair) tcell.Style {
	return tcell.StyleDefault.
		Foreground(colors.Fg).
		Background(colors.Bg).
		Attributes(attrs)
}
