package style

import "boxdraw/graphic"

// table holds one rune per graphic kind, in catalog order.
type table [graphic.KindCount]rune

// index pairs a table with its reverse lookup.
type index struct {
	glyphs table
	kinds  map[rune]graphic.Kind
}

var asciiTable = table{
	graphic.UpperLeftCorner:     '+',
	graphic.LowerLeftCorner:     '+',
	graphic.UpperRightCorner:    '+',
	graphic.LowerRightCorner:    '+',
	graphic.RightTee:            '+',
	graphic.LeftTee:             '+',
	graphic.LowerTee:            '+',
	graphic.UpperTee:            '+',
	graphic.HorizontalLine:      '-',
	graphic.UpperHorizontalLine: '-',
	graphic.LowerHorizontalLine: '-',
	graphic.VerticalLine:        '|',
	graphic.LeftVerticalLine:    '|',
	graphic.RightVerticalLine:   '|',
	graphic.Cross:               '+',
}

var lightTable = table{
	graphic.UpperLeftCorner:     '┌',
	graphic.LowerLeftCorner:     '└',
	graphic.UpperRightCorner:    '┐',
	graphic.LowerRightCorner:    '┘',
	graphic.RightTee:            '┤',
	graphic.LeftTee:             '├',
	graphic.LowerTee:            '┴',
	graphic.UpperTee:            '┬',
	graphic.HorizontalLine:      '─',
	graphic.UpperHorizontalLine: '▔',
	graphic.LowerHorizontalLine: '▁',
	graphic.VerticalLine:        '│',
	graphic.LeftVerticalLine:    '▏',
	graphic.RightVerticalLine:   '▕',
	graphic.Cross:               '┼',
}

var heavyTable = table{
	graphic.UpperLeftCorner:     '┏',
	graphic.LowerLeftCorner:     '┗',
	graphic.UpperRightCorner:    '┓',
	graphic.LowerRightCorner:    '┛',
	graphic.RightTee:            '┫',
	graphic.LeftTee:             '┣',
	graphic.LowerTee:            '┻',
	graphic.UpperTee:            '┳',
	graphic.HorizontalLine:      '━',
	graphic.UpperHorizontalLine: '▀',
	graphic.LowerHorizontalLine: '▄',
	graphic.VerticalLine:        '┃',
	graphic.LeftVerticalLine:    '▌',
	graphic.RightVerticalLine:   '▐',
	graphic.Cross:               '╋',
}

var doubleTable = table{
	graphic.UpperLeftCorner:     '╔',
	graphic.LowerLeftCorner:     '╚',
	graphic.UpperRightCorner:    '╗',
	graphic.LowerRightCorner:    '╝',
	graphic.RightTee:            '╣',
	graphic.LeftTee:             '╠',
	graphic.LowerTee:            '╩',
	graphic.UpperTee:            '╦',
	graphic.HorizontalLine:      '═',
	graphic.UpperHorizontalLine: '▔',
	graphic.LowerHorizontalLine: '▁',
	graphic.VerticalLine:        '║',
	graphic.LeftVerticalLine:    '▏',
	graphic.RightVerticalLine:   '▕',
	graphic.Cross:               '╬',
}

// dashes holds the horizontal and vertical line runes of each non-normal detail.
type dashes [detailCount][2]rune

var lightDashes = dashes{
	LeftDash:      {'╴', '╵'},
	RightDash:     {'╶', '╷'},
	DoubleDash:    {'╌', '╎'},
	TripleDash:    {'┄', '┆'},
	QuadrupleDash: {'┈', '┊'},
}

var heavyDashes = dashes{
	LeftDash:      {'╸', '╹'},
	RightDash:     {'╺', '╻'},
	DoubleDash:    {'╍', '╏'},
	TripleDash:    {'┅', '┇'},
	QuadrupleDash: {'┉', '┋'},
}

var (
	asciiIndex   = newIndex(asciiTable)
	doubleIndex  = newIndex(doubleTable)
	lightIndexes = detailIndexes(lightTable, lightDashes)
	heavyIndexes = detailIndexes(heavyTable, heavyDashes)
)

func detailIndexes(base table, d dashes) [detailCount]*index {
	var out [detailCount]*index
	for detail := range out {
		t := base
		if Detail(detail) != Normal {
			t[graphic.HorizontalLine] = d[detail][0]
			t[graphic.VerticalLine] = d[detail][1]
		}
		out[detail] = newIndex(t)
	}
	return out
}

// newIndex builds the reverse lookup. When several kinds share a rune the one
// with the most occupied mask positions wins, ties going to catalog order.
func newIndex(t table) *index {
	idx := &index{glyphs: t, kinds: make(map[rune]graphic.Kind, len(t))}
	for i, r := range t {
		k := graphic.Kind(i)
		if prev, ok := idx.kinds[r]; ok && prev.Mask().Count() >= k.Mask().Count() {
			continue
		}
		idx.kinds[r] = k
	}
	return idx
}

func indexFor(s Style) *index {
	switch s.typ {
	case TypeLight:
		return lightIndexes[s.detail]
	case TypeHeavy:
		return heavyIndexes[s.detail]
	case TypeDouble:
		return doubleIndex
	case TypeCustom:
		if s.idx == nil {
			return newIndex(s.custom.table())
		}
		return s.idx
	default:
		return asciiIndex
	}
}

// Glyph returns the rune that draws kind k in style s, or 0 for an undefined kind.
func Glyph(s Style, k graphic.Kind) rune {
	if !k.Valid() {
		return 0
	}
	if s.typ == TypeCustom {
		return s.custom.Glyph(k)
	}
	return indexFor(s).glyphs[k]
}

// Classify returns the kind that r draws in style s. It reports false when r is
// not one of the style's glyphs, such as text already sitting in a cell.
func Classify(s Style, r rune) (graphic.Kind, bool) {
	if r == 0 {
		return 0, false
	}
	k, ok := indexFor(s).kinds[r]
	return k, ok
}
