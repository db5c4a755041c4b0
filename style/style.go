// Package style maps graphic kinds to concrete box-drawing runes for each drawing style.
package style

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle is returned when a style name cannot be parsed.
var ErrUnknownStyle = errors.New("unknown drawing style")

// Type selects the family of glyphs a Style draws with.
type Type int

const (
	TypeAscii Type = iota
	TypeLight
	TypeHeavy
	TypeDouble
	TypeCustom
)

// String returns the style name of the type.
func (t Type) String() string {
	switch t {
	case TypeAscii:
		return "ascii"
	case TypeLight:
		return "light"
	case TypeHeavy:
		return "heavy"
	case TypeDouble:
		return "double"
	case TypeCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Detail selects the dash pattern of the plain lines in light and heavy styles.
type Detail int

const (
	Normal Detail = iota
	LeftDash
	RightDash
	DoubleDash
	TripleDash
	QuadrupleDash

	detailCount = int(QuadrupleDash) + 1
)

var detailNames = [detailCount]string{
	Normal:        "normal",
	LeftDash:      "left-dash",
	RightDash:     "right-dash",
	DoubleDash:    "double-dash",
	TripleDash:    "triple-dash",
	QuadrupleDash: "quadruple-dash",
}

// Valid reports whether d is a defined detail.
func (d Detail) Valid() bool {
	return d >= 0 && int(d) < detailCount
}

func (d Detail) String() string {
	if !d.Valid() {
		return "unknown"
	}
	return detailNames[d]
}

// Style is a drawing style: Ascii, Light(detail), Heavy(detail), Double or Custom(set).
// The zero value is the ASCII style.
type Style struct {
	typ    Type
	detail Detail
	custom CustomSet
	idx    *index // custom only
	err    error  // custom only, from CustomSet.Validate
}

// Ascii returns the plain ASCII style.
func Ascii() Style { return Style{typ: TypeAscii} }

// Light returns the light line style. An undefined detail falls back to Normal.
func Light(d Detail) Style { return Style{typ: TypeLight, detail: normalize(d)} }

// Heavy returns the heavy line style. An undefined detail falls back to Normal.
func Heavy(d Detail) Style { return Style{typ: TypeHeavy, detail: normalize(d)} }

// Double returns the double line style.
func Double() Style { return Style{typ: TypeDouble} }

// Custom returns a style drawing with the caller's glyph set. The set is checked
// here; a style built from an invalid set reports it from Validate.
func Custom(set CustomSet) Style {
	return Style{
		typ:    TypeCustom,
		custom: set,
		idx:    newIndex(set.table()),
		err:    set.Validate(),
	}
}

func normalize(d Detail) Detail {
	if !d.Valid() {
		return Normal
	}
	return d
}

// Type returns the style family.
func (s Style) Type() Type { return s.typ }

// Detail returns the dash detail. It is Normal for every family but light and heavy.
func (s Style) Detail() Detail { return s.detail }

// Validate reports whether every glyph of the style occupies exactly one cell.
// Only custom styles can fail.
func (s Style) Validate() error {
	return s.err
}

// CustomSet returns the glyph set of a custom style.
func (s Style) CustomSet() (CustomSet, bool) {
	return s.custom, s.typ == TypeCustom
}

// String returns the name accepted by Parse, e.g. "light" or "heavy:triple-dash".
func (s Style) String() string {
	if (s.typ == TypeLight || s.typ == TypeHeavy) && s.detail != Normal {
		return s.typ.String() + ":" + s.detail.String()
	}
	return s.typ.String()
}

// Builtin returns every non-custom style.
func Builtin() []Style {
	styles := []Style{Ascii()}
	for d := Normal; int(d) < detailCount; d++ {
		styles = append(styles, Light(d))
	}
	for d := Normal; int(d) < detailCount; d++ {
		styles = append(styles, Heavy(d))
	}
	return append(styles, Double())
}

// Parse returns the built-in style with the given name. Names are case-insensitive
// and take the form "ascii", "double", "light", "heavy" or "light:<detail>".
// Custom styles cannot be named; build them with Custom.
func Parse(name string) (Style, error) {
	family, detailName, hasDetail := strings.Cut(strings.ToLower(strings.TrimSpace(name)), ":")

	detail := Normal
	if hasDetail {
		found := false
		for d, n := range detailNames {
			if n == detailName {
				detail, found = Detail(d), true
				break
			}
		}
		if !found {
			return Style{}, fmt.Errorf("%w: %q has unknown detail %q", ErrUnknownStyle, name, detailName)
		}
	}

	switch family {
	case "light":
		return Light(detail), nil
	case "heavy":
		return Heavy(detail), nil
	}
	if hasDetail && detail != Normal {
		return Style{}, fmt.Errorf("%w: %q takes no detail", ErrUnknownStyle, family)
	}
	switch family {
	case "ascii":
		return Ascii(), nil
	case "double":
		return Double(), nil
	}
	return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}
