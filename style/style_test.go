package style

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"boxdraw/graphic"
)

func TestParseRoundTripsBuiltinNames(t *testing.T) {
	for _, s := range Builtin() {
		t.Run(s.String(), func(t *testing.T) {
			got, err := Parse(s.String())
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", s.String(), err)
			}
			if got != s {
				t.Errorf("Parse(%q) = %v", s.String(), got)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    Style
		wantErr bool
	}{
		{"light", Light(Normal), false},
		{" Heavy:Triple-Dash ", Heavy(TripleDash), false},
		{"light:normal", Light(Normal), false},
		{"double", Double(), false},
		{"ascii:normal", Ascii(), false},
		{"double:left-dash", Style{}, true},
		{"light:dotted", Style{}, true},
		{"custom", Style{}, true},
		{"", Style{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownStyle) {
					t.Errorf("Parse(%q) error = %v, want ErrUnknownStyle", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestBuiltinCount(t *testing.T) {
	// ascii + 6 light + 6 heavy + double
	if got := len(Builtin()); got != 14 {
		t.Errorf("len(Builtin()) = %d, want 14", got)
	}
}

func TestUndefinedDetailFallsBack(t *testing.T) {
	if got := Light(Detail(42)); got != Light(Normal) {
		t.Errorf("Light(42) = %v, want light", got)
	}
}

func TestCustomSet(t *testing.T) {
	set := Rounded()
	if err := set.Validate(); err != nil {
		t.Fatalf("Rounded().Validate() = %v", err)
	}

	s := Custom(set)
	if got, ok := s.CustomSet(); !ok || got != set {
		t.Errorf("CustomSet() = %+v, %v", got, ok)
	}
	if Glyph(s, graphic.UpperLeftCorner) != '╭' {
		t.Errorf("rounded corner missing")
	}
	if Glyph(s, graphic.HorizontalLine) != '─' {
		t.Errorf("rounded set should keep light lines")
	}
	if s.String() != "custom" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestSetOfMatchesStyle(t *testing.T) {
	set := SetOf(Double())
	want := make([]rune, 0, graphic.KindCount)
	got := make([]rune, 0, graphic.KindCount)
	for _, k := range graphic.Kinds() {
		want = append(want, Glyph(Double(), k))
		got = append(got, set.Glyph(k))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SetOf(double) mismatch (-want +got):\n%s", diff)
	}
}

func TestCustomSetValidate(t *testing.T) {
	tests := []struct {
		name string
		set  CustomSet
	}{
		{"Missing glyph", SetOf(Light(Normal)).With(graphic.Cross, 0)},
		{"Wide glyph", SetOf(Light(Normal)).With(graphic.Cross, '十')},
		{"Zero width glyph", SetOf(Light(Normal)).With(graphic.Cross, '\u0301')},
		{"Empty set", CustomSet{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.set.Validate(); !errors.Is(err, ErrInvalidGlyph) {
				t.Errorf("Validate() = %v, want ErrInvalidGlyph", err)
			}
		})
	}
}

// A custom set may reuse runes; classification then favours the most connected kind.
func TestCustomSetSharedRunes(t *testing.T) {
	set := SetOf(Light(Normal)).
		With(graphic.UpperHorizontalLine, '─').
		With(graphic.LowerHorizontalLine, '─')

	if k, ok := Classify(Custom(set), '─'); !ok || k != graphic.HorizontalLine {
		t.Errorf("Classify('─') = %v, %v; want HorizontalLine", k, ok)
	}
}

func TestStyleValidate(t *testing.T) {
	for _, s := range append(Builtin(), Custom(Rounded())) {
		if err := s.Validate(); err != nil {
			t.Errorf("%v.Validate() = %v", s, err)
		}
	}

	s := Custom(SetOf(Light(Normal)).With(graphic.Cross, 0))
	if err := s.Validate(); !errors.Is(err, ErrInvalidGlyph) {
		t.Errorf("Validate() = %v, want ErrInvalidGlyph", err)
	}
}

// The reverse lookup of a custom style is built once, not per classified cell.
func TestCustomClassifyReusesIndex(t *testing.T) {
	s := Custom(Rounded())
	if indexFor(s) != indexFor(s) {
		t.Error("indexFor rebuilt the custom index")
	}

	allocs := testing.AllocsPerRun(100, func() {
		Classify(s, '╭')
	})
	if allocs != 0 {
		t.Errorf("Classify allocated %v times per call", allocs)
	}
}
