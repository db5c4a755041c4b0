package canvas

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"boxdraw/core"
)

// TestMatrixGrid_Creation tests grid creation and initialization.
func TestMatrixGrid_Creation(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"Small", 10, 5},
		{"Square", 20, 20},
		{"Wide", 100, 10},
		{"Tall", 10, 100},
		{"Large", 200, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := NewMatrixGrid(tt.width, tt.height)

			size := grid.Size()
			if size.Cols != tt.width || size.Rows != tt.height {
				t.Errorf("Size() = %dx%d, want %dx%d", size.Cols, size.Rows, tt.width, tt.height)
			}

			rows := grid.Rows()
			if len(rows) != tt.height {
				t.Fatalf("Rows() height = %d, want %d", len(rows), tt.height)
			}
			blank := strings.Repeat(" ", tt.width)
			for y, row := range rows {
				if row != blank {
					t.Errorf("Row %d = %q, want all spaces", y, row)
				}
			}
		})
	}
}

func TestMatrixGrid_InvalidSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		if g := NewMatrixGrid(dims[0], dims[1]); g != nil {
			t.Errorf("NewMatrixGrid(%d, %d) = %v, want nil", dims[0], dims[1], g)
		}
	}
}

// TestMatrixGrid_GetSet tests basic get/set operations.
func TestMatrixGrid_GetSet(t *testing.T) {
	grid := NewMatrixGrid(20, 10)
	bold := tcell.StyleDefault.Bold(true)

	tests := []struct {
		name  string
		point core.Point
		char  rune
		valid bool
	}{
		{"Origin", core.Point{X: 0, Y: 0}, '╭', true},
		{"Center", core.Point{X: 10, Y: 5}, '┼', true},
		{"Bottom right", core.Point{X: 19, Y: 9}, '╯', true},
		{"Out of bounds X", core.Point{X: 20, Y: 5}, 'X', false},
		{"Out of bounds Y", core.Point{X: 10, Y: 10}, 'Y', false},
		{"Negative X", core.Point{X: -1, Y: 5}, 'N', false},
		{"Negative Y", core.Point{X: 5, Y: -1}, 'N', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := grid.SetCell(tt.point, tt.char, bold)
			if tt.valid {
				if err != nil {
					t.Fatalf("SetCell(%v) unexpected error: %v", tt.point, err)
				}
				r, st, err := grid.Cell(tt.point)
				if err != nil {
					t.Fatalf("Cell(%v) unexpected error: %v", tt.point, err)
				}
				if r != tt.char {
					t.Errorf("Cell(%v) = %c, want %c", tt.point, r, tt.char)
				}
				if st != bold {
					t.Errorf("Cell(%v) style = %v, want bold", tt.point, st)
				}
				return
			}

			if !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("SetCell(%v) error = %v, want ErrOutOfBounds", tt.point, err)
			}
			if _, _, err := grid.Cell(tt.point); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("Cell(%v) error = %v, want ErrOutOfBounds", tt.point, err)
			}
		})
	}
}

// TestMatrixGrid_Clear tests the clear operation.
func TestMatrixGrid_Clear(t *testing.T) {
	grid := NewMatrixGrid(10, 10)

	for _, p := range []core.Point{{X: 5, Y: 5}, {X: 0, Y: 0}, {X: 9, Y: 9}, {X: 3, Y: 7}} {
		if err := grid.SetCell(p, 'X', tcell.StyleDefault.Reverse(true)); err != nil {
			t.Fatal(err)
		}
	}

	grid.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			r, st, _ := grid.Cell(core.Point{X: x, Y: y})
			if r != ' ' || st != tcell.StyleDefault {
				t.Errorf("After clear, cell (%d,%d) = %c %v, want blank", x, y, r, st)
			}
		}
	}
}

// TestMatrixGrid_String tests string serialization.
func TestMatrixGrid_String(t *testing.T) {
	grid := NewMatrixGrid(5, 3)

	cells := map[core.Point]rune{
		{X: 0, Y: 0}: '╭', {X: 1, Y: 0}: '─', {X: 2, Y: 0}: '─', {X: 3, Y: 0}: '─', {X: 4, Y: 0}: '╮',
		{X: 0, Y: 1}: '│', {X: 2, Y: 1}: 'X', {X: 4, Y: 1}: '│',
		{X: 0, Y: 2}: '╰', {X: 1, Y: 2}: '─', {X: 2, Y: 2}: '─', {X: 3, Y: 2}: '─', {X: 4, Y: 2}: '╯',
	}
	for p, r := range cells {
		if err := grid.SetCell(p, r, tcell.StyleDefault); err != nil {
			t.Fatal(err)
		}
	}

	expected := "╭───╮\n│ X │\n╰───╯"
	if got := grid.String(); got != expected {
		t.Errorf("String() =\n%s\nwant\n%s", got, expected)
	}
}

// A zero rune written by a caller still prints as a blank column.
func TestMatrixGrid_StringZeroRune(t *testing.T) {
	grid := NewMatrixGrid(3, 1)
	if err := grid.SetCell(core.Point{X: 1}, 0, tcell.StyleDefault); err != nil {
		t.Fatal(err)
	}
	if got := grid.String(); got != "   " {
		t.Errorf("String() = %q, want three spaces", got)
	}
}

// TestMatrixGrid_Performance checks that a dense redraw stays fast.
func TestMatrixGrid_Performance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping performance test in short mode")
	}

	grid := NewMatrixGrid(200, 100)
	d := NewDrawer(grid)

	start := time.Now()
	for y := 0; y < 100; y += 4 {
		if err := d.HLine(light, HCenter, core.Point{X: 0, Y: y}, 200); err != nil {
			t.Fatal(err)
		}
	}
	for x := 0; x < 200; x += 4 {
		if err := d.VLine(light, VCenter, core.Point{X: x, Y: 0}, 100); err != nil {
			t.Fatal(err)
		}
	}
	elapsed := time.Since(start)

	if r := runeAt(grid, 4, 4); r != '┼' {
		t.Errorf("grid crossing = %c, want ┼", r)
	}
	if elapsed > time.Second {
		t.Errorf("drawing a 200x100 lattice took %v, want under 1s", elapsed)
	}
}
