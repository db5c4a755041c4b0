package canvas

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxdraw/core"
	"boxdraw/style"
)

func TestBorderStyle(t *testing.T) {
	grid := NewMatrixGrid(4, 3)
	colors := style.ColorPair{Fg: tcell.ColorGreen, Bg: tcell.ColorBlack}

	require.NoError(t, NewDrawer(grid).BorderStyle(light, tcell.AttrBold, colors))

	want := []string{"┌──┐", "│  │", "└──┘"}
	if diff := cmp.Diff(want, grid.Rows()); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}

	_, st, err := grid.Cell(core.Point{})
	require.NoError(t, err)
	fg, bg, attrs := st.Decompose()
	assert.Equal(t, tcell.ColorGreen, fg)
	assert.Equal(t, tcell.ColorBlack, bg)
	assert.Equal(t, tcell.AttrBold, attrs&tcell.AttrBold)

	_, st, err = grid.Cell(core.Point{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, tcell.StyleDefault, st, "interior keeps its style")
}

func TestBorderReplacesWithoutMerging(t *testing.T) {
	grid := NewMatrixGrid(3, 3)
	require.NoError(t, grid.SetCell(core.Point{X: 1}, '┼', tcell.StyleDefault))

	g := func(r rune) style.ComplexGlyph {
		return style.ComplexGlyph{Rune: r, Style: tcell.StyleDefault}
	}
	require.NoError(t, NewDrawer(grid).Border(g('L'), g('R'), g('T'), g('B'), g('1'), g('2'), g('3'), g('4')))

	want := []string{"1T2", "L R", "3B4"}
	if diff := cmp.Diff(want, grid.Rows()); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestBorderNeedsTwoByTwo(t *testing.T) {
	grid := newRecordingGrid(1, 5)
	err := NewDrawer(grid).BorderStyle(light, tcell.AttrNone, style.DefaultColors)
	assert.ErrorIs(t, err, ErrInvalidBoxGeometry)
	assert.Empty(t, grid.writes)
}

func TestBorderWriteFailure(t *testing.T) {
	grid := newRecordingGrid(3, 3)
	grid.failAt = 2

	err := NewDrawer(grid).BorderStyle(style.Ascii(), tcell.AttrNone, style.DefaultColors)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, core.Point{X: 2, Y: 0}, writeErr.At)
	assert.Len(t, grid.writes, 1)
}

func TestBorderRejectsMissingGlyph(t *testing.T) {
	grid := newRecordingGrid(4, 4)
	d := NewDrawer(grid)

	err := d.BorderStyle(style.Custom(style.CustomSet{}), tcell.AttrNone, style.DefaultColors)
	assert.ErrorIs(t, err, style.ErrInvalidGlyph)

	g := style.ComplexGlyph{Rune: '#', Style: tcell.StyleDefault}
	err = d.Border(g, g, g, g, g, g, g, style.ComplexGlyph{})
	assert.ErrorIs(t, err, style.ErrInvalidGlyph)
	assert.Empty(t, grid.writes)
}
