package canvas

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"boxdraw/core"
)

// WrapText wraps text to fit within maxWidth cells at word boundaries.
// A word wider than maxWidth is cut at character boundaries.
func WrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	width := 0

	flush := func() {
		if line.Len() > 0 {
			lines = append(lines, line.String())
			line.Reset()
			width = 0
		}
	}

	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)

		if width > 0 && width+1+w <= maxWidth {
			line.WriteRune(' ')
			line.WriteString(word)
			width += 1 + w
			continue
		}
		flush()

		for w > maxWidth {
			cut := cutPoint(word, maxWidth)
			if cut == 0 {
				// A single rune wider than the line; emit it alone.
				_, size := firstRune(word)
				cut = size
			}
			lines = append(lines, word[:cut])
			word = word[cut:]
			w = runewidth.StringWidth(word)
		}
		line.WriteString(word)
		width = w
	}
	flush()

	return lines
}

// cutPoint returns the byte offset of the longest prefix of s that fits in maxWidth cells.
func cutPoint(s string, maxWidth int) int {
	width := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if width+rw > maxWidth {
			return i
		}
		width += rw
	}
	return len(s)
}

func firstRune(s string) (rune, int) {
	for i, r := range s {
		if i > 0 {
			return r, i
		}
	}
	return 0, len(s)
}

// Text writes s left to right from p in style st, stopping at the right edge of the grid.
// Wide runes take two cells, the second holding a space. Zero-width runes are dropped.
// It returns the number of cells written.
func (d *Drawer) Text(p core.Point, s string, st tcell.Style) (int, error) {
	size := d.grid.Size()
	if !size.Contains(p) {
		return 0, outOfBounds(p, size)
	}

	x := p.X
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > size.Cols {
			break
		}
		at := core.Point{X: x, Y: p.Y}
		if err := d.grid.SetCell(at, r, st); err != nil {
			return x - p.X, &WriteError{At: at, Err: err}
		}
		if rw == 2 {
			at = at.Add(1, 0)
			if err := d.grid.SetCell(at, ' ', st); err != nil {
				return x - p.X + 1, &WriteError{At: at, Err: err}
			}
		}
		x += rw
	}
	return x - p.X, nil
}

// Label wraps text into the interior of the box at origin and writes it there, one
// line per row, clipped at the bottom edge of the box.
func (d *Drawer) Label(origin core.Point, size core.Size, text string, st tcell.Style) error {
	inner := core.Size{Rows: size.Rows - 2, Cols: size.Cols - 2}
	if inner.Rows <= 0 || inner.Cols <= 0 {
		return nil
	}

	for i, line := range WrapText(text, inner.Cols) {
		if i >= inner.Rows {
			d.log.WithField("text", text).Debug("Label truncated to fit box.")
			break
		}
		if _, err := d.Text(origin.Add(1, 1+i), line, st); err != nil {
			return err
		}
	}
	return nil
}
