package main

import (
	"fmt"
	"strconv"
	"strings"

	"boxdraw/canvas"
	"boxdraw/config"
	"boxdraw/core"
	"boxdraw/style"
)

// styleFlag accepts any name style.Parse understands, plus "custom".
type styleFlag struct {
	name string
}

func (f *styleFlag) Type() string {
	return "style"
}

func (f *styleFlag) String() string {
	return f.name
}

func (f *styleFlag) Set(s string) error {
	if !strings.EqualFold(s, config.CustomName) {
		if _, err := style.Parse(s); err != nil {
			return err
		}
	}
	f.name = strings.ToLower(s)
	return nil
}

type boxShape struct {
	origin core.Point
	size   core.Size
	label  string
}

type hlineShape struct {
	start   core.Point
	length  int
	variant canvas.HVariant
}

type vlineShape struct {
	start   core.Point
	length  int
	variant canvas.VVariant
}

var hVariants = map[string]canvas.HVariant{
	"upper":  canvas.HUpper,
	"center": canvas.HCenter,
	"lower":  canvas.HLower,
}

var vVariants = map[string]canvas.VVariant{
	"left":   canvas.VLeft,
	"center": canvas.VCenter,
	"right":  canvas.VRight,
}

// parseBox parses "x,y,cols,rows[,label]". The label may itself contain commas.
func parseBox(s string) (boxShape, error) {
	parts := strings.SplitN(s, ",", 5)
	if len(parts) < 4 {
		return boxShape{}, fmt.Errorf("box %q: want x,y,cols,rows[,label]", s)
	}
	n, err := atoiAll(parts[:4])
	if err != nil {
		return boxShape{}, fmt.Errorf("box %q: %w", s, err)
	}
	b := boxShape{
		origin: core.Point{X: n[0], Y: n[1]},
		size:   core.Size{Cols: n[2], Rows: n[3]},
	}
	if len(parts) == 5 {
		b.label = parts[4]
	}
	return b, nil
}

// parseHLine parses "x,y,len[,upper|center|lower]".
func parseHLine(s string) (hlineShape, error) {
	start, length, variant, err := parseLine(s)
	if err != nil {
		return hlineShape{}, fmt.Errorf("hline %q: %w", s, err)
	}
	l := hlineShape{start: start, length: length}
	if variant != "" {
		v, ok := hVariants[variant]
		if !ok {
			return hlineShape{}, fmt.Errorf("hline %q: unknown variant %q", s, variant)
		}
		l.variant = v
	}
	return l, nil
}

// parseVLine parses "x,y,len[,left|center|right]".
func parseVLine(s string) (vlineShape, error) {
	start, length, variant, err := parseLine(s)
	if err != nil {
		return vlineShape{}, fmt.Errorf("vline %q: %w", s, err)
	}
	l := vlineShape{start: start, length: length}
	if variant != "" {
		v, ok := vVariants[variant]
		if !ok {
			return vlineShape{}, fmt.Errorf("vline %q: unknown variant %q", s, variant)
		}
		l.variant = v
	}
	return l, nil
}

func parseLine(s string) (core.Point, int, string, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 3 || len(parts) > 4 {
		return core.Point{}, 0, "", fmt.Errorf("want x,y,len[,variant]")
	}
	n, err := atoiAll(parts[:3])
	if err != nil {
		return core.Point{}, 0, "", err
	}
	var variant string
	if len(parts) == 4 {
		variant = strings.ToLower(strings.TrimSpace(parts[3]))
	}
	return core.Point{X: n[0], Y: n[1]}, n[2], variant, nil
}

func atoiAll(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
