package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"boxdraw/canvas"
	"boxdraw/core"
	"boxdraw/style"
)

const (
	demoCols = 44
	demoRows = 13
)

// demoShapes overlap two boxes and cut both with a horizontal and a vertical line.
var demoShapes = shapes{
	boxes: []boxShape{
		{origin: core.Point{X: 2, Y: 1}, size: core.Size{Rows: 7, Cols: 20}, label: "first box"},
		{origin: core.Point{X: 14, Y: 4}, size: core.Size{Rows: 7, Cols: 22}, label: "second box over the first"},
	},
	hlines: []hlineShape{
		{start: core.Point{X: 0, Y: 6}, length: demoCols},
	},
	vlines: []vlineShape{
		{start: core.Point{X: 30, Y: 0}, length: demoRows},
	},
}

func newDemoCommand(root *rootParams) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Draw overlapping boxes and crossing lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := root.open(cmd)
			if err != nil {
				return err
			}
			if s.cfg.Width == 0 {
				s.cfg.Width = demoCols
			}
			if s.cfg.Height == 0 {
				s.cfg.Height = demoRows
			}
			return s.render(cmd, root.screen, func(d *canvas.Drawer) error {
				if err := demoShapes.draw(d, s); err != nil {
					return err
				}
				return s.caption(d)
			})
		},
	}
}

// caption names the style under the demo, in colour when the terminal has it.
func (s *session) caption(d *canvas.Drawer) error {
	st := s.caps.CellStyle(tcell.AttrBold, style.ColorPair{Fg: tcell.ColorTeal, Bg: tcell.ColorDefault})
	_, err := d.Text(core.Point{X: 1, Y: demoRows - 1}, "boxdraw "+s.style.String(), st)
	return err
}
