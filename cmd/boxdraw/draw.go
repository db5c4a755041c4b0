package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"boxdraw/canvas"
)

type drawParams struct {
	boxes  []string
	hlines []string
	vlines []string
}

// shapes holds parsed draw flags in the order they are drawn.
type shapes struct {
	boxes  []boxShape
	hlines []hlineShape
	vlines []vlineShape
}

func newDrawCommand(root *rootParams) *cobra.Command {
	params := &drawParams{}

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw boxes and lines",
		Long: `Draw boxes, then horizontal lines, then vertical lines, each in flag order.
Where they meet, the glyphs merge into junctions.

Example:
  boxdraw draw --box 0,0,20,5,hello --hline 0,2,30 --vline 10,0,8,left`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sh, err := params.parse()
			if err != nil {
				return err
			}
			s, err := root.open(cmd)
			if err != nil {
				return err
			}
			return s.render(cmd, root.screen, func(d *canvas.Drawer) error {
				return sh.draw(d, s)
			})
		},
	}

	fs := cmd.Flags()
	fs.StringArrayVar(&params.boxes, "box", nil, "box as x,y,cols,rows[,label] (repeatable)")
	fs.StringArrayVar(&params.hlines, "hline", nil, "horizontal line as x,y,len[,upper|center|lower] (repeatable)")
	fs.StringArrayVar(&params.vlines, "vline", nil, "vertical line as x,y,len[,left|center|right] (repeatable)")
	return cmd
}

func (p *drawParams) parse() (*shapes, error) {
	sh := &shapes{}
	for _, s := range p.boxes {
		b, err := parseBox(s)
		if err != nil {
			return nil, err
		}
		sh.boxes = append(sh.boxes, b)
	}
	for _, s := range p.hlines {
		l, err := parseHLine(s)
		if err != nil {
			return nil, err
		}
		sh.hlines = append(sh.hlines, l)
	}
	for _, s := range p.vlines {
		l, err := parseVLine(s)
		if err != nil {
			return nil, err
		}
		sh.vlines = append(sh.vlines, l)
	}
	return sh, nil
}

func (sh *shapes) draw(d *canvas.Drawer, s *session) error {
	for _, b := range sh.boxes {
		if err := d.Box(s.style, b.origin, b.size); err != nil {
			return err
		}
		if b.label != "" {
			if err := d.Label(b.origin, b.size, b.label, tcell.StyleDefault); err != nil {
				return err
			}
		}
	}
	for _, l := range sh.hlines {
		if err := d.HLine(s.style, l.variant, l.start, l.length); err != nil {
			return err
		}
	}
	for _, l := range sh.vlines {
		if err := d.VLine(s.style, l.variant, l.start, l.length); err != nil {
			return err
		}
	}
	return nil
}
