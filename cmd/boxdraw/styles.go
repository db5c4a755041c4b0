package main

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"boxdraw/graphic"
	"boxdraw/style"
)

func newStylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the built-in styles and their glyphs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printStyles(cmd.OutOrStdout())
		},
	}
}

// printStyles writes one row per built-in style with its glyphs in kind order.
func printStyles(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Style", "Corners", "Tees", "Lines", "Cross"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)

	for _, st := range style.Builtin() {
		table.Append([]string{
			st.String(),
			glyphs(st, graphic.UpperLeftCorner, graphic.UpperRightCorner, graphic.LowerLeftCorner, graphic.LowerRightCorner),
			glyphs(st, graphic.RightTee, graphic.LeftTee, graphic.LowerTee, graphic.UpperTee),
			glyphs(st,
				graphic.HorizontalLine, graphic.UpperHorizontalLine, graphic.LowerHorizontalLine,
				graphic.VerticalLine, graphic.LeftVerticalLine, graphic.RightVerticalLine),
			glyphs(st, graphic.Cross),
		})
	}
	table.Render()
}

func glyphs(st style.Style, kinds ...graphic.Kind) string {
	var sb strings.Builder
	for i, k := range kinds {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(style.Glyph(st, k))
	}
	return sb.String()
}
