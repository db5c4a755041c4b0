package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"boxdraw/canvas"
	"boxdraw/config"
	"boxdraw/core"
	"boxdraw/internal/logging"
	"boxdraw/style"
)

const (
	fallbackCols = 80
	fallbackRows = 24
)

type rootParams struct {
	configFile string
	style      styleFlag
	logLevel   string
	logFormat  string
	width      int
	height     int
	screen     bool
}

// newScreen opens the terminal for --screen output.
var newScreen = tcell.NewScreen

func newRootCommand() *cobra.Command {
	params := &rootParams{}

	root := &cobra.Command{
		Use:          "boxdraw",
		Short:        "Draw composable box-drawing lines and boxes",
		Long:         "Draw lines and boxes whose crossings merge into the right junction glyphs.",
		SilenceUsage: true,
	}

	fs := root.PersistentFlags()
	fs.StringVar(&params.configFile, "config", "", "path to a config file")
	fs.Var(&params.style, "style", "drawing style, e.g. light, heavy:triple-dash, double, ascii or custom")
	fs.StringVar(&params.logLevel, "log-level", "info", "set log level (debug, info, warn, error)")
	fs.StringVar(&params.logFormat, "log-format", "text", "set log format (text, json, json-pretty)")
	fs.IntVar(&params.width, "width", 0, "grid width in cells (0 fits the terminal)")
	fs.IntVar(&params.height, "height", 0, "grid height in cells (0 fits the terminal)")
	fs.BoolVar(&params.screen, "screen", false, "draw on the terminal screen and wait for a key")

	root.AddCommand(
		newDrawCommand(params),
		newDemoCommand(params),
		newStylesCommand(),
	)
	return root
}

// session is everything a drawing command needs once flags and config are resolved.
type session struct {
	cfg   *config.Config
	style style.Style
	caps  style.Capabilities
	log   *logrus.Logger
}

func (p *rootParams) open(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(p.configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	st, err := cfg.DrawingStyle()
	if err != nil {
		return nil, err
	}
	log.WithField("style", st).Debug("Resolved drawing style.")

	caps := style.DetectCapabilities()
	if !caps.Supports(st) {
		log.WithFields(logrus.Fields{"style": st, "terminal": caps.Name}).
			Warn("Terminal may not render drawing style.")
	}
	return &session{cfg: cfg, style: st, caps: caps, log: log}, nil
}

// gridSize returns the configured size, filling unset dimensions from the terminal
// behind out when there is one.
func (s *session) gridSize(out io.Writer) core.Size {
	size := core.Size{Rows: s.cfg.Height, Cols: s.cfg.Width}
	if size.Rows > 0 && size.Cols > 0 {
		return size
	}

	cols, rows := fallbackCols, fallbackRows
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && h > 0 {
			cols, rows = w, h
		}
	}
	if size.Cols <= 0 {
		size.Cols = cols
	}
	if size.Rows <= 0 {
		size.Rows = rows
	}
	return size
}

// render runs draw against an in-memory grid and prints it, or against the terminal
// screen when screen is set.
func (s *session) render(cmd *cobra.Command, screen bool, draw func(*canvas.Drawer) error) error {
	if screen {
		return s.renderScreen(draw)
	}

	out := cmd.OutOrStdout()
	size := s.gridSize(out)
	grid := canvas.NewMatrixGrid(size.Cols, size.Rows)
	if grid == nil {
		return fmt.Errorf("invalid grid size %dx%d", size.Cols, size.Rows)
	}
	if err := draw(canvas.NewDrawer(grid, canvas.WithLogger(s.log))); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, grid.String())
	return err
}

func (s *session) renderScreen(draw func(*canvas.Drawer) error) error {
	screen, err := newScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	if err := s.show(screen, draw); err != nil {
		return err
	}
	for {
		switch ev := screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			w, h := ev.Size()
			s.log.WithFields(logrus.Fields{"width": w, "height": h}).Debug("Screen resized.")
		}
	}
}

// show draws onto an initialised screen and flushes it.
func (s *session) show(screen tcell.Screen, draw func(*canvas.Drawer) error) error {
	screen.Clear()
	if err := draw(canvas.NewDrawer(canvas.NewScreenGrid(screen), canvas.WithLogger(s.log))); err != nil {
		return err
	}
	screen.Show()
	return nil
}
