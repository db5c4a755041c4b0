package style

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// UnicodeLevel represents how much of the box-drawing block a terminal can show.
type UnicodeLevel int

const (
	UnicodeNone     UnicodeLevel = iota // ASCII only
	UnicodeBasic                        // light and heavy lines, block elements
	UnicodeExtended                     // dashed and double lines
)

// Capabilities describes the features of the current terminal relevant to drawing.
type Capabilities struct {
	Name            string
	UnicodeLevel    UnicodeLevel
	SupportsColor   bool
	BoxDrawingWidth int  // 1 for normal, 2 where box drawing is ambiguous-wide
	IsCJK           bool // CJK environment detected
}

// DefaultStyle picks the plainest line style the terminal can render cleanly.
func (c Capabilities) DefaultStyle() Style {
	if !c.Supports(Light(Normal)) {
		return Ascii()
	}
	return Light(Normal)
}

// Supports reports whether every glyph of s renders one cell wide on the terminal.
// Dashed and double lines need UnicodeExtended.
func (c Capabilities) Supports(s Style) bool {
	switch {
	case s.Type() == TypeAscii:
		return true
	case c.UnicodeLevel == UnicodeNone || c.BoxDrawingWidth > 1:
		return false
	case s.Type() == TypeDouble || s.Detail() != Normal:
		return c.UnicodeLevel >= UnicodeExtended
	}
	return true
}

// CellStyle is CellStyle with the colours dropped on a terminal without colour.
func (c Capabilities) CellStyle(attrs tcell.AttrMask, colors ColorPair) tcell.Style {
	if !c.SupportsColor {
		colors = DefaultColors
	}
	return CellStyle(attrs, colors)
}

// DetectCapabilities inspects the environment to describe the current terminal.
// BOXDRAW_TERMINAL_MODE=ascii|unicode overrides detection.
func DetectCapabilities() Capabilities {
	switch os.Getenv("BOXDRAW_TERMINAL_MODE") {
	case "ascii":
		return ForceASCII()
	case "unicode":
		return ForceUnicode()
	}

	caps := Capabilities{
		Name:            os.Getenv("TERM"),
		UnicodeLevel:    UnicodeBasic,
		BoxDrawingWidth: 1,
	}
	if !detectSpecificTerminal(&caps) {
		term := caps.Name
		if term != "" && term != "dumb" {
			caps.SupportsColor = strings.Contains(term, "color") ||
				strings.HasPrefix(term, "xterm") || strings.HasPrefix(term, "screen")
		}
		if strings.HasPrefix(term, "xterm") || term == "alacritty" {
			caps.UnicodeLevel = UnicodeExtended
		}
	}

	// https://no-color.org/
	if os.Getenv("NO_COLOR") != "" {
		caps.SupportsColor = false
	}

	if !detectUTF8Locale() || caps.Name == "linux" || caps.Name == "dumb" {
		caps.UnicodeLevel = UnicodeNone
	}

	caps.IsCJK = detectCJKEnvironment()
	if caps.IsCJK {
		caps.BoxDrawingWidth = 2
	}
	return caps
}

// detectSpecificTerminal checks for terminal emulators that announce themselves.
func detectSpecificTerminal(caps *Capabilities) bool {
	switch {
	case os.Getenv("WT_SESSION") != "":
		caps.Name = "windows-terminal"
	case os.Getenv("TERM_PROGRAM") == "iTerm.app":
		caps.Name = "iterm2"
	case os.Getenv("TERM_PROGRAM") == "Apple_Terminal":
		caps.Name = "terminal.app"
	case os.Getenv("VTE_VERSION") != "":
		caps.Name = "vte-based"
	case os.Getenv("KONSOLE_VERSION") != "":
		caps.Name = "konsole"
	case os.Getenv("WEZTERM_EXECUTABLE") != "":
		caps.Name = "wezterm"
	case strings.HasPrefix(os.Getenv("TERM"), "xterm-kitty"):
		caps.Name = "kitty"
	case os.Getenv("TMUX") != "":
		caps.Name = "tmux"
	default:
		return false
	}
	caps.UnicodeLevel = UnicodeExtended
	caps.SupportsColor = true
	return true
}

// detectUTF8Locale checks if the locale supports UTF-8.
func detectUTF8Locale() bool {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := strings.ToUpper(os.Getenv(env))
		if value == "" {
			continue
		}
		// C.UTF-8, en_US.UTF-8, en_US.utf8@euro, ...
		return strings.Contains(value, "UTF-8") || strings.Contains(value, "UTF8")
	}
	return false
}

// detectCJKEnvironment reports whether box-drawing runes render two cells wide.
func detectCJKEnvironment() bool {
	if runewidth.IsEastAsian() {
		return true
	}
	return os.Getenv("CJK_WIDTH") == "2" ||
		os.Getenv("EAST_ASIAN_AMBIGUOUS") == "2" ||
		strings.Contains(strings.ToLower(os.Getenv("TERM")), "cjk")
}

// ForceASCII returns capabilities configured for ASCII-only output.
func ForceASCII() Capabilities {
	return Capabilities{
		Name:            "ascii",
		UnicodeLevel:    UnicodeNone,
		BoxDrawingWidth: 1,
	}
}

// ForceUnicode returns capabilities configured for full Unicode support.
func ForceUnicode() Capabilities {
	return Capabilities{
		Name:            "unicode",
		UnicodeLevel:    UnicodeExtended,
		SupportsColor:   true,
		BoxDrawingWidth: 1,
	}
}
