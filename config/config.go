// Package config loads boxdraw settings from an optional file, BOXDRAW_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"boxdraw/graphic"
	"boxdraw/style"
)

// ErrInvalidConfig is returned when a setting cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix is prepended to every environment override, e.g. BOXDRAW_LOG_LEVEL.
const EnvPrefix = "BOXDRAW"

// CustomName selects the glyphs under Custom as the drawing style.
const CustomName = "custom"

// Config holds every boxdraw setting.
type Config struct {
	// Style is a style name accepted by style.Parse, "custom", or empty to detect
	// one from the terminal.
	Style  string       `mapstructure:"style"`
	Custom CustomGlyphs `mapstructure:"custom"`
	Log    LogConfig    `mapstructure:"log"`
	// Width and Height size the drawing grid; zero fits the terminal.
	Width  int          `mapstructure:"width"`
	Height int          `mapstructure:"height"`
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CustomGlyphs names one glyph per graphic kind. Empty entries keep the light glyph.
type CustomGlyphs struct {
	UpperLeftCorner  string `mapstructure:"upper_left_corner"`
	LowerLeftCorner  string `mapstructure:"lower_left_corner"`
	UpperRightCorner string `mapstructure:"upper_right_corner"`
	LowerRightCorner string `mapstructure:"lower_right_corner"`

	RightTee string `mapstructure:"right_tee"`
	LeftTee  string `mapstructure:"left_tee"`
	LowerTee string `mapstructure:"lower_tee"`
	UpperTee string `mapstructure:"upper_tee"`

	HorizontalLine      string `mapstructure:"horizontal_line"`
	UpperHorizontalLine string `mapstructure:"upper_horizontal_line"`
	LowerHorizontalLine string `mapstructure:"lower_horizontal_line"`

	VerticalLine      string `mapstructure:"vertical_line"`
	LeftVerticalLine  string `mapstructure:"left_vertical_line"`
	RightVerticalLine string `mapstructure:"right_vertical_line"`

	Cross string `mapstructure:"cross"`
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"style":      "style",
	"log-level":  "log.level",
	"log-format": "log.format",
	"width":      "width",
	"height":     "height",
}

var customKeys = []string{
	"upper_left_corner", "lower_left_corner", "upper_right_corner", "lower_right_corner",
	"right_tee", "left_tee", "lower_tee", "upper_tee",
	"horizontal_line", "upper_horizontal_line", "lower_horizontal_line",
	"vertical_line", "left_vertical_line", "right_vertical_line",
	"cross",
}

// Load reads the config file at path, if path is not empty, and applies environment
// and flag overrides. flags may be nil; only flags the user set take effect.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %q: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("style", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("width", 0)
	v.SetDefault("height", 0)
	// Every key needs a default for AutomaticEnv to reach it during Unmarshal.
	for _, k := range customKeys {
		v.SetDefault("custom."+k, "")
	}
}

// DrawingStyle resolves the configured style.
func (c *Config) DrawingStyle() (style.Style, error) {
	switch strings.ToLower(c.Style) {
	case "":
		return style.DetectCapabilities().DefaultStyle(), nil
	case CustomName:
		set, err := c.Custom.Set()
		if err != nil {
			return style.Style{}, err
		}
		return style.Custom(set), nil
	default:
		s, err := style.Parse(c.Style)
		if err != nil {
			return style.Style{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		return s, nil
	}
}

// Set builds a validated custom glyph set, starting from the light style.
func (g CustomGlyphs) Set() (style.CustomSet, error) {
	set := style.SetOf(style.Light(style.Normal))
	var errs []error
	byKind := g.byKind()
	for _, k := range graphic.Kinds() {
		s := byKind[k]
		if s == "" {
			continue
		}
		if utf8.RuneCountInString(s) != 1 {
			errs = append(errs, fmt.Errorf("%w: %v glyph %q must be a single character", ErrInvalidConfig, k, s))
			continue
		}
		r, _ := utf8.DecodeRuneInString(s)
		set = set.With(k, r)
	}
	if err := errors.Join(errs...); err != nil {
		return style.CustomSet{}, err
	}
	if err := set.Validate(); err != nil {
		return style.CustomSet{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return set, nil
}

func (g CustomGlyphs) byKind() [graphic.KindCount]string {
	return [graphic.KindCount]string{
		graphic.UpperLeftCorner:     g.UpperLeftCorner,
		graphic.LowerLeftCorner:     g.LowerLeftCorner,
		graphic.UpperRightCorner:    g.UpperRightCorner,
		graphic.LowerRightCorner:    g.LowerRightCorner,
		graphic.RightTee:            g.RightTee,
		graphic.LeftTee:             g.LeftTee,
		graphic.LowerTee:            g.LowerTee,
		graphic.UpperTee:            g.UpperTee,
		graphic.HorizontalLine:      g.HorizontalLine,
		graphic.UpperHorizontalLine: g.UpperHorizontalLine,
		graphic.LowerHorizontalLine: g.LowerHorizontalLine,
		graphic.VerticalLine:        g.VerticalLine,
		graphic.LeftVerticalLine:    g.LeftVerticalLine,
		graphic.RightVerticalLine:   g.RightVerticalLine,
		graphic.Cross:               g.Cross,
	}
}
