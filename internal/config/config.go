// Package config loads the optional daydial.yaml file and resolves it into
// a screen profile and display options.
package config

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/daydial/pkg/dial"
	"github.com/go-drift/daydial/pkg/display"
	"github.com/go-drift/daydial/pkg/errors"
	"github.com/go-drift/daydial/pkg/locale"
	"github.com/go-drift/daydial/pkg/reveal"
)

// FileName is the configuration file looked up in a config directory.
const FileName = "daydial.yaml"

// Config represents the optional daydial.yaml configuration. Unset fields
// keep the value of the named preset.
type Config struct {
	Profile    string       `yaml:"profile,omitempty"`
	Screen     ScreenConfig `yaml:"screen"`
	Tiles      TilesConfig  `yaml:"tiles"`
	Label      LabelConfig  `yaml:"label"`
	Needle     *bool        `yaml:"needle,omitempty"`
	Reveal     RevealConfig `yaml:"reveal"`
	Tick       string       `yaml:"tick,omitempty"`
	Locale     string       `yaml:"locale,omitempty"`
	Background string       `yaml:"background,omitempty"`
}

// ScreenConfig overrides the screen size and shape.
type ScreenConfig struct {
	Width  *int   `yaml:"width,omitempty"`
	Height *int   `yaml:"height,omitempty"`
	Shape  string `yaml:"shape,omitempty"`
}

// TilesConfig overrides the background tile layout.
type TilesConfig struct {
	Count       *int   `yaml:"count,omitempty"`
	Width       *int   `yaml:"width,omitempty"`
	Span        *int   `yaml:"span,omitempty"`
	Anchor      string `yaml:"anchor,omitempty"`
	CenterIndex *int   `yaml:"center_index,omitempty"`
}

// LabelConfig overrides the date label frame.
type LabelConfig struct {
	Left      *int `yaml:"left,omitempty"`
	Top       *int `yaml:"top,omitempty"`
	Width     *int `yaml:"width,omitempty"`
	Height    *int `yaml:"height,omitempty"`
	HiddenTop *int `yaml:"hidden_top,omitempty"`
}

// RevealConfig overrides the reveal durations, written as Go durations
// ("400ms", "4s").
type RevealConfig struct {
	SlideIn  *time.Duration `yaml:"slide_in,omitempty"`
	Hold     *time.Duration `yaml:"hold,omitempty"`
	SlideOut *time.Duration `yaml:"slide_out,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	// Path is the file the values came from, or empty when defaults were used.
	Path       string
	Profile    dial.ScreenProfile
	Timing     reveal.Timing
	TickUnit   display.TickUnit
	Locale     string
	Background string
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	const op = "config.Load"
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf(op, errors.KindConfig, "failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Errorf(op, errors.KindConfig, "failed to parse %s: %w", filepath.Base(path), err)
	}
	return &cfg, nil
}

// LoadOptional reads daydial.yaml from dir if present. A missing file
// yields an empty Config.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); stderrors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return Load(path)
}

// Resolve loads daydial.yaml from dir (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	return ResolveProfile(dir, "")
}

// ResolveProfile is like Resolve but starts from the named preset instead of
// the file's profile when profile is not empty. The file's screen, tile and
// label overrides still apply on top of it.
func ResolveProfile(dir, profile string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	if profile != "" {
		cfg.Profile = profile
	}
	r, err := cfg.Resolve(dir)
	if err != nil {
		return nil, err
	}
	if path := filepath.Join(dir, FileName); fileExists(path) {
		r.Path = path
	}
	return r, nil
}

// Resolve applies the overrides in c to the named preset and validates the
// result. Relative background paths are taken relative to dir.
func (c *Config) Resolve(dir string) (*Resolved, error) {
	const op = "config.Resolve"

	name := strings.TrimSpace(c.Profile)
	if name == "" {
		name = dial.DefaultProfileName
	}
	p, ok := dial.Lookup(name)
	if !ok {
		return nil, errors.Errorf(op, errors.KindConfig, "unknown profile %q (known: %s)", name, presetNames())
	}
	if err := c.applyProfile(&p); err != nil {
		return nil, errors.New(op, errors.KindConfig, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	timing := reveal.DefaultTiming
	setDuration(&timing.SlideIn, c.Reveal.SlideIn)
	setDuration(&timing.Hold, c.Reveal.Hold)
	setDuration(&timing.SlideOut, c.Reveal.SlideOut)
	if err := timing.Validate(); err != nil {
		return nil, err
	}

	unit, err := display.ParseTickUnit(c.Tick)
	if err != nil {
		return nil, errors.New(op, errors.KindConfig, err)
	}

	lang := strings.TrimSpace(c.Locale)
	if lang == "" {
		lang = locale.Default
	}

	background := strings.TrimSpace(c.Background)
	if background != "" && !filepath.IsAbs(background) {
		background = filepath.Join(dir, background)
	}

	return &Resolved{
		Profile:    p,
		Timing:     timing,
		TickUnit:   unit,
		Locale:     lang,
		Background: background,
	}, nil
}

func (c *Config) applyProfile(p *dial.ScreenProfile) error {
	if c.Screen.Width != nil {
		p.Width = *c.Screen.Width
		// Keep the label in the right half unless it is placed explicitly.
		p.LabelLeft = p.Width/2 + 2
		p.LabelWidth = p.Width/2 - 2
	}
	setInt(&p.Height, c.Screen.Height)
	if c.Screen.Shape != "" {
		shape, err := parseShape(c.Screen.Shape)
		if err != nil {
			return err
		}
		p.Shape = shape
	}

	if c.Tiles.Count != nil {
		p.TileCount = *c.Tiles.Count
		p.CenterIndex = dial.DefaultCenterIndex(p.TileCount)
	}
	setInt(&p.TileWidth, c.Tiles.Width)
	setInt(&p.CycleSpan, c.Tiles.Span)
	setInt(&p.CenterIndex, c.Tiles.CenterIndex)
	if c.Tiles.Anchor != "" {
		anchor, err := parseAnchor(c.Tiles.Anchor)
		if err != nil {
			return err
		}
		p.Anchor = anchor
	}

	setInt(&p.LabelLeft, c.Label.Left)
	setInt(&p.LabelTop, c.Label.Top)
	setInt(&p.LabelWidth, c.Label.Width)
	setInt(&p.LabelHeight, c.Label.Height)
	setInt(&p.HiddenTop, c.Label.HiddenTop)

	if c.Needle != nil {
		p.ShowNeedle = *c.Needle
	}
	if c.customized() {
		p.Name += "+custom"
	}
	return nil
}

func (c *Config) customized() bool {
	s, t, l := c.Screen, c.Tiles, c.Label
	return s.Width != nil || s.Height != nil || s.Shape != "" ||
		t.Count != nil || t.Width != nil || t.Span != nil || t.Anchor != "" || t.CenterIndex != nil ||
		l.Left != nil || l.Top != nil || l.Width != nil || l.Height != nil || l.HiddenTop != nil ||
		c.Needle != nil
}

// Options returns the display options carried by r. Weekday names come
// from the configured locale, falling back to English.
func (r *Resolved) Options(logger *slog.Logger) []display.Option {
	opts := []display.Option{
		display.WithTiming(r.Timing),
		display.WithTickUnit(r.TickUnit),
		display.WithWeekdays(locale.WeekdaysOrDefault(r.Locale)),
	}
	if logger != nil {
		opts = append(opts, display.WithLogger(logger))
	}
	return opts
}

// LogValue summarizes r for structured logs.
func (r *Resolved) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", r.Path),
		slog.String("profile", r.Profile.Name),
		slog.String("tick", r.TickUnit.String()),
		slog.String("locale", r.Locale),
		slog.Duration("hold", r.Timing.Hold),
	)
}

func parseShape(s string) (dial.Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rect", "rectangle":
		return dial.ShapeRect, nil
	case "round", "circle":
		return dial.ShapeRound, nil
	default:
		return dial.ShapeRect, fmt.Errorf("screen.shape must be rect or round (got %q)", s)
	}
}

func parseAnchor(s string) (dial.Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre":
		return dial.AnchorCenter, nil
	case "left":
		return dial.AnchorLeft, nil
	default:
		return dial.AnchorCenter, fmt.Errorf("tiles.anchor must be center or left (got %q)", s)
	}
}

func presetNames() string {
	var names []string
	for _, p := range dial.Presets() {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *time.Duration) {
	if v != nil {
		*dst = *v
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
