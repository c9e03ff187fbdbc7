// Package theme loads named stroke and fill presets from YAML stylesheets,
// so the drawing styles of an application can be edited without
// recompiling. Presets resolve by name; missing names fall back to
// sensible defaults rather than failing the paint.
package theme

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/easel/pkg/errors"
	"github.com/go-drift/easel/pkg/graphics"
)

// CurrentMajor is the stylesheet schema major version this loader
// understands.
const CurrentMajor = "v1"

// Theme is a resolved set of named drawing presets.
type Theme struct {
	name    string
	version string
	colors  map[string]graphics.Color
	strokes map[string]graphics.Stroke
	fills   map[string]graphics.Fill
}

// Default returns the built-in theme: black hairline strokes and a few
// neutral fills. It is what a control sees when no stylesheet is loaded.
func Default() *Theme {
	return &Theme{
		name:    "default",
		version: CurrentMajor + ".0.0",
		colors: map[string]graphics.Color{
			"foreground": graphics.ColorBlack,
			"background": graphics.ColorWhite,
			"accent":     graphics.ColorBlue,
		},
		strokes: map[string]graphics.Stroke{
			"outline": {Color: graphics.ColorBlack, Width: 1},
		},
		fills: map[string]graphics.Fill{
			"surface": graphics.SolidFill(graphics.ColorWhite),
		},
	}
}

// Name returns the stylesheet's declared name.
func (t *Theme) Name() string { return t.name }

// Version returns the stylesheet's declared schema version.
func (t *Theme) Version() string { return t.version }

// Color resolves a named color. Unknown names resolve to fallback.
func (t *Theme) Color(name string, fallback graphics.Color) graphics.Color {
	if c, ok := t.colors[name]; ok {
		return c
	}
	return fallback
}

// Stroke resolves a named stroke preset. Unknown names resolve to the
// default hairline stroke.
func (t *Theme) Stroke(name string) graphics.Stroke {
	if s, ok := t.strokes[name]; ok {
		return s
	}
	return graphics.DefaultStroke()
}

// Fill resolves a named fill preset. Unknown names resolve to a solid
// white fill.
func (t *Theme) Fill(name string) graphics.Fill {
	if f, ok := t.fills[name]; ok {
		return f
	}
	return graphics.SolidFill(graphics.ColorWhite)
}

// StrokeNames returns the defined stroke preset names, unordered.
func (t *Theme) StrokeNames() []string {
	names := make([]string, 0, len(t.strokes))
	for name := range t.strokes {
		names = append(names, name)
	}
	return names
}

// Load parses a stylesheet from a reader.
func Load(r io.Reader) (*Theme, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Config("theme.Load", err)
	}
	return Parse(data)
}

// LoadFile parses a stylesheet from a file on disk.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("theme.LoadFile", err)
	}
	return Parse(data)
}

// Parse parses YAML stylesheet bytes. The stylesheet must declare a
// version whose major is compatible with CurrentMajor; stylesheets from a
// newer schema are rejected rather than half-read.
func Parse(data []byte) (*Theme, error) {
	const op = "theme.Parse"

	var doc stylesheet
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Config(op, err)
	}
	if doc.Version == "" {
		return nil, errors.Configf(op, "stylesheet is missing a version")
	}
	if !semver.IsValid(doc.Version) {
		return nil, errors.Configf(op, "invalid stylesheet version %q", doc.Version)
	}
	if semver.Major(doc.Version) != CurrentMajor {
		return nil, errors.Configf(op, "stylesheet version %s is not compatible with %s",
			doc.Version, CurrentMajor)
	}

	t := &Theme{
		name:    doc.Name,
		version: doc.Version,
		colors:  make(map[string]graphics.Color, len(doc.Colors)),
		strokes: make(map[string]graphics.Stroke, len(doc.Strokes)),
		fills:   make(map[string]graphics.Fill, len(doc.Fills)),
	}

	for name, hex := range doc.Colors {
		c, err := ParseColor(hex)
		if err != nil {
			return nil, errors.Configf(op, "color %q: %v", name, err)
		}
		t.colors[name] = c
	}
	for name, def := range doc.Strokes {
		s, err := def.resolve(t)
		if err != nil {
			return nil, errors.Configf(op, "stroke %q: %v", name, err)
		}
		t.strokes[name] = s
	}
	for name, def := range doc.Fills {
		f, err := def.resolve(t)
		if err != nil {
			return nil, errors.Configf(op, "fill %q: %v", name, err)
		}
		t.fills[name] = f
	}
	return t, nil
}

// stylesheet is the YAML document shape.
type stylesheet struct {
	Name    string               `yaml:"name"`
	Version string               `yaml:"version"`
	Colors  map[string]string    `yaml:"colors"`
	Strokes map[string]strokeDef `yaml:"strokes"`
	Fills   map[string]fillDef   `yaml:"fills"`
}

type strokeDef struct {
	Color string    `yaml:"color"`
	Width float64   `yaml:"width"`
	Cap   string    `yaml:"cap"`
	Dash  []float64 `yaml:"dash"`
}

func (d strokeDef) resolve(t *Theme) (graphics.Stroke, error) {
	s := graphics.DefaultStroke()
	if d.Color != "" {
		c, err := t.resolveColor(d.Color)
		if err != nil {
			return graphics.Stroke{}, err
		}
		s.Color = c
	}
	if d.Width != 0 {
		if d.Width < 0 {
			return graphics.Stroke{}, fmt.Errorf("negative width %g", d.Width)
		}
		s.Width = d.Width
	}
	switch d.Cap {
	case "", "butt":
		s.Cap = graphics.CapButt
	case "round":
		s.Cap = graphics.CapRound
	case "square":
		s.Cap = graphics.CapSquare
	default:
		return graphics.Stroke{}, fmt.Errorf("unknown cap %q", d.Cap)
	}
	if len(d.Dash) > 0 {
		pattern := graphics.DashPattern{Intervals: d.Dash}
		if !pattern.IsValid() {
			return graphics.Stroke{}, fmt.Errorf("invalid dash intervals %v", d.Dash)
		}
		s.Dash = &pattern
	}
	return s, nil
}

type fillDef struct {
	Color   string       `yaml:"color"`
	Linear  *linearDef   `yaml:"linear"`
	Pattern *hatchingDef `yaml:"pattern"`
}

type linearDef struct {
	From  []float64 `yaml:"from"`
	To    []float64 `yaml:"to"`
	Stops []stopDef `yaml:"stops"`
}

type stopDef struct {
	At    float64 `yaml:"at"`
	Color string  `yaml:"color"`
}

type hatchingDef struct {
	Style      string  `yaml:"style"`
	Foreground string  `yaml:"foreground"`
	Background string  `yaml:"background"`
	Spacing    float64 `yaml:"spacing"`
}

func (d fillDef) resolve(t *Theme) (graphics.Fill, error) {
	switch {
	case d.Linear != nil:
		return d.Linear.resolve(t)
	case d.Pattern != nil:
		return d.Pattern.resolve(t)
	case d.Color != "":
		c, err := t.resolveColor(d.Color)
		if err != nil {
			return graphics.Fill{}, err
		}
		return graphics.SolidFill(c), nil
	default:
		return graphics.Fill{}, fmt.Errorf("fill defines no color, linear, or pattern")
	}
}

func (d *linearDef) resolve(t *Theme) (graphics.Fill, error) {
	if len(d.From) != 2 || len(d.To) != 2 {
		return graphics.Fill{}, fmt.Errorf("linear gradient needs 2-element from and to points")
	}
	if len(d.Stops) < 2 {
		return graphics.Fill{}, fmt.Errorf("linear gradient needs at least 2 stops")
	}
	stops := make([]graphics.GradientStop, len(d.Stops))
	for i, s := range d.Stops {
		c, err := t.resolveColor(s.Color)
		if err != nil {
			return graphics.Fill{}, err
		}
		stops[i] = graphics.GradientStop{Position: s.At, Color: c}
	}
	g := graphics.NewLinearGradient(
		graphics.Offset{X: d.From[0], Y: d.From[1]},
		graphics.Offset{X: d.To[0], Y: d.To[1]},
		stops,
	)
	if !g.IsValid() {
		return graphics.Fill{}, fmt.Errorf("gradient stops out of range")
	}
	return graphics.Fill{Gradient: g}, nil
}

func (d *hatchingDef) resolve(t *Theme) (graphics.Fill, error) {
	var style graphics.HatchStyle
	switch d.Style {
	case "horizontal":
		style = graphics.HatchHorizontal
	case "vertical":
		style = graphics.HatchVertical
	case "cross":
		style = graphics.HatchCross
	case "diagonal":
		style = graphics.HatchDiagonal
	default:
		return graphics.Fill{}, fmt.Errorf("unknown hatch style %q", d.Style)
	}
	fg, err := t.resolveColor(d.Foreground)
	if err != nil {
		return graphics.Fill{}, err
	}
	bg := graphics.ColorTransparent
	if d.Background != "" {
		bg, err = t.resolveColor(d.Background)
		if err != nil {
			return graphics.Fill{}, err
		}
	}
	return graphics.Fill{Pattern: &graphics.Pattern{
		Style:      style,
		Foreground: fg,
		Background: bg,
		Spacing:    d.Spacing,
	}}, nil
}

// resolveColor accepts either a hex literal or the name of a color defined
// in the stylesheet's colors block.
func (t *Theme) resolveColor(s string) (graphics.Color, error) {
	if s == "" {
		return 0, fmt.Errorf("empty color")
	}
	if s[0] == '#' {
		return ParseColor(s)
	}
	if c, ok := t.colors[s]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown color name %q", s)
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB" into a Color. The short form
// gets full opacity.
func ParseColor(s string) (graphics.Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return 0, fmt.Errorf("color %q must start with '#'", s)
	}
	hex := s[1:]
	var v uint32
	for _, r := range hex {
		d, ok := hexDigit(r)
		if !ok {
			return 0, fmt.Errorf("color %q has a non-hex digit", s)
		}
		v = v<<4 | uint32(d)
	}
	switch len(hex) {
	case 6:
		return graphics.Color(0xFF000000 | v), nil
	case 8:
		return graphics.Color(v), nil
	default:
		return 0, fmt.Errorf("color %q must have 6 or 8 hex digits", s)
	}
}

func hexDigit(r rune) (uint32, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint32(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint32(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint32(r-'A') + 10, true
	default:
		return 0, false
	}
}
