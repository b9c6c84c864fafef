package schematic

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"
)

// Convention selects the symbol drawing convention.
type Convention int

const (
	// European draws IEC-style symbols: rectangular resistors, sources with
	// axis and crossbar lines.
	European Convention = iota
	// American draws ANSI-style symbols: zigzag resistors, sources with
	// plus and minus signs.
	American
)

// UnmarshalText decodes "european" or "american" from style files.
func (c *Convention) UnmarshalText(text []byte) error {
	switch string(text) {
	case "european":
		*c = European
	case "american":
		*c = American
	default:
		return fmt.Errorf("unknown convention %q (want \"european\" or \"american\")", text)
	}
	return nil
}

// String returns the convention's style-file spelling.
func (c Convention) String() string {
	if c == American {
		return "american"
	}
	return "european"
}

// SymbolStyle holds the measurements of the drawn symbols. Lengths are in
// diagram units (a bipole body is BipoleWidth units wide); stroke widths are
// device pixels.
type SymbolStyle struct {
	ComponentStrokeWidth float64 `toml:"component_stroke_width"`
	WireStrokeWidth      float64 `toml:"wire_stroke_width"`
	ArrowStrokeWidth     float64 `toml:"arrow_stroke_width"`

	BipoleWidth            float64 `toml:"bipole_width"`
	BipoleHeight           float64 `toml:"bipole_height"`
	SquareBipoleSideLength float64 `toml:"square_bipole_side_length"`
	TerminalLength         float64 `toml:"terminal_length"`
	PlateGap               float64 `toml:"plate_gap"`
	PlateHeight            float64 `toml:"plate_height"`
	NodeRadius             float64 `toml:"node_radius"`
	CurrentArrowRadius     float64 `toml:"current_arrow_radius"`
	ArrowTipLength         float64 `toml:"arrow_tip_length"`

	VoltageDefaultAngleDegrees float64 `toml:"voltage_default_angle_degrees"`
}

// MarkStyle holds the typography and placement settings for marks.
type MarkStyle struct {
	FontSize float64 `toml:"font_size"`
	// CardinalAlignmentMarginDegrees is the maximum angle between a mark's
	// placement direction and a cardinal direction at which the direction
	// still snaps to that cardinal.
	CardinalAlignmentMarginDegrees float64 `toml:"cardinal_alignment_margin_degrees"`
	// Buffer is the clearance between an anchor and its mark's text box, in
	// diagram units.
	Buffer float64 `toml:"buffer"`
}

// DebugStyle toggles diagnostic rendering.
type DebugStyle struct {
	// Anchors draws a colored dot at every anchor of every element.
	Anchors bool `toml:"anchors"`
}

// Style is the complete set of rendering parameters. Zero value is not
// useful; start from DefaultStyle or CurrentStyle.
type Style struct {
	Convention Convention  `toml:"convention"`
	Color      string      `toml:"color"`
	Background string      `toml:"background"`
	Symbol     SymbolStyle `toml:"symbol"`
	Mark       MarkStyle   `toml:"mark"`
	Debug      DebugStyle  `toml:"debug"`
}

// defaultStyle reproduces the proportions of the drawn symbols at their
// published sizes. The wire stroke is 0.625 of the component stroke.
var defaultStyle = Style{
	Convention: European,
	Color:      "#FFFFFF",
	Background: "#000000",
	Symbol: SymbolStyle{
		ComponentStrokeWidth:   4.0,
		WireStrokeWidth:        2.5,
		ArrowStrokeWidth:       2.5,
		BipoleWidth:            1.0,
		BipoleHeight:           0.4,
		SquareBipoleSideLength: 0.7,
		TerminalLength:         0.5,
		PlateGap:               0.2,
		PlateHeight:            0.6,
		NodeRadius:             0.06,
		CurrentArrowRadius:     0.12,
		ArrowTipLength:         0.15,

		VoltageDefaultAngleDegrees: 60,
	},
	Mark: MarkStyle{
		FontSize:                       36,
		CardinalAlignmentMarginDegrees: 5,
		Buffer:                         0.1,
	},
}

// DefaultStyle returns the built-in style.
func DefaultStyle() Style {
	return defaultStyle
}

// StrokeColor returns the style's stroke color.
func (s *Style) StrokeColor() gg.RGBA {
	return gg.Hex(s.Color)
}

// BackgroundColor returns the style's canvas background color.
func (s *Style) BackgroundColor() gg.RGBA {
	return gg.Hex(s.Background)
}

// CardinalMargin returns the mark snapping margin in radians.
func (s *Style) CardinalMargin() float64 {
	return s.Mark.CardinalAlignmentMarginDegrees * math.Pi / 180
}

// VoltageAngle returns the default voltage arc angle in radians.
func (s *Style) VoltageAngle() float64 {
	return s.Symbol.VoltageDefaultAngleDegrees * math.Pi / 180
}

// knownTables are the table paths the style schema defines. Any other table
// in a style file is rejected.
var knownTables = map[string]bool{
	"symbol": true,
	"mark":   true,
	"debug":  true,
}

// Merge returns s with the values from the TOML file at path applied over
// it. Keys absent from the file keep their current values. Unknown keys,
// unknown tables, and mistyped values are rejected with a *ConfigError.
func (s Style) Merge(path string) (Style, error) {
	merged := s
	md, err := toml.DecodeFile(path, &merged)
	if err != nil {
		var pe toml.ParseError
		if errors.As(err, &pe) && pe.LastKey != "" {
			return Style{}, &ConfigError{Path: pe.LastKey, Kind: ConfigBadValue, Detail: pe.Message}
		}
		return Style{}, fmt.Errorf("schematic: reading style file %s: %w", path, err)
	}
	if err := checkDecoded(md); err != nil {
		return Style{}, err
	}
	return merged, nil
}

// checkDecoded rejects any key the schema does not define. A whole table
// that the schema does not define is reported once, by its table path.
func checkDecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	key := undecoded[0]
	for i := 1; i < len(key); i++ {
		prefix := key[:i]
		if md.Type(prefix...) == "Hash" && !knownTables[prefix.String()] {
			return &ConfigError{Path: prefix.String(), Kind: ConfigUnknownTable}
		}
	}
	if md.Type(key...) == "Hash" {
		return &ConfigError{Path: key.String(), Kind: ConfigUnknownTable}
	}
	return &ConfigError{Path: key.String(), Kind: ConfigUnknownKey}
}

// LoadStyle returns the built-in defaults with the file at path applied.
func LoadStyle(path string) (Style, error) {
	return DefaultStyle().Merge(path)
}

// UserStylePath returns the location of the per-user style file.
func UserStylePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("schematic: locating user config dir: %w", err)
	}
	return filepath.Join(dir, "schematic", "style.toml"), nil
}

// UserStyle returns the defaults with the per-user style file applied. A
// missing file or unavailable config dir is not an error; the defaults pass
// through unchanged.
func UserStyle() (Style, error) {
	path, err := UserStylePath()
	if err != nil {
		Logger().Warn("user config dir unavailable, using default style", "error", err)
		return DefaultStyle(), nil
	}
	if _, err := os.Stat(path); err != nil {
		Logger().Debug("no user style file", "path", path)
		return DefaultStyle(), nil
	}
	style, err := LoadStyle(path)
	if err != nil {
		return Style{}, err
	}
	Logger().Info("loaded user style", "path", path)
	return style, nil
}

// stylePtr stores the package style used by element constructors.
var stylePtr atomic.Pointer[Style]

func init() {
	s := defaultStyle
	stylePtr.Store(&s)
}

// SetStyle replaces the package style. Elements capture the style when they
// are constructed, so SetStyle affects elements created afterwards.
//
// SetStyle is safe for concurrent use.
func SetStyle(s Style) {
	stylePtr.Store(&s)
}

// CurrentStyle returns a copy of the package style.
func CurrentStyle() Style {
	return *stylePtr.Load()
}

// TempStyle runs fn with the package style replaced by s, then restores the
// previous style. Intended for tests and scoped overrides.
func TempStyle(s Style, fn func()) {
	prev := stylePtr.Load()
	stylePtr.Store(&s)
	defer stylePtr.Store(prev)
	fn()
}
