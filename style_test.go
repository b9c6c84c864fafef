package schematic

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// writeStyleFile writes a TOML style file into a temp dir and returns its path.
func writeStyleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing style file: %v", err)
	}
	return path
}

func TestDefaultStyleStrokeRatio(t *testing.T) {
	s := DefaultStyle()
	want := 0.625 * s.Symbol.ComponentStrokeWidth
	if math.Abs(s.Symbol.WireStrokeWidth-want) > 1e-12 {
		t.Errorf("WireStrokeWidth = %v, want %v", s.Symbol.WireStrokeWidth, want)
	}
}

func TestMergeAppliesValues(t *testing.T) {
	path := writeStyleFile(t, `
convention = "american"

[symbol]
bipole_width = 2.0

[mark]
font_size = 48.0
`)
	got, err := LoadStyle(path)
	if err != nil {
		t.Fatalf("LoadStyle() error: %v", err)
	}
	if got.Convention != American {
		t.Errorf("Convention = %v, want American", got.Convention)
	}
	if got.Symbol.BipoleWidth != 2.0 {
		t.Errorf("BipoleWidth = %v, want 2.0", got.Symbol.BipoleWidth)
	}
	if got.Mark.FontSize != 48.0 {
		t.Errorf("FontSize = %v, want 48.0", got.Mark.FontSize)
	}
	// Untouched keys keep their defaults.
	if got.Symbol.BipoleHeight != DefaultStyle().Symbol.BipoleHeight {
		t.Errorf("BipoleHeight = %v, want default", got.Symbol.BipoleHeight)
	}
}

func TestMergePrecedence(t *testing.T) {
	base := writeStyleFile(t, "[symbol]\nbipole_width = 2.0\nnode_radius = 0.1\n")
	over := writeStyleFile(t, "[symbol]\nbipole_width = 3.0\n")

	merged, err := LoadStyle(base)
	if err != nil {
		t.Fatalf("LoadStyle(base) error: %v", err)
	}
	merged, err = merged.Merge(over)
	if err != nil {
		t.Fatalf("Merge(over) error: %v", err)
	}
	if merged.Symbol.BipoleWidth != 3.0 {
		t.Errorf("BipoleWidth = %v, want 3.0 from the later file", merged.Symbol.BipoleWidth)
	}
	if merged.Symbol.NodeRadius != 0.1 {
		t.Errorf("NodeRadius = %v, want 0.1 from the earlier file", merged.Symbol.NodeRadius)
	}
}

func TestMergeEmptyFileKeepsDefaults(t *testing.T) {
	path := writeStyleFile(t, "")
	got, err := LoadStyle(path)
	if err != nil {
		t.Fatalf("LoadStyle() error: %v", err)
	}
	if got != DefaultStyle() {
		t.Errorf("empty file changed the style: %+v", got)
	}
}

func TestMergeRejectsUnknownKey(t *testing.T) {
	path := writeStyleFile(t, "[symbol]\nnot_present = 1.0\n")
	_, err := LoadStyle(path)
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("LoadStyle() error = %v, want *ConfigError", err)
	}
	if ce.Kind != ConfigUnknownKey {
		t.Errorf("Kind = %v, want ConfigUnknownKey", ce.Kind)
	}
	if ce.Path != "symbol.not_present" {
		t.Errorf("Path = %q, want \"symbol.not_present\"", ce.Path)
	}
}

func TestMergeRejectsUnknownTable(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantPath string
	}{
		{"top level table", "[extras]\nx = 1\n", "extras"},
		{"nested table", "[symbol.extra]\nx = 1\n", "symbol.extra"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeStyleFile(t, tt.content)
			_, err := LoadStyle(path)
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("LoadStyle() error = %v, want *ConfigError", err)
			}
			if ce.Kind != ConfigUnknownTable {
				t.Errorf("Kind = %v, want ConfigUnknownTable", ce.Kind)
			}
			if ce.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", ce.Path, tt.wantPath)
			}
		})
	}
}

func TestMergeRejectsWrongType(t *testing.T) {
	path := writeStyleFile(t, "[symbol]\nbipole_width = \"wide\"\n")
	_, err := LoadStyle(path)
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("LoadStyle() error = %v, want *ConfigError", err)
	}
	if ce.Kind != ConfigBadValue {
		t.Errorf("Kind = %v, want ConfigBadValue", ce.Kind)
	}
	if ce.Path != "symbol.bipole_width" {
		t.Errorf("Path = %q, want \"symbol.bipole_width\"", ce.Path)
	}
}

func TestMergeRejectsBadConvention(t *testing.T) {
	path := writeStyleFile(t, "convention = \"martian\"\n")
	if _, err := LoadStyle(path); err == nil {
		t.Error("LoadStyle() accepted an unknown convention")
	}
}

func TestMergeMissingFile(t *testing.T) {
	if _, err := LoadStyle(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("LoadStyle() of a missing file did not error")
	}
}

func TestConventionUnmarshalText(t *testing.T) {
	tests := []struct {
		text    string
		want    Convention
		wantErr bool
	}{
		{"european", European, false},
		{"american", American, false},
		{"klingon", European, true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var c Convention
			err := c.UnmarshalText([]byte(tt.text))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if err == nil && c != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.text, c, tt.want)
			}
		})
	}
}

func TestTempStyle(t *testing.T) {
	before := CurrentStyle()
	custom := DefaultStyle()
	custom.Symbol.BipoleWidth = 7

	TempStyle(custom, func() {
		if CurrentStyle().Symbol.BipoleWidth != 7 {
			t.Error("TempStyle did not install the override")
		}
	})

	if CurrentStyle() != before {
		t.Error("TempStyle did not restore the previous style")
	}
}

func TestSetStyle(t *testing.T) {
	before := CurrentStyle()
	t.Cleanup(func() { SetStyle(before) })

	custom := DefaultStyle()
	custom.Symbol.NodeRadius = 0.5
	SetStyle(custom)
	if CurrentStyle().Symbol.NodeRadius != 0.5 {
		t.Error("SetStyle did not replace the package style")
	}
}

func TestAngleAccessors(t *testing.T) {
	s := DefaultStyle()
	if got := s.CardinalMargin(); math.Abs(got-5*math.Pi/180) > 1e-12 {
		t.Errorf("CardinalMargin() = %v", got)
	}
	if got := s.VoltageAngle(); math.Abs(got-math.Pi/3) > 1e-12 {
		t.Errorf("VoltageAngle() = %v", got)
	}
}
