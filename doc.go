// Package schematic draws circuit diagrams on top of the gg 2D engine.
//
// # Overview
//
// schematic provides electrical components, nodes, and auto-routing wires
// that assemble into a Circuit and render through a gg.Context. Symbols
// follow either the European (IEC) or American (ANSI) drawing convention,
// selected by style.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gg"
//		"github.com/gogpu/schematic"
//		"github.com/gogpu/schematic/symbols"
//	)
//
//	r := symbols.NewResistor("R1")
//	c := symbols.NewCapacitor("C1")
//	c.SetPosition(gg.Pt(2, 0))
//	r.SetLabel("R_1")
//
//	ct := schematic.NewCircuit()
//	ct.Add(r, c)
//	ct.Connect(r.Right(), c.Left())
//
//	dc, _ := ct.Render(1024, 768, 150)
//	dc.SavePNG("circuit.png")
//
// # Coordinate System
//
// Elements live in diagram units in a y-up plane; a bipole body is one
// unit wide by default. Render installs a transform that centres the
// origin and maps units to pixels, so geometry code never deals in device
// coordinates. Stroke widths and font sizes are device pixels.
//
// # Style
//
// Rendering parameters come from a Style captured by each element at
// construction time. The package style is replaced with SetStyle or
// loaded from a TOML file with LoadStyle; see UserStylePath for the
// per-user file location.
//
// # Animation
//
// The anim subpackage animates elements over time: drawing strokes on,
// fading, moving, and toggling switches. See anim.Timeline.
package schematic

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
