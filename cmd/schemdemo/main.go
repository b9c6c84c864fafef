// Command schemdemo renders an animated circuit to numbered PNG frames.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/schematic"
	"github.com/gogpu/schematic/anim"
	"github.com/gogpu/schematic/symbols"
)

func main() {
	var (
		out     = flag.String("out", "frames", "output directory for PNG frames")
		fps     = flag.Int("fps", 30, "frames per second")
		size    = flag.Int("size", 720, "canvas size in pixels")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		schematic.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}

	circ, tl, err := buildScene()
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	dc := gg.NewContext(*size, *size)
	schematic.InstallView(dc, float64(*size)/8)

	err = anim.RenderFrames(dc, circ, tl, *fps, func(i int) error {
		return dc.SavePNG(filepath.Join(*out, fmt.Sprintf("frame_%04d.png", i)))
	})
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Frames saved to %s (%d fps)\n", *out, *fps)
}

// buildScene assembles a battery, switch, resistor, and capacitor in a
// loop, then a timeline that wires the loop up, closes the switch,
// grows the resistor's voltage arrow, and renames the resistor.
func buildScene() (*schematic.Circuit, *anim.Timeline, error) {
	bat := symbols.NewBattery("bat")
	bat.SetPosition(gg.Pt(0, -1.5))
	bat.SetVoltage("9 V")
	bat.Positive().SetCurrent(schematic.CurrentOut)
	bat.Positive().SetCurrentLabel("i")

	sw := symbols.NewSwitch("s1")
	sw.SetPosition(gg.Pt(0, 1.5))

	res := symbols.NewResistor("R1")
	res.SetPosition(gg.Pt(2, 0))
	res.SetRotation(math.Pi / 2)
	res.SetLabel("R")

	cp := symbols.NewCapacitor("C1")
	cp.SetPosition(gg.Pt(-2, 0))
	cp.SetRotation(math.Pi / 2)
	cp.SetLabel("C")

	topLeft, topRight := schematic.NewNode(), schematic.NewNode()
	bottomLeft, bottomRight := schematic.NewNode(), schematic.NewNode()
	topLeft.SetPosition(gg.Pt(-2, 1.5))
	topRight.SetPosition(gg.Pt(2, 1.5))
	bottomLeft.SetPosition(gg.Pt(-2, -1.5))
	bottomRight.SetPosition(gg.Pt(2, -1.5))

	circ := schematic.NewCircuit(bat, sw, res, cp, topLeft, topRight, bottomLeft, bottomRight)

	v, err := res.Voltage("left", "right", "v_R")
	if err != nil {
		return nil, nil, err
	}
	v.SetReveal(0)
	circ.Add(v)

	pairs := [][2]*schematic.Terminal{
		{cp.Right(), topLeft.Down()},
		{topLeft.Right(), sw.Left()},
		{sw.Right(), topRight.Left()},
		{topRight.Down(), res.Right()},
		{res.Left(), bottomRight.Up()},
		{bottomRight.Left(), bat.Positive()},
		{bat.Negative(), bottomLeft.Right()},
		{bottomLeft.Up(), cp.Left()},
	}
	var create []anim.Animation
	for _, p := range pairs {
		w, err := circ.Connect(p[0], p[1])
		if err != nil {
			return nil, nil, err
		}
		create = append(create, anim.Create(w))
	}

	tl := anim.NewTimeline()
	tl.Play(create...)
	tl.Wait(300 * time.Millisecond)
	tl.Play(anim.CloseSwitch(sw)).WithDuration(500 * time.Millisecond)
	tl.Play(anim.Grow(v))
	tl.Play(anim.SetLabel(res, "R_1"))
	tl.Wait(500 * time.Millisecond)

	return circ, tl, nil
}
