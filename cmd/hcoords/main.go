package main

import (
	"fmt"
	"math"
	"os"

	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/hcoords"
	"github.com/akeil/hcoords/pkg/affine"
	"github.com/akeil/hcoords/pkg/demo"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

type settings struct {
	logLevel   string
	scaleX     float64
	scaleY     float64
	angle      float64
	tx         float64
	ty         float64
	cpuProfile string
}

// scenario builds the example from the default shape and the
// transformation parameters in s. The angle is given in degrees.
func (s settings) scenario() demo.Scenario {
	sc := demo.DefaultScenario()
	sc.ScaleX = s.scaleX
	sc.ScaleY = s.scaleY
	sc.Angle = s.angle * math.Pi / 180
	sc.Translation = affine.Vec2{X: s.tx, Y: s.ty}
	return sc
}

func main() {
	app := kingpin.New("hcoords", "Affine transformations in Cartesian and homogeneous coordinates")
	app.HelpFlag.Short('h')

	var s settings
	app.Flag("log-level", "Log level (debug, info, warning, error, none)").Envar("HCOORDS_LOG_LEVEL").Default("warning").StringVar(&s.logLevel)
	app.Flag("scale-x", "Scale factor along x").Default("2").Float64Var(&s.scaleX)
	app.Flag("scale-y", "Scale factor along y").Default("1").Float64Var(&s.scaleY)
	app.Flag("angle", "Rotation angle in degrees").Default("22.5").Float64Var(&s.angle)
	app.Flag("tx", "Translation along x").Default("2").Float64Var(&s.tx)
	app.Flag("ty", "Translation along y").Default("3").Float64Var(&s.ty)
	app.Flag("cpuprofile", "Write a CPU profile to this directory").Envar("HCOORDS_CPUPROFILE").StringVar(&s.cpuProfile)

	app.Command("show", "Print the matrices and shapes").Default()

	plot := app.Command("plot", "Render the figures")
	var (
		outDir = plot.Flag("output", "Output directory").Short('o').Envar("HCOORDS_OUTPUT").Default(".").String()
		format = plot.Flag("format", "Output format").Short('f').Default("png").Enum("png", "pdf")
		merge  = plot.Flag("merge", "Also write all figures to a single PDF").Bool()
		width  = plot.Flag("width", "Image width in pixels").Default("800").Int()
		height = plot.Flag("height", "Image height in pixels").Default("600").Int()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	err := run(command, s, plotOptions{
		outDir: *outDir,
		format: *format,
		merge:  *merge,
		width:  *width,
		height: *height,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, s settings, o plotOptions) error {
	hcoords.SetLogLevel(s.logLevel)
	if s.cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(s.cpuProfile), profile.Quiet).Stop()
	}

	switch command {
	case "show":
		return doShow(s)
	case "plot":
		return doPlot(s, o)
	}
	return fmt.Errorf("unknown command: %q", command)
}

func doShow(s settings) error {
	r, err := s.scenario().Run()
	if err != nil {
		return err
	}
	return r.Echo(os.Stdout)
}
