package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	safeZ := flag.Float64("safe-z", 0.25, "Set the Z clearance above the work in inches for rapid moves.")
	depth := flag.Float64("depth", 0.25, "Set the total cut depth in inches.")
	stepDown := flag.Float64("step-down", 0.25, "Set the maximum depth of cut per pass in inches. Where the total depth exceeds this, multiple passes are taken.")
	xyFeed := flag.Float64("xy-feed-rate", 20, "Set the cutting feed rate in the XY plane in inches/min.")
	zFeed := flag.Float64("z-feed-rate", 5, "Set the plunge feed rate in the Z axis in inches/min.")

	tolerance := flag.Float64("tolerance", 0.005, "Set the chaining tolerance in inches. Segment endpoints closer than this are considered touching.")
	snapGrid := flag.Float64("snap", 0, "Set the snap grid size in inches for trace mode. 0 disables snapping.")
	angularTolerance := flag.Float64("angular-tolerance", 30, "Set the angular tolerance in degrees for trace-mode chaining.")
	precision := flag.Int("precision", 4, "Set the number of decimal places in output coordinates.")

	origin := flag.String("origin", "none", "Shift the drawing so this reference point is X0 Y0: none, center, bottom-left, bottom-right, top-left, top-right.")
	mode := flag.String("mode", "exact", "Set the chaining mode: exact (lines and arcs, endpoint matching) or trace (lines only, direction-aware matching for noisy input).")

	toolDiameter := flag.Float64("tool-diameter", 0.125, "Set the end mill diameter in inches, for the tool comment.")
	comment := flag.String("comment", "", "Set the identifying comment in the program header. Defaults to the input file name.")

	outputPath := flag.String("out", "", "Write G-code to this file instead of stdout.")
	previewPath := flag.String("preview", "", "Write an SVG preview of the planned motion to this file.")

	quiet := flag.Bool("quiet", false, "Suppress the summary of segments, contours, passes and travel.")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bealcnc [flags] DXFFILE\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: bealcnc DXFFILE\n")
		os.Exit(1)
	}
	inputPath := args[0]

	originMode, ok := ParseOriginMode(*origin)
	if !ok {
		fmt.Fprintf(os.Stderr, "unrecognised origin: %s\n", *origin)
		os.Exit(1)
	}

	chainMode, ok := ParseChainMode(*mode)
	if !ok {
		fmt.Fprintf(os.Stderr, "unrecognised mode: %s\n", *mode)
		os.Exit(1)
	}

	if *comment == "" {
		*comment = filepath.Base(inputPath)
	}

	opt := Options{
		inputPath:   inputPath,
		outputPath:  *outputPath,
		previewPath: *previewPath,

		comment:      *comment,
		toolDiameter: *toolDiameter,

		safeZ:    *safeZ,
		depth:    *depth,
		stepDown: *stepDown,
		xyFeed:   *xyFeed,
		zFeed:    *zFeed,

		tolerance:        *tolerance,
		snapGrid:         *snapGrid,
		angularTolerance: *angularTolerance,

		precision: *precision,

		origin:    originMode,
		chainMode: chainMode,

		quiet: *quiet,
	}

	entities, err := ReadDXF(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	job := NewJob(&opt, entities)
	if err := job.Build(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	gcode := job.Gcode()

	if opt.outputPath != "" && opt.outputPath != "-" {
		if err := os.WriteFile(opt.outputPath, []byte(gcode), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", opt.outputPath, err)
			os.Exit(1)
		}
	} else {
		os.Stdout.WriteString(gcode)
	}

	if opt.previewPath != "" {
		if err := WritePreview(opt.previewPath, job.result.playback); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", opt.previewPath, err)
			os.Exit(1)
		}
	}
}
