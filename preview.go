package main

import (
	"fmt"
	"math"
	"os"

	svg "github.com/ajstarks/svgo/float"
)

const (
	previewSize   = 800.0
	previewMargin = 20.0

	cutStyle   = "stroke:#000000;stroke-width:1.5;fill:none"
	rapidStyle = "stroke:#cc0000;stroke-width:1;stroke-dasharray:6,4;fill:none"
)

// WritePreview renders the playback model to an SVG so the planned motion
// can be eyeballed before it reaches a machine: cuts solid black, rapids
// dashed red.
func WritePreview(path string, pb *Playback) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	for i := range pb.segments {
		s := &pb.segments[i]
		minX = math.Min(minX, math.Min(s.a.x, s.b.x))
		minY = math.Min(minY, math.Min(s.a.y, s.b.y))
		maxX = math.Max(maxX, math.Max(s.a.x, s.b.x))
		maxY = math.Max(maxY, math.Max(s.a.y, s.b.y))
		if s.isArc {
			minX = math.Min(minX, s.center.x-s.radius)
			minY = math.Min(minY, s.center.y-s.radius)
			maxX = math.Max(maxX, s.center.x+s.radius)
			maxY = math.Max(maxY, s.center.y+s.radius)
		}
	}
	if len(pb.segments) == 0 {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	spanX := maxX - minX
	spanY := maxY - minY
	span := math.Max(math.Max(spanX, spanY), 1e-9)
	scale := (previewSize - 2*previewMargin) / span

	// drawing coordinates are y-up, SVG is y-down
	tx := func(x float64) float64 { return (x-minX)*scale + previewMargin }
	ty := func(y float64) float64 { return (maxY-y)*scale + previewMargin }

	canvas := svg.New(file)
	canvas.Start(spanX*scale+2*previewMargin, spanY*scale+2*previewMargin)

	for i := range pb.segments {
		s := &pb.segments[i]
		if s.length == 0 {
			continue
		}

		style := cutStyle
		if s.mode == RapidMotion {
			style = rapidStyle
		}

		if !s.isArc {
			canvas.Line(tx(s.a.x), ty(s.a.y), tx(s.b.x), ty(s.b.y), style)
			continue
		}

		arc := Segment{
			kind:       ArcSegment,
			a:          s.a,
			b:          s.b,
			center:     s.center,
			radius:     s.radius,
			ccw:        s.ccw,
			startAngle: s.startAngle,
			endAngle:   s.endAngle,
		}
		sweep := arc.Sweep()

		large := 0
		if math.Abs(sweep) > math.Pi {
			large = 1
		}
		// mirroring y turns a counter-clockwise drawing arc into a
		// clockwise screen arc, which is SVG sweep flag 1
		sweepFlag := 0
		if s.ccw {
			sweepFlag = 1
		}

		r := s.radius * scale
		d := fmt.Sprintf("M %.3f %.3f A %.3f %.3f 0 %d %d %.3f %.3f",
			tx(s.a.x), ty(s.a.y), r, r, large, sweepFlag, tx(s.b.x), ty(s.b.y))
		canvas.Path(d, style)
	}

	canvas.End()
	return nil
}
