package main

import (
	"math"
)

type EntityKind int

const (
	LineEntity EntityKind = iota
	ArcEntity
	CircleEntity
	PolylineEntity
	SplineEntity
)

// Entity is the neutral drawing primitive handed to the engine by whatever
// ingested the drawing. Arc angles are in degrees, as drawings store them.
type Entity struct {
	kind EntityKind

	start Point
	end   Point

	center     Point
	radius     float64
	startAngle float64
	endAngle   float64

	// polyline vertices with per-vertex bulge, parallel slices
	points []Point
	bulges []float64
	closed bool
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Segments converts one entity into canonical segments. A malformed entity
// (non-finite fields, too few points) contributes nothing rather than
// failing the build.
func (e *Entity) Segments() []Segment {
	switch e.kind {
	case LineEntity:
		if !finite(e.start.x, e.start.y, e.end.x, e.end.y) {
			return nil
		}
		return []Segment{NewLine(e.start, e.end)}

	case ArcEntity:
		if !finite(e.center.x, e.center.y, e.radius, e.startAngle, e.endAngle) || e.radius <= 0 {
			return nil
		}
		return []Segment{arcFromAngles(e.center, e.radius, e.startAngle, e.endAngle)}

	case CircleEntity:
		if !finite(e.center.x, e.center.y, e.radius) || e.radius <= 0 {
			return nil
		}
		// split into two half arcs so every segment has distinct endpoints
		return []Segment{
			arcFromAngles(e.center, e.radius, 0, 180),
			arcFromAngles(e.center, e.radius, 180, 360),
		}

	case PolylineEntity:
		segments := []Segment{}
		points := e.points
		if e.closed && len(points) >= 2 {
			points = append(append([]Point{}, points...), points[0])
		}
		for i := 0; i+1 < len(points); i++ {
			p := points[i]
			q := points[i+1]
			if !finite(p.x, p.y, q.x, q.y) {
				continue
			}
			bulge := 0.0
			if i < len(e.bulges) {
				bulge = e.bulges[i]
			}
			if !finite(bulge) {
				bulge = 0
			}
			if bulge == 0 {
				segments = append(segments, NewLine(p, q))
			} else {
				segments = append(segments, BulgeArc(p, q, bulge))
			}
		}
		return segments

	case SplineEntity:
		// splines arrive pre-flattened as a point list; emit the polyline
		segments := []Segment{}
		for i := 0; i+1 < len(e.points); i++ {
			p := e.points[i]
			q := e.points[i+1]
			if !finite(p.x, p.y, q.x, q.y) {
				continue
			}
			segments = append(segments, NewLine(p, q))
		}
		return segments
	}

	return nil
}

// arcFromAngles builds an arc segment from a drawing-style center, radius
// and start/end angles in degrees. Drawing arcs always run counter-clockwise
// from start angle to end angle.
func arcFromAngles(center Point, radius, startDeg, endDeg float64) Segment {
	startAngle := startDeg * math.Pi / 180
	endAngle := endDeg * math.Pi / 180

	a := Point{center.x + radius*math.Cos(startAngle), center.y + radius*math.Sin(startAngle)}
	b := Point{center.x + radius*math.Cos(endAngle), center.y + radius*math.Sin(endAngle)}

	return NewArc(a, b, center, radius, true, startAngle, endAngle)
}

// ExtractSegments runs every entity through conversion and drops degenerate
// results, producing the canonical segment set the chainer consumes.
func ExtractSegments(entities []Entity, opt *Options) []Segment {
	segments := []Segment{}

	for i := range entities {
		for _, s := range entities[i].Segments() {
			if opt.chainMode == TracingChain && s.kind != LineSegment {
				// tracing mode only understands lines
				continue
			}
			segments = append(segments, s)
		}
	}

	if opt.chainMode == TracingChain {
		SnapSegments(segments, opt.snapGrid)
	}

	// length-filter after snapping: snapped noise can collapse segments
	epsilon := 1e-9
	kept := segments[:0]
	for i := range segments {
		if segments[i].Length() > epsilon {
			kept = append(kept, segments[i])
		}
	}
	segments = kept

	ShiftOrigin(segments, opt.origin)

	return segments
}
