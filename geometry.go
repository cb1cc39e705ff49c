package main

import (
	"math"
)

type Point struct {
	x float64
	y float64
}

func (p Point) DistanceTo(q Point) float64 {
	dx := q.x - p.x
	dy := q.y - p.y
	return math.Sqrt(dx*dx + dy*dy)
}

type SegmentKind int

const (
	LineSegment SegmentKind = iota
	ArcSegment
)

// Segment is a directed piece of contour geometry, either a straight line
// from a to b, or a circular arc from a to b about center. For arcs the
// start/end angles are the atan2 angles of a and b about the center, and
// ccw says which way round the circle the arc runs.
type Segment struct {
	kind       SegmentKind
	a          Point
	b          Point
	center     Point
	radius     float64
	ccw        bool
	startAngle float64
	endAngle   float64
}

func NewLine(a, b Point) Segment {
	return Segment{kind: LineSegment, a: a, b: b}
}

func NewArc(a, b, center Point, radius float64, ccw bool, startAngle, endAngle float64) Segment {
	return Segment{
		kind:       ArcSegment,
		a:          a,
		b:          b,
		center:     center,
		radius:     radius,
		ccw:        ccw,
		startAngle: startAngle,
		endAngle:   endAngle,
	}
}

// Sweep returns the signed angle swept from startAngle to endAngle,
// positive for counter-clockwise arcs, negative for clockwise.
func (s *Segment) Sweep() float64 {
	sweep := s.endAngle - s.startAngle
	if s.ccw {
		for sweep <= 0 {
			sweep += 2 * math.Pi
		}
	} else {
		for sweep >= 0 {
			sweep -= 2 * math.Pi
		}
	}
	return sweep
}

func (s *Segment) Length() float64 {
	if s.kind == LineSegment {
		return s.a.DistanceTo(s.b)
	}
	return math.Abs(s.Sweep()) * s.radius
}

// Reversed swaps the endpoints; for arcs this also flips the winding
// direction and exchanges the two angles.
func (s *Segment) Reversed() Segment {
	r := *s
	r.a, r.b = s.b, s.a
	if s.kind == ArcSegment {
		r.ccw = !s.ccw
		r.startAngle, r.endAngle = s.endAngle, s.startAngle
	}
	return r
}

// Direction returns the heading of the segment at its start, in radians.
func (s *Segment) Direction() float64 {
	if s.kind == LineSegment {
		return math.Atan2(s.b.y-s.a.y, s.b.x-s.a.x)
	}
	// tangent at the start point, perpendicular to the start radius
	if s.ccw {
		return s.startAngle + math.Pi/2
	}
	return s.startAngle - math.Pi/2
}

func (s *Segment) Translate(dx, dy float64) {
	s.a.x += dx
	s.a.y += dy
	s.b.x += dx
	s.b.y += dy
	if s.kind == ArcSegment {
		s.center.x += dx
		s.center.y += dy
	}
}

// BulgeArc converts a polyline edge with a DXF bulge factor into an arc
// segment. The bulge is the tangent of a quarter of the included angle,
// signed positive for counter-clockwise. A chord too short to define an
// arc degrades to a zero-length line, which length filtering discards.
func BulgeArc(p, q Point, bulge float64) Segment {
	chord := p.DistanceTo(q)

	epsilon := 1e-12
	if chord < epsilon {
		return NewLine(p, q)
	}

	theta := 4 * math.Atan(bulge)
	ccw := theta > 0

	radius := chord / (2 * math.Sin(math.Abs(theta)/2))

	// unit chord direction and its left normal
	ux := (q.x - p.x) / chord
	uy := (q.y - p.y) / chord
	nx := -uy
	ny := ux

	// the center sits on the left normal through the chord midpoint for a
	// ccw arc, and on the right for a cw one
	h := math.Sqrt(math.Max(0, radius*radius-chord*chord/4))
	if math.Abs(theta) > math.Pi {
		h = -h
	}
	if !ccw {
		h = -h
	}

	mx := (p.x + q.x) / 2
	my := (p.y + q.y) / 2
	center := Point{mx + nx*h, my + ny*h}

	startAngle := math.Atan2(p.y-center.y, p.x-center.x)
	endAngle := math.Atan2(q.y-center.y, q.x-center.x)

	return NewArc(p, q, center, radius, ccw, startAngle, endAngle)
}

// Bounds returns the axis-aligned bounding box of the segments. Arcs
// contribute their true extrema: whenever the sweep crosses one of the
// 0/90/180/270 degree compass points, the corresponding tangent point on
// the circle extends the box beyond the two endpoints.
func Bounds(segments []Segment) (minX, minY, maxX, maxY float64) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)

	grow := func(p Point) {
		minX = math.Min(minX, p.x)
		minY = math.Min(minY, p.y)
		maxX = math.Max(maxX, p.x)
		maxY = math.Max(maxY, p.y)
	}

	for i := range segments {
		s := &segments[i]
		grow(s.a)
		grow(s.b)

		if s.kind != ArcSegment {
			continue
		}

		for quadrant := 0; quadrant < 4; quadrant++ {
			angle := float64(quadrant) * math.Pi / 2
			if s.ContainsAngle(angle) {
				grow(Point{
					s.center.x + s.radius*math.Cos(angle),
					s.center.y + s.radius*math.Sin(angle),
				})
			}
		}
	}

	return minX, minY, maxX, maxY
}

// ContainsAngle reports whether the given absolute angle lies within the
// arc's sweep.
func (s *Segment) ContainsAngle(angle float64) bool {
	if s.kind != ArcSegment {
		return false
	}

	sweep := s.Sweep()
	rel := angle - s.startAngle

	if s.ccw {
		for rel < 0 {
			rel += 2 * math.Pi
		}
		return rel <= sweep
	}
	for rel > 0 {
		rel -= 2 * math.Pi
	}
	return rel >= sweep
}

// SnapPoint rounds each coordinate independently to the nearest multiple
// of the grid size.
func SnapPoint(p Point, grid float64) Point {
	if grid <= 0 {
		return p
	}
	return Point{
		math.Round(p.x/grid) * grid,
		math.Round(p.y/grid) * grid,
	}
}

func SnapSegments(segments []Segment, grid float64) {
	if grid <= 0 {
		return
	}
	for i := range segments {
		segments[i].a = SnapPoint(segments[i].a, grid)
		segments[i].b = SnapPoint(segments[i].b, grid)
	}
}

type OriginMode int

const (
	OriginNone OriginMode = iota
	OriginCenter
	OriginBottomLeft
	OriginBottomRight
	OriginTopLeft
	OriginTopRight
)

// ShiftOrigin translates all geometry so the chosen reference point of the
// bounding box lands on (0,0).
func ShiftOrigin(segments []Segment, mode OriginMode) {
	if mode == OriginNone || len(segments) == 0 {
		return
	}

	minX, minY, maxX, maxY := Bounds(segments)

	var refX, refY float64
	switch mode {
	case OriginCenter:
		refX = (minX + maxX) / 2
		refY = (minY + maxY) / 2
	case OriginBottomLeft:
		refX, refY = minX, minY
	case OriginBottomRight:
		refX, refY = maxX, minY
	case OriginTopLeft:
		refX, refY = minX, maxY
	case OriginTopRight:
		refX, refY = maxX, maxY
	}

	for i := range segments {
		segments[i].Translate(-refX, -refY)
	}
}
