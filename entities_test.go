package main

import (
	"math"
	"testing"
)

func TestLineEntity(t *testing.T) {
	e := Entity{kind: LineEntity, start: Point{0, 0}, end: Point{1, 2}}
	segments := e.Segments()

	if len(segments) != 1 || segments[0].kind != LineSegment {
		t.Fatalf("expected one line segment, got %v", segments)
	}
	checkPoint(t, "line end", segments[0].b, Point{1, 2})
}

func TestMalformedEntity(t *testing.T) {
	bad := []Entity{
		{kind: LineEntity, start: Point{math.NaN(), 0}, end: Point{1, 0}},
		{kind: ArcEntity, center: Point{0, 0}, radius: math.Inf(1), startAngle: 0, endAngle: 90},
		{kind: ArcEntity, center: Point{0, 0}, radius: -1, startAngle: 0, endAngle: 90},
		{kind: CircleEntity, center: Point{0, math.NaN()}, radius: 1},
	}

	for i := range bad {
		if got := bad[i].Segments(); len(got) != 0 {
			t.Errorf("malformed entity %d should contribute zero segments, got %d", i, len(got))
		}
	}
}

func TestArcEntityDegrees(t *testing.T) {
	e := Entity{kind: ArcEntity, center: Point{0, 0}, radius: 2, startAngle: 0, endAngle: 90}
	segments := e.Segments()

	if len(segments) != 1 {
		t.Fatalf("expected one segment, got %d", len(segments))
	}
	arc := segments[0]
	checkPoint(t, "arc start", arc.a, Point{2, 0})
	checkPoint(t, "arc end", arc.b, Point{0, 2})
	if !arc.ccw {
		t.Errorf("drawing arcs run counter-clockwise")
	}
	checkFloat(t, "arc length", arc.Length(), math.Pi)
}

func TestCircleEntitySplits(t *testing.T) {
	e := Entity{kind: CircleEntity, center: Point{1, 1}, radius: 0.5}
	segments := e.Segments()

	if len(segments) != 2 {
		t.Fatalf("expected a circle to split into two arcs, got %d", len(segments))
	}

	total := segments[0].Length() + segments[1].Length()
	checkFloat(t, "circumference", total, math.Pi)
	checkPoint(t, "halves join", segments[0].b, segments[1].a)
	checkPoint(t, "halves close", segments[1].b, segments[0].a)
}

func TestPolylineEntityBulge(t *testing.T) {
	e := Entity{
		kind:   PolylineEntity,
		points: []Point{{0, 0}, {1, 0}, {1, 1}},
		bulges: []float64{0, 1.0},
	}
	segments := e.Segments()

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].kind != LineSegment {
		t.Errorf("first edge should be a line")
	}
	if segments[1].kind != ArcSegment {
		t.Errorf("bulged edge should be an arc")
	}
	checkPoint(t, "arc center", segments[1].center, Point{1, 0.5})
}

func TestPolylineEntityClosed(t *testing.T) {
	e := Entity{
		kind:   PolylineEntity,
		points: []Point{{0, 0}, {1, 0}, {1, 1}},
		closed: true,
	}
	segments := e.Segments()

	if len(segments) != 3 {
		t.Fatalf("expected a closing edge, got %d segments", len(segments))
	}
	checkPoint(t, "closing edge end", segments[2].b, Point{0, 0})
}

func TestSplineEntity(t *testing.T) {
	e := Entity{
		kind:   SplineEntity,
		points: []Point{{0, 0}, {1, 1}, {2, 0}},
	}
	segments := e.Segments()

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	for i := range segments {
		if segments[i].kind != LineSegment {
			t.Errorf("spline points should flatten to lines")
		}
	}
}

func TestExtractSegmentsFilters(t *testing.T) {
	opt := &Options{tolerance: 0.005, chainMode: ExactChain}

	entities := []Entity{
		{kind: LineEntity, start: Point{0, 0}, end: Point{1, 0}},
		{kind: LineEntity, start: Point{2, 2}, end: Point{2, 2}}, // degenerate
		{kind: LineEntity, start: Point{math.NaN(), 0}, end: Point{1, 0}},
	}

	segments := ExtractSegments(entities, opt)
	if len(segments) != 1 {
		t.Errorf("expected degenerate and malformed entities to drop out, got %d segments", len(segments))
	}
}

func TestExtractSegmentsTracingDropsArcs(t *testing.T) {
	opt := &Options{tolerance: 0.005, snapGrid: 0.01, chainMode: TracingChain}

	entities := []Entity{
		{kind: LineEntity, start: Point{0, 0}, end: Point{1.004, 0}},
		{kind: ArcEntity, center: Point{0, 0}, radius: 1, startAngle: 0, endAngle: 90},
	}

	segments := ExtractSegments(entities, opt)
	if len(segments) != 1 {
		t.Fatalf("tracing mode should keep lines only, got %d segments", len(segments))
	}
	// endpoints snapped to the 0.01 grid
	checkPoint(t, "snapped end", segments[0].b, Point{1, 0})
}

func TestExtractSegmentsOriginShift(t *testing.T) {
	opt := &Options{tolerance: 0.005, chainMode: ExactChain, origin: OriginCenter}

	entities := []Entity{
		{kind: LineEntity, start: Point{0, 0}, end: Point{2, 2}},
	}

	segments := ExtractSegments(entities, opt)
	checkPoint(t, "shifted start", segments[0].a, Point{-1, -1})
	checkPoint(t, "shifted end", segments[0].b, Point{1, 1})
}
